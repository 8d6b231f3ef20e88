package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mikey/llm-email-assistant/internal/adapters/cli"
	"github.com/mikey/llm-email-assistant/internal/adapters/input"
	"github.com/mikey/llm-email-assistant/internal/di"
	"github.com/mikey/llm-email-assistant/internal/factory"
	"github.com/mikey/llm-email-assistant/internal/samples"
	"go.uber.org/zap"
)

func main() {
	flags, err := di.ParseFlags(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = run(ctx, flags)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run builds the dependency container and processes the requested input
func run(ctx context.Context, flags *di.CLIFlags) error {
	container, err := di.BuildCLIContainer(ctx, flags, os.Stdout)
	if err != nil {
		return fmt.Errorf("failed to build dependency container: %w", err)
	}

	return container.Invoke(func(
		runner *cli.Runner,
		logger *zap.Logger,
		llmFactory *factory.LLMFactory,
		cacheFactory *factory.CacheFactory,
	) error {
		defer logger.Sync()
		defer cacheFactory.Stop()
		defer func() {
			if err := llmFactory.Close(); err != nil {
				logger.Error("Failed to close LLM client", zap.Error(err))
			}
		}()

		if flags.Examples {
			return runner.RunExamples(ctx, samples.All())
		}

		reader, closeInput, err := openInput(flags.InputFile, logger)
		if err != nil {
			return err
		}
		defer closeInput()

		email, err := input.ReadEmail(reader, flags.MIME)
		if err != nil {
			return err
		}

		_, err = runner.ProcessEmail(ctx, email)
		return err
	})
}

// openInput opens the email file, or stdin when no file is given
func openInput(path string, logger *zap.Logger) (io.Reader, func(), error) {
	if path == "" {
		logger.Info("Reading email from stdin")
		return os.Stdin, func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open input file: %w", err)
	}
	logger.Info("Reading email from file", zap.String("file", path))
	return file, func() { file.Close() }, nil
}
