package di

import (
	"context"
	"flag"
	"io"
	"strings"
	"time"

	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/mikey/llm-email-assistant/internal/adapters/cli"
	"github.com/mikey/llm-email-assistant/internal/config"
	"github.com/mikey/llm-email-assistant/internal/logging"
	"github.com/mikey/llm-email-assistant/internal/ports"
)

// CLIFlags contains all command line flags for the CLI application
type CLIFlags struct {
	// Configuration
	ConfigFile string

	// LLM provider flags
	Provider string
	Model    string
	APIKey   string
	Timeout  time.Duration

	// Input flags
	InputFile string
	Examples  bool
	MIME      bool

	// Output flags
	Verbose bool
	JSONLog bool
	Notify  string

	// Cache flags
	Cache     bool
	CacheType string

	// set records the flags given on the command line
	set map[string]bool
}

// ParseFlags parses command line arguments into a CLIFlags struct
func ParseFlags(name string, args []string) (*CLIFlags, error) {
	flags := &CLIFlags{set: make(map[string]bool)}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	fs.StringVar(&flags.ConfigFile, "config", "", "Path to config file")

	fs.StringVar(&flags.Provider, "provider", "openai", "LLM provider (openai, gemini, bedrock)")
	fs.StringVar(&flags.Model, "model", "", "Model name or Bedrock model ID for the selected provider")
	fs.StringVar(&flags.APIKey, "api-key", "", "API key for OpenAI or Gemini")
	fs.DurationVar(&flags.Timeout, "timeout", time.Minute, "Timeout for each text generation call")

	fs.StringVar(&flags.InputFile, "file", "", "Input email file (use stdin if not specified)")
	fs.BoolVar(&flags.Examples, "examples", false, "Process the built-in example emails")
	fs.BoolVar(&flags.MIME, "mime", false, "Parse the input as an RFC 5322 message")

	fs.BoolVar(&flags.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&flags.JSONLog, "json-log", false, "Output logs in JSON format")
	fs.StringVar(&flags.Notify, "notify", "console", "Comma-separated alert sinks (console, log, smtp)")

	fs.BoolVar(&flags.Cache, "cache", false, "Cache text generation responses")
	fs.StringVar(&flags.CacheType, "cache-type", "memory", "Cache backend (memory, sqlite, mysql, redis)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { flags.set[f.Name] = true })

	return flags, nil
}

// IsSet reports whether a flag was given on the command line
func (f *CLIFlags) IsSet(name string) bool {
	return f.set[name]
}

// BuildCLIContainer creates and configures a dependency injection container for the CLI application
func BuildCLIContainer(ctx context.Context, flags *CLIFlags, out io.Writer) (*dig.Container, error) {
	container := dig.New()

	// Register flags
	if err := container.Provide(func() *CLIFlags { return flags }); err != nil {
		return nil, err
	}

	// Register configuration
	if err := container.Provide(func(flags *CLIFlags) (*config.Config, error) {
		cfg, err := config.New(flags.ConfigFile)
		if err != nil {
			return nil, err
		}
		applyFlagOverrides(cfg, flags)
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	// Register logger
	if err := container.Provide(func(flags *CLIFlags, cfg *config.Config) (*zap.Logger, error) {
		if flags.IsSet("verbose") || flags.IsSet("json-log") {
			return logging.InitConsoleLogger(flags.Verbose, flags.JSONLog)
		}
		return logging.InitLogger(cfg)
	}); err != nil {
		return nil, err
	}

	if err := provideServices(ctx, container, out); err != nil {
		return nil, err
	}

	// Register CLI runner
	if err := container.Provide(func(processor ports.EmailProcessor, logger *zap.Logger, flags *CLIFlags) *cli.Runner {
		return cli.NewRunner(processor, out, logger, flags.Verbose)
	}); err != nil {
		return nil, err
	}

	return container, nil
}

// applyFlagOverrides copies explicitly set flags over file and environment values
func applyFlagOverrides(cfg *config.Config, flags *CLIFlags) {
	if flags.IsSet("provider") {
		cfg.Set("llm.provider", strings.ToLower(flags.Provider))
	}
	provider := strings.ToLower(cfg.GetString("llm.provider"))

	if flags.IsSet("model") {
		switch provider {
		case "bedrock":
			cfg.Set("bedrock.model_id", flags.Model)
		default:
			cfg.Set(provider+".model_name", flags.Model)
		}
	}
	if flags.IsSet("api-key") {
		cfg.Set(provider+".api_key", flags.APIKey)
	}
	if flags.IsSet("timeout") {
		cfg.Set("llm.timeout", flags.Timeout.String())
	}
	if flags.IsSet("notify") {
		cfg.Set("notify.sinks", strings.Split(flags.Notify, ","))
	}
	if flags.IsSet("cache") {
		cfg.Set("cache.enabled", flags.Cache)
	}
	if flags.IsSet("cache-type") {
		cfg.Set("cache.type", flags.CacheType)
	}
	if flags.IsSet("verbose") && flags.Verbose {
		cfg.Set("logging.level", "debug")
	}
}
