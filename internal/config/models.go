package config

import (
	"strings"
	"time"
)

// LLMConfig represents the provider-independent generation settings
type LLMConfig struct {
	Provider    string
	Timeout     time.Duration
	MaxBodySize int
}

// OpenAIConfig represents the configuration for OpenAI
type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// GeminiConfig represents the configuration for Google Gemini
type GeminiConfig struct {
	APIKey      string
	ModelName   string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// BedrockConfig represents the configuration for Amazon Bedrock
type BedrockConfig struct {
	Region      string
	ModelID     string
	MaxTokens   int
	Temperature float32
	TopP        float32
}

// CacheConfig represents the configuration for the generation cache
type CacheConfig struct {
	Enabled          bool
	Type             string
	TTL              time.Duration
	CleanupFrequency time.Duration
	SQLitePath       string
	MySQLDSN         string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
}

// SMTPConfig represents the configuration for the alert mail sink
type SMTPConfig struct {
	Address  string
	Port     int
	From     string
	To       string
	Username string
	Password string
}

// NotifyConfig represents the configuration for alert delivery
type NotifyConfig struct {
	Sinks []string
	SMTP  SMTPConfig
}

// GetLLM returns the LLM configuration
func (c *Config) GetLLM() (LLMConfig, error) {
	timeout, err := c.GetDuration("llm.timeout")
	if err != nil {
		return LLMConfig{}, err
	}
	return LLMConfig{
		Provider:    strings.ToLower(c.GetString("llm.provider")),
		Timeout:     timeout,
		MaxBodySize: c.GetInt("llm.max_body_size"),
	}, nil
}

// GetOpenAI returns the OpenAI configuration
func (c *Config) GetOpenAI() OpenAIConfig {
	return OpenAIConfig{
		APIKey:      c.GetString("openai.api_key"),
		BaseURL:     c.GetString("openai.base_url"),
		ModelName:   c.GetString("openai.model_name"),
		MaxTokens:   c.GetInt("openai.max_tokens"),
		Temperature: float32(c.GetFloat64("openai.temperature")),
		TopP:        float32(c.GetFloat64("openai.top_p")),
	}
}

// GetGemini returns the Gemini configuration
func (c *Config) GetGemini() GeminiConfig {
	return GeminiConfig{
		APIKey:      c.GetString("gemini.api_key"),
		ModelName:   c.GetString("gemini.model_name"),
		MaxTokens:   c.GetInt("gemini.max_tokens"),
		Temperature: float32(c.GetFloat64("gemini.temperature")),
		TopP:        float32(c.GetFloat64("gemini.top_p")),
	}
}

// GetBedrock returns the Bedrock configuration
func (c *Config) GetBedrock() BedrockConfig {
	return BedrockConfig{
		Region:      c.GetString("bedrock.region"),
		ModelID:     c.GetString("bedrock.model_id"),
		MaxTokens:   c.GetInt("bedrock.max_tokens"),
		Temperature: float32(c.GetFloat64("bedrock.temperature")),
		TopP:        float32(c.GetFloat64("bedrock.top_p")),
	}
}

// GetCache returns the cache configuration
func (c *Config) GetCache() (CacheConfig, error) {
	ttl, err := c.GetDuration("cache.ttl")
	if err != nil {
		return CacheConfig{}, err
	}
	cleanupFreq, err := c.GetDuration("cache.cleanup_frequency")
	if err != nil {
		return CacheConfig{}, err
	}
	return CacheConfig{
		Enabled:          c.GetBool("cache.enabled"),
		Type:             strings.ToLower(c.GetString("cache.type")),
		TTL:              ttl,
		CleanupFrequency: cleanupFreq,
		SQLitePath:       c.GetString("cache.sqlite_path"),
		MySQLDSN:         c.GetString("cache.mysql_dsn"),
		RedisAddr:        c.GetString("cache.redis_addr"),
		RedisPassword:    c.GetString("cache.redis_password"),
		RedisDB:          c.GetInt("cache.redis_db"),
	}, nil
}

// GetNotify returns the notification configuration
func (c *Config) GetNotify() NotifyConfig {
	var sinks []string
	// Environment values arrive as one comma separated string
	for _, entry := range c.GetStringSlice("notify.sinks") {
		for _, sink := range strings.Split(entry, ",") {
			if sink = strings.ToLower(strings.TrimSpace(sink)); sink != "" {
				sinks = append(sinks, sink)
			}
		}
	}
	return NotifyConfig{
		Sinks: sinks,
		SMTP:  c.GetSMTP(),
	}
}

// GetSMTP returns the alert mail configuration
func (c *Config) GetSMTP() SMTPConfig {
	return SMTPConfig{
		Address:  c.GetString("notify.smtp.address"),
		Port:     c.GetInt("notify.smtp.port"),
		From:     c.GetString("notify.smtp.from"),
		To:       c.GetString("notify.smtp.to"),
		Username: c.GetString("notify.smtp.username"),
		Password: c.GetString("notify.smtp.password"),
	}
}
