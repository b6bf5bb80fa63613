package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Persistence
	Storage StorageConfig

	// Scheduling
	Timezone  string
	Scoring   ScoringConfig
	Countdown CountdownConfig
	Reminder  ReminderConfig

	// Collaborators
	LLM            LLMConfig
	Assistant      AssistantConfig
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig selects the key-value backend holding the persisted state.
type StorageConfig struct {
	Driver     string // file | sqlite | redis | memory
	Dir        string
	SQLitePath string
	Redis      RedisConfig
	Keys       StorageKeys
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type StorageKeys struct {
	User        string
	Tasks       string
	Performance string
}

type ScoringConfig struct {
	Low        float64
	Medium     float64
	High       float64
	LateFactor float64
}

type CountdownConfig struct {
	Tick time.Duration
}

type ReminderConfig struct {
	Enabled      bool
	ScanInterval time.Duration
	LeadTime     time.Duration
}

// AssistantConfig tunes the text-generation collaborator on top of LLMConfig.
type AssistantConfig struct {
	CallTimeout time.Duration
	CacheSize   int
	CacheTTL    time.Duration
}

type TelegramConfig struct {
	BotToken string
	ChatID   int64
}

type GoogleCalendarConfig struct {
	Enabled         bool
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers         []ProviderConfig
	FallbackEnabled   bool
	RetryAttempts     int
	RetryDelay        time.Duration
	Timeout           time.Duration // Global timeout for entire fallback chain
	RequestsPerMinute int
	Burst             int
	Breaker           BreakerConfig
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string
	Enabled  bool
	Priority int
	APIKey   string
	BaseURL  string
	Model    string
}

type BreakerConfig struct {
	Enabled          bool
	FailureThreshold uint32
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/flowx/
// unless path names a file explicitly. A .env file in the working directory
// is loaded into the environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/flowx/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.ShutdownTimeout = v.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = v.GetString("storage.driver")
	cfg.Storage.Dir = v.GetString("storage.dir")
	cfg.Storage.SQLitePath = v.GetString("storage.sqlite_path")
	cfg.Storage.Redis.Addr = v.GetString("storage.redis.addr")
	cfg.Storage.Redis.Password = v.GetString("storage.redis.password")
	cfg.Storage.Redis.DB = v.GetInt("storage.redis.db")
	cfg.Storage.Redis.Prefix = v.GetString("storage.redis.prefix")
	cfg.Storage.Keys.User = v.GetString("storage.keys.user")
	cfg.Storage.Keys.Tasks = v.GetString("storage.keys.tasks")
	cfg.Storage.Keys.Performance = v.GetString("storage.keys.performance")

	// Scheduling
	cfg.Timezone = v.GetString("timezone")
	cfg.Scoring.Low = v.GetFloat64("scoring.low")
	cfg.Scoring.Medium = v.GetFloat64("scoring.medium")
	cfg.Scoring.High = v.GetFloat64("scoring.high")
	cfg.Scoring.LateFactor = v.GetFloat64("scoring.late_factor")
	cfg.Countdown.Tick = v.GetDuration("countdown.tick")
	cfg.Reminder.Enabled = v.GetBool("reminder.enabled")
	cfg.Reminder.ScanInterval = v.GetDuration("reminder.scan_interval")
	cfg.Reminder.LeadTime = v.GetDuration("reminder.lead_time")

	// Collaborators
	cfg.Assistant.CallTimeout = v.GetDuration("assistant.call_timeout")
	cfg.Assistant.CacheSize = v.GetInt("assistant.cache_size")
	cfg.Assistant.CacheTTL = v.GetDuration("assistant.cache_ttl")

	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.ChatID = v.GetInt64("telegram.chat_id")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	cfg.GoogleCalendar.Enabled = v.GetBool("google_calendar.enabled")
	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")
	if googleCreds := v.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetDuration("llm.retry_delay")
	cfg.LLM.Timeout = v.GetDuration("llm.max_total_timeout")
	cfg.LLM.RequestsPerMinute = v.GetInt("llm.requests_per_minute")
	cfg.LLM.Burst = v.GetInt("llm.burst")
	cfg.LLM.Breaker.Enabled = v.GetBool("llm.breaker.enabled")
	cfg.LLM.Breaker.FailureThreshold = v.GetUint32("llm.breaker.failure_threshold")
	cfg.LLM.Breaker.MaxRequests = v.GetUint32("llm.breaker.max_requests")
	cfg.LLM.Breaker.Interval = v.GetDuration("llm.breaker.interval")
	cfg.LLM.Breaker.Timeout = v.GetDuration("llm.breaker.timeout")

	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
					})
				}
			}
		}
	}
	// shorthand: a bare GEMINI_API_KEY enables the default provider
	if len(cfg.LLM.Providers) == 0 {
		if key := v.GetString("gemini_api_key"); key != "" {
			cfg.LLM.Providers = []ProviderConfig{{Name: "gemini", Enabled: true, Priority: 1, APIKey: key}}
		}
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.shutdown_timeout", "10s")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.dir", "./data")
	v.SetDefault("storage.sqlite_path", "./data/flowx.db")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.prefix", "flowx")
	v.SetDefault("storage.keys.user", "flow-x_user")
	v.SetDefault("storage.keys.tasks", "flow-x_tasks")
	v.SetDefault("storage.keys.performance", "flow-x_perf")

	v.SetDefault("timezone", "Local")
	v.SetDefault("scoring.low", 0.5)
	v.SetDefault("scoring.medium", 1.0)
	v.SetDefault("scoring.high", 1.5)
	v.SetDefault("scoring.late_factor", 0.5)
	v.SetDefault("countdown.tick", "1s")
	v.SetDefault("reminder.enabled", true)
	v.SetDefault("reminder.scan_interval", "30s")
	v.SetDefault("reminder.lead_time", "5m")

	v.SetDefault("assistant.call_timeout", "15s")
	v.SetDefault("assistant.cache_size", 128)
	v.SetDefault("assistant.cache_ttl", "30m")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "500ms")
	v.SetDefault("llm.max_total_timeout", "20s")
	v.SetDefault("llm.requests_per_minute", 30)
	v.SetDefault("llm.burst", 5)
	v.SetDefault("llm.breaker.enabled", true)
	v.SetDefault("llm.breaker.failure_threshold", 3)
	v.SetDefault("llm.breaker.max_requests", 1)
	v.SetDefault("llm.breaker.interval", "1m")
	v.SetDefault("llm.breaker.timeout", "30s")
}

func validate(cfg *Config) error {
	switch cfg.Storage.Driver {
	case "file", "sqlite", "redis", "memory":
	default:
		return fmt.Errorf("storage.driver: unknown driver %q", cfg.Storage.Driver)
	}
	if cfg.Storage.Keys.User == "" || cfg.Storage.Keys.Tasks == "" || cfg.Storage.Keys.Performance == "" {
		return fmt.Errorf("storage.keys: all keys are required")
	}
	if _, err := cfg.Location(); err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	if cfg.Scoring.Low <= 0 || cfg.Scoring.Medium <= 0 || cfg.Scoring.High <= 0 {
		return fmt.Errorf("scoring: weights must be positive")
	}
	if cfg.Scoring.LateFactor < 0 || cfg.Scoring.LateFactor > 1 {
		return fmt.Errorf("scoring.late_factor must be within [0, 1]")
	}
	return validateLLMConfig(&cfg.LLM)
}

// validateLLMConfig validates the LLM configuration. No providers at all is
// allowed: the assistant then answers with its fallback texts.
func validateLLMConfig(cfg *LLMConfig) error {
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(c.Timezone)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
