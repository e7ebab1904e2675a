package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage
	Postgres PostgresConfig

	// API surface
	Auth        AuthConfig
	ImportGuard ImportGuardConfig

	// Schedule import specifics
	Schedule       ScheduleConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URI      string // full DSN, overrides the individual fields when set
}

// DSN returns the connection string for sqlx.Connect.
func (c PostgresConfig) DSN() string {
	if c.URI != "" {
		return c.URI
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type AuthConfig struct {
	APIKey string
}

type ImportGuardConfig struct {
	RateLimitPerMin int
	DedupeTTL       time.Duration
}

// ScheduleConfig tunes the dump parser. HighlightRules overrides the
// built-in keyword table when non-empty.
type ScheduleConfig struct {
	Timezone       string
	HighlightRules []HighlightRuleConfig
}

type HighlightRuleConfig struct {
	Level           int      `yaml:"level"`
	BracketKeywords []string `yaml:"bracket_keywords"`
	OrganizerNames  []string `yaml:"organizer_names"`
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.URI = viper.GetString("postgres.uri")
	if pgURI := viper.GetString("database_url"); pgURI != "" {
		cfg.Postgres.URI = pgURI
	}

	// API key (empty disables auth)
	cfg.Auth.APIKey = viper.GetString("auth.api_key")
	if apiKey := viper.GetString("api_key"); apiKey != "" {
		cfg.Auth.APIKey = apiKey
	}

	// Import guard
	cfg.ImportGuard.RateLimitPerMin = viper.GetInt("import_guard.rate_limit_per_min")
	ttl, err := time.ParseDuration(viper.GetString("import_guard.dedupe_ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid import_guard.dedupe_ttl: %w", err)
	}
	cfg.ImportGuard.DedupeTTL = ttl

	// Schedule parser
	cfg.Schedule.Timezone = viper.GetString("schedule.timezone")
	if viper.IsSet("schedule.highlight_rules") {
		rulesRaw := viper.Get("schedule.highlight_rules")
		if rulesList, ok := rulesRaw.([]interface{}); ok {
			for _, r := range rulesList {
				if ruleMap, ok := r.(map[string]interface{}); ok {
					rule := HighlightRuleConfig{
						Level:           getIntFromMap(ruleMap, "level"),
						BracketKeywords: getStringSliceFromMap(ruleMap, "bracket_keywords"),
						OrganizerNames:  getStringSliceFromMap(ruleMap, "organizer_names"),
					}
					cfg.Schedule.HighlightRules = append(cfg.Schedule.HighlightRules, rule)
				}
			}
		}
	}
	if err := validateHighlightRules(cfg.Schedule.HighlightRules); err != nil {
		return nil, err
	}

	// Google Calendar mirror (optional)
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.dbname", "teamsched")
	viper.SetDefault("postgres.sslmode", "disable")
	viper.SetDefault("import_guard.rate_limit_per_min", 6)
	viper.SetDefault("import_guard.dedupe_ttl", "30s")
	viper.SetDefault("schedule.timezone", "Asia/Seoul")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}

// validateHighlightRules rejects configs that would silently change parser
// behavior, like a rule with an out-of-range level.
func validateHighlightRules(rules []HighlightRuleConfig) error {
	for i, rule := range rules {
		if rule.Level < 1 || rule.Level > 3 {
			return fmt.Errorf("highlight rule %d: level must be 1..3, got %d", i, rule.Level)
		}
		if len(rule.BracketKeywords) == 0 && len(rule.OrganizerNames) == 0 {
			return fmt.Errorf("highlight rule %d: needs at least one keyword or organizer", i)
		}
	}
	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}

func getStringSliceFromMap(m map[string]interface{}, key string) []string {
	val, ok := m[key]
	if !ok {
		return nil
	}
	items, ok := val.([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok && s != "" {
			out = append(out, s)
		}
	}
	return out
}
