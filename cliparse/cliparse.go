package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDev     = "dev"
	EnvStaging = "staging"
	EnvProd    = "prod"
)

const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

const (
	DefaultPort          = 3000
	DefaultProbeInterval = 30 * time.Second
)

// Keys shared by the config file, env bindings and flags.
const (
	keyPort          = "port"
	keyDatabaseURL   = "urlConnection"
	keyLogLevel      = "log_level"
	keyEnvironment   = "environment"
	keyCreateSchema  = "create_schema"
	keyProbeInterval = "probe_interval"
	keyMaxOpenConns  = "max_open_conns"
	keyMaxIdleConns  = "max_idle_conns"
)

var envBindings = map[string]string{
	keyPort:          "PORT",
	keyDatabaseURL:   "DATABASE_URL",
	keyLogLevel:      "LOG_LEVEL",
	keyEnvironment:   "APP_ENV",
	keyCreateSchema:  "CREATE_SCHEMA",
	keyProbeInterval: "PROBE_INTERVAL",
	keyMaxOpenConns:  "DB_MAX_OPEN_CONNS",
	keyMaxIdleConns:  "DB_MAX_IDLE_CONNS",
}

// flag name -> config key
var flagKeys = map[string]string{
	"p":              keyPort,
	"d":              keyDatabaseURL,
	"log-level":      keyLogLevel,
	"env":            keyEnvironment,
	"create-schema":  keyCreateSchema,
	"probe-interval": keyProbeInterval,
}

type Config struct {
	Port          int
	DatabaseURL   string
	ConfigFile    string
	LogLevel      string
	Environment   string
	CreateSchema  bool
	ProbeInterval time.Duration
	MaxOpenConns  int
	MaxIdleConns  int
}

// ParseFlags resolves the configuration from flags, environment, an optional
// config file and defaults, in that order of precedence.
func ParseFlags(args []string) (Config, error) {
	var (
		cfg           Config
		port          int
		databaseURL   string
		logLevel      string
		environment   string
		createSchema  bool
		probeInterval time.Duration
	)

	fs := flag.NewFlagSet("cadastro-respostas", flag.ContinueOnError)

	fs.IntVar(&port, "p", 0, "Server port")
	fs.StringVar(&databaseURL, "d", "", "Database URL (postgres://... or sqlite://path)")
	fs.StringVar(&cfg.ConfigFile, "c", "", "Config file (yaml, json or toml)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&environment, "env", "", "Environment (dev, staging, prod)")
	fs.BoolVar(&createSchema, "create-schema", false, "Create tables if they do not exist")
	fs.DurationVar(&probeInterval, "probe-interval", 0, "Database readiness probe interval")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault(keyPort, DefaultPort)
	v.SetDefault(keyDatabaseURL, "")
	v.SetDefault(keyLogLevel, LogLevelInfo)
	v.SetDefault(keyEnvironment, EnvDev)
	v.SetDefault(keyCreateSchema, false)
	v.SetDefault(keyProbeInterval, DefaultProbeInterval)
	v.SetDefault(keyMaxOpenConns, 10)
	v.SetDefault(keyMaxIdleConns, 5)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if err := readConfigFile(v, cfg.ConfigFile); err != nil {
		return Config{}, err
	}

	// Only flags given on the command line override lower layers
	fs.Visit(func(f *flag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			v.Set(key, f.Value.String())
		}
	})

	cfg.Port = v.GetInt(keyPort)
	cfg.DatabaseURL = v.GetString(keyDatabaseURL)
	cfg.LogLevel = v.GetString(keyLogLevel)
	cfg.Environment = v.GetString(keyEnvironment)
	cfg.CreateSchema = v.GetBool(keyCreateSchema)
	cfg.ProbeInterval = v.GetDuration(keyProbeInterval)
	cfg.MaxOpenConns = v.GetInt(keyMaxOpenConns)
	cfg.MaxIdleConns = v.GetInt(keyMaxIdleConns)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %s: %w", path, err)
		}
		return nil
	}

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	return nil
}

// Validate checks ranges and enumerations. DatabaseURL may be empty.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In(LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError),
		),
		validation.Field(&c.Environment,
			validation.Required,
			validation.In(EnvDev, EnvStaging, EnvProd),
		),
		validation.Field(&c.ProbeInterval, validation.Required, validation.Min(time.Millisecond)),
		validation.Field(&c.MaxOpenConns, validation.Min(0)),
		validation.Field(&c.MaxIdleConns, validation.Min(0)),
	)
}

// LoadEnvFile loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}
