package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

type Configs struct {
	Env string

	Log        LogConfigs
	Database   DatabaseConfigs
	ApiServer  ServerConfigs
	Redis      RedisConfigs
	Kafka      KafkaConfigs
	Settlement SettlementConfigs
	Admin      AdminConfigs
}

type LogConfigs struct {
	Level string
	JSON  bool
}

type DatabaseConfigs struct {
	// Type is either "mysql" or "sqlite".
	Type     string
	Host     string
	Port     string
	Database string
	User     string
	Password string

	// File is only used by sqlite.
	File string

	LogLevel string
}

func (d *DatabaseConfigs) ConnectionString() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		d.User,
		d.Password,
		d.Host,
		d.Port,
		d.Database,
	)
}

type ServerConfigs struct {
	Host string
	Port string
}

func (s *ServerConfigs) Address() string {
	return fmt.Sprintf("%s:%s", s.Host, s.Port)
}

type RedisConfigs struct {
	Addr     string
	Password string
	DB       int

	// DrawResultTTL is how long a verified draw result stays cached.
	DrawResultTTL Duration
}

type KafkaConfigs struct {
	// Addr is a comma separated list of brokers.
	Addr string
}

func (k KafkaConfigs) Brokers() []string {
	brokers := []string{}
	for _, addr := range strings.Split(k.Addr, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			brokers = append(brokers, addr)
		}
	}

	return brokers
}

type SettlementConfigs struct {
	// Interval is the time between two settlement sweeps.
	Interval Duration

	// RunNow starts the first sweep as soon as the cron job is started.
	RunNow bool

	// Workers is the maximum number of orders settled concurrently.
	Workers int

	// Timezone is the IANA location of the draw calendar.
	Timezone string

	PublishEvents bool
}

func (s SettlementConfigs) Location() (*time.Location, error) {
	if s.Timezone == "" {
		return time.UTC, nil
	}

	return time.LoadLocation(s.Timezone)
}

type AdminConfigs struct {
	Token string
}

type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}

	d.Duration = v
	return nil
}

func Default() Configs {
	return Configs{
		Env: "local",
		Log: LogConfigs{Level: "info"},
		Database: DatabaseConfigs{
			Type:     "mysql",
			Host:     "localhost",
			Port:     "3306",
			Database: "concierge",
			User:     "root",
			LogLevel: "error",
		},
		ApiServer: ServerConfigs{Port: "8080"},
		Redis: RedisConfigs{
			Addr:          "localhost:6379",
			DrawResultTTL: Duration{24 * time.Hour},
		},
		Kafka: KafkaConfigs{Addr: "localhost:9092"},
		Settlement: SettlementConfigs{
			Interval: Duration{time.Hour},
			RunNow:   true,
			Workers:  1,
			Timezone: "America/New_York",
		},
	}
}

// Load reads the TOML file at path on top of the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Configs, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("cannot decode config file %s: %w", path, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if cfg.Settlement.Workers <= 0 {
		return cfg, fmt.Errorf("settlement workers must be positive, got %d", cfg.Settlement.Workers)
	}

	if cfg.Settlement.Interval.Duration <= 0 {
		return cfg, fmt.Errorf("settlement interval must be positive")
	}

	if _, err := cfg.Settlement.Location(); err != nil {
		return cfg, fmt.Errorf("invalid settlement timezone: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *Configs) error {
	setString(&cfg.Env, "ENV")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Database.Type, "DB_TYPE")
	setString(&cfg.Database.Host, "DB_HOST")
	setString(&cfg.Database.Port, "DB_PORT")
	setString(&cfg.Database.Database, "DB_DATABASE")
	setString(&cfg.Database.User, "DB_USER")
	setString(&cfg.Database.Password, "DB_PASSWORD")
	setString(&cfg.Database.File, "DB_FILE")
	setString(&cfg.ApiServer.Host, "API_HOST")
	setString(&cfg.ApiServer.Port, "API_PORT")
	setString(&cfg.Redis.Addr, "REDIS_ADDRESS")
	setString(&cfg.Redis.Password, "REDIS_PASSWORD")
	setString(&cfg.Kafka.Addr, "KAFKA_ADDRESS")
	setString(&cfg.Settlement.Timezone, "SETTLEMENT_TIMEZONE")
	setString(&cfg.Admin.Token, "ADMIN_TOKEN")

	if err := setBool(&cfg.Log.JSON, "LOG_JSON"); err != nil {
		return err
	}

	if err := setBool(&cfg.Settlement.RunNow, "SETTLEMENT_RUN_NOW"); err != nil {
		return err
	}

	if err := setBool(&cfg.Settlement.PublishEvents, "SETTLEMENT_PUBLISH_EVENTS"); err != nil {
		return err
	}

	if err := setInt(&cfg.Redis.DB, "REDIS_DB"); err != nil {
		return err
	}
	if err := setInt(&cfg.Settlement.Workers, "SETTLEMENT_WORKERS"); err != nil {
		return err
	}

	if err := setDuration(&cfg.Settlement.Interval, "SETTLEMENT_INTERVAL"); err != nil {
		return err
	}

	return setDuration(&cfg.Redis.DrawResultTTL, "REDIS_DRAW_RESULT_TTL")
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func setBool(dst *bool, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}

	*dst = b
	return nil
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}

	*dst = n
	return nil
}

func setDuration(dst *Duration, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	return dst.UnmarshalText([]byte(v))
}
