package config

import (
	"bytes"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type AppCfg struct {
	Name string
	Env  string
	Host string
	Port int
}

type LogCfg struct {
	Level string
}

type DBCfg struct {
	DSN         string
	Host        string
	Port        int
	User        string
	Password    string
	Name        string
	SSLMode     string
	MaxOpen     int
	MaxIdle     int
	AutoMigrate bool
}

// ConnString returns DSN when set, otherwise a postgres URL assembled from
// the individual connection parameters.
func (d DBCfg) ConnString() string {
	if d.DSN != "" {
		return d.DSN
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:   "/" + d.Name,
	}
	if d.SSLMode != "" {
		u.RawQuery = "sslmode=" + d.SSLMode
	}
	return u.String()
}

type RedisCfg struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

type MQCfg struct {
	URL   string
	Queue string
}

type S3Cfg struct {
	Endpoint         string
	Region           string
	AccessKey        string
	SecretKey        string
	Bucket           string
	UsePathStyle     bool
	PresignExpireSec int
	SSE              string
	KeyPrefix        string
}

type TelemetryCfg struct {
	Enabled      bool
	OtlpEndpoint string
	SampleRatio  float64
}

type FlashCfg struct {
	CookieName string
	TTLSec     int
}

type Config struct {
	App       AppCfg
	Log       LogCfg
	Database  DBCfg
	Redis     RedisCfg
	RabbitMQ  MQCfg
	S3        S3Cfg
	Telemetry TelemetryCfg
	Flash     FlashCfg
}

func Load() (*Config, error) {
	// .env is optional; real environment variables always win.
	_ = godotenv.Load()

	base := viper.New()
	base.SetConfigName("config")
	base.SetConfigType("yaml")
	base.AddConfigPath("./configs")
	base.AddConfigPath(".")
	base.AutomaticEnv()
	base.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	base.SetEnvPrefix("APP") // e.g. APP_DATABASE_HOST -> database.host

	setDefaults(base)

	if err := base.ReadInConfig(); err == nil {
		// Expand ${ENV} references in the file before parsing it.
		path := base.ConfigFileUsed()
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return parse(os.ExpandEnv(string(raw)))
	}

	cfg := new(Config)
	if err := base.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parse reads an already expanded yaml document on top of env and defaults.
func parse(doc string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewBufferString(doc)); err != nil {
		return nil, err
	}
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetEnvPrefix("APP")
	setDefaults(v)

	cfg := new(Config)
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "fyyur")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.host", "0.0.0.0")
	v.SetDefault("app.port", 5000)
	v.SetDefault("log.level", "info")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "fyyur")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpen", 20)
	v.SetDefault("database.maxIdle", 5)
	v.SetDefault("database.autoMigrate", true)
	v.SetDefault("redis.poolSize", 10)
	v.SetDefault("rabbitmq.queue", "listing.events")
	v.SetDefault("s3.region", "auto")
	v.SetDefault("s3.usePathStyle", true)
	v.SetDefault("s3.presignExpireSec", 900)
	v.SetDefault("s3.keyPrefix", "images")
	v.SetDefault("telemetry.sampleRatio", 1.0)
	v.SetDefault("flash.cookieName", "fyyur_flash")
	v.SetDefault("flash.ttlSec", 300)
}
