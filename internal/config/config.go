package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shopspring/decimal"
)

const (
	EnvLocal = "local"
	EnvProd  = "prod"
)

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer HTTPServer `yaml:"http_server"`
	PostgreSQL PostgreSQL `yaml:"postgresql"`
	JWT        JWT        `yaml:"jwt"`
	Minio      Minio      `yaml:"minio"`
	Redis      Redis      `yaml:"redis"`
	Order      Order      `yaml:"order"`
}

type HTTPServer struct {
	Address          string        `yaml:"address" env:"HTTP_ADDRESS" env-required:"true"`
	Timeout          time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout      time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins   []string      `yaml:"allowed_origins" env-default:"*"`
	AllowCredentials bool          `yaml:"allow_credentials"`
	AllowedMethods   []string      `yaml:"allowed_methods" env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   []string      `yaml:"allowed_headers" env-default:"*"`
	StaticURL        string        `yaml:"static_url" env-required:"true"`
}

type PostgreSQL struct {
	Host     string `yaml:"host" env:"POSTGRES_HOST" env-required:"true"`
	Port     string `yaml:"port" env:"POSTGRES_PORT" env-required:"true"`
	Username string `yaml:"username" env:"POSTGRES_USER" env-required:"true"`
	Password string `yaml:"password" env:"POSTGRES_PASSWORD" env-required:"true"`
	Database string `yaml:"database" env:"POSTGRES_DB" env-required:"true"`
	MaxConns int32  `yaml:"max_conns" env-default:"10"`
}

type JWT struct {
	Secret          string        `yaml:"secret" env:"JWT_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" env-required:"true"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" env-required:"true"`
}

type Minio struct {
	Endpoint        string `yaml:"endpoint" env:"MINIO_ENDPOINT"`
	AccessKeyID     string `yaml:"access_key_id" env:"MINIO_ACCESS_KEY_ID"`
	SecretAccessKey string `yaml:"secret_access_key" env:"MINIO_SECRET_ACCESS_KEY"`
	Bucket          string `yaml:"bucket" env-default:"hisba-media"`
	UseSSL          bool   `yaml:"use_ssl"`
}

type Redis struct {
	Addr      string        `yaml:"addr" env:"REDIS_ADDR"`
	Password  string        `yaml:"password" env:"REDIS_PASSWORD"`
	DB        int           `yaml:"db"`
	ReportTTL time.Duration `yaml:"report_ttl" env-default:"1m"`
}

type Order struct {
	// DeliveryFee is the flat fee added to every checkout, kept as a decimal string.
	DeliveryFee string `yaml:"delivery_fee" env:"ORDER_DELIVERY_FEE" env-default:"5.00"`
}

// DeliveryFeeAmount parses the configured delivery fee.
func (o Order) DeliveryFeeAmount() (decimal.Decimal, error) {
	fee, err := decimal.NewFromString(o.DeliveryFee)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid delivery fee %q: %w", o.DeliveryFee, err)
	}

	if fee.IsNegative() {
		return decimal.Zero, fmt.Errorf("delivery fee must not be negative: %s", o.DeliveryFee)
	}

	return fee.Round(2), nil
}

func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is empty")
	}

	return MustLoadByPath(configPath)
}

func MustLoadByPath(configPath string) *Config {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("config reading error: " + err.Error())
	}

	if _, err := cfg.Order.DeliveryFeeAmount(); err != nil {
		panic("config reading error: " + err.Error())
	}

	return &cfg
}

// fetchConfigPath fetches config path from command line flag or environment variable.
// Priority: flag > env > default.
// Default value is empty string.
func fetchConfigPath() string {
	var res string

	flag.StringVar(&res, "config", "", "path to config file")
	flag.Parse()

	if res == "" {
		res = os.Getenv("CONFIG_PATH")
	}

	return res
}
