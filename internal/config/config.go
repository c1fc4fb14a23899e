package config

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type Server struct {
	Port string `mapstructure:"port"`
}

type Storage struct {
	Driver string `mapstructure:"driver"`
}

type DynamoDBTables struct {
	Intents            string `mapstructure:"intents"`
	Grants             string `mapstructure:"grants"`
	Courses            string `mapstructure:"courses"`
	SideEffectFailures string `mapstructure:"side-effect-failures"`
}

type DynamoDB struct {
	Region          string         `mapstructure:"region"`
	Endpoint        string         `mapstructure:"endpoint"`
	AccessKeyID     string         `mapstructure:"access-key-id"`
	SecretAccessKey string         `mapstructure:"secret-access-key"`
	Tables          DynamoDBTables `mapstructure:"tables"`
}

type Postgres struct {
	URL string `mapstructure:"url"`
}

type RedirectGateway struct {
	MerchantID         string `mapstructure:"merchant-id"`
	MerchantSecret     string `mapstructure:"merchant-secret"`
	CheckoutURL        string `mapstructure:"checkout-url"`
	ReturnURL          string `mapstructure:"return-url"`
	CancelURL          string `mapstructure:"cancel-url"`
	NotifyURL          string `mapstructure:"notify-url"`
	SettlementCurrency string `mapstructure:"settlement-currency"`
}

type CheckoutGateway struct {
	AccessToken        string `mapstructure:"access-token"`
	WebhookSecret      string `mapstructure:"webhook-secret"`
	NotificationURL    string `mapstructure:"notification-url"`
	SettlementCurrency string `mapstructure:"settlement-currency"`
	Mock               bool   `mapstructure:"mock"`
}

type BankGateway struct {
	BankName           string `mapstructure:"bank-name"`
	AccountName        string `mapstructure:"account-name"`
	AccountNumber      string `mapstructure:"account-number"`
	SettlementCurrency string `mapstructure:"settlement-currency"`
}

type Gateways struct {
	Redirect RedirectGateway `mapstructure:"redirect"`
	Checkout CheckoutGateway `mapstructure:"checkout"`
	Bank     BankGateway     `mapstructure:"bank"`
}

type Currency struct {
	Rates  map[string]float64 `mapstructure:"rates"`
	Strict bool               `mapstructure:"strict"`
}

type Admin struct {
	Token string `mapstructure:"token"`
}

type Logs struct {
	URL   string `mapstructure:"url"`
	Level string `mapstructure:"level"`
}

type Metrics struct {
	URL          string `mapstructure:"url"`
	IntervalMs   int    `mapstructure:"interval-ms"`
	CommonLabels string `mapstructure:"common-labels"`
}

type Kafka struct {
	Brokers string `mapstructure:"brokers"`
	Topic   string `mapstructure:"topic"`
}

type SideEffects struct {
	TimeoutMs   int `mapstructure:"timeout-ms"`
	Parallelism int `mapstructure:"parallelism"`
}

// Config is loaded once at startup and handed to constructors by value.
// Nothing below cmd/ reads the environment directly.
type Config struct {
	Server      Server      `mapstructure:"server"`
	Storage     Storage     `mapstructure:"storage"`
	DynamoDB    DynamoDB    `mapstructure:"dynamodb"`
	Postgres    Postgres    `mapstructure:"postgres"`
	Gateways    Gateways    `mapstructure:"gateways"`
	Currency    Currency    `mapstructure:"currency"`
	Admin       Admin       `mapstructure:"admin"`
	Logs        Logs        `mapstructure:"logs"`
	Metrics     Metrics     `mapstructure:"metrics"`
	Kafka       Kafka       `mapstructure:"kafka"`
	SideEffects SideEffects `mapstructure:"side-effects"`
}

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

var defaults = map[string]any{
	"server.port":                           "8080",
	"storage.driver":                        StorageDynamoDB,
	"dynamodb.region":                       "us-east-1",
	"dynamodb.endpoint":                     "",
	"dynamodb.access-key-id":                "local",
	"dynamodb.secret-access-key":            "local",
	"dynamodb.tables.intents":               "payment_intents",
	"dynamodb.tables.grants":                "access_grants",
	"dynamodb.tables.courses":               "courses",
	"dynamodb.tables.side-effect-failures":  "side_effect_failures",
	"postgres.url":                          "",
	"gateways.redirect.merchant-id":         "",
	"gateways.redirect.merchant-secret":     "",
	"gateways.redirect.checkout-url":        "https://sandbox.payhere.lk/pay/checkout",
	"gateways.redirect.return-url":          "",
	"gateways.redirect.cancel-url":          "",
	"gateways.redirect.notify-url":          "",
	"gateways.redirect.settlement-currency": "LKR",
	"gateways.checkout.access-token":        "",
	"gateways.checkout.webhook-secret":      "",
	"gateways.checkout.notification-url":    "",
	"gateways.checkout.settlement-currency": "USD",
	"gateways.checkout.mock":                false,
	"gateways.bank.bank-name":               "",
	"gateways.bank.account-name":            "",
	"gateways.bank.account-number":          "",
	"gateways.bank.settlement-currency":     "LKR",
	"currency.strict":                       false,
	"admin.token":                           "",
	"logs.url":                              "",
	"logs.level":                            "info",
	"metrics.url":                           "",
	"metrics.interval-ms":                   10_000,
	"metrics.common-labels":                 "",
	"kafka.brokers":                         "",
	"kafka.topic":                           "course-access-granted",
	"side-effects.timeout-ms":               30_000,
	"side-effects.parallelism":              32,
}

// LoadConfig reads config.yaml from path when present and lets environment variables
// override every key (dots and dashes become underscores:
// GATEWAYS_REDIRECT_MERCHANT_SECRET).
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Currency.Rates = normalizeRates(cfg.Currency.Rates)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func MustLoadConfig(path string) Config {
	cfg, err := LoadConfig(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func (c Config) Validate() error {
	switch c.Storage.Driver {
	case StorageDynamoDB, StorageMemory:
	case StoragePostgres:
		if c.Postgres.URL == "" {
			return fmt.Errorf("postgres.url is required for storage driver %q", c.Storage.Driver)
		}
	default:
		return fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
	}
	if c.SideEffects.Parallelism <= 0 {
		return fmt.Errorf("side-effects.parallelism must be positive")
	}
	return nil
}

// viper lower-cases map keys; the rate table is keyed by ISO codes.
func normalizeRates(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[strings.ToUpper(k)] = v
	}
	return out
}
