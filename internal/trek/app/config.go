package app

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	AccessSecret  string `env:"JWT_SECRET" env-required:"true" env-description:"HS256 secret for access tokens"`
	RefreshSecret string `env:"REFRESH_SECRET" env-required:"true" env-description:"HS256 secret for refresh tokens, must differ from JWT_SECRET"`
	Issuer        string `env:"TOKEN_ISSUER" env-default:"trekking-company" env-description:"iss claim of issued tokens"`

	Env                 string        `env:"ENV" env-default:"development" env-description:"development or production, production enables Secure cookies"`
	LogLevel            string        `env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
	LogFormat           string        `env:"LOG_FORMAT" env-default:"json" env-description:"json or text"`
	Port                int           `env:"PORT" env-default:"8080" env-description:"HTTP listen port"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s" env-description:"Deadline for a single request"`
	ShutdownGracePeriod time.Duration `env:"SHUTDOWN_GRACE_PERIOD" env-default:"10s" env-description:"Time allowed for in-flight requests on shutdown"`

	DatabaseFile string        `env:"DATABASE_FILE" env-default:"trek.db" env-description:"SQLite database path"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" env-default:"5s" env-description:"Deadline for credential store calls"`
	MaxAdmins    int           `env:"MAX_ADMINS" env-default:"2" env-description:"Number of admin accounts sign-up allows"`

	Assets AssetConfig
	Search SearchConfig
}

type AssetConfig struct {
	Driver    string `env:"ASSET_DRIVER" env-default:"minio" env-description:"minio or s3"`
	Endpoint  string `env:"ASSET_ENDPOINT" env-default:"localhost:9000" env-description:"Object store host[:port], empty uses the AWS default for s3"`
	AccessKey string `env:"ASSET_ACCESS_KEY" env-description:"Object store access key"`
	SecretKey string `env:"ASSET_SECRET_KEY" env-description:"Object store secret key"`
	Bucket    string `env:"ASSET_BUCKET" env-default:"trek-assets" env-description:"Bucket holding uploaded images"`
	Region    string `env:"ASSET_REGION" env-default:"us-east-1" env-description:"Bucket region"`
	UseSSL    bool   `env:"ASSET_USE_SSL" env-default:"false" env-description:"Use https for the object store"`
	PublicURL string `env:"ASSET_PUBLIC_URL" env-description:"Base URL images are served from, defaults to the endpoint"`
}

type SearchConfig struct {
	URLs            []string      `env:"SEARCH_URLS" env-separator:"," env-description:"Elasticsearch addresses, search falls back to the database when empty"`
	Username        string        `env:"SEARCH_USERNAME" env-description:"Elasticsearch user"`
	Password        string        `env:"SEARCH_PASSWORD" env-description:"Elasticsearch password"`
	Index           string        `env:"SEARCH_INDEX" env-default:"treks" env-description:"Index holding trek documents"`
	ReindexInterval time.Duration `env:"SEARCH_REINDEX_INTERVAL" env-default:"15m" env-description:"How often every trek is pushed to the index"`
}

// Production reports whether the service runs behind TLS in production.
func (c Config) Production() bool { return c.Env == "production" }

// LoadConfig reads the configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}

// Usage describes every supported environment variable.
func Usage() string {
	var cfg Config
	text, err := cleanenv.GetDescription(&cfg, nil)
	if err != nil {
		return err.Error()
	}
	return text
}
