package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jellydator/validation"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

var errInvalidAddress error = errors.New("must be a hex encoded address")

type App struct {
	Port              string        `env:"API_PORT" envDefault:"8080"`
	NodeURL           string        `env:"ETH_NODE_URL,required"`
	DBConnectionURL   string        `env:"DB_CONNECTION_URL,required"`
	DBConnectMaxWait  time.Duration `env:"DB_CONNECT_MAX_WAIT" envDefault:"32s"`
	JWTSecret         string        `env:"JWT_SECRET,required"`
	AdminUsername     string        `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash string        `env:"ADMIN_PASSWORD_HASH"`
	OracleAddress     string        `env:"ORACLE_ADDRESS" envDefault:"0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419"`
	HistoryFromBlock  uint64        `env:"HISTORY_FROM_BLOCK" envDefault:"16976395"`
	HistoryWindow     uint64        `env:"HISTORY_WINDOW" envDefault:"500"`
	RetryAttempts     int           `env:"RETRY_ATTEMPTS" envDefault:"3"`
	RetryDelay        time.Duration `env:"RETRY_DELAY" envDefault:"10ms"`
	ProgressEvery     uint64        `env:"PROGRESS_EVERY" envDefault:"100"`
	RedisAddr         string        `env:"REDIS_ADDR"`
	RedisCacheTTL     time.Duration `env:"REDIS_CACHE_TTL" envDefault:"1h"`
	CORSOrigins       []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	LogLevel          string        `env:"LOG_LEVEL" envDefault:"info"`
}

// NewApp reads the process environment, loading a .env file first when one exists.
func NewApp() (App, error) {
	if err := loadDotEnv(dotEnvFile); err != nil {
		return App{}, fmt.Errorf("load %s: %w", dotEnvFile, err)
	}

	return Parse(env.Options{})
}

func Parse(opts env.Options) (App, error) {
	var app App
	if err := env.Parse(&app, opts); err != nil {
		return App{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := app.Validate(); err != nil {
		return App{}, fmt.Errorf("validate config: %w", err)
	}

	return app, nil
}

func (a App) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.OracleAddress, validation.Required, validation.By(hexAddress)),
		validation.Field(&a.RetryAttempts, validation.Min(1)),
		validation.Field(&a.RetryDelay, validation.Min(time.Duration(0))),
		validation.Field(&a.HistoryWindow, validation.Min(uint64(1))),
		validation.Field(&a.RedisCacheTTL, validation.Min(time.Second)),
		validation.Field(&a.CORSOrigins, validation.Required),
	)
}

// Oracle returns the configured price feed address.
func (a App) Oracle() common.Address {
	return common.HexToAddress(a.OracleAddress)
}

func hexAddress(value interface{}) error {
	s, _ := value.(string)
	if !common.IsHexAddress(s) {
		return errInvalidAddress
	}
	return nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}
