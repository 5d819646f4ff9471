package config

import (
	"fmt"
	"reflect"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/shopspring/decimal"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Wagering WageringConfig
	Limits   LimitsConfig
	Jackpot  JackpotConfig
	Loyalty  LoyaltyConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Port            string        `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

type DatabaseConfig struct {
	Host            string        `env:"DB_HOST" envDefault:"localhost"`
	Port            string        `env:"DB_PORT" envDefault:"5432"`
	User            string        `env:"DB_USER" envDefault:"postgres"`
	Password        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	Name            string        `env:"DB_NAME" envDefault:"casino"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnMaxIdleTime time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type AuthConfig struct {
	JWTSecret string `env:"AUTH_JWT_SECRET" envDefault:"dev-secret-change-me"`
}

// WageringConfig holds the playthrough multipliers. A deposit of X adds
// X*DepositMultiplier to the deposit wagering requirement, and so on.
type WageringConfig struct {
	DepositMultiplier  int64         `env:"WAGERING_DEPOSIT_MULTIPLIER" envDefault:"1"`
	BonusMultiplier    int64         `env:"WAGERING_BONUS_MULTIPLIER" envDefault:"20"`
	FreeSpinMultiplier int64         `env:"WAGERING_FREESPIN_MULTIPLIER" envDefault:"30"`
	DefaultGrantTTL    time.Duration `env:"WAGERING_GRANT_TTL" envDefault:"720h"`
}

// LimitsConfig bounds what the bet validator accepts. Amounts are minor
// currency units.
type LimitsConfig struct {
	MinStake     int64 `env:"LIMITS_MIN_STAKE" envDefault:"10"`
	MaxStake     int64 `env:"LIMITS_MAX_STAKE" envDefault:"10000000"`
	DailyLossCap int64 `env:"LIMITS_DAILY_LOSS_CAP" envDefault:"100000000"`
}

// JackpotConfig carries the per-pool contribution rates as exact decimals
// (fractions of the wager).
type JackpotConfig struct {
	MiniRate  decimal.Decimal `env:"JACKPOT_MINI_RATE" envDefault:"0.001"`
	MinorRate decimal.Decimal `env:"JACKPOT_MINOR_RATE" envDefault:"0.0025"`
	MajorRate decimal.Decimal `env:"JACKPOT_MAJOR_RATE" envDefault:"0.005"`
	GrandRate decimal.Decimal `env:"JACKPOT_GRAND_RATE" envDefault:"0.01"`
}

type LoyaltyConfig struct {
	// PointsRate is VIP points awarded per minor unit wagered.
	PointsRate decimal.Decimal `env:"LOYALTY_POINTS_RATE" envDefault:"0.001"`
}

type WorkerConfig struct {
	GrantExpiryInterval time.Duration `env:"WORKER_GRANT_EXPIRY_INTERVAL" envDefault:"5m"`
	GrantExpiryBatch    int           `env:"WORKER_GRANT_EXPIRY_BATCH" envDefault:"50"`
	// StageTimeout bounds each best-effort settlement stage.
	StageTimeout time.Duration `env:"SETTLEMENT_STAGE_TIMEOUT" envDefault:"2s"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	opts := env.Options{
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(decimal.Decimal{}): func(v string) (any, error) {
				return decimal.NewFromString(v)
			},
		},
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}
