package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv   string `env:"APP_ENV"   env-default:"local"`
	HTTPPort string `env:"HTTP_PORT" env-default:"8080"`

	DBHost     string `env:"DB_HOST"     env-default:"localhost"`
	DBPort     string `env:"DB_PORT"     env-default:"5432"`
	DBUser     string `env:"DB_USER"     env-required:"true"`
	DBPassword string `env:"DB_PASSWORD" env-required:"true"`
	DBName     string `env:"DB_NAME"     env-required:"true"`
	DBSslMode  string `env:"DB_SSLMODE"  env-default:"disable"`

	JWTSecret string `env:"JWT_SECRET" env-required:"true"`

	KafkaHost              string `env:"KAFKA_HOST"`
	KafkaOrderChangedTopic string `env:"KAFKA_ORDER_CHANGED_TOPIC" env-default:"order.changed"`
	OutboxRelaySchedule    string `env:"OUTBOX_RELAY_SCHEDULE"     env-default:"*/5 * * * * *"`
	OutboxRelayBatch       int    `env:"OUTBOX_RELAY_BATCH"        env-default:"100"`

	ShopTimezone string `env:"SHOP_TIMEZONE" env-default:"UTC"`

	ObjectStorageEndpoint  string        `env:"OBJECT_STORAGE_ENDPOINT"   env-default:"localhost:9000"`
	ObjectStorageAccessKey string        `env:"OBJECT_STORAGE_ACCESS_KEY"`
	ObjectStorageSecretKey string        `env:"OBJECT_STORAGE_SECRET_KEY"`
	ObjectStorageBucket    string        `env:"OBJECT_STORAGE_BUCKET"     env-default:"marketplace"`
	ObjectStorageRegion    string        `env:"OBJECT_STORAGE_REGION"     env-default:"us-east-1"`
	ObjectStorageUseSSL    bool          `env:"OBJECT_STORAGE_USE_SSL"    env-default:"false"`
	ObjectStorageLinkTTL   time.Duration `env:"OBJECT_STORAGE_LINK_TTL"   env-default:"15m"`

	MigrationsPath string `env:"MIGRATIONS_PATH" env-default:"./migrations"`
}

// LoadConfig reads dotenvPath into the environment when the file exists and
// then fills Config from the environment.
func LoadConfig(dotenvPath string) (Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read environment: %w", err)
	}
	return cfg, nil
}

// DSN is the PostgreSQL connection string in key/value form.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		dsnValue(c.DBHost), dsnValue(c.DBPort), dsnValue(c.DBUser), dsnValue(c.DBPassword),
		dsnValue(c.DBName), dsnValue(c.DBSslMode))
}

// MigrateURL is the connection URL understood by golang-migrate.
func (c Config) MigrateURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{
			"sslmode":            {c.DBSslMode},
			"x-migrations-table": {"schema_migrations"},
		}.Encode(),
	}
	return u.String()
}

// dsnValue single-quotes v when it is empty or holds a space, a quote or a backslash.
func dsnValue(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`)
	return "'" + r.Replace(v) + "'"
}
