// Пакет config — конфигурация сервиса из переменных окружения (префикс SEARCH_).
package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// HTTP — настройки HTTP-сервера.
type HTTP struct {
	Addr              string        `default:":8080" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"5s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"2s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
	HandlerTimeout    time.Duration `default:"2s" envconfig:"HANDLER_TIMEOUT"`
}

// Postgres — настройки пула подключений.
// Пустой DSN — репозиторий в памяти вместо postgres.
type Postgres struct {
	DSN      string `default:"" envconfig:"DSN"`
	MaxConns int32  `default:"10" envconfig:"MAX_CONNS"`
}

// Kafka — настройки консьюмера обновлений позиций.
type Kafka struct {
	Brokers        []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic          string        `default:"inventory-items" envconfig:"TOPIC"`
	GroupID        string        `default:"inventory-search" envconfig:"GROUP_ID"`
	StartOffset    string        `default:"last" envconfig:"START_OFFSET"`
	ProcessTimeout time.Duration `default:"5s" envconfig:"PROCESS_TIMEOUT"`
	RetryInitial   time.Duration `default:"500ms" envconfig:"RETRY_INITIAL"`
	RetryMax       time.Duration `default:"10s" envconfig:"RETRY_MAX"`
}

// Cache — параметры клиентских кэшей (поиск и пиковая доступность).
type Cache struct {
	Capacity int           `default:"5" envconfig:"CAPACITY"`
	TTL      time.Duration `default:"60s" envconfig:"TTL"`
}

// Client — настройки HTTP-клиента поиска и оркестратора.
type Client struct {
	BaseURL  string        `default:"http://localhost:8080" envconfig:"BASE_URL"`
	Timeout  time.Duration `default:"10s" envconfig:"TIMEOUT"`
	Debounce time.Duration `default:"50ms" envconfig:"DEBOUNCE"`
}

// Tracing — настройки OTEL-трейсинга.
type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"ENABLED"`
	ServiceName string  `default:"inventory-search" envconfig:"SERVICE_NAME"`
	Endpoint    string  `default:"localhost:4318" envconfig:"ENDPOINT"`
	SampleRatio float64 `default:"1.0" envconfig:"SAMPLE_RATIO"`
}

// Logger — режим логгера.
type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP     HTTP
	Postgres Postgres
	Kafka    Kafka
	Cache    Cache
	Client   Client
	Tracing  Tracing
	Logger   Logger
}

// Load — читает конфигурацию из окружения с префиксом SEARCH_.
func Load() (Config, error) {
	return LoadWithPrefix("SEARCH")
}

// LoadWithPrefix — то же, но с произвольным префиксом (удобно в тестах).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
