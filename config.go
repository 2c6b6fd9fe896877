package login

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the service configuration. Values are read from the
// environment once at startup and passed into constructors explicitly;
// nothing reads the environment ambiently at query time.
type Config struct {
	Port int `env:"PORT" envDefault:"80"`

	// SPARQLEndpoint is the triple store URL the sudo client talks to.
	SPARQLEndpoint string        `env:"MU_SPARQL_ENDPOINT" envDefault:"http://database:8890/sparql"`
	SPARQLTimeout  time.Duration `env:"MU_SPARQL_TIMEOUT" envDefault:"30s"`

	// ApplicationSalt is mixed into every password hash alongside the
	// per-account salt.
	ApplicationSalt string `env:"MU_APPLICATION_SALT,required"`

	// UsersGraph and SessionsGraph are the two storage partitions. They
	// default to the same graph but may point to different ones when
	// session data is managed separately from identity data.
	UsersGraph    string `env:"USERS_GRAPH" envDefault:"http://mu.semte.ch/application"`
	SessionsGraph string `env:"SESSIONS_GRAPH" envDefault:"http://mu.semte.ch/application"`

	LogLevel slog.Level `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadConfig parses the configuration from the environment.
func LoadConfig() (Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	return cfg, nil
}
