// Package config читает настройки клиента из переменных окружения
// с префиксом HOTELCLIENT_. Флаги командной строки имеют приоритет
// и применяются поверх в main.
package config

import "github.com/kelseyhightower/envconfig"

// Config — настройки клиента.
type Config struct {
	ServerURL   string `envconfig:"SERVER_URL" default:"http://localhost:5000"`
	SessionFile string `envconfig:"SESSION_FILE" default:"hotelclient_session.json"`
	LogDir      string `envconfig:"LOG_DIR" default:"logs"`
	Debug       bool   `envconfig:"DEBUG" default:"false"`
}

// Load читает настройки из окружения.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("hotelclient", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
