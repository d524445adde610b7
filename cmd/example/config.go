package main

import "github.com/dmitrymomot/paramguard/pkg/httpserver"

type appConfig struct {
	Env          string `env:"APP_ENV" envDefault:"development"`
	Name         string `env:"APP_NAME" envDefault:"paramguard-example"`
	LogLevel     string `env:"LOG_LEVEL"`
	RulesFile    string `env:"RULES_FILE"`
	MessagesFile string `env:"MESSAGES_FILE"`

	HTTP httpserver.Config
}
