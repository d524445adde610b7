// Package config loads typed configuration from environment variables.
//
// Structs describe their variables with github.com/caarlos0/env tags; values
// missing from the process environment may be supplied by .env files read with
// github.com/joho/godotenv. The default .env file is optional and read once
// per process; files passed with WithEnvFiles are mandatory.
//
//	type Config struct {
//		Addr      string `env:"HTTP_ADDR" envDefault:":8080"`
//		LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
//		RulesFile string `env:"RULES_FILE,required"`
//	}
//
//	var cfg Config
//	config.MustLoad(&cfg, config.WithPrefix("PARAMGUARD_"))
//
// Errors are wrapped with ErrParsingConfig or ErrLoadingEnvFile and can be
// matched with errors.Is.
package config
