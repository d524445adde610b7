// Command example serves a small user directory whose handlers validate
// their parameters before running.
package main

import (
	"bytes"
	"context"
	"log/slog"
	"os"

	"github.com/dmitrymomot/paramguard/pkg/config"
	"github.com/dmitrymomot/paramguard/pkg/httpserver"
	"github.com/dmitrymomot/paramguard/pkg/i18n"
	"github.com/dmitrymomot/paramguard/pkg/logger"
	"github.com/dmitrymomot/paramguard/pkg/requestid"
	"github.com/dmitrymomot/paramguard/pkg/rules"
)

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.Name),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	manifest, err := loadManifest(cfg.RulesFile)
	if err != nil {
		log.Error("failed to load rules", logger.Error(err))
		os.Exit(1)
	}

	tr, err := loadMessages(cfg.MessagesFile, log)
	if err != nil {
		log.Error("failed to load messages", logger.Error(err))
		os.Exit(1)
	}

	router, err := newRouter(log, manifest, tr)
	if err != nil {
		log.Error("failed to register handlers", logger.Error(err))
		os.Exit(1)
	}

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}

func loadManifest(path string) (*rules.Manifest, error) {
	if path == "" {
		return rules.LoadManifest(bytes.NewReader(defaultRules))
	}
	return rules.LoadManifestFile(path)
}

func loadMessages(path string, log *slog.Logger) (*i18n.Translator, error) {
	if path == "" {
		return i18n.Load(bytes.NewReader(defaultMessages), i18n.WithLogger(log))
	}
	return i18n.LoadFile(path, i18n.WithLogger(log))
}
