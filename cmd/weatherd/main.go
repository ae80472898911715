package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"

	"weatheradvisor/internal/api"
	"weatheradvisor/internal/app"
	"weatheradvisor/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config", "err", err)
		os.Exit(1)
	}
	setupLogger(cfg.LogLevel)

	adv := app.New(app.Config{
		WttrBase: cfg.WttrBase,
		Timeout:  cfg.Timeout(),
	})
	srv := api.New(cfg, api.Deps{
		Weather:   adv.Weather,
		Questions: adv.Questions,
	})

	slog.Info("weatherd listening", "addr", cfg.Addr)
	if err := srv.Listen(cfg.Addr); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func setupLogger(level string) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}
