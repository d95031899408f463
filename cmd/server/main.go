package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/spacesedan/tweetsense/config"
	"github.com/spacesedan/tweetsense/internal/analyzer"
	"github.com/spacesedan/tweetsense/internal/api"
	"github.com/spacesedan/tweetsense/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	a := analyzer.New()
	srv := api.NewServer(a, config.Getenv("DEFAULT_TEXT_COLUMN", "tweet"))

	addr := ":" + config.Getenv("PORT", "8080")
	slog.Info("[Main] Starting server", slog.String("addr", addr))

	if err := http.ListenAndServe(addr, srv.Router()); err != nil {
		slog.Error("[Main] Server failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
