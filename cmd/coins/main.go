package main

import (
	"errors"
	"io/fs"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", slog.Any(model.KeyLoggerError, err))
	}
	service.RunServer()
}
