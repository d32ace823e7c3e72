package handlers

import (
	"log/slog"
	"net/http"

	"github.com/talx-hub/gopher-coins/internal/model"
)

type HealthHandler struct {
	checker HealthChecker
	logger  *slog.Logger
}

func NewHealthHandler(checker HealthChecker, log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  log,
	}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.checker.CheckHealth(r.Context()); err != nil {
		h.logger.LogAttrs(r.Context(), slog.LevelError,
			"storage is unreachable",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, "storage is unreachable", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
