package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/talx-hub/gopher-coins/internal/api/dto"
	"github.com/talx-hub/gopher-coins/internal/model"
	"github.com/talx-hub/gopher-coins/internal/model/user"
	"github.com/talx-hub/gopher-coins/internal/serviceerrs"
	"github.com/talx-hub/gopher-coins/internal/utils/auth"
)

type AuthHandler struct {
	logger *slog.Logger
	repo   UserRepository
	events EventEngine
	secret string
}

func NewAuthHandler(repo UserRepository, events EventEngine,
	log *slog.Logger, secret string,
) *AuthHandler {
	return &AuthHandler{
		logger: log,
		repo:   repo,
		events: events,
		secret: secret,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "failed to decode request", http.StatusBadRequest)
		return
	}
	if err := req.IsValid(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	loginHash := auth.Hash(req.Login)
	if h.repo.Exists(ctx, loginHash) {
		http.Error(w, "login is already taken", http.StatusConflict)
		return
	}

	u := user.User{
		LoginHash:    loginHash,
		PasswordHash: auth.Hash(req.Password),
	}
	if err := h.repo.Create(ctx, &u); err != nil {
		if errors.Is(err, serviceerrs.ErrConflict) {
			http.Error(w, "login is already taken", http.StatusConflict)
			return
		}
		h.logger.LogAttrs(ctx, slog.LevelError,
			"failed to create user",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, "failed to register", http.StatusInternalServerError)
		return
	}

	if _, _, err := h.events.OnRegister(ctx, u.ID); err != nil {
		h.logger.LogAttrs(ctx, slog.LevelError,
			"failed to grant registration coins",
			slog.String("user_id", u.ID),
			slog.Any(model.KeyLoggerError, err),
		)
	}

	h.setToken(w, r, u.ID)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "failed to decode request", http.StatusBadRequest)
		return
	}
	if req.Login == "" || req.Password == "" {
		http.Error(w, "wrong login or password", http.StatusUnauthorized)
		return
	}

	ctx := r.Context()
	u, err := h.repo.FindByLogin(ctx, auth.Hash(req.Login))
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			http.Error(w, "wrong login or password", http.StatusUnauthorized)
			return
		}
		h.logger.LogAttrs(ctx, slog.LevelError,
			"failed to find user",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, "failed to login", http.StatusInternalServerError)
		return
	}
	if u.PasswordHash != auth.Hash(req.Password) {
		http.Error(w, "wrong login or password", http.StatusUnauthorized)
		return
	}

	if _, err = h.events.OnLogin(ctx, u); err != nil {
		h.logger.LogAttrs(ctx, slog.LevelError,
			"failed to grant login coins",
			slog.String("user_id", u.ID),
			slog.Any(model.KeyLoggerError, err),
		)
	}

	h.setToken(w, r, u.ID)
}

func (h *AuthHandler) setToken(w http.ResponseWriter, r *http.Request, userID string) {
	cookie, err := auth.Authenticate(userID, []byte(h.secret))
	if err != nil {
		h.logger.LogAttrs(r.Context(), slog.LevelError,
			"failed to issue token",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, "failed to issue token", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &cookie)
	w.WriteHeader(http.StatusOK)
}
