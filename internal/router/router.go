package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/talx-hub/gopher-coins/internal/api/middlewares"
	"github.com/talx-hub/gopher-coins/internal/service/config"
)

const contentTypeJSON = "application/json"

type CustomRouter struct {
	router *chi.Mux
	logger *slog.Logger
	cfg    *config.Config
}

func New(cfg *config.Config, log *slog.Logger) *CustomRouter {
	if cfg == nil {
		cfg = &config.Config{}
	}
	if log == nil {
		log = slog.Default()
	}
	router := &CustomRouter{
		router: chi.NewRouter(),
		logger: log,
		cfg:    cfg,
	}

	return router
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type CoinsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	GetMissions(w http.ResponseWriter, r *http.Request)
	GetCheckin(w http.ResponseWriter, r *http.Request)
	PostCheckin(w http.ResponseWriter, r *http.Request)
	TriggerEvent(w http.ResponseWriter, r *http.Request)
	SelectCollectionPoint(w http.ResponseWriter, r *http.Request)
}

type CartHandler interface {
	Redeem(w http.ResponseWriter, r *http.Request)
	GetDiscount(w http.ResponseWriter, r *http.Request)
	GetLimit(w http.ResponseWriter, r *http.Request)
	CartChanged(w http.ResponseWriter, r *http.Request)
	SpendOnGame(w http.ResponseWriter, r *http.Request)
}

type OrdersHandler interface {
	PostOrder(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
}

type Handler interface {
	AuthHandler
	CoinsHandler
	CartHandler
	OrdersHandler
	HealthHandler
}

func (cr *CustomRouter) SetRouter(h Handler) {
	cr.router.Use(middleware.RequestID)
	cr.router.Use(middlewares.RequestLogger(cr.logger))
	cr.router.Use(middleware.Recoverer)

	jsonOnly := middleware.AllowContentType(contentTypeJSON)

	cr.router.Route("/api/user", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(jsonOnly)
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Authentication([]byte(cr.cfg.SecretKey), cr.logger))
			r.Use(middlewares.Session)

			r.Get("/balance", h.GetBalance)
			r.Get("/history", h.GetHistory)
			r.Get("/missions", h.GetMissions)
			r.Get("/checkin", h.GetCheckin)
			r.With(jsonOnly).Post("/checkin", h.PostCheckin)
			r.Post("/events/{kind}", h.TriggerEvent)
			r.With(jsonOnly).Post("/collection-point", h.SelectCollectionPoint)

			r.Route("/cart", func(r chi.Router) {
				r.With(jsonOnly).Post("/redeem", h.Redeem)
				r.Get("/discount", h.GetDiscount)
				r.Get("/limit", h.GetLimit)
				r.Post("/changed", h.CartChanged)
			})
			r.With(jsonOnly).Post("/games/spend", h.SpendOnGame)
			r.With(jsonOnly).Post("/orders", h.PostOrder)
		})
	})
	cr.router.Get("/ping", h.Ping)

	cr.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w,
			http.StatusText(http.StatusMethodNotAllowed),
			http.StatusMethodNotAllowed)
	})
}

func (cr *CustomRouter) GetRouter() *chi.Mux {
	return cr.router
}
