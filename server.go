package main

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"shopbot/logic"
	"shopbot/session"
)

type server struct {
	logic    logic.ShopLogic
	catalog  *logic.Catalog
	sessions *session.Store
}

func newServer(shopLogic logic.ShopLogic, catalog *logic.Catalog, sessions *session.Store) *server {
	return &server{
		logic:    shopLogic,
		catalog:  catalog,
		sessions: sessions,
	}
}

func (s *server) router() *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/sessions", s.handleNewSession).Methods(http.MethodPost)
	r.HandleFunc("/api/chat", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/api/catalog", s.handleCatalog).Methods(http.MethodGet)
	r.HandleFunc("/api/cart", s.handleCart).Methods(http.MethodGet)
	r.HandleFunc("/api/orders/{id}/document", s.handleOrderDocument).Methods(http.MethodGet)

	return r
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		if logger != nil {
			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Duration("elapsed", time.Since(start)),
			)
		}
	})
}
