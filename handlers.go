package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"shopbot/logic"
	"shopbot/session"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type cartLineView struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type chatResponse struct {
	SessionID string         `json:"session_id"`
	Reply     string         `json:"reply"`
	Intent    string         `json:"intent"`
	Cart      []cartLineView `json:"cart"`
	Total     int            `json:"total"`
	OrderID   string         `json:"order_id,omitempty"`
}

type productView struct {
	Name        string `json:"name"`
	UnitPrice   int    `json:"unit_price"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleNewSession(w http.ResponseWriter, _ *http.Request) {
	sess, err := s.sessions.Create()
	if err != nil {
		logger.Error("failed to create session", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"session_id": sess.ID})
}

// handleChat feeds one message through the resolver. Each request is one
// atomic step: resolve, persist session, answer. The caller serializes
// requests per session.
func (s *server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Message == "" {
		http.Error(w, "session_id and message are required", http.StatusBadRequest)
		return
	}

	sess, err := s.session(req.SessionID)
	if err != nil {
		logger.Error("failed to resolve session", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	res, err := s.logic.Respond(r.Context(), sess.State, req.Message)
	if err != nil {
		var shopErr *logic.ShopError
		if errors.As(err, &shopErr) && shopErr.Code == logic.StatusDocumentFailed {
			logger.Error("order document generation failed",
				zap.String("session_id", sess.ID), zap.Error(err))
			http.Error(w, "order could not be completed, please try again", http.StatusBadGateway)
			return
		}
		logger.Error("failed to resolve message", zap.String("session_id", sess.ID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	resp := chatResponse{
		SessionID: sess.ID,
		Reply:     res.Reply,
		Intent:    res.Intent.Kind.String(),
		Cart:      cartView(sess.State),
		Total:     sess.State.Subtotal(s.catalog),
	}

	if res.Order != nil {
		if _, err := s.sessions.PutOrder(res.Order, res.Document); err != nil {
			logger.Error("failed to store order", zap.String("order_id", res.Order.ID), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		resp.OrderID = res.Order.ID
		logger.Info("order placed",
			zap.String("session_id", sess.ID),
			zap.String("order_id", res.Order.ID),
			zap.Int("grand_total", res.Order.GrandTotal),
		)
	}

	sess.History = append(sess.History, session.Exchange{User: req.Message, Bot: res.Reply})
	if err := s.sessions.Save(sess); err != nil {
		logger.Error("failed to save session", zap.String("session_id", sess.ID), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *server) handleCatalog(w http.ResponseWriter, _ *http.Request) {
	products := s.catalog.All()
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, productView{
			Name:        p.Name,
			UnitPrice:   p.UnitPrice,
			Description: p.Description,
			Image:       p.ImageRef,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *server) handleCart(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("session_id")
	sess, err := s.sessions.Get(id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			http.Error(w, "session not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to load session", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cart":  cartView(sess.State),
		"total": sess.State.Subtotal(s.catalog),
	})
}

func (s *server) handleOrderDocument(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	rec, err := s.sessions.GetOrder(id)
	if err != nil {
		if errors.Is(err, session.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		logger.Error("failed to load order", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="order_summary.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(rec.PDF)
}

// session returns the identified session, creating one when the id is
// empty or unknown so a fresh client can start chatting immediately.
func (s *server) session(id string) (*session.Session, error) {
	if id == "" {
		return s.sessions.Create()
	}
	sess, err := s.sessions.Get(id)
	if errors.Is(err, session.ErrSessionNotFound) {
		return s.sessions.Create()
	}
	return sess, err
}

func cartView(state *logic.CartState) []cartLineView {
	snapshot := state.Snapshot()
	out := make([]cartLineView, 0, len(snapshot))
	for _, line := range snapshot {
		out = append(out, cartLineView{Product: line.Product, Quantity: line.Quantity})
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && logger != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
