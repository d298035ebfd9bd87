package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopbot/logic"
	"shopbot/session"
)

func TestMain(m *testing.M) {
	logger = zap.NewNop()
	os.Exit(m.Run())
}

type fakeRenderer struct {
	fail error
}

func (r *fakeRenderer) Render(_ *logic.Order) ([]byte, error) {
	if r.fail != nil {
		return nil, r.fail
	}
	return []byte("%PDF-fake"), nil
}

func newTestServer(t *testing.T, renderer logic.DocumentRenderer) *server {
	t.Helper()
	catalog := logic.DefaultCatalog()
	store, err := session.NewStore()
	require.NoError(t, err)
	return newServer(logic.NewShopLogic(catalog, renderer, nil), catalog, store)
}

func postChat(t *testing.T, srv *server, sessionID, message string) (*httptest.ResponseRecorder, chatResponse) {
	t.Helper()
	body, err := json.Marshal(chatRequest{SessionID: sessionID, Message: message})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, req)

	var resp chatResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec, resp
}

func TestHandleChat_GreetingCreatesSession(t *testing.T) {
	srv := newTestServer(t, &fakeRenderer{})

	rec, resp := postChat(t, srv, "", "hello")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, "GREET", resp.Intent)
	assert.Equal(t, logic.ReplyGreeting, resp.Reply)
	assert.Empty(t, resp.Cart)
}

func TestHandleChat_AddAndShowCart(t *testing.T) {
	srv := newTestServer(t, &fakeRenderer{})

	rec, resp := postChat(t, srv, "", "add 2 amazon echo dot")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, resp.Cart, 1)
	assert.Equal(t, "Amazon Echo Dot", resp.Cart[0].Product)
	assert.Equal(t, 2, resp.Cart[0].Quantity)
	assert.Equal(t, 98, resp.Total)

	// The cart persists across requests within the session.
	req := httptest.NewRequest(http.MethodGet, "/api/cart?session_id="+resp.SessionID, nil)
	cartRec := httptest.NewRecorder()
	srv.router().ServeHTTP(cartRec, req)
	require.Equal(t, http.StatusOK, cartRec.Code)

	var cart struct {
		Cart  []cartLineView `json:"cart"`
		Total int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(cartRec.Body.Bytes(), &cart))
	assert.Equal(t, 98, cart.Total)
}

func TestHandleChat_CheckoutProducesDownloadableDocument(t *testing.T) {
	srv := newTestServer(t, &fakeRenderer{})

	_, resp := postChat(t, srv, "", "add 2 amazon echo dot")
	rec, resp := postChat(t, srv, resp.SessionID, "proceed")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CHECKOUT", resp.Intent)
	require.NotEmpty(t, resp.OrderID)
	assert.Empty(t, resp.Cart, "cart must be empty after checkout")
	assert.Zero(t, resp.Total)

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/orders/%s/document", resp.OrderID), nil)
	docRec := httptest.NewRecorder()
	srv.router().ServeHTTP(docRec, req)
	require.Equal(t, http.StatusOK, docRec.Code)
	assert.Equal(t, "application/pdf", docRec.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-fake", docRec.Body.String())
}

func TestHandleChat_DocumentFailureKeepsCart(t *testing.T) {
	srv := newTestServer(t, &fakeRenderer{fail: errors.New("render failed")})

	_, resp := postChat(t, srv, "", "add 2 amazon echo dot")
	rec, _ := postChat(t, srv, resp.SessionID, "proceed")
	require.Equal(t, http.StatusBadGateway, rec.Code)

	// The cart survived the failed checkout.
	sess, err := srv.sessions.Get(resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 2, sess.State.Quantity("Amazon Echo Dot"))
}

func TestHandleChat_BadRequest(t *testing.T) {
	srv := newTestServer(t, &fakeRenderer{})

	req := httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCatalog(t *testing.T) {
	srv := newTestServer(t, &fakeRenderer{})

	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []productView
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 6)
	assert.Equal(t, "Apple iPhone 14", products[0].Name)
	assert.Equal(t, 999, products[0].UnitPrice)
}

func TestHandleCart_UnknownSession(t *testing.T) {
	srv := newTestServer(t, &fakeRenderer{})

	req := httptest.NewRequest(http.MethodGet, "/api/cart?session_id=missing", nil)
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleOrderDocument_UnknownOrder(t *testing.T) {
	srv := newTestServer(t, &fakeRenderer{})

	req := httptest.NewRequest(http.MethodGet, "/api/orders/missing/document", nil)
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleNewSession(t *testing.T) {
	srv := newTestServer(t, &fakeRenderer{})

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", nil)
	rec := httptest.NewRecorder()
	srv.router().ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["session_id"])
}
