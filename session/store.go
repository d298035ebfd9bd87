// Package session holds per-shopper state: one cart and a chat history per
// session, plus finalized order records kept for document download.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-memdb"

	"shopbot/logic"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrOrderNotFound   = errors.New("order not found")
)

// Exchange is one user/bot round trip in the chat history.
type Exchange struct {
	User string
	Bot  string
}

// Session owns exactly one cart. The adapter serializes requests per
// session; the store itself only guards its own index.
type Session struct {
	ID        string
	State     *logic.CartState
	History   []Exchange
	CreatedAt time.Time
}

// OrderRecord is a finalized order together with its rendered document.
type OrderRecord struct {
	ID        string
	Order     *logic.Order
	PDF       []byte
	CreatedAt time.Time
}

// Store is an in-memory session and order index on go-memdb. Nothing
// survives a process restart.
type Store struct {
	db  *memdb.MemDB
	now func() time.Time
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			"session": {
				Name: "session",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
			"order": {
				Name: "order",
				Indexes: map[string]*memdb.IndexSchema{
					"id": {
						Name:    "id",
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
				},
			},
		},
	}
}

// NewStore creates an empty store.
func NewStore() (*Store, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, err
	}
	return &Store{db: db, now: time.Now}, nil
}

// Create starts a new session with an empty cart.
func (s *Store) Create() (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		State:     logic.EmptyState(),
		CreatedAt: s.now(),
	}
	if err := s.Save(sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// Get fetches a session by id.
func (s *Store) Get(id string) (*Session, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First("session", "id", id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ErrSessionNotFound
	}
	return raw.(*Session), nil
}

// Save inserts or replaces a session.
func (s *Store) Save(sess *Session) error {
	txn := s.db.Txn(true)
	if err := txn.Insert("session", sess); err != nil {
		txn.Abort()
		return err
	}
	txn.Commit()
	return nil
}

// PutOrder stores a finalized order and its rendered document.
func (s *Store) PutOrder(order *logic.Order, pdf []byte) (*OrderRecord, error) {
	rec := &OrderRecord{
		ID:        order.ID,
		Order:     order,
		PDF:       pdf,
		CreatedAt: s.now(),
	}
	txn := s.db.Txn(true)
	if err := txn.Insert("order", rec); err != nil {
		txn.Abort()
		return nil, err
	}
	txn.Commit()
	return rec, nil
}

// GetOrder fetches an order record by id.
func (s *Store) GetOrder(id string) (*OrderRecord, error) {
	txn := s.db.Txn(false)
	defer txn.Abort()

	raw, err := txn.First("order", "id", id)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, ErrOrderNotFound
	}
	return raw.(*OrderRecord), nil
}
