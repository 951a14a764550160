// Package ledger implements the expense ledger: group membership, the transaction
// lifecycle, group creation and the balance views built on top of them.
//
// Every operation takes the acting user's ID explicitly; the ledger never reads
// identity from the context. Each mutating operation runs in one store transaction.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// Ledger coordinates ledger operations against a store.
type Ledger struct {
	store  storage.Store
	logger *slog.Logger
	now    func() time.Time
}

// New creates a Ledger backed by the given store.
func New(store storage.Store, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// snapshot runs read-only queries inside one store transaction so that a view
// is computed from a single consistent state.
func (l *Ledger) snapshot(ctx context.Context, fn func(r storage.Reader) error) error {
	return l.store.RunInTx(ctx, func(tx storage.Tx) error {
		return fn(tx)
	})
}

func derefUsers(users []*models.User) []models.User {
	out := make([]models.User, len(users))
	for i, u := range users {
		out[i] = *u
	}
	return out
}
