package ledger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage/sqlite"
)

// setupLedger creates a Ledger over a temp-file SQLite database.
func setupLedger(t *testing.T) (*Ledger, *sqlite.SQLiteStore) {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "settleup-ledger-*")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}

	store, err := sqlite.New(filepath.Join(tempDir, "ledger.db"))
	if err != nil {
		os.RemoveAll(tempDir)
		t.Fatalf("failed to create store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
		os.RemoveAll(tempDir)
	})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(store, logger), store
}

func createUser(t *testing.T, store *sqlite.SQLiteStore, name string) *models.User {
	t.Helper()
	user := models.NewUser(name+"@example.com", name, "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%s) failed: %v", name, err)
	}
	return user
}

func amount(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expectErr(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("expected %v, got %v", target, err)
	}
}

// tripFixture is a group "Trip" founded by Alice with Bob and Charlie as members.
type tripFixture struct {
	ledger  *Ledger
	store   *sqlite.SQLiteStore
	group   *models.Group
	alice   *models.User
	bob     *models.User
	charlie *models.User
}

func setupTrip(t *testing.T) *tripFixture {
	t.Helper()
	ctx := context.Background()

	l, store := setupLedger(t)
	f := &tripFixture{
		ledger:  l,
		store:   store,
		alice:   createUser(t, store, "Alice"),
		bob:     createUser(t, store, "Bob"),
		charlie: createUser(t, store, "Charlie"),
	}

	group, err := l.CreateGroup(ctx, f.alice.ID, "Trip")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	f.group = group

	for _, u := range []*models.User{f.bob, f.charlie} {
		if err := l.Join(ctx, u.ID, group.ID); err != nil {
			t.Fatalf("Join(%s) failed: %v", u.Name, err)
		}
	}
	return f
}

func (f *tripFixture) record(t *testing.T, payer, payee *models.User, amt string) *models.Transaction {
	t.Helper()
	tx, err := f.ledger.CreateTransaction(context.Background(), payer.ID, NewTransaction{
		PayerID:     payer.ID,
		PayeeID:     payee.ID,
		Amount:      amount(amt),
		Description: "expense",
		GroupID:     f.group.ID,
	})
	if err != nil {
		t.Fatalf("CreateTransaction failed: %v", err)
	}
	return tx
}
