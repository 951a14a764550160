package ledger

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestAddGroupExpense(t *testing.T) {
	f := setupTrip(t)
	ctx := context.Background()

	created, err := f.ledger.AddGroupExpense(ctx, GroupExpense{
		PaidBy:      f.bob.ID,
		GroupID:     f.group.ID,
		Amount:      amount("100"),
		Description: "groceries",
		SharedWith:  []string{f.alice.ID, f.bob.ID, f.charlie.ID},
	})
	if err != nil {
		t.Fatalf("AddGroupExpense failed: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(created))
	}

	total := decimal.Zero
	for _, tx := range created {
		if tx.PayeeID != f.bob.ID {
			t.Errorf("payee = %s, want the payer of the bill", tx.PayeeID)
		}
		if tx.PayerID == f.bob.ID {
			t.Error("payer of the bill must not owe themselves")
		}
		total = total.Add(tx.Amount)
	}
	// 100 / 3 = 33.34 + 33.33 + 33.33; bob keeps his own share.
	owedToBob := amount("100").Sub(total)
	if !owedToBob.Equal(amount("33.33")) && !owedToBob.Equal(amount("33.34")) {
		t.Errorf("unexpected split: others owe %s in total", total)
	}

	view, err := f.ledger.GroupView(ctx, f.group.ID)
	if err != nil {
		t.Fatalf("GroupView failed: %v", err)
	}
	for _, m := range view.Members {
		if m.UserID == f.bob.ID && !m.Owed.Equal(total) {
			t.Errorf("bob owed = %s, want %s", m.Owed, total)
		}
	}
}

func TestAddGroupExpense_Invalid(t *testing.T) {
	f := setupTrip(t)
	ctx := context.Background()
	outsider := createUser(t, f.store, "Mallory")

	tests := []struct {
		name    string
		expense GroupExpense
		wantErr error
	}{
		{"no group", GroupExpense{PaidBy: f.bob.ID, Amount: amount("10"), SharedWith: []string{f.alice.ID}}, ErrInvalidArgument},
		{"no participants", GroupExpense{PaidBy: f.bob.ID, GroupID: f.group.ID, Amount: amount("10")}, ErrInvalidArgument},
		{"only the payer", GroupExpense{PaidBy: f.bob.ID, GroupID: f.group.ID, Amount: amount("10"), SharedWith: []string{f.bob.ID}}, ErrInvalidArgument},
		{"non-positive amount", GroupExpense{PaidBy: f.bob.ID, GroupID: f.group.ID, Amount: amount("0"), SharedWith: []string{f.alice.ID}}, ErrInvalidArgument},
		{"participant not a member", GroupExpense{PaidBy: f.bob.ID, GroupID: f.group.ID, Amount: amount("10"), SharedWith: []string{f.alice.ID, outsider.ID}}, ErrNotAMember},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.ledger.AddGroupExpense(ctx, tt.expense)
			expectErr(t, err, tt.wantErr)
		})
	}

	// The failed multi-participant expense must leave no partial rows.
	details, err := f.ledger.TransactionsForGroup(ctx, f.group.ID)
	if err != nil {
		t.Fatalf("TransactionsForGroup failed: %v", err)
	}
	if len(details) != 0 {
		t.Errorf("expected no transactions, got %d", len(details))
	}
}
