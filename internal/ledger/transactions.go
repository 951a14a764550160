package ledger

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// NewTransaction describes a debt to record: Payer owes Payee Amount.
// An empty GroupID records a friend transaction.
type NewTransaction struct {
	PayerID     string
	PayeeID     string
	Amount      decimal.Decimal
	Description string
	GroupID     string
}

// TransactionUpdate holds the fields an update may rewrite.
type TransactionUpdate struct {
	PayerID     string
	PayeeID     string
	Amount      decimal.Decimal
	Description string
}

// validateTerms checks the invariants every stored transaction satisfies.
func validateTerms(payerID, payeeID string, amount decimal.Decimal) error {
	if payerID == "" || payeeID == "" {
		return fmt.Errorf("%w: payer and payee are required", ErrInvalidArgument)
	}
	if payerID == payeeID {
		return fmt.Errorf("%w: cannot add expense with yourself", ErrInvalidArgument)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidArgument, amount)
	}
	return nil
}

// requireParty fails unless userID is the payer or payee of t.
func requireParty(t *models.Transaction, userID string) error {
	if userID != t.PayerID && userID != t.PayeeID {
		return fmt.Errorf("%w: user %s is not a party to transaction %s", ErrPermissionDenied, userID, t.ID)
	}
	return nil
}

// CreateTransaction records a new, unsettled transaction on behalf of callerID,
// who must be its payer or payee. Group transactions require both parties to be
// members of the group.
func (l *Ledger) CreateTransaction(ctx context.Context, callerID string, nt NewTransaction) (*models.Transaction, error) {
	if err := validateTerms(nt.PayerID, nt.PayeeID, nt.Amount); err != nil {
		return nil, err
	}
	if callerID != nt.PayerID && callerID != nt.PayeeID {
		return nil, fmt.Errorf("%w: user %s is not a party to the transaction", ErrPermissionDenied, callerID)
	}

	t := &models.Transaction{
		PayerID:     nt.PayerID,
		PayeeID:     nt.PayeeID,
		Amount:      nt.Amount,
		Date:        l.now().Unix(),
		GroupID:     nt.GroupID,
		Description: nt.Description,
		Type:        models.TransactionTypeFriend,
	}
	if nt.GroupID != "" {
		t.Type = models.TransactionTypeGroup
	}

	err := l.store.RunInTx(ctx, func(tx storage.Tx) error {
		return insertTransaction(ctx, tx, t)
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("Transaction created",
		"transaction_id", t.ID,
		"user_id", callerID,
		"type", t.Type,
		"group_id", t.GroupID,
		"amount", t.Amount.String(),
	)
	return t, nil
}

func insertTransaction(ctx context.Context, tx storage.Tx, t *models.Transaction) error {
	if _, err := getUser(ctx, tx, t.PayerID); err != nil {
		return err
	}
	if _, err := getUser(ctx, tx, t.PayeeID); err != nil {
		return err
	}
	if t.GroupID != "" {
		if _, err := getGroup(ctx, tx, t.GroupID); err != nil {
			return err
		}
		if err := requireMembers(ctx, tx, t.GroupID, t.PayerID, t.PayeeID); err != nil {
			return err
		}
	}
	return tx.CreateTransaction(ctx, t)
}

// AddFriendExpense records that callerID paid amount on friendID's behalf,
// so friendID owes callerID. No group is involved.
func (l *Ledger) AddFriendExpense(ctx context.Context, callerID, friendID string, amount decimal.Decimal, description string) (*models.Transaction, error) {
	return l.CreateTransaction(ctx, callerID, NewTransaction{
		PayerID:     friendID,
		PayeeID:     callerID,
		Amount:      amount,
		Description: description,
	})
}

// Settle marks a transaction as paid. Settling an already settled transaction is a no-op.
func (l *Ledger) Settle(ctx context.Context, callerID, txID string) error {
	err := l.store.RunInTx(ctx, func(tx storage.Tx) error {
		t, err := getTransaction(ctx, tx, txID)
		if err != nil {
			return err
		}
		if err := requireParty(t, callerID); err != nil {
			return err
		}
		if t.Settled {
			return nil
		}
		t.Settled = true
		return tx.UpdateTransaction(ctx, t)
	})
	if err != nil {
		return err
	}

	l.logger.Info("Transaction settled", "transaction_id", txID, "user_id", callerID)
	return nil
}

// UpdateTransaction rewrites payer, payee, amount and description of an unsettled
// transaction. The creation invariants are checked again against the new values,
// and a group transaction's new parties must be members of its group.
// Group and type never change.
func (l *Ledger) UpdateTransaction(ctx context.Context, callerID, txID string, upd TransactionUpdate) (*models.Transaction, error) {
	var updated *models.Transaction
	err := l.store.RunInTx(ctx, func(tx storage.Tx) error {
		t, err := getTransaction(ctx, tx, txID)
		if err != nil {
			return err
		}
		if _, err := getUser(ctx, tx, upd.PayerID); err != nil {
			return err
		}
		if _, err := getUser(ctx, tx, upd.PayeeID); err != nil {
			return err
		}
		if err := requireParty(t, callerID); err != nil {
			return err
		}
		if err := validateTerms(upd.PayerID, upd.PayeeID, upd.Amount); err != nil {
			return err
		}
		if t.Settled {
			return fmt.Errorf("%w: transaction %s is already settled", ErrConflict, txID)
		}
		if t.GroupID != "" {
			if err := requireMembers(ctx, tx, t.GroupID, upd.PayerID, upd.PayeeID); err != nil {
				return err
			}
		}

		t.PayerID = upd.PayerID
		t.PayeeID = upd.PayeeID
		t.Amount = upd.Amount
		t.Description = upd.Description
		if err := tx.UpdateTransaction(ctx, t); err != nil {
			return err
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("Transaction updated", "transaction_id", txID, "user_id", callerID)
	return updated, nil
}

// RemoveTransaction deletes a transaction.
func (l *Ledger) RemoveTransaction(ctx context.Context, callerID, txID string) error {
	err := l.store.RunInTx(ctx, func(tx storage.Tx) error {
		t, err := getTransaction(ctx, tx, txID)
		if err != nil {
			return err
		}
		if err := requireParty(t, callerID); err != nil {
			return err
		}
		return tx.DeleteTransaction(ctx, txID)
	})
	if err != nil {
		return err
	}

	l.logger.Info("Transaction removed", "transaction_id", txID, "user_id", callerID)
	return nil
}

// TransactionsForUser lists every transaction where userID is payer or payee,
// across groups and friend transactions.
func (l *Ledger) TransactionsForUser(ctx context.Context, userID string) ([]*models.TransactionDetail, error) {
	var details []*models.TransactionDetail
	err := l.snapshot(ctx, func(r storage.Reader) error {
		if _, err := getUser(ctx, r, userID); err != nil {
			return err
		}
		var err error
		details, err = r.ListTransactionsByUser(ctx, userID)
		return err
	})
	return details, err
}

// TransactionsForGroup lists every transaction scoped to groupID.
func (l *Ledger) TransactionsForGroup(ctx context.Context, groupID string) ([]*models.TransactionDetail, error) {
	var details []*models.TransactionDetail
	err := l.snapshot(ctx, func(r storage.Reader) error {
		if _, err := getGroup(ctx, r, groupID); err != nil {
			return err
		}
		var err error
		details, err = r.ListTransactionsByGroup(ctx, groupID)
		return err
	})
	return details, err
}

// FriendTransactions lists the friend transactions between two users in either direction.
func (l *Ledger) FriendTransactions(ctx context.Context, userID, friendID string) ([]*models.TransactionDetail, error) {
	var details []*models.TransactionDetail
	err := l.snapshot(ctx, func(r storage.Reader) error {
		if _, err := getUser(ctx, r, userID); err != nil {
			return err
		}
		if _, err := getUser(ctx, r, friendID); err != nil {
			return err
		}
		var err error
		details, err = r.ListFriendTransactions(ctx, userID, friendID)
		return err
	})
	return details, err
}
