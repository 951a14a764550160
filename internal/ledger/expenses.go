package ledger

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// GroupExpense is a bill PaidBy covered for the group, split equally across SharedWith.
// SharedWith may include PaidBy, whose own share produces no transaction.
type GroupExpense struct {
	PaidBy      string
	GroupID     string
	Amount      decimal.Decimal
	Description string
	SharedWith  []string
}

// AddGroupExpense splits an expense equally and records one group transaction
// from every other participant to PaidBy for their share. All transactions are
// written in one store transaction; every participant must be a group member.
func (l *Ledger) AddGroupExpense(ctx context.Context, e GroupExpense) ([]*models.Transaction, error) {
	if e.GroupID == "" {
		return nil, fmt.Errorf("%w: group is required", ErrInvalidArgument)
	}

	shares, err := calculator.SplitEqually(e.Amount, e.SharedWith)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	participants := make([]string, 0, len(shares))
	for p, share := range shares {
		// Tiny totals can leave someone a zero share; they owe nothing.
		if p == e.PaidBy || share.IsZero() {
			continue
		}
		participants = append(participants, p)
	}
	if len(participants) == 0 {
		return nil, fmt.Errorf("%w: expense must be shared with at least one other member", ErrInvalidArgument)
	}
	sort.Strings(participants)

	date := l.now().Unix()
	var created []*models.Transaction
	err = l.store.RunInTx(ctx, func(tx storage.Tx) error {
		created = nil
		for _, p := range participants {
			t := &models.Transaction{
				PayerID:     p,
				PayeeID:     e.PaidBy,
				Amount:      shares[p],
				Date:        date,
				GroupID:     e.GroupID,
				Description: e.Description,
				Type:        models.TransactionTypeGroup,
			}
			if err := insertTransaction(ctx, tx, t); err != nil {
				return err
			}
			created = append(created, t)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("Group expense added",
		"group_id", e.GroupID,
		"paid_by", e.PaidBy,
		"amount", e.Amount.String(),
		"transactions", len(created),
	)
	return created, nil
}
