package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/pkg/api"
)

// parseAmount parses a decimal string from the wire.
func parseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

func toAPIUser(u *models.User) *api.User {
	return &api.User{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func toAPIUsers(users []*models.User) []*api.User {
	out := make([]*api.User, len(users))
	for i, u := range users {
		out[i] = toAPIUser(u)
	}
	return out
}

func toAPIGroup(g *models.Group) *api.Group {
	return &api.Group{
		ID:        g.ID,
		Name:      g.Name,
		CreatedAt: g.CreatedAt,
	}
}

func toAPIGroups(groups []*models.Group) []*api.Group {
	out := make([]*api.Group, len(groups))
	for i, g := range groups {
		out[i] = toAPIGroup(g)
	}
	return out
}

func toAPITransaction(t *models.Transaction) *api.Transaction {
	out := &api.Transaction{
		ID:          t.ID,
		PayerID:     t.PayerID,
		PayeeID:     t.PayeeID,
		Amount:      t.Amount.String(),
		Date:        t.Date,
		Settled:     t.Settled,
		Description: t.Description,
		Type:        string(t.Type),
	}
	if t.GroupID != "" {
		groupID := t.GroupID
		out.GroupID = &groupID
	}
	return out
}

func toAPITransactions(txns []*models.Transaction) []*api.Transaction {
	out := make([]*api.Transaction, len(txns))
	for i, t := range txns {
		out[i] = toAPITransaction(t)
	}
	return out
}

func toAPIDetails(details []*models.TransactionDetail) []*api.Transaction {
	out := make([]*api.Transaction, len(details))
	for i, d := range details {
		t := toAPITransaction(&d.Transaction)
		t.PayerName = d.PayerName
		t.PayeeName = d.PayeeName
		if d.GroupName != "" {
			groupName := d.GroupName
			t.GroupName = &groupName
		}
		out[i] = t
	}
	return out
}
