package calculator

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mmynk/settleup/internal/models"
)

// GroupBalances computes, for every member of a group, the total of unsettled
// transactions in that group where the member is the payee.
//
// Every member appears exactly once, in roster order, with a zero balance when
// nobody owes them anything. Transactions outside the group, settled ones, and
// ones whose payee is not on the roster are ignored. An empty roster yields an
// empty, non-nil slice.
func GroupBalances(members []models.User, txns []models.Transaction, groupID string) []models.MemberBalance {
	owed := make(map[string]decimal.Decimal, len(members))
	for _, t := range txns {
		if t.Settled || t.GroupID != groupID {
			continue
		}
		owed[t.PayeeID] = owed[t.PayeeID].Add(t.Amount)
	}

	balances := make([]models.MemberBalance, 0, len(members))
	for _, m := range members {
		balances = append(balances, models.MemberBalance{
			UserID: m.ID,
			Name:   m.Name,
			Owed:   owed[m.ID], // zero value is 0
		})
	}
	return balances
}

// OweDetails breaks down who owes userID money within a group: one row per payer
// with the sum of their unsettled transactions to userID. Counterparties with
// nothing outstanding are omitted. Rows are sorted by payer ID.
func OweDetails(userID, groupID string, txns []models.TransactionDetail) []models.OweDetail {
	sums := make(map[string]*models.OweDetail)
	for _, t := range txns {
		if t.Settled || t.GroupID != groupID || t.PayeeID != userID {
			continue
		}
		d, ok := sums[t.PayerID]
		if !ok {
			d = &models.OweDetail{UserID: t.PayerID, Name: t.PayerName}
			sums[t.PayerID] = d
		}
		d.Amount = d.Amount.Add(t.Amount)
	}

	details := make([]models.OweDetail, 0, len(sums))
	for _, d := range sums {
		if d.Amount.IsZero() {
			continue
		}
		details = append(details, *d)
	}
	sort.Slice(details, func(i, j int) bool {
		return details[i].UserID < details[j].UserID
	})
	return details
}
