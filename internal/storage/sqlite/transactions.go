package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// detailQuery selects transactions joined with the names they reference.
// Friend transactions have no group, so group columns come back empty.
const detailQuery = `
	SELECT t.id, t.payer_id, t.payee_id, t.amount, t.date, COALESCE(t.group_id, ''),
	       t.settled, t.description, t.type,
	       p.name, e.name, COALESCE(g.name, '')
	FROM transactions t
	JOIN users p ON p.id = t.payer_id
	JOIN users e ON e.id = t.payee_id
	LEFT JOIN groups g ON g.id = t.group_id
`

// CreateTransaction persists a new transaction.
func (s *queries) CreateTransaction(ctx context.Context, tx *models.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.New().String()
	}
	if tx.Date == 0 {
		tx.Date = time.Now().Unix()
	}

	_, err := s.q.ExecContext(ctx,
		`INSERT INTO transactions (id, payer_id, payee_id, amount, date, group_id, settled, description, type)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tx.ID, tx.PayerID, tx.PayeeID, tx.Amount.String(), tx.Date,
		nullable(tx.GroupID), tx.Settled, tx.Description, string(tx.Type),
	)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", classify(err))
	}

	return nil
}

// GetTransaction retrieves a transaction by ID.
func (s *queries) GetTransaction(ctx context.Context, txID string) (*models.Transaction, error) {
	tx := &models.Transaction{}
	var groupID sql.NullString
	var txType string

	err := s.q.QueryRowContext(ctx,
		`SELECT id, payer_id, payee_id, amount, date, group_id, settled, description, type
		 FROM transactions WHERE id = ?`,
		txID,
	).Scan(&tx.ID, &tx.PayerID, &tx.PayeeID, &tx.Amount, &tx.Date,
		&groupID, &tx.Settled, &tx.Description, &txType)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: transaction %s", storage.ErrNotFound, txID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	if groupID.Valid {
		tx.GroupID = groupID.String
	}
	tx.Type = models.TransactionType(txType)

	return tx, nil
}

// UpdateTransaction rewrites the mutable columns of a transaction.
func (s *queries) UpdateTransaction(ctx context.Context, tx *models.Transaction) error {
	res, err := s.q.ExecContext(ctx,
		`UPDATE transactions
		 SET payer_id = ?, payee_id = ?, amount = ?, settled = ?, description = ?
		 WHERE id = ?`,
		tx.PayerID, tx.PayeeID, tx.Amount.String(), tx.Settled, tx.Description, tx.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", classify(err))
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: transaction %s", storage.ErrNotFound, tx.ID)
	}
	return nil
}

// DeleteTransaction removes a transaction by ID.
func (s *queries) DeleteTransaction(ctx context.Context, txID string) error {
	res, err := s.q.ExecContext(ctx, "DELETE FROM transactions WHERE id = ?", txID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: transaction %s", storage.ErrNotFound, txID)
	}
	return nil
}

// ListTransactionsByUser returns the user's transactions as payer or payee, newest first.
func (s *queries) ListTransactionsByUser(ctx context.Context, userID string) ([]*models.TransactionDetail, error) {
	return s.listDetails(ctx,
		detailQuery+` WHERE t.payer_id = ? OR t.payee_id = ? ORDER BY t.date DESC, t.rowid DESC`,
		userID, userID,
	)
}

// ListTransactionsByGroup returns the group's transactions, newest first.
func (s *queries) ListTransactionsByGroup(ctx context.Context, groupID string) ([]*models.TransactionDetail, error) {
	return s.listDetails(ctx,
		detailQuery+` WHERE t.group_id = ? ORDER BY t.date DESC, t.rowid DESC`,
		groupID,
	)
}

// ListFriendTransactions returns group-less transactions between two users, newest first.
func (s *queries) ListFriendTransactions(ctx context.Context, userID, friendID string) ([]*models.TransactionDetail, error) {
	return s.listDetails(ctx,
		detailQuery+` WHERE t.group_id IS NULL
		  AND ((t.payer_id = ? AND t.payee_id = ?) OR (t.payer_id = ? AND t.payee_id = ?))
		ORDER BY t.date DESC, t.rowid DESC`,
		userID, friendID, friendID, userID,
	)
}

// CountTransactionsByGroup counts the transactions that reference the group.
func (s *queries) CountTransactionsByGroup(ctx context.Context, groupID string) (int, error) {
	var n int
	if err := s.q.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM transactions WHERE group_id = ?", groupID,
	).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return n, nil
}

func (s *queries) listDetails(ctx context.Context, query string, args ...any) ([]*models.TransactionDetail, error) {
	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var details []*models.TransactionDetail
	for rows.Next() {
		d := &models.TransactionDetail{}
		var txType string
		if err := rows.Scan(&d.ID, &d.PayerID, &d.PayeeID, &d.Amount, &d.Date, &d.GroupID,
			&d.Settled, &d.Description, &txType,
			&d.PayerName, &d.PayeeName, &d.GroupName); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		d.Type = models.TransactionType(txType)
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}

	return details, nil
}
