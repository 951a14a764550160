// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/settleup/internal/models"
)

var (
	// ErrNotFound is returned when a lookup by ID or email matches nothing.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write violates a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate record")
	// ErrReference is returned when a write breaks a foreign key: the referenced
	// record is missing, or a delete targets a record that is still referenced.
	ErrReference = errors.New("foreign key violation")
)

// Reader defines the query side of the ledger store.
// Lookups of a single record return an error wrapping ErrNotFound when nothing matches.
type Reader interface {
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUsersByIDs returns the users that exist, keyed by ID.
	// Unknown IDs are omitted from the result.
	GetUsersByIDs(ctx context.Context, ids []string) (map[string]*models.User, error)

	// ListUsersNotInGroup returns every user without a membership in the group.
	ListUsersNotInGroup(ctx context.Context, groupID string) ([]*models.User, error)

	GetGroup(ctx context.Context, groupID string) (*models.Group, error)
	GroupExistsByName(ctx context.Context, name string) (bool, error)

	// ListGroupsByUser returns the groups the user belongs to.
	ListGroupsByUser(ctx context.Context, userID string) ([]*models.Group, error)

	// ListGroupsNotJoined returns the groups the user does not belong to.
	ListGroupsNotJoined(ctx context.Context, userID string) ([]*models.Group, error)

	IsMember(ctx context.Context, groupID, userID string) (bool, error)

	// ListGroupMembers returns the group's roster ordered by join time.
	ListGroupMembers(ctx context.Context, groupID string) ([]*models.User, error)

	GetTransaction(ctx context.Context, txID string) (*models.Transaction, error)

	// ListTransactionsByUser returns transactions where the user is payer or payee.
	ListTransactionsByUser(ctx context.Context, userID string) ([]*models.TransactionDetail, error)

	// ListTransactionsByGroup returns every transaction scoped to the group.
	ListTransactionsByGroup(ctx context.Context, groupID string) ([]*models.TransactionDetail, error)

	// ListFriendTransactions returns friend transactions between the two users in either direction.
	ListFriendTransactions(ctx context.Context, userID, friendID string) ([]*models.TransactionDetail, error)

	CountTransactionsByGroup(ctx context.Context, groupID string) (int, error)
}

// Writer defines the mutating side of the ledger store.
type Writer interface {
	// CreateUser persists a new user. The user.ID field is populated by the store when empty.
	CreateUser(ctx context.Context, user *models.User) error

	// CreateGroup persists a new group. The group.ID and CreatedAt fields are populated
	// by the store when empty. Returns ErrDuplicate when the name is taken.
	CreateGroup(ctx context.Context, group *models.Group) error
	DeleteGroup(ctx context.Context, groupID string) error

	// AddMember inserts a membership. Returns ErrDuplicate when the pair already exists.
	AddMember(ctx context.Context, m *models.Membership) error
	// RemoveMember deletes a membership. Returns ErrNotFound when the pair does not exist.
	RemoveMember(ctx context.Context, groupID, userID string) error

	// CreateTransaction persists a new transaction. The tx.ID field is populated by the store when empty.
	CreateTransaction(ctx context.Context, tx *models.Transaction) error
	// UpdateTransaction rewrites every mutable column of an existing transaction.
	UpdateTransaction(ctx context.Context, tx *models.Transaction) error
	DeleteTransaction(ctx context.Context, txID string) error
}

// Tx is a unit of work against the store. Writes made through it become visible
// only when the function passed to RunInTx returns nil.
type Tx interface {
	Reader
	Writer
}

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the ledger.
type Store interface {
	Reader

	// RunInTx runs fn in a single transaction. It commits when fn returns nil
	// and rolls back otherwise, returning fn's error unchanged.
	RunInTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any resources held by the store.
	Close() error
}
