package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

var (
	// ErrNotFound is returned when a user, group or transaction ID does not resolve.
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned on uniqueness violations and on changes to settled history.
	ErrConflict = errors.New("conflict")
	// ErrAlreadyMember is returned when joining a group the user already belongs to.
	ErrAlreadyMember = errors.New("user is already a member of this group")
	// ErrNotAMember is returned when an operation needs a membership that does not exist.
	ErrNotAMember = errors.New("user is not a member of this group")
	// ErrInvalidArgument is returned when input breaks a ledger invariant.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPermissionDenied is returned when the caller is not a party to what they are changing.
	ErrPermissionDenied = errors.New("permission denied")
)

// getUser loads a user, translating a missing row into ErrNotFound.
func getUser(ctx context.Context, r storage.Reader, userID string) (*models.User, error) {
	user, err := r.GetUserByID(ctx, userID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}
	return user, err
}

// getGroup loads a group, translating a missing row into ErrNotFound.
func getGroup(ctx context.Context, r storage.Reader, groupID string) (*models.Group, error) {
	group, err := r.GetGroup(ctx, groupID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: group %s", ErrNotFound, groupID)
	}
	return group, err
}

// getTransaction loads a transaction, translating a missing row into ErrNotFound.
func getTransaction(ctx context.Context, r storage.Reader, txID string) (*models.Transaction, error) {
	t, err := r.GetTransaction(ctx, txID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: transaction %s", ErrNotFound, txID)
	}
	return t, err
}
