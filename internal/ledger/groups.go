package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/settleup/internal/calculator"
	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// CreateGroup creates a group named name with founderID as its first member.
// The group and the founder's membership are written in one store transaction.
// Names are unique across all groups.
func (l *Ledger) CreateGroup(ctx context.Context, founderID, name string) (*models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: group name is required", ErrInvalidArgument)
	}

	now := l.now().Unix()
	group := &models.Group{Name: name, CreatedAt: now}

	err := l.store.RunInTx(ctx, func(tx storage.Tx) error {
		group.ID = ""

		if _, err := getUser(ctx, tx, founderID); err != nil {
			return err
		}

		exists, err := tx.GroupExistsByName(ctx, name)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: group name %q already exists", ErrConflict, name)
		}

		if err := tx.CreateGroup(ctx, group); err != nil {
			if errors.Is(err, storage.ErrDuplicate) {
				return fmt.Errorf("%w: group name %q already exists", ErrConflict, name)
			}
			return err
		}

		return addMember(ctx, tx, group.ID, founderID, now)
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("Group created", "group_id", group.ID, "name", group.Name, "founder_id", founderID)
	return group, nil
}

// GroupView returns the group with what each member is currently owed.
func (l *Ledger) GroupView(ctx context.Context, groupID string) (*models.GroupView, error) {
	view := &models.GroupView{}
	err := l.snapshot(ctx, func(r storage.Reader) error {
		group, err := getGroup(ctx, r, groupID)
		if err != nil {
			return err
		}
		members, err := r.ListGroupMembers(ctx, groupID)
		if err != nil {
			return err
		}
		details, err := r.ListTransactionsByGroup(ctx, groupID)
		if err != nil {
			return err
		}

		txns := make([]models.Transaction, len(details))
		for i, d := range details {
			txns[i] = d.Transaction
		}

		view.Group = group
		view.Members = calculator.GroupBalances(derefUsers(members), txns, groupID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// OweDetails returns, per counterparty, how much they owe userID within groupID.
func (l *Ledger) OweDetails(ctx context.Context, userID, groupID string) ([]models.OweDetail, error) {
	var details []models.OweDetail
	err := l.snapshot(ctx, func(r storage.Reader) error {
		if _, err := getUser(ctx, r, userID); err != nil {
			return err
		}
		if _, err := getGroup(ctx, r, groupID); err != nil {
			return err
		}
		rows, err := r.ListTransactionsByGroup(ctx, groupID)
		if err != nil {
			return err
		}

		txns := make([]models.TransactionDetail, len(rows))
		for i, row := range rows {
			txns[i] = *row
		}
		details = calculator.OweDetails(userID, groupID, txns)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

// DeleteGroup removes a group and its memberships. Only members may delete a
// group, and only while no transaction references it; history is never orphaned.
func (l *Ledger) DeleteGroup(ctx context.Context, callerID, groupID string) error {
	err := l.store.RunInTx(ctx, func(tx storage.Tx) error {
		if _, err := getGroup(ctx, tx, groupID); err != nil {
			return err
		}

		member, err := tx.IsMember(ctx, groupID, callerID)
		if err != nil {
			return err
		}
		if !member {
			return fmt.Errorf("%w: only members can delete group %s", ErrPermissionDenied, groupID)
		}

		n, err := tx.CountTransactionsByGroup(ctx, groupID)
		if err != nil {
			return err
		}
		if n > 0 {
			return fmt.Errorf("%w: group %s has %d transactions", ErrConflict, groupID, n)
		}

		err = tx.DeleteGroup(ctx, groupID)
		if errors.Is(err, storage.ErrReference) {
			return fmt.Errorf("%w: group %s is still referenced", ErrConflict, groupID)
		}
		return err
	})
	if err != nil {
		return err
	}

	l.logger.Info("Group deleted", "group_id", groupID, "user_id", callerID)
	return nil
}
