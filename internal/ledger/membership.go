package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

// Join makes userID a member of groupID.
// The membership primary key in the store is the final guard: if a concurrent
// join wins the race, the losing insert is reported as ErrAlreadyMember.
func (l *Ledger) Join(ctx context.Context, userID, groupID string) error {
	err := l.store.RunInTx(ctx, func(tx storage.Tx) error {
		if _, err := getGroup(ctx, tx, groupID); err != nil {
			return err
		}
		if _, err := getUser(ctx, tx, userID); err != nil {
			return err
		}

		member, err := tx.IsMember(ctx, groupID, userID)
		if err != nil {
			return err
		}
		if member {
			return fmt.Errorf("%w: user %s, group %s", ErrAlreadyMember, userID, groupID)
		}

		return addMember(ctx, tx, groupID, userID, l.now().Unix())
	})
	if err != nil {
		return err
	}

	l.logger.Info("User joined group", "user_id", userID, "group_id", groupID)
	return nil
}

// Leave removes userID from groupID.
func (l *Ledger) Leave(ctx context.Context, userID, groupID string) error {
	err := l.store.RunInTx(ctx, func(tx storage.Tx) error {
		if _, err := getGroup(ctx, tx, groupID); err != nil {
			return err
		}
		if _, err := getUser(ctx, tx, userID); err != nil {
			return err
		}

		err := tx.RemoveMember(ctx, groupID, userID)
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("%w: user %s, group %s", ErrNotAMember, userID, groupID)
		}
		return err
	})
	if err != nil {
		return err
	}

	l.logger.Info("User left group", "user_id", userID, "group_id", groupID)
	return nil
}

// AddUsers adds every resolvable user in userIDs to the group and returns the
// IDs that were actually added, in input order.
//
// IDs that are already members, repeated, or do not resolve to a user are
// skipped without error. It fails with ErrInvalidArgument when the group does
// not exist or when none of the IDs resolve to a user.
func (l *Ledger) AddUsers(ctx context.Context, groupID string, userIDs []string) ([]string, error) {
	var added []string
	err := l.store.RunInTx(ctx, func(tx storage.Tx) error {
		added = nil

		if _, err := tx.GetGroup(ctx, groupID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: group %s not found", ErrInvalidArgument, groupID)
			}
			return err
		}

		users, err := tx.GetUsersByIDs(ctx, userIDs)
		if err != nil {
			return err
		}
		if len(users) == 0 {
			return fmt.Errorf("%w: no valid users found to add", ErrInvalidArgument)
		}

		joinedAt := l.now().Unix()
		seen := make(map[string]bool, len(userIDs))
		for _, id := range userIDs {
			if _, ok := users[id]; !ok || seen[id] {
				continue
			}
			seen[id] = true

			member, err := tx.IsMember(ctx, groupID, id)
			if err != nil {
				return err
			}
			if member {
				continue
			}
			if err := addMember(ctx, tx, groupID, id, joinedAt); err != nil {
				return err
			}
			added = append(added, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.logger.Info("Users added to group", "group_id", groupID, "requested", len(userIDs), "added", len(added))
	return added, nil
}

// GroupsExcluding lists the groups userID could join.
func (l *Ledger) GroupsExcluding(ctx context.Context, userID string) ([]*models.Group, error) {
	var groups []*models.Group
	err := l.snapshot(ctx, func(r storage.Reader) error {
		if _, err := getUser(ctx, r, userID); err != nil {
			return err
		}
		var err error
		groups, err = r.ListGroupsNotJoined(ctx, userID)
		return err
	})
	return groups, err
}

// UsersExcluding lists the users who are not members of groupID.
func (l *Ledger) UsersExcluding(ctx context.Context, groupID string) ([]*models.User, error) {
	var users []*models.User
	err := l.snapshot(ctx, func(r storage.Reader) error {
		if _, err := getGroup(ctx, r, groupID); err != nil {
			return err
		}
		var err error
		users, err = r.ListUsersNotInGroup(ctx, groupID)
		return err
	})
	return users, err
}

// UserGroups lists the groups userID belongs to.
func (l *Ledger) UserGroups(ctx context.Context, userID string) ([]*models.Group, error) {
	var groups []*models.Group
	err := l.snapshot(ctx, func(r storage.Reader) error {
		if _, err := getUser(ctx, r, userID); err != nil {
			return err
		}
		var err error
		groups, err = r.ListGroupsByUser(ctx, userID)
		return err
	})
	return groups, err
}

// Members returns the roster of groupID in join order.
func (l *Ledger) Members(ctx context.Context, groupID string) ([]*models.User, error) {
	var members []*models.User
	err := l.snapshot(ctx, func(r storage.Reader) error {
		if _, err := getGroup(ctx, r, groupID); err != nil {
			return err
		}
		var err error
		members, err = r.ListGroupMembers(ctx, groupID)
		return err
	})
	return members, err
}

func addMember(ctx context.Context, tx storage.Tx, groupID, userID string, joinedAt int64) error {
	err := tx.AddMember(ctx, &models.Membership{
		GroupID:  groupID,
		UserID:   userID,
		JoinedAt: joinedAt,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return fmt.Errorf("%w: user %s, group %s", ErrAlreadyMember, userID, groupID)
	}
	return err
}

// requireMembers fails with ErrNotAMember for the first user not in the group.
func requireMembers(ctx context.Context, r storage.Reader, groupID string, userIDs ...string) error {
	for _, id := range userIDs {
		member, err := r.IsMember(ctx, groupID, id)
		if err != nil {
			return err
		}
		if !member {
			return fmt.Errorf("%w: user %s, group %s", ErrNotAMember, id, groupID)
		}
	}
	return nil
}
