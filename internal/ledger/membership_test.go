package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/mmynk/settleup/internal/models"
	"github.com/mmynk/settleup/internal/storage"
)

func TestJoinLeave(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")
	bob := createUser(t, store, "Bob")

	group, err := l.CreateGroup(ctx, alice.ID, "Flat")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	steps := []struct {
		name    string
		op      func() error
		wantErr error
		member  bool
	}{
		{"join", func() error { return l.Join(ctx, bob.ID, group.ID) }, nil, true},
		{"join again", func() error { return l.Join(ctx, bob.ID, group.ID) }, ErrAlreadyMember, true},
		{"leave", func() error { return l.Leave(ctx, bob.ID, group.ID) }, nil, false},
		{"leave again", func() error { return l.Leave(ctx, bob.ID, group.ID) }, ErrNotAMember, false},
		{"rejoin", func() error { return l.Join(ctx, bob.ID, group.ID) }, nil, true},
	}

	for _, step := range steps {
		err := step.op()
		if step.wantErr == nil && err != nil {
			t.Fatalf("%s: unexpected error: %v", step.name, err)
		}
		if step.wantErr != nil && !errors.Is(err, step.wantErr) {
			t.Fatalf("%s: expected %v, got %v", step.name, step.wantErr, err)
		}

		member, err := store.IsMember(ctx, group.ID, bob.ID)
		if err != nil {
			t.Fatalf("%s: IsMember failed: %v", step.name, err)
		}
		if member != step.member {
			t.Errorf("%s: member = %v, want %v", step.name, member, step.member)
		}
	}

	members, err := l.Members(ctx, group.ID)
	if err != nil {
		t.Fatalf("Members failed: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("expected 2 members, got %d", len(members))
	}
}

func TestJoinLeave_NotFound(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")
	group, err := l.CreateGroup(ctx, alice.ID, "Flat")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	tests := []struct {
		name string
		err  error
	}{
		{"join unknown group", l.Join(ctx, alice.ID, "nonexistent-id")},
		{"join unknown user", l.Join(ctx, "ghost", group.ID)},
		{"leave unknown group", l.Leave(ctx, alice.ID, "nonexistent-id")},
		{"leave unknown user", l.Leave(ctx, "ghost", group.ID)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectErr(t, tt.err, ErrNotFound)
		})
	}
}

func TestJoin_Concurrent(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")
	bob := createUser(t, store, "Bob")

	group, err := l.CreateGroup(ctx, alice.ID, "Flat")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	const workers = 8
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = l.Join(ctx, bob.ID, group.ID)
		}(i)
	}
	wg.Wait()

	joined := 0
	for _, err := range errs {
		switch {
		case err == nil:
			joined++
		case errors.Is(err, ErrAlreadyMember):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if joined != 1 {
		t.Errorf("expected exactly one successful join, got %d", joined)
	}

	members, err := l.Members(ctx, group.ID)
	if err != nil {
		t.Fatalf("Members failed: %v", err)
	}
	if len(members) != 2 {
		t.Errorf("expected 2 members, got %d", len(members))
	}
}

// A membership row written between the pre-check and the insert surfaces as
// ErrAlreadyMember rather than a raw constraint error.
func TestAddMember_DuplicateRow(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")
	bob := createUser(t, store, "Bob")

	group, err := l.CreateGroup(ctx, alice.ID, "Flat")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	err = store.RunInTx(ctx, func(tx storage.Tx) error {
		if err := tx.AddMember(ctx, &models.Membership{GroupID: group.ID, UserID: bob.ID, JoinedAt: 1}); err != nil {
			return err
		}
		return addMember(ctx, tx, group.ID, bob.ID, 2)
	})
	expectErr(t, err, ErrAlreadyMember)

	// The failed transaction rolled back the first insert too.
	member, err := store.IsMember(ctx, group.ID, bob.ID)
	if err != nil {
		t.Fatalf("IsMember failed: %v", err)
	}
	if member {
		t.Error("expected no membership after rollback")
	}
}

func TestAddUsers(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")
	bob := createUser(t, store, "Bob")
	charlie := createUser(t, store, "Charlie")

	group, err := l.CreateGroup(ctx, alice.ID, "Flat")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	added, err := l.AddUsers(ctx, group.ID, []string{alice.ID, bob.ID, "ghost", bob.ID, charlie.ID})
	if err != nil {
		t.Fatalf("AddUsers failed: %v", err)
	}
	if len(added) != 2 || added[0] != bob.ID || added[1] != charlie.ID {
		t.Errorf("added = %v, want [%s %s]", added, bob.ID, charlie.ID)
	}

	members, err := l.Members(ctx, group.ID)
	if err != nil {
		t.Fatalf("Members failed: %v", err)
	}
	if len(members) != 3 {
		t.Errorf("expected 3 members, got %d", len(members))
	}

	// Everyone is already in: nothing added, no error.
	added, err = l.AddUsers(ctx, group.ID, []string{bob.ID})
	if err != nil {
		t.Fatalf("AddUsers failed: %v", err)
	}
	if len(added) != 0 {
		t.Errorf("expected nothing added, got %v", added)
	}
}

func TestAddUsers_Invalid(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")
	bob := createUser(t, store, "Bob")

	group, err := l.CreateGroup(ctx, alice.ID, "Flat")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	_, err = l.AddUsers(ctx, group.ID, []string{"ghost-1", "ghost-2"})
	expectErr(t, err, ErrInvalidArgument)

	_, err = l.AddUsers(ctx, group.ID, nil)
	expectErr(t, err, ErrInvalidArgument)

	_, err = l.AddUsers(ctx, "nonexistent-id", []string{bob.ID})
	expectErr(t, err, ErrInvalidArgument)

	members, err := l.Members(ctx, group.ID)
	if err != nil {
		t.Fatalf("Members failed: %v", err)
	}
	if len(members) != 1 {
		t.Errorf("expected roster unchanged, got %d members", len(members))
	}
}

func TestProjections(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")
	bob := createUser(t, store, "Bob")

	flat, err := l.CreateGroup(ctx, alice.ID, "Flat")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	trip, err := l.CreateGroup(ctx, bob.ID, "Trip")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	joinable, err := l.GroupsExcluding(ctx, alice.ID)
	if err != nil {
		t.Fatalf("GroupsExcluding failed: %v", err)
	}
	if len(joinable) != 1 || joinable[0].ID != trip.ID {
		t.Errorf("joinable for alice = %v, want only %s", joinable, trip.ID)
	}

	available, err := l.UsersExcluding(ctx, flat.ID)
	if err != nil {
		t.Fatalf("UsersExcluding failed: %v", err)
	}
	if len(available) != 1 || available[0].ID != bob.ID {
		t.Errorf("available for flat = %v, want only %s", available, bob.ID)
	}

	mine, err := l.UserGroups(ctx, alice.ID)
	if err != nil {
		t.Fatalf("UserGroups failed: %v", err)
	}
	if len(mine) != 1 || mine[0].ID != flat.ID {
		t.Errorf("groups for alice = %v, want only %s", mine, flat.ID)
	}

	_, err = l.UsersExcluding(ctx, "nonexistent-id")
	expectErr(t, err, ErrNotFound)
	_, err = l.GroupsExcluding(ctx, "ghost")
	expectErr(t, err, ErrNotFound)
}
