package ledger

import (
	"context"
	"testing"
)

func TestCreateGroup(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()
	founder := createUser(t, store, "Alice")

	group, err := l.CreateGroup(ctx, founder.ID, "  Trip ")
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	if group.ID == "" {
		t.Error("expected non-empty group ID")
	}
	if group.Name != "Trip" {
		t.Errorf("name: expected 'Trip', got '%s'", group.Name)
	}

	member, err := store.IsMember(ctx, group.ID, founder.ID)
	if err != nil {
		t.Fatalf("IsMember failed: %v", err)
	}
	if !member {
		t.Error("expected founder to be a member")
	}
}

func TestCreateGroup_DuplicateName(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")
	bob := createUser(t, store, "Bob")

	if _, err := l.CreateGroup(ctx, alice.ID, "Trip"); err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}

	_, err := l.CreateGroup(ctx, bob.ID, "Trip")
	expectErr(t, err, ErrConflict)

	groups, err := store.ListGroupsByUser(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListGroupsByUser failed: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("expected no membership for bob, got %d groups", len(groups))
	}
	joinable, err := store.ListGroupsNotJoined(ctx, bob.ID)
	if err != nil {
		t.Fatalf("ListGroupsNotJoined failed: %v", err)
	}
	if len(joinable) != 1 {
		t.Errorf("expected exactly one group row, got %d", len(joinable))
	}
}

func TestCreateGroup_Invalid(t *testing.T) {
	l, store := setupLedger(t)
	ctx := context.Background()
	alice := createUser(t, store, "Alice")

	_, err := l.CreateGroup(ctx, alice.ID, "   ")
	expectErr(t, err, ErrInvalidArgument)

	_, err = l.CreateGroup(ctx, "ghost", "Trip")
	expectErr(t, err, ErrNotFound)

	exists, err := store.GroupExistsByName(ctx, "Trip")
	if err != nil {
		t.Fatalf("GroupExistsByName failed: %v", err)
	}
	if exists {
		t.Error("expected no group to be created for an unknown founder")
	}
}

func TestGroupView_Balances(t *testing.T) {
	f := setupTrip(t)
	ctx := context.Background()

	first := f.record(t, f.alice, f.bob, "10")
	f.record(t, f.alice, f.bob, "5")
	f.record(t, f.charlie, f.bob, "3")

	assertOwed := func(want map[string]string) {
		t.Helper()
		view, err := f.ledger.GroupView(ctx, f.group.ID)
		if err != nil {
			t.Fatalf("GroupView failed: %v", err)
		}
		if view.Group.Name != "Trip" {
			t.Errorf("group name = %s, want Trip", view.Group.Name)
		}
		if len(view.Members) != len(want) {
			t.Fatalf("got %d members, want %d", len(view.Members), len(want))
		}
		for _, m := range view.Members {
			if !m.Owed.Equal(amount(want[m.UserID])) {
				t.Errorf("%s owed = %s, want %s", m.Name, m.Owed, want[m.UserID])
			}
		}
	}

	assertOwed(map[string]string{f.alice.ID: "0", f.bob.ID: "18", f.charlie.ID: "0"})

	if err := f.ledger.Settle(ctx, f.bob.ID, first.ID); err != nil {
		t.Fatalf("Settle failed: %v", err)
	}
	assertOwed(map[string]string{f.alice.ID: "0", f.bob.ID: "8", f.charlie.ID: "0"})
}

func TestGroupView_NotFound(t *testing.T) {
	l, _ := setupLedger(t)

	_, err := l.GroupView(context.Background(), "nonexistent-id")
	expectErr(t, err, ErrNotFound)
}

func TestOweDetails(t *testing.T) {
	f := setupTrip(t)
	ctx := context.Background()

	f.record(t, f.alice, f.bob, "10")
	f.record(t, f.alice, f.bob, "5")
	f.record(t, f.charlie, f.bob, "3")

	details, err := f.ledger.OweDetails(ctx, f.bob.ID, f.group.ID)
	if err != nil {
		t.Fatalf("OweDetails failed: %v", err)
	}

	want := map[string]string{f.alice.ID: "15", f.charlie.ID: "3"}
	if len(details) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(details), len(want), details)
	}
	for _, d := range details {
		if !d.Amount.Equal(amount(want[d.UserID])) {
			t.Errorf("%s owes %s, want %s", d.Name, d.Amount, want[d.UserID])
		}
	}

	// Alice is owed nothing, so she gets no rows at all.
	details, err = f.ledger.OweDetails(ctx, f.alice.ID, f.group.ID)
	if err != nil {
		t.Fatalf("OweDetails failed: %v", err)
	}
	if len(details) != 0 {
		t.Errorf("expected no rows for alice, got %+v", details)
	}
}

func TestDeleteGroup(t *testing.T) {
	f := setupTrip(t)
	ctx := context.Background()
	outsider := createUser(t, f.store, "Mallory")

	err := f.ledger.DeleteGroup(ctx, outsider.ID, f.group.ID)
	expectErr(t, err, ErrPermissionDenied)

	tx := f.record(t, f.alice, f.bob, "10")
	err = f.ledger.DeleteGroup(ctx, f.alice.ID, f.group.ID)
	expectErr(t, err, ErrConflict)

	if err := f.ledger.RemoveTransaction(ctx, f.alice.ID, tx.ID); err != nil {
		t.Fatalf("RemoveTransaction failed: %v", err)
	}
	if err := f.ledger.DeleteGroup(ctx, f.alice.ID, f.group.ID); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}

	_, err = f.ledger.GroupView(ctx, f.group.ID)
	expectErr(t, err, ErrNotFound)

	groups, err := f.ledger.UserGroups(ctx, f.bob.ID)
	if err != nil {
		t.Fatalf("UserGroups failed: %v", err)
	}
	if len(groups) != 0 {
		t.Errorf("expected memberships to be removed, got %d groups", len(groups))
	}
}
