package models

// Group represents a named set of users who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string

	// Name is the display name of the group (e.g., "Roommates", "Trip").
	// Names are unique across all groups.
	Name string

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64
}

// Membership records that a user belongs to a group.
type Membership struct {
	GroupID string
	UserID  string

	// JoinedAt is the Unix timestamp when the user joined.
	JoinedAt int64
}

// GroupView is a group together with what each member is currently owed.
type GroupView struct {
	Group   *Group
	Members []MemberBalance
}
