package models

import "github.com/shopspring/decimal"

// TransactionType distinguishes group expenses from direct ones.
type TransactionType string

const (
	// TransactionTypeGroup is a transaction scoped to a group.
	TransactionTypeGroup TransactionType = "GROUP"
	// TransactionTypeFriend is a direct two-party transaction with no group.
	TransactionTypeFriend TransactionType = "FRIEND"
)

// Transaction records that Payer owes Payee Amount.
type Transaction struct {
	// ID is the unique identifier for the transaction (UUID format).
	ID string

	// PayerID is the user who owes the amount.
	PayerID string

	// PayeeID is the user who is owed the amount.
	PayeeID string

	// Amount is always positive.
	Amount decimal.Decimal

	// Date is the Unix timestamp when the transaction was recorded.
	Date int64

	// GroupID is empty for friend transactions.
	GroupID string

	// Settled flips to true once the debt is paid. It never flips back.
	Settled bool

	Description string

	Type TransactionType
}

// TransactionDetail is a transaction joined with the names of the users and group it references.
// GroupName is empty when GroupID is.
type TransactionDetail struct {
	Transaction
	PayerName string
	PayeeName string
	GroupName string
}

// MemberBalance is the total of unsettled debt owed to one member of a group.
type MemberBalance struct {
	UserID string
	Name   string
	Owed   decimal.Decimal
}

// OweDetail is how much one counterparty owes a user within a group.
type OweDetail struct {
	UserID string
	Name   string
	Amount decimal.Decimal
}
