// Package models defines the core domain models for settleup.
//
// # Models
//
//   - User: a registered account, identified by a unique email
//   - Group: a named set of users who share expenses (names are globally unique)
//   - Membership: the (user, group) relation, at most one per pair
//   - Transaction: a debt from a payer to a payee, optionally scoped to a group
//
// # Design Principles
//
// 1. **IDs, not pointers**: relationships are foreign-key strings; nothing holds back-pointers
// 2. **Exact money**: amounts are decimal.Decimal, never float64
// 3. **Timestamps**: Unix seconds, set by the store or the ledger on creation
//
// # Direction
//
// A Transaction reads "Payer owes Payee Amount". Balance views sum amounts by payee,
// so a user's balance is what the rest of the group owes them.
package models
