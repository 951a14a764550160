// Package api defines the request and response messages of the settleup.v1
// Connect services. Messages travel as JSON; amounts are decimal strings.
package api

// User is the public view of an account.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// Group is a named set of members.
type Group struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// MemberBalance is what one member is currently owed within a group.
type MemberBalance struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Owed   string `json:"owed"`
}

// OweDetail is how much one counterparty owes the requesting user.
type OweDetail struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Transaction records that the payer owes the payee the amount.
// Group fields are omitted for friend transactions.
type Transaction struct {
	ID          string  `json:"id"`
	PayerID     string  `json:"payer_id"`
	PayerName   string  `json:"payer_name,omitempty"`
	PayeeID     string  `json:"payee_id"`
	PayeeName   string  `json:"payee_name,omitempty"`
	Amount      string  `json:"amount"`
	Date        int64   `json:"date"`
	GroupID     *string `json:"group_id,omitempty"`
	GroupName   *string `json:"group_name,omitempty"`
	Settled     bool    `json:"settled"`
	Description string  `json:"description"`
	Type        string  `json:"type"`
}

// Auth

type RegisterRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// Groups

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`
}

type GetGroupRequest struct {
	GroupID string `json:"group_id"`
}

type GetGroupResponse struct {
	Group   *Group           `json:"group"`
	Members []*MemberBalance `json:"members"`
}

type ListGroupsRequest struct{}

type ListGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type ListJoinableGroupsRequest struct{}

type ListJoinableGroupsResponse struct {
	Groups []*Group `json:"groups"`
}

type ListAvailableUsersRequest struct {
	GroupID string `json:"group_id"`
}

type ListAvailableUsersResponse struct {
	Users []*User `json:"users"`
}

type JoinGroupRequest struct {
	GroupID string `json:"group_id"`
}

type JoinGroupResponse struct{}

type LeaveGroupRequest struct {
	GroupID string `json:"group_id"`
}

type LeaveGroupResponse struct{}

type AddUsersRequest struct {
	GroupID string   `json:"group_id"`
	UserIDs []string `json:"user_ids"`
}

type AddUsersResponse struct {
	AddedUserIDs []string `json:"added_user_ids"`
}

type DeleteGroupRequest struct {
	GroupID string `json:"group_id"`
}

type DeleteGroupResponse struct{}

type GetOweDetailsRequest struct {
	GroupID string `json:"group_id"`
}

type GetOweDetailsResponse struct {
	Details []*OweDetail `json:"details"`
}

// Transactions

type CreateTransactionRequest struct {
	PayerID     string `json:"payer_id"`
	PayeeID     string `json:"payee_id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	GroupID     string `json:"group_id,omitempty"`
}

type CreateTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
}

type AddGroupExpenseRequest struct {
	GroupID     string   `json:"group_id"`
	Amount      string   `json:"amount"`
	Description string   `json:"description"`
	SharedWith  []string `json:"shared_with"`
}

type AddGroupExpenseResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type AddFriendExpenseRequest struct {
	FriendID    string `json:"friend_id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
}

type AddFriendExpenseResponse struct {
	Transaction *Transaction `json:"transaction"`
}

type SettleTransactionRequest struct {
	TransactionID string `json:"transaction_id"`
}

type SettleTransactionResponse struct{}

type UpdateTransactionRequest struct {
	TransactionID string `json:"transaction_id"`
	PayerID       string `json:"payer_id"`
	PayeeID       string `json:"payee_id"`
	Amount        string `json:"amount"`
	Description   string `json:"description"`
}

type UpdateTransactionResponse struct {
	Transaction *Transaction `json:"transaction"`
}

type DeleteTransactionRequest struct {
	TransactionID string `json:"transaction_id"`
}

type DeleteTransactionResponse struct{}

type ListUserTransactionsRequest struct{}

type ListUserTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type ListGroupTransactionsRequest struct {
	GroupID string `json:"group_id"`
}

type ListGroupTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}

type ListFriendTransactionsRequest struct {
	FriendID string `json:"friend_id"`
}

type ListFriendTransactionsResponse struct {
	Transactions []*Transaction `json:"transactions"`
}
