package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/ledger"
	"github.com/mmynk/settleup/internal/middleware"
	"github.com/mmynk/settleup/pkg/api"
	"github.com/mmynk/settleup/pkg/api/apiconnect"
)

// TransactionService implements the Connect TransactionService on top of the ledger.
type TransactionService struct {
	ledger *ledger.Ledger
	logger *slog.Logger
}

var _ apiconnect.TransactionServiceHandler = (*TransactionService)(nil)

// NewTransactionService creates a new TransactionService.
func NewTransactionService(l *ledger.Ledger, logger *slog.Logger) *TransactionService {
	return &TransactionService{ledger: l, logger: logger}
}

// CreateTransaction records that the payer owes the payee an amount.
// The caller must be one of the two.
func (s *TransactionService) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("CreateTransaction request received",
		"user_id", userID,
		"payer_id", req.Msg.PayerID,
		"payee_id", req.Msg.PayeeID,
		"group_id", req.Msg.GroupID,
	)

	amount, err := parseAmount(req.Msg.Amount)
	if err != nil {
		return nil, invalidArgument(err)
	}

	t, err := s.ledger.CreateTransaction(ctx, userID, ledger.NewTransaction{
		PayerID:     req.Msg.PayerID,
		PayeeID:     req.Msg.PayeeID,
		Amount:      amount,
		Description: req.Msg.Description,
		GroupID:     req.Msg.GroupID,
	})
	if err != nil {
		s.logger.Error("CreateTransaction failed", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.CreateTransactionResponse{Transaction: toAPITransaction(t)}), nil
}

// AddGroupExpense records a bill the caller paid, split equally across members.
func (s *TransactionService) AddGroupExpense(ctx context.Context, req *connect.Request[api.AddGroupExpenseRequest]) (*connect.Response[api.AddGroupExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("AddGroupExpense request received",
		"user_id", userID,
		"group_id", req.Msg.GroupID,
		"amount", req.Msg.Amount,
		"participants", len(req.Msg.SharedWith),
	)

	amount, err := parseAmount(req.Msg.Amount)
	if err != nil {
		return nil, invalidArgument(err)
	}

	txns, err := s.ledger.AddGroupExpense(ctx, ledger.GroupExpense{
		PaidBy:      userID,
		GroupID:     req.Msg.GroupID,
		Amount:      amount,
		Description: req.Msg.Description,
		SharedWith:  req.Msg.SharedWith,
	})
	if err != nil {
		s.logger.Error("AddGroupExpense failed", "user_id", userID, "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.AddGroupExpenseResponse{Transactions: toAPITransactions(txns)}), nil
}

// AddFriendExpense records that a friend owes the caller, outside any group.
func (s *TransactionService) AddFriendExpense(ctx context.Context, req *connect.Request[api.AddFriendExpenseRequest]) (*connect.Response[api.AddFriendExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("AddFriendExpense request received", "user_id", userID, "friend_id", req.Msg.FriendID)

	amount, err := parseAmount(req.Msg.Amount)
	if err != nil {
		return nil, invalidArgument(err)
	}

	t, err := s.ledger.AddFriendExpense(ctx, userID, req.Msg.FriendID, amount, req.Msg.Description)
	if err != nil {
		s.logger.Error("AddFriendExpense failed", "user_id", userID, "friend_id", req.Msg.FriendID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.AddFriendExpenseResponse{Transaction: toAPITransaction(t)}), nil
}

// SettleTransaction marks a transaction the caller is party to as paid.
func (s *TransactionService) SettleTransaction(ctx context.Context, req *connect.Request[api.SettleTransactionRequest]) (*connect.Response[api.SettleTransactionResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("SettleTransaction request received", "user_id", userID, "transaction_id", req.Msg.TransactionID)

	if err := s.ledger.Settle(ctx, userID, req.Msg.TransactionID); err != nil {
		s.logger.Error("SettleTransaction failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.SettleTransactionResponse{}), nil
}

// UpdateTransaction rewrites an unsettled transaction.
func (s *TransactionService) UpdateTransaction(ctx context.Context, req *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("UpdateTransaction request received", "user_id", userID, "transaction_id", req.Msg.TransactionID)

	amount, err := parseAmount(req.Msg.Amount)
	if err != nil {
		return nil, invalidArgument(err)
	}

	t, err := s.ledger.UpdateTransaction(ctx, userID, req.Msg.TransactionID, ledger.TransactionUpdate{
		PayerID:     req.Msg.PayerID,
		PayeeID:     req.Msg.PayeeID,
		Amount:      amount,
		Description: req.Msg.Description,
	})
	if err != nil {
		s.logger.Error("UpdateTransaction failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.UpdateTransactionResponse{Transaction: toAPITransaction(t)}), nil
}

// DeleteTransaction removes a transaction the caller is party to.
func (s *TransactionService) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("DeleteTransaction request received", "user_id", userID, "transaction_id", req.Msg.TransactionID)

	if err := s.ledger.RemoveTransaction(ctx, userID, req.Msg.TransactionID); err != nil {
		s.logger.Error("DeleteTransaction failed", "transaction_id", req.Msg.TransactionID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.DeleteTransactionResponse{}), nil
}

// ListUserTransactions lists every transaction the caller is party to.
func (s *TransactionService) ListUserTransactions(ctx context.Context, req *connect.Request[api.ListUserTransactionsRequest]) (*connect.Response[api.ListUserTransactionsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}

	details, err := s.ledger.TransactionsForUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListUserTransactions failed", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.ListUserTransactionsResponse{Transactions: toAPIDetails(details)}), nil
}

// ListGroupTransactions lists every transaction in a group.
func (s *TransactionService) ListGroupTransactions(ctx context.Context, req *connect.Request[api.ListGroupTransactionsRequest]) (*connect.Response[api.ListGroupTransactionsResponse], error) {
	if middleware.GetUserID(ctx) == "" {
		return nil, unauthenticated()
	}

	details, err := s.ledger.TransactionsForGroup(ctx, req.Msg.GroupID)
	if err != nil {
		s.logger.Error("ListGroupTransactions failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.ListGroupTransactionsResponse{Transactions: toAPIDetails(details)}), nil
}

// ListFriendTransactions lists the friend transactions between the caller and a friend.
func (s *TransactionService) ListFriendTransactions(ctx context.Context, req *connect.Request[api.ListFriendTransactionsRequest]) (*connect.Response[api.ListFriendTransactionsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}

	details, err := s.ledger.FriendTransactions(ctx, userID, req.Msg.FriendID)
	if err != nil {
		s.logger.Error("ListFriendTransactions failed", "user_id", userID, "friend_id", req.Msg.FriendID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.ListFriendTransactionsResponse{Transactions: toAPIDetails(details)}), nil
}
