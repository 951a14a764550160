// Package apiconnect wires the settleup.v1 services to Connect handlers and clients.
package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/pkg/api"
)

const (
	// AuthServiceName is the fully-qualified name of the AuthService.
	AuthServiceName = "settleup.v1.AuthService"
	// GroupServiceName is the fully-qualified name of the GroupService.
	GroupServiceName = "settleup.v1.GroupService"
	// TransactionServiceName is the fully-qualified name of the TransactionService.
	TransactionServiceName = "settleup.v1.TransactionService"
)

// Procedure paths, usable as a Connect Spec.Procedure or for routing.
const (
	AuthServiceRegisterProcedure                      = "/settleup.v1.AuthService/Register"
	AuthServiceLoginProcedure                         = "/settleup.v1.AuthService/Login"
	AuthServiceGetCurrentUserProcedure                = "/settleup.v1.AuthService/GetCurrentUser"
	GroupServiceCreateGroupProcedure                  = "/settleup.v1.GroupService/CreateGroup"
	GroupServiceGetGroupProcedure                     = "/settleup.v1.GroupService/GetGroup"
	GroupServiceListGroupsProcedure                   = "/settleup.v1.GroupService/ListGroups"
	GroupServiceListJoinableGroupsProcedure           = "/settleup.v1.GroupService/ListJoinableGroups"
	GroupServiceListAvailableUsersProcedure           = "/settleup.v1.GroupService/ListAvailableUsers"
	GroupServiceJoinGroupProcedure                    = "/settleup.v1.GroupService/JoinGroup"
	GroupServiceLeaveGroupProcedure                   = "/settleup.v1.GroupService/LeaveGroup"
	GroupServiceAddUsersProcedure                     = "/settleup.v1.GroupService/AddUsers"
	GroupServiceDeleteGroupProcedure                  = "/settleup.v1.GroupService/DeleteGroup"
	GroupServiceGetOweDetailsProcedure                = "/settleup.v1.GroupService/GetOweDetails"
	TransactionServiceCreateTransactionProcedure      = "/settleup.v1.TransactionService/CreateTransaction"
	TransactionServiceAddGroupExpenseProcedure        = "/settleup.v1.TransactionService/AddGroupExpense"
	TransactionServiceAddFriendExpenseProcedure       = "/settleup.v1.TransactionService/AddFriendExpense"
	TransactionServiceSettleTransactionProcedure      = "/settleup.v1.TransactionService/SettleTransaction"
	TransactionServiceUpdateTransactionProcedure      = "/settleup.v1.TransactionService/UpdateTransaction"
	TransactionServiceDeleteTransactionProcedure      = "/settleup.v1.TransactionService/DeleteTransaction"
	TransactionServiceListUserTransactionsProcedure   = "/settleup.v1.TransactionService/ListUserTransactions"
	TransactionServiceListGroupTransactionsProcedure  = "/settleup.v1.TransactionService/ListGroupTransactions"
	TransactionServiceListFriendTransactionsProcedure = "/settleup.v1.TransactionService/ListFriendTransactions"
)

// AuthServiceHandler is implemented by the server side of the AuthService.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for the AuthService and returns the
// path prefix it should be mounted on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + AuthServiceName + "/", routes{
		AuthServiceRegisterProcedure:       connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...),
		AuthServiceLoginProcedure:          connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...),
		AuthServiceGetCurrentUserProcedure: connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...),
	}
}

// AuthServiceClient is a client for the AuthService.
type AuthServiceClient struct {
	register       *connect.Client[api.RegisterRequest, api.RegisterResponse]
	login          *connect.Client[api.LoginRequest, api.LoginResponse]
	getCurrentUser *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse]
}

// NewAuthServiceClient constructs a client for the AuthService at baseURL
// (for example, http://localhost:8080).
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &AuthServiceClient{
		register: connect.NewClient[api.RegisterRequest, api.RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login: connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[api.GetCurrentUserRequest, api.GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

// Register calls AuthService.Register.
func (c *AuthServiceClient) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

// Login calls AuthService.Login.
func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

// GetCurrentUser calls AuthService.GetCurrentUser.
func (c *AuthServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// GroupServiceHandler is implemented by the server side of the GroupService.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error)
	ListJoinableGroups(context.Context, *connect.Request[api.ListJoinableGroupsRequest]) (*connect.Response[api.ListJoinableGroupsResponse], error)
	ListAvailableUsers(context.Context, *connect.Request[api.ListAvailableUsersRequest]) (*connect.Response[api.ListAvailableUsersResponse], error)
	JoinGroup(context.Context, *connect.Request[api.JoinGroupRequest]) (*connect.Response[api.JoinGroupResponse], error)
	LeaveGroup(context.Context, *connect.Request[api.LeaveGroupRequest]) (*connect.Response[api.LeaveGroupResponse], error)
	AddUsers(context.Context, *connect.Request[api.AddUsersRequest]) (*connect.Response[api.AddUsersResponse], error)
	DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error)
	GetOweDetails(context.Context, *connect.Request[api.GetOweDetailsRequest]) (*connect.Response[api.GetOweDetailsResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler for the GroupService and returns the
// path prefix it should be mounted on.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + GroupServiceName + "/", routes{
		GroupServiceCreateGroupProcedure:        connect.NewUnaryHandler(GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...),
		GroupServiceGetGroupProcedure:           connect.NewUnaryHandler(GroupServiceGetGroupProcedure, svc.GetGroup, opts...),
		GroupServiceListGroupsProcedure:         connect.NewUnaryHandler(GroupServiceListGroupsProcedure, svc.ListGroups, opts...),
		GroupServiceListJoinableGroupsProcedure: connect.NewUnaryHandler(GroupServiceListJoinableGroupsProcedure, svc.ListJoinableGroups, opts...),
		GroupServiceListAvailableUsersProcedure: connect.NewUnaryHandler(GroupServiceListAvailableUsersProcedure, svc.ListAvailableUsers, opts...),
		GroupServiceJoinGroupProcedure:          connect.NewUnaryHandler(GroupServiceJoinGroupProcedure, svc.JoinGroup, opts...),
		GroupServiceLeaveGroupProcedure:         connect.NewUnaryHandler(GroupServiceLeaveGroupProcedure, svc.LeaveGroup, opts...),
		GroupServiceAddUsersProcedure:           connect.NewUnaryHandler(GroupServiceAddUsersProcedure, svc.AddUsers, opts...),
		GroupServiceDeleteGroupProcedure:        connect.NewUnaryHandler(GroupServiceDeleteGroupProcedure, svc.DeleteGroup, opts...),
		GroupServiceGetOweDetailsProcedure:      connect.NewUnaryHandler(GroupServiceGetOweDetailsProcedure, svc.GetOweDetails, opts...),
	}
}

// GroupServiceClient is a client for the GroupService.
type GroupServiceClient struct {
	createGroup        *connect.Client[api.CreateGroupRequest, api.CreateGroupResponse]
	getGroup           *connect.Client[api.GetGroupRequest, api.GetGroupResponse]
	listGroups         *connect.Client[api.ListGroupsRequest, api.ListGroupsResponse]
	listJoinableGroups *connect.Client[api.ListJoinableGroupsRequest, api.ListJoinableGroupsResponse]
	listAvailableUsers *connect.Client[api.ListAvailableUsersRequest, api.ListAvailableUsersResponse]
	joinGroup          *connect.Client[api.JoinGroupRequest, api.JoinGroupResponse]
	leaveGroup         *connect.Client[api.LeaveGroupRequest, api.LeaveGroupResponse]
	addUsers           *connect.Client[api.AddUsersRequest, api.AddUsersResponse]
	deleteGroup        *connect.Client[api.DeleteGroupRequest, api.DeleteGroupResponse]
	getOweDetails      *connect.Client[api.GetOweDetailsRequest, api.GetOweDetailsResponse]
}

// NewGroupServiceClient constructs a client for the GroupService at baseURL
// (for example, http://localhost:8080).
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *GroupServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &GroupServiceClient{
		createGroup: connect.NewClient[api.CreateGroupRequest, api.CreateGroupResponse](httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		getGroup: connect.NewClient[api.GetGroupRequest, api.GetGroupResponse](httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		listGroups: connect.NewClient[api.ListGroupsRequest, api.ListGroupsResponse](httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		listJoinableGroups: connect.NewClient[api.ListJoinableGroupsRequest, api.ListJoinableGroupsResponse](httpClient, baseURL+GroupServiceListJoinableGroupsProcedure, opts...),
		listAvailableUsers: connect.NewClient[api.ListAvailableUsersRequest, api.ListAvailableUsersResponse](httpClient, baseURL+GroupServiceListAvailableUsersProcedure, opts...),
		joinGroup: connect.NewClient[api.JoinGroupRequest, api.JoinGroupResponse](httpClient, baseURL+GroupServiceJoinGroupProcedure, opts...),
		leaveGroup: connect.NewClient[api.LeaveGroupRequest, api.LeaveGroupResponse](httpClient, baseURL+GroupServiceLeaveGroupProcedure, opts...),
		addUsers: connect.NewClient[api.AddUsersRequest, api.AddUsersResponse](httpClient, baseURL+GroupServiceAddUsersProcedure, opts...),
		deleteGroup: connect.NewClient[api.DeleteGroupRequest, api.DeleteGroupResponse](httpClient, baseURL+GroupServiceDeleteGroupProcedure, opts...),
		getOweDetails: connect.NewClient[api.GetOweDetailsRequest, api.GetOweDetailsResponse](httpClient, baseURL+GroupServiceGetOweDetailsProcedure, opts...),
	}
}

// CreateGroup calls GroupService.CreateGroup.
func (c *GroupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

// GetGroup calls GroupService.GetGroup.
func (c *GroupServiceClient) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

// ListGroups calls GroupService.ListGroups.
func (c *GroupServiceClient) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

// ListJoinableGroups calls GroupService.ListJoinableGroups.
func (c *GroupServiceClient) ListJoinableGroups(ctx context.Context, req *connect.Request[api.ListJoinableGroupsRequest]) (*connect.Response[api.ListJoinableGroupsResponse], error) {
	return c.listJoinableGroups.CallUnary(ctx, req)
}

// ListAvailableUsers calls GroupService.ListAvailableUsers.
func (c *GroupServiceClient) ListAvailableUsers(ctx context.Context, req *connect.Request[api.ListAvailableUsersRequest]) (*connect.Response[api.ListAvailableUsersResponse], error) {
	return c.listAvailableUsers.CallUnary(ctx, req)
}

// JoinGroup calls GroupService.JoinGroup.
func (c *GroupServiceClient) JoinGroup(ctx context.Context, req *connect.Request[api.JoinGroupRequest]) (*connect.Response[api.JoinGroupResponse], error) {
	return c.joinGroup.CallUnary(ctx, req)
}

// LeaveGroup calls GroupService.LeaveGroup.
func (c *GroupServiceClient) LeaveGroup(ctx context.Context, req *connect.Request[api.LeaveGroupRequest]) (*connect.Response[api.LeaveGroupResponse], error) {
	return c.leaveGroup.CallUnary(ctx, req)
}

// AddUsers calls GroupService.AddUsers.
func (c *GroupServiceClient) AddUsers(ctx context.Context, req *connect.Request[api.AddUsersRequest]) (*connect.Response[api.AddUsersResponse], error) {
	return c.addUsers.CallUnary(ctx, req)
}

// DeleteGroup calls GroupService.DeleteGroup.
func (c *GroupServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

// GetOweDetails calls GroupService.GetOweDetails.
func (c *GroupServiceClient) GetOweDetails(ctx context.Context, req *connect.Request[api.GetOweDetailsRequest]) (*connect.Response[api.GetOweDetailsResponse], error) {
	return c.getOweDetails.CallUnary(ctx, req)
}

// TransactionServiceHandler is implemented by the server side of the TransactionService.
type TransactionServiceHandler interface {
	CreateTransaction(context.Context, *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error)
	AddGroupExpense(context.Context, *connect.Request[api.AddGroupExpenseRequest]) (*connect.Response[api.AddGroupExpenseResponse], error)
	AddFriendExpense(context.Context, *connect.Request[api.AddFriendExpenseRequest]) (*connect.Response[api.AddFriendExpenseResponse], error)
	SettleTransaction(context.Context, *connect.Request[api.SettleTransactionRequest]) (*connect.Response[api.SettleTransactionResponse], error)
	UpdateTransaction(context.Context, *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error)
	DeleteTransaction(context.Context, *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error)
	ListUserTransactions(context.Context, *connect.Request[api.ListUserTransactionsRequest]) (*connect.Response[api.ListUserTransactionsResponse], error)
	ListGroupTransactions(context.Context, *connect.Request[api.ListGroupTransactionsRequest]) (*connect.Response[api.ListGroupTransactionsResponse], error)
	ListFriendTransactions(context.Context, *connect.Request[api.ListFriendTransactionsRequest]) (*connect.Response[api.ListFriendTransactionsResponse], error)
}

// NewTransactionServiceHandler builds an HTTP handler for the TransactionService and returns the
// path prefix it should be mounted on.
func NewTransactionServiceHandler(svc TransactionServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	return "/" + TransactionServiceName + "/", routes{
		TransactionServiceCreateTransactionProcedure:      connect.NewUnaryHandler(TransactionServiceCreateTransactionProcedure, svc.CreateTransaction, opts...),
		TransactionServiceAddGroupExpenseProcedure:        connect.NewUnaryHandler(TransactionServiceAddGroupExpenseProcedure, svc.AddGroupExpense, opts...),
		TransactionServiceAddFriendExpenseProcedure:       connect.NewUnaryHandler(TransactionServiceAddFriendExpenseProcedure, svc.AddFriendExpense, opts...),
		TransactionServiceSettleTransactionProcedure:      connect.NewUnaryHandler(TransactionServiceSettleTransactionProcedure, svc.SettleTransaction, opts...),
		TransactionServiceUpdateTransactionProcedure:      connect.NewUnaryHandler(TransactionServiceUpdateTransactionProcedure, svc.UpdateTransaction, opts...),
		TransactionServiceDeleteTransactionProcedure:      connect.NewUnaryHandler(TransactionServiceDeleteTransactionProcedure, svc.DeleteTransaction, opts...),
		TransactionServiceListUserTransactionsProcedure:   connect.NewUnaryHandler(TransactionServiceListUserTransactionsProcedure, svc.ListUserTransactions, opts...),
		TransactionServiceListGroupTransactionsProcedure:  connect.NewUnaryHandler(TransactionServiceListGroupTransactionsProcedure, svc.ListGroupTransactions, opts...),
		TransactionServiceListFriendTransactionsProcedure: connect.NewUnaryHandler(TransactionServiceListFriendTransactionsProcedure, svc.ListFriendTransactions, opts...),
	}
}

// TransactionServiceClient is a client for the TransactionService.
type TransactionServiceClient struct {
	createTransaction      *connect.Client[api.CreateTransactionRequest, api.CreateTransactionResponse]
	addGroupExpense        *connect.Client[api.AddGroupExpenseRequest, api.AddGroupExpenseResponse]
	addFriendExpense       *connect.Client[api.AddFriendExpenseRequest, api.AddFriendExpenseResponse]
	settleTransaction      *connect.Client[api.SettleTransactionRequest, api.SettleTransactionResponse]
	updateTransaction      *connect.Client[api.UpdateTransactionRequest, api.UpdateTransactionResponse]
	deleteTransaction      *connect.Client[api.DeleteTransactionRequest, api.DeleteTransactionResponse]
	listUserTransactions   *connect.Client[api.ListUserTransactionsRequest, api.ListUserTransactionsResponse]
	listGroupTransactions  *connect.Client[api.ListGroupTransactionsRequest, api.ListGroupTransactionsResponse]
	listFriendTransactions *connect.Client[api.ListFriendTransactionsRequest, api.ListFriendTransactionsResponse]
}

// NewTransactionServiceClient constructs a client for the TransactionService at baseURL
// (for example, http://localhost:8080).
func NewTransactionServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *TransactionServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &TransactionServiceClient{
		createTransaction: connect.NewClient[api.CreateTransactionRequest, api.CreateTransactionResponse](httpClient, baseURL+TransactionServiceCreateTransactionProcedure, opts...),
		addGroupExpense: connect.NewClient[api.AddGroupExpenseRequest, api.AddGroupExpenseResponse](httpClient, baseURL+TransactionServiceAddGroupExpenseProcedure, opts...),
		addFriendExpense: connect.NewClient[api.AddFriendExpenseRequest, api.AddFriendExpenseResponse](httpClient, baseURL+TransactionServiceAddFriendExpenseProcedure, opts...),
		settleTransaction: connect.NewClient[api.SettleTransactionRequest, api.SettleTransactionResponse](httpClient, baseURL+TransactionServiceSettleTransactionProcedure, opts...),
		updateTransaction: connect.NewClient[api.UpdateTransactionRequest, api.UpdateTransactionResponse](httpClient, baseURL+TransactionServiceUpdateTransactionProcedure, opts...),
		deleteTransaction: connect.NewClient[api.DeleteTransactionRequest, api.DeleteTransactionResponse](httpClient, baseURL+TransactionServiceDeleteTransactionProcedure, opts...),
		listUserTransactions: connect.NewClient[api.ListUserTransactionsRequest, api.ListUserTransactionsResponse](httpClient, baseURL+TransactionServiceListUserTransactionsProcedure, opts...),
		listGroupTransactions: connect.NewClient[api.ListGroupTransactionsRequest, api.ListGroupTransactionsResponse](httpClient, baseURL+TransactionServiceListGroupTransactionsProcedure, opts...),
		listFriendTransactions: connect.NewClient[api.ListFriendTransactionsRequest, api.ListFriendTransactionsResponse](httpClient, baseURL+TransactionServiceListFriendTransactionsProcedure, opts...),
	}
}

// CreateTransaction calls TransactionService.CreateTransaction.
func (c *TransactionServiceClient) CreateTransaction(ctx context.Context, req *connect.Request[api.CreateTransactionRequest]) (*connect.Response[api.CreateTransactionResponse], error) {
	return c.createTransaction.CallUnary(ctx, req)
}

// AddGroupExpense calls TransactionService.AddGroupExpense.
func (c *TransactionServiceClient) AddGroupExpense(ctx context.Context, req *connect.Request[api.AddGroupExpenseRequest]) (*connect.Response[api.AddGroupExpenseResponse], error) {
	return c.addGroupExpense.CallUnary(ctx, req)
}

// AddFriendExpense calls TransactionService.AddFriendExpense.
func (c *TransactionServiceClient) AddFriendExpense(ctx context.Context, req *connect.Request[api.AddFriendExpenseRequest]) (*connect.Response[api.AddFriendExpenseResponse], error) {
	return c.addFriendExpense.CallUnary(ctx, req)
}

// SettleTransaction calls TransactionService.SettleTransaction.
func (c *TransactionServiceClient) SettleTransaction(ctx context.Context, req *connect.Request[api.SettleTransactionRequest]) (*connect.Response[api.SettleTransactionResponse], error) {
	return c.settleTransaction.CallUnary(ctx, req)
}

// UpdateTransaction calls TransactionService.UpdateTransaction.
func (c *TransactionServiceClient) UpdateTransaction(ctx context.Context, req *connect.Request[api.UpdateTransactionRequest]) (*connect.Response[api.UpdateTransactionResponse], error) {
	return c.updateTransaction.CallUnary(ctx, req)
}

// DeleteTransaction calls TransactionService.DeleteTransaction.
func (c *TransactionServiceClient) DeleteTransaction(ctx context.Context, req *connect.Request[api.DeleteTransactionRequest]) (*connect.Response[api.DeleteTransactionResponse], error) {
	return c.deleteTransaction.CallUnary(ctx, req)
}

// ListUserTransactions calls TransactionService.ListUserTransactions.
func (c *TransactionServiceClient) ListUserTransactions(ctx context.Context, req *connect.Request[api.ListUserTransactionsRequest]) (*connect.Response[api.ListUserTransactionsResponse], error) {
	return c.listUserTransactions.CallUnary(ctx, req)
}

// ListGroupTransactions calls TransactionService.ListGroupTransactions.
func (c *TransactionServiceClient) ListGroupTransactions(ctx context.Context, req *connect.Request[api.ListGroupTransactionsRequest]) (*connect.Response[api.ListGroupTransactionsResponse], error) {
	return c.listGroupTransactions.CallUnary(ctx, req)
}

// ListFriendTransactions calls TransactionService.ListFriendTransactions.
func (c *TransactionServiceClient) ListFriendTransactions(ctx context.Context, req *connect.Request[api.ListFriendTransactionsRequest]) (*connect.Response[api.ListFriendTransactionsResponse], error) {
	return c.listFriendTransactions.CallUnary(ctx, req)
}
