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

// GroupService implements the Connect GroupService on top of the ledger.
type GroupService struct {
	ledger *ledger.Ledger
	logger *slog.Logger
}

var _ apiconnect.GroupServiceHandler = (*GroupService)(nil)

// NewGroupService creates a new GroupService.
func NewGroupService(l *ledger.Ledger, logger *slog.Logger) *GroupService {
	return &GroupService{ledger: l, logger: logger}
}

// CreateGroup creates a group with the caller as its first member.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("CreateGroup request received", "user_id", userID, "name", req.Msg.Name)

	group, err := s.ledger.CreateGroup(ctx, userID, req.Msg.Name)
	if err != nil {
		s.logger.Error("CreateGroup failed", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(group)}), nil
}

// GetGroup returns a group with what each member is owed.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	if middleware.GetUserID(ctx) == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("GetGroup request received", "group_id", req.Msg.GroupID)

	view, err := s.ledger.GroupView(ctx, req.Msg.GroupID)
	if err != nil {
		s.logger.Error("GetGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	members := make([]*api.MemberBalance, len(view.Members))
	for i, m := range view.Members {
		members[i] = &api.MemberBalance{
			UserID: m.UserID,
			Name:   m.Name,
			Owed:   m.Owed.String(),
		}
	}

	s.logger.Info("GetGroup successful", "group_id", view.Group.ID, "members", len(members))
	return connect.NewResponse(&api.GetGroupResponse{
		Group:   toAPIGroup(view.Group),
		Members: members,
	}), nil
}

// ListGroups lists the caller's groups.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}

	groups, err := s.ledger.UserGroups(ctx, userID)
	if err != nil {
		s.logger.Error("ListGroups failed", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	s.logger.Info("ListGroups successful", "user_id", userID, "count", len(groups))
	return connect.NewResponse(&api.ListGroupsResponse{Groups: toAPIGroups(groups)}), nil
}

// ListJoinableGroups lists the groups the caller is not a member of.
func (s *GroupService) ListJoinableGroups(ctx context.Context, req *connect.Request[api.ListJoinableGroupsRequest]) (*connect.Response[api.ListJoinableGroupsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}

	groups, err := s.ledger.GroupsExcluding(ctx, userID)
	if err != nil {
		s.logger.Error("ListJoinableGroups failed", "user_id", userID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.ListJoinableGroupsResponse{Groups: toAPIGroups(groups)}), nil
}

// ListAvailableUsers lists the users who could be added to a group.
func (s *GroupService) ListAvailableUsers(ctx context.Context, req *connect.Request[api.ListAvailableUsersRequest]) (*connect.Response[api.ListAvailableUsersResponse], error) {
	if middleware.GetUserID(ctx) == "" {
		return nil, unauthenticated()
	}

	users, err := s.ledger.UsersExcluding(ctx, req.Msg.GroupID)
	if err != nil {
		s.logger.Error("ListAvailableUsers failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.ListAvailableUsersResponse{Users: toAPIUsers(users)}), nil
}

// JoinGroup adds the caller to a group.
func (s *GroupService) JoinGroup(ctx context.Context, req *connect.Request[api.JoinGroupRequest]) (*connect.Response[api.JoinGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("JoinGroup request received", "user_id", userID, "group_id", req.Msg.GroupID)

	if err := s.ledger.Join(ctx, userID, req.Msg.GroupID); err != nil {
		s.logger.Warn("JoinGroup failed", "user_id", userID, "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.JoinGroupResponse{}), nil
}

// LeaveGroup removes the caller from a group.
func (s *GroupService) LeaveGroup(ctx context.Context, req *connect.Request[api.LeaveGroupRequest]) (*connect.Response[api.LeaveGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("LeaveGroup request received", "user_id", userID, "group_id", req.Msg.GroupID)

	if err := s.ledger.Leave(ctx, userID, req.Msg.GroupID); err != nil {
		s.logger.Warn("LeaveGroup failed", "user_id", userID, "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.LeaveGroupResponse{}), nil
}

// AddUsers adds existing users to a group, skipping current members.
func (s *GroupService) AddUsers(ctx context.Context, req *connect.Request[api.AddUsersRequest]) (*connect.Response[api.AddUsersResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("AddUsers request received",
		"user_id", userID,
		"group_id", req.Msg.GroupID,
		"users_count", len(req.Msg.UserIDs),
	)

	added, err := s.ledger.AddUsers(ctx, req.Msg.GroupID, req.Msg.UserIDs)
	if err != nil {
		s.logger.Error("AddUsers failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}
	if added == nil {
		added = []string{}
	}

	return connect.NewResponse(&api.AddUsersResponse{AddedUserIDs: added}), nil
}

// DeleteGroup deletes a group that has no transactions.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}
	s.logger.Info("DeleteGroup request received", "user_id", userID, "group_id", req.Msg.GroupID)

	if err := s.ledger.DeleteGroup(ctx, userID, req.Msg.GroupID); err != nil {
		s.logger.Error("DeleteGroup failed", "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}

// GetOweDetails returns, per counterparty, what they owe the caller in a group.
func (s *GroupService) GetOweDetails(ctx context.Context, req *connect.Request[api.GetOweDetailsRequest]) (*connect.Response[api.GetOweDetailsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, unauthenticated()
	}

	details, err := s.ledger.OweDetails(ctx, userID, req.Msg.GroupID)
	if err != nil {
		s.logger.Error("GetOweDetails failed", "user_id", userID, "group_id", req.Msg.GroupID, "error", err)
		return nil, connectError(err)
	}

	out := make([]*api.OweDetail, len(details))
	for i, d := range details {
		out[i] = &api.OweDetail{
			UserID: d.UserID,
			Name:   d.Name,
			Amount: d.Amount.String(),
		}
	}

	return connect.NewResponse(&api.GetOweDetailsResponse{Details: out}), nil
}
