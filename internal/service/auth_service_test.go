package service

import (
	"context"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/pkg/api"
)

func TestRegisterLogin(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	alice := register(t, c, "Alice")
	if alice.token == "" || alice.user.ID == "" {
		t.Fatalf("expected token and user, got %+v", alice)
	}

	login, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email:    "alice@example.com",
		Password: "password123",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if login.Msg.User.ID != alice.user.ID {
		t.Errorf("login user = %s, want %s", login.Msg.User.ID, alice.user.ID)
	}

	me, err := c.auth.GetCurrentUser(ctx, as(session{token: login.Msg.Token}, &api.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if me.Msg.User.Name != "Alice" || me.Msg.User.Email != "alice@example.com" {
		t.Errorf("unexpected current user: %+v", me.Msg.User)
	}
}

func TestRegisterLogin_Errors(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	register(t, c, "Alice")

	_, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email: "alice@example.com", Name: "Alice Again", Password: "password123",
	}))
	expectCode(t, err, connect.CodeAlreadyExists)

	_, err = c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email: "bob@example.com", Name: "Bob", Password: "short",
	}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
		Email: "carol@example.com", Password: "password123",
	}))
	expectCode(t, err, connect.CodeInvalidArgument)

	_, err = c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{
		Email: "alice@example.com", Password: "wrong-password",
	}))
	expectCode(t, err, connect.CodeUnauthenticated)

	_, err = c.auth.GetCurrentUser(ctx, connect.NewRequest(&api.GetCurrentUserRequest{}))
	expectCode(t, err, connect.CodeUnauthenticated)
}
