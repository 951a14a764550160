package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/settleup/internal/auth"
	"github.com/mmynk/settleup/internal/ledger"
)

// connectError maps ledger errors onto Connect status codes.
func connectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	code := connect.CodeInternal
	switch {
	case errors.Is(err, ledger.ErrNotFound):
		code = connect.CodeNotFound
	case errors.Is(err, ledger.ErrConflict), errors.Is(err, ledger.ErrAlreadyMember):
		code = connect.CodeAlreadyExists
	case errors.Is(err, ledger.ErrNotAMember):
		code = connect.CodeFailedPrecondition
	case errors.Is(err, ledger.ErrInvalidArgument):
		code = connect.CodeInvalidArgument
	case errors.Is(err, ledger.ErrPermissionDenied):
		code = connect.CodePermissionDenied
	}
	return connect.NewError(code, err)
}

func invalidArgument(err error) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}

// unauthenticated is returned when no caller identity reached the handler.
func unauthenticated() *connect.Error {
	return connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
}
