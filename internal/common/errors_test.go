package common

import (
	"errors"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewAppError("DB_ERROR", "open failed", cause)

	if got := err.Error(); got != "DB_ERROR: open failed: connection refused" {
		t.Errorf("Error() = %q", got)
	}
	if !errors.Is(err, cause) {
		t.Error("AppError does not unwrap to its cause")
	}

	bare := NewAppError("CONFIG_ERROR", "missing value", nil)
	if got := bare.Error(); got != "CONFIG_ERROR: missing value" {
		t.Errorf("Error() without cause = %q", got)
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, "anything") != nil {
		t.Error("WrapError(nil) != nil")
	}

	cause := errors.New("boom")
	wrapped := WrapError(cause, "create bill")
	if !errors.Is(wrapped, cause) {
		t.Error("wrapped error lost its cause")
	}
	if wrapped.Error() != "create bill: boom" {
		t.Errorf("wrapped message = %q", wrapped.Error())
	}
}

func TestGRPCStatusHelpers(t *testing.T) {
	if got := status.Code(InvalidArgumentError("bad phone")); got != codes.InvalidArgument {
		t.Errorf("InvalidArgumentError code = %v", got)
	}
	if got := status.Code(InvalidArgumentErrorf("document %d: empty", 2)); got != codes.InvalidArgument {
		t.Errorf("InvalidArgumentErrorf code = %v", got)
	}
	st, _ := status.FromError(InvalidArgumentErrorf("document %d: empty", 2))
	if st.Message() != "document 2: empty" {
		t.Errorf("formatted message = %q", st.Message())
	}
	if got := status.Code(InternalError("persist failed")); got != codes.Internal {
		t.Errorf("InternalError code = %v", got)
	}
}
