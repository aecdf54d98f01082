package services

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestWrapTagsMarkerAndCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Wrap(ErrTransient, "firebase", "list", "page 2", cause)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected ErrTransient marker, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped, got %v", err)
	}
	if !strings.Contains(err.Error(), "firebase: list: page 2") {
		t.Fatalf("unexpected detail: %q", err.Error())
	}
}

func TestWrapDefaultsMarkerAndDetail(t *testing.T) {
	err := Wrap(nil, " ", "", "", nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("expected transient default, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected fallback detail, got %q", err.Error())
	}
}

func TestRetryable(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{Wrap(ErrTransient, "x", "", "", nil), true},
		{Wrap(ErrTimeout, "x", "", "", nil), true},
		{Wrap(ErrNotFound, "x", "", "", nil), false},
		{Wrap(ErrConfiguration, "x", "", "", nil), false},
		{errors.New("plain"), true},
	}
	for _, tc := range cases {
		if got := Retryable(tc.err); got != tc.want {
			t.Fatalf("Retryable(%v) = %v, want %v", tc.err, got, tc.want)
		}
	}
}

func TestContextIdentifiers(t *testing.T) {
	ctx := WithSessionID(WithRequestID(context.Background(), "req-1"), "sess-1")
	if id, ok := RequestIDFromContext(ctx); !ok || id != "req-1" {
		t.Fatalf("unexpected request id %q (%v)", id, ok)
	}
	if id, ok := SessionIDFromContext(ctx); !ok || id != "sess-1" {
		t.Fatalf("unexpected session id %q (%v)", id, ok)
	}
	if got := WithRequestID(context.Background(), ""); got != context.Background() {
		t.Fatal("expected empty id to leave context untouched")
	}
}
