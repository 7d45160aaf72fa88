package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/authcorp/sharedkernel/errors"
)

// RequireKind fails the test unless err is a kernel error of kind.
func RequireKind(t testing.TB, err error, kind errors.Kind) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, kind, errors.KindOf(err), "error: %v", err)
}

// RequirePanicKind fails the test unless fn panics with a kernel error of
// kind.
func RequirePanicKind(t testing.TB, kind errors.Kind, fn func()) {
	t.Helper()
	var recovered any
	func() {
		defer func() { recovered = recover() }()
		fn()
	}()
	require.NotNil(t, recovered, "expected panic")
	err, ok := recovered.(error)
	require.True(t, ok, "panic value %v is not an error", recovered)
	RequireKind(t, err, kind)
}
