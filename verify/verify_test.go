package verify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_Pass(t *testing.T) {
	assert.NotPanics(t, func() {
		Verify(true, "never raised")
	})
}

func TestVerify_Fail(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)

		err, ok := r.(*Error)
		require.True(t, ok, "panic value must be *Error, got %T", r)
		assert.Equal(t, "index out of range", err.Msg)
		assert.Contains(t, err.File, "verify_test.go")
		assert.NotZero(t, err.Line)
		assert.Contains(t, err.Function, "TestVerify_Fail")
	}()

	Verify(false, "index out of range")
}

func TestVerifyf_Fail(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)

		err, ok := r.(*Error)
		require.True(t, ok)
		assert.Equal(t, "index 12 out of range [0, 8)", err.Msg)
	}()

	Verifyf(false, "index %d out of range [0, %d)", 12, 8)
}

func TestError_Message(t *testing.T) {
	err := &Error{Msg: "boom", File: "f.go", Line: 7, Function: "pkg.Fn"}
	s := err.Error()
	assert.True(t, strings.HasPrefix(s, "verification failed: boom"))
	assert.Contains(t, s, "f.go:7")
	assert.Contains(t, s, "pkg.Fn")
}
