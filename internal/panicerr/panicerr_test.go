package panicerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecover_passthrough(t *testing.T) {
	assert.NoError(t, Recover("t", func() error { return nil }))

	want := errors.New("plain failure")
	assert.Equal(t, want, Recover("t", func() error { return want }))
}

func TestRecover_panic(t *testing.T) {
	err := Recover("machine", func() error { panic("boom") })
	require.Error(t, err)
	assert.True(t, IsPanic(err))
	assert.Equal(t, "machine paniced: boom", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "Panic stack:")
}

func TestRecover_panicError_unwraps(t *testing.T) {
	cause := errors.New("the cause")
	err := Recover("t", func() error { panic(cause) })
	assert.ErrorIs(t, err, cause)
}
