package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSessionError(t *testing.T) {
	require.Nil(t, NewSessionError(StageStore, nil))

	inner := errors.New("connection refused")
	err := NewSessionError(StageReply, inner)
	require.EqualError(t, err, "session reply: connection refused")
	require.ErrorIs(t, err, inner)

	var se *SessionError
	require.ErrorAs(t, err, &se)
	require.Equal(t, StageReply, se.Stage)
}
