package types_test

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/prefskit/prefskit/pkg/types"
)

func TestErrorMessage(t *testing.T) {
	plain := types.Wrap(types.ErrKindParse, "bad attribute", nil)
	require.Equal(t, "bad attribute", plain.Error())

	wrapped := types.Wrap(types.ErrKindParse, "bad attribute", io.ErrUnexpectedEOF)
	require.Equal(t, "bad attribute: unexpected EOF", wrapped.Error())
	require.ErrorIs(t, wrapped, io.ErrUnexpectedEOF)
}

func TestErrorKindMatching(t *testing.T) {
	err := types.Wrap(types.ErrKindNotFound, "unknown class \"person\"", types.ErrNotFound)

	// Matching is by kind, independent of message detail.
	require.ErrorIs(t, err, types.ErrNotFound)
	require.NotErrorIs(t, err, types.ErrClosed)

	var terr *types.Error
	require.True(t, errors.As(err, &terr))
	require.Equal(t, types.ErrKindNotFound, terr.Kind)
}

func TestErrKindString(t *testing.T) {
	require.Equal(t, "contract", types.ErrKindContract.String())
	require.Equal(t, "state", types.ErrKindState.String())
	require.Equal(t, "unknown", types.ErrKind(99).String())
}
