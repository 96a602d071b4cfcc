package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapAndIsCode(t *testing.T) {
	base := stderrors.New("exit status 3")
	err := Wrap(CodePredictionFailure, "prediction engine failed", base)

	require.EqualError(t, err, "prediction engine failed: exit status 3")
	require.True(t, IsCode(err, CodePredictionFailure))
	require.False(t, IsCode(err, CodePredictionTimeout))
	require.ErrorIs(t, err, base)
}

func TestIsCodeThroughWrappedChain(t *testing.T) {
	inner := Wrap(CodePredictionTimeout, "prediction engine timed out", nil)
	outer := fmt.Errorf("pipeline: %w", inner)

	require.True(t, IsCode(outer, CodePredictionTimeout))
	require.Equal(t, CodePredictionTimeout, CodeOf(outer))
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(CodeNoDataAvailable, "no forecast data available", nil)
	require.EqualError(t, err, "no forecast data available")
	require.Nil(t, stderrors.Unwrap(err))
}

func TestCodeOfPlainError(t *testing.T) {
	require.Empty(t, CodeOf(stderrors.New("plain")))
	require.False(t, IsCode(nil, CodeNoDataAvailable))
}
