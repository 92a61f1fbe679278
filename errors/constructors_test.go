package errors

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeInvalidInput, "payload name is empty")

	require.Equal(t, CodeInvalidInput, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, "payload name is empty", err.Message())
	require.Equal(t, "[INVALID_INPUT] payload name is empty", err.Error())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeNotFound, "payload %s not found", "42")
	require.Equal(t, "payload 42 not found", err.Message())
}
