package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVerificationCodeRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code, err := VerificationCode()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		require.GreaterOrEqual(t, n, 100000)
		require.LessOrEqual(t, n, 999999)
	}
}
