package sigma

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChallengeByteLen(t *testing.T) {
	cases := map[int]int{1: 1, 7: 1, 8: 1, 9: 2, 16: 2, 17: 3}
	for bits, want := range cases {
		require.Equal(t, want, ChallengeByteLen(bits), "ChallengeByteLen(%d)", bits)
	}
}

func TestValidateSoundness(t *testing.T) {
	require.NoError(t, ValidateSoundness(8, 10))
	require.Error(t, ValidateSoundness(10, 10), "t > bitlen(q)-1 should be invalid")
	require.Error(t, ValidateSoundness(0, 10))
	require.Error(t, ValidateSoundness(-1, 10))
}
