// File: utils/utils_test.go
// Author: momentics <momentics@gmail.com>

package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHexRoundTrip(t *testing.T) {
	in := []byte{0x00, 0x7f, 0xff, 0x10}
	out, err := FromHex(ToHex(in))
	require.NoError(t, err)
	require.Equal(t, in, out)
}

func TestFromHex_Invalid(t *testing.T) {
	_, err := FromHex("zz")
	require.Error(t, err)
}

func TestRandomString(t *testing.T) {
	s, err := RandomString(16)
	require.NoError(t, err)
	require.Len(t, s, 32)

	s2, err := RandomString(16)
	require.NoError(t, err)
	require.NotEqual(t, s, s2)
}

func TestRandomFill_Distinct(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)
	require.NoError(t, RandomFill(a))
	require.NoError(t, RandomFill(b))
	require.NotEqual(t, a, b)
}
