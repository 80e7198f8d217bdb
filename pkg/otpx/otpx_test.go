package otpx_test

import (
	"testing"

	"github.com/bosshelper/backend/pkg/otpx"
	"github.com/stretchr/testify/require"
)

func TestNewCodeShape(t *testing.T) {
	t.Parallel()

	for range 200 {
		code, err := otpx.NewCode()
		require.NoError(t, err)
		require.Len(t, code, otpx.CodeLength)
		require.True(t, otpx.ValidFormat(code), "code %q should be six digits", code)
		require.NotEqual(t, byte('0'), code[0], "leading digit must be non-zero")
	}
}

func TestNewCodeVaries(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for range 50 {
		code, err := otpx.NewCode()
		require.NoError(t, err)
		seen[code] = true
	}
	require.Greater(t, len(seen), 1, "codes should not repeat every time")
}

func TestFingerprintDeterministic(t *testing.T) {
	t.Parallel()

	require.Equal(t, otpx.Fingerprint("123456"), otpx.Fingerprint("123456"))
	require.NotEqual(t, otpx.Fingerprint("123456"), otpx.Fingerprint("123457"))
	require.Len(t, otpx.Fingerprint("123456"), 64)
}

func TestMatches(t *testing.T) {
	t.Parallel()

	fp := otpx.Fingerprint("654321")
	require.True(t, otpx.Matches("654321", fp))
	require.False(t, otpx.Matches("654322", fp))
	require.False(t, otpx.Matches("654321", "not-a-fingerprint"))
}

func TestValidFormat(t *testing.T) {
	t.Parallel()

	require.True(t, otpx.ValidFormat("123456"))
	require.False(t, otpx.ValidFormat("12345"))
	require.False(t, otpx.ValidFormat("1234567"))
	require.False(t, otpx.ValidFormat("12345a"))
	require.False(t, otpx.ValidFormat(""))
}
