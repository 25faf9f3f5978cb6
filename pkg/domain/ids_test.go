package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "tokenregistry/pkg/domain-errors"
)

// TestParseAddress_Invariants validates the parsing invariant:
// "addresses are exactly 20 bytes written as 0x + 40 hex digits"
func TestParseAddress_Invariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"Empty string", "", true},
		{"Missing prefix", strings.Repeat("ab", 20), true},
		{"Too short", "0x1234", true},
		{"Too long", "0x" + strings.Repeat("ab", 21), true},
		{"Non-hex", "0x" + strings.Repeat("zz", 20), true},
		{"Null byte injection", "0x" + strings.Repeat("ab", 19) + "a\x00", true},
		{"Whitespace padded", " 0x" + strings.Repeat("ab", 20), true},

		{"Lowercase", "0x" + strings.Repeat("ab", 20), false},
		{"Uppercase digits", "0x" + strings.Repeat("AB", 20), false},
		{"Uppercase prefix", "0X" + strings.Repeat("ab", 20), false},
		{"Zero address", "0x" + strings.Repeat("00", 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAddress(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestAddressRoundTrip(t *testing.T) {
	a := DeriveAddress([]byte("alice"))
	assert.False(t, a.IsZero())

	parsed, err := ParseAddress(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, parsed)

	assert.True(t, ZeroAddress.IsZero())
	assert.Equal(t, "0x"+strings.Repeat("00", 20), ZeroAddress.String())
}

func TestAddressJSON(t *testing.T) {
	type payload struct {
		Owner Address `json:"owner"`
	}
	a := DeriveAddress([]byte("bob"))

	raw, err := json.Marshal(payload{Owner: a})
	require.NoError(t, err)
	assert.JSONEq(t, `{"owner":"`+a.String()+`"}`, string(raw))

	var decoded payload
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, a, decoded.Owner)

	err = json.Unmarshal([]byte(`{"owner":"nope"}`), &decoded)
	require.Error(t, err)
}

// TestDeriveAddress_Deterministic documents that derived registry addresses
// depend only on their inputs.
func TestDeriveAddress_Deterministic(t *testing.T) {
	assert.Equal(t, DeriveAddress([]byte("a"), []byte("b")), DeriveAddress([]byte("a"), []byte("b")))
	assert.NotEqual(t, DeriveAddress([]byte("a")), DeriveAddress([]byte("b")))
	// Keccak-256("") = c5d2...a470; the address is its last 20 bytes.
	assert.Equal(t, "0xdcc703c0e500b653ca82273b7bfad8045d85a470", DeriveAddress().String())
}

func TestParseTokenID(t *testing.T) {
	id, err := ParseTokenID("205")
	require.NoError(t, err)
	assert.Equal(t, TokenID(205), id)
	assert.Equal(t, "205", id.String())

	for _, input := range []string{"", "-1", "abc", "1.5", "18446744073709551616"} {
		t.Run("rejects "+input, func(t *testing.T) {
			_, err := ParseTokenID(input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}
