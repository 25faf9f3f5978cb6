package domain

import (
	"encoding/hex"
	"strconv"
	"strings"

	"golang.org/x/crypto/sha3"

	dErrors "tokenregistry/pkg/domain-errors"
)

// AddressLength is the byte length of an account or registry address.
const AddressLength = 20

// Address identifies an account, a registry, or a bound companion.
// The zero value is the null address: it owns nothing and cannot be minted to.
type Address [AddressLength]byte

// ZeroAddress is the null address.
var ZeroAddress Address

// ParseAddress parses a 0x-prefixed, 40 hex digit address.
// Mixed case is accepted; the checksum is not verified.
func ParseAddress(s string) (Address, error) {
	var a Address
	raw, ok := strings.CutPrefix(s, "0x")
	if !ok {
		raw, ok = strings.CutPrefix(s, "0X")
	}
	if !ok || len(raw) != 2*AddressLength {
		return a, dErrors.New(dErrors.CodeInvalidInput, "address must be 0x followed by 40 hex digits")
	}
	if _, err := hex.Decode(a[:], []byte(raw)); err != nil {
		return Address{}, dErrors.New(dErrors.CodeInvalidInput, "address contains non-hex characters")
	}
	return a, nil
}

// MustParseAddress is ParseAddress for constants and tests.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// DeriveAddress returns the last 20 bytes of the Keccak-256 digest of parts,
// the way contract addresses are derived from their creation inputs.
func DeriveAddress(parts ...[]byte) Address {
	h := sha3.NewLegacyKeccak256()
	for _, p := range parts {
		h.Write(p)
	}
	sum := h.Sum(nil)
	var a Address
	copy(a[:], sum[len(sum)-AddressLength:])
	return a
}

// IsZero reports whether a is the null address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText encodes the address in its 0x hex form.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses the 0x hex form.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// TokenID identifies a token within one registry.
type TokenID uint64

// ParseTokenID parses a base-10 token id.
func ParseTokenID(s string) (TokenID, error) {
	if s == "" {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "token id cannot be empty")
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, "token id must be a base-10 unsigned integer")
	}
	return TokenID(v), nil
}

func (id TokenID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
