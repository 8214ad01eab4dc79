package entities

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"lukechampine.com/uint128"
)

// ID is an unsigned 128-bit contact identifier. The zero value means
// "unassigned" and is never stored.
type ID uint128.Uint128

// NewID returns the ID with the given low 64 bits.
func NewID(v uint64) ID {
	return ID(uint128.From64(v))
}

// ParseID parses a base-10 identifier. Only ASCII digits are accepted, and
// leading zeros do not switch the base.
func ParseID(s string) (ID, error) {
	if s == "" {
		return ID{}, errors.New("invalid id: empty")
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return ID{}, fmt.Errorf("invalid id %q", s)
		}
	}
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.BitLen() > 128 {
		return ID{}, fmt.Errorf("invalid id %q: out of range", s)
	}
	return ID(uint128.FromBig(v)), nil
}

// RandomID draws a uniformly random 128-bit value.
func RandomID() ID {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("crypto/rand failed: %v", err))
	}
	return ID(uint128.FromBytes(b[:]))
}

func (id ID) IsZero() bool {
	return uint128.Uint128(id).IsZero()
}

// Cmp compares id and o and returns -1, 0 or +1.
func (id ID) Cmp(o ID) int {
	return uint128.Uint128(id).Cmp(uint128.Uint128(o))
}

// Next returns id+1, wrapping to zero past the maximum value.
func (id ID) Next() ID {
	return ID(uint128.Uint128(id).AddWrap64(1))
}

func (id ID) String() string {
	return uint128.Uint128(id).String()
}

// MarshalJSON encodes the id as a bare JSON number so values above 2^64 keep
// every digit.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ID{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}
	parsed, err := ParseID(string(data))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
