package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_JSON(t *testing.T) {
	const big = "340282366920938463463374607431768211455"

	var c Contact
	require.NoError(t, json.Unmarshal([]byte(`{"id": `+big+`, "name": "Ann Lee", "number": "1"}`), &c))
	assert.Equal(t, big, c.ID.String())

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": `+big+`, "name": "Ann Lee", "number": "1"}`, string(out))
}

func TestID_UnmarshalAcceptsQuotedAndMissing(t *testing.T) {
	var c Contact
	require.NoError(t, json.Unmarshal([]byte(`{"id": "12", "name": "Ann Lee"}`), &c))
	assert.Equal(t, NewID(12), c.ID)

	c = Contact{}
	require.NoError(t, json.Unmarshal([]byte(`{"name": "Ann Lee"}`), &c))
	assert.True(t, c.ID.IsZero())
}

func TestID_UnmarshalRejectsInvalid(t *testing.T) {
	for _, raw := range []string{`-1`, `1.5`, `"abc"`, `340282366920938463463374607431768211456`, `true`} {
		var id ID
		assert.Error(t, json.Unmarshal([]byte(raw), &id), raw)
	}
}

func TestID_Next(t *testing.T) {
	assert.Equal(t, NewID(2), NewID(1).Next())

	top, err := ParseID("340282366920938463463374607431768211455")
	require.NoError(t, err)
	assert.True(t, top.Next().IsZero())

	wide, err := ParseID("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551616", wide.Next().String())
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(ErrDuplicateName))
	assert.True(t, IsClientError(ErrInvalidID))
	assert.False(t, IsClientError(ErrIO))
	assert.False(t, IsClientError(ErrPoisoned))
}

func TestParseID_Strict(t *testing.T) {
	for _, s := range []string{"", "12abc", " 7", "+5", "0x10", "1e3"} {
		_, err := ParseID(s)
		assert.Error(t, err, "%q", s)
	}

	id, err := ParseID("010")
	require.NoError(t, err)
	assert.Equal(t, NewID(10), id, "leading zeros stay decimal")
}
