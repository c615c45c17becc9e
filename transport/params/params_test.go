package params

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInt(t *testing.T) {
	cases := []struct {
		name  string
		raw   string
		want  int64
		valid bool
	}{
		{name: "Number", raw: `4`, want: 4, valid: true},
		{name: "Numeric string", raw: `" 7 "`, want: 7, valid: true},
		{name: "Negative", raw: `-1`, want: -1, valid: true},
		{name: "Fraction", raw: `4.5`},
		{name: "Word", raw: `"x"`},
		{name: "Bool", raw: `true`},
		{name: "Null", raw: `null`},
		{name: "Absent", raw: ``},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Int(json.RawMessage(tc.raw))

			assert.Equal(t, tc.valid, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIsMissing(t *testing.T) {
	assert.True(t, IsMissing(nil))
	assert.True(t, IsMissing(json.RawMessage(" null ")))
	assert.False(t, IsMissing(json.RawMessage(`0`)))
	assert.False(t, IsMissing(json.RawMessage(`""`)))
}
