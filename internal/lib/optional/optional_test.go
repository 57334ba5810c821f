package optional_test

import (
	"encoding/json"
	"testing"

	"github.com/deppfellow/devmatch/internal/lib/optional"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Name   optional.Value[string] `json:"name"`
	Rating optional.Value[int]    `json:"rating"`
	Active optional.Value[bool]   `json:"active"`
}

func TestValue_UnmarshalPresence(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		nameSet    bool
		nameNull   bool
		ratingSet  bool
		ratingZero bool
		activeSet  bool
	}{
		{name: "empty object", body: `{}`},
		{name: "explicit null", body: `{"name": null}`, nameSet: true, nameNull: true},
		{name: "empty string is present", body: `{"name": ""}`, nameSet: true},
		{name: "zero is present", body: `{"rating": 0}`, ratingSet: true, ratingZero: true},
		{name: "false is present", body: `{"active": false}`, activeSet: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p payload
			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))

			assert.Equal(t, tt.nameSet, p.Name.IsSet())
			assert.Equal(t, tt.nameNull, p.Name.IsNull())
			assert.Equal(t, tt.ratingSet, p.Rating.IsSet())
			assert.Equal(t, tt.activeSet, p.Active.IsSet())

			if tt.ratingZero {
				v, ok := p.Rating.Get()
				assert.True(t, ok)
				assert.Equal(t, 0, v)
			}
		})
	}
}

func TestValue_UnmarshalTypeMismatch(t *testing.T) {
	var p payload
	err := json.Unmarshal([]byte(`{"rating": "five"}`), &p)
	assert.Error(t, err)
}

func TestValue_Any(t *testing.T) {
	assert.Nil(t, optional.Null[string]().Any())
	assert.Equal(t, "x", optional.Some("x").Any())
	assert.Equal(t, 0, optional.Some(0).Any())
}

func TestValue_Marshal(t *testing.T) {
	out, err := json.Marshal(payload{Name: optional.Some("Ada"), Rating: optional.Null[int]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Ada","rating":null,"active":null}`, string(out))
}
