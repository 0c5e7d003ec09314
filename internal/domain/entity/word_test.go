package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWord(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{input: "Espresso", valid: true},
		{input: "Hot Beverages", valid: true},
		{input: "All_kinds_of_beverages", valid: true},
		{input: "Café au lait", valid: true},
		{input: "Size2", valid: true},
		{input: "A", valid: false},
		{input: "", valid: false},
		{input: "2cool", valid: false},
		{input: " Espresso", valid: false},
		{input: "Fish & Chips", valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := NewWord(tt.input)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestWord_EqualsIgnoresCaseAndAccents(t *testing.T) {
	cafe, err := NewWord("Café")
	require.NoError(t, err)

	assert.True(t, cafe.Equals(MustWord("cafe")))
	assert.True(t, cafe.EqualsString("CAFÉ"))
	assert.False(t, cafe.EqualsString("coffee"))
}

func TestWord_JSON(t *testing.T) {
	type named struct {
		Name Word `json:"name"`
	}

	data, err := json.Marshal(named{Name: MustWord("Hot Beverages")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Hot Beverages"}`, string(data))

	var decoded named
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Name.Equals(MustWord("hot beverages")))

	assert.Error(t, json.Unmarshal([]byte(`{"name":"Fish & Chips"}`), &decoded))
}
