package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/pkg/utils"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"bare object", `{"a":1}`, `{"a":1}`},
		{"surrounded by prose", `Sure! {"summary":"S","days":[],"tips":[]} Enjoy!`, `{"summary":"S","days":[],"tips":[]}`},
		{"markdown fence", "```json\n{\"a\":{\"b\":2}}\n```", `{"a":{"b":2}}`},
		{"braces inside strings", `{"text":"use } and { freely"}`, `{"text":"use } and { freely"}`},
		{"escaped quote in string", `{"text":"say \"}\" twice"}`, `{"text":"say \"}\" twice"}`},
		{"stray brace before payload", `Plan {draft} follows: {"a":1}`, `{"a":1}`},
		{"first valid object wins", `{"a":1} and {"b":2}`, `{"a":1}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := utils.ExtractJSONObject(tc.text)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestExtractJSONObject_Errors(t *testing.T) {
	for _, text := range []string{
		"",
		"no object here",
		`{"summary": "truncated`,
		`{not json}`,
	} {
		_, err := utils.ExtractJSONObject(text)
		assert.ErrorIs(t, err, utils.ErrParse, "input %q", text)
	}
}

func TestJSONObjectCandidates_InOrder(t *testing.T) {
	got, err := utils.JSONObjectCandidates(`Use {"note":"x"}. Here: {"summary":"S","days":[{"day":1}]}`)

	require.NoError(t, err)
	assert.Equal(t, []string{
		`{"note":"x"}`,
		`{"summary":"S","days":[{"day":1}]}`,
		`{"day":1}`,
	}, got)
}
