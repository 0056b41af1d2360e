package calckit_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webcalc/calckit"
)

const loanSchema = `
principal:
  required: true
rate:
  type: percentage
term:
  type: number
  min: 1
  max: 480
`

func TestLoadSchema(t *testing.T) {
	t.Parallel()

	t.Run("parses field rules", func(t *testing.T) {
		schema, err := calckit.LoadSchema(strings.NewReader(loanSchema))
		require.NoError(t, err)
		require.Len(t, schema, 3)

		assert.True(t, schema["principal"].Required)
		assert.Equal(t, calckit.TypePercentage, schema["rate"].Type)

		term := schema["term"]
		assert.Equal(t, calckit.TypeNumber, term.Type)
		require.NotNil(t, term.Min)
		require.NotNil(t, term.Max)
		assert.InDelta(t, 1, *term.Min, 1e-9)
		assert.InDelta(t, 480, *term.Max, 1e-9)
	})

	t.Run("empty document yields empty schema", func(t *testing.T) {
		schema, err := calckit.LoadSchema(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, schema)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		_, err := calckit.LoadSchema(strings.NewReader("principal: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse rule schema")
	})
}

func TestValidateAll(t *testing.T) {
	t.Parallel()

	schema, err := calckit.LoadSchema(strings.NewReader(loanSchema))
	require.NoError(t, err)

	t.Run("collects every failing field", func(t *testing.T) {
		c := calckit.New()
		ok := c.ValidateAll(map[string]string{
			"principal": "",
			"rate":      "150",
			"term":      "360",
		}, schema)

		assert.False(t, ok)
		assert.False(t, c.IsValid())

		errs := c.Errors()
		assert.Contains(t, errs, "principal")
		assert.Contains(t, errs, "rate")
		assert.NotContains(t, errs, "term")
	})

	t.Run("missing values validate as empty strings", func(t *testing.T) {
		c := calckit.New()
		ok := c.ValidateAll(map[string]string{}, calckit.Schema{
			"principal": {Required: true},
		})

		assert.False(t, ok)
		assert.False(t, c.IsValid())
	})

	t.Run("all valid", func(t *testing.T) {
		c := calckit.New()
		ok := c.ValidateAll(map[string]string{
			"principal": "200000",
			"rate":      "5.5",
			"term":      "360",
		}, schema)

		assert.True(t, ok)
		assert.True(t, c.IsValid())
	})
}
