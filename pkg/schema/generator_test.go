package schema

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type window struct {
	Size int `json:"size" schema:"required"`
}

type sample struct {
	Name     string   `json:"name" schema:"required,minLength=1" description:"display name"`
	Strategy string   `json:"strategy" schema:"enum=overall|by_group,default=overall"`
	Tags     []string `json:"tags,omitempty" schema:"minItems=1"`
	Ratio    float64  `json:"ratio"`
	Custom   struct{} `json:"custom" schema:"type=number"`
	Window   window   `json:"window"`
	Enabled  *bool    `json:"enabled"`
	Hidden   string   `json:"-"`
	NoYAML   string   `yaml:"-"`
	internal string
}

func TestGenerator_GenerateSchema(t *testing.T) {
	raw, err := NewGenerator().GenerateJSONSchema(sample{})
	require.NoError(t, err)

	var s JSONSchema
	require.NoError(t, json.Unmarshal([]byte(raw), &s))

	assert.Equal(t, schemaRef, s.Schema)
	assert.Equal(t, "https://schemas.uplifthunter.io/sample", s.ID)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, []string{"name"}, s.Required)
	assert.Len(t, s.Properties, 7)

	name := s.Properties["name"]
	assert.Equal(t, "string", name.Type)
	assert.Equal(t, "display name", name.Description)
	require.NotNil(t, name.MinLength)
	assert.Equal(t, 1, *name.MinLength)
	assert.Empty(t, name.Schema)

	strategy := s.Properties["strategy"]
	assert.Equal(t, []any{"overall", "by_group"}, strategy.Enum)
	assert.Equal(t, "overall", strategy.Default)

	assert.Equal(t, "array", s.Properties["tags"].Type)
	assert.Equal(t, "string", s.Properties["tags"].Items.Type)
	assert.Equal(t, "number", s.Properties["ratio"].Type)
	assert.Equal(t, "number", s.Properties["custom"].Type)
	assert.Equal(t, "boolean", s.Properties["enabled"].Type)
	assert.Equal(t, []string{"size"}, s.Properties["window"].Required)
}

func TestGenerator_WithIDBase(t *testing.T) {
	s, err := NewGenerator(WithIDBase("https://example.org/")).GenerateSchema(reflect.TypeOf(window{}))
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/window", s.ID)
}

func TestGenerator_UnsupportedType(t *testing.T) {
	_, err := NewGenerator().GenerateJSONSchema(struct {
		Ch chan int `json:"ch"`
	}{})
	assert.Error(t, err)
}

func TestParseTag(t *testing.T) {
	tag := parseTag("required, type=number,maxItems=3,minLength=x,pattern=^[a-z]+$")
	assert.True(t, tag.required)
	assert.Equal(t, "number", tag.typ)

	var s JSONSchema
	tag.apply(&s)
	require.NotNil(t, s.MaxItems)
	assert.Equal(t, 3, *s.MaxItems)
	assert.Nil(t, s.MinLength)
	assert.Equal(t, "^[a-z]+$", s.Pattern)
	assert.Empty(t, s.Enum)

	assert.False(t, parseTag("").required)
}

func TestGenerator_ArrayRoot(t *testing.T) {
	s, err := NewGenerator().GenerateSchema(reflect.TypeOf([]window{}))
	require.NoError(t, err)
	assert.Equal(t, schemaRef, s.Schema)
	assert.Empty(t, s.ID)
	assert.Equal(t, "array", s.Type)
	assert.Equal(t, []string{"size"}, s.Items.Required)
	assert.Empty(t, s.Items.Schema)
}
