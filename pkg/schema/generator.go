package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const (
	schemaRef = "https://json-schema.org/draft/2020-12/schema"
	// DefaultIDBase prefixes the $id of root schemas.
	DefaultIDBase = "https://schemas.uplifthunter.io"
)

// JSONSchema is the subset of draft 2020-12 the generator emits. Only the
// root carries $schema and $id.
type JSONSchema struct {
	Schema      string                 `json:"$schema,omitempty"`
	ID          string                 `json:"$id,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Required    []string               `json:"required,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty"`
	Enum        []any                  `json:"enum,omitempty"`
	Default     any                    `json:"default,omitempty"`
	Pattern     string                 `json:"pattern,omitempty"`
	MinLength   *int                   `json:"minLength,omitempty"`
	MaxLength   *int                   `json:"maxLength,omitempty"`
	MinItems    *int                   `json:"minItems,omitempty"`
	MaxItems    *int                   `json:"maxItems,omitempty"`
	Examples    []any                  `json:"examples,omitempty"`
}

// Generator reflects struct types into schemas. Field constraints come from
// the `schema` tag, e.g. `schema:"required,enum=a|b,minItems=1"`, and the
// `description` tag.
type Generator struct {
	idBase string
}

type Option func(*Generator)

func WithIDBase(base string) Option {
	return func(g *Generator) {
		g.idBase = strings.TrimSuffix(base, "/")
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{idBase: DefaultIDBase}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) GenerateSchema(t reflect.Type) (*JSONSchema, error) {
	s, err := g.typeSchema(t)
	if err != nil {
		return nil, err
	}
	s.Schema = schemaRef
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		s.Title = t.Name()
		s.ID = g.idBase + "/" + strings.ToLower(t.Name())
	}
	return s, nil
}

// GenerateJSONSchema renders the schema of v's type as indented JSON.
func (g *Generator) GenerateJSONSchema(v any) (string, error) {
	s, err := g.GenerateSchema(reflect.TypeOf(v))
	if err != nil {
		return "", err
	}
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(out), nil
}

var scalarTypes = map[reflect.Kind]string{
	reflect.String:  "string",
	reflect.Bool:    "boolean",
	reflect.Int:     "integer",
	reflect.Int8:    "integer",
	reflect.Int16:   "integer",
	reflect.Int32:   "integer",
	reflect.Int64:   "integer",
	reflect.Float32: "number",
	reflect.Float64: "number",
}

func (g *Generator) typeSchema(t reflect.Type) (*JSONSchema, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Struct:
		return g.structSchema(t)
	case reflect.Slice, reflect.Array:
		items, err := g.typeSchema(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("array items: %w", err)
		}
		return &JSONSchema{Type: "array", Items: items}, nil
	}
	if name, ok := scalarTypes[t.Kind()]; ok {
		return &JSONSchema{Type: name}, nil
	}
	return nil, fmt.Errorf("unsupported type: %s", t.Kind())
}

func (g *Generator) structSchema(t reflect.Type) (*JSONSchema, error) {
	s := &JSONSchema{Type: "object", Properties: make(map[string]*JSONSchema)}

	for i := range t.NumField() {
		field := t.Field(i)
		name, ok := propertyName(field)
		if !ok {
			continue
		}

		tag := parseTag(field.Tag.Get("schema"))
		prop, err := g.fieldSchema(field, tag)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		s.Properties[name] = prop
		if tag.required {
			s.Required = append(s.Required, name)
		}
	}
	return s, nil
}

func (g *Generator) fieldSchema(field reflect.StructField, tag schemaTag) (*JSONSchema, error) {
	var s *JSONSchema
	if tag.typ != "" {
		// Types with custom marshalling declare their wire type.
		s = &JSONSchema{Type: tag.typ}
	} else {
		var err error
		if s, err = g.typeSchema(field.Type); err != nil {
			return nil, err
		}
	}
	s.Description = field.Tag.Get("description")
	tag.apply(s)
	return s, nil
}

// propertyName resolves the json name of an exported field. Fields hidden
// from either json or yaml are skipped.
func propertyName(field reflect.StructField) (string, bool) {
	if !field.IsExported() || field.Tag.Get("json") == "-" || field.Tag.Get("yaml") == "-" {
		return "", false
	}
	if name, _, _ := strings.Cut(field.Tag.Get("json"), ","); name != "" {
		return name, true
	}
	return strings.ToLower(field.Name[:1]) + field.Name[1:], true
}

type schemaTag struct {
	required bool
	typ      string
	values   map[string]string
}

func parseTag(tag string) schemaTag {
	st := schemaTag{values: make(map[string]string)}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		key, value, hasValue := strings.Cut(part, "=")
		switch {
		case part == "required":
			st.required = true
		case key == "type" && hasValue:
			st.typ = value
		case hasValue:
			st.values[key] = value
		}
	}
	return st
}

func (st schemaTag) apply(s *JSONSchema) {
	if v, ok := st.values["enum"]; ok {
		for _, e := range strings.Split(v, "|") {
			s.Enum = append(s.Enum, e)
		}
	}
	if v, ok := st.values["default"]; ok {
		s.Default = v
	}
	s.Pattern = st.values["pattern"]
	s.MinLength = st.intValue("minLength")
	s.MaxLength = st.intValue("maxLength")
	s.MinItems = st.intValue("minItems")
	s.MaxItems = st.intValue("maxItems")
}

func (st schemaTag) intValue(key string) *int {
	n, err := strconv.Atoi(st.values[key])
	if err != nil {
		return nil
	}
	return &n
}
