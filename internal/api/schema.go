package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const todoSchemaURL = "https://schemas.todos.local/todo.json"

// todoSchema describes the body accepted by create and update.
// Unknown properties are ignored.
const todoSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["title"],
	"properties": {
		"title": {"type": "string"},
		"description": {"type": ["string", "null"]},
		"completed": {"type": "boolean"}
	}
}`

var compiledTodoSchema = mustCompileSchema(todoSchemaURL, todoSchema)

// todoPayload is the decoded create/update body
type todoPayload struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	Completed   *bool   `json:"completed"`
}

// completed applies the false default when the field was omitted
func (p *todoPayload) completed() bool {
	return p.Completed != nil && *p.Completed
}

// PayloadError is returned when a request body does not match the todo schema
type PayloadError struct {
	Path    string
	Message string
}

func (e *PayloadError) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

func mustCompileSchema(url, schema string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, strings.NewReader(schema)); err != nil {
		panic(fmt.Sprintf("add schema resource %s: %v", url, err))
	}
	return compiler.MustCompile(url)
}

// decodeTodoPayload validates raw JSON against the todo schema and decodes it
func decodeTodoPayload(body []byte) (*todoPayload, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &PayloadError{Message: "request body must be valid JSON"}
	}

	if err := compiledTodoSchema.Validate(doc); err != nil {
		return nil, mapSchemaError(err)
	}

	var payload todoPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, &PayloadError{Message: err.Error()}
	}
	return &payload, nil
}

// mapSchemaError converts a jsonschema ValidationError to the first leaf PayloadError
func mapSchemaError(err error) error {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &PayloadError{Message: err.Error()}
	}

	leaf := ve
	for len(leaf.Causes) > 0 {
		leaf = leaf.Causes[0]
	}

	return &PayloadError{
		Path:    jsonPointerToPath(leaf.InstanceLocation),
		Message: leaf.Message,
	}
}

// jsonPointerToPath turns "/title" into "body.title" and "" into "body"
func jsonPointerToPath(pointer string) string {
	trimmed := strings.Trim(pointer, "/")
	if trimmed == "" {
		return "body"
	}
	return "body." + strings.ReplaceAll(trimmed, "/", ".")
}
