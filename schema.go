package cmdmcp

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
)

// ExecInputSchema constructs the input schema for the command tool. It is
// built by hand rather than reflected from ExecInput because the tool's
// name and description are runtime configuration, and the declared shape is
// part of the bridge's contract: an ordered array of literal argument
// strings plus an optional stdin string.
func ExecInputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"arguments": {
				Type:        "array",
				Items:       &jsonschema.Schema{Type: "string"},
				Description: "Command-line arguments appended to the base command",
				Default:     json.RawMessage(`[]`),
			},
			"stdin": {
				Type:        "string",
				Description: "Optional standard input string piped to the command",
			},
		},
	}
}
