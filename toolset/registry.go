package toolset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"gopkg.in/yaml.v3"

	"github.com/regionedit/regionedit/schema"
)

// Registry errors.
var (
	ErrUnknownTool     = errors.New("unknown tool")
	ErrInvalidTool     = errors.New("value does not implement the Tool interface")
	ErrInvalidToolArgs = errors.New("invalid tool arguments")
)

// Format selects how tool output is rendered into Result.Content.
type Format int

const (
	// FormatJSON renders tool output as compact JSON.
	FormatJSON Format = iota
	// FormatYAML renders tool output as YAML.
	FormatYAML
)

// Result is the outcome of a single tool call.
type Result struct {
	// Name of the tool that was called.
	Name string

	// Output is the raw typed output for programmatic access.
	Output any

	// Content is the formatted output for transport to the caller.
	Content []llms.ContentPart
}

// Text returns the formatted text of the result, if any.
func (r *Result) Text() string {
	if r == nil {
		return ""
	}
	for _, part := range r.Content {
		if tc, ok := part.(llms.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

type toolEntry struct {
	tool     any
	meta     *ToolMeta
	compiled *schema.Schema
}

// Registry holds tools and dispatches validated calls to them.
// Registration is not safe for concurrent use; Call is.
type Registry struct {
	entries map[string]*toolEntry
	order   []string
	format  Format
}

// Option configures a Registry.
type Option func(*Registry)

// WithFormat sets the output format. Defaults to FormatJSON.
func WithFormat(f Format) Option {
	return func(r *Registry) { r.format = f }
}

// NewRegistry creates an empty Registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[string]*toolEntry),
		format:  FormatJSON,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a tool. The tool must implement regionedit.Tool[I, O];
// its parameter schema is compiled so arguments can be validated on
// every call. Registering a second tool with an existing name is an
// error.
func (r *Registry) Register(tool any) error {
	meta, err := Meta(tool)
	if err != nil {
		return err
	}
	if _, exists := r.entries[meta.Name()]; exists {
		return fmt.Errorf("tool %q already registered", meta.Name())
	}

	var compiled *schema.Schema
	if raw := meta.Schema(); raw != nil {
		compiled, err = schema.Compile(raw)
		if err != nil {
			return fmt.Errorf("tool %q has an invalid schema: %w", meta.Name(), err)
		}
	}

	r.entries[meta.Name()] = &toolEntry{tool: tool, meta: meta, compiled: compiled}
	r.order = append(r.order, meta.Name())
	return nil
}

// Call validates args against the tool's schema, converts them to the
// tool's typed input, executes the tool, and formats the output.
//
// Validation and conversion failures wrap ErrInvalidToolArgs; a name
// with no registered tool wraps ErrUnknownTool. Errors returned by the
// tool itself are passed through unchanged.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (*Result, error) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}

	// Canonicalize arg values to decoded-JSON types (float64 numbers
	// and so on), which is what the schema validator operates on.
	canonical, err := canonicalizeArgs(args)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToolArgs, err)
	}

	if entry.compiled != nil {
		if err := entry.compiled.Validate(canonical); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidToolArgs, err)
		}
	}

	typedInput, err := TransformArgs(entry.tool, canonical)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToolArgs, err)
	}

	output, err := CallTool(ctx, entry.tool, typedInput)
	if err != nil {
		return nil, err
	}

	return r.formatOutput(name, output), nil
}

// canonicalizeArgs round-trips args through JSON so every value has a
// decoded-JSON type regardless of what the caller supplied.
func canonicalizeArgs(args map[string]any) (map[string]any, error) {
	if args == nil {
		return map[string]any{}, nil
	}
	data, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}
	var canonical map[string]any
	if err := json.Unmarshal(data, &canonical); err != nil {
		return nil, err
	}
	return canonical, nil
}

// formatOutput renders the raw tool output per the registry's format.
func (r *Registry) formatOutput(name string, output any) *Result {
	var data []byte
	var err error
	switch r.format {
	case FormatYAML:
		data, err = yaml.Marshal(output)
	default:
		data, err = json.Marshal(output)
	}
	if err != nil {
		return &Result{
			Name:    name,
			Output:  output,
			Content: []llms.ContentPart{llms.TextContent{Text: "error: failed to marshal output"}},
		}
	}

	return &Result{
		Name:    name,
		Output:  output,
		Content: []llms.ContentPart{llms.TextContent{Text: string(data)}},
	}
}

// ToolInfo describes a registered tool.
type ToolInfo struct {
	Name        string
	Description string
	Schema      map[string]any
}

// Catalog returns metadata for every registered tool in registration
// order.
func (r *Registry) Catalog() []ToolInfo {
	infos := make([]ToolInfo, 0, len(r.order))
	for _, name := range r.order {
		entry := r.entries[name]
		infos = append(infos, ToolInfo{
			Name:        entry.meta.Name(),
			Description: entry.meta.Description(),
			Schema:      entry.meta.Schema(),
		})
	}
	return infos
}
