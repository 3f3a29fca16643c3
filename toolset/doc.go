// Package toolset exposes region-editing operations as schema-validated
// tools callable with untyped argument maps.
//
// # Overview
//
// A Registry is responsible for:
//  1. Holding registered tools and their compiled parameter schemas
//  2. Validating argument maps against JSON Schema before execution
//  3. Converting argument maps to each tool's typed input and calling it
//  4. Formatting tool output (JSON or YAML) for the invoking transport
//
// # Call Flow
//
//	args map[string]any -> Validate -> Convert to typed input -> Call -> Format
//
// Tools are the generic [regionedit.Tool] type; the registry bridges
// from untyped maps to the tool's input struct via reflection, using
// the struct's json tags.
//
// # Example Usage
//
//	engine := regionedit.New()
//	registry, err := toolset.NewDefault(engine)
//	if err != nil {
//	    ...
//	}
//
//	result, err := registry.Call(ctx, "replace_in_region", map[string]any{
//	    "file_path":   "index.html",
//	    "region_name": "header",
//	    "old_text":    "Hello",
//	    "new_text":    "Goodbye",
//	})
//
// result.Content carries the formatted output; result.Output carries the
// raw typed value for programmatic access.
//
// The registered tool catalog can also be exported as langchaingo tool
// definitions via [Registry.LangChainTools], so an agent can bind the
// region operations to an LLM.
package toolset
