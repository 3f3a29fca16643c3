package toolset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
)

// ToolMeta holds metadata about a registered tool extracted via reflection.
type ToolMeta struct {
	name        string
	description string
	schema      map[string]any
	inputType   reflect.Type
}

// Name returns the tool's name.
func (m *ToolMeta) Name() string { return m.name }

// Description returns the tool's description.
func (m *ToolMeta) Description() string { return m.description }

// Schema returns the tool's parameter schema.
func (m *ToolMeta) Schema() map[string]any { return m.schema }

// Meta extracts tool metadata from any regionedit.Tool[I, O] value.
// The generic type parameters are erased at the registry boundary, so
// the tool's methods are discovered and invoked reflectively.
func Meta(tool any) (*ToolMeta, error) {
	toolVal := reflect.ValueOf(tool)
	if !toolVal.IsValid() {
		return nil, ErrInvalidTool
	}

	nameMethod := toolVal.MethodByName("Name")
	descMethod := toolVal.MethodByName("Description")
	schemaMethod := toolVal.MethodByName("ParameterSchema")
	callMethod := toolVal.MethodByName("Call")
	if !nameMethod.IsValid() || !descMethod.IsValid() ||
		!schemaMethod.IsValid() || !callMethod.IsValid() {
		return nil, ErrInvalidTool
	}

	// Call(ctx, input I) (O, error)
	callType := callMethod.Type()
	if callType.NumIn() != 2 || callType.NumOut() != 2 {
		return nil, fmt.Errorf("%w: Call has signature %s", ErrInvalidTool, callType)
	}

	var schemaMap map[string]any
	if raw := schemaMethod.Call(nil)[0].Interface(); raw != nil {
		m, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: ParameterSchema must return map[string]any", ErrInvalidTool)
		}
		schemaMap = m
	}

	return &ToolMeta{
		name:        nameMethod.Call(nil)[0].String(),
		description: descMethod.Call(nil)[0].String(),
		schema:      schemaMap,
		inputType:   callType.In(1),
	}, nil
}

// TransformArgs converts raw args (map[string]any) to the tool's typed
// input by marshaling through JSON, so the input struct's json tags
// drive the mapping. Returns the typed input as any; the dynamic type
// is the tool's input type I.
func TransformArgs(tool any, args map[string]any) (any, error) {
	meta, err := Meta(tool)
	if err != nil {
		return nil, err
	}
	inputType := meta.inputType

	var inputVal reflect.Value
	if inputType.Kind() == reflect.Ptr {
		inputVal = reflect.New(inputType.Elem())
	} else {
		inputVal = reflect.New(inputType)
	}

	argsJSON, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal args: %w", err)
	}
	if err := json.Unmarshal(argsJSON, inputVal.Interface()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal args into input type: %w", err)
	}

	if inputType.Kind() == reflect.Ptr {
		return inputVal.Interface(), nil
	}
	return inputVal.Elem().Interface(), nil
}

// CallTool calls a regionedit.Tool[I, O] with already-typed input.
// Use TransformArgs to convert an argument map to the typed input
// first. Returns the raw typed output.
func CallTool(ctx context.Context, tool any, typedInput any) (any, error) {
	toolVal := reflect.ValueOf(tool)
	if !toolVal.IsValid() {
		return nil, ErrInvalidTool
	}
	callMethod := toolVal.MethodByName("Call")
	if !callMethod.IsValid() {
		return nil, ErrInvalidTool
	}

	results := callMethod.Call([]reflect.Value{
		reflect.ValueOf(ctx),
		reflect.ValueOf(typedInput),
	})

	outVal := results[0]
	errVal := results[1]
	if !errVal.IsNil() {
		callErr, ok := errVal.Interface().(error)
		if !ok {
			return nil, errors.New("tool returned a non-error second value")
		}
		return nil, callErr
	}
	return outVal.Interface(), nil
}
