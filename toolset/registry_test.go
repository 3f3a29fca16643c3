package toolset

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regionedit/regionedit"
	"github.com/regionedit/regionedit/schema"
)

type echoInput struct {
	Message string `json:"message"`
}

type echoOutput struct {
	Echoed string `json:"echoed" yaml:"echoed"`
}

func newEchoTool() *regionedit.ToolFunc[echoInput, echoOutput] {
	return regionedit.NewToolFunc(
		"echo",
		"Echo the message back",
		schema.Object(map[string]*schema.Property{
			"message": schema.String("Message to echo"),
		}, "message"),
		func(ctx context.Context, in echoInput) (echoOutput, error) {
			return echoOutput{Echoed: in.Message}, nil
		},
	)
}

func TestRegistry_Register(t *testing.T) {
	t.Run("duplicate name rejected", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(newEchoTool()))
		err := r.Register(newEchoTool())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("non-tool value rejected", func(t *testing.T) {
		r := NewRegistry()
		err := r.Register(struct{}{})
		assert.ErrorIs(t, err, ErrInvalidTool)
	})
}

func TestRegistry_Call(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown tool", func(t *testing.T) {
		r := NewRegistry()
		_, err := r.Call(ctx, "nope", nil)
		assert.ErrorIs(t, err, ErrUnknownTool)
	})

	t.Run("missing required argument", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(newEchoTool()))

		_, err := r.Call(ctx, "echo", map[string]any{})

		assert.ErrorIs(t, err, ErrInvalidToolArgs)
	})

	t.Run("wrong argument type", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(newEchoTool()))

		_, err := r.Call(ctx, "echo", map[string]any{"message": 42})

		assert.ErrorIs(t, err, ErrInvalidToolArgs)
	})

	t.Run("valid call returns raw and formatted output", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(newEchoTool()))

		result, err := r.Call(ctx, "echo", map[string]any{"message": "hi"})

		require.NoError(t, err)
		assert.Equal(t, "echo", result.Name)
		assert.Equal(t, echoOutput{Echoed: "hi"}, result.Output)
		assert.JSONEq(t, `{"echoed":"hi"}`, result.Text())
	})

	t.Run("yaml format", func(t *testing.T) {
		r := NewRegistry(WithFormat(FormatYAML))
		require.NoError(t, r.Register(newEchoTool()))

		result, err := r.Call(ctx, "echo", map[string]any{"message": "hi"})

		require.NoError(t, err)
		assert.Equal(t, "echoed: hi\n", result.Text())
	})
}

func TestRegistry_Catalog(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(newEchoTool()))

	catalog := r.Catalog()

	require.Len(t, catalog, 1)
	assert.Equal(t, "echo", catalog[0].Name)
	assert.Equal(t, "Echo the message back", catalog[0].Description)
	assert.NotNil(t, catalog[0].Schema)
}

func TestRegistry_LangChainTools(t *testing.T) {
	engine := regionedit.New()
	r, err := NewDefault(engine)
	require.NoError(t, err)

	tools := r.LangChainTools()

	require.Len(t, tools, len(r.Catalog()))
	names := make([]string, 0, len(tools))
	for _, tool := range tools {
		assert.Equal(t, "function", tool.Type)
		require.NotNil(t, tool.Function)
		assert.NotEmpty(t, tool.Function.Description)
		names = append(names, tool.Function.Name)
	}
	assert.Contains(t, names, "list_regions")
	assert.Contains(t, names, "read_region")
	assert.Contains(t, names, "write_region")
}

func TestMeta(t *testing.T) {
	meta, err := Meta(newEchoTool())

	require.NoError(t, err)
	assert.Equal(t, "echo", meta.Name())
	assert.Equal(t, "Echo the message back", meta.Description())
	assert.NotNil(t, meta.Schema())
}
