package toolset

import (
	"github.com/tmc/langchaingo/llms"
)

// LangChainTools exports the registered tool catalog as langchaingo
// function definitions, so an agent can offer the region operations to
// an LLM and route the resulting tool calls back through Call.
func (r *Registry) LangChainTools() []llms.Tool {
	catalog := r.Catalog()
	tools := make([]llms.Tool, 0, len(catalog))
	for _, info := range catalog {
		tools = append(tools, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        info.Name,
				Description: info.Description,
				Parameters:  info.Schema,
			},
		})
	}
	return tools
}
