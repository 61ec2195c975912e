package tools

import (
	"github.com/anthropics/anthropic-sdk-go"
	mcptypes "github.com/mark3labs/mcp-go/mcp"
	"github.com/ollama/ollama/api"
	"github.com/openai/openai-go/v3"
)

// ToOpenAI converts tool declarations to the OpenAI function tool
// format. additionalProperties is pinned to false so the model can't
// invent parameters outside the declared schema.
func ToOpenAI(decls []mcptypes.Tool) []openai.ChatCompletionToolUnionParam {
	if len(decls) == 0 {
		return nil
	}

	result := make([]openai.ChatCompletionToolUnionParam, len(decls))

	for i, tool := range decls {
		params := openai.FunctionParameters{
			"type":                 tool.InputSchema.Type,
			"properties":           tool.InputSchema.Properties,
			"additionalProperties": false,
		}
		if len(tool.InputSchema.Required) > 0 {
			params["required"] = tool.InputSchema.Required
		}

		result[i] = openai.ChatCompletionFunctionTool(
			openai.FunctionDefinitionParam{
				Name:        tool.Name,
				Description: openai.String(tool.Description),
				Parameters:  params,
			},
		)
	}

	return result
}

// ToAnthropic converts tool declarations to the Anthropic tool-use
// format.
func ToAnthropic(decls []mcptypes.Tool) []anthropic.ToolUnionParam {
	if len(decls) == 0 {
		return nil
	}

	result := make([]anthropic.ToolUnionParam, len(decls))

	for i, tool := range decls {
		inputSchema := anthropic.ToolInputSchemaParam{
			// Type defaults to "object" when omitted.
			Properties: tool.InputSchema.Properties,
		}
		if len(tool.InputSchema.Required) > 0 {
			inputSchema.Required = tool.InputSchema.Required
		}

		result[i] = anthropic.ToolUnionParamOfTool(inputSchema, tool.Name)
		if tool.Description != "" {
			result[i].OfTool.Description = anthropic.String(tool.Description)
		}
	}

	return result
}

// ToOllama converts tool declarations to the Ollama API tool format.
func ToOllama(decls []mcptypes.Tool) []api.Tool {
	if len(decls) == 0 {
		return nil
	}

	result := make([]api.Tool, len(decls))

	for i, tool := range decls {
		result[i] = api.Tool{
			Type: "function",
			Function: api.ToolFunction{
				Name:        tool.Name,
				Description: tool.Description,
				Parameters:  toOllamaParameters(tool.InputSchema),
			},
		}
	}

	return result
}

func toOllamaParameters(schema mcptypes.ToolInputSchema) api.ToolFunctionParameters {
	params := api.ToolFunctionParameters{
		Type:       schema.Type,
		Required:   schema.Required,
		Properties: make(map[string]api.ToolProperty, len(schema.Properties)),
	}

	for name, value := range schema.Properties {
		params.Properties[name] = toOllamaProperty(value)
	}

	return params
}

// toOllamaProperty converts one JSON Schema property into Ollama's
// typed form. Declarations built in this package always produce
// map-valued properties with a string "type".
func toOllamaProperty(value any) api.ToolProperty {
	prop := api.ToolProperty{}

	m, ok := value.(map[string]any)
	if !ok {
		return prop
	}

	if t, ok := m["type"].(string); ok {
		prop.Type = api.PropertyType{t}
	}
	if desc, ok := m["description"].(string); ok {
		prop.Description = desc
	}
	if enum, ok := m["enum"].([]any); ok {
		prop.Enum = enum
	}
	if items, ok := m["items"]; ok {
		prop.Items = items
	}

	return prop
}
