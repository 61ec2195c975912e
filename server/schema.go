package server

import (
	"shopbot/tools"
)

type schemaDocument struct {
	Name    string                `json:"name"`
	Version string                `json:"version"`
	Tools   map[string]toolSchema `json:"tools"`
}

type toolSchema struct {
	Description  string         `json:"description"`
	InputSchema  map[string]any `json:"input_schema"`
	OutputSchema map[string]any `json:"output_schema"`
}

// buildSchema renders the tool table as a JSON document. Input schemas
// are derived from the same declarations the bot advertises to the
// model, so the two can't drift apart; output schemas describe the
// result maps the handlers produce.
func buildSchema() schemaDocument {
	doc := schemaDocument{
		Name:    "product-tools",
		Version: "1.0.0",
		Tools:   make(map[string]toolSchema),
	}

	outputs := outputSchemas()
	for _, decl := range tools.Declarations() {
		input := map[string]any{
			"type":                 decl.InputSchema.Type,
			"properties":           decl.InputSchema.Properties,
			"additionalProperties": false,
		}
		if len(decl.InputSchema.Required) > 0 {
			input["required"] = decl.InputSchema.Required
		}

		doc.Tools[decl.Name] = toolSchema{
			Description:  decl.Description,
			InputSchema:  input,
			OutputSchema: outputs[decl.Name],
		}
	}

	return doc
}

// outputSchemas describes the shape of each handler's result map. Every
// tool that can fail carries an optional "error" property instead.
func outputSchemas() map[string]map[string]any {
	product := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":       map[string]any{"type": "integer"},
			"name":     map[string]any{"type": "string"},
			"category": map[string]any{"type": "string"},
			"price":    map[string]any{"type": "number"},
		},
		"required": []string{"id", "name", "category", "price"},
	}
	productList := objectSchema(map[string]any{
		"products": map[string]any{"type": "array", "items": product},
	}, "products")
	calcResult := objectSchema(map[string]any{
		"result": map[string]any{"type": "number"},
		"error":  map[string]any{"type": "string"},
	})

	return map[string]map[string]any{
		"list_products": productList,
		"find_product":  productList,
		"add_product": objectSchema(map[string]any{
			"product": product,
		}, "product"),
		"calculate":          calcResult,
		"calculate_advanced": calcResult,
		"search_web": objectSchema(map[string]any{
			"results": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
						"body":  map[string]any{"type": "string"},
						"url":   map[string]any{"type": "string"},
					},
				},
			},
			"query": map[string]any{"type": "string"},
			"error": map[string]any{"type": "string"},
		}),
		"get_currency_rates": objectSchema(map[string]any{
			"base":  map[string]any{"type": "string"},
			"rates": map[string]any{"type": "object"},
			"date":  map[string]any{"type": "string"},
			"error": map[string]any{"type": "string"},
		}),
		"translate_text": objectSchema(map[string]any{
			"original_text":   map[string]any{"type": "string"},
			"translated_text": map[string]any{"type": "string"},
			"source_language": map[string]any{"type": "string"},
			"target_language": map[string]any{"type": "string"},
			"error":           map[string]any{"type": "string"},
		}),
	}
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             append([]string{}, required...),
		"additionalProperties": false,
	}
}
