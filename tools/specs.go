// Package tools defines the fixed tool table advertised to the model
// and dispatches the model's tool calls against the tool server.
package tools

import (
	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// Declarations returns the closed table of tools advertised to the
// model. The set is fixed at startup; the registry refuses calls to
// anything outside it.
func Declarations() []mcptypes.Tool {
	return []mcptypes.Tool{
		mcptypes.NewTool("list_products",
			mcptypes.WithDescription("Get a list of all products in the store with their categories and prices"),
		),
		mcptypes.NewTool("find_product",
			mcptypes.WithDescription("Find a product in the store by name"),
			mcptypes.WithString("name",
				mcptypes.Required(),
				mcptypes.Description("Product name to search for"),
			),
		),
		mcptypes.NewTool("add_product",
			mcptypes.WithDescription("Add a new product to the store"),
			mcptypes.WithString("name",
				mcptypes.Required(),
				mcptypes.Description("Product name"),
			),
			mcptypes.WithString("category",
				mcptypes.Required(),
				mcptypes.Description("Product category"),
			),
			mcptypes.WithNumber("price",
				mcptypes.Required(),
				mcptypes.Description("Product price"),
			),
		),
		mcptypes.NewTool("calculate",
			mcptypes.WithDescription("Evaluate a basic arithmetic expression, e.g. \"2 + 2 * 3\""),
			mcptypes.WithString("expression",
				mcptypes.Required(),
				mcptypes.Description("Arithmetic expression to evaluate"),
			),
		),
		mcptypes.NewTool("calculate_advanced",
			mcptypes.WithDescription("Evaluate a mathematical expression with functions: sqrt, sin, cos, tan, log, log10, exp, pow, abs, round, min, max, and the constants pi and e"),
			mcptypes.WithString("expression",
				mcptypes.Required(),
				mcptypes.Description("Mathematical expression to evaluate"),
			),
		),
		mcptypes.NewTool("search_web",
			mcptypes.WithDescription("Search the web and return the top results"),
			mcptypes.WithString("query",
				mcptypes.Required(),
				mcptypes.Description("Search query"),
			),
			mcptypes.WithNumber("max_results",
				mcptypes.Description("Maximum number of results to return (default 5)"),
			),
		),
		mcptypes.NewTool("get_currency_rates",
			mcptypes.WithDescription("Get current exchange rates for a base currency"),
			mcptypes.WithString("base",
				mcptypes.Description("Base currency code (default USD)"),
			),
			mcptypes.WithArray("currencies",
				mcptypes.Description("Currency codes to include in the result, e.g. [\"EUR\", \"GBP\"]"),
				mcptypes.Items(map[string]any{"type": "string"}),
			),
		),
		mcptypes.NewTool("translate_text",
			mcptypes.WithDescription("Translate text to a target language"),
			mcptypes.WithString("text",
				mcptypes.Required(),
				mcptypes.Description("Text to translate"),
			),
			mcptypes.WithString("target_language",
				mcptypes.Required(),
				mcptypes.Description("Target language code or name, e.g. \"en\" or \"german\""),
			),
			mcptypes.WithString("source_language",
				mcptypes.Description("Source language code (default: auto-detect)"),
			),
		),
	}
}
