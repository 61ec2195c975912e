package server

import (
	"context"
	"fmt"
	"strings"

	"shopbot/calc"
)

// errResult renders a tool-level failure. These travel inside the 200
// response so the model can relay them to the user.
func errResult(format string, args ...any) map[string]any {
	return map[string]any{"error": fmt.Sprintf(format, args...)}
}

func stringParam(params map[string]any, key string) (string, bool) {
	value, ok := params[key].(string)
	return value, ok && strings.TrimSpace(value) != ""
}

func (s *Server) listProducts(_ context.Context, _ map[string]any) any {
	products, err := s.catalog.List()
	if err != nil {
		return errResult("failed to list products: %v", err)
	}
	return map[string]any{"products": products}
}

func (s *Server) findProduct(_ context.Context, params map[string]any) any {
	name, ok := stringParam(params, "name")
	if !ok {
		return errResult("parameter 'name' (string) is required")
	}

	products, err := s.catalog.Find(name)
	if err != nil {
		return errResult("failed to search products: %v", err)
	}
	return map[string]any{"products": products}
}

func (s *Server) addProduct(_ context.Context, params map[string]any) any {
	name, nameOK := stringParam(params, "name")
	category, categoryOK := stringParam(params, "category")
	if !nameOK || !categoryOK {
		return errResult("parameters 'name' and 'category' must be non-empty strings")
	}
	price, ok := params["price"].(float64)
	if !ok {
		return errResult("parameter 'price' must be a number")
	}

	product, err := s.catalog.Add(name, category, price)
	if err != nil {
		return errResult("failed to add product: %v", err)
	}
	return map[string]any{"product": product}
}

func (s *Server) calculate(_ context.Context, params map[string]any) any {
	expression, ok := stringParam(params, "expression")
	if !ok {
		return errResult("parameter 'expression' (string) is required")
	}

	result, err := calc.Evaluate(expression)
	if err != nil {
		return errResult("%v", err)
	}
	return map[string]any{"result": result}
}

func (s *Server) calculateAdvanced(_ context.Context, params map[string]any) any {
	expression, ok := stringParam(params, "expression")
	if !ok {
		return errResult("parameter 'expression' (string) is required")
	}

	result, err := calc.EvaluateAdvanced(expression)
	if err != nil {
		return errResult("%v", err)
	}
	return map[string]any{"result": result}
}

func (s *Server) searchWeb(ctx context.Context, params map[string]any) any {
	query, ok := stringParam(params, "query")
	if !ok {
		return errResult("parameter 'query' (string) is required")
	}

	maxResults := 5
	if raw, ok := params["max_results"].(float64); ok {
		maxResults = int(raw)
	}

	results, err := s.searcher.Search(ctx, query, maxResults)
	if err != nil {
		return errResult("web search failed: %v", err)
	}
	if len(results) == 0 {
		return map[string]any{
			"results": results,
			"query":   query,
			"message": "Nothing found for your query. Try rephrasing it.",
		}
	}
	return map[string]any{"results": results, "query": query}
}

func (s *Server) currencyRates(ctx context.Context, params map[string]any) any {
	base, _ := params["base"].(string)

	// Default targets mirror what the bot's users ask about most.
	targets := []string{"EUR", "RUB"}
	switch raw := params["currencies"].(type) {
	case []any:
		targets = targets[:0]
		for _, v := range raw {
			if code, ok := v.(string); ok {
				targets = append(targets, code)
			}
		}
	case string:
		targets = []string{raw}
	}

	rates, err := s.rates.Latest(ctx, base)
	if err != nil {
		return errResult("failed to fetch currency rates: %v", err)
	}

	filtered := map[string]float64{}
	for _, code := range targets {
		code = strings.ToUpper(strings.TrimSpace(code))
		if rate, ok := rates.Rates[code]; ok {
			filtered[code] = rate
		}
	}

	return map[string]any{
		"base":  rates.Base,
		"rates": filtered,
		"date":  rates.Date,
	}
}

func (s *Server) translateText(ctx context.Context, params map[string]any) any {
	text, ok := stringParam(params, "text")
	if !ok {
		return errResult("parameter 'text' (string) is required")
	}

	target, _ := params["target_language"].(string)
	if target == "" {
		target = "en"
	}
	source, _ := params["source_language"].(string)
	if source == "" {
		source = "auto"
	}

	translated, err := s.translator.Translate(ctx, text, source, target)
	if err != nil {
		return errResult("translation failed: %v", err)
	}

	return map[string]any{
		"original_text":   text,
		"translated_text": translated,
		"source_language": source,
		"target_language": target,
	}
}
