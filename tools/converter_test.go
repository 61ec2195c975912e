package tools

import (
	"testing"
)

func TestToOpenAI(t *testing.T) {
	decls := Declarations()
	converted := ToOpenAI(decls)

	if len(converted) != len(decls) {
		t.Fatalf("converted %d tools, want %d", len(converted), len(decls))
	}

	for i, tool := range converted {
		if tool.OfFunction == nil {
			t.Fatalf("tool %d is not a function tool", i)
		}
		fn := tool.OfFunction.Function
		if fn.Name != decls[i].Name {
			t.Errorf("tool %d name = %q, want %q", i, fn.Name, decls[i].Name)
		}
		if extra, ok := fn.Parameters["additionalProperties"].(bool); !ok || extra {
			t.Errorf("%s: additionalProperties = %v, want false", fn.Name, fn.Parameters["additionalProperties"])
		}
	}
}

func TestToOpenAIRequired(t *testing.T) {
	converted := ToOpenAI(Declarations())

	for _, tool := range converted {
		fn := tool.OfFunction.Function
		switch fn.Name {
		case "find_product":
			required, ok := fn.Parameters["required"].([]string)
			if !ok || len(required) != 1 || required[0] != "name" {
				t.Errorf("find_product required = %v", fn.Parameters["required"])
			}
		case "list_products":
			if _, ok := fn.Parameters["required"]; ok {
				t.Errorf("list_products should not declare required params")
			}
		}
	}
}

func TestToAnthropic(t *testing.T) {
	decls := Declarations()
	converted := ToAnthropic(decls)

	if len(converted) != len(decls) {
		t.Fatalf("converted %d tools, want %d", len(converted), len(decls))
	}

	for i, tool := range converted {
		if tool.OfTool == nil {
			t.Fatalf("tool %d: OfTool is nil", i)
		}
		if tool.OfTool.Name != decls[i].Name {
			t.Errorf("tool %d name = %q, want %q", i, tool.OfTool.Name, decls[i].Name)
		}
		if !tool.OfTool.Description.Valid() {
			t.Errorf("%s: description not set", decls[i].Name)
		}
	}
}

func TestToOllama(t *testing.T) {
	decls := Declarations()
	converted := ToOllama(decls)

	if len(converted) != len(decls) {
		t.Fatalf("converted %d tools, want %d", len(converted), len(decls))
	}

	for i, tool := range converted {
		if tool.Type != "function" {
			t.Errorf("tool %d type = %q, want function", i, tool.Type)
		}
		if tool.Function.Name != decls[i].Name {
			t.Errorf("tool %d name = %q, want %q", i, tool.Function.Name, decls[i].Name)
		}
	}
}

func TestToOllamaProperties(t *testing.T) {
	converted := ToOllama(Declarations())

	for _, tool := range converted {
		if tool.Function.Name != "get_currency_rates" {
			continue
		}

		params := tool.Function.Parameters
		base, ok := params.Properties["base"]
		if !ok {
			t.Fatal("get_currency_rates missing base property")
		}
		if len(base.Type) != 1 || base.Type[0] != "string" {
			t.Errorf("base type = %v, want [string]", base.Type)
		}

		currencies, ok := params.Properties["currencies"]
		if !ok {
			t.Fatal("get_currency_rates missing currencies property")
		}
		if len(currencies.Type) != 1 || currencies.Type[0] != "array" {
			t.Errorf("currencies type = %v, want [array]", currencies.Type)
		}
		if currencies.Items == nil {
			t.Error("currencies items schema not carried over")
		}
		return
	}
	t.Fatal("get_currency_rates not found in converted tools")
}

func TestConvertersEmptyInput(t *testing.T) {
	if got := ToOpenAI(nil); got != nil {
		t.Errorf("ToOpenAI(nil) = %v, want nil", got)
	}
	if got := ToAnthropic(nil); got != nil {
		t.Errorf("ToAnthropic(nil) = %v, want nil", got)
	}
	if got := ToOllama(nil); got != nil {
		t.Errorf("ToOllama(nil) = %v, want nil", got)
	}
}
