package tools

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

type fakeInvoker struct {
	lastName   string
	lastParams map[string]any
	result     string
	err        error
	panicWith  any
}

func (f *fakeInvoker) Invoke(_ context.Context, name string, params map[string]any) (string, error) {
	f.lastName = name
	f.lastParams = params
	if f.panicWith != nil {
		panic(f.panicWith)
	}
	return f.result, f.err
}

func TestRegistryExecuteKnownTool(t *testing.T) {
	inv := &fakeInvoker{result: `{"result": 4}`}
	reg := NewRegistry(inv)

	got := reg.Execute(context.Background(), "calculate", `{"expression": "2+2"}`)

	if got != `{"result": 4}` {
		t.Errorf("Execute() = %q, want invoker result", got)
	}
	if inv.lastName != "calculate" {
		t.Errorf("invoked tool = %q, want calculate", inv.lastName)
	}
	if inv.lastParams["expression"] != "2+2" {
		t.Errorf("invoked params = %+v, want expression=2+2", inv.lastParams)
	}
}

func TestRegistryExecuteUnknownTool(t *testing.T) {
	inv := &fakeInvoker{}
	reg := NewRegistry(inv)

	got := reg.Execute(context.Background(), "delete_everything", `{}`)

	var payload map[string]string
	if err := json.Unmarshal([]byte(got), &payload); err != nil {
		t.Fatalf("Execute() returned non-JSON %q: %v", got, err)
	}
	if payload["error"] != "unknown tool: delete_everything" {
		t.Errorf("error payload = %q", payload["error"])
	}
	if inv.lastName != "" {
		t.Errorf("invoker was called for unknown tool: %q", inv.lastName)
	}
}

func TestRegistryExecuteMalformedArguments(t *testing.T) {
	inv := &fakeInvoker{result: `{"error": "name is required"}`}
	reg := NewRegistry(inv)

	reg.Execute(context.Background(), "find_product", `{"name": `)

	if inv.lastName != "find_product" {
		t.Fatalf("tool was not invoked, got %q", inv.lastName)
	}
	if len(inv.lastParams) != 0 {
		t.Errorf("params = %+v, want empty map for malformed arguments", inv.lastParams)
	}
}

func TestRegistryExecuteInvokerError(t *testing.T) {
	inv := &fakeInvoker{err: errors.New("tool server unreachable")}
	reg := NewRegistry(inv)

	got := reg.Execute(context.Background(), "list_products", "")

	var payload map[string]string
	if err := json.Unmarshal([]byte(got), &payload); err != nil {
		t.Fatalf("Execute() returned non-JSON %q: %v", got, err)
	}
	if payload["error"] != "tool server unreachable" {
		t.Errorf("error payload = %q", payload["error"])
	}
}

func TestRegistryExecuteRecoversPanic(t *testing.T) {
	inv := &fakeInvoker{panicWith: "boom"}
	reg := NewRegistry(inv)

	got := reg.Execute(context.Background(), "list_products", "")

	var payload map[string]string
	if err := json.Unmarshal([]byte(got), &payload); err != nil {
		t.Fatalf("Execute() returned non-JSON %q: %v", got, err)
	}
	if payload["error"] == "" {
		t.Errorf("expected an error payload after panic, got %q", got)
	}
}

func TestDecodeArguments(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{"empty string", "", map[string]any{}},
		{"empty object", "{}", map[string]any{}},
		{"valid object", `{"name": "mouse"}`, map[string]any{"name": "mouse"}},
		{"malformed json", `{"name":`, map[string]any{}},
		{"non-object json", `[1, 2]`, map[string]any{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeArguments(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeArguments(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDeclarationsAreClosed(t *testing.T) {
	want := []string{
		"list_products",
		"find_product",
		"add_product",
		"calculate",
		"calculate_advanced",
		"search_web",
		"get_currency_rates",
		"translate_text",
	}

	decls := Declarations()
	if len(decls) != len(want) {
		t.Fatalf("Declarations() has %d tools, want %d", len(decls), len(want))
	}
	for i, name := range want {
		if decls[i].Name != name {
			t.Errorf("Declarations()[%d] = %q, want %q", i, decls[i].Name, name)
		}
	}
}

func TestDeclarationsRequiredParams(t *testing.T) {
	required := map[string][]string{
		"list_products":      nil,
		"find_product":       {"name"},
		"add_product":        {"name", "category", "price"},
		"calculate":          {"expression"},
		"calculate_advanced": {"expression"},
		"search_web":         {"query"},
		"get_currency_rates": nil,
		"translate_text":     {"text", "target_language"},
	}

	for _, decl := range Declarations() {
		want := required[decl.Name]
		got := decl.InputSchema.Required
		if len(got) != len(want) {
			t.Errorf("%s: required = %v, want %v", decl.Name, got, want)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: required = %v, want %v", decl.Name, got, want)
				break
			}
		}
	}
}
