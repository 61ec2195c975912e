package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"shopbot/catalog"
	"shopbot/tools"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cat, err := catalog.Open(filepath.Join(t.TempDir(), "products.db"))
	if err != nil {
		t.Fatalf("failed to open catalog: %v", err)
	}
	t.Cleanup(func() { cat.Close() })

	srv := httptest.NewServer(New(cat).Handler())
	t.Cleanup(srv.Close)
	return srv
}

func runTool(t *testing.T, srv *httptest.Server, tool string, params map[string]any) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(map[string]any{"tool": tool, "params": params})
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	resp, err := http.Post(srv.URL+"/run_tool", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp.StatusCode, decoded
}

func responseOf(t *testing.T, decoded map[string]any) map[string]any {
	t.Helper()
	response, ok := decoded["response"].(map[string]any)
	if !ok {
		t.Fatalf("response payload = %+v", decoded)
	}
	return response
}

func TestRunToolListProducts(t *testing.T) {
	srv := newTestServer(t)

	status, decoded := runTool(t, srv, "list_products", nil)
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if decoded["tool"] != "list_products" {
		t.Errorf("tool = %v", decoded["tool"])
	}

	products, ok := responseOf(t, decoded)["products"].([]any)
	if !ok || len(products) == 0 {
		t.Errorf("products = %+v, want seeded list", decoded)
	}
}

func TestRunToolAddAndFindProduct(t *testing.T) {
	srv := newTestServer(t)

	status, decoded := runTool(t, srv, "add_product", map[string]any{
		"name": "Rye bread", "category": "bakery", "price": 1.95,
	})
	if status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	product, ok := responseOf(t, decoded)["product"].(map[string]any)
	if !ok || product["name"] != "Rye bread" {
		t.Fatalf("add_product response = %+v", decoded)
	}

	_, decoded = runTool(t, srv, "find_product", map[string]any{"name": "rye"})
	products, ok := responseOf(t, decoded)["products"].([]any)
	if !ok || len(products) != 1 {
		t.Errorf("find_product response = %+v", decoded)
	}
}

func TestRunToolCalculate(t *testing.T) {
	srv := newTestServer(t)

	_, decoded := runTool(t, srv, "calculate", map[string]any{"expression": "2 + 2 * 3"})
	if got := responseOf(t, decoded)["result"]; got != float64(8) {
		t.Errorf("result = %v, want 8", got)
	}

	_, decoded = runTool(t, srv, "calculate_advanced", map[string]any{"expression": "sqrt(16)"})
	if got := responseOf(t, decoded)["result"]; got != float64(4) {
		t.Errorf("advanced result = %v, want 4", got)
	}
}

func TestRunToolValidationErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		tool   string
		params map[string]any
	}{
		{"find_product", nil},
		{"find_product", map[string]any{"name": 42}},
		{"add_product", map[string]any{"name": "x", "category": "y", "price": "cheap"}},
		{"calculate", map[string]any{"expression": "  "}},
		{"search_web", nil},
		{"translate_text", map[string]any{"target_language": "en"}},
	}

	for _, tt := range tests {
		status, decoded := runTool(t, srv, tt.tool, tt.params)
		if status != http.StatusOK {
			t.Errorf("%s: status = %d, want 200 with error payload", tt.tool, status)
			continue
		}
		if _, ok := responseOf(t, decoded)["error"]; !ok {
			t.Errorf("%s: response = %+v, want error payload", tt.tool, decoded)
		}
	}
}

func TestRunToolUnknownTool(t *testing.T) {
	srv := newTestServer(t)

	status, decoded := runTool(t, srv, "drop_tables", nil)
	if status != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", status)
	}
	if detail, _ := decoded["detail"].(string); detail != "Tool 'drop_tables' not found" {
		t.Errorf("detail = %q", detail)
	}
}

func TestRunToolMalformedBody(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/run_tool", "application/json", bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSchemaListsAllTools(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/schema")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}

	var doc struct {
		Name  string                    `json:"name"`
		Tools map[string]map[string]any `json:"tools"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		t.Fatalf("failed to decode schema: %v", err)
	}

	decls := tools.Declarations()
	if len(doc.Tools) != len(decls) {
		t.Errorf("schema lists %d tools, want %d", len(doc.Tools), len(decls))
	}
	for _, decl := range decls {
		entry, ok := doc.Tools[decl.Name]
		if !ok {
			t.Errorf("schema missing tool %s", decl.Name)
			continue
		}
		if entry["input_schema"] == nil {
			t.Errorf("%s: schema entry has no input_schema", decl.Name)
		}
		out, ok := entry["output_schema"].(map[string]any)
		if !ok {
			t.Errorf("%s: schema entry has no output_schema", decl.Name)
			continue
		}
		if out["type"] != "object" || out["properties"] == nil {
			t.Errorf("%s: output_schema = %v, want an object schema with properties", decl.Name, out)
		}
	}

	listOut := doc.Tools["list_products"]["output_schema"].(map[string]any)
	if _, ok := listOut["properties"].(map[string]any)["products"]; !ok {
		t.Errorf("list_products output_schema lacks a products property: %v", listOut)
	}
}

func TestCORSHeaders(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/run_tool", nil)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if got := resp.Header.Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
