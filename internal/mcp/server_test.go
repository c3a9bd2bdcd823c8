package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/ww2site/internal/catalog"
)

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	tc, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want mcp.TextContent", result.Content[0])
	}
	return tc.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"search_pages", searchPagesTool, "search_pages"},
		{"list_pages", listPagesTool, "list_pages"},
		{"year_page", yearPageTool, "year_page"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := NewServer(catalog.Default())
	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.catalog != catalog.Default() {
		t.Error("catalog not set correctly")
	}
}

func TestHandleSearchPages(t *testing.T) {
	srv := NewServer(catalog.Default())
	ctx := context.Background()

	t.Run("keyword match", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "Dunkirk"}

		result, err := srv.handleSearchPages(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Found 1 page(s)") || !strings.Contains(text, "pages/1940.html") {
			t.Errorf("unexpected text %q", text)
		}
	})

	t.Run("empty query lists all", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": ""}

		result, err := srv.handleSearchPages(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(resultText(t, result), "Found 10 page(s)") {
			t.Errorf("unexpected text %q", resultText(t, result))
		}
	})

	t.Run("no match", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "nonexistent-zzz"}

		result, err := srv.handleSearchPages(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Error("no match should not be a tool error")
		}
		if !strings.Contains(resultText(t, result), "No pages match") {
			t.Errorf("unexpected text %q", resultText(t, result))
		}
	})

	t.Run("missing query", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleSearchPages(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing query")
		}
	})
}

func TestHandleListPages(t *testing.T) {
	srv := NewServer(catalog.Default())

	result, err := srv.handleListPages(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)
	if !strings.Contains(text, "1. 1939 - The War Begins") || !strings.Contains(text, "10. Key Leaders") {
		t.Errorf("unexpected text %q", text)
	}
}

func TestHandleYearPage(t *testing.T) {
	srv := NewServer(catalog.Default())
	ctx := context.Background()

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"year": float64(1942)}
	result, err := srv.handleYearPage(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.IsError || !strings.Contains(resultText(t, result), "1942 - The Tide Turns") {
		t.Errorf("unexpected result %+v", result)
	}

	req.Params.Arguments = map[string]any{"year": float64(1950)}
	result, err = srv.handleYearPage(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for a year without a page")
	}

	req.Params.Arguments = map[string]any{}
	result, err = srv.handleYearPage(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error for missing year")
	}
}

func TestFormatPages(t *testing.T) {
	text := formatPages([]catalog.PageEntry{{Title: "Home", Locator: "index.html"}})
	want := "Found 1 page(s):\n\n1. Home\n   Locator: index.html\n"
	if text != want {
		t.Errorf("formatPages = %q, want %q", text, want)
	}
}
