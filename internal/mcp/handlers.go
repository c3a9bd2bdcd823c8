package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/ww2site/internal/catalog"
)

// handleSearchPages runs a catalog search.
func (s *Server) handleSearchPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query, err := request.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: query"), nil
	}

	results := s.catalog.Search(query)
	if len(results) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No pages match %q.", query)), nil
	}
	return mcp.NewToolResultText(formatPages(results)), nil
}

// handleListPages returns the full catalog.
func (s *Server) handleListPages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatPages(s.catalog.Entries())), nil
}

// handleYearPage resolves a war year to its page.
func (s *Server) handleYearPage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, err := request.RequireInt("year")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: year"), nil
	}

	page, ok := s.catalog.ByYear(year)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no page for %d (expected %s to exist)", year, catalog.YearLocator(year))), nil
	}
	return mcp.NewToolResultText(formatPages([]catalog.PageEntry{page})), nil
}

// formatPages renders pages as a numbered plain-text list.
func formatPages(pages []catalog.PageEntry) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d page(s):\n\n", len(pages))
	for i, p := range pages {
		fmt.Fprintf(&sb, "%d. %s\n   Locator: %s\n", i+1, p.Title, p.Locator)
		if len(p.Keywords) > 0 {
			fmt.Fprintf(&sb, "   Keywords: %s\n", strings.Join(p.Keywords, ", "))
		}
	}
	return sb.String()
}
