package mcp

import "github.com/mark3labs/mcp-go/mcp"

// searchPagesTool defines the search_pages MCP tool.
var searchPagesTool = mcp.NewTool("search_pages",
	mcp.WithDescription("Search the history site's pages by title or keyword. Matching is case-insensitive substring matching; an empty query lists every page."),
	mcp.WithString("query",
		mcp.Required(),
		mcp.Description("Word or phrase to look for, e.g. \"dunkirk\" or \"battle\""),
	),
)

// listPagesTool defines the list_pages MCP tool.
var listPagesTool = mcp.NewTool("list_pages",
	mcp.WithDescription("List every page of the history site in site order."),
)

// yearPageTool defines the year_page MCP tool.
var yearPageTool = mcp.NewTool("year_page",
	mcp.WithDescription("Get the page covering a single year of the war."),
	mcp.WithNumber("year",
		mcp.Required(),
		mcp.Description("Year between 1939 and 1945"),
	),
)
