package mcp

import "github.com/mark3labs/mcp-go/mcp"

// listPartsTool defines the list_parts MCP tool.
var listPartsTool = mcp.NewTool("list_parts",
	mcp.WithDescription("List the parts of the antimicrobial guide in manifest order, with their resource paths."),
)

// getPartTool defines the get_part MCP tool.
var getPartTool = mcp.NewTool("get_part",
	mcp.WithDescription("Get a part's overview and its sections. Sections without a path have no document."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Resource path of the part, as returned by list_parts"),
	),
)

// getDocumentTool defines the get_document MCP tool.
var getDocumentTool = mcp.NewTool("get_document",
	mcp.WithDescription("Get the full text of a document: chapters, sections and items with their summaries and notes."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Resource path of the document, as listed by get_part"),
	),
)

// getItemTool defines the get_item MCP tool.
var getItemTool = mcp.NewTool("get_item",
	mcp.WithDescription("Get a single item of a chaptered document by its zero-based chapter, section and item indices."),
	mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Resource path of the document"),
	),
	mcp.WithNumber("chapter", mcp.Required(), mcp.Description("Chapter index")),
	mcp.WithNumber("section", mcp.Required(), mcp.Description("Section index within the chapter")),
	mcp.WithNumber("item", mcp.Required(), mcp.Description("Item index within the section")),
)
