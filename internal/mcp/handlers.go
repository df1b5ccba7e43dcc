package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/abx-navigator/internal/content"
	"github.com/ziadkadry99/abx-navigator/internal/view"
)

func (s *Server) handleListParts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	m, err := content.LoadManifest(ctx, s.loader, s.manifestPath)
	if errors.Is(err, content.ErrNoParts) {
		return mcp.NewToolResultError(s.msgs.NoParts()), nil
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s (%v)", s.msgs.ManifestLoadFailed(s.manifestPath), err)), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", m.App.DisplayTitle())
	if m.App.Description != "" {
		fmt.Fprintf(&b, "%s\n", m.App.Description)
	}
	b.WriteString("\n")
	for i, p := range m.Guides.Parts {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, p.Title, p.Path)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGetPart(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	part, err := content.LoadPart(ctx, s.loader, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s (%v)", s.msgs.PartLoadFailed(path), err)), nil
	}

	var b strings.Builder
	b.WriteString(view.Text(view.Part(part)))
	if len(part.Sections) > 0 {
		b.WriteString("\n## Sections\n")
		for _, sec := range part.Sections {
			if sec.Navigable() {
				fmt.Fprintf(&b, "- %s (%s)\n", sec.Title, sec.Path)
			} else {
				fmt.Fprintf(&b, "- %s (no document)\n", sec.Title)
			}
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleGetDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}

	doc, err := content.LoadDocument(ctx, s.loader, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s (%v)", s.msgs.DocumentLoadFailed(path), err)), nil
	}
	return mcp.NewToolResultText(view.Text(view.Document(doc))), nil
}

func (s *Server) handleGetItem(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: path"), nil
	}
	var idx [3]int
	for i, key := range []string{"chapter", "section", "item"} {
		n, err := request.RequireInt(key)
		if err != nil {
			return mcp.NewToolResultError("missing required parameter: " + key), nil
		}
		idx[i] = n
	}

	doc, err := content.LoadDocument(ctx, s.loader, path)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("%s (%v)", s.msgs.DocumentLoadFailed(path), err)), nil
	}
	cd, ok := doc.(*content.ChapteredDocument)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%s has no chapters", path)), nil
	}
	item, sec, ch, ok := cd.ItemAt(idx[0], idx[1], idx[2])
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("no item at %d/%d/%d in %s", idx[0], idx[1], idx[2], path)), nil
	}
	return mcp.NewToolResultText(view.Text(view.ItemDetail(s.msgs, item, sec.Title, ch.Title))), nil
}
