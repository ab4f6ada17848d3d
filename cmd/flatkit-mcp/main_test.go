package main

import (
	"context"
	"path/filepath"
	"sort"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flatkit/internal/adapters/csvfile"
	"flatkit/internal/adapters/filesystem"
	"flatkit/internal/adapters/jsonstore"
	mcpadapter "flatkit/internal/adapters/mcp"
)

func TestNewServer_RegistersAllTools(t *testing.T) {
	notes := filesystem.NewNotes()
	s := newServer(mcpadapter.Deps{
		Tables:     csvfile.NewSource(),
		Inventory:  jsonstore.NewStore(filepath.Join(t.TempDir(), "inv.json")),
		Notes:      notes,
		Index:      notes,
		DefaultTop: 5,
	})

	tools := s.ListTools()
	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)

	assert.Equal(t, []string{
		"add_sku",
		"csv_stats",
		"index_notes",
		"list_customers",
		"list_inventory",
		"ping",
		"profile_csv",
		"remove_sku",
		"set_stock",
	}, names)

	ping := tools["ping"]
	require.NotNil(t, ping)
	res, err := ping.Handler(context.Background(), mcp.CallToolRequest{})
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	assert.Equal(t, "pong", res.Content[0].(mcp.TextContent).Text)
}
