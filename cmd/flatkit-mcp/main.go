package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"flatkit/internal/adapters/csvfile"
	"flatkit/internal/adapters/filesystem"
	"flatkit/internal/adapters/jsonstore"
	mcpadapter "flatkit/internal/adapters/mcp"
	"flatkit/internal/cli"
	"flatkit/internal/config"
)

const (
	serverName    = "flatkit-mcp"
	serverVersion = "0.1.0"
)

// newServer builds the MCP server with every flatkit tool registered
func newServer(deps mcpadapter.Deps) *server.MCPServer {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, deps)
	mcpadapter.RegisterWriteTools(mcpServer, deps)

	return mcpServer
}

func newRootCmd() *cobra.Command {
	var (
		g  cli.Globals
		db string
	)

	root := &cobra.Command{
		Use:   serverName,
		Short: "Serve the flatkit tools over MCP on stdio",
		Long: `flatkit-mcp exposes the CSV profiler, CSV stats, notes indexer and
inventory store as Model Context Protocol tools on stdin and stdout.
Logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			notes := filesystem.NewNotes()
			store := jsonstore.NewStore(filesystem.ExpandHome(cli.StringFlag(cmd, "db", db, g.Config.Inventory.DBPath)))

			g.Log().Info("serving MCP on stdio",
				zap.String("version", serverVersion),
				zap.String("db", store.Location()),
			)

			s := newServer(mcpadapter.Deps{
				Tables:     csvfile.NewSource(),
				Inventory:  store,
				Notes:      notes,
				Index:      notes,
				DefaultTop: g.Config.Profile.Top,
			})
			if err := server.ServeStdio(s); err != nil {
				return fmt.Errorf("%s: %w", serverName, err)
			}
			return nil
		},
	}

	root.Flags().StringVar(&db, "db", config.DefaultInventoryDB, "path to the inventory JSON file")
	g.Bind(root)

	return root
}

func main() {
	cli.Execute(newRootCmd())
}
