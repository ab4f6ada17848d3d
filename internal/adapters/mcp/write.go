package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"flatkit/internal/application/commands"
	"flatkit/internal/config"
	"flatkit/internal/ports"
)

// RegisterWriteTools adds all tools that write files to the MCP server.
func RegisterWriteTools(s *server.MCPServer, deps Deps) {
	s.AddTool(indexNotesTool(), indexNotesHandler(deps.Notes, deps.Index))
	s.AddTool(addSKUTool(), addSKUHandler(deps.Inventory))
	s.AddTool(removeSKUTool(), removeSKUHandler(deps.Inventory))
	s.AddTool(setStockTool(), setStockHandler(deps.Inventory))
}

// --- index_notes ---

func indexNotesTool() mcp.Tool {
	return mcp.NewTool("index_notes",
		mcp.WithDescription("Index every markdown note under a directory and write a JSON array of {title, path} sorted by path."),
		mcp.WithString("root",
			mcp.Description("Directory to scan recursively for .md files"),
			mcp.Required(),
		),
		mcp.WithString("output",
			mcp.Description("Index file to write (default "+config.DefaultNotesOutput+")"),
		),
	)
}

func indexNotesHandler(source ports.NoteSource, writer ports.IndexWriter) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		root := req.GetString("root", "")
		output := req.GetString("output", config.DefaultNotesOutput)

		result, err := commands.NewIndexNotesCommand(source, writer, nil, root, output).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- add_sku ---

func addSKUTool() mcp.Tool {
	return mcp.NewTool("add_sku",
		mcp.WithDescription("Add a new SKU with an initial stock for a customer. Fails if the SKU already exists."),
		customerArg(),
		skuArg(),
		stockArg("Initial stock (>= 0)"),
	)
}

func addSKUHandler(store ports.InventoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stock, err := req.RequireInt("stock")
		if err != nil {
			return toolError(err)
		}

		customer, sku, err := skuKey(req)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewAddSKUCommand(store, customer, sku, stock)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove_sku ---

func removeSKUTool() mcp.Tool {
	return mcp.NewTool("remove_sku",
		mcp.WithDescription("Remove a SKU from a customer. Fails if the SKU does not exist."),
		customerArg(),
		skuArg(),
	)
}

func removeSKUHandler(store ports.InventoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		customer, sku, err := skuKey(req)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewRemoveSKUCommand(store, customer, sku)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_stock ---

func setStockTool() mcp.Tool {
	return mcp.NewTool("set_stock",
		mcp.WithDescription("Set the stock of an existing SKU. Fails if the SKU does not exist."),
		customerArg(),
		skuArg(),
		stockArg("New stock (>= 0)"),
	)
}

func setStockHandler(store ports.InventoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		stock, err := req.RequireInt("stock")
		if err != nil {
			return toolError(err)
		}

		customer, sku, err := skuKey(req)
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewSetStockCommand(store, customer, sku, stock)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// skuKey reads the required customer and sku arguments. Empty strings are
// valid names; only missing arguments are rejected.
func skuKey(req mcp.CallToolRequest) (string, string, error) {
	customer, err := req.RequireString("customer")
	if err != nil {
		return "", "", err
	}
	sku, err := req.RequireString("sku")
	if err != nil {
		return "", "", err
	}
	return customer, sku, nil
}

func customerArg() mcp.ToolOption {
	return mcp.WithString("customer",
		mcp.Description("Customer name"),
		mcp.Required(),
	)
}

func skuArg() mcp.ToolOption {
	return mcp.WithString("sku",
		mcp.Description("SKU name"),
		mcp.Required(),
	)
}

func stockArg(desc string) mcp.ToolOption {
	return mcp.WithNumber("stock",
		mcp.Description(desc),
		mcp.Required(),
	)
}
