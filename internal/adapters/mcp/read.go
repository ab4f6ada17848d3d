package mcp

import (
	"context"
	"fmt"
	"io"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"flatkit/internal/application/commands"
	"flatkit/internal/ports"
	"flatkit/internal/report"
)

// Deps are the adapters the tools run against
type Deps struct {
	Tables     ports.TableSource
	Inventory  ports.InventoryStore
	Notes      ports.NoteSource
	Index      ports.IndexWriter
	DefaultTop int
}

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, deps Deps) {
	s.AddTool(profileTool(deps.DefaultTop), profileHandler(deps.Tables, deps.DefaultTop))
	s.AddTool(statsTool(), statsHandler(deps.Tables))
	s.AddTool(listCustomersTool(), listCustomersHandler(deps.Inventory))
	s.AddTool(listInventoryTool(), listInventoryHandler(deps.Inventory))
}

// --- profile_csv ---

func profileTool(defaultTop int) mcp.Tool {
	return mcp.NewTool("profile_csv",
		mcp.WithDescription("Profile a CSV file: row and column counts, and per column the missing values and most frequent values."),
		mcp.WithString("path",
			mcp.Description("Path to a CSV file with a header row"),
			mcp.Required(),
		),
		mcp.WithNumber("top",
			mcp.Description(fmt.Sprintf("Most frequent values per column (default %d)", defaultTop)),
		),
		formatOption(),
	)
}

func profileHandler(tables ports.TableSource, defaultTop int) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format, err := report.ParseFormat(req.GetString("format", string(report.FormatText)))
		if err != nil {
			return toolError(err)
		}

		cmd := commands.NewProfileCommand(tables, req.GetString("path", ""), req.GetInt("top", defaultTop))
		profile, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if format == report.FormatJSON {
			return render(func(w io.Writer) error { return report.JSON(w, profile) })
		}
		return render(func(w io.Writer) error { return report.Profile(w, profile) })
	}
}

// --- csv_stats ---

func statsTool() mcp.Tool {
	return mcp.NewTool("csv_stats",
		mcp.WithDescription("Compute count, mean, median, min and max for every numeric column of a CSV file. Non-numeric cells are skipped."),
		mcp.WithString("path",
			mcp.Description("Path to a CSV file with a header row"),
			mcp.Required(),
		),
		formatOption(),
	)
}

func statsHandler(tables ports.TableSource) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		format, err := report.ParseFormat(req.GetString("format", string(report.FormatText)))
		if err != nil {
			return toolError(err)
		}

		stats, err := commands.NewStatsCommand(tables, req.GetString("path", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if format == report.FormatJSON {
			return render(func(w io.Writer) error { return report.JSON(w, stats) })
		}
		if len(stats) == 0 {
			return mcp.NewToolResultText("No numeric columns."), nil
		}
		return render(func(w io.Writer) error { return report.Stats(w, stats) })
	}
}

// --- list_customers ---

func listCustomersTool() mcp.Tool {
	return mcp.NewTool("list_customers",
		mcp.WithDescription("List all customers in the inventory, sorted by name."),
	)
}

func listCustomersHandler(store ports.InventoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names, err := commands.NewListCustomersCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(names) == 0 {
			return mcp.NewToolResultText("No customers."), nil
		}
		return render(func(w io.Writer) error { return report.Customers(w, names) })
	}
}

// --- list_inventory ---

func listInventoryTool() mcp.Tool {
	return mcp.NewTool("list_inventory",
		mcp.WithDescription("List SKUs and stock per customer, sorted by customer then SKU."),
		mcp.WithString("customer",
			mcp.Description("Only list this customer. Omit to list all customers."),
		),
	)
}

func listInventoryHandler(store ports.InventoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewListInventoryCommand(store, req.GetString("customer", ""))
		customers, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(customers) == 0 {
			return mcp.NewToolResultText("No customers."), nil
		}
		return render(func(w io.Writer) error { return report.Inventory(w, customers) })
	}
}

// --- helpers ---

func formatOption() mcp.ToolOption {
	return mcp.WithString("format",
		mcp.Description("Output format: text (default) or json"),
		mcp.Enum(string(report.FormatText), string(report.FormatJSON)),
	)
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func render(fn func(io.Writer) error) (*mcp.CallToolResult, error) {
	text, err := report.String(fn)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(text), nil
}
