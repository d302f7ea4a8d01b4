// ABOUTME: MCP server subcommand
// ABOUTME: Exposes the signed-in account's data as MCP tools, resources and prompts over stdio
package cli

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/billfold/handlers"
	"github.com/harperreed/billfold/store"
)

// NewMCPServer registers every tool, resource and prompt against s.
func NewMCPServer(s *store.Store, version string) *mcp.Server {
	clientHandlers := handlers.NewClientHandlers(s)
	projectHandlers := handlers.NewProjectHandlers(s)
	invoiceHandlers := handlers.NewInvoiceHandlers(s)
	dashboardHandlers := handlers.NewDashboardHandlers(s)
	resourceHandlers := handlers.NewResourceHandlers(s)
	promptHandlers := handlers.NewPromptHandlers(s)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "billfold",
		Version: version,
	}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_clients",
		Description: "List clients, optionally filtered by name, email or phone",
	}, clientHandlers.ListClients)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_client",
		Description: "Add a new client",
	}, clientHandlers.AddClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "update_client",
		Description: "Update a client's name, email or phone",
	}, clientHandlers.UpdateClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "delete_client",
		Description: "Delete a client",
	}, clientHandlers.DeleteClient)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_projects",
		Description: "List projects, optionally filtered by status",
	}, projectHandlers.ListProjects)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "add_project",
		Description: "Create a project for a client",
	}, projectHandlers.AddProject)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_invoices",
		Description: "List invoices with their line items, optionally filtered by status or client",
	}, invoiceHandlers.ListInvoices)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "create_invoice",
		Description: "Create an invoice from line items; amounts and total are computed from quantity and rate",
	}, invoiceHandlers.CreateInvoice)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "dashboard_stats",
		Description: "Earnings, outstanding amount, client and project counts, and invoice status breakdown",
	}, dashboardHandlers.DashboardStats)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_activity",
		Description: "Recent activity, newest first",
	}, dashboardHandlers.ListActivity)

	for _, r := range handlers.Resources() {
		server.AddResource(r, resourceHandlers.ReadResource)
	}
	for _, rt := range handlers.ResourceTemplates() {
		server.AddResourceTemplate(rt, resourceHandlers.ReadResource)
	}
	for _, p := range handlers.Prompts() {
		server.AddPrompt(p, promptHandlers.GetPrompt)
	}

	return server
}

// MCPCommand starts the MCP server on stdio
func MCPCommand(ctx context.Context, app *App, version string) error {
	if err := app.Resume(ctx); err != nil {
		return err
	}

	app.Logger.Info("starting MCP server", "clients", app.Store.ClientCount())
	return NewMCPServer(app.Store, version).Run(ctx, &mcp.StdioTransport{})
}
