// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/homewise/enaudit/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Enaudit MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.HistoryManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Energy Audit Defaults Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_housing_defaults ---
	s.AddTool(mcp.NewTool("get_housing_defaults",
		mcp.WithDescription("Resolve pre-fill defaults for a residence from its housing type, construction year, and size."),
		mcp.WithString("home_type", mcp.Description("Housing type (single-family, townhouse, duplex, condominium, apartment, mobile-home)."), mcp.Required()),
		mcp.WithNumber("year_built", mcp.Description("Year the residence was built."), mcp.Required()),
		mcp.WithNumber("square_footage", mcp.Description("Conditioned floor area in square feet."), mcp.Required()),
		mcp.WithString("state", mcp.Description("Two-letter US state code for climate adjustment (optional).")),
		mcp.WithString("unit_position", mcp.Description("Unit position within the building, e.g. interior, corner, top-floor, end (optional).")),
	), h.handleGetHousingDefaults)

	// --- 2. Tool: get_climate_zone ---
	s.AddTool(mcp.NewTool("get_climate_zone",
		mcp.WithDescription("Look up the climate zone, category, and usage factor for a US state."),
		mcp.WithString("state", mcp.Description("Two-letter US state code."), mcp.Required()),
	), h.handleGetClimateZone)

	// --- 3. Tool: fill_audit_form ---
	s.AddTool(mcp.NewTool("fill_audit_form",
		mcp.WithDescription("Fill an energy audit form with resolved defaults, keeping any values the user already supplied."),
		mcp.WithString("form_json", mcp.Description("The audit form as JSON: homeType, yearBuilt, squareFootage, optional state, unitPosition, and overrides keyed by dotted field path."), mcp.Required()),
	), h.handleFillAuditForm)

	// --- 4. Tool: list_housing_types ---
	s.AddTool(mcp.NewTool("list_housing_types",
		mcp.WithDescription("List the supported housing types with their construction periods, size thresholds, and adjustment factors."),
	), h.handleListHousingTypes)

	return s
}

// StartMCPServer starts the Enaudit MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.HistoryManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
