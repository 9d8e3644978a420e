package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/homewise/enaudit/core"
	"github.com/homewise/enaudit/internal/contract"
	"github.com/homewise/enaudit/internal/iostore"
	"github.com/homewise/enaudit/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.HistoryManager
}

func (h *toolHandler) handleGetHousingDefaults(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	homeType := request.GetString("home_type", "")
	yearBuilt := request.GetInt("year_built", 0)
	squareFootage := request.GetInt("square_footage", 0)
	state := request.GetString("state", "")
	position := request.GetString("unit_position", "")

	res, err := core.GetHousingDefaults(homeType, yearBuilt, squareFootage, state, position)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("resolution failed: %v", err)), nil
	}

	h.recordRun(res, nil)

	jsonData, _ := json.MarshalIndent(res, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetClimateZone(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state := request.GetString("state", "")
	if state == "" {
		return mcp.NewToolResultError("state is required"), nil
	}

	category := core.CategoryForState(state)
	info := schema.ClimateInfo{
		State:    state,
		Zone:     core.ZoneForState(state),
		Category: category,
		Factor:   core.ClimateFactor(category),
	}

	jsonData, _ := json.MarshalIndent(info, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleFillAuditForm(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	formJSON := request.GetString("form_json", "")

	var form schema.AuditForm
	if err := json.Unmarshal([]byte(formJSON), &form); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid form JSON: %v", err)), nil
	}

	filled, err := core.FillForm(&form)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("form fill failed: %v", err)), nil
	}

	h.recordRun(&filled.Resolution, filled.Provenance)

	jsonData, _ := json.MarshalIndent(filled, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListHousingTypes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	model := core.TypeReferences()
	jsonData, _ := json.MarshalIndent(model, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

// recordRun persists the resolution to the history store when one is
// configured. Recording failures never fail the tool call.
func (h *toolHandler) recordRun(res *schema.Resolution, provenance map[string]schema.Provenance) {
	if h.mgr == nil {
		return
	}
	store := h.mgr.GetHistoryStore()
	if store == nil {
		return
	}
	if _, err := iostore.RecordResolution(store, res, provenance, nil); err != nil {
		contract.LogWarn("recording audit run", err)
	}
}
