package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/trustscore/core"
	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg    *contract.Config
	registry   contract.RegistryClient
	comparator contract.ArtifactComparator
	scorecard  contract.ScorecardClient
}

// configForRequest clones the base config and applies per-request overrides.
func (h *toolHandler) configForRequest(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()

	coord, err := schema.ParseCoordinate(request.GetString("coordinate", ""))
	if err != nil {
		return nil, err
	}
	cfg.Coordinate = coord

	if w := request.GetInt("workers", 0); w > 0 {
		cfg.Workers = w
	}
	return cfg, nil
}

func (h *toolHandler) handleGetTrustScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid coordinate: %v", err)), nil
	}

	report, err := core.TrustScore(ctx, cfg, h.registry, h.comparator, h.scorecard)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scoring failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetCompatibilityScore(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid coordinate: %v", err)), nil
	}

	versions, err := h.registry.FetchVersions(ctx, cfg.Coordinate)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("version fetch failed: %v", err)), nil
	}

	record := core.CompatibilityScore(ctx, h.comparator, cfg.Coordinate, versions, cfg.Workers)
	jsonData, _ := json.MarshalIndent(record, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetVersions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configForRequest(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid coordinate: %v", err)), nil
	}

	versions, err := h.registry.FetchVersions(ctx, cfg.Coordinate)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("version fetch failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(struct {
		Coordinate schema.Coordinate `json:"coordinate"`
		Versions   []string          `json:"versions"`
	}{Coordinate: cfg.Coordinate, Versions: versions}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
