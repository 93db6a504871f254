// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/trustscore/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the trustscore MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(
	baseCfg *contract.Config,
	registry contract.RegistryClient,
	comparator contract.ArtifactComparator,
	scorecard contract.ScorecardClient,
) *server.MCPServer {
	s := server.NewMCPServer(
		"Trustscore Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg:    baseCfg,
		registry:   registry,
		comparator: comparator,
		scorecard:  scorecard,
	}

	// --- 1. Tool: get_trust_score ---
	s.AddTool(mcp.NewTool("get_trust_score",
		mcp.WithDescription("Compute the full trust report for a Maven artifact: compatibility score, OpenSSF scorecard, and release cadence."),
		mcp.WithString("coordinate", mcp.Description("Artifact coordinate as groupId:artifactId or a pkg:maven/... purl."), mcp.Required()),
		mcp.WithNumber("workers", mcp.Description("Number of concurrent workers for the compatibility engine.")),
	), h.handleGetTrustScore)

	// --- 2. Tool: get_compatibility_score ---
	s.AddTool(mcp.NewTool("get_compatibility_score",
		mcp.WithDescription("Compute only the backward-compatibility score for a Maven artifact's release history."),
		mcp.WithString("coordinate", mcp.Description("Artifact coordinate as groupId:artifactId or a pkg:maven/... purl."), mcp.Required()),
		mcp.WithNumber("workers", mcp.Description("Number of concurrent workers for the compatibility engine.")),
	), h.handleGetCompatibilityScore)

	// --- 3. Tool: get_versions ---
	s.AddTool(mcp.NewTool("get_versions",
		mcp.WithDescription("List the published release history for a Maven artifact, oldest first, with pre-releases removed."),
		mcp.WithString("coordinate", mcp.Description("Artifact coordinate as groupId:artifactId or a pkg:maven/... purl."), mcp.Required()),
	), h.handleGetVersions)

	return s
}

// StartMCPServer starts the trustscore MCP server on stdio.
func StartMCPServer(
	_ context.Context,
	baseCfg *contract.Config,
	registry contract.RegistryClient,
	comparator contract.ArtifactComparator,
	scorecard contract.ScorecardClient,
) error {
	s := NewMCPServer(baseCfg, registry, comparator, scorecard)
	return server.ServeStdio(s)
}
