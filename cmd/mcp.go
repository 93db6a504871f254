package cmd

import (
	"github.com/huangsam/trustscore/internal/contract"
	"github.com/huangsam/trustscore/internal/mcp"
	"github.com/huangsam/trustscore/internal/registry"
	"github.com/huangsam/trustscore/internal/scorecard"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Trustscore MCP server",
	Long:  `Launch an MCP server that allows AI agents to score Maven artifacts via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// The coordinate arrives per tool call, not on the command line,
		// so only the shared setup runs here.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		client := registry.NewClient(cfg)
		comparator, err := buildComparator(client)
		if err != nil {
			contract.LogFatal("Cannot set up the compatibility toolchain", err)
		}
		return mcp.StartMCPServer(rootCtx, cfg, client, comparator, scorecard.NewClient(cfg))
	},
}
