package commands

import (
	"ebs/internal/mcp"
	"ebs/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose estimation tools over an MCP Stdio server",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(cfg.StorePath)
		if err != nil {
			return err
		}
		log.Info().Msg("MCP Server starting Stdio loop")
		server := mcp.NewServer(cfg, st)
		return server.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
