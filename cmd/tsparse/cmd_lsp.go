package main

import (
	"github.com/spf13/cobra"
	"github.com/tdewolff/tsparse/lsp"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server on standard input and output",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.flags.loadConfig(a.fs, "")
			if err != nil {
				return err
			}
			server, err := lsp.NewServer(version, a.fs, c)
			if err != nil {
				return err
			}
			return server.RunStdio()
		},
	}
}
