package main

import (
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"

	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

var log = commonlog.GetLogger("tsparse.cmd")

// app holds what the commands share: the file system and the parser flags.
type app struct {
	fs        afero.Fs
	stdin     io.Reader
	verbosity int
	flags     optionFlags
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tsparse",
		Short:         "Parse JavaScript and TypeScript into syntax trees",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(a.verbosity, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")
	a.flags.register(rootCmd)

	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newCheckCmd(a))
	rootCmd.AddCommand(newTokensCmd(a))
	rootCmd.AddCommand(newDiffCmd(a))
	rootCmd.AddCommand(newWatchCmd(a))
	rootCmd.AddCommand(newLSPCmd(a))
	return rootCmd
}

func main() {
	a := &app{
		fs:    afero.NewOsFs(),
		stdin: os.Stdin,
	}
	rootCmd := newRootCmd(a)
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln(err)
		os.Exit(1)
	}
}
