package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tdewolff/tsparse/format"
	"github.com/tdewolff/tsparse/js"
)

func newParseCmd(a *app) *cobra.Command {
	var outputFormat string
	var positions bool
	var comments bool

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a file and dump its syntax tree",
		Long:  "Parse a file, or standard input for -, and write its syntax tree to standard output.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			o, err := a.flags.options(a.fs, filename)
			if err != nil {
				return err
			}
			src, err := a.readSource(filename)
			if err != nil {
				return err
			}

			program, err := js.Parse(src, o)
			if err != nil {
				return reportErrors(cmd, filename, src, program, err)
			}

			var encoder format.Encoder
			if outputFormat == "json" {
				e := format.NewJSONEncoder(cmd.OutOrStdout())
				e.Positions = positions
				e.Comments = comments
				encoder = e
			} else if encoder, err = format.NewEncoder(outputFormat, cmd.OutOrStdout()); err != nil {
				return err
			}
			if err := encoder.Encode(program); err != nil {
				return errors.Wrap(err, "encode")
			}
			if 0 < len(program.Errors) {
				return reportErrors(cmd, filename, src, program, nil)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format ("+strings.Join(format.Formats, ", ")+")")
	cmd.Flags().BoolVar(&positions, "positions", true, "include node positions in json output")
	cmd.Flags().BoolVar(&comments, "comments", true, "include attached comments in json output")
	return cmd
}
