package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/tdewolff/tsparse/js"
)

func newTokensCmd(a *app) *cobra.Command {
	var comments bool

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Dump the token stream of a file",
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

			w := cmd.OutOrStdout()
			l := js.NewLexer(src, o)
			for {
				tok := l.Next()
				if tok.Type == js.ErrorToken {
					break
				}
				fmt.Fprintf(w, "%d:%d\t%s\t%s\n", tok.Loc.Line, tok.Loc.Column, tok.Type, strconv.Quote(string(src[tok.Start:tok.End])))
			}
			if comments {
				for _, c := range l.Comments() {
					fmt.Fprintf(w, "%d:%d\tComment\t%s\n", c.Start.Line, c.Start.Column, strconv.Quote(c.String()))
				}
			}

			if err := l.Err(); err != nil {
				return reportErrors(cmd, filename, src, nil, err)
			} else if errs := l.Errors(); 0 < len(errs) {
				program := &js.Program{Errors: errs}
				return reportErrors(cmd, filename, src, program, nil)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&comments, "comments", false, "also list the comments")
	return cmd
}
