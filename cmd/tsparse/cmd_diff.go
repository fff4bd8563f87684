package main

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/tdewolff/tsparse/format"
	"github.com/tdewolff/tsparse/js"
)

func newDiffCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "diff <file> <file>",
		Short: "Compare the syntax trees of two files",
		Long:  "Compare the syntax trees of two files, ignoring positions and comments, and print the differing lines of their JSON encoding.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			trees := [2]string{}
			for i, filename := range args {
				tree, err := a.structure(cmd, filename)
				if err != nil {
					return err
				}
				trees[i] = tree
			}

			dmp := diffmatchpatch.New()
			chars1, chars2, lines := dmp.DiffLinesToChars(trees[0], trees[1])
			diffs := dmp.DiffCharsToLines(dmp.DiffMain(chars1, chars2, false), lines)

			w := cmd.OutOrStdout()
			changed := false
			for _, diff := range diffs {
				prefix := " "
				switch diff.Type {
				case diffmatchpatch.DiffEqual:
					continue
				case diffmatchpatch.DiffDelete:
					prefix = "-"
				case diffmatchpatch.DiffInsert:
					prefix = "+"
				}
				changed = true
				for _, line := range strings.SplitAfter(strings.TrimSuffix(diff.Text, "\n"), "\n") {
					fmt.Fprint(w, prefix, strings.TrimSuffix(line, "\n"), "\n")
				}
			}
			if changed {
				return errors.Errorf("syntax trees of %s and %s differ", args[0], args[1])
			}
			return nil
		},
	}
}

// structure returns the JSON encoding of a file's syntax tree without positions and comments.
func (a *app) structure(cmd *cobra.Command, filename string) (string, error) {
	o, err := a.flags.options(a.fs, filename)
	if err != nil {
		return "", err
	}
	src, err := a.readSource(filename)
	if err != nil {
		return "", err
	}
	program, err := js.Parse(src, o)
	if err != nil {
		return "", reportErrors(cmd, filename, src, program, err)
	}

	e := format.NewJSONEncoder(nil)
	e.Positions = false
	e.Comments = false
	text, err := e.MarshalText(program)
	if err != nil {
		return "", errors.Wrap(err, "encode")
	}
	return string(text) + "\n", nil
}
