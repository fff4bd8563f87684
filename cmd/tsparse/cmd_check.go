package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	parse "github.com/tdewolff/tsparse"
	"github.com/tdewolff/tsparse/cache"
	"github.com/tdewolff/tsparse/js"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file|dir>...",
		Short: "Report the syntax errors of files",
		Long:  "Parse every file, walking into directories for .js, .mjs, .cjs, .ts, .mts and .cts files, and report all syntax errors.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filenames, err := a.sources(args)
			if err != nil {
				return err
			}

			failed := 0
			for _, filename := range filenames {
				n, err := a.check(cmd, nil, filename)
				if err != nil {
					return err
				}
				if n != 0 {
					failed++
				}
			}
			if failed != 0 {
				return errors.Errorf("%d of %d files have syntax errors", failed, len(filenames))
			}
			log.Infof("checked %d files", len(filenames))
			return nil
		},
	}
}

// sources expands directories into the source files they contain.
func (a *app) sources(args []string) ([]string, error) {
	filenames, _, err := a.walkSources(args)
	return filenames, err
}

// walkSources expands directories into the source files they contain and also returns the visited directories,
// skipping node_modules and hidden directories.
func (a *app) walkSources(args []string) ([]string, []string, error) {
	filenames, dirs := []string{}, []string{}
	for _, arg := range args {
		if arg == "-" {
			filenames = append(filenames, arg)
			continue
		}
		info, err := a.fs.Stat(arg)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not stat %s", arg)
		} else if !info.IsDir() {
			filenames = append(filenames, arg)
			continue
		}

		err = afero.Walk(a.fs, arg, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			} else if info.IsDir() {
				if path != arg && skipDir(info.Name()) {
					return filepath.SkipDir
				}
				dirs = append(dirs, path)
			} else if isSource(path) {
				filenames = append(filenames, path)
			}
			return nil
		})
		if err != nil {
			return nil, nil, errors.Wrapf(err, "could not walk %s", arg)
		}
	}
	return filenames, dirs, nil
}

func skipDir(name string) bool {
	return name == "node_modules" || strings.HasPrefix(name, ".")
}

// check parses a file in recovery mode, unless the options cap the errors, and prints its errors. It returns the
// number of errors.
func (a *app) check(cmd *cobra.Command, c *cache.Cache, filename string) (int, error) {
	o, err := a.flags.options(a.fs, filename)
	if err != nil {
		return 0, err
	}
	if !a.flags.changed("recover") {
		o.ContinueOnError = true
	}
	src, err := a.readSource(filename)
	if err != nil {
		return 0, err
	}

	var program *js.Program
	if c != nil {
		program, err = c.Parse(src, o)
	} else {
		program, err = js.Parse(src, o)
	}
	errs := parse.Errors(src, program, err)
	printErrors(cmd, filename, errs)
	return len(errs), nil
}

func printErrors(cmd *cobra.Command, filename string, errs []error) {
	for _, err := range errs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %v\n", filename, err)
	}
}

// reportErrors prints the errors of a parse and returns an error summarizing them.
func reportErrors(cmd *cobra.Command, filename string, src []byte, program *js.Program, err error) error {
	errs := parse.Errors(src, program, err)
	printErrors(cmd, filename, errs)
	if len(errs) == 1 {
		return errors.Errorf("%s: syntax error", filename)
	}
	return errors.Errorf("%s: %d syntax errors", filename, len(errs))
}
