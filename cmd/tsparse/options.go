package main

import (
	"io"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tdewolff/tsparse/config"
	"github.com/tdewolff/tsparse/js"
)

// optionFlags are the parser flags shared by all commands. Flags given on the command line override the
// configuration file.
type optionFlags struct {
	cmd *cobra.Command

	config          string
	sourceType      string
	typeScript      bool
	continueOnError bool
	maxErrors       int
	ambient         bool
	features        []string
}

func (f *optionFlags) register(cmd *cobra.Command) {
	f.cmd = cmd
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.config, "config", "c", "", "configuration file (default: "+config.Filename+" in the file's directory or a parent)")
	flags.StringVar(&f.sourceType, "source-type", "", "source type (script, module)")
	flags.BoolVar(&f.typeScript, "ts", false, "enable the TypeScript grammar")
	flags.BoolVar(&f.continueOnError, "recover", false, "collect recoverable errors instead of stopping at the first")
	flags.IntVar(&f.maxErrors, "max-errors", 0, "stop after this many recoverable errors (0 is unbounded)")
	flags.BoolVar(&f.ambient, "ambient", false, "parse as an ambient declaration file")
	flags.StringSliceVar(&f.features, "feature", nil, "enable an experimental syntax feature")
}

func (f *optionFlags) changed(name string) bool {
	return f.cmd != nil && f.cmd.PersistentFlags().Changed(name)
}

// loadConfig loads the configuration given by --config, or the one found next to filename.
func (f *optionFlags) loadConfig(fs afero.Fs, filename string) (*config.Config, error) {
	path := f.config
	if path == "" {
		dir := "."
		if filename != "" && filename != "-" {
			dir = filepath.Dir(filename)
		}
		var ok bool
		if path, ok = config.Find(fs, dir); !ok {
			return nil, nil
		}
	}
	log.Debugf("using configuration %s", path)
	return config.Load(fs, path)
}

// options returns the parser options for filename.
func (f *optionFlags) options(fs afero.Fs, filename string) (js.Options, error) {
	c, err := f.loadConfig(fs, filename)
	if err != nil {
		return js.Options{}, err
	}
	return f.apply(c.Options(filename))
}

func (f *optionFlags) apply(o js.Options) (js.Options, error) {
	if f.changed("source-type") {
		switch f.sourceType {
		case "script":
			o.SourceType = js.ScriptSource
		case "module":
			o.SourceType = js.ModuleSource
		default:
			return o, errors.Errorf("unknown source type: %s", f.sourceType)
		}
	}
	if f.changed("ts") {
		o.TypeScript = f.typeScript
	}
	if f.changed("recover") {
		o.ContinueOnError = f.continueOnError
	}
	if f.changed("max-errors") {
		o.MaxErrors = f.maxErrors
	}
	if f.changed("ambient") {
		o.ParseAsAmbientContext = f.ambient
	}
	if 0 < len(f.features) {
		features := map[js.Feature]bool{}
		for feature, ok := range o.Features {
			features[feature] = ok
		}
		for _, name := range f.features {
			feature, ok := js.ParseFeature(name)
			if !ok {
				return o, errors.Errorf("unknown feature: %s", name)
			}
			features[feature] = true
		}
		o.Features = features
	}
	return o, nil
}

// readSource reads a file, or standard input for "-".
func (a *app) readSource(filename string) ([]byte, error) {
	if filename == "-" {
		src, err := io.ReadAll(a.stdin)
		return src, errors.Wrap(err, "could not read standard input")
	}
	src, err := afero.ReadFile(a.fs, filename)
	return src, errors.Wrapf(err, "could not read %s", filename)
}

// isSource returns true for the file extensions the commands walk into.
func isSource(filename string) bool {
	switch filepath.Ext(filename) {
	case ".js", ".mjs", ".cjs", ".ts", ".mts", ".cts":
		return true
	}
	return false
}
