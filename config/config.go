// Package config loads parser options from a YAML file.
package config

import (
	"path"
	"path/filepath"
	"strings"

	"github.com/mattn/go-zglob"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tdewolff/tsparse/js"
	yaml "gopkg.in/yaml.v2"
)

// Filename is the name of the configuration file looked up by Find.
const Filename = ".tsparse.yaml"

// Settings are the parser settings of a configuration file. Unset fields keep the value derived from the file
// extension.
type Settings struct {
	SourceType               *string  `yaml:"sourceType"`
	TypeScript               *bool    `yaml:"typescript"`
	ContinueOnError          *bool    `yaml:"continueOnError"`
	MaxErrors                *int     `yaml:"maxErrors"`
	StrictMode               *string  `yaml:"strictMode"`
	Decorators               *string  `yaml:"decorators"`
	AnnexB                   *bool    `yaml:"annexB"`
	Ambient                  *bool    `yaml:"ambient"`
	ParenthesizedExpressions *bool    `yaml:"createParenthesizedExpressions"`
	DisallowAmbiguousJSXLike *bool    `yaml:"disallowAmbiguousJSXLike"`
	Allow                    []string `yaml:"allow"`
	Features                 []string `yaml:"features"`
}

// Override applies settings to the files matching a glob. A glob without a slash matches the base name.
type Override struct {
	Files    string `yaml:"files"`
	Settings `yaml:",inline"`
}

// Config is a configuration file.
type Config struct {
	Settings  `yaml:",inline"`
	Overrides []Override `yaml:"overrides"`
}

// Load reads and validates the configuration file at filename.
func Load(fs afero.Fs, filename string) (*Config, error) {
	b, err := afero.ReadFile(fs, filename)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read config %s", filename)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid config %s", filename)
	}
	return c, nil
}

// Parse decodes and validates a configuration.
func Parse(b []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.UnmarshalStrict(b, c); err != nil {
		return nil, errors.Wrap(err, "could not decode yaml")
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Find looks for the configuration file in dir and its parents.
func Find(fs afero.Fs, dir string) (string, bool) {
	dir = filepath.Clean(dir)
	for {
		filename := filepath.Join(dir, Filename)
		if ok, err := afero.Exists(fs, filename); err == nil && ok {
			return filename, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (c *Config) validate() error {
	o := js.DefaultOptions()
	if err := c.Settings.apply(&o); err != nil {
		return err
	}
	for i, override := range c.Overrides {
		if override.Files == "" {
			return errors.Errorf("override %d: missing files", i)
		} else if _, err := zglob.Match(override.Files, ""); err != nil {
			return errors.Wrapf(err, "override %d: bad pattern %q", i, override.Files)
		} else if err := override.Settings.apply(&o); err != nil {
			return errors.Wrapf(err, "override %d", i)
		}
	}
	return nil
}

// Options returns the parser options for filename: the defaults for its extension, then the top-level settings, then
// every matching override in order.
func (c *Config) Options(filename string) js.Options {
	o := ExtensionOptions(filename)
	if c == nil {
		return o
	}
	c.Settings.apply(&o)
	for _, override := range c.Overrides {
		if override.Matches(filename) {
			override.Settings.apply(&o)
		}
	}
	return o
}

// Matches returns true if the override applies to filename. A pattern without a slash matches the base name, ** matches
// any number of directories.
func (override Override) Matches(filename string) bool {
	filename = filepath.ToSlash(filename)
	if !strings.Contains(override.Files, "/") {
		filename = path.Base(filename)
	}
	ok, _ := zglob.Match(override.Files, filename)
	return ok
}

// ExtensionOptions returns the default options for a file extension: .mjs is a module, .ts and .tsx enable the type
// grammar and .mts and .cts are type-annotated modules and scripts that reject ambiguous angle bracket syntax.
func ExtensionOptions(filename string) js.Options {
	o := js.DefaultOptions()
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mjs":
		o.SourceType = js.ModuleSource
	case ".ts", ".tsx":
		o.SourceType = js.ModuleSource
		o.TypeScript = true
	case ".mts":
		o.SourceType = js.ModuleSource
		o.TypeScript = true
		o.DisallowAmbiguousJSXLike = true
	case ".cts":
		o.TypeScript = true
		o.DisallowAmbiguousJSXLike = true
	}
	return o
}

func (s Settings) apply(o *js.Options) error {
	if s.SourceType != nil {
		switch *s.SourceType {
		case "script":
			o.SourceType = js.ScriptSource
		case "module":
			o.SourceType = js.ModuleSource
		default:
			return errors.Errorf("unknown source type %q", *s.SourceType)
		}
	}
	if s.StrictMode != nil {
		switch *s.StrictMode {
		case "default":
			o.StrictMode = js.StrictDefault
		case "on":
			o.StrictMode = js.StrictOn
		case "off":
			o.StrictMode = js.StrictOff
		default:
			return errors.Errorf("unknown strict mode %q", *s.StrictMode)
		}
	}
	if s.Decorators != nil {
		switch *s.Decorators {
		case "none":
			o.Decorators = js.NoDecorators
		case "legacy":
			o.Decorators = js.LegacyDecorators
		case "proposal":
			o.Decorators = js.ProposalDecorators
		default:
			return errors.Errorf("unknown decorators %q", *s.Decorators)
		}
	}
	setBool(&o.TypeScript, s.TypeScript)
	setBool(&o.ContinueOnError, s.ContinueOnError)
	setBool(&o.AnnexB, s.AnnexB)
	setBool(&o.ParseAsAmbientContext, s.Ambient)
	setBool(&o.CreateParenthesizedExpressions, s.ParenthesizedExpressions)
	setBool(&o.DisallowAmbiguousJSXLike, s.DisallowAmbiguousJSXLike)
	if s.MaxErrors != nil {
		if *s.MaxErrors < 0 {
			return errors.Errorf("negative maxErrors %d", *s.MaxErrors)
		}
		o.MaxErrors = *s.MaxErrors
	}

	for _, name := range s.Allow {
		switch name {
		case "importExportEverywhere":
			o.AllowImportExportEverywhere = true
		case "returnOutsideFunction":
			o.AllowReturnOutsideFunction = true
		case "superOutsideMethod":
			o.AllowSuperOutsideMethod = true
		case "awaitOutsideFunction":
			o.AllowAwaitOutsideFunction = true
		case "newTargetOutsideFunction":
			o.AllowNewTargetOutsideFunction = true
		case "undeclaredExports":
			o.AllowUndeclaredExports = true
		default:
			return errors.Errorf("unknown allow %q", name)
		}
	}
	if 0 < len(s.Features) {
		features := map[js.Feature]bool{}
		for f, ok := range o.Features {
			features[f] = ok
		}
		for _, name := range s.Features {
			f, ok := js.ParseFeature(name)
			if !ok {
				return errors.Errorf("unknown feature %q", name)
			}
			features[f] = true
		}
		o.Features = features
	}
	return nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
