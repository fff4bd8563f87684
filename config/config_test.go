package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/tsparse/js"
)

const sample = `
sourceType: module
continueOnError: true
maxErrors: 10
strictMode: default
decorators: proposal
annexB: false
allow: [returnOutsideFunction, undeclaredExports]
features: [importAttributes, explicitResourceManagement]
overrides:
  - files: "*.ts"
    typescript: true
  - files: "legacy/*.js"
    sourceType: script
    decorators: legacy
`

func TestLoad(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/.tsparse.yaml", []byte(sample), 0644))

	c, err := Load(fs, "/project/.tsparse.yaml")
	require.NoError(t, err)
	require.Len(t, c.Overrides, 2)

	o := c.Options("src/main.js")
	require.Equal(t, js.ModuleSource, o.SourceType)
	require.True(t, o.ContinueOnError)
	require.Equal(t, 10, o.MaxErrors)
	require.Equal(t, js.ProposalDecorators, o.Decorators)
	require.False(t, o.AnnexB)
	require.False(t, o.TypeScript)
	require.True(t, o.AllowReturnOutsideFunction)
	require.True(t, o.AllowUndeclaredExports)
	require.False(t, o.AllowSuperOutsideMethod)
	require.True(t, o.Features[js.FeatureImportAttributes])
	require.True(t, o.Features[js.FeatureExplicitResourceManagement])
	require.False(t, o.Features[js.FeatureDecimal])

	o = c.Options("src/main.ts")
	require.True(t, o.TypeScript)

	o = c.Options("legacy/old.js")
	require.Equal(t, js.ScriptSource, o.SourceType)
	require.Equal(t, js.LegacyDecorators, o.Decorators)

	o = c.Options("src/legacy/old.js")
	require.Equal(t, js.ModuleSource, o.SourceType)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/missing.yaml")
	require.Error(t, err)
}

func TestParseInvalid(t *testing.T) {
	var tests = []string{
		"sourceType: commonjs",
		"strictMode: sometimes",
		"decorators: stage1",
		"allow: [everything]",
		"features: [pipelineOperator]",
		"maxErrors: -1",
		"unknownKey: true",
		"overrides:\n  - typescript: true",
		"overrides:\n  - files: \"\"",
		"overrides:\n  - files: \"*.ts\"\n    sourceType: amd",
	}
	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			_, err := Parse([]byte(tt))
			require.Error(t, err)
		})
	}
}

func TestOverrideMatches(t *testing.T) {
	var tests = []struct {
		files    string
		filename string
		matches  bool
	}{
		{"*.ts", "main.ts", true},
		{"*.ts", "src/deep/main.ts", true},
		{"*.ts", "main.js", false},
		{"src/*.ts", "src/main.ts", true},
		{"src/*.ts", "src/a/main.ts", false},
		{"src/**/*.ts", "src/a/b/x.ts", true},
		{"src/**/*.ts", "src/x.ts", true},
		{"src/**/*.ts", "lib/a/x.ts", false},
		{"**/legacy/*.js", "app/legacy/old.js", true},
	}
	for _, tt := range tests {
		t.Run(tt.files+" "+tt.filename, func(t *testing.T) {
			override := Override{Files: tt.files}
			require.Equal(t, tt.matches, override.Matches(filepath.FromSlash(tt.filename)))
		})
	}
}

func TestExtensionOptions(t *testing.T) {
	var tests = []struct {
		filename   string
		sourceType js.SourceType
		typeScript bool
		jsxLike    bool
	}{
		{"a.js", js.ScriptSource, false, false},
		{"a.cjs", js.ScriptSource, false, false},
		{"a.mjs", js.ModuleSource, false, false},
		{"a.ts", js.ModuleSource, true, false},
		{"a.TS", js.ModuleSource, true, false},
		{"a.mts", js.ModuleSource, true, true},
		{"a.cts", js.ScriptSource, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			o := ExtensionOptions(tt.filename)
			require.Equal(t, tt.sourceType, o.SourceType)
			require.Equal(t, tt.typeScript, o.TypeScript)
			require.Equal(t, tt.jsxLike, o.DisallowAmbiguousJSXLike)
			require.True(t, o.AnnexB)
		})
	}
}

func TestNilConfig(t *testing.T) {
	var c *Config
	o := c.Options("a.ts")
	require.True(t, o.TypeScript)
}

func TestFind(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/.tsparse.yaml", []byte("typescript: true"), 0644))
	require.NoError(t, fs.MkdirAll("/project/src/deep", 0755))

	filename, ok := Find(fs, "/project/src/deep")
	require.True(t, ok)
	require.Equal(t, filepath.Join("/project", Filename), filename)

	_, ok = Find(fs, "/elsewhere")
	require.False(t, ok)
}
