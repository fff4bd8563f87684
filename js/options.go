package js

import (
	"fmt"
)

// SourceType is the goal symbol of the source.
type SourceType int

// SourceType values.
const (
	ScriptSource SourceType = iota
	ModuleSource
)

func (st SourceType) String() string {
	if st == ModuleSource {
		return "module"
	}
	return "script"
}

// StrictMode selects whether code starts out in strict mode.
type StrictMode int

// StrictMode values. With StrictDefault only modules are strict.
const (
	StrictDefault StrictMode = iota
	StrictOn
	StrictOff
)

// DecoratorsMode selects the decorator syntax.
type DecoratorsMode int

// DecoratorsMode values.
const (
	NoDecorators DecoratorsMode = iota
	LegacyDecorators
	ProposalDecorators
)

// Feature is an experimental syntax that has to be enabled explicitly.
type Feature int

// Feature values.
const (
	FeatureDecoratorAutoAccessors Feature = iota
	FeatureImportAttributes
	FeatureImportAssertions
	FeatureRecordAndTuple
	FeatureExplicitResourceManagement
	FeatureThrowExpressions
	FeatureDecimal
	numFeatures
)

var featureNames = [numFeatures]string{
	FeatureDecoratorAutoAccessors:     "decoratorAutoAccessors",
	FeatureImportAttributes:           "importAttributes",
	FeatureImportAssertions:           "importAssertions",
	FeatureRecordAndTuple:             "recordAndTuple",
	FeatureExplicitResourceManagement: "explicitResourceManagement",
	FeatureThrowExpressions:           "throwExpressions",
	FeatureDecimal:                    "decimal",
}

func (f Feature) String() string {
	if 0 <= f && f < numFeatures {
		return featureNames[f]
	}
	return fmt.Sprintf("Feature(%d)", int(f))
}

// ParseFeature returns the feature with the given name.
func ParseFeature(name string) (Feature, bool) {
	for f, featureName := range featureNames {
		if featureName == name {
			return Feature(f), true
		}
	}
	return 0, false
}

// Options are the parser options. The zero value parses a sloppy script without Annex B extensions; use
// DefaultOptions for the usual defaults.
type Options struct {
	SourceType      SourceType
	StrictMode      StrictMode
	ContinueOnError bool // collect recoverable diagnostics into Program.Errors instead of failing
	MaxErrors       int  // number of recoverable diagnostics after which parsing stops, 0 is unbounded
	Decorators      DecoratorsMode
	AnnexB          bool
	TypeScript      bool

	AllowImportExportEverywhere    bool
	AllowReturnOutsideFunction     bool
	AllowSuperOutsideMethod        bool
	AllowAwaitOutsideFunction      bool
	AllowNewTargetOutsideFunction  bool
	AllowUndeclaredExports         bool
	CreateParenthesizedExpressions bool
	ParseAsAmbientContext          bool
	DisallowAmbiguousJSXLike       bool // reject <T>x and <T>() => x as in .mts and .cts files

	Features map[Feature]bool
}

// DefaultOptions returns the options for a script with Annex B extensions.
func DefaultOptions() Options {
	return Options{
		SourceType: ScriptSource,
		AnnexB:     true,
	}
}

func (o Options) strict() bool {
	if o.StrictMode == StrictDefault {
		return o.SourceType == ModuleSource
	}
	return o.StrictMode == StrictOn
}

////////////////////////////////////////////////////////////////

// Parse parses the source and returns the program. Unless ContinueOnError is set, the first diagnostic is returned
// as the error. Unterminated comments, strings, templates and regular expressions are always fatal.
func Parse(src []byte, o Options) (*Program, error) {
	p := newParser(src, o)
	program := p.parseTopLevel()
	p.s.r.Restore()
	if p.s.err != nil {
		return nil, p.s.err
	}
	return program, nil
}
