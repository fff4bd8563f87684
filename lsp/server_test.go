package lsp

import (
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
	"github.com/tdewolff/tsparse/js"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

type notification struct {
	method string
	params any
}

func newTestServer(t *testing.T, fs afero.Fs) (*Server, *glsp.Context, *[]notification) {
	s, err := NewServer("test", fs, nil)
	require.NoError(t, err)

	notifications := &[]notification{}
	ctx := &glsp.Context{
		Notify: func(method string, params any) {
			*notifications = append(*notifications, notification{method, params})
		},
	}
	return s, ctx, notifications
}

func published(t *testing.T, n notification) protocol.PublishDiagnosticsParams {
	require.Equal(t, protocol.ServerTextDocumentPublishDiagnostics, n.method)
	params, ok := n.params.(protocol.PublishDiagnosticsParams)
	require.True(t, ok)
	return params
}

func TestDidOpen(t *testing.T) {
	s, ctx, notifications := newTestServer(t, afero.NewMemMapFs())

	err := s.textDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{URI: "file:///a.js", Text: "let x = ;\nlet y = ;"},
	})
	require.NoError(t, err)
	require.Len(t, *notifications, 1)

	params := published(t, (*notifications)[0])
	require.Equal(t, "file:///a.js", params.URI)
	require.Len(t, params.Diagnostics, 2)
	require.Equal(t, protocol.UInteger(0), params.Diagnostics[0].Range.Start.Line)
	require.Equal(t, protocol.UInteger(8), params.Diagnostics[0].Range.Start.Character)
	require.Equal(t, protocol.UInteger(1), params.Diagnostics[1].Range.Start.Line)
	require.Equal(t, "UnexpectedToken", params.Diagnostics[0].Code.Value)
	require.Equal(t, protocol.DiagnosticSeverityError, *params.Diagnostics[0].Severity)

	src, ok := s.Document("file:///a.js")
	require.True(t, ok)
	require.Equal(t, "let x = ;\nlet y = ;", string(src))
}

func TestDidChange(t *testing.T) {
	s, ctx, notifications := newTestServer(t, afero.NewMemMapFs())

	err := s.textDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: "file:///a.ts"},
		},
		ContentChanges: []any{
			protocol.TextDocumentContentChangeEventWhole{Text: "let x = ;"},
			protocol.TextDocumentContentChangeEventWhole{Text: "let x: number = 1"},
		},
	})
	require.NoError(t, err)
	require.Len(t, *notifications, 1)
	require.Len(t, published(t, (*notifications)[0]).Diagnostics, 0)
}

func TestDidSave(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/src/a.js", []byte("let a; let a;"), 0644))
	s, ctx, notifications := newTestServer(t, fs)

	err := s.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///src/a.js"},
	})
	require.NoError(t, err)
	diags := published(t, (*notifications)[0]).Diagnostics
	require.Len(t, diags, 1)
	require.Equal(t, "VarRedeclaration", diags[0].Code.Value)

	err = s.textDocumentDidSave(ctx, &protocol.DidSaveTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///src/missing.js"},
	})
	require.Error(t, err)
}

func TestDidClose(t *testing.T) {
	s, ctx, notifications := newTestServer(t, afero.NewMemMapFs())
	require.NoError(t, s.update(ctx, "file:///a.js", []byte("a")))

	err := s.textDocumentDidClose(ctx, &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{URI: "file:///a.js"},
	})
	require.NoError(t, err)
	require.Len(t, *notifications, 2)
	require.Len(t, published(t, (*notifications)[1]).Diagnostics, 0)

	_, ok := s.Document("file:///a.js")
	require.False(t, ok)
}

func TestInitializeConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/.tsparse.yaml", []byte("sourceType: module\n"), 0644))
	s, ctx, _ := newTestServer(t, fs)

	root := "file:///project"
	result, err := s.initialize(ctx, &protocol.InitializeParams{RootURI: &root})
	require.NoError(t, err)
	require.Equal(t, "tsparse", result.(protocol.InitializeResult).ServerInfo.Name)

	// modules are strict
	diags := s.Diagnose("file:///project/a.js", []byte("with (a) {}"))
	require.Len(t, diags, 1)
}

func TestInitializeWhileDiagnosing(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/project/.tsparse.yaml", []byte("sourceType: module\n"), 0644))
	s, ctx, _ := newTestServer(t, fs)
	require.Nil(t, s.Config())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Diagnose("file:///project/a.js", []byte("let a = 1"))
		}()
	}
	root := "file:///project"
	_, err := s.initialize(ctx, &protocol.InitializeParams{RootURI: &root})
	require.NoError(t, err)
	wg.Wait()

	require.NotNil(t, s.Config())
	require.Equal(t, js.ModuleSource, s.Config().Options("/project/a.js").SourceType)
}

func TestFatalDiagnostic(t *testing.T) {
	s, _, _ := newTestServer(t, afero.NewMemMapFs())
	diags := s.Diagnose("file:///a.js", []byte("'unterminated"))
	require.Len(t, diags, 1)
}

func TestPosition(t *testing.T) {
	src := []byte("a = '\U0001F600'; é + ")
	program, err := js.Parse(src, js.Options{ContinueOnError: true})
	require.NoError(t, err)
	require.Len(t, program.Errors, 1)

	pos := position(src, program.Errors[0].Loc)
	require.Equal(t, protocol.UInteger(0), pos.Line)
	// at the end of input: the emoji is two UTF-16 code units and four bytes, é is one unit and two bytes
	require.Equal(t, protocol.UInteger(14), pos.Character)
}

func TestURIToPath(t *testing.T) {
	path, err := uriToPath("file:///home/user/a%20b.ts")
	require.NoError(t, err)
	require.Equal(t, "/home/user/a b.ts", path)

	path, err = uriToPath("untitled:1")
	require.NoError(t, err)
	require.Equal(t, "untitled:1", path)
}
