// Package lsp implements a language server that publishes parse diagnostics.
package lsp

import (
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/tdewolff/tsparse/cache"
	"github.com/tdewolff/tsparse/config"
	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"
)

const lsName = "tsparse"

var log = commonlog.GetLogger("tsparse.lsp")

// Server is a language server for JavaScript and TypeScript documents. Documents are parsed on open, change and save
// and the diagnostics are published to the client.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	fs    afero.Fs
	cache *cache.Cache

	mu        sync.Mutex
	config    *config.Config // nil until initialize found a configuration file
	documents map[protocol.DocumentUri][]byte
}

// NewServer returns a server that reads configuration files from fs. A nil config is looked up from the workspace
// root on initialize.
func NewServer(version string, fs afero.Fs, c *config.Config) (*Server, error) {
	pc, err := cache.New(cache.DefaultSize)
	if err != nil {
		return nil, err
	}

	s := &Server{
		version:   version,
		fs:        fs,
		cache:     pc,
		config:    c,
		documents: map[protocol.DocumentUri][]byte{},
	}
	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentDidSave:   s.textDocumentDidSave,
	}
	s.server = server.NewServer(&s.handler, lsName, false)
	return s, nil
}

// RunStdio serves on standard input and output until the client exits.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	rootDir := ""
	if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			rootDir = path
		}
	} else if params.RootPath != nil {
		rootDir = *params.RootPath
	}
	if s.Config() == nil && rootDir != "" {
		if filename, ok := config.Find(s.fs, rootDir); ok {
			c, err := config.Load(s.fs, filename)
			if err != nil {
				log.Errorf("%s", err)
			} else {
				log.Infof("using configuration %s", filename)
				s.mu.Lock()
				s.config = c
				s.mu.Unlock()
			}
		}
	}

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	s.cache.Purge()
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	return s.update(ctx, params.TextDocument.URI, []byte(params.TextDocument.Text))
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full synchronization, the last change holds the whole document
	change := params.ContentChanges[len(params.ContentChanges)-1]
	switch c := change.(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		return s.update(ctx, params.TextDocument.URI, []byte(c.Text))
	case protocol.TextDocumentContentChangeEvent:
		if c.Range == nil {
			return s.update(ctx, params.TextDocument.URI, []byte(c.Text))
		}
	}
	log.Warningf("ignoring incremental change of %s", params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		return s.update(ctx, params.TextDocument.URI, []byte(*params.Text))
	}

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return err
	}
	src, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}
	return s.update(ctx, params.TextDocument.URI, src)
}

// update stores the document text and publishes its diagnostics.
func (s *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, src []byte) error {
	s.mu.Lock()
	s.documents[uri] = src
	s.mu.Unlock()

	diags := s.Diagnose(uri, src)
	log.Debugf("%s: %d diagnostics", uri, len(diags))
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diags,
	})
	return nil
}

// Diagnose parses a document with the options configured for its path and returns its diagnostics.
func (s *Server) Diagnose(uri protocol.DocumentUri, src []byte) []protocol.Diagnostic {
	path, err := uriToPath(uri)
	if err != nil {
		path = uri
	}
	o := s.Config().Options(path)
	o.ContinueOnError = true

	program, err := s.cache.Parse(src, o)
	return diagnostics(src, program, err)
}

// Config returns the configuration in use, or nil for the defaults of each file extension.
func (s *Server) Config() *config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// Document returns the last known text of a document.
func (s *Server) Document(uri protocol.DocumentUri) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	src, ok := s.documents[uri]
	return src, ok
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", errors.Wrapf(err, "bad uri %s", uri)
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
