// Package langserver exposes the arithmetic grammar over the language
// server protocol. Documents are parsed on every change and the parse
// failures come back as diagnostics; hovering shows the value tree of a
// document that parses.
package langserver

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/dhamidi/rewind/arith"
	"github.com/dhamidi/rewind/format"
	"github.com/dhamidi/rewind/text"
)

const lsName = "rewind"

type Server struct {
	documents map[protocol.DocumentUri][]byte
	maxDepth  int
	handler   protocol.Handler
	server    *server.Server
	version   string
}

// New builds a server for stdio use. maxDepth bounds grammar recursion
// per parsed document and must be positive, because an editor feeding
// the grammar self-recursive input with no bound would hang the whole
// server.
func New(version string, maxDepth int) (*Server, error) {
	if maxDepth <= 0 {
		return nil, fmt.Errorf("langserver: max depth must be positive, got %d", maxDepth)
	}

	s := &Server{
		documents: make(map[protocol.DocumentUri][]byte),
		maxDepth:  maxDepth,
		version:   version,
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
		TextDocumentHover:     s.textDocumentHover,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s, nil
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	capabilities := s.handler.CreateServerCapabilities()

	full := protocol.TextDocumentSyncKindFull
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    &full,
		Save: &protocol.SaveOptions{
			IncludeText: boolPtr(true),
		},
	}
	capabilities.HoverProvider = true

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
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.documents[params.TextDocument.URI] = []byte(params.TextDocument.Text)
	s.publish(ctx, params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) > 0 {
		change := params.ContentChanges[len(params.ContentChanges)-1]
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			s.documents[params.TextDocument.URI] = []byte(whole.Text)
		}
	}
	s.publish(ctx, params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	delete(s.documents, params.TextDocument.URI)
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) textDocumentDidSave(ctx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	if params.Text != nil {
		s.documents[params.TextDocument.URI] = []byte(*params.Text)
	}
	s.publish(ctx, params.TextDocument.URI)
	return nil
}

func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	input, ok := s.documents[params.TextDocument.URI]
	if !ok {
		return nil, nil
	}
	tree, err := arith.Parse(text.New(input, text.WithMaxDepth(s.maxDepth)))
	if err != nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindPlainText,
			Value: format.Text(tree),
		},
	}, nil
}

func (s *Server) publish(ctx *glsp.Context, uri protocol.DocumentUri) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: Diagnostics(s.documents[uri], s.maxDepth),
	})
}

func boolPtr(b bool) *bool {
	return &b
}
