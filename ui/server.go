// Package ui serves the browser playground for the expression grammar. A
// single page submits input to a small JSON API and shows either the
// parsed value tree or a failure snippet pointing at the offending
// position.
package ui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"

	"github.com/dhamidi/rewind/arith"
	"github.com/dhamidi/rewind/format"
	"github.com/dhamidi/rewind/parse"
	"github.com/dhamidi/rewind/text"
)

//go:embed templates
var embeddedFS embed.FS

// depthLimit caps the recursion budget a request may pick for itself, so
// one request cannot make a parse arbitrarily expensive.
const depthLimit = 100000

type Server struct {
	maxDepth   int
	mux        *http.ServeMux
	templateFS fs.FS
}

// NewServer builds the playground handler. maxDepth is the recursion
// budget used when a request does not choose its own. It must be
// positive: the grammar recurses forever on some inputs, and an
// unbounded parse would pin the server.
func NewServer(maxDepth int) (*Server, error) {
	if maxDepth <= 0 {
		return nil, fmt.Errorf("ui: max depth must be positive, got %d", maxDepth)
	}

	templateFS := overlayFS("ui/templates", mustSub(embeddedFS, "templates"))
	if _, err := template.New("").ParseFS(templateFS, "*.html"); err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		maxDepth:   maxDepth,
		mux:        http.NewServeMux(),
		templateFS: templateFS,
	}

	s.mux.HandleFunc("POST /api/parse", s.handleParse)
	s.mux.HandleFunc("GET /api/grammar", s.handleGrammar)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// render reparses the templates on every request, so edits under
// ui/templates show up without a rebuild.
func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, err := template.New("").ParseFS(s.templateFS, "*.html")
	if err != nil {
		http.Error(w, "template error: "+err.Error(), http.StatusInternalServerError)
		return
	}
	tmpl.ExecuteTemplate(w, name, data)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data := struct {
		MaxDepth int
		Grammar  string
	}{
		MaxDepth: s.maxDepth,
		Grammar:  arith.GrammarEBNF,
	}
	s.render(w, "index.html", data)
}

type parseRequest struct {
	Input    string `json:"input"`
	MaxDepth *int   `json:"max_depth,omitempty"`
}

type parseResponse struct {
	Tree     json.RawMessage `json:"tree"`
	Pos      int             `json:"pos"`
	Len      int             `json:"len"`
	Complete bool            `json:"complete"`
}

type errorBody struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Snippet string `json:"snippet"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	var req parseRequest
	body := http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	maxDepth := s.maxDepth
	if req.MaxDepth != nil {
		maxDepth = *req.MaxDepth
	}
	if maxDepth <= 0 || maxDepth > depthLimit {
		http.Error(w, fmt.Sprintf("max_depth must be between 1 and %d", depthLimit), http.StatusBadRequest)
		return
	}

	input := []byte(req.Input)
	cur := text.New(input, text.WithMaxDepth(maxDepth))
	tree, err := arith.Parse(cur)
	if err != nil {
		message, line, col := failurePoint(input, err)
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: errorBody{
			Message: message,
			Line:    line,
			Column:  col,
			Snippet: format.ErrorSnippet(cur, err),
		}})
		return
	}

	rendered, err := format.JSON(tree)
	if err != nil {
		http.Error(w, "encode tree: "+err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{
		Tree:     rendered,
		Pos:      cur.Pos(),
		Len:      cur.Len(),
		Complete: cur.Pos() == cur.Len(),
	})
}

func (s *Server) handleGrammar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, arith.GrammarEBNF)
}

func failurePoint(input []byte, err error) (message string, line, col int) {
	pos := len(input)
	message = err.Error()
	var nm *parse.NoMatch
	if errors.As(err, &nm) {
		pos = nm.Pos
	} else if errors.Is(err, io.EOF) {
		message = "unexpected end of input"
	}
	line, col = text.LineCol(input, pos)
	return message, line, col
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

type overlayFSType struct {
	primary   fs.FS
	secondary fs.FS
}

// overlayFS prefers files from primaryPath on disk and falls back to the
// embedded copy, so the templates can be edited live during development.
func overlayFS(primaryPath string, secondary fs.FS) fs.FS {
	return &overlayFSType{
		primary:   os.DirFS(primaryPath),
		secondary: secondary,
	}
}

func (o *overlayFSType) Open(name string) (fs.File, error) {
	f, err := o.primary.Open(name)
	if err == nil {
		return f, nil
	}
	return o.secondary.Open(name)
}

func (o *overlayFSType) ReadDir(name string) ([]fs.DirEntry, error) {
	entries := make(map[string]fs.DirEntry)

	if rd, ok := o.secondary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	if rd, ok := o.primary.(fs.ReadDirFS); ok {
		if list, err := rd.ReadDir(name); err == nil {
			for _, e := range list {
				entries[e.Name()] = e
			}
		}
	}

	result := make([]fs.DirEntry, 0, len(entries))
	for _, e := range entries {
		result = append(result, e)
	}
	return result, nil
}
