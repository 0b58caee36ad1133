package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	s, err := NewServer(64)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return s
}

func postParse(t *testing.T, s *Server, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/parse", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestParseEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tree     any
		pos      int
		length   int
		complete bool
	}{
		{
			name:     "full consumption",
			input:    "1 + 2",
			tree:     []any{float64(1), " ", []any{[]any{"+", " ", float64(2)}}},
			pos:      5,
			length:   5,
			complete: true,
		},
		{
			name:     "chained operators stop after the first pair",
			input:    "1 - 2 + 3",
			tree:     []any{float64(1), " ", []any{[]any{"-", " ", float64(2)}}},
			pos:      5,
			length:   9,
			complete: false,
		},
	}

	s := newTestServer(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			body, err := json.Marshal(map[string]string{"input": test.input})
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			rec := postParse(t, s, string(body))
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
			}
			var resp struct {
				Tree     any  `json:"tree"`
				Pos      int  `json:"pos"`
				Len      int  `json:"len"`
				Complete bool `json:"complete"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Unmarshal() error = %v, body = %s", err, rec.Body)
			}
			if !reflect.DeepEqual(resp.Tree, test.tree) {
				t.Errorf("tree = %v, want %v", resp.Tree, test.tree)
			}
			if resp.Pos != test.pos || resp.Len != test.length || resp.Complete != test.complete {
				t.Errorf("pos, len, complete = %d, %d, %t, want %d, %d, %t",
					resp.Pos, resp.Len, resp.Complete, test.pos, test.length, test.complete)
			}
		})
	}
}

func TestParseEndpointFailure(t *testing.T) {
	s := newTestServer(t)
	rec := postParse(t, s, `{"input": "x"}`)
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body)
	}
	var resp struct {
		Error struct {
			Message string `json:"message"`
			Line    int    `json:"line"`
			Column  int    `json:"column"`
			Snippet string `json:"snippet"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal() error = %v, body = %s", err, rec.Body)
	}
	if resp.Error.Message != "exhausted all parsers" {
		t.Errorf("message = %q, want %q", resp.Error.Message, "exhausted all parsers")
	}
	if resp.Error.Line != 1 || resp.Error.Column != 1 {
		t.Errorf("line, column = %d, %d, want 1, 1", resp.Error.Line, resp.Error.Column)
	}
	if want := "1:1: exhausted all parsers\nx\n^"; resp.Error.Snippet != want {
		t.Errorf("snippet = %q, want %q", resp.Error.Snippet, want)
	}
}

func TestParseEndpointRejectsBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"input": `},
		{name: "zero max depth", body: `{"input": "1", "max_depth": 0}`},
		{name: "excessive max depth", body: `{"input": "1", "max_depth": 1000000}`},
	}

	s := newTestServer(t)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if rec := postParse(t, s, test.body); rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestIndexPage(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	page := rec.Body.String()
	for _, want := range []string{"rewind playground", `value="64"`, "expression"} {
		if !strings.Contains(page, want) {
			t.Errorf("index page does not contain %q", want)
		}
	}
}

func TestGrammarEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/grammar", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "expression") {
		t.Errorf("grammar = %q, want mention of expression", rec.Body.String())
	}
}

func TestNewServerRejectsNonPositiveDepth(t *testing.T) {
	if _, err := NewServer(0); err == nil {
		t.Errorf("NewServer(0) error = nil, want error")
	}
}
