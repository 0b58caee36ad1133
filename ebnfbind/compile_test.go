package ebnfbind

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/exp/ebnf"

	"github.com/dhamidi/rewind/parse"
	"github.com/dhamidi/rewind/text"
)

func compileString(t *testing.T, src string) map[string]parse.Parser {
	t.Helper()
	g, err := ebnf.Parse("test.ebnf", strings.NewReader(src))
	if err != nil {
		t.Fatalf("ebnf.Parse() error = %v", err)
	}
	rules, err := Compile(g)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	return rules
}

func TestCompileDigits(t *testing.T) {
	rules := compileString(t, `
digits = digit { digit } .
digit  = "0" … "9" .
`)

	cur := text.FromString("123x")
	v, err := rules["digits"].Parse(cur)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []parse.Value{'1', []parse.Value{'2', '3'}}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Parse() = %v, want %v", v, want)
	}
	if cur.Pos() != 3 {
		t.Errorf("Pos() = %d, want 3", cur.Pos())
	}
}

func TestCompileOption(t *testing.T) {
	rules := compileString(t, `
num    = [ "-" ] digit .
digit  = "0" … "9" .
`)

	t.Run("present", func(t *testing.T) {
		v, err := rules["num"].Parse(text.FromString("-7"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		want := []parse.Value{"-", '7'}
		if !reflect.DeepEqual(v, want) {
			t.Errorf("Parse() = %v, want %v", v, want)
		}
	})

	t.Run("absent", func(t *testing.T) {
		v, err := rules["num"].Parse(text.FromString("7"))
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		want := []parse.Value{nil, '7'}
		if !reflect.DeepEqual(v, want) {
			t.Errorf("Parse() = %v, want %v", v, want)
		}
	})
}

func TestCompileRecursion(t *testing.T) {
	rules := compileString(t, `
expr   = digit | "(" expr ")" .
digit  = "0" … "9" .
`)

	cur := text.FromString("((7))", text.WithMaxDepth(64))
	v, err := rules["expr"].Parse(cur)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := []parse.Value{"(", []parse.Value{"(", '7', ")"}, ")"}
	if !reflect.DeepEqual(v, want) {
		t.Errorf("Parse() = %v, want %v", v, want)
	}
	if cur.Pos() != 5 {
		t.Errorf("Pos() = %d, want 5", cur.Pos())
	}

	t.Run("unbalanced input fails", func(t *testing.T) {
		_, err := rules["expr"].Parse(text.FromString("((7)", text.WithMaxDepth(64)))
		if !parse.IsNoMatch(err) {
			t.Errorf("Parse() error = %v, want NoMatch", err)
		}
	})
}

func TestCompileAlternativesInOrder(t *testing.T) {
	rules := compileString(t, `
word = "ab" | "abc" .
`)

	cur := text.FromString("abc")
	v, err := rules["word"].Parse(cur)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v != "ab" {
		t.Errorf("Parse() = %v, want %q: first alternative wins", v, "ab")
	}
	if cur.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2", cur.Pos())
	}
}

func TestCompileBacktracksPartialBranches(t *testing.T) {
	// A sequence that fails midway must not leave its consumed prefix
	// behind, or the next alternative (and whatever follows an option or
	// repetition) starts from the wrong offset.
	tests := []struct {
		name    string
		src     string
		input   string
		want    parse.Value
		wantPos int
	}{
		{
			name:    "later alternative shares a prefix",
			src:     `a = "x" "y" | "x" .`,
			input:   "x",
			want:    "x",
			wantPos: 1,
		},
		{
			name:    "input continues after a failed option",
			src:     `a = [ "x" "y" ] "x" .`,
			input:   "x",
			want:    []parse.Value{nil, "x"},
			wantPos: 1,
		},
		{
			name:    "input continues after a failed repetition round",
			src:     `a = { "x" "y" } "x" .`,
			input:   "xyx",
			want:    []parse.Value{[]parse.Value{[]parse.Value{"x", "y"}}, "x"},
			wantPos: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := compileString(t, tt.src)
			cur := text.FromString(tt.input)
			v, err := rules["a"].Parse(cur)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if !reflect.DeepEqual(v, tt.want) {
				t.Errorf("Parse() = %v, want %v", v, tt.want)
			}
			if cur.Pos() != tt.wantPos {
				t.Errorf("Pos() = %d, want %d", cur.Pos(), tt.wantPos)
			}
		})
	}
}

func TestCompileEmptyProduction(t *testing.T) {
	rules := compileString(t, `
empty = .
`)

	cur := text.FromString("xyz")
	v, err := rules["empty"].Parse(cur)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if !reflect.DeepEqual(v, []parse.Value{}) {
		t.Errorf("Parse() = %v, want []", v)
	}
	if cur.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", cur.Pos())
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"undefined name", `a = b .`, "undefined production b"},
		{"multi-character range", `a = "ab" … "z" .`, "not a single character"},
		{"empty range", `a = "z" … "a" .`, "empty range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ebnf.Parse("test.ebnf", strings.NewReader(tt.src))
			if err != nil {
				t.Fatalf("ebnf.Parse() error = %v", err)
			}
			_, err = Compile(g)
			if err == nil {
				t.Fatal("Compile() error = nil, want an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Compile() error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "digits.ebnf")
	src := "digits = digit { digit } .\ndigit = \"0\" … \"9\" .\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	rules, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := rules["digits"]; !ok {
		t.Error("Load() is missing the digits rule")
	}

	if _, err := Load(filepath.Join(dir, "missing.ebnf")); err == nil {
		t.Error("Load() of a missing file: error = nil, want an error")
	}
}
