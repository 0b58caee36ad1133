package parse

import (
	"errors"
	"testing"

	"github.com/dhamidi/rewind/text"
)

func TestRefDelegatesAfterBind(t *testing.T) {
	ref := &Ref{}
	ref.Bind(Number{})

	cur := text.FromString("42")
	v, err := ref.Parse(cur)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if v != 42 {
		t.Errorf("Parse() = %v, want 42", v)
	}
}

func TestRefUnboundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Parse() on unbound Ref did not panic")
		}
	}()
	ref := &Ref{}
	ref.Parse(text.FromString("x"))
}

func TestRefDoubleBindPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("second Bind() did not panic")
		}
	}()
	ref := &Ref{}
	ref.Bind(Number{})
	ref.Bind(Number{})
}

func TestRefDepthLimit(t *testing.T) {
	// A rule that only re-enters itself never terminates on its own. With a
	// budget on the cursor the innermost entry fails instead, and the
	// failure is an ordinary NoMatch wrapping ErrTooDeep.
	ref := &Ref{}
	ref.Bind(Func(func(cur *text.Cursor) (Value, error) {
		return ref.Parse(cur)
	}))

	cur := text.FromString("anything", text.WithMaxDepth(16))
	_, err := ref.Parse(cur)
	if !IsNoMatch(err) {
		t.Fatalf("Parse() error = %v, want NoMatch", err)
	}
	if !errors.Is(err, ErrTooDeep) {
		t.Errorf("Parse() error = %v, want ErrTooDeep as the cause", err)
	}
	if cur.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", cur.Pos())
	}
	if cur.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0 after unwinding", cur.Depth())
	}
}

func TestRefMutualRecursionWithBudget(t *testing.T) {
	a, b := &Ref{}, &Ref{}
	a.Bind(Choice{Candidates: []Parser{Number{}, b}})
	b.Bind(a)

	t.Run("terminates on a match", func(t *testing.T) {
		cur := text.FromString("7", text.WithMaxDepth(8))
		v, err := a.Parse(cur)
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if v != 7 {
			t.Errorf("Parse() = %v, want 7", v)
		}
	})

	t.Run("fails cleanly on non-matching input", func(t *testing.T) {
		cur := text.FromString("x", text.WithMaxDepth(8))
		_, err := a.Parse(cur)
		if !IsNoMatch(err) {
			t.Fatalf("Parse() error = %v, want NoMatch", err)
		}
		if cur.Pos() != 0 {
			t.Errorf("Pos() = %d, want 0", cur.Pos())
		}
	})
}
