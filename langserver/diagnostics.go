package langserver

import (
	"errors"
	"fmt"
	"io"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/rewind/arith"
	"github.com/dhamidi/rewind/parse"
	"github.com/dhamidi/rewind/text"
)

// Diagnostics parses input as one arithmetic expression and reports what
// an editor should mark: the failure position when parsing fails, or a
// warning over the unconsumed tail when the expression ends before the
// document does.
func Diagnostics(input []byte, maxDepth int) []protocol.Diagnostic {
	cur := text.New(input, text.WithMaxDepth(maxDepth))
	if _, err := arith.Parse(cur); err != nil {
		return []protocol.Diagnostic{diagnosticFromError(input, err)}
	}
	if cur.Pos() < cur.Len() {
		return []protocol.Diagnostic{{
			Range:    rangeBetween(input, cur.Pos(), cur.Len()),
			Severity: severityPtr(protocol.DiagnosticSeverityWarning),
			Source:   sourcePtr(),
			Message:  fmt.Sprintf("input after offset %d is not part of the expression", cur.Pos()),
		}}
	}
	return nil
}

func diagnosticFromError(input []byte, err error) protocol.Diagnostic {
	pos := len(input)
	message := err.Error()
	var nm *parse.NoMatch
	if errors.As(err, &nm) {
		pos = nm.Pos
	} else if errors.Is(err, io.EOF) {
		message = "unexpected end of input"
	}
	end := pos + 1
	if end > len(input) {
		end = len(input)
	}
	return protocol.Diagnostic{
		Range:    rangeBetween(input, pos, end),
		Severity: severityPtr(protocol.DiagnosticSeverityError),
		Source:   sourcePtr(),
		Message:  message,
	}
}

func rangeBetween(input []byte, start, end int) protocol.Range {
	return protocol.Range{
		Start: positionAt(input, start),
		End:   positionAt(input, end),
	}
}

func positionAt(input []byte, offset int) protocol.Position {
	line, col := text.LineCol(input, offset)
	return protocol.Position{
		Line:      protocol.UInteger(line - 1),
		Character: protocol.UInteger(col - 1),
	}
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func sourcePtr() *string {
	source := lsName
	return &source
}
