package text

// LineCol converts a byte offset into a 1-based line and column. Columns
// count runes, not bytes. Offsets past the end of input report the position
// just after the last character.
func LineCol(input []byte, offset int) (line, col int) {
	if offset > len(input) {
		offset = len(input)
	}
	line, col = 1, 1
	cur := New(input)
	for cur.Pos() < offset {
		r, _, err := cur.ReadRune()
		if err != nil {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Line returns the text of the 1-based line containing the given byte
// offset, without its trailing newline.
func Line(input []byte, offset int) string {
	if offset > len(input) {
		offset = len(input)
	}
	start := offset
	for start > 0 && input[start-1] != '\n' {
		start--
	}
	end := offset
	for end < len(input) && input[end] != '\n' {
		end++
	}
	return string(input[start:end])
}
