package rust

import "strings"

// exampleIndent marks a documentation line as part of a code example.
const exampleIndent = "    "

// FormatDocComment converts a node's documentation block into Rust doc
// comment lines. Runs of four-space-indented lines are stripped of the
// indent and wrapped in a fenced ```ruby block; everything else passes
// through as a plain doc comment line. Fences are always balanced, including
// when the block ends while still inside an example.
func FormatDocComment(comment string) []string {
	var out []string
	example := false

	for _, line := range splitLines(comment) {
		if stripped, ok := strings.CutPrefix(line, exampleIndent); ok {
			if !example {
				out = append(out, "/// ```ruby")
				example = true
			}
			out = append(out, "/// "+stripped)
		} else {
			if example {
				out = append(out, "/// ```")
				example = false
			}
			out = append(out, "/// "+line)
		}
	}

	if example {
		out = append(out, "/// ```")
	}

	return out
}

// splitLines splits on newlines, dropping the empty line a trailing newline
// would otherwise produce. YAML block scalars always end with one.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
