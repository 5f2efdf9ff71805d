package lsp

import (
	"strings"

	"go.lsp.dev/protocol"

	bible "github.com/MasterTemple/bible-lsp"
)

// spanToRange converts a scanner span to an LSP range. Both are 0-based,
// so the conversion is direct.
func spanToRange(span bible.Span) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: span.Start.Line, Character: span.Start.Character},
		End:   protocol.Position{Line: span.End.Line, Character: span.End.Character},
	}
}

// lineAt returns the given 0-based line of content without its line
// ending, or "" when the document has fewer lines.
func lineAt(content string, line uint32) string {
	rest := strings.ReplaceAll(content, "\r", "")
	for ; line > 0; line-- {
		_, next, ok := strings.Cut(rest, "\n")
		if !ok {
			return ""
		}
		rest = next
	}
	text, _, _ := strings.Cut(rest, "\n")

	return text
}

// textBeforeCursor returns the part of the cursor's line strictly before
// the cursor. The character offset is clamped to the line length; some
// clients report a cursor one past the end of the line.
func textBeforeCursor(content string, pos protocol.Position) string {
	line := lineAt(content, pos.Line)
	if int(pos.Character) < len(line) {
		return line[:pos.Character]
	}

	return line
}
