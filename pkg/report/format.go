package report

import (
	"strconv"
	"strings"
)

// Format renders one finding as a single report line:
//
//	[signature] source:line: code: text
//
// The signature prefix appears only when withSignature is set and the message
// carries one. The line number is omitted when unknown, and the source is
// omitted when the tool reported none. Output depends on nothing but the
// message and the flag.
func Format(msg Message, withSignature bool) string {
	var b strings.Builder
	if withSignature && msg.Signature != "" {
		b.WriteString("[")
		b.WriteString(msg.Signature)
		b.WriteString("] ")
	}
	if msg.Source != "" {
		b.WriteString(msg.Source)
		if msg.Line != LineUnknown {
			b.WriteString(":")
			b.WriteString(strconv.Itoa(msg.Line))
		}
		b.WriteString(": ")
	}
	b.WriteString(msg.Code)
	b.WriteString(": ")
	b.WriteString(msg.Text)
	return b.String()
}

// FormatAll renders the whole report as file content: one finding per line in
// detection order, joined with the platform line separator, with a trailing
// separator when non-empty.
func FormatAll(msgs []Message, withSignature bool) string {
	if len(msgs) == 0 {
		return ""
	}
	lines := make([]string, len(msgs))
	for i, msg := range msgs {
		lines[i] = Format(msg, withSignature)
	}
	sep := lineSeparator()
	return strings.Join(lines, sep) + sep
}
