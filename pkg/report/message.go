// Package report implements the animalsniffer finding pipeline: parsing raw
// diagnostic lines into structured messages, suppressing the tool's adjacent
// return-type/method-call duplicates, and rendering the accumulated report.
package report

import "strings"

// LineUnknown marks a finding whose source line could not be determined.
const LineUnknown = 0

// Message is a single normalized animalsniffer finding.
//
// All fields except Signature are fixed at parse time. Signature is stamped
// by the Collector, which knows which analysis profile is active; the parser
// never sets it.
type Message struct {
	// Signature is the name of the analysis profile that was active when the
	// finding was produced. Empty when none is known.
	Signature string

	// Source is the offending source file, relative to a configured source
	// root when one matches, otherwise exactly as reported by the tool.
	Source string

	// Line is the 1-based source line, or LineUnknown.
	Line int

	// Code identifies the offending API or symbol.
	Code string

	// Text is the free-text description of the finding.
	Text string
}

// supersedes reports whether m is the more specific half of an adjacent
// duplicate pair: same signature, source, and line as prev, with prev's code
// being a literal prefix of m's code. Certain animalsniffer versions emit a
// return-type finding immediately before the method-call finding for the same
// expression; the call code is the return-type code with the call signature
// appended.
func (m Message) supersedes(prev Message) bool {
	return m.Signature == prev.Signature &&
		m.Source == prev.Source &&
		m.Line == prev.Line &&
		strings.HasPrefix(m.Code, prev.Code)
}
