package report

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// DefaultCacheMarker separates the build-cache prefix from the original
// signature name in cache-built signature file names.
const DefaultCacheMarker = "!"

// ErrorSink receives one error-severity line per finding during console
// output. *log.Logger from charmbracelet/log satisfies it.
type ErrorSink interface {
	Error(msg interface{}, keyvals ...interface{})
}

// Options configures a Collector.
type Options struct {
	// Roots are the source roots used to relativize paths found in raw
	// diagnostic lines.
	Roots []string

	// PrintSignatureNames prefixes rendered findings with the signature name
	// that produced them. Useful when several profiles run in one invocation.
	PrintSignatureNames bool

	// CacheMarker overrides DefaultCacheMarker.
	CacheMarker string
}

// Collector accumulates animalsniffer findings for one analysis invocation.
//
// A Collector is single-writer and must not be shared across invocations: it
// carries an identity token, assigned at construction, and the event boundary
// rejects events stamped with a different token. Within those bounds no
// synchronization is needed.
type Collector struct {
	token       uuid.UUID
	roots       []string
	cacheMarker string
	printSig    bool

	signature string
	report    []Message
	files     map[string]struct{}
}

// NewCollector creates a Collector for a single invocation and assigns it a
// fresh identity token.
func NewCollector(opts Options) *Collector {
	marker := opts.CacheMarker
	if marker == "" {
		marker = DefaultCacheMarker
	}
	return &Collector{
		token:       uuid.New(),
		roots:       opts.Roots,
		cacheMarker: marker,
		printSig:    opts.PrintSignatureNames,
		files:       make(map[string]struct{}),
	}
}

// Token returns the invocation identity token events must carry to be
// processed by this collector.
func (c *Collector) Token() uuid.UUID {
	return c.token
}

// ContextSignature records the analysis profile that subsequent findings
// belong to, recovering the human-readable name from a signature file name:
// the extension is stripped, and if the name was mangled by the signature
// cache, everything up to and including the cache marker is dropped.
func (c *Collector) ContextSignature(fileName string) {
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	if idx := strings.Index(name, c.cacheMarker); idx >= 0 {
		name = name[idx+len(c.cacheMarker):]
	}
	c.signature = name
}

// Signature returns the currently active profile name, if any.
func (c *Collector) Signature() string {
	return c.signature
}

// Collect parses one raw diagnostic line, stamps it with the active
// signature, records the affected source file, and appends it to the report
// with duplicate suppression applied.
func (c *Collector) Collect(raw string) error {
	msg, err := Parse(raw, c.roots)
	if err != nil {
		return err
	}
	msg.Signature = c.signature

	// The file counts as affected even if the message is later merged with
	// its duplicate.
	if msg.Source != "" {
		c.files[msg.Source] = struct{}{}
	}

	c.append(msg)
	return nil
}

// append applies duplicate suppression against the most recently appended
// message only. The tool emits the return-type finding immediately before the
// method-call finding for the same expression, so the duplicate, when it
// occurs, is always adjacent; a full-history scan is not needed.
func (c *Collector) append(msg Message) {
	if n := len(c.report); n > 0 && msg.supersedes(c.report[n-1]) {
		c.report = c.report[:n-1]
	}
	c.report = append(c.report, msg)
}

// Messages returns the accumulated report in detection order, after
// duplicate suppression.
func (c *Collector) Messages() []Message {
	out := make([]Message, len(c.report))
	copy(out, c.report)
	return out
}

// ErrorsCnt returns the number of findings currently in the report.
func (c *Collector) ErrorsCnt() int {
	return len(c.report)
}

// FilesCnt returns the number of distinct source files with findings,
// counting files whose duplicate findings were suppressed.
func (c *Collector) FilesCnt() int {
	return len(c.files)
}

// PrintToConsole emits one error-severity line per finding to the sink.
func (c *Collector) PrintToConsole(sink ErrorSink) {
	for _, msg := range c.report {
		sink.Error(Format(msg, c.printSig))
	}
}
