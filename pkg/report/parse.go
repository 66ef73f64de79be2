package report

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrUnparsable is returned when a raw diagnostic line matches none of the
// tool's known output formats. A line that cannot be parsed is surfaced as an
// error rather than as a half-populated Message, since a bad record would
// corrupt duplicate suppression downstream.
var ErrUnparsable = errors.New("unparsable diagnostic line")

// Recognized animalsniffer output shapes, tried in order:
//
//	<path>:<line>: <code>: <description>
//	<path>: <code>: <description>
//	<code>: <description>
//
// A bare finding whose description itself contains ": " is indistinguishable
// from the path shape and parses as the latter.
var (
	locatedPattern = regexp.MustCompile(`^(.+):(\d+): ([^:]+): (.+)$`)
	pathPattern    = regexp.MustCompile(`^(.+?): ([^:]+): (.+)$`)
	barePattern    = regexp.MustCompile(`^([^:]+): (.+)$`)
)

// Parse converts one raw diagnostic line into a Message, resolving any file
// path it contains against the given source roots. The returned Message has
// no Signature; the collector stamps it.
func Parse(raw string, roots []string) (Message, error) {
	line := strings.TrimSpace(raw)

	if m := locatedPattern.FindStringSubmatch(line); m != nil {
		num, err := strconv.Atoi(m[2])
		if err != nil {
			return Message{}, fmt.Errorf("%w: %q: bad line number: %w", ErrUnparsable, raw, err)
		}
		return Message{
			Source: Relativize(m[1], roots),
			Line:   num,
			Code:   m[3],
			Text:   m[4],
		}, nil
	}

	if m := pathPattern.FindStringSubmatch(line); m != nil {
		return Message{
			Source: Relativize(m[1], roots),
			Line:   LineUnknown,
			Code:   m[2],
			Text:   m[3],
		}, nil
	}

	if m := barePattern.FindStringSubmatch(line); m != nil {
		return Message{
			Line: LineUnknown,
			Code: m[1],
			Text: m[2],
		}, nil
	}

	return Message{}, fmt.Errorf("%w: %q", ErrUnparsable, raw)
}

// Relativize strips the longest matching source root prefix from path so that
// reports stay portable across machines. When no root matches, the path is
// returned as given.
func Relativize(path string, roots []string) string {
	var best string
	for _, root := range roots {
		if root == "" {
			continue
		}
		if strings.HasPrefix(path, root) && len(root) > len(best) {
			best = root
		}
	}
	if best == "" {
		return path
	}
	return strings.TrimLeft(strings.TrimPrefix(path, best), `/\`)
}
