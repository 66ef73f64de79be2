package pretty

import "fmt"

// FormatSummary renders the one-line run summary shown after the findings.
func (s *Styles) FormatSummary(errors, files int) string {
	if errors == 0 {
		return s.Success.Render("No violations found.")
	}
	return fmt.Sprintf("%s %s",
		s.Error.Render(fmt.Sprintf("%d API violation(s)", errors)),
		s.Dim.Render(fmt.Sprintf("in %d file(s)", files)),
	)
}

// FormatReportWritten renders the confirmation line after a report file write.
func (s *Styles) FormatReportWritten(path string) string {
	return s.Dim.Render("report written to ") + s.FilePath.Render(path)
}
