package report

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// reportFilePermissions is the file mode for report files (world-readable).
const reportFilePermissions = 0644

func lineSeparator() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// WriteToFile persists the report to path, replacing any prior contents so
// the file reflects exactly this invocation's findings. Parent directories
// are created as needed. Write failures are returned to the caller; there is
// no retry.
func (c *Collector) WriteToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report directory %s: %w", dir, err)
		}
	}
	body := FormatAll(c.report, c.printSig)
	if err := os.WriteFile(path, []byte(body), reportFilePermissions); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}
