// Package util provides common utilities including logging helpers,
// file system operations, and string manipulation functions.
package util

import (
	"io"
	"log"
	"os"
	"path/filepath"
)

// LogError logs an error with context if it is non-nil.
func LogError(context string, err error) {
	if err != nil {
		log.Printf("%s: %v", context, err)
	}
}

// MustSucceed logs and exits on error. Use sparingly.
func MustSucceed(context string, err error) {
	if err != nil {
		log.Fatalf("%s: %v", context, err)
	}
}

// SetupLogging sends the standard logger to a file inside dir, since the
// terminal belongs to the UI. If the file cannot be opened, log output is
// discarded. The returned closer is always non-nil.
func SetupLogging(dir, name string) io.Closer {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if err := os.MkdirAll(dir, 0o755); err == nil {
		f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err == nil {
			log.SetOutput(f)
			return f
		}
	}
	log.SetOutput(io.Discard)
	return io.NopCloser(nil)
}
