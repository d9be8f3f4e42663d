package commands

import (
	"fmt"
	"io"
)

// RunVersion prints the application version.
func RunVersion(writer io.Writer, version string) error {
	_, _ = fmt.Fprintln(writer, version)
	return nil
}
