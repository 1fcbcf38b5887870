package render

import (
	"fmt"
	"io"
	"strings"
)

// CheckResult is the outcome of validating a topology.
type CheckResult struct {
	Items int    `json:"items" yaml:"items"`
	OK    bool   `json:"ok" yaml:"ok"`
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
	// Cycle is one offending dependency path, first item repeated at the end.
	Cycle []string `json:"cycle,omitempty" yaml:"cycle,omitempty"`
}

// Check writes a validation result.
func Check(w io.Writer, format Format, result CheckResult) error {
	if format != FormatText {
		return encode(w, format, result)
	}
	if result.OK {
		_, err := fmt.Fprintf(w, "ok: %d items can be ordered\n", result.Items)
		return err
	}
	if _, err := fmt.Fprintf(w, "invalid: %s\n", result.Error); err != nil {
		return err
	}
	if len(result.Cycle) > 0 {
		_, err := fmt.Fprintf(w, "cycle: %s\n", strings.Join(result.Cycle, " -> "))
		return err
	}
	return nil
}
