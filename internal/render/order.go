package render

import (
	"fmt"
	"io"
)

type orderDoc struct {
	Order []string `json:"order" yaml:"order"`
}

// Order writes a resolution order, dependencies first. Text output is one item
// per line.
func Order(w io.Writer, format Format, order []string) error {
	if format != FormatText {
		if order == nil {
			order = []string{}
		}
		return encode(w, format, orderDoc{Order: order})
	}
	for _, item := range order {
		if _, err := fmt.Fprintln(w, item); err != nil {
			return err
		}
	}
	return nil
}
