package report

import (
	"bytes"
	"fmt"
)

// PlainFormatter renders the duplicate report as unstyled text suitable
// for scripting and piping: one block per group listing the checksum and
// its paths, followed by relocation lines when moves ran.
type PlainFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PlainFormatter) Format(w *bytes.Buffer, r *Result) error {
	if len(r.Groups) == 0 {
		w.WriteString("No duplicate files found.\n")
	} else {
		for _, g := range r.Groups {
			fmt.Fprintf(w, "\nChecksum: %s\n", g.Digest)
			for _, p := range g.Paths {
				fmt.Fprintf(w, "  %s\n", p)
			}
		}
	}

	for _, m := range r.Moves {
		if m.Error != "" {
			fmt.Fprintf(w, "Error moving file %s: %s\n", m.Source, m.Error)
			continue
		}
		fmt.Fprintf(w, "Moved duplicate: %s -> %s\n", m.Source, m.Dest)
	}

	return nil
}

func init() {
	Register("plain", func() Formatter {
		return &PlainFormatter{}
	})
}

var _ Formatter = (*PlainFormatter)(nil)
