package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/rgeddes/dupfind/pkg/dupfind/types"
)

// timeRounding trims elapsed durations for display.
const timeRounding = time.Millisecond

// PrettyFormatter renders the result with colors and styling using
// lipgloss, suitable for interactive terminal display.
type PrettyFormatter struct{}

// Format writes the formatted output to the buffer.
func (f *PrettyFormatter) Format(w *bytes.Buffer, r *Result) error {
	w.WriteString(f.formatHeader(r))
	w.WriteString("\n")

	if len(r.Groups) == 0 {
		w.WriteString(MutedStyle.Render("No duplicate files found."))
		w.WriteString("\n")
	} else {
		f.formatGroups(w, r)
	}

	if len(r.Moves) > 0 {
		w.WriteString("\n")
		f.formatMoves(w, r)
	}

	if len(r.Warnings) > 0 {
		w.WriteString("\n")
		f.formatWarnings(w, r.Warnings)
	}

	return nil
}

func (f *PrettyFormatter) formatHeader(r *Result) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Duplicate scan"))
	b.WriteString("\n")
	b.WriteString(MutedStyle.Render(fmt.Sprintf(
		"root %s  algorithm %s  processed %d  hashed %d  elapsed %s",
		r.Root, r.Algorithm, r.Stats.FilesProcessed, r.Stats.FilesHashed,
		r.Stats.Elapsed.Round(timeRounding))))
	return HeaderBox.Render(b.String())
}

func (f *PrettyFormatter) formatGroups(w *bytes.Buffer, r *Result) {
	for _, g := range r.Groups {
		fmt.Fprintf(w, "%s %s\n",
			DigestStyle.Render(g.Digest),
			MutedStyle.Render(fmt.Sprintf("(%d files, %s each)", len(g.Paths), g.FileSizeHuman)))
		for i, p := range g.Paths {
			if i == 0 {
				fmt.Fprintf(w, "  %s %s\n", KeeperStyle.Render("keep"), p)
				continue
			}
			fmt.Fprintf(w, "  %s  %s\n", DuplicateStyle.Render("dup"), p)
		}
	}
	fmt.Fprintf(w, "\n%s\n", MutedStyle.Render(fmt.Sprintf(
		"%d duplicate groups, %d singletons, %s reclaimable",
		r.Stats.DuplicateGroups, r.Stats.Singletons, types.FormatSize(r.Stats.WastedBytes))))
}

func (f *PrettyFormatter) formatMoves(w *bytes.Buffer, r *Result) {
	w.WriteString(TitleStyle.Render("Relocations"))
	w.WriteString("\n")
	for _, m := range r.Moves {
		if m.Error != "" {
			fmt.Fprintf(w, "  %s %s: %s\n", ErrorStyle.Render("fail"), m.Source, m.Error)
			continue
		}
		fmt.Fprintf(w, "  %s %s -> %s\n", KeeperStyle.Render("ok"), m.Source, m.Dest)
	}
}

func (f *PrettyFormatter) formatWarnings(w *bytes.Buffer, warnings []string) {
	w.WriteString(ErrorStyle.Render(fmt.Sprintf("%d files skipped due to errors", len(warnings))))
	w.WriteString("\n")
	for _, warning := range warnings {
		fmt.Fprintf(w, "  %s\n", MutedStyle.Render(warning))
	}
}

func init() {
	Register("pretty", func() Formatter {
		return &PrettyFormatter{}
	})
}

var _ Formatter = (*PrettyFormatter)(nil)
