package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/odvcencio/pagewright/pkg/config"
	pwerrors "github.com/odvcencio/pagewright/pkg/errors"
	"github.com/odvcencio/pagewright/pkg/pagedetect"
	"github.com/odvcencio/pagewright/pkg/trace"
)

// renderer formats detected segments for humans (table) or for
// downstream tooling (JSON).
type renderer struct {
	format string

	headerStyle lipgloss.Style
	nameStyle   lipgloss.Style
	dimStyle    lipgloss.Style
	lowStyle    lipgloss.Style
}

func newRenderer(format string, noColor bool) *renderer {
	r := &renderer{format: format}
	if noColor {
		r.headerStyle = lipgloss.NewStyle()
		r.nameStyle = lipgloss.NewStyle()
		r.dimStyle = lipgloss.NewStyle()
		r.lowStyle = lipgloss.NewStyle()
		return r
	}
	r.headerStyle = lipgloss.NewStyle().Bold(true)
	r.nameStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#0066CC", Dark: "#5599FF"}).
		Bold(true)
	r.dimStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"})
	r.lowStyle = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFAA00"})
	return r
}

func (r *renderer) render(w io.Writer, tr *trace.Trace, segments []pagedetect.PageSegment) error {
	if r.format == config.FormatJSON {
		return writeSegmentsJSON(w, tr, segments)
	}
	return r.renderTable(w, tr, segments)
}

func (r *renderer) renderTable(w io.Writer, tr *trace.Trace, segments []pagedetect.PageSegment) error {
	fmt.Fprintln(w, r.headerStyle.Render(fmt.Sprintf("Trace %s: %d actions, %d pages", tr.ID, len(tr.Actions), len(segments))))
	if len(segments) == 0 {
		fmt.Fprintln(w, r.dimStyle.Render("  no segments above the confidence threshold"))
		return nil
	}

	nameWidth := len("NAME")
	for _, seg := range segments {
		if len(seg.PageName) > nameWidth {
			nameWidth = len(seg.PageName)
		}
	}

	// Pad before styling: ANSI escape sequences would otherwise count
	// toward the column width.
	header := fmt.Sprintf("  %-*s  %-14s  %-9s  %-5s  %s", nameWidth, "NAME", "INTENT", "ACTIONS", "CONF", "URL")
	fmt.Fprintln(w, r.headerStyle.Render(header))
	for _, seg := range segments {
		name := r.nameStyle.Render(fmt.Sprintf("%-*s", nameWidth, seg.PageName))
		actions := fmt.Sprintf("%-9s", fmt.Sprintf("[%d,%d)", seg.StartIndex, seg.EndIndex))
		conf := fmt.Sprintf("%-5s", fmt.Sprintf("%.2f", seg.Confidence))
		if seg.Confidence < 0.7 {
			conf = r.lowStyle.Render(conf)
		}
		url := seg.URLPattern
		if url == "" {
			url = r.dimStyle.Render("-")
		}
		fmt.Fprintf(w, "  %s  %-14s  %s  %s  %s\n", name, seg.Intent, actions, conf, url)
	}
	return nil
}

// segmentExport is the JSON envelope consumed by downstream codegen.
type segmentExport struct {
	TraceID  string                   `json:"trace_id"`
	Segments []pagedetect.PageSegment `json:"segments"`
}

func writeSegmentsJSON(w io.Writer, tr *trace.Trace, segments []pagedetect.PageSegment) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(segmentExport{TraceID: tr.ID, Segments: segments})
}

// exportSegments writes the segment list to a file for the external
// code-generation step.
func exportSegments(path string, tr *trace.Trace, segments []pagedetect.PageSegment) error {
	f, err := os.Create(path)
	if err != nil {
		return pwerrors.Wrap(err, pwerrors.ErrCodeExportWrite, "failed to create export file").
			WithContext("path", path)
	}
	defer f.Close()

	if err := writeSegmentsJSON(f, tr, segments); err != nil {
		return pwerrors.Wrap(err, pwerrors.ErrCodeExportWrite, "failed to write segments").
			WithContext("path", path)
	}
	return nil
}
