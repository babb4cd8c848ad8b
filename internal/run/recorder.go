package run

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
	"unicode/utf8"
)

// detailLimit caps how many bytes of a detail payload are printed.
const detailLimit = 200

// Recorder appends outcomes to the run context and streams one status line
// per step to its writer.
type Recorder struct {
	ctx *Context
	w   io.Writer

	// ShowDetails prints detail payloads for every status, not just FAIL.
	ShowDetails bool

	// Now is the timestamp source; overridable for deterministic tests.
	Now func() time.Time
}

// NewRecorder creates a Recorder writing status lines to w.
func NewRecorder(ctx *Context, w io.Writer) *Recorder {
	return &Recorder{ctx: ctx, w: w, Now: time.Now}
}

// Record appends one Outcome and emits its status line:
//
//	<glyph> <step_name>: <message>
//
// Detail is printed on an indented follow-up line when present and either
// the status is FAIL or ShowDetails is set. Detail payloads are truncated
// to a printable excerpt; unprintable bytes never abort the run.
func (r *Recorder) Record(stepName string, status Status, message string, detail any) {
	r.ctx.append(Outcome{
		StepName:  stepName,
		Status:    status,
		Message:   message,
		Detail:    detail,
		Timestamp: r.Now(),
	})

	fmt.Fprintf(r.w, "%s %s: %s\n", status.Glyph(), stepName, message)
	if detail == nil {
		return
	}
	if status == StatusFail || r.ShowDetails {
		fmt.Fprintf(r.w, "   Details: %s\n", formatDetail(detail))
	}
}

// Banner prints a suite banner line.
func (r *Recorder) Banner(title string) {
	fmt.Fprintf(r.w, "\n=== %s ===\n", title)
}

// Section prints a section header between steps.
func (r *Recorder) Section(title string) {
	fmt.Fprintf(r.w, "\n--- %s ---\n", title)
}

// formatDetail renders a detail payload as a single printable excerpt.
// Structured values are JSON-encoded; anything else is stringified.
// HTML-looking payloads and payloads over the byte limit are truncated.
func formatDetail(detail any) string {
	var s string
	switch v := detail.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case error:
		s = v.Error()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			s = fmt.Sprintf("%v", v)
		} else {
			s = string(b)
		}
	}

	s = strings.ToValidUTF8(s, "�")
	s = strings.ReplaceAll(s, "\n", " ")
	if looksHTML(s) || len(s) > detailLimit {
		s = truncate(s, detailLimit)
	}
	return s
}

// looksHTML reports whether a payload starts like an HTML document.
func looksHTML(s string) bool {
	t := strings.ToLower(strings.TrimSpace(s))
	return strings.HasPrefix(t, "<!doctype") || strings.HasPrefix(t, "<html")
}

// truncate cuts s to at most limit bytes on a rune boundary.
func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
