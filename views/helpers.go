package views

import (
	"io"
	"strings"
	"time"

	"github.com/a-h/templ"
)

// NavClass returns CSS classes for a header link, with active variant.
func NavClass(active bool) string {
	base := "inline-flex items-center px-3 py-2 text-sm font-semibold tracking-wide hover:underline underline-offset-4"
	if active {
		base += " underline decoration-2"
	}
	return base
}

// FormatDate renders an ISO date as "January 2, 2006"; unparsable input is returned as is.
func FormatDate(s string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, strings.TrimSpace(s)); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return s
}

// JoinTags formats a tag slice as a comma-separated string.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// htmlWriter stops writing after the first error and reports it once.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (h *htmlWriter) raw(s string) {
	if h.err == nil {
		_, h.err = io.WriteString(h.w, s)
	}
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}
