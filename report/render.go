// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"
)

// Format names an output format.
type Format string

const (
	FormatText Format = "text"
	FormatHTML Format = "html"
	FormatJSON Format = "json"
)

// Formats lists the valid formats.
func Formats() []Format { return []Format{FormatText, FormatHTML, FormatJSON} }

// ParseFormat validates a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, ok := range Formats() {
		if f == ok {
			return f, nil
		}
	}

	return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Render writes r in format f. text honors textOpts; the other formats
// ignore it.
func Render(w io.Writer, r *Report, f Format, textOpts TextOptions) error {
	switch f {
	case FormatText:
		return RenderText(w, r, textOpts)
	case FormatHTML:
		return RenderHTML(w, r)
	case FormatJSON:
		return RenderJSON(w, r)
	}

	return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
}
