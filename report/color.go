// SPDX-License-Identifier: MIT

package report

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// ColorLimit is the number of distinct cell colors; indices wrap around.
const ColorLimit = 10

// colorClassPrefix names the HTML class of color index n: bg-color-<n>.
const colorClassPrefix = "bg-color-"

// Palette holds one background per color index. Light tones keep black
// text readable in print.
var Palette = [ColorLimit]lipgloss.Color{
	lipgloss.Color("#FDE2E4"),
	lipgloss.Color("#E2ECE9"),
	lipgloss.Color("#DFE7FD"),
	lipgloss.Color("#FFF1C1"),
	lipgloss.Color("#E8DFF5"),
	lipgloss.Color("#D7F2E3"),
	lipgloss.Color("#FCE1C4"),
	lipgloss.Color("#D6EAF8"),
	lipgloss.Color("#F5E1FD"),
	lipgloss.Color("#E9F5DB"),
}

// ColorIndex pairs cell (i, j) of a grid cols wide with a color so the same
// position shares a color across inputs, steps and result.
func ColorIndex(i, j, cols int) int {
	idx := (i*cols + j) % ColorLimit
	if idx < 0 {
		idx += ColorLimit
	}

	return idx
}

// ColorClass returns the HTML class for ColorIndex(i, j, cols).
func ColorClass(i, j, cols int) string {
	return colorClassPrefix + strconv.Itoa(ColorIndex(i, j, cols))
}
