package components

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Row markers.
const (
	markSelected  = "●"
	markCollapsed = "▸"
	markExpanded  = "▾"
	markFlyout    = "›"
)

// cell lays text out in exactly width columns, truncating with an ellipsis
// and keeping trailing flush right.
func cell(text, trailing string, width int) string {
	if width <= 0 {
		return ""
	}
	room := width - runewidth.StringWidth(trailing)
	if room < 0 {
		return runewidth.Truncate(trailing, width, "")
	}
	text = runewidth.Truncate(text, room, "…")
	return runewidth.FillRight(text, room) + trailing
}

func blank(width int) string {
	if width <= 0 {
		return ""
	}
	return strings.Repeat(" ", width)
}

func marker(selected bool) string {
	if selected {
		return markSelected
	}
	return " "
}
