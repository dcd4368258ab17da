package cmd

import (
	"os"

	colorize "github.com/fatih/color"
	"golang.org/x/term"

	"github.com/arcanaland/cardrarity/internal/card"
)

var rarityColors = map[card.Rarity]*colorize.Color{
	card.Common:     colorize.New(colorize.FgWhite),
	card.Uncommon:   colorize.New(colorize.FgGreen),
	card.Rare:       colorize.New(colorize.FgBlue),
	card.RareHolo:   colorize.New(colorize.FgCyan, colorize.Bold),
	card.RareUltra:  colorize.New(colorize.FgMagenta, colorize.Bold),
	card.RareSecret: colorize.New(colorize.FgYellow, colorize.Bold),
}

// rarityLabel renders r padded to the widest rarity name
func rarityLabel(r card.Rarity) string {
	return rarityColors[r].Sprintf("%-10s", r)
}

func label(s string) string {
	return colorize.CyanString(s)
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal
func terminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// truncate shortens s to fit in width columns; width <= 0 means unlimited
func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// imageText shows a placeholder for cards without artwork
func imageText(image string) string {
	if image == "" {
		return colorize.HiBlackString("(no image)")
	}
	return image
}
