package presentation

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the startup banner for the long-running modes.
func PrintBanner(mode string) {
	p := termenv.ColorProfile()
	title := termenv.String(" TRASHION INVENTORY MONITOR ").Foreground(p.Color("#f472b6")).Bold()
	sub := termenv.String(" " + mode + " ").Foreground(p.Color("#a78bfa"))

	fmt.Println()
	fmt.Println(title)
	fmt.Println(sub)
	fmt.Println()
}
