package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sandbox/internal/element"
)

var elementsCmd = &cobra.Command{
	Use:   "elements",
	Short: "List the element catalog",
	Long: `Shows every element with its palette slot, glyph, motion class,
density and flammability.`,
	Run: runElements,
}

func runElements(_ *cobra.Command, _ []string) {
	fmt.Println("Elements:")
	fmt.Println()

	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %-7s  %s\n", "Slot", "Name", "Glyph", "Motion", "Density", "Flammable")
	fmt.Printf("  %-4s  %-8s  %-5s  %-8s  %-7s  %s\n", "----", "----", "-----", "------", "-------", "---------")

	for i, p := range element.Catalog() {
		glyph := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Color.Hex())).Render(string(p.Glyph))
		flammable := "no"
		if p.Flammable {
			flammable = "yes"
		}
		fmt.Printf("  %-4d  %-8s  %s      %-8s  %-7.2f  %s\n", i+1, p.Name, glyph, p.Motion, p.Density, flammable)
	}

	fmt.Println()
	fmt.Println("Names and slot numbers both work wherever an element is expected.")
}
