// ansiview - a terminal viewer for .ans/.xp files, rendering through textmode.Console
// and flattening the result back to plain ANSI escapes on stdout.
//
// Grounded on terminal_host.go's raw-mode setup (golang.org/x/term.MakeRaw/Restore) and
// its stdin byte-at-a-time read loop, adapted here to drive a one-shot render-and-print
// rather than an interactive MMIO device.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/AuburnSounds/text-mode"
)

var (
	flagCols = flag.Int("cols", 0, "grid columns (0: size to terminal width)")
	flagRows = flag.Int("rows", 0, "grid rows (0: size to terminal height)")
	flagCP437 = flag.Bool("cp437", false, "decode the file as CP437 instead of UTF-8")
)

func terminalSize() (cols, rows int) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || cols <= 0 || rows <= 0 {
		return 80, 25
	}
	return cols, rows
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ansiview [-cols N] [-rows N] [-cp437] <file.ans|file.xp>")
		os.Exit(2)
	}
	path := flag.Arg(0)
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ansiview: %v\n", err)
		os.Exit(1)
	}

	cols, rows := *flagCols, *flagRows
	if cols <= 0 || rows <= 0 {
		tcols, trows := terminalSize()
		if cols <= 0 {
			cols = tcols
		}
		if rows <= 0 {
			rows = trows
		}
	}

	c, err := textmode.NewConsole(cols, rows)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ansiview: %v\n", err)
		os.Exit(1)
	}

	switch {
	case len(data) >= 2 && data[0] == 0x1F && data[1] == 0x8B:
		c.PrintXP(data, 0, 0)
	case *flagCP437:
		c.PrintANSCP437(data, 0, 0)
	default:
		c.PrintANS(data, 0, 0)
	}

	printGrid(c)
}

// printGrid writes the console's grid back out as a plain ANSI stream, re-deriving SGR
// codes from each cell's palette index (0-7 as 30-37/40-47, 8-15 as 90-97/100-107) and
// style flags (bold, underline, blink; shiny has no SGR code and is dropped) rather than
// reusing the loaded escapes verbatim.
func printGrid(c *textmode.Console) {
	var lastFg, lastBg byte = 255, 255
	var lastStyle int = -1
	for row := 0; row < c.Rows(); row++ {
		for col := 0; col < c.Columns(); col++ {
			cell := c.CharAt(col, row)
			style := int(cell.Style)
			if cell.Fg() != lastFg || cell.Bg() != lastBg || style != lastStyle {
				fg, bg := int(cell.Fg()), int(cell.Bg())
				sgr := fmt.Sprintf("\x1b[0m\x1b[%d;%d", 30+fg%8+60*(fg/8), 40+bg%8+60*(bg/8))
				if cell.Style&textmode.StyleBold != 0 {
					sgr += ";1"
				}
				if cell.Style&textmode.StyleUnderline != 0 {
					sgr += ";4"
				}
				if cell.Style&textmode.StyleBlink != 0 {
					sgr += ";5"
				}
				fmt.Print(sgr + "m")
				lastFg, lastBg, lastStyle = cell.Fg(), cell.Bg(), style
			}
			fmt.Printf("%c", cell.Glyph)
		}
		fmt.Print("\x1b[0m\n")
		lastFg, lastBg, lastStyle = 255, 255, -1
	}
}
