// fontgen - regenerate a FontRange's rowsToGlyph() source strings from an 8x8-cell PNG
// bitmap atlas.
//
// Mirrors font2rgba.go's shape: decode a PNG, threshold it into a bitmap, and emit Go
// source rather than raw bytes. Where font2rgba.go produced a binary blitter asset, this
// tool produces the "#"/"." row-string literals that font_data.go's asciiArt-style maps
// consume, so a regenerated range can be pasted straight back into font_data.go.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

var (
	flagAtlas    = flag.String("atlas", "", "path to an 8x8-cell PNG glyph atlas")
	flagCols     = flag.Int("cols", 16, "glyphs per atlas row")
	flagFirstCP  = flag.Int("first", 0x20, "codepoint of the atlas's top-left cell")
	flagOut      = flag.String("out", "", "output path (default: stdout)")
	flagThreshold = flag.Int("threshold", 128, "luma threshold separating ink from background, 0-255")
)

const glyphSize = 8

func main() {
	flag.Parse()
	if *flagAtlas == "" {
		fmt.Fprintln(os.Stderr, "usage: fontgen -atlas atlas.png [-cols 16] [-first 32] [-out range.go]")
		os.Exit(2)
	}

	img, err := loadAtlas(*flagAtlas)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fontgen: %v\n", err)
		os.Exit(1)
	}

	bounds := img.Bounds()
	cols := bounds.Dx() / glyphSize
	rows := bounds.Dy() / glyphSize
	if cols == 0 || rows == 0 {
		fmt.Fprintf(os.Stderr, "fontgen: atlas %dx%d is smaller than one %dx%d cell\n",
			bounds.Dx(), bounds.Dy(), glyphSize, glyphSize)
		os.Exit(1)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// generated by tools/fontgen from %s\n", *flagAtlas)
	fmt.Fprintf(&buf, "var generatedArt = map[rune][GlyphHeight]string{\n")
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cp := *flagFirstCP + row*(*flagCols) + col
			glyphRows := extractGlyphRows(img, col*glyphSize, row*glyphSize)
			if isBlankGlyph(glyphRows) {
				continue
			}
			fmt.Fprintf(&buf, "\t%#x: {\n", cp)
			for _, r := range glyphRows {
				fmt.Fprintf(&buf, "\t\t%q,\n", r)
			}
			fmt.Fprintf(&buf, "\t},\n")
		}
	}
	fmt.Fprintf(&buf, "}\n")

	if *flagOut == "" {
		os.Stdout.Write(buf.Bytes())
		return
	}
	if err := os.WriteFile(*flagOut, buf.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "fontgen: %v\n", err)
		os.Exit(1)
	}
}

func loadAtlas(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	src, err := png.Decode(f)
	if err != nil {
		return nil, err
	}
	rgba := image.NewRGBA(src.Bounds())
	draw.Draw(rgba, src.Bounds(), src, src.Bounds().Min, draw.Src)
	return rgba, nil
}

func extractGlyphRows(img image.Image, ox, oy int) [glyphSize]string {
	var rows [glyphSize]string
	for y := 0; y < glyphSize; y++ {
		row := make([]byte, glyphSize)
		for x := 0; x < glyphSize; x++ {
			r, g, b, _ := img.At(ox+x, oy+y).RGBA()
			luma := (int(r>>8)*299 + int(g>>8)*587 + int(b>>8)*114) / 1000
			if luma >= *flagThreshold {
				row[x] = '#'
			} else {
				row[x] = '.'
			}
		}
		rows[y] = string(row)
	}
	return rows
}

func isBlankGlyph(rows [glyphSize]string) bool {
	for _, r := range rows {
		for _, c := range r {
			if c == '#' {
				return false
			}
		}
	}
	return true
}
