// demo - an ebiten-backed GUI host for textmode.Console.
//
// Grounded on video_backend_ebiten.go's EbitenOutput: a frame buffer guarded by a mutex,
// written from PrintANS/Cprint calls and copied into an ebiten.Image once per Draw, plus
// its F11/F12 toggle convention for fullscreen and an on-screen status line drawn with
// golang.org/x/image/font/basicfont the way drawRuntimeStatusBar does.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/AuburnSounds/text-mode"
)

var (
	flagCols  = flag.Int("cols", 80, "grid columns")
	flagRows  = flag.Int("rows", 25, "grid rows")
	flagScale = flag.Int("scale", 2, "integer upscale factor")
	flagFile  = flag.String("file", "", "optional .ans/.xp file to load at startup")
)

type demoHost struct {
	console       *textmode.Console
	width, height int
	pixels        []byte
	mutex         sync.RWMutex
	lastFrame     time.Time
	showStatus    bool
	fullscreen    bool
	frameN        uint64
}

func newDemoHost(cols, rows, scale int) *demoHost {
	c, err := textmode.NewConsole(cols, rows)
	if err != nil {
		log.Fatalf("textmode.NewConsole: %v", err)
	}
	opts := c.Options()
	opts.BlurAmount = 1.0
	opts.BlurScale = float64(scale)
	c.SetOptions(opts)

	width, height := cols*8*scale, rows*8*scale
	h := &demoHost{
		console:    c,
		width:      width,
		height:     height,
		pixels:     make([]byte, width*height*4),
		showStatus: true,
		lastFrame:  time.Now(),
	}
	c.SetOutbuf(h.pixels, width, height, width*4)
	return h
}

func (h *demoHost) loadFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "demo: cannot read %s: %v\n", path, err)
		return
	}
	switch {
	case len(data) >= 2 && data[0] == 0x1F && data[1] == 0x8B:
		h.console.PrintXP(data, 0, 0)
	default:
		h.console.PrintANS(data, 0, 0)
	}
}

func (h *demoHost) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		h.fullscreen = !h.fullscreen
		ebiten.SetFullscreen(h.fullscreen)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		h.showStatus = !h.showStatus
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := time.Now()
	dt := now.Sub(h.lastFrame).Seconds()
	h.lastFrame = now

	h.mutex.Lock()
	h.console.Update(dt)
	h.console.Render()
	h.mutex.Unlock()

	h.frameN++
	return nil
}

func (h *demoHost) Draw(screen *ebiten.Image) {
	out := ebiten.NewImage(h.width, h.height)
	h.mutex.RLock()
	out.WritePixels(h.pixels)
	h.mutex.RUnlock()
	screen.DrawImage(out, nil)

	if h.showStatus {
		h.drawStatusBar(screen)
	}
}

func (h *demoHost) drawStatusBar(screen *ebiten.Image) {
	barHeight := 20
	y := h.height - barHeight
	if y < 0 {
		return
	}
	ebitenutil.DrawRect(screen, 0, float64(y), float64(h.width), float64(barHeight), color.RGBA{0, 0, 0, 180})
	msg := fmt.Sprintf("frame %d  %dx%d  F11 fullscreen  F12 status  ESC quit", h.frameN, h.console.Columns(), h.console.Rows())
	text.Draw(screen, msg, basicfont.Face7x13, 6, y+14, color.RGBA{200, 200, 200, 255})
}

func (h *demoHost) Layout(outsideWidth, outsideHeight int) (int, int) {
	return h.width, h.height
}

func main() {
	flag.Parse()
	h := newDemoHost(*flagCols, *flagRows, *flagScale)
	h.console.Cprintln("<shiny><b>textmode demo</b></shiny>")
	h.console.Cprintln("type nothing, watch the cursor <blue>blink</blue>.")
	if *flagFile != "" {
		h.loadFile(*flagFile)
	}

	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle("textmode demo")
	ebiten.SetWindowResizable(true)
	if err := ebiten.RunGame(h); err != nil {
		log.Fatal(err)
	}
}
