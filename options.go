// options.go - the console's render/layout/effect options record.
//
// Grounded on video_chip.go's DisplayConfig{...} struct-of-toggles pattern, generalized
// from CRT-emulator-specific fields to this package's named option set.

package textmode

// BlendMode selects how the compositor's final buffer lands in the caller framebuffer.
type BlendMode int

const (
	BlendSourceOver BlendMode = iota
	BlendCopy
)

// Align is a horizontal or vertical alignment choice for letterboxing.
type Align int

const (
	AlignCenter Align = iota
	AlignStart
	AlignEnd
)

// Options holds every tunable the render pipeline consults; NewOptions returns the
// documented defaults.
type Options struct {
	BlendMode BlendMode
	HAlign    Align
	VAlign    Align

	AllowOutCaching bool

	BorderColor byte
	BorderShiny bool

	BlinkTimeMS int

	BlurAmount float64
	BlurScale  float64

	BlurForeground bool
	BlurBackground bool

	NoiseTexture bool
	NoiseAmount  float64

	Tonemapping      bool
	TonemappingRatio float64
}

// NewOptions returns the documented default option set.
func NewOptions() Options {
	return Options{
		BlendMode:        BlendSourceOver,
		HAlign:           AlignCenter,
		VAlign:           AlignCenter,
		AllowOutCaching:  false,
		BorderColor:      0,
		BorderShiny:      false,
		BlinkTimeMS:      1200,
		BlurAmount:       1.0,
		BlurScale:        1.0,
		BlurForeground:   true,
		BlurBackground:   true,
		NoiseTexture:     true,
		NoiseAmount:      1.0,
		Tonemapping:      false,
		TonemappingRatio: 0.3,
	}
}
