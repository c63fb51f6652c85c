// xp.go - the ".xp" compressed grid loader.
//
// Grounded on terminal_host.go's screen-snapshot save/restore format, generalized from
// its ad hoc framing to a gzip-wrapped raw-DEFLATE payload, using
// github.com/klauspost/compress/flate for the inflate step the way the rest of the pack
// reaches for a real DEFLATE implementation rather than hand-rolling one.

package textmode

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/klauspost/compress/flate"
	"golang.org/x/text/encoding/charmap"
)

const xpRecordSize = 10 // u32 cp437 index + 3 fg bytes + 3 bg bytes

// PrintXP loads a ".xp" image from data and draws every visible layer at origin
// (baseX, baseY), leaving the persistent cursor untouched. Any structural failure
// (bad magic, non-zero gzip flags, truncated payload, bad inflate) silently aborts,
// leaving whatever cells were already written in place.
func (c *Console) PrintXP(data []byte, baseX, baseY int) {
	c.PrintXPMasked(data, baseX, baseY, ^uint32(0))
}

// PrintXPMasked is PrintXP with an explicit layer visibility mask; bit i hides layer i
// when clear.
func (c *Console) PrintXPMasked(data []byte, baseX, baseY int, layerMask uint32) {
	payload, ok := inflateXP(data)
	if !ok {
		return
	}
	c.drawXPPayload(payload, baseX, baseY, layerMask)
}

func inflateXP(data []byte) ([]byte, bool) {
	const gzipHeaderSize = 10
	const gzipFooterSize = 8
	if len(data) < gzipHeaderSize+gzipFooterSize {
		return nil, false
	}
	if data[0] != 0x1F || data[1] != 0x8B || data[2] != 0x08 {
		return nil, false
	}
	if data[3] != 0 { // FLG: any extension flag set is treated as unsupported
		return nil, false
	}

	footer := data[len(data)-gzipFooterSize:]
	uncompressedSize := binary.LittleEndian.Uint32(footer[4:8])
	payload := data[gzipHeaderSize : len(data)-gzipFooterSize]

	out := make([]byte, uncompressedSize)
	fr := flate.NewReader(bytes.NewReader(payload))
	defer fr.Close()
	if _, err := io.ReadFull(fr, out); err != nil {
		return nil, false
	}
	return out, true
}

func (c *Console) drawXPPayload(buf []byte, baseX, baseY int, layerMask uint32) {
	const headerSize = 16
	if len(buf) < headerSize {
		return
	}
	layerCount := int(int32(binary.LittleEndian.Uint32(buf[4:8])))
	width := int(int32(binary.LittleEndian.Uint32(buf[8:12])))
	height := int(int32(binary.LittleEndian.Uint32(buf[12:16])))
	if layerCount < 1 || layerCount > 9 || width < 0 || height < 0 {
		return
	}

	st := c.stack.top()
	offset := headerSize
	for layer := 0; layer < layerCount; layer++ {
		visible := layerMask&(1<<uint(layer)) != 0
		for x := 0; x < width; x++ {
			for y := 0; y < height; y++ {
				if offset+xpRecordSize > len(buf) {
					return
				}
				rec := buf[offset : offset+xpRecordSize]
				offset += xpRecordSize
				if !visible {
					continue
				}
				cp437Index := binary.LittleEndian.Uint32(rec[0:4])
				fgR, fgG, fgB := rec[4], rec[5], rec[6]
				bgR, bgG, bgB := rec[7], rec[8], rec[9]
				if bgR == 255 && bgG == 0 && bgB == 255 {
					continue // transparent sentinel
				}
				cx, cy := baseX+x, baseY+y
				if cx < 0 || cx >= c.cols || cy < 0 || cy >= c.rows {
					continue
				}
				glyph := charmap.CodePage437.DecodeByte(byte(cp437Index & 0xFF))
				fgIdx := byte(c.palette.FindColorMatch(fgR, fgG, fgB))
				bgIdx := byte(c.palette.FindColorMatch(bgR, bgG, bgB))
				c.writeCell(cx, cy, glyph, fgIdx, bgIdx, st.Style)
			}
		}
	}
}
