package render

import "image/color"

// FillBinaryRGBA converts binary cell data into RGBA pixels in buf, which
// must hold at least 4*len(cells) bytes.
func FillBinaryRGBA[C ~uint8](buf []byte, cells []C, on, off color.Color) {
	onPx := rgbaBytes(on)
	offPx := rgbaBytes(off)
	for i, c := range cells {
		px := offPx
		if c != 0 {
			px = onPx
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgbaBytes(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
