package core

import (
	"image"
	"image/color"
)

func luma(r, g, b uint8) uint8 {
	return uint8((uint32(r)*77 + uint32(g)*150 + uint32(b)*29) >> 8)
}

// put writes one pixel with comp channels to dst and returns comp.
func put(dst []byte, comp int, r, g, b, a uint8) int {
	switch comp {
	case 1:
		dst[0] = luma(r, g, b)
	case 2:
		dst[0] = luma(r, g, b)
		dst[1] = a
	case 3:
		dst[0], dst[1], dst[2] = r, g, b
	default:
		dst[0], dst[1], dst[2], dst[3] = r, g, b, a
	}
	return comp
}

// sourceComponents reports how many channels the encoded file carries,
// judged from the concrete image type the format decoder produced.
func sourceComponents(img image.Image) int {
	switch m := img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	case *image.YCbCr, *image.CMYK:
		return 3
	case *image.NYCbCrA, *image.NRGBA, *image.NRGBA64:
		return 4
	case *image.RGBA:
		if m.Opaque() {
			return 3
		}
		return 4
	case *image.RGBA64:
		if m.Opaque() {
			return 3
		}
		return 4
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4
			}
		}
		return 3
	}
	return 4
}

// pngIHDRLen covers the signature and the IHDR chunk up to the colour type.
const pngIHDRLen = 26

// pngComponents reports the channel count declared by the PNG colour type.
// image/png widens grey+alpha to NRGBA, so the decoded type alone cannot
// tell it from truecolour with alpha. A tRNS chunk adds an alpha channel,
// which shows up as an NRGBA result for grey and truecolour sources.
func pngComponents(ihdr []byte, img image.Image) int {
	if len(ihdr) < pngIHDRLen || string(ihdr[12:16]) != "IHDR" {
		return sourceComponents(img)
	}
	switch ihdr[25] {
	case 0:
		switch img.(type) {
		case *image.Gray, *image.Gray16:
			return 1
		}
		return 2
	case 4:
		return 2
	case 6:
		return 4
	}
	// Truecolour and palette images: opaque results are RGB, tRNS makes them RGBA.
	return sourceComponents(img)
}

// interleave writes img into dst as row-major pixels with comp channels.
func interleave(img image.Image, comp int, dst []byte) {
	b := img.Bounds()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			i += put(dst[i:], comp, c.R, c.G, c.B, c.A)
		}
	}
}

// convertRGBA copies a 4-channel canvas into a new buffer with comp channels.
func convertRGBA(src []byte, comp int) *Buffer {
	out := Malloc(len(src) / 4 * comp)
	dst := out.Bytes()
	for i, j := 0, 0; i+3 < len(src); i += 4 {
		j += put(dst[j:], comp, src[i], src[i+1], src[i+2], src[i+3])
	}
	return out
}
