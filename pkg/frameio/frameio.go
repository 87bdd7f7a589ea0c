// Package frameio converts PPU frame buffers to and from standard
// image formats, for golden-image comparisons and screenshot export.
package frameio

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/sighmoe/rgb/internal/ppu"
)

// shades is the classic four-tone DMG green palette, indexed by the
// 2-bit shade stored in a FrameBuffer.
var shades = [4]color.NRGBA{
	{R: 0x9B, G: 0xBC, B: 0x0F, A: 0xFF},
	{R: 0x8B, G: 0xAC, B: 0x0F, A: 0xFF},
	{R: 0x30, G: 0x62, B: 0x30, A: 0xFF},
	{R: 0x0F, G: 0x38, B: 0x0F, A: 0xFF},
}

// ToImage renders f as an NRGBA image using the DMG green palette.
func ToImage(f *ppu.FrameBuffer) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	for y := 0; y < ppu.ScreenHeight; y++ {
		for x := 0; x < ppu.ScreenWidth; x++ {
			img.Set(x, y, shades[f[y][x]&0x3])
		}
	}
	return img
}

// EncodePNG writes f to w as a PNG image.
func EncodePNG(w io.Writer, f *ppu.FrameBuffer) error {
	return png.Encode(w, ToImage(f))
}

// EncodeScaledPNG writes f to w as a PNG image scaled up by scale,
// smoothed with a Catmull-Rom resampler, for screenshot export at a
// more legible size than the native 160x144.
func EncodeScaledPNG(w io.Writer, f *ppu.FrameBuffer, scale int) error {
	src := ToImage(f)
	dst := image.NewNRGBA(image.Rect(0, 0, ppu.ScreenWidth*scale, ppu.ScreenHeight*scale))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return png.Encode(w, dst)
}
