package frameio

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/sighmoe/rgb/internal/ppu"
)

func TestToImageMapsColorIndicesToShades(t *testing.T) {
	var f ppu.FrameBuffer
	f[0][0] = 3
	img := ToImage(&f)
	if got := img.NRGBAAt(0, 0); got != shades[3] {
		t.Fatalf("pixel (0,0) = %v, want %v", got, shades[3])
	}
}

func TestEncodePNGProducesADecodableImage(t *testing.T) {
	var f ppu.FrameBuffer
	var buf bytes.Buffer
	if err := EncodePNG(&buf, &f); err != nil {
		t.Fatalf("EncodePNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != ppu.ScreenWidth || b.Dy() != ppu.ScreenHeight {
		t.Fatalf("decoded size = %dx%d, want %dx%d", b.Dx(), b.Dy(), ppu.ScreenWidth, ppu.ScreenHeight)
	}
}

func TestEncodeScaledPNGScalesDimensions(t *testing.T) {
	var f ppu.FrameBuffer
	var buf bytes.Buffer
	if err := EncodeScaledPNG(&buf, &f, 3); err != nil {
		t.Fatalf("EncodeScaledPNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != ppu.ScreenWidth*3 || b.Dy() != ppu.ScreenHeight*3 {
		t.Fatalf("decoded size = %dx%d, want %dx%d", b.Dx(), b.Dy(), ppu.ScreenWidth*3, ppu.ScreenHeight*3)
	}
}
