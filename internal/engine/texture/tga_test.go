package texture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func header(imageType byte, w, h, bpp int, descriptor byte) []byte {
	hdr := make([]byte, tgaHeaderSize)
	hdr[2] = imageType
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = byte(bpp)
	hdr[17] = descriptor
	return hdr
}

func TestDecodeUncompressedBottomUp(t *testing.T) {
	// 2x2, 24-bit BGR, bottom row first
	data := header(TGATypeUncompressed, 2, 2, 24, 0)
	data = append(data,
		0, 0, 255, 0, 255, 0, // bottom: red, green
		255, 0, 0, 255, 255, 255, // top: blue, white
	)

	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	want := map[image.Point]color.NRGBA{
		{0, 1}: {R: 255, A: 255},
		{1, 1}: {G: 255, A: 255},
		{0, 0}: {B: 255, A: 255},
		{1, 0}: {R: 255, G: 255, B: 255, A: 255},
	}
	for p, c := range want {
		if got := img.(*image.NRGBA).NRGBAAt(p.X, p.Y); got != c {
			t.Errorf("pixel %v = %v, want %v", p, got, c)
		}
	}
}

func TestDecodeRLEGray(t *testing.T) {
	// 3x2 grayscale, top-down: a run of four 10s, then raw 20, 30
	data := header(TGATypeRLEGray, 3, 2, 8, tgaDescriptorTopToBottom)
	data = append(data, 0x83, 10, 0x01, 20, 30)

	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	gray, ok := img.(*image.Gray)
	if !ok {
		t.Fatalf("Decode() = %T, want *image.Gray", img)
	}
	want := []uint8{10, 10, 10, 10, 20, 30}
	if !bytes.Equal(gray.Pix, want) {
		t.Errorf("Pix = %v, want %v", gray.Pix, want)
	}
}

func TestDecodeRegistered(t *testing.T) {
	data := header(TGATypeUncompressed, 1, 1, 32, 0)
	data = append(data, 1, 2, 3, 128)

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("image.Decode() error = %v", err)
	}
	if format != "tga" {
		t.Errorf("format = %q, want tga", format)
	}
	if got := img.(*image.NRGBA).NRGBAAt(0, 0); got != (color.NRGBA{R: 3, G: 2, B: 1, A: 128}) {
		t.Errorf("pixel = %v", got)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width != 1 || cfg.Height != 1 {
		t.Errorf("DecodeConfig() = %+v, %v", cfg, err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short", []byte{0, 0, 2}},
		{"color mapped", func() []byte { h := header(TGATypeUncompressed, 1, 1, 24, 0); h[1] = 1; return h }()},
		{"bad type", header(1, 1, 1, 8, 0)},
		{"bad depth", header(TGATypeUncompressed, 1, 1, 16, 0)},
		{"truncated pixels", append(header(TGATypeUncompressed, 2, 2, 24, 0), 1, 2, 3)},
		{"truncated run", append(header(TGATypeRLE, 2, 2, 24, 0), 0x81, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(bytes.NewReader(tt.data)); err == nil {
				t.Error("Decode() succeeded")
			}
		})
	}

	_, err := Decode(bytes.NewReader(append(header(TGATypeRLE, 2, 2, 24, 0), 0x81, 1)))
	if !errors.Is(err, errTruncated) {
		t.Errorf("truncated run error = %v, want errTruncated", err)
	}
}
