// Package texture decodes Targa (TGA) images and registers the format with
// the image package, so terrain maps may ship as .tga files.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // uncompressed true-color
	TGATypeGray         = 3  // uncompressed grayscale
	TGATypeRLE          = 10 // RLE compressed true-color
	TGATypeRLEGray      = 11 // RLE compressed grayscale
)

const (
	tgaHeaderSize            = 18
	tgaDescriptorTopToBottom = 0x20
)

var errTruncated = errors.New("tga: pixel data truncated")

func init() {
	for _, t := range []byte{TGATypeUncompressed, TGATypeGray, TGATypeRLE, TGATypeRLEGray} {
		// id length is free, the colour map type must be 0
		image.RegisterFormat("tga", "?\x00"+string([]byte{t}), Decode, DecodeConfig)
	}
}

type tgaHeader struct {
	idLength   int
	imageType  byte
	width      int
	height     int
	bpp        int
	descriptor byte
}

func parseHeader(h []byte) (tgaHeader, error) {
	hdr := tgaHeader{
		idLength:   int(h[0]),
		imageType:  h[2],
		width:      int(h[12]) | int(h[13])<<8,
		height:     int(h[14]) | int(h[15])<<8,
		bpp:        int(h[16]),
		descriptor: h[17],
	}
	if h[1] != 0 {
		return hdr, errors.New("tga: color-mapped images not supported")
	}
	switch hdr.imageType {
	case TGATypeUncompressed, TGATypeRLE:
		if hdr.bpp != 24 && hdr.bpp != 32 {
			return hdr, fmt.Errorf("tga: unsupported true-color depth %d", hdr.bpp)
		}
	case TGATypeGray, TGATypeRLEGray:
		if hdr.bpp != 8 {
			return hdr, fmt.Errorf("tga: unsupported grayscale depth %d", hdr.bpp)
		}
	default:
		return hdr, fmt.Errorf("tga: unsupported image type %d", hdr.imageType)
	}
	return hdr, nil
}

func (h tgaHeader) gray() bool {
	return h.imageType == TGATypeGray || h.imageType == TGATypeRLEGray
}

func (h tgaHeader) rle() bool {
	return h.imageType == TGATypeRLE || h.imageType == TGATypeRLEGray
}

// DecodeConfig returns the dimensions and colour model of a TGA image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var buf [tgaHeaderSize]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return image.Config{}, fmt.Errorf("tga: reading header: %w", err)
	}
	hdr, err := parseHeader(buf[:])
	if err != nil {
		return image.Config{}, err
	}
	model := color.NRGBAModel
	if hdr.gray() {
		model = color.GrayModel
	}
	return image.Config{ColorModel: model, Width: hdr.width, Height: hdr.height}, nil
}

// Decode reads a TGA image. Grayscale files decode to *image.Gray and
// true-color files to *image.NRGBA, since TGA alpha is not premultiplied.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < tgaHeaderSize {
		return nil, errors.New("tga: data too short")
	}
	hdr, err := parseHeader(data[:tgaHeaderSize])
	if err != nil {
		return nil, err
	}
	offset := tgaHeaderSize + hdr.idLength
	if offset > len(data) {
		return nil, errTruncated
	}

	bpp := hdr.bpp / 8
	pixels := data[offset:]
	if hdr.rle() {
		if pixels, err = unpackRLE(pixels, hdr.width*hdr.height, bpp); err != nil {
			return nil, err
		}
	} else if len(pixels) < hdr.width*hdr.height*bpp {
		return nil, errTruncated
	}

	rect := image.Rect(0, 0, hdr.width, hdr.height)
	topToBottom := hdr.descriptor&tgaDescriptorTopToBottom != 0
	if hdr.gray() {
		img := image.NewGray(rect)
		for y := 0; y < hdr.height; y++ {
			src := pixels[y*hdr.width : (y+1)*hdr.width]
			copy(img.Pix[destRow(y, hdr.height, topToBottom)*img.Stride:], src)
		}
		return img, nil
	}

	img := image.NewNRGBA(rect)
	for y := 0; y < hdr.height; y++ {
		row := img.Pix[destRow(y, hdr.height, topToBottom)*img.Stride:]
		for x := 0; x < hdr.width; x++ {
			p := pixels[(y*hdr.width+x)*bpp:]
			// stored as BGR(A)
			row[x*4], row[x*4+1], row[x*4+2], row[x*4+3] = p[2], p[1], p[0], 0xff
			if bpp == 4 {
				row[x*4+3] = p[3]
			}
		}
	}
	return img, nil
}

// destRow flips bottom-up files, the TGA default.
func destRow(y, height int, topToBottom bool) int {
	if topToBottom {
		return y
	}
	return height - 1 - y
}

// unpackRLE expands run-length packets into n pixels of bpp bytes.
func unpackRLE(data []byte, n, bpp int) ([]byte, error) {
	out := make([]byte, 0, n*bpp)
	for len(out) < n*bpp {
		if len(data) == 0 {
			return nil, errTruncated
		}
		packet := data[0]
		data = data[1:]
		count := int(packet&0x7f) + 1

		if packet&0x80 != 0 {
			if len(data) < bpp {
				return nil, errTruncated
			}
			for i := 0; i < count; i++ {
				out = append(out, data[:bpp]...)
			}
			data = data[bpp:]
			continue
		}
		if len(data) < count*bpp {
			return nil, errTruncated
		}
		out = append(out, data[:count*bpp]...)
		data = data[count*bpp:]
	}
	// A run may overshoot the last row.
	return out[:n*bpp], nil
}
