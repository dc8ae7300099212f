package util

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePNG(t *testing.T) *bytes.Reader {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: 100, B: uint8(y * 30), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return bytes.NewReader(buf.Bytes())
}

func TestEnhanceImage(t *testing.T) {
	out, err := EnhanceImage(samplePNG(t))
	require.NoError(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), decoded.Bounds())
}

func TestEnhanceImage_NotAnImage(t *testing.T) {
	_, err := EnhanceImage(strings.NewReader("definitely not pixels"))
	assert.Error(t, err)
}

func TestGetSafeContentType(t *testing.T) {
	reader := samplePNG(t)

	contentType, err := GetSafeContentType(reader)
	require.NoError(t, err)
	assert.Equal(t, "image/png", contentType)

	// 嗅探后可从头完整读取
	head := make([]byte, 4)
	_, err = reader.Read(head)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, head)
}

func TestGetSafeContentType_Text(t *testing.T) {
	contentType, err := GetSafeContentType(bytes.NewReader([]byte("plain text body")))
	require.NoError(t, err)
	assert.Contains(t, contentType, "text/plain")
}
