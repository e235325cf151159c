package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(c color.NRGBA) image.Image {
	return imaging.New(430, 600, c)
}

func TestComposeSheetGeometry(t *testing.T) {
	cards := []image.Image{
		solid(color.NRGBA{R: 0xff, A: 0xff}),
		solid(color.NRGBA{G: 0xff, A: 0xff}),
		solid(color.NRGBA{B: 0xff, A: 0xff}),
	}
	sheet := ComposeSheet(cards, 2)

	// Two columns, two rows.
	wantW := margin*2 + 2*cardW + gutter
	wantH := margin*2 + 2*cardH + gutter
	assert.Equal(t, wantW, sheet.Bounds().Dx())
	assert.Equal(t, wantH, sheet.Bounds().Dy())
}

func TestComposeSheetEmpty(t *testing.T) {
	sheet := ComposeSheet(nil, 10)
	assert.Equal(t, margin*2+cardW, sheet.Bounds().Dx())
	assert.Equal(t, margin*2+cardH, sheet.Bounds().Dy())
}

func TestGenerateQRPNG(t *testing.T) {
	b, err := GenerateQRPNG("http://localhost:8080/sets/jp1/031", 200)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())
}
