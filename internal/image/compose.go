package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const (
	cardW  = 215
	cardH  = 300
	gutter = 8
	margin = 48
)

// ComposeSheet lays card images out on a cols-wide grid, left to right, top
// to bottom, and returns the composed contact sheet.
func ComposeSheet(cards []image.Image, cols int) image.Image {
	if cols < 1 || cols > len(cards) {
		cols = len(cards)
	}
	if cols < 1 {
		cols = 1
	}
	rows := (len(cards) + cols - 1) / cols
	if rows < 1 {
		rows = 1
	}

	w := margin*2 + cols*cardW + (cols-1)*gutter
	h := margin*2 + rows*cardH + (rows-1)*gutter
	canvas := imaging.New(w, h, color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff})

	for i, c := range cards {
		resized := imaging.Resize(c, cardW, cardH, imaging.Lanczos)
		x := margin + (i%cols)*(cardW+gutter)
		y := margin + (i/cols)*(cardH+gutter)
		canvas = imaging.Paste(canvas, resized, image.Pt(x, y))
	}
	return canvas
}

// LoadCardImage reads a card image from disk in any format imaging can
// decode.
func LoadCardImage(path string) (image.Image, error) {
	return imaging.Open(path)
}
