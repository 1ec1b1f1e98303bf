package image

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

func face(b []byte, size float64) (font.Face, error) {
	fnt, err := opentype.Parse(b)
	if err != nil {
		col, cerr := opentype.ParseCollection(b)
		if cerr != nil {
			return nil, err
		}
		fnt, err = col.Font(0)
		if err != nil {
			return nil, err
		}
	}

	return opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// Image renders a word card: the hanzi large on top, the transcription
// below. fontData must be a TTF/OTF with CJK coverage.
func Image(height int, hanzi, pinyin string, fontData []byte, fg, bg color.NRGBA) (*image.NRGBA, error) {
	startX := height / 8
	stopX := height / 8
	startY := height / 8
	stopY := height / 8
	padding := height / 8
	rest := height - startY - padding - stopY
	if rest < 0 {
		rest = 0
	}

	hanziSize := float64(rest) / 2
	pinyinSize := float64(rest) / 5
	img := image.NewNRGBA(image.Rect(0, 0, 0, 0))

	big, err := face(fontData, hanziSize)
	if err != nil {
		return nil, err
	}
	small, err := face(fontData, pinyinSize)
	if err != nil {
		return nil, err
	}

	src := image.NewUniform(fg)
	do := func(startX1, startX2 int) (int, int) {
		dwr := font.Drawer{
			Dst:  img,
			Src:  src,
			Face: big,
		}

		dwr.Dot = fixed.P(startX1, startY+int(hanziSize))
		dwr.DrawString(hanzi)
		width1 := int(dwr.Dot.X>>6) - startX

		dwr.Face = small
		dwr.Dot = fixed.P(startX2, startY+padding+int(hanziSize)+int(pinyinSize))
		dwr.DrawString(pinyin)
		width2 := int(dwr.Dot.X>>6) - startX
		return width1, width2
	}

	w1, w2 := do(startX, startX)
	w := w1 + startX + stopX
	startX1, startX2 := startX, startX+(w1-w2)/2
	if w2 > w {
		w = w2 + startX + stopX
		startX1, startX2 = startX+(w2-w1)/2, startX
	}

	img = image.NewNRGBA(image.Rect(0, 0, w, height))

	if bg.A != 0 {
		for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
			for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
				o := img.PixOffset(x, y)
				img.Pix[o+0] = bg.R
				img.Pix[o+1] = bg.G
				img.Pix[o+2] = bg.B
				img.Pix[o+3] = bg.A
			}
		}
	}
	do(startX1, startX2)

	return img, nil
}
