package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	TextFont  *text.GoTextFace
	LabelFont *text.GoTextFace
	InputFont *text.GoTextFace
)

func init() {
	regular := loadFontSource(goregular.TTF)
	mono := loadFontSource(gomono.TTF)

	TextFont = &text.GoTextFace{
		Source: regular,
		Size:   15,
	}
	LabelFont = &text.GoTextFace{
		Source: regular,
		Size:   18,
	}
	InputFont = &text.GoTextFace{
		Source: mono,
		Size:   16,
	}
}

func loadFontSource(ttf []byte) *text.GoTextFaceSource {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}
	return fontSource
}
