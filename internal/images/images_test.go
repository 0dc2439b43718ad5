package images

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/dealer/internal/card"
)

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 12))
	for y := 0; y < 12; y++ {
		for x := 0; x < 8; x++ {
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoad(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "AS.png"), color.White)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "10H.ansi"), []byte("art\n"), 0644))

	lib, missing, err := Load(dir)
	require.NoError(t, err)
	a.Equal(2, lib.Len())
	a.Len(missing, 50)
	a.NotContains(missing, "AS")
	a.NotContains(missing, "10H")

	path, err := lib.Path(card.Card{Rank: "A", Suit: "S"})
	a.NoError(err)
	a.Equal(filepath.Join(dir, "AS.png"), path)

	_, err = lib.Path(card.Card{Rank: "2", Suit: "C"})
	a.ErrorIs(err, ErrNotFound)

	art, err := lib.Ansi(card.Card{Rank: "10", Suit: "H"}, 4, 4)
	a.NoError(err)
	a.Equal("art\n", art)

	_, _, err = Load(filepath.Join(dir, "nope"))
	a.Error(err)
}

func TestAnsi_FromImage(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "KD.png"), color.RGBA{R: 255, A: 255})

	lib, _, err := Load(dir)
	require.NoError(t, err)

	art, err := lib.Ansi(card.Card{Rank: "K", Suit: "D"}, 5, 3)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	a.Len(lines, 3)
	for _, line := range lines {
		a.Equal(5, utf8.RuneCountInString(StripAnsi(line)))
	}
	a.Regexp(`\x1b\[38;2;25[0-5];0;0m`, art)
}

func TestToAnsi_Plain(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	assert.Equal(t, "▀▀▀\n▀▀▀\n", ToAnsi(img, 3, 2, false))
}

func TestToAnsi_BadSize(t *testing.T) {
	a := assert.New(t)

	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	a.Equal("", ToAnsi(img, -1, 2, true))
	a.Equal("", ToAnsi(img, 2, 0, true))

	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "AS.png"), color.White)
	lib, _, err := Load(dir)
	require.NoError(t, err)

	_, err = lib.Ansi(card.Card{Rank: "A", Suit: "S"}, -1, 14)
	a.ErrorIs(err, ErrBadSize)
	a.EqualError(err, "art width and height must be at least 1, got -1x14")
}

func TestStripAnsi(t *testing.T) {
	assert.Equal(t, "AS", StripAnsi("\x1b[31mA\x1b[0mS"))
}
