package images

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"

	"github.com/arcanaland/dealer/internal/card"
)

var (
	// ErrNotFound is returned when a card has no image
	ErrNotFound = errors.New("card image not found")
	// ErrBadSize is returned for art dimensions below one cell
	ErrBadSize = errors.New("art width and height must be at least 1")
)

// Extensions are tried in order when looking up a card image
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// AnsiExtension marks pre-rendered ANSI art, preferred over images
const AnsiExtension = ".ansi"

// Library maps card codes to image files in a directory, e.g. images/AS.png
type Library struct {
	Dir   string
	paths map[string]string
}

// Load builds the lookup table for all 52 cards. Cards without an image are
// returned in missing; that is not an error.
func Load(dir string) (*Library, []string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, nil, fmt.Errorf("image directory not found: %s", dir)
	}

	lib := &Library{
		Dir:   dir,
		paths: make(map[string]string, card.DeckSize),
	}

	var missing []string
	for _, code := range card.Codes() {
		path, ok := find(dir, code)
		if !ok {
			missing = append(missing, code)
			continue
		}
		lib.paths[code] = path
	}

	return lib, missing, nil
}

func find(dir, code string) (string, bool) {
	for _, ext := range append([]string{AnsiExtension}, Extensions...) {
		path := filepath.Join(dir, code+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// Path returns the file used for the card
func (l *Library) Path(c card.Card) (string, error) {
	path, ok := l.paths[c.Code()]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, c)
	}
	return path, nil
}

// Len returns the number of cards with an image
func (l *Library) Len() int {
	return len(l.paths)
}

// Ansi returns ANSI art for the card, reading pre-rendered art when present
// and converting the image otherwise
func (l *Library) Ansi(c card.Card, width, height int) (string, error) {
	if width < 1 || height < 1 {
		return "", fmt.Errorf("%w, got %dx%d", ErrBadSize, width, height)
	}

	path, err := l.Path(c)
	if err != nil {
		return "", err
	}

	if strings.HasSuffix(path, AnsiExtension) {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	img, err := Decode(path)
	if err != nil {
		return "", err
	}

	return ToAnsi(img, width, height, true), nil
}

// Decode opens and decodes an image file
func Decode(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %v", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %v", err)
	}

	return img, nil
}

// ToAnsi converts an image to ANSI art of width x height character cells.
// Sizes below one cell give an empty string.
func ToAnsi(img image.Image, width, height int, trueColor bool) string {
	if width < 1 || height < 1 {
		return ""
	}

	// Resize image to desired dimensions (doubled for half-block characters)
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			// Top pixels as foreground, bottom pixels as background
			col1, _ := colorful.MakeColor(colorAt(resized, x, y))
			col2, _ := colorful.MakeColor(colorAt(resized, x+1, y))
			col3, _ := colorful.MakeColor(colorAt(resized, x, y+1))
			col4, _ := colorful.MakeColor(colorAt(resized, x+1, y+1))

			fg := toRGBA(average(col1, col2))
			bg := toRGBA(average(col3, col4))

			buffer.WriteString(cell('▀', fg, bg, trueColor))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

func colorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	if x >= bounds.Min.X && x < bounds.Max.X && y >= bounds.Min.Y && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.RGBA{0, 0, 0, 255}
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	count := float64(len(colors))
	return colorful.Color{R: r / count, G: g / count, B: b / count}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func cell(char rune, fg, bg color.RGBA, trueColor bool) string {
	if !trueColor {
		return string(char)
	}

	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		fg.R, fg.G, fg.B, bg.R, bg.G, bg.B, char)
}

// StripAnsi removes ANSI escape sequences from a string
func StripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			result.WriteRune(c)
		}
	}
	return result.String()
}
