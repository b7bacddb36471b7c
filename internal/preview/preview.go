// Package preview renders the taskbar regions and a planned layout as an
// image, for checking a layout without touching the real taskbar.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/mj1618/taskbar-embed/internal/model"
	"github.com/mj1618/taskbar-embed/internal/taskbar"
)

var (
	backgroundColor = color.RGBA{R: 32, G: 32, B: 32, A: 255}
	toolbarColor    = color.RGBA{R: 0, G: 120, B: 215, A: 255}
	notifyColor     = color.RGBA{R: 160, G: 160, B: 160, A: 255}
	controlColor    = color.NRGBA{R: 255, G: 0, B: 0, A: 160}
	textColor       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	outlineColor    = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// Render draws the icon area at its own origin with the toolbar, the
// notification area and the planned control placement on top.
// Toolbar and notify rects are drawn where the OS reports them; the
// control and shrunken toolbar are drawn from the layout placements.
func Render(r *taskbar.Regions, l model.Layout) (*image.RGBA, error) {
	w := int(r.AppIcon.Desktop.Width())
	h := int(r.AppIcon.Desktop.Height())
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("cannot render taskbar of size %dx%d", w, h)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(backgroundColor), image.Point{}, draw.Src)

	originX, originY := int(r.AppIcon.Desktop.Left), int(r.AppIcon.Desktop.Top)
	relative := func(rc model.Rect) image.Rectangle {
		return image.Rect(int(rc.Left)-originX, int(rc.Top)-originY, int(rc.Right)-originX, int(rc.Bottom)-originY)
	}

	notify := relative(r.Notify.Desktop)
	fillRect(img, notify, notifyColor)
	label(img, "tray", notify)

	toolbar := placementRect(l.Toolbar)
	drawRectangle(img, toolbar, toolbarColor)
	label(img, fmt.Sprintf("toolbar %d", l.Toolbar.Width), toolbar)

	control := placementRect(l.Control)
	fillRect(img, control, controlColor)
	drawRectangle(img, control, textColor)
	label(img, fmt.Sprintf("%dx%d", l.Control.Width, l.Control.Height), control)

	return img, nil
}

// Encode writes img as PNG.
func Encode(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

func placementRect(p model.Placement) image.Rectangle {
	return image.Rect(int(p.X), int(p.Y), int(p.X+p.Width), int(p.Y+p.Height))
}

// fillRect blends c over rc, clipped to the image.
func fillRect(img *image.RGBA, rc image.Rectangle, c color.Color) {
	rc = rc.Intersect(img.Bounds())
	if rc.Empty() {
		return
	}
	draw.Draw(img, rc, image.NewUniform(c), image.Point{}, draw.Over)
}

// drawRectangle draws a one-pixel outline of rc, clipped to the image.
func drawRectangle(img *image.RGBA, rc image.Rectangle, c color.Color) {
	rc = rc.Intersect(img.Bounds())
	if rc.Empty() {
		return
	}
	for x := rc.Min.X; x < rc.Max.X; x++ {
		img.Set(x, rc.Min.Y, c)
		img.Set(x, rc.Max.Y-1, c)
	}
	for y := rc.Min.Y; y < rc.Max.Y; y++ {
		img.Set(rc.Min.X, y, c)
		img.Set(rc.Max.X-1, y, c)
	}
}

// label centers text in rc with a dark outline. Face7x13 glyphs are 7px wide.
func label(img *image.RGBA, text string, rc image.Rectangle) {
	if rc.Empty() {
		return
	}
	x := (rc.Min.X+rc.Max.X)/2 - len(text)*7/2
	y := (rc.Min.Y+rc.Max.Y)/2 + 13/2 - 2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			drawString(img, text, x+dx, y+dy, outlineColor)
		}
	}
	drawString(img, text, x, y, textColor)
}

func drawString(img *image.RGBA, text string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}
