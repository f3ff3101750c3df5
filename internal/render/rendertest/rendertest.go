// Package rendertest provides recording fakes of the render interfaces.
package rendertest

import (
	"image"
	"image/color"

	"chosenoffset.com/raycast/internal/render"
)

// Line is one recorded StrokeLine call.
type Line struct {
	X0, Y0, X1, Y1 float32
	Width          float32
	Color          color.Color
}

// Renderer records every line it is asked to draw.
type Renderer struct {
	Lines []Line
}

// StrokeLine implements render.Renderer.
func (r *Renderer) StrokeLine(dst render.Image, x0, y0, x1, y1 float32, strokeWidth float32, clr color.Color) {
	r.Lines = append(r.Lines, Line{X0: x0, Y0: y0, X1: x1, Y1: y1, Width: strokeWidth, Color: clr})
}

// LinesOfWidth returns the recorded lines drawn with the given width.
func (r *Renderer) LinesOfWidth(width float32) []Line {
	var out []Line
	for _, l := range r.Lines {
		if l.Width == width {
			out = append(out, l)
		}
	}
	return out
}

// Image is a sized surface that remembers its last fill.
type Image struct {
	W, H   int
	Filled color.Color
	Fills  int
}

// NewImage creates a width x height fake image.
func NewImage(width, height int) *Image {
	return &Image{W: width, H: height}
}

// Bounds implements render.Image.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.W, i.H)
}

// Size implements render.Image.
func (i *Image) Size() (int, int) {
	return i.W, i.H
}

// Fill implements render.Image.
func (i *Image) Fill(clr color.Color) {
	i.Filled = clr
	i.Fills++
}

// Clear implements render.Image.
func (i *Image) Clear() {
	i.Fill(color.Transparent)
}

// Input is a scripted input manager. Keys in Pressed report a press once and
// are then forgotten, like a real edge-triggered key.
type Input struct {
	X, Y    int
	Pressed map[render.Key]bool
}

// Press queues a single key press.
func (in *Input) Press(key render.Key) {
	if in.Pressed == nil {
		in.Pressed = make(map[render.Key]bool)
	}
	in.Pressed[key] = true
}

// IsKeyJustPressed implements render.InputManager.
func (in *Input) IsKeyJustPressed(key render.Key) bool {
	if in.Pressed[key] {
		delete(in.Pressed, key)
		return true
	}
	return false
}

// GetCursorPosition implements render.InputManager.
func (in *Input) GetCursorPosition() (int, int) {
	return in.X, in.Y
}
