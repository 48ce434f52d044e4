package ui

import (
	"image"
	"image/color"
)

// placeholderImage draws a bordered flat image used where a meal image
// could not be loaded
func placeholderImage(width, height int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color = PlaceholderFill
			if x == 0 || y == 0 || x == width-1 || y == height-1 {
				c = PlaceholderBorder
			}
			img.Set(x, y, c)
		}
	}
	return img
}
