package export

import (
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/Saramando/263F/internal/viz"
)

// CanvasToImage rasterizes a Braille canvas into a black and white
// paletted image, one filled block per lit dot.
func CanvasToImage(canvas *viz.Canvas) *image.Paletted {
	if canvas == nil {
		return nil
	}

	charW, charH := 8, 16
	dotW, dotH := charW/2, charH/4
	imgW, imgH := canvas.Width*charW, canvas.Height*charH
	img := image.NewPaletted(image.Rect(0, 0, imgW, imgH), color.Palette{color.Black, color.White})

	pixelMap := [4][2]int{
		{0x01, 0x08},
		{0x02, 0x10},
		{0x04, 0x20},
		{0x40, 0x80},
	}

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)
			baseX, baseY := col*charW, row*charH

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] == 0 {
						continue
					}
					for py := 0; py < dotH; py++ {
						for px := 0; px < dotW; px++ {
							img.SetColorIndex(baseX+dx*dotW+px, baseY+dy*dotH+py, 1)
						}
					}
				}
			}
		}
	}

	return img
}

// WritePNG encodes the image to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
