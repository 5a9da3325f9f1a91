package worlds

import "math"

// Tools shared by the visual servo worlds.

// grayImage is a 2D array of grayscale pixel values in [0, 1]
type grayImage [][]float64

func (img grayImage) height() int {
	return len(img)
}

func (img grayImage) width() int {
	if len(img) == 0 {
		return 0
	}
	return len(img[0])
}

// crop returns the sub image spanning rows [r0, r1) and columns [c0, c1)
func (img grayImage) crop(r0, r1, c0, c1 int) grayImage {
	out := make(grayImage, r1-r0)
	for r := r0; r < r1; r++ {
		out[r-r0] = img[r][c0:c1]
	}
	return out
}

// blockImage synthesizes the test pattern of the original image
// assets: a dark block centered on a light field. The field carries
// faint stripes so that center-surround sensing stays informative
// away from the block. blockH and blockW are the extent of the block
// in pixels.
func blockImage(height, width, blockH, blockW int) grayImage {
	img := make(grayImage, height)
	r0 := (height - blockH) / 2
	c0 := (width - blockW) / 2
	for r := range img {
		img[r] = make([]float64, width)
		for c := range img[r] {
			if r >= r0 && r < r0+blockH && c >= c0 && c < c0+blockW {
				img[r][c] = 0
			} else {
				img[r][c] = 0.8 + 0.2*math.Sin(float64(c)/3.7)*math.Sin(float64(r)/3.7)
			}
		}
	}
	return img
}

// centerSurround converts a 2D array of grayscale pixel values into
// center-surround superpixels. The field of view is averaged down to
// a (vertSpan+2) x (horzSpan+2) superpixel array, and each inner
// superpixel is contrasted against its eight neighbors: N, S, E and W
// weigh 1/6 each and the diagonals 1/12 each.
func centerSurround(fov grayImage, horzSpan, vertSpan int) [][]float64 {
	fovHeight := fov.height()
	fovWidth := fov.width()
	blockWidth := float64(fovWidth) / float64(horzSpan+2)
	blockHeight := float64(fovHeight) / float64(vertSpan+2)

	super := make([][]float64, vertSpan+2)
	for row := 0; row < vertSpan+2; row++ {
		super[row] = make([]float64, horzSpan+2)
		for col := 0; col < horzSpan+2; col++ {
			super[row][col] = blockMean(fov,
				int(float64(row)*blockHeight), int(float64(row+1)*blockHeight),
				int(float64(col)*blockWidth), int(float64(col+1)*blockWidth))
		}
	}

	out := make([][]float64, vertSpan)
	for row := 0; row < vertSpan; row++ {
		out[row] = make([]float64, horzSpan)
		for col := 0; col < horzSpan; col++ {
			out[row][col] = super[row+1][col+1] -
				super[row][col+1]/6 -
				super[row+2][col+1]/6 -
				super[row+1][col]/6 -
				super[row+1][col+2]/6 -
				super[row][col]/12 -
				super[row+2][col]/12 -
				super[row][col+2]/12 -
				super[row+2][col+2]/12
		}
	}
	return out
}

func blockMean(img grayImage, r0, r1, c0, c1 int) float64 {
	sum := float64(0)
	count := 0
	for r := r0; r < r1 && r < img.height(); r++ {
		for c := c0; c < c1 && c < img.width(); c++ {
			sum += img[r][c]
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// splitSensors flattens center-surround values, which vary between -1
// and 1, into twice as many non-negative sensors: first the positive
// parts, then the magnitudes of the negative parts.
func splitSensors(pixels [][]float64) []float64 {
	flat := make([]float64, 0, len(pixels)*len(pixels[0]))
	for _, row := range pixels {
		flat = append(flat, row...)
	}
	sensors := make([]float64, 2*len(flat))
	for i, v := range flat {
		if v > 0 {
			sensors[i] = v
		} else {
			sensors[len(flat)+i] = -v
		}
	}
	return sensors
}
