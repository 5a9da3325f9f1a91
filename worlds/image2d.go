package worlds

import (
	"fmt"
	"io"
	"math"

	"github.com/becca-rl/beccatest/types"
)

// Image2D is the two dimensional visual servo world.
//
// Like the 1D visual servo task, but the brain saccades up, down,
// left and right about an image of a dark square on a light
// background, and is rewarded for directing its gaze near the center.
// Optimal performance is a reward of around 0.8 per time step.
type Image2D struct {
	BaseWorld

	// FovSpan is the number of superpixel rows and columns the field
	// of view is pixelized into
	FovSpan int
	// FovFraction is the approximate fraction of the image's height
	// and width the field of view occupies
	FovFraction float64
	// JumpFraction is the fraction of time steps on which the gaze
	// jumps to a random position
	JumpFraction float64
	// NoiseMagnitude is the scale of the gaussian noise on each
	// movement
	NoiseMagnitude float64

	data        grayImage
	maxStepSize int
	targetRow   int
	targetCol   int
	// rewardRegion is the width in pixels of the rewarded region
	// around the target
	rewardRegion int
	fovHeight    int
	fovWidth     int
	rowMin       int
	rowMax       int
	colMin       int
	colMax       int

	rowPosition   int
	colPosition   int
	rowHistory    []int
	columnHistory []int
	sensors       []float64
	action        []float64
	reward        float64
}

var _ types.World = &Image2D{}

// image2DSize is the edge length of the synthetic square image.
const image2DSize = 128

func NewImage2D(lifespan int) *Image2D {
	fovSpan := 5
	return &Image2D{
		BaseWorld: newBaseWorld("image_2D", "two dimensional visual world",
			lifespan, 2*fovSpan*fovSpan, 16),
		FovSpan:        fovSpan,
		FovFraction:    0.5,
		JumpFraction:   0.05,
		NoiseMagnitude: 0.1,
	}
}

func (m *Image2D) Reset() []float64 {
	m.resetBase()
	m.data = blockImage(image2DSize, image2DSize, image2DSize/4, image2DSize/4)

	imHeight := m.data.height()
	imWidth := m.data.width()
	imSize := imHeight
	if imWidth < imSize {
		imSize = imWidth
	}
	m.maxStepSize = imSize / 2
	m.targetRow = imHeight / 2
	m.targetCol = imWidth / 2
	m.rewardRegion = imSize / 8
	m.fovHeight = int(float64(imSize) * m.FovFraction)
	m.fovWidth = m.fovHeight
	m.rowMin = int(math.Ceil(float64(m.fovHeight) / 2))
	m.rowMax = imHeight - m.rowMin
	m.colMin = int(math.Ceil(float64(m.fovWidth) / 2))
	m.colMax = imWidth - m.colMin
	m.rowPosition = m.rowMin + m.Rand.Intn(m.rowMax-m.rowMin+1)
	m.colPosition = m.colMin + m.Rand.Intn(m.colMax-m.colMin+1)

	m.rowHistory = m.rowHistory[:0]
	m.columnHistory = m.columnHistory[:0]
	m.sensors = make([]float64, m.numSensors)
	m.action = make([]float64, m.numActions)
	m.reward = 0
	return make([]float64, m.numSensors)
}

func (m *Image2D) Step(action []float64) ([]float64, float64, error) {
	if err := m.checkAction(action); err != nil {
		return nil, 0, err
	}
	m.timestep++
	m.action = binarizeActions(action)

	// Actions 0-3 move the field of view to a higher-numbered row
	// (downward) with magnitudes max/2 down to max/16 and actions 4-7
	// do the opposite. Actions 8-11 and 12-15 do the same for columns.
	rowStep := math.Round(m.action[0]*float64(m.maxStepSize)/2 +
		m.action[1]*float64(m.maxStepSize)/4 +
		m.action[2]*float64(m.maxStepSize)/8 +
		m.action[3]*float64(m.maxStepSize)/16 -
		m.action[4]*float64(m.maxStepSize)/2 -
		m.action[5]*float64(m.maxStepSize)/4 -
		m.action[6]*float64(m.maxStepSize)/8 -
		m.action[7]*float64(m.maxStepSize)/16)
	colStep := math.Round(m.action[8]*float64(m.maxStepSize)/2 +
		m.action[9]*float64(m.maxStepSize)/4 +
		m.action[10]*float64(m.maxStepSize)/8 +
		m.action[11]*float64(m.maxStepSize)/16 -
		m.action[12]*float64(m.maxStepSize)/2 -
		m.action[13]*float64(m.maxStepSize)/4 -
		m.action[14]*float64(m.maxStepSize)/8 -
		m.action[15]*float64(m.maxStepSize)/16)

	rowStep = math.Round(rowStep * (1 + m.Rand.NormFloat64()*m.NoiseMagnitude))
	colStep = math.Round(colStep * (1 + m.Rand.NormFloat64()*m.NoiseMagnitude))
	m.rowPosition += int(rowStep)
	m.colPosition += int(colStep)

	// Respect the boundaries of the image.
	m.rowPosition = clampInt(m.rowPosition, m.rowMin, m.rowMax)
	m.colPosition = clampInt(m.colPosition, m.colMin, m.colMax)

	// At random intervals, jump to a random position in the world.
	if m.Rand.Float64() < m.JumpFraction {
		m.rowPosition = m.rowMin + m.Rand.Intn(m.rowMax-m.rowMin+1)
		m.colPosition = m.colMin + m.Rand.Intn(m.colMax-m.colMin+1)
	}
	m.rowHistory = append(m.rowHistory, m.rowPosition)
	m.columnHistory = append(m.columnHistory, m.colPosition)

	fov := m.data.crop(
		m.rowPosition-m.fovHeight/2, m.rowPosition+m.fovHeight/2,
		m.colPosition-m.fovWidth/2, m.colPosition+m.fovWidth/2)
	m.sensors = splitSensors(centerSurround(fov, m.FovSpan, m.FovSpan))

	m.reward = 0
	rewardedRow := math.Abs(float64(m.rowPosition-m.targetRow)) < float64(m.rewardRegion)/2
	rewardedCol := math.Abs(float64(m.colPosition-m.targetCol)) < float64(m.rewardRegion)/2
	if rewardedRow && rewardedCol {
		m.reward += 1
	}
	return m.sensors, m.reward, nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (m *Image2D) Visualize(w io.Writer) {
	fmt.Fprintf(w, "world is %d timesteps old, gaze at (%d, %d) target (%d, %d)\n",
		m.timestep, m.rowPosition, m.colPosition, m.targetRow, m.targetCol)
}
