package worlds

import (
	"fmt"
	"io"
	"math"

	"github.com/becca-rl/beccatest/types"
)

// Image1D is the one dimensional visual servo world.
//
// The brain directs its gaze left and right along a mural and is
// rewarded for holding it near the center. The field of view is
// reduced to a small grid of center-surround superpixels, giving the
// brain a comparatively large number of sensors to build into a few
// informative features.
// Optimal performance is a reward of somewhere around 0.9 per time step.
type Image1D struct {
	BaseWorld

	// FovSpan is the number of superpixel rows and columns the field
	// of view is pixelized into
	FovSpan int
	// JumpFraction is the fraction of time steps on which the gaze
	// jumps to a random position
	JumpFraction float64
	// StepCost is the punishment per unit of gaze movement
	StepCost float64
	// NoiseMagnitude scales how inaccurate each movement is
	NoiseMagnitude float64

	data         grayImage
	maxStepSize  int
	targetColumn int
	rewardRegion int
	fovWidth     int
	columnMin    int
	columnMax    int

	columnPosition int
	columnHistory  []int
	sensors        []float64
	action         []float64
	reward         float64
}

var _ types.World = &Image1D{}

// image1DHeight and image1DWidth are the dimensions of the synthetic
// mural. The original PNG asset is a dark bar on a light field, which
// blockImage reproduces.
const (
	image1DHeight = 64
	image1DWidth  = 512
)

func NewImage1D(lifespan int) *Image1D {
	fovSpan := 5
	return &Image1D{
		BaseWorld: newBaseWorld("image_1D", "one dimensional visual world",
			lifespan, 2*fovSpan*fovSpan, 8),
		FovSpan:        fovSpan,
		JumpFraction:   0.1,
		StepCost:       0.1,
		NoiseMagnitude: 0.1,
	}
}

func (m *Image1D) Reset() []float64 {
	m.resetBase()
	m.data = blockImage(image1DHeight, image1DWidth, image1DHeight, image1DWidth/8)

	imageWidth := m.data.width()
	m.maxStepSize = imageWidth / 2
	m.targetColumn = imageWidth / 2
	m.rewardRegion = imageWidth / 8
	// The field of view is square, as tall as the mural.
	m.fovWidth = m.data.height()
	m.columnMin = int(math.Ceil(float64(m.fovWidth) / 2))
	m.columnMax = imageWidth - m.columnMin
	m.columnPosition = m.columnMin + m.Rand.Intn(m.columnMax-m.columnMin+1)

	m.columnHistory = m.columnHistory[:0]
	m.sensors = make([]float64, m.numSensors)
	m.action = make([]float64, m.numActions)
	m.reward = 0
	return make([]float64, m.numSensors)
}

func (m *Image1D) Step(action []float64) ([]float64, float64, error) {
	if err := m.checkAction(action); err != nil {
		return nil, 0, err
	}
	m.timestep++
	m.action = binarizeActions(action)

	// Actions 0-3 move the field of view right with magnitudes
	// max/2 down to max/16, actions 4-7 do the opposite.
	rawStep := m.action[0]*float64(m.maxStepSize)/2 +
		m.action[1]*float64(m.maxStepSize)/4 +
		m.action[2]*float64(m.maxStepSize)/8 +
		m.action[3]*float64(m.maxStepSize)/16 -
		m.action[4]*float64(m.maxStepSize)/2 -
		m.action[5]*float64(m.maxStepSize)/4 -
		m.action[6]*float64(m.maxStepSize)/8 -
		m.action[7]*float64(m.maxStepSize)/16
	noiseFactor := m.NoiseMagnitude*m.Rand.Float64()*2 -
		m.NoiseMagnitude*m.Rand.Float64()*2 + 1
	columnStep := int(rawStep * noiseFactor)

	m.columnPosition += columnStep
	if m.columnPosition < m.columnMin {
		m.columnPosition = m.columnMin
	}
	if m.columnPosition > m.columnMax {
		m.columnPosition = m.columnMax
	}
	m.columnHistory = append(m.columnHistory, m.columnPosition)

	// At random intervals, jump to a random position in the world.
	if m.Rand.Float64() < m.JumpFraction {
		m.columnPosition = m.columnMin + m.Rand.Intn(m.columnMax-m.columnMin+1)
	}

	// Sense the field of view as center-surround superpixels.
	fov := m.data.crop(0, m.data.height(),
		m.columnPosition-m.fovWidth/2, m.columnPosition+m.fovWidth/2)
	m.sensors = splitSensors(centerSurround(fov, m.FovSpan, m.FovSpan))

	m.reward = 0
	if math.Abs(float64(m.columnPosition-m.targetColumn)) < float64(m.rewardRegion)/2 {
		m.reward += 1
	}
	m.reward -= math.Abs(float64(columnStep)) / float64(m.maxStepSize) * m.StepCost
	return m.sensors, m.reward, nil
}

func (m *Image1D) Visualize(w io.Writer) {
	fmt.Fprintf(w, "world is %d timesteps old, gaze at column %d (target %d)\n",
		m.timestep, m.columnPosition, m.targetColumn)
}
