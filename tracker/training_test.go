package tracker

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const delta = 1e-9

func TestDistance(t *testing.T) {
	for _, action := range []int{0, 1, 720, 9000, 15000, 123456} {
		r := NewRunning(action, 1.5, 75)
		assert.InDelta(t, float64(action)*0.65/1000, r.Distance(), delta)
	}
}

func TestMeanSpeed(t *testing.T) {
	r := NewRunning(15000, 2, 75)
	assert.InDelta(t, 9.75/2, r.MeanSpeed(), delta)
}

func TestMeanSpeedZeroDuration(t *testing.T) {
	r := NewRunning(15000, 0, 75)
	assert.True(t, math.IsInf(r.MeanSpeed(), 1))
}

func TestRunning(t *testing.T) {
	r := NewRunning(15000, 1, 75)

	assert.Equal(t, "Running", r.Name())
	assert.InDelta(t, 9.75, r.Distance(), delta)
	assert.InDelta(t, 9.75, r.MeanSpeed(), delta)
	assert.InDelta(t, (18*9.75-20)*75/1000.0*1*60, r.SpentCalories(), delta)
	assert.InDelta(t, 699.75, r.SpentCalories(), delta)
}

func TestSportsWalking(t *testing.T) {
	t.Run("height term floors to zero", func(t *testing.T) {
		w := NewSportsWalking(9000, 1, 75, 180)

		assert.Equal(t, "SportsWalking", w.Name())
		assert.InDelta(t, 5.85, w.Distance(), delta)
		assert.InDelta(t, 5.85, w.MeanSpeed(), delta)
		assert.InDelta(t, 157.5, w.SpentCalories(), delta)
	})

	t.Run("height term floors to one", func(t *testing.T) {
		// speed 13 km/h, 169/100 = 1.69 -> 1
		w := NewSportsWalking(20000, 1, 75, 100)

		assert.InDelta(t, 13, w.MeanSpeed(), delta)
		assert.InDelta(t, (0.035*75+1*0.029*75)*60, w.SpentCalories(), delta)
		assert.InDelta(t, 288, w.SpentCalories(), delta)
	})
}

func TestSwimming(t *testing.T) {
	s := NewSwimming(720, 1, 80, 25, 40)

	assert.Equal(t, "Swimming", s.Name())
	assert.InDelta(t, 0.9936, s.Distance(), delta)
	assert.InDelta(t, 1.0, s.MeanSpeed(), delta)
	assert.InDelta(t, 336, s.SpentCalories(), delta)
}

func TestSwimmingMeanSpeedIgnoresStrokes(t *testing.T) {
	a := NewSwimming(10, 2, 80, 50, 20)
	b := NewSwimming(5000, 2, 80, 50, 20)

	assert.InDelta(t, 0.5, a.MeanSpeed(), delta)
	assert.InDelta(t, a.MeanSpeed(), b.MeanSpeed(), delta)
	assert.NotEqual(t, a.Distance(), b.Distance())
}

func TestInfo(t *testing.T) {
	m := Info(NewSwimming(720, 1, 80, 25, 40))

	assert.Equal(t, "Swimming", m.TrainingType)
	assert.InDelta(t, 1, m.Duration, delta)
	assert.InDelta(t, 0.9936, m.Distance, delta)
	assert.InDelta(t, 1, m.Speed, delta)
	assert.InDelta(t, 336, m.Calories, delta)
}

func TestSportsWalkingExactFloorDivision(t *testing.T) {
	// 169/0.1 rounds to 1690, the exact quotient is just below it.
	w := NewSportsWalking(20000, 1, 75, 0.1)

	assert.InDelta(t, 13, w.MeanSpeed(), delta)
	assert.InDelta(t, (0.035*75+1689*0.029*75)*60, w.SpentCalories(), 1e-6)
	assert.Equal(t,
		"Training type: SportsWalking; Duration: 1.000 h; Distance: 13.000 km; Mean speed: 13.000 km/h; Calories spent: 220572.000.",
		Info(w).String(),
	)
}

func TestSportsWalkingZeroHeight(t *testing.T) {
	t.Run("moving", func(t *testing.T) {
		w := NewSportsWalking(9000, 1, 75, 0)
		assert.True(t, math.IsInf(w.SpentCalories(), 1))
	})

	t.Run("standing still", func(t *testing.T) {
		w := NewSportsWalking(0, 1, 75, 0)
		assert.True(t, math.IsNaN(w.SpentCalories()))
	})
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b     float64
		expected float64
	}{
		{a: 169, b: 0.1, expected: 1689},
		{a: 1, b: 0.1, expected: 9},
		{a: 34.2225, b: 180, expected: 0},
		{a: 7, b: 2, expected: 3},
		{a: -7, b: 2, expected: -4},
		{a: 7, b: -2, expected: -4},
		{a: -0.5, b: 1, expected: -1},
		{a: 6, b: 3, expected: 2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, floorDiv(tt.a, tt.b), "%v // %v", tt.a, tt.b)
	}
}
