package tracker

import "math"

const (
	walkingCaloriesWeightMultiplier = 0.035
	walkingSpeedHeightMultiplier    = 0.029
)

// SportsWalking is a walk; the walker's height feeds the calorie formula.
type SportsWalking struct {
	training
	height float64
}

// NewSportsWalking takes height in cm. A zero height is not checked.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		training: newTraining(action, duration, weight),
		height:   height,
	}
}

func (w SportsWalking) Name() string {
	return "SportsWalking"
}

// SpentCalories floors speed²/height before applying the multiplier, so for
// typical walking speeds the height term is zero.
// TODO: check with product whether the floor should become a real division;
// changing it shifts the calories of every recorded walk.
func (w SportsWalking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	heightTerm := floorDiv(speed*speed, w.height)
	return (walkingCaloriesWeightMultiplier*w.weight +
		heightTerm*walkingSpeedHeightMultiplier*w.weight) * w.duration * minInH
}

// floorDiv returns the floor of the exact quotient a/b, which can be one less
// than math.Floor(a/b) when a/b rounds up to an integer. A zero b gives
// a/b (±Inf or NaN).
func floorDiv(a, b float64) float64 {
	if b == 0 {
		return a / b
	}
	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}
	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
