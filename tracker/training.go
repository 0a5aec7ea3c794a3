// Package tracker computes distance, mean speed and spent calories for the
// workouts recorded by a fitness tracker.
package tracker

const (
	mInKm   = 1000
	minInH  = 60
	lenStep = 0.65
)

// Training is a single recorded workout.
type Training interface {
	Name() string
	Duration() float64
	// Distance in km.
	Distance() float64
	// MeanSpeed in km/h.
	MeanSpeed() float64
	SpentCalories() float64
}

// training holds the readings shared by every workout. It has no calorie
// formula of its own, so it is not a Training by itself.
type training struct {
	action   int
	duration float64
	weight   float64
	lenStep  float64
}

func newTraining(action int, duration, weight float64) training {
	return training{
		action:   action,
		duration: duration,
		weight:   weight,
		lenStep:  lenStep,
	}
}

func (t training) Duration() float64 {
	return t.duration
}

func (t training) Distance() float64 {
	return float64(t.action) * t.lenStep / mInKm
}

// MeanSpeed divides by duration without checking it; a zero duration gives +Inf or NaN.
func (t training) MeanSpeed() float64 {
	return t.Distance() / t.duration
}

// Info builds the report for t.
func Info(t Training) Metrics {
	return Metrics{
		TrainingType: t.Name(),
		Duration:     t.Duration(),
		Distance:     t.Distance(),
		Speed:        t.MeanSpeed(),
		Calories:     t.SpentCalories(),
	}
}
