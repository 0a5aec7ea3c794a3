package tracker

const (
	runningCaloriesMeanSpeedMultiplier = 18
	runningCaloriesMeanSpeedShift      = 20
)

// Running is a run counted in steps.
type Running struct {
	training
}

// NewRunning takes duration in hours and weight in kg.
func NewRunning(action int, duration, weight float64) Running {
	return Running{training: newTraining(action, duration, weight)}
}

func (r Running) Name() string {
	return "Running"
}

func (r Running) SpentCalories() float64 {
	return (runningCaloriesMeanSpeedMultiplier*r.MeanSpeed() - runningCaloriesMeanSpeedShift) *
		r.weight / mInKm * r.duration * minInH
}
