package tracker

const (
	swimmingLenStep                  = 1.38
	swimmingCaloriesMeanSpeedShift   = 1.1
	swimmingCaloriesWeightMultiplier = 2
)

// Swimming counts strokes in action; its speed comes from the pool laps.
type Swimming struct {
	training
	lengthPool float64
	countPool  int
}

// NewSwimming takes the pool length in metres and the number of lengths swum.
func NewSwimming(action int, duration, weight, lengthPool float64, countPool int) Swimming {
	t := newTraining(action, duration, weight)
	t.lenStep = swimmingLenStep
	return Swimming{
		training:   t,
		lengthPool: lengthPool,
		countPool:  countPool,
	}
}

func (s Swimming) Name() string {
	return "Swimming"
}

func (s Swimming) MeanSpeed() float64 {
	return s.lengthPool * float64(s.countPool) / mInKm / s.duration
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimmingCaloriesMeanSpeedShift) * swimmingCaloriesWeightMultiplier * s.weight
}
