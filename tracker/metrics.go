package tracker

import "fmt"

// Metrics is the summary shown to the user once a training is finished.
type Metrics struct {
	TrainingType string  `json:"training_type"`
	Duration     float64 `json:"duration"`
	Distance     float64 `json:"distance"`
	Speed        float64 `json:"speed"`
	Calories     float64 `json:"calories"`
}

func (m Metrics) String() string {
	return fmt.Sprintf(
		"Training type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories spent: %.3f.",
		m.TrainingType,
		m.Duration,
		m.Distance,
		m.Speed,
		m.Calories,
	)
}
