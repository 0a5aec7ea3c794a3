package tracker

import (
	"github.com/pkg/errors"
)

type WorkoutType string

const (
	WorkoutSwimming WorkoutType = "SWM"
	WorkoutRunning  WorkoutType = "RUN"
	WorkoutWalking  WorkoutType = "WLK"
)

var (
	ErrUnknownWorkout = errors.New("unknown workout type")
	ErrArgumentCount  = errors.New("wrong number of arguments")
)

type constructor struct {
	arity int
	build func(data []float64) Training
}

var workouts = map[WorkoutType]constructor{
	WorkoutSwimming: {
		arity: 5,
		build: func(d []float64) Training {
			return NewSwimming(int(d[0]), d[1], d[2], d[3], int(d[4]))
		},
	},
	WorkoutRunning: {
		arity: 3,
		build: func(d []float64) Training {
			return NewRunning(int(d[0]), d[1], d[2])
		},
	},
	WorkoutWalking: {
		arity: 4,
		build: func(d []float64) Training {
			return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
		},
	},
}

// Build unpacks a sensor package into the training named by code. data is
// positional: action, duration and weight, followed by height for walking or
// pool length and pool count for swimming. action and pool count are
// truncated towards zero with a plain conversion; values that don't fit in an
// int (NaN, ±Inf, beyond 2^63) give an unspecified count.
func Build(code string, data []float64) (Training, error) {
	c, ok := workouts[WorkoutType(code)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownWorkout, "tracker: %q", code)
	}
	if len(data) != c.arity {
		return nil, errors.Wrapf(ErrArgumentCount, "tracker: %s takes %d values, got %d", code, c.arity, len(data))
	}
	return c.build(data), nil
}
