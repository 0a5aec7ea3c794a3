package processor

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"github.com/kwoodhouse93/fitness-tracker/sensor"
	"github.com/kwoodhouse93/fitness-tracker/tracker"
	"github.com/pkg/errors"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Result struct {
	Processed int
	Failed    int
}

type Processor struct {
	out    io.Writer
	format Format
}

// New returns a Processor writing to out. An empty format means FormatText.
func New(out io.Writer, format Format) (*Processor, error) {
	switch format {
	case "":
		format = FormatText
	case FormatText, FormatJSON:
	default:
		return nil, errors.Errorf("processor: unknown output format %q", format)
	}
	return &Processor{
		out:    out,
		format: format,
	}, nil
}

// Process writes one report line per package, in order. A package that can't
// be read is logged and skipped; it doesn't stop the rest.
func (p *Processor) Process(ctx context.Context, packages []sensor.Package) (Result, error) {
	result := Result{}
	log.Printf("processor: processing %d packages", len(packages))
	defer func() {
		log.Printf("processor: done processing - processed %d, failed %d", result.Processed, result.Failed)
	}()

	for _, pkg := range packages {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		training, err := tracker.Build(pkg.Type, pkg.Data)
		if err != nil {
			log.Printf("processor: skipping package %s: %v", pkg.ID, err)
			result.Failed++
			continue
		}

		line, err := p.render(tracker.Info(training))
		if err != nil {
			log.Printf("processor: skipping package %s: %v", pkg.ID, err)
			result.Failed++
			continue
		}

		_, err = p.out.Write(line)
		if err != nil {
			return result, errors.Wrapf(err, "processor: failed to write report for package %s", pkg.ID)
		}
		result.Processed++
	}
	return result, nil
}

// render fails only for reports JSON can't hold, i.e. ±Inf or NaN values
// from a zero duration or height.
func (p *Processor) render(m tracker.Metrics) ([]byte, error) {
	if p.format == FormatJSON {
		b, err := json.Marshal(m)
		if err != nil {
			return nil, errors.Wrap(err, "processor: failed to encode report")
		}
		return append(b, '\n'), nil
	}
	return []byte(m.String() + "\n"), nil
}
