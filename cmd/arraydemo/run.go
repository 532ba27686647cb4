package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/marcodamonte/staticarrays/internal/render"
	"github.com/marcodamonte/staticarrays/internal/scenario"
)

func (a *app) runScenario(path string) error {
	sc, err := scenario.Load(path)
	if err != nil {
		return err
	}

	title := sc.Name
	if title == "" {
		title = path
	}
	a.section(title)

	runner := scenario.NewRunner(a.logger, a.cfg.Capacity)
	rep, err := runner.Run(sc, func(r scenario.StepResult) {
		line := fmt.Sprintf("  #%d %s", r.Index, r.Step)
		switch {
		case r.Err != nil:
			line += fmt.Sprintf(" → error: %v", r.Err)
		case r.Output != "":
			line += " → " + r.Output
		}
		fmt.Fprintln(a.out, line)
		fmt.Fprintln(a.out, render.Slots(r.Slots, a.render))
	})
	if err != nil {
		return err
	}

	last := rep.Steps[len(rep.Steps)-1]
	fmt.Fprintf(a.out, "  final %v  %s\n", rep.Final, render.Summary(last.Len, rep.Capacity, last.Stats))
	a.logger.Debug("scenario report", zap.String("run_id", rep.RunID), zap.Int("steps", len(rep.Steps)))
	return nil
}
