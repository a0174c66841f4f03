package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"seqlab.dev/metacurate/internal/curate"
	"seqlab.dev/metacurate/internal/model"
)

// runCurate wires --metadata and --output around a curate task chain.
func runCurate(tasks []curate.Task, log zerolog.Logger) (*model.CurateSummary, error) {
	in, err := openInput(cfg.Metadata)
	if err != nil {
		return nil, fmt.Errorf("open metadata: %w", err)
	}
	defer in.Close()

	out, err := openOutput(cfg.Output)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}

	summary, err := curate.Run(in, out, tasks, log)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	return summary, err
}
