// Package orchestrator runs decode and export stages over a batch of files.
package orchestrator

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"

	"github.com/user/imgstream/pkg/pipeline"
	"github.com/user/imgstream/pkg/ports"
	"github.com/user/imgstream/pkg/stages/decode"
)

// Config contains all configuration for a batch run.
type Config struct {
	// Input
	Inputs []string

	// Decoding
	Components ports.ColorComponents
	Animated   pipeline.AnimatedMode
	MaxFrames  int

	// Output
	Sheet        bool
	SheetOptions ports.SheetOptions

	// Concurrency (0 = number of CPUs)
	Workers int
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Components: ports.Default,
		Animated:   pipeline.AnimatedAuto,
		SheetOptions: ports.SheetOptions{
			Columns:    6,
			ThumbWidth: 160,
			Gap:        8,
		},
	}
}

// DecodeStageFactory creates a decode stage. Decoders bind one stream at a
// time, so every worker gets its own stage.
type DecodeStageFactory func() pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult]

// Orchestrator coordinates the decode and export stages for every file.
type Orchestrator struct {
	newDecodeStage DecodeStageFactory
	exportStage    pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult]
	logger         ports.Logger
}

// New creates a new Orchestrator.
func New(
	newDecodeStage DecodeStageFactory,
	exportStage pipeline.Stage[pipeline.ExportInput, pipeline.ExportResult],
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		newDecodeStage: newDecodeStage,
		exportStage:    exportStage,
		logger:         logger,
	}
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Path       string
	Name       string
	Animated   bool
	Width      int
	Height     int
	SourceComp ports.ColorComponents
	Comp       ports.ColorComponents
	Frames     int
	DurationMs int
	Outputs    int
	Err        error
}

// RunResult contains the results of a batch run for summary generation.
type RunResult struct {
	Files     []FileResult // in input order
	Succeeded int
	Failed    int
	Workers   int
}

type indexedResult struct {
	index  int
	result FileResult
}

// Run decodes and exports every input. A file that fails is recorded in its
// FileResult and does not stop the batch; cancelling ctx does, and Run then
// returns the files finished so far together with ctx.Err().
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(config.Inputs) {
		workers = max(len(config.Inputs), 1)
	}

	o.logger.Info("Decoding %d files with %d workers", len(config.Inputs), workers)

	names := decode.OutputNames(config.Inputs)
	jobs := make(chan int, len(config.Inputs))
	results := make(chan indexedResult, len(config.Inputs))

	// Start workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go o.worker(ctx, &wg, config, names, jobs, results)
	}

	// Send jobs
	for i := range config.Inputs {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]indexedResult, 0, len(config.Inputs))
	for r := range results {
		collected = append(collected, r)
	}

	// Sort by index to maintain input order
	sort.Slice(collected, func(i, j int) bool {
		return collected[i].index < collected[j].index
	})

	run := RunResult{Files: make([]FileResult, 0, len(collected)), Workers: workers}
	for _, r := range collected {
		run.Files = append(run.Files, r.result)
		if r.result.Err != nil {
			run.Failed++
		} else {
			run.Succeeded++
		}
	}

	if err := ctx.Err(); err != nil {
		return run, err
	}
	o.logger.Info("Batch completed: %d succeeded, %d failed", run.Succeeded, run.Failed)
	return run, nil
}

// worker processes files from the jobs channel with its own decode stage.
func (o *Orchestrator) worker(
	ctx context.Context,
	wg *sync.WaitGroup,
	config Config,
	names []string,
	jobs <-chan int,
	results chan<- indexedResult,
) {
	defer wg.Done()

	decodeStage := o.newDecodeStage()
	for idx := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		results <- indexedResult{index: idx, result: o.process(ctx, decodeStage, config, config.Inputs[idx], names[idx])}
	}
}

func (o *Orchestrator) process(
	ctx context.Context,
	decodeStage pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult],
	config Config,
	path, name string,
) FileResult {
	result := FileResult{Path: path, Name: name}

	decoded, err := decodeStage.Execute(ctx, pipeline.DecodeInput{
		Path:       path,
		Name:       name,
		Components: config.Components,
		Animated:   config.Animated,
		MaxFrames:  config.MaxFrames,
	})
	if err != nil {
		o.logger.Warn("Failed to decode %s: %s", path, err)
		result.Err = fmt.Errorf("decode: %w", err)
		return result
	}

	result.Animated = decoded.Animated
	result.Width = decoded.Width()
	result.Height = decoded.Height()
	result.SourceComp, result.Comp = decoded.Components()
	result.Frames = decoded.FrameCount()
	result.DurationMs = decoded.DurationMs()
	o.logger.Info("Decoded %s: %dx%d, %d frames", path, result.Width, result.Height, result.Frames)

	exported, err := o.exportStage.Execute(ctx, pipeline.ExportInput{
		Decoded:      decoded,
		Sheet:        config.Sheet,
		SheetOptions: config.SheetOptions,
	})
	result.Outputs = exported.Outputs
	if err != nil {
		o.logger.Warn("Failed to export %s: %s", path, err)
		result.Err = fmt.Errorf("export: %w", err)
	}
	return result
}
