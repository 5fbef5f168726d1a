package main

import (
	"fmt"
	"path/filepath"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/imgstream/pkg/adapters/filesink"
	"github.com/user/imgstream/pkg/adapters/ggrenderer"
	"github.com/user/imgstream/pkg/adapters/logger"
	"github.com/user/imgstream/pkg/adapters/nullsink"
	"github.com/user/imgstream/pkg/adapters/osfilesystem"
	"github.com/user/imgstream/pkg/adapters/streamloader"
	"github.com/user/imgstream/pkg/config"
	"github.com/user/imgstream/pkg/orchestrator"
	"github.com/user/imgstream/pkg/pipeline"
	"github.com/user/imgstream/pkg/ports"
	"github.com/user/imgstream/pkg/stages/decode"
	"github.com/user/imgstream/pkg/stages/export"
	"github.com/user/imgstream/pkg/summarizer"
)

// env holds the adapters shared by every command.
type env struct {
	cfg      config.Config
	log      ports.Logger
	fs       *osfilesystem.FileSystem
	renderer *ggrenderer.Renderer
}

func setup(c *cli.Context) (*env, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(path)
		if err != nil {
			logger.NewConsole(ports.LevelError).Error("Failed to load config: %s", err)
			return nil, err
		}
		cfg = loaded
	}
	applyFlags(c, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}

	return &env{
		cfg:      cfg,
		log:      log,
		fs:       osfilesystem.New(),
		renderer: ggrenderer.New(),
	}, nil
}

// applyFlags overrides configuration values with flags given on the
// command line.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}
	if c.IsSet("components") {
		cfg.Components = c.String("components")
	}
	if c.IsSet("max-dimension") {
		cfg.Limits.MaxDimension = c.Int("max-dimension")
	}
	if c.IsSet("output-dir") {
		cfg.OutputDir = c.String("output-dir")
	}
	if c.IsSet("raw") {
		cfg.Raw = c.Bool("raw")
	}
	if c.IsSet("animated") {
		cfg.Animated = c.String("animated")
	}
	if c.IsSet("max-frames") {
		cfg.MaxFrames = c.Int("max-frames")
	}
	if c.IsSet("sheet") {
		cfg.Sheet.Enabled = c.Bool("sheet")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("report") {
		cfg.Report = c.String("report")
	}
}

func (e *env) newLoader() *streamloader.Loader {
	return streamloader.New(
		streamloader.WithLogger(e.log),
		streamloader.WithLimits(e.cfg.DecoderLimits()),
	)
}

func (e *env) sink() (ports.FrameSink, error) {
	if e.cfg.OutputDir == "" {
		return nullsink.New(), nil
	}
	if err := e.fs.MkdirAll(e.cfg.OutputDir); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}
	return filesink.New(e.cfg.OutputDir, e.fs, e.renderer, filesink.WithRawDumps(e.cfg.Raw)), nil
}

func (e *env) exportStage() (*export.Stage, error) {
	sink, err := e.sink()
	if err != nil {
		return nil, err
	}
	return export.NewStage(sink, e.renderer, e.log), nil
}

func requireArgs(c *cli.Context) ([]string, error) {
	args := c.Args().Slice()
	if len(args) == 0 {
		return nil, cli.Exit(l10n.T("At least one input file is required"), 2)
	}
	return args, nil
}

// runSequential decodes and exports files one at a time with a single loader.
func runSequential(c *cli.Context, mode pipeline.AnimatedMode, report func(pipeline.DecodeResult)) error {
	paths, err := requireArgs(c)
	if err != nil {
		return err
	}
	e, err := setup(c)
	if err != nil {
		return err
	}
	exporter, err := e.exportStage()
	if err != nil {
		return err
	}

	oc := e.cfg.ToOrchestratorConfig(paths)
	decoder := decode.NewStage(e.fs, e.newLoader(), e.log)
	names := decode.OutputNames(paths)
	failed := 0
	for i, path := range paths {
		decoded, err := decoder.Execute(c.Context, pipeline.DecodeInput{
			Path:       path,
			Name:       names[i],
			Components: oc.Components,
			Animated:   mode,
			MaxFrames:  oc.MaxFrames,
		})
		if err != nil {
			if ctxErr := c.Context.Err(); ctxErr != nil {
				return ctxErr
			}
			e.log.Error("Failed to decode %s: %s", path, err)
			failed++
			continue
		}
		report(decoded)

		if _, err := exporter.Execute(c.Context, pipeline.ExportInput{
			Decoded:      decoded,
			Sheet:        oc.Sheet,
			SheetOptions: oc.SheetOptions,
		}); err != nil {
			e.log.Error("Failed to export %s: %s", path, err)
			failed++
		}
	}

	if failed > 0 {
		return cli.Exit(l10n.F("%d of %d files failed", failed, len(paths)), 1)
	}
	return nil
}

func runDecode(c *cli.Context) error {
	return runSequential(c, pipeline.AnimatedNever, func(r pipeline.DecodeResult) {
		fmt.Fprintln(c.App.Writer, l10n.F("%s: %dx%d, %d source components, %d returned",
			r.Path, r.Image.Width, r.Image.Height, int(r.Image.SourceComp), int(r.Image.Comp)))
	})
}

func runFrames(c *cli.Context) error {
	return runSequential(c, pipeline.AnimatedAlways, func(r pipeline.DecodeResult) {
		fmt.Fprintln(c.App.Writer, l10n.F("%s: %dx%d, %d frames, %d ms", r.Path, r.Width(), r.Height(), r.FrameCount(), r.DurationMs()))
		for i, f := range r.Frames {
			fmt.Fprintln(c.App.Writer, l10n.F("  frame %d: delay %d ms", i, f.Delay))
		}
	})
}

func runBatch(c *cli.Context) error {
	paths, err := requireArgs(c)
	if err != nil {
		return err
	}
	e, err := setup(c)
	if err != nil {
		return err
	}
	exporter, err := e.exportStage()
	if err != nil {
		return err
	}

	factory := func() pipeline.Stage[pipeline.DecodeInput, pipeline.DecodeResult] {
		return decode.NewStage(e.fs, e.newLoader(), e.log)
	}
	orch := orchestrator.New(factory, exporter, e.log)

	oc := e.cfg.ToOrchestratorConfig(paths)
	result, runErr := orch.Run(c.Context, oc)

	for _, f := range result.Files {
		if f.Err != nil {
			fmt.Fprintln(c.App.Writer, l10n.F("%s: failed: %s", f.Path, f.Err))
			continue
		}
		fmt.Fprintln(c.App.Writer, l10n.F("%s: %dx%d, %d frames", f.Path, f.Width, f.Height, f.Frames))
	}

	if e.cfg.Report != "" {
		summary := buildSummary(e.cfg, oc, result)
		w := summarizer.NewWriter(summarizer.NewMarkdownFormatter(
			summarizer.WithTranslator(l10n.T),
			summarizer.WithVersion(version),
		), e.fs)
		if err := w.Write(e.cfg.Report, summary); err != nil {
			return err
		}
		e.log.Info("Report saved to %s", e.cfg.Report)
	}

	if runErr != nil {
		return runErr
	}
	if result.Failed > 0 {
		return cli.Exit(l10n.F("%d of %d files failed", result.Failed, len(paths)), 1)
	}
	return nil
}

func buildSummary(cfg config.Config, oc orchestrator.Config, result orchestrator.RunResult) *summarizer.Summary {
	outputDir := ""
	if cfg.OutputDir != "" {
		outputDir = filepath.Clean(cfg.OutputDir)
	}

	b := summarizer.NewBuilder().WithSettings(summarizer.Settings{
		Components: oc.Components.String(),
		Animated:   oc.Animated.String(),
		MaxFrames:  oc.MaxFrames,
		Workers:    result.Workers,
		Sheet:      oc.Sheet,
		OutputDir:  outputDir,
	})
	for _, f := range result.Files {
		info := summarizer.FileInfo{
			Path:       f.Path,
			Name:       f.Name,
			Animated:   f.Animated,
			Width:      f.Width,
			Height:     f.Height,
			SourceComp: int(f.SourceComp),
			Comp:       int(f.Comp),
			Frames:     f.Frames,
			DurationMs: f.DurationMs,
			Outputs:    f.Outputs,
		}
		if f.Err != nil {
			info.Error = f.Err.Error()
		}
		b.AddFile(info)
	}
	return b.Build()
}
