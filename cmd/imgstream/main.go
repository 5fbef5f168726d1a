// Package main provides the CLI entry point for imgstream.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/imgstream/pkg/adapters/logger"
	"github.com/user/imgstream/pkg/ports"
)

var version = "dev"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.NewConsole(ports.LevelWarn).Warn("Interrupted, shutting down...")
		cancel()
	}()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "imgstream",
		Usage:   l10n.T("Decode images and GIF animations from streams"),
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   l10n.T("YAML configuration file"),
			},
			&cli.StringFlag{
				Name:     "log-level",
				Aliases:  []string{"l"},
				Value:    "info",
				Usage:    l10n.T("Log level (debug, info, warn, error)"),
				Category: l10n.T("Logging"),
			},
			&cli.BoolFlag{
				Name:     "quiet",
				Aliases:  []string{"Q"},
				Usage:    l10n.T("Suppress all log output"),
				Category: l10n.T("Logging"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "decode",
				Usage:     l10n.T("Decode still images"),
				ArgsUsage: "FILE...",
				Flags:     append(decodeFlags(), outputFlags()...),
				Action:    runDecode,
			},
			{
				Name:      "frames",
				Usage:     l10n.T("Decode every frame of GIF animations"),
				ArgsUsage: "FILE...",
				Flags: append(append(decodeFlags(), outputFlags()...),
					&cli.IntFlag{
						Name:     "max-frames",
						Usage:    l10n.T("Stop after this many frames (0 = all)"),
						Category: l10n.T("Decoding"),
					},
					&cli.BoolFlag{
						Name:     "sheet",
						Usage:    l10n.T("Render a contact sheet per animation"),
						Category: l10n.T("Output"),
					},
				),
				Action: runFrames,
			},
			{
				Name:      "batch",
				Usage:     l10n.T("Decode many files concurrently and write a report"),
				ArgsUsage: "FILE...",
				Flags: append(append(decodeFlags(), outputFlags()...),
					&cli.StringFlag{
						Name:     "animated",
						Usage:    l10n.T("Animation handling (auto, always, never)"),
						Category: l10n.T("Decoding"),
					},
					&cli.IntFlag{
						Name:     "max-frames",
						Usage:    l10n.T("Stop after this many frames (0 = all)"),
						Category: l10n.T("Decoding"),
					},
					&cli.BoolFlag{
						Name:     "sheet",
						Usage:    l10n.T("Render a contact sheet per animation"),
						Category: l10n.T("Output"),
					},
					&cli.IntFlag{
						Name:     "workers",
						Aliases:  []string{"w"},
						Usage:    l10n.T("Number of concurrent decoders (0 = number of CPUs)"),
						Category: l10n.T("Performance"),
					},
					&cli.StringFlag{
						Name:     "report",
						Usage:    l10n.T("Write a Markdown report to this path"),
						Category: l10n.T("Output"),
					},
				),
				Action: runBatch,
			},
		},
	}
}

func decodeFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "components",
			Aliases:  []string{"n"},
			Usage:    l10n.T("Channels per pixel (default, grey, grey-alpha, rgb, rgba)"),
			Category: l10n.T("Decoding"),
		},
		&cli.IntFlag{
			Name:     "max-dimension",
			Usage:    l10n.T("Reject images wider or taller than this"),
			Category: l10n.T("Decoding"),
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "output-dir",
			Aliases:  []string{"o"},
			Usage:    l10n.T("Directory for decoded PNG files"),
			Category: l10n.T("Output"),
		},
		&cli.BoolFlag{
			Name:     "raw",
			Usage:    l10n.T("Also write zstd-compressed raw pixel dumps"),
			Category: l10n.T("Output"),
		},
	}
}
