package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mapron/freeheroes-rmg/pkg/gamedb"
	"github.com/mapron/freeheroes-rmg/pkg/previewsvg"
	"github.com/mapron/freeheroes-rmg/pkg/template"
)

var (
	templatePath string
	seedOverride uint64
	outPath      string
	stopAfter    string
	debugSVGPath string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Run the full pipeline over a template and write an FHMap",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&templatePath, "template", "", "path to the YAML map template (required)")
	generateCmd.Flags().Uint64Var(&seedOverride, "seed", 0, "override the template's seed (0 = use template seed)")
	generateCmd.Flags().StringVar(&outPath, "out", "", "output JSON path (default: stdout)")
	generateCmd.Flags().StringVar(&stopAfter, "stop-after", "", "stop after this stage completes (default: run to completion)")
	generateCmd.Flags().StringVar(&debugSVGPath, "debug-svg", "", "also render a debug SVG preview to this path")
	generateCmd.MarkFlagRequired("template")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dbPath, err := resolvedGamedbPath()
	if err != nil {
		return err
	}
	db, err := gamedb.LoadFixture(dbPath)
	if err != nil {
		return fmt.Errorf("loading game catalog: %w", err)
	}

	tmpl, err := template.LoadFile(templatePath)
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}
	if seedOverride != 0 {
		tmpl.Seed = seedOverride
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	proc := template.NewProcessor(db, logger)
	out, genErr := proc.Run(tmpl, stopAfter)
	if genErr != nil {
		printGenerationError(genErr)
		return genErr
	}

	if debugSVGPath != "" {
		if err := previewsvg.SaveToFile(out, debugSVGPath, previewsvg.DefaultOptions()); err != nil {
			return fmt.Errorf("writing debug SVG: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "wrote debug preview to %s\n", debugSVGPath)
		}
	}

	summary := map[string]any{
		"seed":        tmpl.Seed,
		"zones":       len(out.Zones),
		"objects":     len(out.AllObjects()),
		"guards":      len(out.Guards),
		"obstacles":   len(out.Obstacles),
		"stopped_at":  stopAfter,
	}
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}

	if outPath == "" {
		fmt.Println(string(data))
		return nil
	}
	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	fmt.Printf("wrote %s\n", outPath)
	return nil
}

// printGenerationError prints the failing stage/zone for the known
// sentinel kinds, colored so it stands out in a long --verbose log.
func printGenerationError(err error) {
	var genErr *template.GenerationError
	if errors.As(err, &genErr) {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "generation failed")
		fmt.Fprintf(os.Stderr, ": %v\n", genErr)
		return
	}
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "template invalid")
	fmt.Fprintf(os.Stderr, ": %v\n", err)
}

// exitCodeFor maps a generation error to the process exit code cmd/rmgen
// returns: 2 for a malformed template, 3 for any other generation failure.
func exitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, template.ErrTemplateInvalid) {
		return 2
	}
	return 3
}
