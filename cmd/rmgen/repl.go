package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mapron/freeheroes-rmg/pkg/fhmap"
	"github.com/mapron/freeheroes-rmg/pkg/gamedb"
	"github.com/mapron/freeheroes-rmg/pkg/previewsvg"
	"github.com/mapron/freeheroes-rmg/pkg/template"
)

var replTemplatePath string

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Step through the generation pipeline interactively",
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().StringVar(&replTemplatePath, "template", "", "path to the YAML map template (required)")
	replCmd.MarkFlagRequired("template")
}

// replState reruns the pipeline from scratch each time the stop-after
// stage advances, since Processor.Run has no resumable checkpoint —
// stage work is cheap enough (seconds, not minutes) for this to be a
// reasonable debugging loop rather than a performance concern.
type replState struct {
	db      gamedb.Database
	tmpl    *template.Template
	stages  []string
	cursor  int
	logger  *slog.Logger
	lastOut *fhmap.FHMap
}

func runRepl(cmd *cobra.Command, args []string) error {
	dbPath, err := resolvedGamedbPath()
	if err != nil {
		return err
	}
	db, err := gamedb.LoadFixture(dbPath)
	if err != nil {
		return fmt.Errorf("loading game catalog: %w", err)
	}
	tmpl, err := template.LoadFile(replTemplatePath)
	if err != nil {
		return fmt.Errorf("loading template: %w", err)
	}

	rl, err := readline.New("rmgen> ")
	if err != nil {
		return fmt.Errorf("starting readline: %w", err)
	}
	defer rl.Close()

	st := &replState{
		db:     db,
		tmpl:   tmpl,
		logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
		stages: []string{
			template.StageZoneCenterPlacement, template.StageZoneTilesInitial,
			template.StageZoneTilesExpand, template.StageZoneTilesRefinement,
			template.StageTownsPlacement, template.StageBorders,
			template.StageSegmentation, template.StageRoadsPlacement,
			template.StageHeatMap, template.StageObstacles,
			template.StageObjects, template.StageGuards,
		},
	}

	fmt.Println("rmgen interactive stepper. Type 'help' for commands, 'quit' to exit.")
	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}
		command := strings.TrimSpace(line)
		if command == "" {
			continue
		}
		if command == "quit" || command == "exit" {
			return nil
		}
		st.dispatch(command)
	}
}

func (st *replState) dispatch(command string) {
	fields := strings.Fields(command)
	switch fields[0] {
	case "help":
		st.printHelp()
	case "next":
		st.advance()
	case "stop-after":
		if len(fields) != 2 {
			fmt.Println("usage: stop-after <stage>")
			return
		}
		st.runTo(fields[1])
	case "run":
		st.runTo("")
	case "dump":
		if len(fields) != 2 {
			fmt.Println("usage: dump <zone-id>")
			return
		}
		st.dumpZone(fields[1])
	case "preview":
		path := "preview.svg"
		if len(fields) == 2 {
			path = fields[1]
		}
		st.preview(path)
	default:
		fmt.Printf("unknown command %q, type 'help'\n", fields[0])
	}
}

func (st *replState) printHelp() {
	fmt.Println("  next               advance one stage")
	fmt.Println("  stop-after <stage> run up to and including <stage>")
	fmt.Println("  run                run the full pipeline")
	fmt.Println("  dump <zone-id>     print a zone's derived state")
	fmt.Println("  preview [path]     write a debug SVG of the current run")
	fmt.Println("  quit               exit")
}

func (st *replState) advance() {
	if st.cursor >= len(st.stages) {
		fmt.Println("already at the final stage")
		return
	}
	st.runTo(st.stages[st.cursor])
}

func (st *replState) runTo(stage string) {
	proc := template.NewProcessor(st.db, st.logger)
	out, err := proc.Run(st.tmpl, stage)
	if err != nil {
		color.New(color.FgRed).Printf("stage failed: %v\n", err)
		return
	}
	st.lastOut = out
	if stage == "" {
		st.cursor = len(st.stages)
		fmt.Println("ran to completion")
		return
	}
	for i, s := range st.stages {
		if s == stage {
			st.cursor = i + 1
			break
		}
	}
	color.New(color.FgGreen).Printf("reached %s\n", stage)
}

func (st *replState) dumpZone(id string) {
	if st.lastOut == nil {
		fmt.Println("run at least one stage first")
		return
	}
	z := st.lastOut.ZoneByID(id)
	if z == nil {
		fmt.Printf("no such zone %q\n", id)
		return
	}
	fmt.Printf("zone %s: centroid=%v nodes=%d heatTiles=%d\n", z.ID, z.CentroidTarget, len(z.RoadNodes), len(z.HeatMap))
}

func (st *replState) preview(path string) {
	if st.lastOut == nil {
		fmt.Println("run at least one stage first")
		return
	}
	if err := previewsvg.SaveToFile(st.lastOut, path, previewsvg.DefaultOptions()); err != nil {
		color.New(color.FgRed).Printf("preview failed: %v\n", err)
		return
	}
	fmt.Printf("wrote %s\n", path)
}
