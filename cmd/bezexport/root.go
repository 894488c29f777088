package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"honnef.co/go/bezexport"
	"honnef.co/go/bezexport/scene"
)

type app struct {
	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger

	verbose bool
	format  string
	output  string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:   "bezexport",
		Short: "Export Bézier curves for the renderer",
		Long: `bezexport reads the Bézier curves of a scene document and writes them as
nested arrays of segments, converted from the authoring tool's Z-up space to
the renderer's Y-up space.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug output")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "scene format: yaml, json, or toml (default: from file extension)")
	root.AddCommand(a.exportCmd(), a.boundsCmd())
	return root
}

func (a *app) exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Write the curve export text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args)
			if err != nil {
				return err
			}

			curves, splines := 0, 0
			for c := range doc.Curves() {
				curves++
				splines += len(c.Splines)
			}
			if a.output == "" || a.output == "-" {
				w := bufio.NewWriter(a.stdout)
				if err := bezexport.Write(w, doc); err != nil {
					return err
				}
				if err := w.Flush(); err != nil {
					return err
				}
			} else if err := writeFile(a.output, doc); err != nil {
				return err
			}
			a.log.Info("exported curves", "curves", curves, "splines", splines, "output", a.outputName())
			return nil
		},
	}
	cmd.Flags().StringVarP(&a.output, "output", "o", "", "write to `file` instead of standard output")
	return cmd
}

func (a *app) boundsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bounds [file]",
		Short: "Print the bounding box of all control points in renderer space",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.load(args)
			if err != nil {
				return err
			}
			box, ok := bezexport.ControlBounds(doc)
			if !ok {
				return errors.New("scene has no control points")
			}
			b := bounds{
				X: [2]float64{box.Min[0], box.Max[0]},
				Y: [2]float64{box.Min[1], box.Max[1]},
				Z: [2]float64{box.Min[2], box.Max[2]},
			}
			return json.NewEncoder(a.stdout).Encode(b)
		},
	}
}

// bounds matches the renderer's per-axis [min, max] bounds.
type bounds struct {
	X [2]float64 `json:"x"`
	Y [2]float64 `json:"y"`
	Z [2]float64 `json:"z"`
}

func (a *app) load(args []string) (*scene.Document, error) {
	path := "-"
	if len(args) > 0 {
		path = args[0]
	}
	a.log.Debug("loading scene", "path", path, "format", a.format)
	if a.format == "" {
		return scene.Load(path)
	}
	f, err := scene.ParseFormat(a.format)
	if err != nil {
		return nil, err
	}
	return scene.LoadFormat(path, f)
}

func (a *app) outputName() string {
	if a.output == "" {
		return "-"
	}
	return a.output
}

// writeFile exports doc to path. The text is written to a temporary file
// next to path and renamed into place, so path never holds partial output.
func writeFile(path string, doc bezexport.Scene) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	w := bufio.NewWriter(tmp)
	if err := bezexport.Write(w, doc); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	return os.Rename(tmp.Name(), path)
}
