// scenectl runs Lua macros against a fresh editor without opening a window
// and prints the resulting scene.
//
//	scenectl -e 'scene.add("cube")' scripts/startup.lua
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"text/tabwriter"

	"sceneeditor/internal/config"
	"sceneeditor/internal/editor"
	"sceneeditor/internal/engine"
	"sceneeditor/internal/macro"

	"github.com/pelletier/go-toml/v2"
)

type sceneFile struct {
	Objects []objectEntry `toml:"object"`
}

type objectEntry struct {
	ID       string     `toml:"id"`
	Type     string     `toml:"type"`
	Name     string     `toml:"name"`
	Position [3]float32 `toml:"position"`
	Rotation [3]float32 `toml:"rotation"`
	Scale    [3]float32 `toml:"scale"`
	Color    string     `toml:"color"`
}

func main() {
	expr := flag.String("e", "", "Lua source to run before any script files")
	empty := flag.Bool("empty", false, "start without the default mushroom")
	format := flag.String("format", "table", "output format: table or toml")
	logLevel := flag.String("log-level", "warn", "log level (debug, info, warn, error)")
	flag.Parse()

	level, err := config.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	opts := []editor.Option{editor.WithLogger(log)}
	if *empty {
		opts = append(opts, editor.WithoutSeed())
	}
	ed := editor.New(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := macro.New(ed, macro.WithLogger(log), macro.WithOutput(os.Stdout))
	if *expr != "" {
		if err := runner.Run(ctx, "-e", *expr); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
	for _, path := range flag.Args() {
		if err := runner.RunFile(ctx, path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	switch *format {
	case "toml":
		err = writeTOML(os.Stdout, ed.Objects())
	case "table":
		err = writeTable(os.Stdout, ed)
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func writeTable(w io.Writer, ed *editor.Editor) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEL\tNAME\tTYPE\tPOSITION\tCOLOR")
	for _, obj := range ed.Objects() {
		sel := ""
		if ed.IsSelected(obj.ID) {
			sel = "*"
		}
		p := obj.Position
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f, %.2f, %.2f\t%s\n", sel, obj.Name, obj.Type, p.X(), p.Y(), p.Z(), obj.Color)
	}
	past, future := ed.HistoryLen()
	fmt.Fprintf(tw, "\n%d objects, history %d/%d, mode %s\n", ed.Len(), past, future, ed.TransformMode())
	return tw.Flush()
}

func writeTOML(w io.Writer, objs []engine.SceneObject) error {
	var f sceneFile
	for _, obj := range objs {
		f.Objects = append(f.Objects, objectEntry{
			ID:       obj.ID.String(),
			Type:     obj.Type.String(),
			Name:     obj.Name,
			Position: obj.Position,
			Rotation: obj.Rotation,
			Scale:    obj.Scale,
			Color:    obj.Color,
		})
	}
	return toml.NewEncoder(w).Encode(f)
}
