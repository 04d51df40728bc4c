package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"quickpanel/internal/config"
	"quickpanel/internal/tmux"
	"quickpanel/internal/trace"
	"quickpanel/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// flags holds the parsed command line. Only flags the user set override the
// loaded config.
type flags struct {
	config string
	size   int
	debug  bool
	popup  bool
	set    map[string]bool
}

func parseFlags(fs *flag.FlagSet, args []string) (flags, error) {
	var f flags
	fs.StringVar(&f.config, "config", "", "path to a config file (toml, yaml or json)")
	fs.IntVar(&f.size, "size", 0, "base panel size in columns")
	fs.BoolVar(&f.debug, "debug", false, "log to quickpanel.log and enable the trace strip")
	fs.BoolVar(&f.popup, "popup", false, "open in a tmux popup when running inside tmux")

	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: quickpanel [flags]\n\n")
		fmt.Fprintf(fs.Output(), "quickpanel is a quick settings panel for the terminal.\n")
		fmt.Fprintf(fs.Output(), "Click the launcher to expand it; press q to quit.\n\n")
		fmt.Fprintf(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return flags{}, err
	}
	f.set = make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })
	return f, nil
}

// apply overrides c with the flags that were set on the command line.
func (f flags) apply(c config.Config) (config.Config, error) {
	if f.set["size"] {
		c.Panel.Size = f.size
	}
	if f.set["debug"] {
		c.Debug = f.debug
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, err
	}
	return c, nil
}

// reloadMsg turns an edited config into a remount message. Command-line
// overrides still win over the file.
func reloadMsg(f flags, c config.Config) (ui.OptionsReloadedMsg, error) {
	c, err := f.apply(c)
	if err != nil {
		return ui.OptionsReloadedMsg{}, err
	}
	return ui.OptionsReloadedMsg{
		Options: c.PanelOptions(),
		Size:    c.Panel.Size,
		Margin:  c.Panel.Margin,
	}, nil
}

// popupArgv returns the command the popup runs: the same binary and
// arguments without --popup.
func popupArgv(exe string, args []string) []string {
	argv := []string{exe}
	for _, a := range args {
		name := strings.TrimLeft(a, "-")
		if a != name && (name == "popup" || strings.HasPrefix(name, "popup=")) {
			continue
		}
		argv = append(argv, a)
	}
	return argv
}

// popupSize is the popup's outer size in cells: the expanded panel plus
// margin, help bar and the popup's own border.
func popupSize(c config.Config) (int, int) {
	r := ui.NewGeometry(c.Panel.Size).Expanded()
	return r.W + 2*c.Panel.Margin + 2, r.H + c.Panel.Margin/2 + 4
}

// setupLogging sends the standard logger to a file so it never writes over
// the alt screen. The returned closer is never nil.
func setupLogging(c config.Config) (io.Closer, error) {
	path := c.Log.File
	if path == "" && c.Debug {
		path = "quickpanel.log"
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := tea.LogToFile(path, "quickpanel")
	if err != nil {
		return nil, fmt.Errorf("log file %s: %w", path, err)
	}
	return f, nil
}

func run(ctx context.Context, f flags, args []string) error {
	v := config.New(f.config)
	c, err := config.Load(v)
	if err != nil {
		return err
	}
	if c, err = f.apply(c); err != nil {
		return err
	}

	if f.popup && tmux.InTmux() {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve executable: %w", err)
		}
		w, h := popupSize(c)
		return tmux.Popup(ctx, w, h, popupArgv(exe, args))
	}

	logs, err := setupLogging(c)
	if err != nil {
		return err
	}
	defer logs.Close()

	exporter, err := trace.NewOTLPExporter(ctx)
	if err != nil {
		log.Printf("trace.NewOTLPExporter: %v (continuing without export)", err)
	}
	recorder := trace.NewRecorder(trace.DefaultCapacity, exporter)
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := recorder.Shutdown(shutdownCtx); err != nil {
			log.Printf("trace.Shutdown: %v", err)
		}
	}()

	model := ui.NewAppModel(ui.AppConfig{
		Options:  c.PanelOptions(),
		Size:     c.Panel.Size,
		Margin:   c.Panel.Margin,
		Recorder: recorder,
		Debug:    c.Debug,
	}).AsTeaModel()
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if config.Watch(ctx, v, func(nc config.Config) {
		msg, err := reloadMsg(f, nc)
		if err != nil {
			log.Printf("config.Watch: skipping reload: %v", err)
			return
		}
		p.Send(msg)
	}) {
		log.Printf("config.Watch: watching %s", v.ConfigFileUsed())
	}

	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

func main() {
	args := os.Args[1:]
	f, err := parseFlags(flag.NewFlagSet("quickpanel", flag.ContinueOnError), args)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		os.Exit(2)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := run(ctx, f, args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		cancel()
		os.Exit(1)
	}
}
