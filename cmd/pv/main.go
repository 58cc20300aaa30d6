package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/Dicklesworthstone/protein_viewer/pkg/analytics"
	"github.com/Dicklesworthstone/protein_viewer/pkg/config"
	"github.com/Dicklesworthstone/protein_viewer/pkg/export"
	"github.com/Dicklesworthstone/protein_viewer/pkg/model"
	"github.com/Dicklesworthstone/protein_viewer/pkg/ui"
	"github.com/Dicklesworthstone/protein_viewer/pkg/version"
	"github.com/Dicklesworthstone/protein_viewer/pkg/watcher"
)

func main() {
	help := flag.Bool("help", false, "Show help")
	showVersion := flag.Bool("version", false, "Show version")
	configPath := flag.String("config", config.DefaultPath(), "Path to config file")
	feet := flag.Int("feet", 0, "Height, whole feet (2-8)")
	inches := flag.Int("inches", 0, "Height, whole inches (0-11)")
	printOnly := flag.Bool("print", false, "Print the timeline and exit")
	explain := flag.Bool("explain", false, "Include every range explanation when printing or exporting")
	prompt := flag.Bool("prompt", false, "Ask for height with a short form, then print")
	table := flag.Bool("table", false, "Print thresholds for every selectable height")
	svgPath := flag.String("svg", "", "Write the timeline as SVG to this path")
	pngPath := flag.String("png", "", "Write the timeline as PNG to this path")
	openExport := flag.Bool("open", false, "Open the exported file after writing it")
	intake := flag.Float64("intake", 0, "Show which range a daily intake in grams falls in")
	save := flag.Bool("save", false, "Save --feet/--inches as the default height in the config file")
	stats := flag.Bool("stats", false, "Show recorded usage counts")
	since := flag.Duration("since", 0, "With --stats, only count events from this far back (e.g. 24h)")
	flag.Parse()

	if *help {
		fmt.Println("Usage: pv [options]")
		fmt.Println("\nEstimate a daily protein range from height.")
		flag.PrintDefaults()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("pv version %s\n", version.Version)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	height := cfg.DefaultHeight()
	intakeSet := false
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "feet":
			height.Feet = *feet
		case "inches":
			height.Inches = *inches
		case "intake":
			intakeSet = true
		}
	})
	if err := height.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if *stats {
		if err := printStats(cfg, *since); err != nil {
			fmt.Printf("Error reading usage stats: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	if *save {
		cfg.DefaultFeet, cfg.DefaultInches = height.Feet, height.Inches
		if err := config.Save(*configPath, cfg); err != nil {
			fmt.Printf("Error saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Default height %s saved to %s\n", height, *configPath)
		return
	}

	if intakeSet {
		if err := export.WriteIntake(os.Stdout, height, *intake); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	tracker := openTracker(cfg)
	defer tracker.Close()
	ctx := context.Background()

	if *table {
		if err := export.WriteTable(os.Stdout, export.BuildCatalog()); err != nil {
			fmt.Printf("Error writing table: %v\n", err)
			os.Exit(1)
		}
		return
	}

	panels := model.Panels{}
	if *explain {
		panels = model.Panels{Low: true, Good: true, Optimal: true}
	}

	if *prompt {
		height, err = promptHeight(height)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		*printOnly = true
	}

	var exports []string
	for _, p := range []string{*svgPath, *pngPath} {
		if p != "" {
			exports = append(exports, p)
		}
	}
	if len(exports) > 0 {
		if err := export.WriteFiles(ctx, exports, height, panels); err != nil {
			fmt.Printf("Error exporting: %v\n", err)
			os.Exit(1)
		}
		tracker.Track(ctx, analytics.EventExported)
		for _, p := range exports {
			fmt.Printf("Wrote %s\n", p)
		}
		if *openExport {
			if err := export.OpenInBrowser(exports[0]); err != nil {
				fmt.Printf("Could not open %s: %v\n", exports[0], err)
			}
		}
		if !*printOnly {
			return
		}
	}

	if *printOnly || !term.IsTerminal(int(os.Stdout.Fd())) {
		tracker.Track(ctx, analytics.EventView)
		if err := export.WriteText(os.Stdout, height, panels); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runTUI(*configPath, cfg, height, tracker); err != nil {
		fmt.Printf("Error running protein viewer: %v\n", err)
		os.Exit(1)
	}
}

func openTracker(cfg config.Config) *analytics.Tracker {
	if !cfg.Analytics.Enabled {
		return analytics.NewTracker(nil)
	}
	store, err := analytics.OpenSQLite(cfg.Analytics.Path)
	if err != nil {
		log.Printf("Warning: could not open analytics database: %v", err)
		return analytics.NewTracker(nil)
	}
	return analytics.NewTracker(store)
}

func printStats(cfg config.Config, since time.Duration) error {
	store, err := analytics.OpenExistingSQLite(cfg.Analytics.Path)
	if errors.Is(err, os.ErrNotExist) {
		if !cfg.Analytics.Enabled {
			fmt.Println("Analytics is disabled. Enable it with analytics.enabled in the config file.")
		} else {
			fmt.Println("No usage recorded yet.")
		}
		return nil
	}
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	var counts map[analytics.EventName]int
	if since > 0 {
		events, err := store.Since(ctx, time.Now().Add(-since))
		if err != nil {
			return err
		}
		counts = make(map[analytics.EventName]int)
		for _, ev := range events {
			counts[ev.Name]++
		}
	} else {
		counts, err = store.Counts(ctx)
		if err != nil {
			return err
		}
	}
	if len(counts) == 0 {
		fmt.Println("No usage recorded.")
		return nil
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, string(name))
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("%-20s %d\n", name, counts[analytics.EventName(name)])
	}
	return nil
}

func promptHeight(start model.Height) (model.Height, error) {
	h := start
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Feet").
				Options(huh.NewOptions(model.FeetOptions...)...).
				Value(&h.Feet),
			huh.NewSelect[int]().
				Title("Inches").
				Options(huh.NewOptions(model.InchesOptions...)...).
				Value(&h.Inches),
		),
	)
	if err := form.Run(); err != nil {
		return start, fmt.Errorf("height prompt: %w", err)
	}
	return h, nil
}

func runTUI(configPath string, cfg config.Config, height model.Height, tracker *analytics.Tracker) error {
	// Stray log output would corrupt the alt screen.
	if os.Getenv("PV_DEBUG") != "" {
		f, err := tea.LogToFile("pv-debug.log", "pv")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	m := ui.NewModel(ui.Options{
		Height:  height,
		Theme:   ui.DefaultTheme(lipgloss.DefaultRenderer(), cfg.Theme),
		Tracker: tracker,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())

	w, err := watcher.NewFileWatcher(configPath, func() {
		next, err := config.Load(configPath)
		if err != nil {
			p.Send(ui.ConfigErrorMsg{Err: err})
			return
		}
		p.Send(ui.ConfigReloadedMsg{Config: next})
	})
	if err != nil {
		log.Printf("Warning: config changes will not be picked up: %v", err)
	} else {
		defer w.Close()
	}

	_, err = p.Run()
	return err
}
