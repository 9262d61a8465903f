// ABOUTME: Entry point for the mini-seller lead console
// ABOUTME: Wires simulator config, stores, preferences and the TUI together
package main

import (
	_ "embed"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/jeremiasmarinho/mini-seller-console/leads"
	"github.com/jeremiasmarinho/mini-seller-console/prefs"
	"github.com/jeremiasmarinho/mini-seller-console/store"
	"github.com/jeremiasmarinho/mini-seller-console/tui"
)

const version = "0.1.0"

//go:embed leads.json
var sampleLeads []byte

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	seedPath := flag.String("seed", "", "Path to a leads JSON file (default: embedded sample data)")
	prefsPath := flag.String("prefs-path", "", "Preferences database path (default: XDG state dir)")
	logPath := flag.String("log-file", "", "Log file path (default: XDG state dir)")
	flag.Parse()

	if *showVersion {
		fmt.Printf("mini-seller version %s\n", version)
		os.Exit(0)
	}

	// Optional .env for simulator tuning; missing files are fine.
	_ = godotenv.Load()

	// The TUI owns stdout, so logs go to a file.
	if *logPath == "" {
		*logPath = filepath.Join(xdg.StateHome, "mini-seller", "console.log")
	}
	if file := openLogFile(*logPath); file != nil {
		defer file.Close()
		log.SetOutput(file)
	}

	sim := store.NewSimulator()
	if raw := os.Getenv("MINISELLER_FAIL_PROB"); raw != "" {
		if p, err := strconv.ParseFloat(raw, 64); err == nil && p >= 0 && p <= 1 {
			sim.FailProb = p
		} else {
			log.Printf("ignoring invalid MINISELLER_FAIL_PROB %q", raw)
		}
	}
	if raw := os.Getenv("MINISELLER_LATENCY_SCALE"); raw != "" {
		if factor, err := strconv.ParseFloat(raw, 64); err == nil && factor >= 0 {
			sim.Latencies = sim.Latencies.Scale(factor)
		} else {
			log.Printf("ignoring invalid MINISELLER_LATENCY_SCALE %q", raw)
		}
	}

	var seed store.SeedSource = store.BytesSource{Data: sampleLeads}
	if *seedPath != "" {
		seed = store.JSONFileSource{Path: *seedPath}
	}

	if *prefsPath == "" {
		*prefsPath = prefs.DefaultPath()
	}
	prefStore, err := prefs.Open(*prefsPath)
	if err != nil {
		// Preferences are best-effort; run without them.
		log.Printf("preferences unavailable: %v", err)
		prefStore = nil
	}
	defer prefStore.Close()

	ctrl := leads.NewController(
		store.NewLeadStore(sim, seed),
		store.NewOpportunityStore(sim),
	)

	program := tea.NewProgram(tui.NewModel(ctrl, prefStore), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Fatalf("console failed: %v", err)
	}
}

func openLogFile(path string) *os.File {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil
	}
	return file
}
