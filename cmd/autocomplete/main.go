/*
Package main implements the autocomplete server and terminal front-ends.

The core is a compressed trie over a weighted vocabulary: every node caches
the best-ranked suggestions below it, so a query costs the walk of the
prefix instead of a scan of the dictionary. A brute-force linear index with
identical ranking ships alongside it as the validation and benchmark
baseline, selectable at startup.

# Usage

Serve msgpack IPC over stdin/stdout (the default mode):

	autocomplete -data data/words.txt

Run the line-oriented CLI for testing and debugging:

	autocomplete -c -data data/words.txt -limit 5

Run the raw-mode interactive session, re-querying on every keystroke:

	autocomplete -i -data data/words.txt

Back the session with the linear-scan baseline instead of the trie:

	autocomplete -i -index naive

# Dictionaries

The -data flag accepts a plain text vocabulary (one "word score" pair per
line; the score defaults to the word's length when omitted) or a packed
msgpack dictionary produced by the dictionary package. The format is
detected from the file.

# Configuration

Runtime settings live in a TOML file created with defaults on first run:

	[server]
	min_prefix = 1
	max_prefix = 60
	enable_filter = true

	[dict]
	path = "data/words.txt"
	max_words = 0

	[cli]
	default_limit = 5

Flags take precedence over the file for the session they are given in.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/prajithkb/autocomplete/internal/cli"
	"github.com/prajithkb/autocomplete/pkg/config"
	"github.com/prajithkb/autocomplete/pkg/dictionary"
	"github.com/prajithkb/autocomplete/pkg/server"
	"github.com/prajithkb/autocomplete/pkg/suggest"
)

const (
	Version = "1.0.0"
	AppName = "autocomplete"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and index together and hands control to the
// selected front-end; it implements no completion logic itself.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dataPath := flag.String("data", "", "Vocabulary file (text or packed); overrides the config path")
	configPath := flag.String("config", "autocomplete.toml", "Path to the TOML config file")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run the line-oriented CLI instead of the IPC server")
	interactive := flag.Bool("i", false, "Run the raw-mode interactive session")
	indexKind := flag.String("index", "trie", "Index backing the session: trie or naive")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to display")
	minPrefix := flag.Int("prmin", defaults.CLI.DefaultMinLen, "Minimum prefix length for CLI suggestions")
	maxPrefix := flag.Int("prmax", defaults.CLI.DefaultMaxLen, "Maximum prefix length for CLI suggestions")
	noFilter := flag.Bool("no-filter", defaults.CLI.DefaultNoFilter, "Disable input filtering in the CLI")
	wordLimit := flag.Int("words", defaults.Dict.MaxWords, "Maximum number of words to load (0 for all)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	path := cfg.Dict.Path
	if *dataPath != "" {
		path = *dataPath
	}

	start := time.Now()
	vocab, err := dictionary.Load(path, *wordLimit)
	if err != nil {
		log.Fatalf("Failed to load vocabulary from %s: %v", path, err)
	}
	log.Debugf("Read %d words from %s in %v", len(vocab), path, time.Since(start))

	auto, err := buildIndex(*indexKind, vocab)
	if err != nil {
		log.Fatalf("%v", err)
	}

	switch {
	case *interactive:
		session := cli.NewInteractive(auto, *limit)
		if err := session.Run(); err != nil {
			log.Fatalf("Interactive session error: %v", err)
		}
	case *cliMode:
		log.Debug("Input info:",
			"minPrefix", *minPrefix,
			"maxPrefix", *maxPrefix,
			"limit", *limit,
			"noFilter", *noFilter)
		handler := cli.NewInputHandler(auto, *minPrefix, *maxPrefix, *limit, *noFilter)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	default:
		showStartupInfo(path, *indexKind, len(vocab))
		srv := server.NewServer(auto, cfg.Server)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

// buildIndex constructs the selected index and logs how long it took; the
// naive baseline stays selectable so the two can be compared end to end.
func buildIndex(kind string, vocab []suggest.Suggestion) (suggest.Autocompleter, error) {
	start := time.Now()
	switch kind {
	case "trie":
		trie := suggest.NewTrie(vocab)
		log.Debugf("Built trie index for %d words in %v", len(vocab), time.Since(start))
		return trie, nil
	case "naive":
		naive := suggest.NewNaive(vocab)
		log.Debugf("Built naive index for %d words in %v", len(vocab), time.Since(start))
		return naive, nil
	}
	return nil, fmt.Errorf("unknown index kind %q (want trie or naive)", kind)
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ autocomplete ] prefix suggestions from a weighted vocabulary")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
}

// showStartupInfo displays basic info before the server takes over stdio.
func showStartupInfo(dataPath, indexKind string, words int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("index: %s, words: %d", indexKind, words)
	log.Infof("data: ( %s )", dataPath)
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
