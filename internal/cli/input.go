// Package cli provides the terminal front-ends: a line-oriented handler for
// testing and debugging, and a raw-mode interactive session that queries on
// every keystroke.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/prajithkb/autocomplete/internal/utils"
	"github.com/prajithkb/autocomplete/pkg/suggest"
)

// InputHandler reads one prefix per line from stdin and prints suggestions.
// It accepts flags controlling minimum and maximum prefix length, the
// display limit, and input filtering.
type InputHandler struct {
	auto            suggest.Autocompleter
	minPrefixLength int
	maxPrefixLength int
	suggestLimit    int
	noFilter        bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(auto suggest.Autocompleter, minLength, maxLength, limit int, noFilter bool) *InputHandler {
	return &InputHandler{
		auto:            auto,
		minPrefixLength: minLength,
		maxPrefixLength: maxLength,
		suggestLimit:    limit,
		noFilter:        noFilter,
	}
}

// Start begins the interface loop. It continuously prompts for input, reads
// a line from stdin, and passes the trimmed input to handleInput(). The loop
// terminates when reading from stdin fails (Ctrl+C or EOF).
func (h *InputHandler) Start() error {
	log.Print("Autocomplete CLI")
	reader := bufio.NewReader(os.Stdin)
	log.Print("type a prefix and press Enter to see the suggestions (Ctrl+C to exit):")

	for {
		log.Print("> ")
		prefix, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		prefix = strings.TrimSpace(prefix)
		if prefix == "" {
			continue
		}
		h.handleInput(prefix)
	}
}

// handleInput validates a single prefix, queries the index and pretty-prints
// the ranked results.
func (h *InputHandler) handleInput(prefix string) {
	if len(prefix) < h.minPrefixLength {
		log.Errorf("Prefix too short: %s", prefix)
		return
	}
	if len(prefix) > h.maxPrefixLength {
		log.Errorf("Prefix too long: %s", prefix)
		return
	}

	if !h.noFilter {
		if !utils.IsValidInput(prefix) {
			log.Warnf("No suggestions for prefix: '%s' (filtered out)", prefix)
			return
		}
	} else {
		log.Debug("Input filtering disabled")
	}

	start := time.Now()
	suggestions := h.auto.Suggestions(prefix)
	elapsed := time.Since(start)
	log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	if len(suggestions) == 0 {
		log.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}
	if len(suggestions) > h.suggestLimit && h.suggestLimit > 0 {
		suggestions = suggestions[:h.suggestLimit]
	}

	log.Printf("Found %d suggestions for prefix '%s':", len(suggestions), prefix)
	for i, s := range suggestions {
		fmtScore := utils.FormatWithCommas(int(s.Score))
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
		log.Printf("%2d. %-40s (score: %8s)", i+1, clWord, fmtScore)
	}
}
