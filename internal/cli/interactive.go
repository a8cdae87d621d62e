package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/prajithkb/autocomplete/pkg/suggest"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true)
	wordStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	scoreStyle  = lipgloss.NewStyle().Faint(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// Interactive runs a raw-mode terminal session that re-queries the index on
// every keystroke of an incrementally built prefix.
type Interactive struct {
	auto  suggest.Autocompleter
	limit int
	out   io.Writer
}

// NewInteractive creates an interactive session over stdout.
func NewInteractive(auto suggest.Autocompleter, limit int) *Interactive {
	if limit < 1 || limit > suggest.MaxSuggestions {
		limit = suggest.MaxSuggestions
	}
	return &Interactive{auto: auto, limit: limit, out: os.Stdout}
}

// Run switches the terminal to raw mode and loops over keystrokes until Esc
// or Ctrl+C. The terminal is always restored on the way out.
func (it *Interactive) Run() error {
	fd := os.Stdin.Fd()
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer term.Restore(fd, state)

	fmt.Fprintf(it.out, "%s\r\n%s\r\n",
		promptStyle.Render("Autocomplete"),
		hintStyle.Render("type to search, Backspace to edit, Enter to clear, Esc to quit"))

	reader := bufio.NewReader(os.Stdin)
	var prefix []byte
	it.render(string(prefix))

	for {
		b, err := reader.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("failed to read key: %w", err)
		}

		switch {
		case b == 0x1b || b == 0x03: // Esc, Ctrl+C
			fmt.Fprint(it.out, "\r\n\x1b[J")
			return nil
		case b == 0x7f || b == 0x08: // Backspace
			if len(prefix) > 0 {
				prefix = prefix[:len(prefix)-1]
			}
		case b == '\r' || b == '\n':
			prefix = prefix[:0]
		case b >= 0x20 && b < 0x7f:
			prefix = append(prefix, b)
		default:
			continue
		}
		it.render(string(prefix))
	}
	return nil
}

// render redraws the prompt line and the suggestion list below it, then
// parks the cursor back at the end of the input.
func (it *Interactive) render(prefix string) {
	suggestions := it.auto.Suggestions(prefix)
	if len(suggestions) > it.limit {
		suggestions = suggestions[:it.limit]
	}

	fmt.Fprint(it.out, "\r\x1b[J")
	fmt.Fprintf(it.out, "%s %s\r\n", promptStyle.Render(">"), prefix)
	for _, s := range suggestions {
		fmt.Fprintf(it.out, "  %s %s\r\n",
			wordStyle.Render(s.Word),
			scoreStyle.Render(fmt.Sprintf("(%d)", s.Score)))
	}
	// cursor up past the suggestion lines onto the prompt, then right past
	// "> " and the prefix
	fmt.Fprintf(it.out, "\x1b[%dA\r", len(suggestions)+1)
	if n := len(prefix) + 2; n > 0 {
		fmt.Fprintf(it.out, "\x1b[%dC", n)
	}
}
