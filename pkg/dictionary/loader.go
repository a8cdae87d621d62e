// Package dictionary loads weighted vocabularies from disk. It owns every
// file-format concern so the suggest indexes only ever see in-memory
// (word, score) pairs.
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/prajithkb/autocomplete/pkg/suggest"
)

// Load reads a vocabulary file, detecting the format from the file itself.
// maxWords of zero means no limit.
func Load(path string, maxWords int) ([]suggest.Suggestion, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}
	switch format {
	case FormatText:
		return LoadTextFile(path, maxWords)
	case FormatPack:
		return LoadPack(path, maxWords)
	}
	return nil, fmt.Errorf("unsupported dictionary format for %s", path)
}

// LoadTextFile reads a plain-text vocabulary: one entry per line, either
// "word" or "word <score>". A missing score defaults to the word's length.
// Blank lines and lines starting with '#' are skipped; malformed lines are
// logged and dropped rather than failing the whole load.
func LoadTextFile(path string, maxWords int) ([]suggest.Suggestion, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	var vocab []suggest.Suggestion
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entry, err := parseLine(line)
		if err != nil {
			log.Warnf("Skipping %s:%d: %v", path, lineNo, err)
			continue
		}
		vocab = append(vocab, entry)
		if maxWords > 0 && len(vocab) >= maxWords {
			log.Debugf("Word limit reached (%d), stopping at line %d", maxWords, lineNo)
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dictionary %s: %w", path, err)
	}

	log.Debugf("Loaded %d words from %s", len(vocab), path)
	return vocab, nil
}

func parseLine(line string) (suggest.Suggestion, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 1:
		return suggest.Suggestion{Word: fields[0], Score: uint32(len(fields[0]))}, nil
	case 2:
		score, err := strconv.ParseUint(fields[1], 10, 32)
		if err != nil {
			return suggest.Suggestion{}, fmt.Errorf("bad score %q: %w", fields[1], err)
		}
		return suggest.Suggestion{Word: fields[0], Score: uint32(score)}, nil
	}
	return suggest.Suggestion{}, fmt.Errorf("expected 1 or 2 fields, got %d", len(fields))
}
