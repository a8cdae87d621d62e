package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/prajithkb/autocomplete/pkg/suggest"
)

// packMagic marks a packed dictionary; readers reject anything else before
// touching the entry stream.
const packMagic = "ACDICT1"

// packHeader leads a packed dictionary file.
type packHeader struct {
	Magic string `msgpack:"m"`
	Count int    `msgpack:"n"`
}

// packEntry is one vocabulary entry on the wire.
type packEntry struct {
	Word  string `msgpack:"w"`
	Score uint32 `msgpack:"s"`
}

// SavePack writes the vocabulary as a msgpack stream: header first, then one
// entry per element.
func SavePack(path string, vocab []suggest.Suggestion) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create pack %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	enc := msgpack.NewEncoder(w)
	if err := enc.Encode(packHeader{Magic: packMagic, Count: len(vocab)}); err != nil {
		return fmt.Errorf("failed to write pack header: %w", err)
	}
	for _, s := range vocab {
		if err := enc.Encode(packEntry{Word: s.Word, Score: s.Score}); err != nil {
			return fmt.Errorf("failed to write pack entry %q: %w", s.Word, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush pack %s: %w", path, err)
	}
	log.Debugf("Saved %d words to %s", len(vocab), path)
	return nil
}

// LoadPack reads a packed dictionary. maxWords of zero means no limit.
func LoadPack(path string, maxWords int) ([]suggest.Suggestion, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pack %s: %w", path, err)
	}
	defer file.Close()

	dec := msgpack.NewDecoder(bufio.NewReader(file))
	var header packHeader
	if err := dec.Decode(&header); err != nil {
		return nil, fmt.Errorf("failed to read pack header from %s: %w", path, err)
	}
	if header.Magic != packMagic {
		return nil, fmt.Errorf("%s is not a packed dictionary (magic %q)", path, header.Magic)
	}
	if header.Count < 0 {
		return nil, fmt.Errorf("invalid entry count in %s: %d", path, header.Count)
	}

	limit := header.Count
	if maxWords > 0 && maxWords < limit {
		limit = maxWords
	}
	vocab := make([]suggest.Suggestion, 0, limit)
	for i := 0; i < limit; i++ {
		var entry packEntry
		if err := dec.Decode(&entry); err != nil {
			if err == io.EOF {
				log.Warnf("Pack %s truncated: header said %d entries, got %d", path, header.Count, i)
				break
			}
			return nil, fmt.Errorf("failed to read pack entry %d: %w", i, err)
		}
		vocab = append(vocab, suggest.Suggestion{Word: entry.Word, Score: entry.Score})
	}

	log.Debugf("Loaded %d words from pack %s", len(vocab), path)
	return vocab, nil
}
