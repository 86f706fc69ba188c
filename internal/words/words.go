// apps/go-term/internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load one word list per supported length (4, 5, 6) from configured files
//     or fall back to the embedded defaults in the assets package.
//   - Maintain sets for quick membership lookups.
//   - Supply Words, Contains, Count and Lengths for the engine and the CLI.
//
// File formats (chosen by extension):
//   - .txt:          one word per line, '#' comments and blank lines ignored.
//   - .yaml / .yml:  a YAML sequence of words.
//
// Constraints:
//   • Words must be exactly N alphabetic letters; other entries are skipped.
//   • Lists are normalized to uppercase and de-duplicated (first wins).

package words

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-term/assets"
)

// Dictionary holds the valid words for each supported length.
type Dictionary struct {
	lists map[int][]string
	sets  map[int]map[string]struct{}
}

// Load builds a dictionary. files maps a word length to a word file; lengths
// without a file use the embedded defaults. Every length must end up with at
// least one word.
func Load(files map[int]string) (*Dictionary, error) {
	d := &Dictionary{
		lists: make(map[int][]string),
		sets:  make(map[int]map[string]struct{}),
	}
	lengths := append([]int{}, assets.Lengths...)
	for n := range files {
		if !slices.Contains(lengths, n) {
			lengths = append(lengths, n)
		}
	}
	sort.Ints(lengths)

	for _, n := range lengths {
		var raw []string
		var err error
		if path := files[n]; path != "" {
			raw, err = readWordFile(path)
			if err != nil {
				return nil, fmt.Errorf("words: read %d-letter list %s: %w", n, path, err)
			}
		} else {
			raw, err = assets.DefaultWords(n)
			if err != nil {
				return nil, fmt.Errorf("words: embedded %d-letter list: %w", n, err)
			}
		}
		list := normalize(raw, n)
		if len(list) == 0 {
			return nil, fmt.Errorf("words: %d-letter list is empty", n)
		}
		if skipped := len(raw) - len(list); skipped > 0 {
			log.Debug().Int("length", n).Int("skipped", skipped).Msg("dropped invalid or duplicate words")
		}
		d.lists[n] = list
		d.sets[n] = toSet(list)
	}
	return d, nil
}

// FromLists builds a dictionary from in-memory lists (tests, tools).
func FromLists(lists map[int][]string) *Dictionary {
	d := &Dictionary{
		lists: make(map[int][]string),
		sets:  make(map[int]map[string]struct{}),
	}
	for n, raw := range lists {
		list := normalize(raw, n)
		d.lists[n] = list
		d.sets[n] = toSet(list)
	}
	return d
}

// readWordFile loads a word file as raw entries.
func readWordFile(path string) ([]string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		var out []string
		if err := yaml.Unmarshal(b, &out); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		return out, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}

// normalize upper-cases entries and keeps unique n-letter alphabetic words.
func normalize(raw []string, n int) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, s := range raw {
		w := strings.ToUpper(strings.TrimSpace(s))
		if len(w) != n || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// toSet converts a list of strings into a lookup set.
func toSet(list []string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Lengths returns the loaded word lengths in ascending order.
func (d *Dictionary) Lengths() []int {
	out := make([]int, 0, len(d.lists))
	for n := range d.lists {
		out = append(out, n)
	}
	sort.Ints(out)
	return out
}

// Words returns the list for a length. Callers must not modify it.
func (d *Dictionary) Words(length int) []string {
	return d.lists[length]
}

// Contains reports whether w is a valid word of the given length.
func (d *Dictionary) Contains(length int, w string) bool {
	_, ok := d.sets[length][strings.ToUpper(w)]
	return ok
}

// Count returns how many words are loaded for a length.
func (d *Dictionary) Count(length int) int {
	return len(d.lists[length])
}

// Supports reports whether a length has a word list.
func (d *Dictionary) Supports(length int) bool {
	return len(d.lists[length]) > 0
}
