package assets

import (
	"bufio"
	"embed"
	"fmt"
	"strings"
)

//go:embed words4.txt words5.txt words6.txt
var FS embed.FS

// Lengths lists the word lengths that ship with an embedded default list.
var Lengths = []int{4, 5, 6}

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
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
		out = append(out, strings.ToUpper(s))
	}
	return out, sc.Err()
}

// DefaultWords returns the embedded word list for a length (uppercase).
func DefaultWords(length int) ([]string, error) {
	return readLines(fmt.Sprintf("words%d.txt", length))
}
