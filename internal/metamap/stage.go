// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metamap

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	inputPattern  = "metamap-in-*.txt"
	outputPattern = "metamap-out-*.txt"
)

// lineBreaks flattens a sentence onto a single input line.
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

// asciiFold strips combining marks after NFD; any rune still outside ASCII
// becomes a space.
func asciiFold() transform.Transformer {
	return transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		runes.Map(func(r rune) rune {
			if r > unicode.MaxASCII {
				return ' '
			}
			return r
		}),
	)
}

// foldASCII applies asciiFold to s.
func foldASCII(s string) (string, error) {
	out, _, err := transform.String(asciiFold(), s)
	if err != nil {
		return "", fmt.Errorf("folding %q to ASCII: %w", s, err)
	}
	return out, nil
}

// formatLines renders sentences in sldi or sldiID layout.
func formatLines(o *Options) ([]string, error) {
	lines := make([]string, len(o.Sentences))
	for i, s := range o.Sentences {
		s = lineBreaks.Replace(s)
		if o.FoldASCII {
			folded, err := foldASCII(s)
			if err != nil {
				return nil, err
			}
			s = folded
		}
		if len(o.IDs) > 0 {
			s = o.IDs[i] + "|" + s
		}
		lines[i] = s
	}
	return lines, nil
}

// stageSentences writes the sentences to a new temp file in dir and returns
// its path. The file is closed on return; the caller owns its removal.
func stageSentences(dir string, o *Options) (path string, err error) {
	lines, err := formatLines(o)
	if err != nil {
		return "", err
	}

	f, err := os.CreateTemp(dir, inputPattern)
	if err != nil {
		return "", fmt.Errorf("creating input file: %w", err)
	}
	path = f.Name()
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing input file: %w", cerr)
		}
	}()

	w := bufio.NewWriter(f)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return path, fmt.Errorf("writing input file: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return path, fmt.Errorf("writing input file: %w", err)
	}
	return path, nil
}

// createOutput reserves a unique, empty output file in dir and returns its
// path.
func createOutput(dir string) (string, error) {
	f, err := os.CreateTemp(dir, outputPattern)
	if err != nil {
		return "", fmt.Errorf("creating output file: %w", err)
	}
	if err := f.Close(); err != nil {
		return f.Name(), fmt.Errorf("closing output file: %w", err)
	}
	return f.Name(), nil
}
