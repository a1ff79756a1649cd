// Package dlxfile reads and writes exact-cover problems in Donald Knuth's
// plain-text .dlx format: a header line of primary items, optionally
// followed by "|" and a list of secondary items, then one line per option
// listing its items. Lines starting with "|" or "/", and blank lines, are
// comments, both before and after the header.
package dlxfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadFile parses a .dlx file, returning its options alongside the
// explicit primary/secondary item lists declared in its header. colored
// reports whether the header included a secondary-item section (and so
// option tokens may carry "item:color" suffixes).
func ReadFile(path string) (options [][]string, primary, secondary []string, colored bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, nil, false, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	headerSeen := false

	for scanner.Scan() {
		line := scanner.Text()

		if !headerSeen {
			trimmed := strings.TrimLeft(line, " \t")
			if trimmed == "" || strings.HasPrefix(trimmed, "|") || strings.HasPrefix(trimmed, "/") {
				continue
			}
			headerSeen = true

			parts := strings.SplitN(trimmed, "|", 2)
			primary = strings.Fields(parts[0])
			if len(parts) > 1 {
				secondary = strings.Fields(parts[1])
				colored = true
			}
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "|") || strings.HasPrefix(fields[0], "/") {
			continue
		}
		options = append(options, fields)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, nil, false, err
	}

	return options, primary, secondary, colored, nil
}

// WriteFile writes options to a Knuth-formatted .dlx file. primary and
// secondary declare the header explicitly; pass secondary as nil to omit
// the "|" section entirely (an uncolored problem).
func WriteFile(path string, options [][]string, primary, secondary []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	for _, item := range primary {
		fmt.Fprintf(w, "%s ", item)
	}
	if len(secondary) > 0 {
		w.WriteString("| ")
		for _, item := range secondary {
			fmt.Fprintf(w, "%s ", item)
		}
	}
	w.WriteString("\n")

	for _, option := range options {
		for _, item := range option {
			fmt.Fprintf(w, "%s ", item)
		}
		w.WriteString("\n")
	}

	return w.Flush()
}
