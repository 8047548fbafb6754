package target

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/weakwallet/scanner/internal/address"
)

// LoadCSV reads a target list as `address,label` lines (a bare address
// per line is accepted too, using the address itself as its label).
// Blank lines and lines starting with '#' are skipped. Returns Entries
// ready for Build.
func LoadCSV(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	var entries []Entry
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var addrStr, label string
		if idx := strings.IndexByte(line, ','); idx >= 0 {
			addrStr = strings.TrimSpace(line[:idx])
			label = strings.TrimSpace(line[idx+1:])
		} else {
			addrStr = line
			label = line
		}

		_, program, err := address.Parse(addrStr)
		if err != nil {
			return nil, fmt.Errorf("target: line %d: %q: %w", lineNo, addrStr, err)
		}
		entries = append(entries, Entry{Program: program, Label: label})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("target: read: %w", err)
	}
	return entries, nil
}
