package deallog

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arcanaland/dealer/internal/card"
)

// Parse reads records from r. Blank lines between records are skipped.
func Parse(r io.Reader) ([]Record, error) {
	var records []Record
	var pending *Record

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())

		if pending == nil {
			if text == "" {
				continue
			}

			t, err := ParseTime(text)
			if err != nil {
				return records, fmt.Errorf("line %d: expected a date, got %q", line, text)
			}
			pending = &Record{Time: t, Stamp: text, Line: line}
			continue
		}

		hand, err := card.ParseHand(text)
		if err != nil {
			return records, fmt.Errorf("line %d: %w", line, err)
		}
		if hand.Empty() {
			return records, fmt.Errorf("line %d: no cards after date", line)
		}
		pending.Cards = hand
		records = append(records, *pending)
		pending = nil
	}

	if err := scanner.Err(); err != nil {
		return records, err
	}

	if pending != nil {
		return records, fmt.Errorf("line %d: date without cards", pending.Line)
	}

	return records, nil
}
