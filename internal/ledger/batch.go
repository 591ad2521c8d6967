package ledger

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
)

// BatchItem is one date of a batch payload.
type BatchItem struct {
	Date  string
	Entry Partial
}

// Batch is an ordered list of partial entries, one per date.
type Batch []BatchItem

// ParseBatch decodes a JSON object of the form
//
//	{"2024-01-01": {"tasks": ["a", "b"], "reflection": "..."}, ...}
//
// keeping the dates in document order. The whole payload is validated before
// anything is returned: unknown fields, invalid dates, a date that appears
// twice, and trailing data are all errors.
func ParseBatch(data []byte) (Batch, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("parsing batch JSON: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.New("batch must be a JSON object keyed by date")
	}

	batch := Batch{}
	seen := make(map[string]bool)
	for dec.More() {
		item, err := decodeBatchItem(dec)
		if err != nil {
			return nil, err
		}
		if seen[item.Date] {
			return nil, fmt.Errorf("date %s appears more than once in batch", item.Date)
		}
		seen[item.Date] = true
		batch = append(batch, item)
	}

	// Closing brace of the top-level object.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("parsing batch JSON: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after batch object")
	}

	return batch, nil
}

// decodeBatchItem reads one "date": {...} member from dec.
func decodeBatchItem(dec *json.Decoder) (BatchItem, error) {
	tok, err := dec.Token()
	if err != nil {
		return BatchItem{}, fmt.Errorf("parsing batch JSON: %w", err)
	}
	date, ok := tok.(string)
	if !ok {
		return BatchItem{}, fmt.Errorf("parsing batch JSON: unexpected token %v", tok)
	}
	if err := ValidateDateKey(date); err != nil {
		return BatchItem{}, err
	}

	var partial Partial
	if err := dec.Decode(&partial); err != nil {
		return BatchItem{}, fmt.Errorf("parsing batch entry %s: %w", date, err)
	}
	return BatchItem{Date: date, Entry: partial}, nil
}

// BatchFromMap builds a batch from an unordered map, ordering dates ascending.
func BatchFromMap(entries map[string]Partial) (Batch, error) {
	dates := make([]string, 0, len(entries))
	for date := range entries {
		if err := ValidateDateKey(date); err != nil {
			return nil, err
		}
		dates = append(dates, date)
	}
	sort.Strings(dates)

	batch := make(Batch, 0, len(dates))
	for _, date := range dates {
		batch = append(batch, BatchItem{Date: date, Entry: entries[date]})
	}
	return batch, nil
}
