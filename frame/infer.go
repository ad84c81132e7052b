package frame

import (
	"fmt"
	"strconv"
)

// InferType returns the narrowest ColumnType which parses every one of the
// given raw cells. Candidates are tried in order int64 -> float64 -> bool,
// falling back to object (string) when nothing narrower fits. Missing cells
// must be excluded by the caller; a column with no observed cells is typed
// object.
func InferType(raws []string) ColumnType {
	if len(raws) == 0 {
		return &StringColumnType{}
	}
	allInt, allFloat, allBool := true, true, true
	for _, raw := range raws {
		if allInt {
			if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
				allInt = false
			}
		}
		if allFloat {
			if _, err := strconv.ParseFloat(raw, 64); err != nil {
				allFloat = false
			}
		}
		if allBool {
			if _, err := strconv.ParseBool(raw); err != nil {
				allBool = false
			}
		}
		if !allInt && !allFloat && !allBool {
			break
		}
	}
	switch {
	case allInt:
		return &IntColumnType{}
	case allFloat:
		return &FloatColumnType{}
	case allBool:
		return &BoolColumnType{}
	default:
		return &StringColumnType{}
	}
}

// UniqueNames disambiguates duplicate column names by suffixing later
// occurrences with a counter, e.g. ["name", "name"] -> ["name", "name_2"].
func UniqueNames(names []string) []string {
	seen := make(map[string]int, len(names))
	out := make([]string, len(names))
	for i, name := range names {
		seen[name]++
		if seen[name] == 1 {
			out[i] = name
			continue
		}
		candidate := fmt.Sprintf("%s_%d", name, seen[name])
		for seen[candidate] > 0 {
			seen[name]++
			candidate = fmt.Sprintf("%s_%d", name, seen[name])
		}
		seen[candidate]++
		out[i] = candidate
	}
	return out
}

// FromRaw builds a typed Frame from a header and raw string records, inferring
// a ColumnType for each column. Cells equal to nilValue (or empty) are treated
// as missing. Duplicate header names are disambiguated with UniqueNames.
func FromRaw(names []string, records [][]string, nilValue string) (*Frame, error) {
	names = UniqueNames(names)
	schema := CreateSchema()
	colTypes := make([]ColumnType, len(names))
	for i, name := range names {
		observed := make([]string, 0, len(records))
		for _, record := range records {
			if i < len(record) && len(record[i]) > 0 && record[i] != nilValue {
				observed = append(observed, record[i])
			}
		}
		colTypes[i] = InferType(observed)
		if _, err := schema.CreateColumn(name, colTypes[i]); err != nil {
			return nil, err
		}
	}
	f := CreateFrame(schema)
	for _, record := range records {
		if len(record) != len(names) {
			return nil, checkWidth(schema, make([]interface{}, len(record)))
		}
		cells := make([]interface{}, len(record))
		for i, raw := range record {
			if len(raw) == 0 || raw == nilValue {
				continue
			}
			val, err := colTypes[i].Parse(raw)
			if err != nil {
				return nil, fmt.Errorf("column %s: %w", names[i], err)
			}
			cells[i] = val
		}
		if err := f.AppendRow(cells); err != nil {
			return nil, err
		}
	}
	return f, nil
}
