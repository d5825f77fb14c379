package mint

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// GroupMap maps a transaction category to its spending group. Categories
// absent from the map fall back to their own name as group.
type GroupMap map[string]string

// Group returns the spending group for the category, defaulting to the
// category itself when unmapped.
func (g GroupMap) Group(category string) string {
	if grp, ok := g[category]; ok {
		return grp
	}
	return category
}

// DecodeGroupMap reads a group definition file: a CSV whose header row names
// the spending groups and whose columns list, one per row, the categories
// belonging to each group. Columns are ragged; empty cells are skipped. A
// category listed under several groups keeps the last assignment.
func DecodeGroupMap(r io.Reader) (GroupMap, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, &FormatError{Source: "group definitions", Err: err}
	}
	if len(rows) == 0 {
		return nil, &FormatError{Source: "group definitions", Err: fmt.Errorf("empty file")}
	}
	groups := rows[0]
	gm := make(GroupMap)
	for col, group := range groups {
		group = strings.TrimSpace(group)
		if group == "" {
			continue
		}
		for _, row := range rows[1:] {
			if col >= len(row) {
				continue
			}
			category := strings.TrimSpace(row[col])
			if category == "" {
				continue
			}
			if prev, ok := gm[category]; ok && prev != group {
				log.Printf("category %q listed under both %q and %q, keeping %q", category, prev, group, group)
			}
			gm[category] = group
		}
	}
	return gm, nil
}

// LoadGroupMap reads a group definition file from disk.
func LoadGroupMap(path string) (GroupMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	defer f.Close()
	gm, err := DecodeGroupMap(f)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return gm, nil
}

// AssignGroups stamps every transaction's spending group from the map.
// Already-assigned groups are recomputed, so the operation is idempotent.
func (l *Ledger) AssignGroups(gm GroupMap) {
	for i := range l.transactions {
		l.transactions[i].SpendingGroup = gm.Group(l.transactions[i].Category)
	}
}

// Exclusion marks a spending group to leave out of spending and income
// extraction. HideAnalysis additionally suppresses the payments/income
// breakdown normally printed for the excluded group.
type Exclusion struct {
	Group        string
	HideAnalysis bool
}

// DecodeExclusionList reads the exclusion CSV: a header row followed by one
// row per excluded group with an optional boolean second column. A missing
// or empty second cell hides the analysis; listing the group is enough to
// silence it, and an explicit "false" opts back in.
func DecodeExclusionList(r io.Reader) ([]Exclusion, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, &FormatError{Source: "exclusion list", Err: err}
	}
	var list []Exclusion
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}
		e := Exclusion{Group: strings.TrimSpace(row[0]), HideAnalysis: true}
		if len(row) > 1 && strings.TrimSpace(row[1]) != "" {
			hide, err := strconv.ParseBool(strings.TrimSpace(row[1]))
			if err != nil {
				return nil, &FormatError{Source: "exclusion list", Err: fmt.Errorf("row %d: %w", i+1, err)}
			}
			e.HideAnalysis = hide
		}
		list = append(list, e)
	}
	return list, nil
}

// LoadExclusionList reads the exclusion CSV from disk. A missing file is not
// an error: nothing is excluded.
func LoadExclusionList(path string) ([]Exclusion, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	defer f.Close()
	list, err := DecodeExclusionList(f)
	if err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return list, nil
}
