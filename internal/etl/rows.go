// Package etl implements the CSV dataset pipeline: reading and writing
// the canonical 13-column grammar CSVs, expanding them with sentence
// variations or harvested examples, merging per-level files and loading
// the result into the hosted store.
package etl

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Columns is the canonical column order of the dataset CSVs.
var Columns = []string{
	"level_code", "title", "pattern",
	"meaning_es", "meaning_en", "notes", "tags",
	"jp", "romaji", "es", "en", "hint", "source",
}

// Row is one dataset row. Every field is a plain string; emptiness is
// the only notion of absence the pipeline has.
type Row struct {
	LevelCode string
	Title     string
	Pattern   string
	MeaningES string
	MeaningEN string
	Notes     string
	Tags      string
	JP        string
	Romaji    string
	ES        string
	EN        string
	Hint      string
	Source    string
}

func (r *Row) fields() []*string {
	return []*string{
		&r.LevelCode, &r.Title, &r.Pattern,
		&r.MeaningES, &r.MeaningEN, &r.Notes, &r.Tags,
		&r.JP, &r.Romaji, &r.ES, &r.EN, &r.Hint, &r.Source,
	}
}

// IsEmpty reports whether every field of the row is blank.
func (r Row) IsEmpty() bool {
	for _, f := range r.fields() {
		if strings.TrimSpace(*f) != "" {
			return false
		}
	}
	return true
}

// MergeKey is the identity used for deduplication during a merge.
func (r Row) MergeKey() string {
	return strings.Join([]string{r.LevelCode, r.Title, r.Pattern, r.JP, r.ES}, "\x1f")
}

// GroupKey is the grammar point identity used by the loader.
func (r Row) GroupKey() string {
	return strings.Join([]string{r.LevelCode, r.Title, r.Pattern}, "\x1f")
}

// ReadRows reads a dataset CSV. The header decides column positions;
// missing columns become empty strings, unknown columns are ignored,
// and a leading UTF-8 BOM is tolerated. Fully empty rows are dropped.
func ReadRows(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader := csv.NewReader(bufio.NewReader(f))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(records) == 0 {
		return []Row{}, nil
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\uFEFF")
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	rows := make([]Row, 0, len(records)-1)
	for _, record := range records[1:] {
		var row Row
		for i, col := range Columns {
			pos, ok := index[col]
			if !ok || pos >= len(record) {
				continue
			}
			*row.fields()[i] = record[pos]
		}
		if row.IsEmpty() {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// WriteRows writes a dataset CSV in canonical column order, with a
// UTF-8 BOM so spreadsheet tools detect the encoding.
func WriteRows(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteString("\uFEFF"); err != nil {
		return err
	}

	writer := csv.NewWriter(f)
	if err := writer.Write(Columns); err != nil {
		return err
	}
	for i := range rows {
		record := make([]string, len(Columns))
		for j, field := range rows[i].fields() {
			record[j] = *field
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// NormalizeRows trims every field, upper-cases level codes and drops
// rows that end up fully empty.
func NormalizeRows(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		for _, f := range row.fields() {
			*f = strings.TrimSpace(*f)
		}
		row.LevelCode = strings.ToUpper(row.LevelCode)
		if row.IsEmpty() {
			continue
		}
		out = append(out, row)
	}
	return out
}

// ParseTags splits a tag cell on both separators the datasets use.
func ParseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.FieldsFunc(raw, func(r rune) bool { return r == ';' || r == ',' }) {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
