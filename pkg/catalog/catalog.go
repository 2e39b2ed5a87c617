// Package catalog loads the medicine dataset and answers symptom queries
// against it. The catalog is built once at startup and is read-only for
// the rest of the process lifetime.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"medimatch/pkg/domain"
)

var (
	// ErrDatasetNotFound is returned when the dataset file is missing.
	ErrDatasetNotFound = errors.New("dataset file not found")
	// ErrSchemaMismatch is returned when a required column is absent.
	ErrSchemaMismatch = errors.New("dataset missing required column")
)

var requiredColumns = []string{"name", "manufacturer_name", "medicine_desc"}

var (
	treatsPattern   = regexp.MustCompile(`(?i)(used to treat|treat|for the treatment of)\s*([^.,]+)`)
	phrasePattern   = regexp.MustCompile(`(?i)(used to treat|treat|for the treatment of|ment of)`)
	nonAlphaPattern = regexp.MustCompile(`[^a-zA-Z\s]`)
)

// Catalog is the immutable, normalized medicine collection.
type Catalog struct {
	medicines []domain.Medicine
}

// Load reads the CSV dataset at path and builds the catalog. Rows whose
// description yields no treatment clause are dropped entirely.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDatasetNotFound, path)
		}
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()
	return load(f)
}

func load(r io.Reader) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty dataset", ErrSchemaMismatch)
		}
		return nil, fmt.Errorf("read dataset header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrSchemaMismatch, required)
		}
	}
	nameIdx := columns["name"]
	manufacturerIdx := columns["manufacturer_name"]
	descIdx := columns["medicine_desc"]

	var medicines []domain.Medicine
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read dataset row: %w", err)
		}
		field := func(i int) string {
			if i < len(record) {
				return record[i]
			}
			return ""
		}
		desc := field(descIdx)
		treatsRaw, ok := ExtractTreats(desc)
		if !ok {
			continue
		}
		name := field(nameIdx)
		medicines = append(medicines, domain.Medicine{
			Name:         name,
			Manufacturer: field(manufacturerIdx),
			Description:  desc,
			TreatsRaw:    treatsRaw,
			Treats:       NormalizeTreats(treatsRaw),
			Type:         ClassifyType(name),
		})
	}
	return &Catalog{medicines: medicines}, nil
}

// Len returns the number of usable catalog entries.
func (c *Catalog) Len() int {
	return len(c.medicines)
}

// Medicines returns all entries in source order. Callers must not modify
// the returned slice.
func (c *Catalog) Medicines() []domain.Medicine {
	return c.medicines
}

// ExtractTreats returns the first treatment clause from a free-text
// description: the text following "used to treat", "treat" or
// "for the treatment of" (case-insensitive) up to the next comma or
// period, trimmed. ok is false when no clause can be extracted.
func ExtractTreats(description string) (string, bool) {
	m := treatsPattern.FindStringSubmatch(description)
	if m == nil {
		return "", false
	}
	treats := strings.TrimSpace(m[2])
	if treats == "" {
		return "", false
	}
	return treats, true
}

// NormalizeTreats strips the treatment trigger phrases and every
// character that is not an ASCII letter or whitespace, then trims.
func NormalizeTreats(treats string) string {
	treats = phrasePattern.ReplaceAllString(treats, "")
	treats = nonAlphaPattern.ReplaceAllString(treats, "")
	return strings.TrimSpace(treats)
}

// ClassifyType derives the dosage form from the product name.
// Tablet is checked before Syrup; first match wins.
func ClassifyType(name string) domain.MedicineType {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "tablet"):
		return domain.TypeTablet
	case strings.Contains(lower, "syrup"):
		return domain.TypeSyrup
	default:
		return domain.TypeOther
	}
}
