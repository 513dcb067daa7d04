package countries

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"campaign-payouts/internal/core/domain"
)

// bundled is the reference dataset shipped with the binary.
//
//go:embed countries.json
var bundled []byte

// Catalog is the immutable set of country records loaded at startup. It
// implements port.CountryCatalog and is safe for concurrent reads since it
// is never mutated after construction.
type Catalog struct {
	byCode map[string]domain.CountryRecord
	all    []domain.CountryRecord
}

// record mirrors one entry of the dataset file.
type record struct {
	Country      string `json:"COUNTRY"`
	CountryCode  string `json:"COUNTRY_CODE"`
	CurrencyCode string `json:"CURRENCY_CODE"`
	CurrencyName string `json:"NAME_OF_CURRENCY"`
}

// Default loads the bundled dataset.
func Default() (*Catalog, error) {
	return Load(bytes.NewReader(bundled))
}

// LoadFile loads a dataset from path. An empty path loads the bundled
// dataset.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open countries dataset: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Load decodes a dataset of the form {"countries": [...]}. Blank or
// duplicated codes and empty datasets are rejected.
func Load(r io.Reader) (*Catalog, error) {
	var doc struct {
		Countries []record `json:"countries"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode countries dataset: %w", err)
	}
	if len(doc.Countries) == 0 {
		return nil, errors.New("countries dataset is empty")
	}

	records := make([]domain.CountryRecord, 0, len(doc.Countries))
	for _, rc := range doc.Countries {
		records = append(records, domain.CountryRecord{
			Code:         strings.TrimSpace(rc.CountryCode),
			Name:         rc.Country,
			CurrencyCode: rc.CurrencyCode,
			CurrencyName: rc.CurrencyName,
		})
	}
	return New(records)
}

// New builds a catalog from records. Tests use it to supply a fixed
// dataset.
func New(records []domain.CountryRecord) (*Catalog, error) {
	c := &Catalog{byCode: make(map[string]domain.CountryRecord, len(records))}
	for _, rec := range records {
		if rec.Code == "" {
			return nil, fmt.Errorf("country %q has no code", rec.Name)
		}
		if _, dup := c.byCode[rec.Code]; dup {
			return nil, fmt.Errorf("duplicate country code %q", rec.Code)
		}
		c.byCode[rec.Code] = rec
		c.all = append(c.all, rec)
	}
	slices.SortFunc(c.all, func(a, b domain.CountryRecord) int {
		return strings.Compare(a.Code, b.Code)
	})
	return c, nil
}

// Get returns the record for code. Matching is exact and case sensitive.
func (c *Catalog) Get(code string) (domain.CountryRecord, bool) {
	rec, ok := c.byCode[code]
	return rec, ok
}

// All returns a copy of every record ordered by code.
func (c *Catalog) All() []domain.CountryRecord {
	return slices.Clone(c.all)
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.all)
}
