package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"
)

// Catalog is the read-only set of schemes loaded once at startup. It is
// constructed explicitly and injected; request handling never mutates it, so
// it is safe for any number of concurrent readers.
type Catalog struct {
	schemes    []Scheme
	byID       map[string]int
	banks      []string
	categories []string
}

type dataFile struct {
	Schemes []rawScheme `json:"schemes"`
}

// Load reads, validates and canonicalizes the bundled data file.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scheme data %s: %w", path, err)
	}

	if err := validateData(raw); err != nil {
		return nil, err
	}

	var file dataFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scheme data: %w", err)
	}

	schemes := make([]Scheme, 0, len(file.Schemes))
	for _, r := range file.Schemes {
		schemes = append(schemes, r.canonicalize())
	}

	return New(schemes)
}

// New builds a catalog from already-canonical schemes. Tests use it directly
// with fixture data.
func New(schemes []Scheme) (*Catalog, error) {
	c := &Catalog{
		schemes: schemes,
		byID:    make(map[string]int, len(schemes)),
	}

	bankSet := make(map[string]struct{})
	categorySet := make(map[string]struct{})

	for i, s := range schemes {
		if _, exists := c.byID[s.ID]; exists {
			return nil, fmt.Errorf("duplicate scheme id %q", s.ID)
		}
		c.byID[s.ID] = i

		if s.BankName != "" {
			bankSet[s.BankName] = struct{}{}
		}
		if s.Category != "" {
			categorySet[s.Category] = struct{}{}
		}
	}

	for bank := range bankSet {
		c.banks = append(c.banks, bank)
	}
	for category := range categorySet {
		c.categories = append(c.categories, category)
	}
	sort.Strings(c.banks)
	sort.Strings(c.categories)

	return c, nil
}

// All returns the schemes in catalog order. Callers must treat the slice as
// read-only.
func (c *Catalog) All() []Scheme {
	return c.schemes
}

// Len reports the number of schemes in the catalog.
func (c *Catalog) Len() int {
	return len(c.schemes)
}

// ByID looks up one scheme by its identifier.
func (c *Catalog) ByID(id string) (Scheme, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Scheme{}, false
	}
	return c.schemes[i], true
}

// Banks returns the distinct bank names, sorted.
func (c *Catalog) Banks() []string {
	return c.banks
}

// Categories returns the distinct category labels, sorted.
func (c *Catalog) Categories() []string {
	return c.categories
}

// ByBank returns the schemes of one bank in catalog order. The second result
// reports whether the bank exists at all.
func (c *Catalog) ByBank(bank string) ([]Scheme, bool) {
	var schemes []Scheme
	for _, s := range c.schemes {
		if s.BankName == bank {
			schemes = append(schemes, s)
		}
	}
	return schemes, len(schemes) > 0
}

var shortCodeRegexp = regexp.MustCompile(`\(([^)]+)\)`)

// ShortCode extracts the parenthesized abbreviation from a bank name, e.g.
// "State Bank of India (SBI)" yields "SBI". Names without one yield "".
func ShortCode(bankName string) string {
	if m := shortCodeRegexp.FindStringSubmatch(bankName); len(m) > 1 {
		return m[1]
	}
	return ""
}

// ResolveBank maps an identifier that may be a full bank name or its short
// code (case-insensitively) to the canonical bank name.
func (c *Catalog) ResolveBank(id string) (string, bool) {
	for _, bank := range c.banks {
		if strings.EqualFold(bank, id) || strings.EqualFold(ShortCode(bank), id) {
			return bank, true
		}
	}
	return "", false
}
