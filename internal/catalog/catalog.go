// Package catalog holds the process-wide registry of platform probe
// definitions. The registry is read-only during a hunt; registration of
// custom platforms is only permitted between hunts.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
	"sync"

	"github.com/bytedance/sonic"
)

// Category groups platforms for scoped hunts and report grouping.
type Category string

const (
	CategorySocial    Category = "social"
	CategoryDeveloper Category = "developer"
	CategoryGaming    Category = "gaming"
	CategoryForum     Category = "forum"
	CategoryGeneral   Category = "general"
	CategoryAdult     Category = "adult"
)

// categoryOrder fixes the enumeration order used everywhere results are
// grouped. Reports depend on this being stable across runs.
var categoryOrder = []Category{
	CategorySocial,
	CategoryDeveloper,
	CategoryGaming,
	CategoryForum,
	CategoryGeneral,
	CategoryAdult,
}

// Categories returns every category in fixed enumeration order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory converts a raw string to a Category, returning an error
// for unknown values.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range categoryOrder {
		if c == known {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown platform category %q", s)
}

// placeholder is the single substitution point every URL template carries.
const placeholder = "{}"

var (
	ErrBadTemplate       = errors.New("url template must contain exactly one {} placeholder and form an absolute URL")
	ErrDuplicatePlatform = errors.New("platform already registered")
	ErrUnknownCategory   = errors.New("unknown category")
)

// Definition describes how to probe one platform for an identifier.
// Definitions are immutable once registered.
type Definition struct {
	Name               string   `json:"name"`
	URLTemplate        string   `json:"urlTemplate"`
	PositiveIndicators []string `json:"positiveIndicators"`
	NegativeIndicators []string `json:"negativeIndicators"`
	Category           Category `json:"category"`
}

// ProfileURL substitutes the identifier into the URL template. Exactly one
// substitution occurs.
func (d Definition) ProfileURL(identifier string) string {
	return strings.Replace(d.URLTemplate, placeholder, url.PathEscape(identifier), 1)
}

// validate checks the template invariant: one placeholder, absolute URL
// after substitution.
func (d Definition) validate() error {
	if d.Name == "" {
		return fmt.Errorf("definition has empty name: %w", ErrBadTemplate)
	}
	if strings.Count(d.URLTemplate, placeholder) != 1 {
		return fmt.Errorf("%s: %w", d.Name, ErrBadTemplate)
	}
	u, err := url.Parse(d.ProfileURL("probe"))
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("%s: %w", d.Name, ErrBadTemplate)
	}
	return nil
}

// Catalog is the registry. All reads during a hunt go through List/All;
// Register takes the write lock and must not race with an in-flight hunt
// (caller contract, see package doc).
type Catalog struct {
	mu     sync.RWMutex
	byCat  map[Category][]Definition
	byName map[string]Definition
}

// New builds a catalog from the built-in platform tables. Every built-in
// template is validated; a bad entry is a programming error surfaced at
// startup.
func New() (*Catalog, error) {
	c := NewEmpty()
	for _, def := range builtinDefinitions() {
		if err := c.Register(def); err != nil {
			return nil, fmt.Errorf("built-in catalog: %w", err)
		}
	}
	return c, nil
}

// NewEmpty builds a catalog with no platforms. Callers populate it through
// Register or LoadExtensions.
func NewEmpty() *Catalog {
	return &Catalog{
		byCat:  make(map[Category][]Definition),
		byName: make(map[string]Definition),
	}
}

// Register adds a definition after validating its template and uniqueness.
func (c *Catalog) Register(def Definition) error {
	if err := def.validate(); err != nil {
		return err
	}
	if _, err := ParseCategory(string(def.Category)); err != nil {
		return fmt.Errorf("%s: %w", def.Name, ErrUnknownCategory)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.byName[def.Name]; ok {
		return fmt.Errorf("%s: %w", def.Name, ErrDuplicatePlatform)
	}
	c.byName[def.Name] = def
	c.byCat[def.Category] = append(c.byCat[def.Category], def)
	return nil
}

// List returns the definitions of one category, in registration order.
// Unknown categories yield an error; an empty known category yields an
// empty slice.
func (c *Catalog) List(cat Category) ([]Definition, error) {
	if _, err := ParseCategory(string(cat)); err != nil {
		return nil, ErrUnknownCategory
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	defs := c.byCat[cat]
	out := make([]Definition, len(defs))
	copy(out, defs)
	return out, nil
}

// All returns every definition grouped by category in enumeration order.
func (c *Catalog) All() []Definition {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []Definition
	for _, cat := range categoryOrder {
		out = append(out, c.byCat[cat]...)
	}
	return out
}

// Lookup returns a definition by name.
func (c *Catalog) Lookup(name string) (Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.byName[name]
	return def, ok
}

// Len reports the number of registered platforms.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.byName)
}

// extensionFile mirrors the JSON shape of a custom-platform file.
type extensionFile struct {
	Platforms []Definition `json:"platforms"`
}

// LoadExtensions registers additional definitions from a JSON document.
// Any invalid entry aborts the load; already-registered entries from the
// same document stay registered.
func (c *Catalog) LoadExtensions(r io.Reader) (int, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return 0, fmt.Errorf("read extensions: %w", err)
	}
	var ext extensionFile
	if err := sonic.Unmarshal(raw, &ext); err != nil {
		return 0, fmt.Errorf("parse extensions: %w", err)
	}
	for i, def := range ext.Platforms {
		if err := c.Register(def); err != nil {
			return i, fmt.Errorf("extension entry %d: %w", i, err)
		}
	}
	return len(ext.Platforms), nil
}
