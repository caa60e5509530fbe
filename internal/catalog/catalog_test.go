package catalog_test

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/catalog"
)

// ─────────────────────────── Templates ───────────────────────────

func TestProfileURLSubstitution(t *testing.T) {
	def := catalog.Definition{
		Name:        "example",
		URLTemplate: "https://example.com/users/{}",
		Category:    catalog.CategorySocial,
	}
	if got := def.ProfileURL("alice"); got != "https://example.com/users/alice" {
		t.Fatalf("ProfileURL = %q", got)
	}
}

func TestProfileURLEscapesIdentifier(t *testing.T) {
	def := catalog.Definition{
		Name:        "example",
		URLTemplate: "https://example.com/{}",
		Category:    catalog.CategorySocial,
	}
	got := def.ProfileURL("alice/..")
	if strings.Contains(got, "/../") {
		t.Fatalf("identifier was not escaped: %q", got)
	}
	if _, err := url.Parse(got); err != nil {
		t.Fatalf("substituted URL does not parse: %v", err)
	}
}

func TestBuiltinTemplatesSubstituteExactlyOnce(t *testing.T) {
	c := mustNew(t)
	for _, def := range c.All() {
		u := def.ProfileURL("probe-user")
		if !strings.Contains(u, "probe-user") {
			t.Errorf("%s: identifier missing from %q", def.Name, u)
		}
		if strings.Contains(u, "{}") {
			t.Errorf("%s: unsubstituted placeholder in %q", def.Name, u)
		}
		parsed, err := url.Parse(u)
		if err != nil || !parsed.IsAbs() || parsed.Host == "" {
			t.Errorf("%s: %q is not an absolute URL", def.Name, u)
		}
	}
}

// ─────────────────────────── Registration ───────────────────────────

func mustNew(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return c
}

func TestRegisterAndLookup(t *testing.T) {
	c := mustNew(t)
	def := catalog.Definition{
		Name:               "customsite",
		URLTemplate:        "https://custom.example/{}",
		PositiveIndicators: []string{"member since"},
		Category:           catalog.CategoryForum,
	}
	if err := c.Register(def); err != nil {
		t.Fatalf("Register: %v", err)
	}
	got, ok := c.Lookup("customsite")
	if !ok {
		t.Fatal("Lookup missed a registered platform")
	}
	if got.URLTemplate != def.URLTemplate {
		t.Errorf("template = %q, want %q", got.URLTemplate, def.URLTemplate)
	}
}

func TestRegisterRejectsBadTemplate(t *testing.T) {
	c := mustNew(t)
	bad := []catalog.Definition{
		{Name: "noplaceholder", URLTemplate: "https://example.com/user", Category: catalog.CategorySocial},
		{Name: "twoplaceholders", URLTemplate: "https://example.com/{}/{}", Category: catalog.CategorySocial},
		{Name: "relative", URLTemplate: "/users/{}", Category: catalog.CategorySocial},
		{Name: "", URLTemplate: "https://example.com/{}", Category: catalog.CategorySocial},
	}
	for _, def := range bad {
		if err := c.Register(def); !errors.Is(err, catalog.ErrBadTemplate) {
			t.Errorf("%q: err = %v, want ErrBadTemplate", def.Name, err)
		}
	}
}

func TestRegisterRejectsDuplicate(t *testing.T) {
	c := mustNew(t)
	def := catalog.Definition{
		Name:        "dupsite",
		URLTemplate: "https://dup.example/{}",
		Category:    catalog.CategoryGeneral,
	}
	if err := c.Register(def); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	if err := c.Register(def); !errors.Is(err, catalog.ErrDuplicatePlatform) {
		t.Fatalf("second Register err = %v, want ErrDuplicatePlatform", err)
	}
}

func TestRegisterRejectsUnknownCategory(t *testing.T) {
	c := mustNew(t)
	def := catalog.Definition{
		Name:        "weirdsite",
		URLTemplate: "https://weird.example/{}",
		Category:    catalog.Category("cryptozoology"),
	}
	if err := c.Register(def); !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
}

// ─────────────────────────── Listing ───────────────────────────

func TestListUnknownCategory(t *testing.T) {
	c := mustNew(t)
	if _, err := c.List(catalog.Category("nope")); !errors.Is(err, catalog.ErrUnknownCategory) {
		t.Fatalf("err = %v, want ErrUnknownCategory", err)
	}
}

func TestListCopiesAreIndependent(t *testing.T) {
	c := mustNew(t)
	first, err := c.List(catalog.CategorySocial)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("built-in social category is empty")
	}
	first[0].Name = "mutated"
	second, _ := c.List(catalog.CategorySocial)
	if second[0].Name == "mutated" {
		t.Fatal("List returned a shared slice; callers can corrupt the registry")
	}
}

func TestAllGroupsByCategoryOrder(t *testing.T) {
	c := mustNew(t)
	all := c.All()
	if len(all) != c.Len() {
		t.Fatalf("All returned %d definitions, registry holds %d", len(all), c.Len())
	}
	rank := make(map[catalog.Category]int)
	for i, cat := range catalog.Categories() {
		rank[cat] = i
	}
	last := -1
	for _, def := range all {
		r := rank[def.Category]
		if r < last {
			t.Fatalf("category %s out of enumeration order", def.Category)
		}
		last = r
	}
}

func TestCategoriesOrderStable(t *testing.T) {
	want := []catalog.Category{
		catalog.CategorySocial,
		catalog.CategoryDeveloper,
		catalog.CategoryGaming,
		catalog.CategoryForum,
		catalog.CategoryGeneral,
		catalog.CategoryAdult,
	}
	got := catalog.Categories()
	if len(got) != len(want) {
		t.Fatalf("got %d categories, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("category[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestParseCategory(t *testing.T) {
	if got, err := catalog.ParseCategory("  Social "); err != nil || got != catalog.CategorySocial {
		t.Fatalf("ParseCategory = %v, %v", got, err)
	}
	if _, err := catalog.ParseCategory("astral"); err == nil {
		t.Fatal("ParseCategory accepted an unknown category")
	}
}

// ─────────────────────────── Extensions ───────────────────────────

func TestLoadExtensions(t *testing.T) {
	c := mustNew(t)
	before := c.Len()
	doc := `{"platforms":[
		{"name":"extsite","urlTemplate":"https://ext.example/{}","positiveIndicators":["joined"],"category":"forum"},
		{"name":"extsite2","urlTemplate":"https://ext2.example/u/{}","positiveIndicators":["karma"],"category":"forum"}
	]}`
	n, err := c.LoadExtensions(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadExtensions: %v", err)
	}
	if n != 2 {
		t.Fatalf("loaded %d platforms, want 2", n)
	}
	if c.Len() != before+2 {
		t.Fatalf("registry grew by %d, want 2", c.Len()-before)
	}
	if _, ok := c.Lookup("extsite2"); !ok {
		t.Fatal("extension platform missing after load")
	}
}

func TestLoadExtensionsInvalidEntryAborts(t *testing.T) {
	c := mustNew(t)
	doc := `{"platforms":[
		{"name":"good","urlTemplate":"https://good.example/{}","category":"forum"},
		{"name":"bad","urlTemplate":"https://bad.example/no-placeholder","category":"forum"}
	]}`
	if _, err := c.LoadExtensions(strings.NewReader(doc)); err == nil {
		t.Fatal("invalid extension entry did not abort the load")
	}
	// Entries registered before the failure stay registered.
	if _, ok := c.Lookup("good"); !ok {
		t.Fatal("valid entry before the failure was rolled back")
	}
}

func TestLoadExtensionsMalformedJSON(t *testing.T) {
	c := mustNew(t)
	if _, err := c.LoadExtensions(strings.NewReader("{not json")); err == nil {
		t.Fatal("malformed JSON accepted")
	}
}
