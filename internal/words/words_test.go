package words

import (
	"errors"
	"testing"
)

func TestDefault_AllWordsAlphabetic(t *testing.T) {
	c, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if c.NumCategories() != 5 {
		t.Errorf("NumCategories %d, want 5", c.NumCategories())
	}
	for _, name := range c.Categories() {
		list := c.Words(name)
		if len(list) == 0 {
			t.Errorf("category %q is empty", name)
		}
		for _, w := range list {
			if !isAlpha(w) {
				t.Errorf("category %q: word %q is not uppercase alphabetic", name, w)
			}
		}
	}
	if !c.Contains("animals", "elephant") {
		t.Error("expected ANIMALS to contain ELEPHANT")
	}
}

func TestNewCatalog_Normalizes(t *testing.T) {
	c, err := NewCatalog(map[string][]string{
		" pets ": {"cat", " Dog", "CAT"},
		"birds":  {"owl"},
	})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	names := c.Categories()
	if len(names) != 2 || names[0] != "BIRDS" || names[1] != "PETS" {
		t.Errorf("Categories %v, want [BIRDS PETS]", names)
	}
	pets := c.Words("pets")
	if len(pets) != 2 || pets[0] != "CAT" || pets[1] != "DOG" {
		t.Errorf("Words(pets) %v, want [CAT DOG]", pets)
	}
}

func TestNewCatalog_Rejects(t *testing.T) {
	cases := map[string]map[string][]string{
		"empty":          {},
		"empty category": {"pets": {}},
		"digit":          {"pets": {"c4t"}},
		"space":          {"pets": {"ice cream"}},
		"blank name":     {" ": {"cat"}},
		"duplicate name": {"pets": {"cat"}, "PETS": {"dog"}},
	}
	for name, table := range cases {
		if _, err := NewCatalog(table); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
	if _, err := NewCatalog(nil); !errors.Is(err, ErrEmptyCatalog) {
		t.Errorf("nil table: got %v, want ErrEmptyCatalog", err)
	}
}

func TestCatalog_WordsReturnsCopy(t *testing.T) {
	c := MustCatalog(map[string][]string{"pets": {"cat"}})
	list := c.Words("PETS")
	list[0] = "XYZ"
	if c.Word("PETS", 0) != "CAT" {
		t.Error("mutating Words result changed the catalog")
	}
	if c.Words("nope") != nil {
		t.Error("unknown category should return nil")
	}
}
