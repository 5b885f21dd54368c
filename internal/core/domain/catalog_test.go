package domain

import (
	"reflect"
	"testing"
)

func TestNewCatalog_CopiesInput(t *testing.T) {
	levels := map[int][]string{0: {"A"}, 2: {"B"}}
	c := NewCatalog("demo", levels)

	levels[0][0] = "mutated"
	delete(levels, 2)

	if got := c.Items(0); !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("catalog shares memory with input: %v", got)
	}
	if got := c.Items(2); !reflect.DeepEqual(got, []string{"B"}) {
		t.Fatalf("catalog lost level after input mutation: %v", got)
	}
}

func TestNewCatalog_IgnoresNegativeLevels(t *testing.T) {
	c := NewCatalog("demo", map[int][]string{-1: {"X"}, 0: {"A"}})

	if c.Items(-1) != nil {
		t.Fatalf("negative level should not be stored")
	}
	if c.MaxLevel() != 0 {
		t.Fatalf("expected max level 0, got %d", c.MaxLevel())
	}
}

func TestCatalog_MaxLevelSparse(t *testing.T) {
	c := NewCatalog("demo", map[int][]string{0: {"A"}, 7: {"B"}})
	if c.MaxLevel() != 7 {
		t.Fatalf("expected max level 7, got %d", c.MaxLevel())
	}
}

func TestNewCatalog_NormalizesName(t *testing.T) {
	c := NewCatalog("  Yoga_Facial ", map[int][]string{0: {"A"}})
	if c.Name() != "yoga_facial" {
		t.Fatalf("expected normalized name yoga_facial, got %q", c.Name())
	}
}

func TestCatalog_ItemsReturnsCopy(t *testing.T) {
	c := NewCatalog("demo", map[int][]string{0: {"A", "B"}})

	items := c.Items(0)
	items[0] = "mutated"

	if got := c.Items(0); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("catalog mutated through Items result: %v", got)
	}
}

func TestCatalogSet_Get(t *testing.T) {
	set := NewCatalogSet(NewCatalog("casino", map[int][]string{0: {"A"}}))

	if _, err := set.Get("casino"); err != nil {
		t.Fatalf("known catalog rejected: %v", err)
	}
	if _, err := set.Get(" Casino "); err != nil {
		t.Fatalf("unnormalized lookup rejected: %v", err)
	}
	if _, err := set.Get("poker"); err != ErrCatalogNotFound {
		t.Fatalf("expected ErrCatalogNotFound, got %v", err)
	}
}
