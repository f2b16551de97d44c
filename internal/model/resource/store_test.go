package resource

import "testing"

func seedOrFail(t *testing.T) []Resource {
	t.Helper()
	items, err := Seed()
	if err != nil {
		t.Fatalf("Seed err: %v", err)
	}
	if len(items) == 0 {
		t.Fatal("expected embedded catalog to contain resources")
	}
	return items
}

func TestSeedParsesCatalog(t *testing.T) {
	items := seedOrFail(t)
	for _, item := range items {
		if item.ID == "" || item.Category == "" || item.Title == "" {
			t.Fatalf("incomplete catalog entry: %+v", item)
		}
	}
}

func TestListFilters(t *testing.T) {
	store := NewMemoryStore(seedOrFail(t))

	all := store.List(Filter{})
	if len(all) == 0 {
		t.Fatal("expected unfiltered listing")
	}

	anxiety := store.List(Filter{Category: "anxiety"})
	for _, item := range anxiety {
		if item.Category != "anxiety" {
			t.Fatalf("category filter leaked %+v", item)
		}
	}
	if len(anxiety) == 0 || len(anxiety) == len(all) {
		t.Fatalf("expected a proper subset for anxiety, got %d of %d", len(anxiety), len(all))
	}

	breathing := store.List(Filter{Tag: "breathing", Type: "exercise"})
	if len(breathing) == 0 {
		t.Fatal("expected breathing exercises in catalog")
	}
	for _, item := range breathing {
		if item.Type != "exercise" {
			t.Fatalf("type filter leaked %+v", item)
		}
	}
}

func TestCategoriesAreDistinct(t *testing.T) {
	store := NewMemoryStore(seedOrFail(t))

	categories := store.Categories()
	seen := make(map[string]struct{})
	for _, c := range categories {
		if _, dup := seen[c]; dup {
			t.Fatalf("duplicate category %s", c)
		}
		seen[c] = struct{}{}
	}
}

func TestFindByID(t *testing.T) {
	store := NewMemoryStore(seedOrFail(t))

	if _, ok := store.FindByID("r001"); !ok {
		t.Fatal("expected to find r001")
	}
	if _, ok := store.FindByID("r999"); ok {
		t.Fatal("did not expect to find r999")
	}
}
