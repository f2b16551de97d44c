package resource

// Store exposes catalog retrieval for HTTP handlers.
type Store interface {
	List(filter Filter) []Resource
	Categories() []string
	FindByID(id string) (Resource, bool)
}

// Filter narrows a catalog listing. Empty fields match everything.
type Filter struct {
	Category string
	Type     string
	Tag      string
}

// MemoryStore implements Store with an in-memory slice; the catalog is fixed
// for the lifetime of the process.
type MemoryStore struct {
	items []Resource
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied resources.
func NewMemoryStore(items []Resource) *MemoryStore {
	return &MemoryStore{items: append([]Resource(nil), items...)}
}

// List returns the resources matching the filter, in catalog order.
func (s *MemoryStore) List(filter Filter) []Resource {
	results := make([]Resource, 0, len(s.items))
	for _, item := range s.items {
		if filter.Category != "" && item.Category != filter.Category {
			continue
		}
		if filter.Type != "" && item.Type != filter.Type {
			continue
		}
		if filter.Tag != "" && !hasTag(item, filter.Tag) {
			continue
		}
		results = append(results, item)
	}
	return results
}

// Categories returns the distinct categories in first-seen order.
func (s *MemoryStore) Categories() []string {
	seen := make(map[string]struct{}, len(s.items))
	categories := make([]string, 0, len(s.items))
	for _, item := range s.items {
		if _, ok := seen[item.Category]; ok {
			continue
		}
		seen[item.Category] = struct{}{}
		categories = append(categories, item.Category)
	}
	return categories
}

// FindByID looks up a resource by identifier.
func (s *MemoryStore) FindByID(id string) (Resource, bool) {
	for _, item := range s.items {
		if item.ID == id {
			return item, true
		}
	}
	return Resource{}, false
}

func hasTag(r Resource, tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
