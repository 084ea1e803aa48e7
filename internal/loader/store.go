package loader

// Store is the process-wide mapping of loaded contract types, keyed by
// name. It is created at startup and mutated only by the single load
// driver, so it needs no locking; a host introducing real concurrency must
// serialize access itself.
type Store struct {
	items map[string]*ContractType
	order []string
}

// NewStore creates a new, empty contract-type store.
func NewStore() *Store {
	return &Store{items: make(map[string]*ContractType)}
}

// Reserve creates an empty contract type under name and records it. The
// first reservation of a name wins; any later one fails with
// DuplicateNameError and leaves the store untouched.
func (s *Store) Reserve(name string) (*ContractType, error) {
	if _, exists := s.items[name]; exists {
		return nil, &DuplicateNameError{Name: name}
	}
	item := &ContractType{Name: name, Weight: 1}
	s.items[name] = item
	s.order = append(s.order, name)
	return item, nil
}

// Get returns the contract type reserved under name, if present.
func (s *Store) Get(name string) (*ContractType, bool) {
	item, ok := s.items[name]
	return item, ok
}

// Evict removes name from the store entirely, freeing it for future
// reservation. Evicting an absent name is a no-op.
func (s *Store) Evict(name string) {
	if _, ok := s.items[name]; !ok {
		return
	}
	delete(s.items, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of stored contract types.
func (s *Store) Len() int { return len(s.items) }

// Names returns the stored names in reservation order.
func (s *Store) Names() []string {
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}
