package style

import "sync"

// Resource is a named block of style rules.
type Resource struct {
	Name    string
	Content string
}

// Injector installs style resources. EnsureInjected must be idempotent by
// resource name and report whether the call performed the injection.
type Injector interface {
	EnsureInjected(r Resource) bool
}

// Sheet is an append-only, in-memory style sheet.
type Sheet struct {
	mu    sync.Mutex
	names map[string]int
	rules []Resource
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{names: make(map[string]int)}
}

// EnsureInjected appends r unless a resource with the same name exists.
func (s *Sheet) EnsureInjected(r Resource) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.names[r.Name]; ok {
		return false
	}
	s.names[r.Name] = len(s.rules)
	s.rules = append(s.rules, r)
	return true
}

// Injected reports whether a resource with the given name was injected.
func (s *Sheet) Injected(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.names[name]
	return ok
}

// Lookup returns the resource injected under name.
func (s *Sheet) Lookup(name string) (Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.names[name]
	if !ok {
		return Resource{}, false
	}
	return s.rules[i], true
}

// Resources returns the injected resources in injection order.
func (s *Sheet) Resources() []Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Resource, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len returns the number of injected resources.
func (s *Sheet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rules)
}
