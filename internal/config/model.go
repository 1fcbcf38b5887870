package config

import "slices"

// Model is the unified, format-agnostic representation of every manifest that
// was loaded for a run.
type Model struct {
	// Items in the order they were first declared.
	Items []*Item
	index map[string]*Item
}

// Item is the format-agnostic representation of one declared item.
type Item struct {
	Name      string
	DependsOn []string
	// Source is the file the item was first declared in.
	Source string
}

// NewModel creates an empty model.
func NewModel() *Model {
	return &Model{index: make(map[string]*Item)}
}

// Declare records an item. Declaring a name that already exists appends the
// new dependencies to the existing item, keeping the original source. A
// dependency is listed once per item no matter how often it is declared.
func (m *Model) Declare(name, source string, dependsOn ...string) *Item {
	if m.index == nil {
		m.index = make(map[string]*Item)
	}
	item, ok := m.index[name]
	if !ok {
		item = &Item{Name: name, Source: source}
		m.index[name] = item
		m.Items = append(m.Items, item)
	}
	for _, dep := range dependsOn {
		if !slices.Contains(item.DependsOn, dep) {
			item.DependsOn = append(item.DependsOn, dep)
		}
	}
	return item
}

// Lookup returns the item declared under name.
func (m *Model) Lookup(name string) (*Item, bool) {
	item, ok := m.index[name]
	return item, ok
}

// Merge declares every item of other in m, in other's order.
func (m *Model) Merge(other *Model) {
	for _, item := range other.Items {
		m.Declare(item.Name, item.Source, item.DependsOn...)
	}
}
