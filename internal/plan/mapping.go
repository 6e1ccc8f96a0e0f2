package plan

// Mapping is an insertion-ordered map from output name to clip index.
// Setting an existing name replaces its index but keeps its position.
type Mapping struct {
	names []string
	index map[string]int
}

// NewMapping creates an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{index: make(map[string]int)}
}

// Set stores name -> idx and reports whether an earlier entry was replaced.
func (m *Mapping) Set(name string, idx int) (replaced bool) {
	if _, ok := m.index[name]; ok {
		m.index[name] = idx
		return true
	}

	m.names = append(m.names, name)
	m.index[name] = idx

	return false
}

// Get returns the clip index stored under name.
func (m *Mapping) Get(name string) (int, bool) {
	idx, ok := m.index[name]
	return idx, ok
}

// Has reports whether name is present.
func (m *Mapping) Has(name string) bool {
	_, ok := m.index[name]
	return ok
}

// Len returns the number of entries.
func (m *Mapping) Len() int {
	return len(m.names)
}

// Names returns the output names in insertion order.
func (m *Mapping) Names() []string {
	return append([]string(nil), m.names...)
}

// Pairs returns the entries in insertion order.
func (m *Mapping) Pairs() []Pair {
	pairs := make([]Pair, len(m.names))
	for i, n := range m.names {
		pairs[i] = Pair{Name: n, Index: m.index[n]}
	}

	return pairs
}

// All iterates the entries in insertion order.
func (m *Mapping) All(yield func(name string, idx int) bool) {
	for _, n := range m.names {
		if !yield(n, m.index[n]) {
			return
		}
	}
}

// Pair is one Mapping entry.
type Pair struct {
	Name  string `yaml:"name"`
	Index int    `yaml:"index"`
}
