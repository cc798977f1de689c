// Package stoplist holds the stopword sets that delimit candidate keyphrases.
package stoplist

// Manager is an insertion-ordered stopword set. Membership is case-sensitive:
// callers store lowercase forms and test against lowercased tokens.
type Manager struct {
	stops map[string]struct{}
	order []string
}

// NewManager creates a new stoplist manager. Duplicates are collapsed and
// empty strings ignored.
func NewManager(initialStops []string) *Manager {
	m := &Manager{stops: make(map[string]struct{}, len(initialStops))}
	for _, s := range initialStops {
		m.Add(s)
	}
	return m
}

// IsStop checks if a token is a stopword
func (m *Manager) IsStop(token string) bool {
	_, ok := m.stops[token]
	return ok
}

// Add adds a token to the stoplist
func (m *Manager) Add(token string) {
	if token == "" {
		return
	}
	if _, ok := m.stops[token]; ok {
		return
	}
	m.stops[token] = struct{}{}
	m.order = append(m.order, token)
}

// Remove removes a token from the stoplist
func (m *Manager) Remove(token string) {
	if _, ok := m.stops[token]; !ok {
		return
	}
	delete(m.stops, token)
	for i, s := range m.order {
		if s == token {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// All returns all stopwords in insertion order
func (m *Manager) All() []string {
	result := make([]string, len(m.order))
	copy(result, m.order)
	return result
}

// Len returns the number of stopwords
func (m *Manager) Len() int {
	return len(m.order)
}
