package xrv

import "sort"

// Registry is the state a Reader accumulates from jump, table and style
// lines. It is owned by exactly one Reader: entries are only ever added
// or overwritten as lines are parsed, never removed, and it carries no
// locking.
type Registry struct {
	jumps  map[string]JumpEntry
	tables map[string]*TableSchema
	styles map[string]*StyleEntry
}

func newRegistry() *Registry {
	return &Registry{
		jumps:  make(map[string]JumpEntry),
		tables: make(map[string]*TableSchema),
		styles: make(map[string]*StyleEntry),
	}
}

func (g *Registry) addJump(e JumpEntry) {
	g.jumps[e.Name] = e
}

func (g *Registry) addTable(t *TableSchema) {
	g.tables[t.ID] = t
}

func (g *Registry) addStyle(s *StyleEntry) {
	g.styles[s.ID] = s
}

// Jump looks up a jump-index entry by name.
func (g *Registry) Jump(name string) (JumpEntry, bool) {
	e, ok := g.jumps[name]
	return e, ok
}

// Table looks up a table schema by id. The schema reflects the newest
// table line seen for that id.
func (g *Registry) Table(id string) (*TableSchema, bool) {
	t, ok := g.tables[id]
	return t, ok
}

// Style looks up a style entry by id.
func (g *Registry) Style(id string) (*StyleEntry, bool) {
	s, ok := g.styles[id]
	return s, ok
}

// JumpNames returns the names in the jump index, sorted.
func (g *Registry) JumpNames() []string {
	return sortedKeys(g.jumps)
}

// TableIDs returns the registered table ids, sorted.
func (g *Registry) TableIDs() []string {
	return sortedKeys(g.tables)
}

// StyleIDs returns the registered style ids, sorted.
func (g *Registry) StyleIDs() []string {
	return sortedKeys(g.styles)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
