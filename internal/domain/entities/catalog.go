package entities

import "sort"

// Entry is one catalog leaf. Value belongs to the translator; LastExtracted
// records whether the current scan referenced the key.
type Entry struct {
	Value         string
	LastExtracted bool
}

// Catalog is the nested message tree of one (locale, namespace) pair.
// Child order is insertion order and survives serialization.
type Catalog struct {
	root *CatalogNode
}

// CatalogNode is either a branch (children) or a leaf (entry), never both.
type CatalogNode struct {
	order    []string
	children map[string]*CatalogNode
	entry    *Entry
}

func NewCatalog() *Catalog {
	return &Catalog{root: newBranch()}
}

func newBranch() *CatalogNode {
	return &CatalogNode{children: map[string]*CatalogNode{}}
}

// Root exposes the tree for ordered encoders.
func (c *Catalog) Root() *CatalogNode {
	return c.root
}

// Keys returns the node's child keys in insertion order.
func (n *CatalogNode) Keys() []string {
	return n.order
}

// Child returns the named child node, or nil.
func (n *CatalogNode) Child(key string) *CatalogNode {
	return n.children[key]
}

// Entry returns the node's entry when it is a leaf, or nil.
func (n *CatalogNode) Entry() *Entry {
	return n.entry
}

func (n *CatalogNode) put(key string) *CatalogNode {
	child, ok := n.children[key]
	if !ok {
		child = newBranch()
		n.children[key] = child
		n.order = append(n.order, key)
	}
	return child
}

// Get returns the entry at path, or false when the path is absent or names a
// branch.
func (c *Catalog) Get(path []string) (*Entry, bool) {
	n := c.root
	for _, seg := range path {
		n = n.children[seg]
		if n == nil {
			return nil, false
		}
	}
	if n.entry == nil {
		return nil, false
	}
	return n.entry, true
}

// Set creates or replaces the entry at path and returns it. A leaf in the
// middle of the path is converted to a branch; a branch at the path itself is
// replaced by the leaf.
func (c *Catalog) Set(path []string, value string) *Entry {
	n := c.root
	for _, seg := range path[:len(path)-1] {
		n = n.put(seg)
		if n.entry != nil {
			n.entry = nil
		}
	}
	n = n.put(path[len(path)-1])
	n.children = map[string]*CatalogNode{}
	n.order = nil
	n.entry = &Entry{Value: value}
	return n.entry
}

// SetEntry is Set preserving the given extraction flag.
func (c *Catalog) SetEntry(path []string, e Entry) *Entry {
	entry := c.Set(path, e.Value)
	entry.LastExtracted = e.LastExtracted
	return entry
}

// Delete removes the entry at path, pruning branches left empty.
func (c *Catalog) Delete(path []string) bool {
	return c.root.delete(path)
}

func (n *CatalogNode) delete(path []string) bool {
	key := path[0]
	child, ok := n.children[key]
	if !ok {
		return false
	}
	if len(path) == 1 {
		if child.entry == nil {
			return false
		}
		n.removeChild(key)
		return true
	}
	deleted := child.delete(path[1:])
	if deleted && child.entry == nil && len(child.order) == 0 {
		n.removeChild(key)
	}
	return deleted
}

func (n *CatalogNode) removeChild(key string) {
	delete(n.children, key)
	for i, k := range n.order {
		if k == key {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}

// Walk visits every leaf in order, depth first. The path slice is only valid
// during the call.
func (c *Catalog) Walk(fn func(path []string, e *Entry)) {
	c.root.walk(nil, fn)
}

func (n *CatalogNode) walk(prefix []string, fn func(path []string, e *Entry)) {
	for _, key := range n.order {
		child := n.children[key]
		path := append(prefix, key)
		if child.entry != nil {
			fn(path, child.entry)
		} else {
			child.walk(path, fn)
		}
	}
}

// LeafPaths returns a copy of every leaf path in order.
func (c *Catalog) LeafPaths() [][]string {
	var paths [][]string
	c.Walk(func(path []string, _ *Entry) {
		p := make([]string, len(path))
		copy(p, path)
		paths = append(paths, p)
	})
	return paths
}

// Len counts the leaves.
func (c *Catalog) Len() int {
	n := 0
	c.Walk(func([]string, *Entry) { n++ })
	return n
}

func (c *Catalog) IsEmpty() bool {
	return len(c.root.order) == 0
}

// SortLexicographic reorders every branch's children by segment name.
func (c *Catalog) SortLexicographic() {
	c.root.sortRecursive()
}

func (n *CatalogNode) sortRecursive() {
	sort.Strings(n.order)
	for _, child := range n.children {
		child.sortRecursive()
	}
}

// Clone returns a deep copy; extraction flags are copied as-is.
func (c *Catalog) Clone() *Catalog {
	return &Catalog{root: c.root.clone()}
}

func (n *CatalogNode) clone() *CatalogNode {
	out := &CatalogNode{children: make(map[string]*CatalogNode, len(n.children))}
	out.order = append(out.order, n.order...)
	if n.entry != nil {
		e := *n.entry
		out.entry = &e
	}
	for key, child := range n.children {
		out.children[key] = child.clone()
	}
	return out
}

// Equal compares values and structure, including child order. Extraction
// flags are ignored.
func (c *Catalog) Equal(other *Catalog) bool {
	return c.root.equal(other.root)
}

func (n *CatalogNode) equal(o *CatalogNode) bool {
	if (n.entry == nil) != (o.entry == nil) {
		return false
	}
	if n.entry != nil {
		return n.entry.Value == o.entry.Value
	}
	if len(n.order) != len(o.order) {
		return false
	}
	for i, key := range n.order {
		if o.order[i] != key {
			return false
		}
		if !n.children[key].equal(o.children[key]) {
			return false
		}
	}
	return true
}
