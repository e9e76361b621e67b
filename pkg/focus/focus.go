// Package focus provides focus handles for bound form fields.
//
// The host UI framework owns geometry and directional navigation; this
// package only tracks which handle holds primary focus and supports linear
// traversal in attach order, which for form fields matches registration
// order.
package focus

// Node represents a focusable handle for one form field.
type Node struct {
	// CanRequestFocus gates whether the node may receive focus.
	CanRequestFocus bool

	// SkipTraversal excludes the node from MoveFocus without preventing
	// explicit RequestFocus calls.
	SkipTraversal bool

	// DebugLabel identifies the node in diagnostics.
	DebugLabel string

	// OnFocusChange is called when the node gains or loses focus.
	OnFocusChange func(hasFocus bool)

	hasFocus bool
	attached bool
}

// NewNode returns an attached, focusable node with the given debug label.
func NewNode(debugLabel string) *Node {
	n := &Node{CanRequestFocus: true, DebugLabel: debugLabel}
	GetManager().Attach(n)
	return n
}

// canReceiveFocus reports whether the node can receive focus.
func (n *Node) canReceiveFocus() bool {
	return n != nil && n.attached && n.CanRequestFocus
}

// HasFocus reports whether this node holds primary focus.
func (n *Node) HasFocus() bool {
	return n.hasFocus
}

// RequestFocus requests that this node receive primary focus.
func (n *Node) RequestFocus() {
	if !n.canReceiveFocus() {
		return
	}
	GetManager().setPrimaryFocus(n)
}

// Unfocus removes focus from this node if it has primary focus.
func (n *Node) Unfocus() {
	manager := GetManager()
	if manager.primary == n {
		manager.setPrimaryFocus(nil)
	}
}

// NextFocus moves focus to the next focusable node in attach order.
func (n *Node) NextFocus() bool {
	return GetManager().MoveFocus(1)
}

// PreviousFocus moves focus to the previous focusable node in attach order.
func (n *Node) PreviousFocus() bool {
	return GetManager().MoveFocus(-1)
}

// setFocusState updates the focus flag and notifies the callback.
func (n *Node) setFocusState(hasFocus bool) {
	n.hasFocus = hasFocus
	if n.OnFocusChange != nil {
		n.OnFocusChange(hasFocus)
	}
}

// Manager tracks attached nodes and the primary focus.
type Manager struct {
	nodes   []*Node
	primary *Node
}

var manager = &Manager{}

// GetManager returns the singleton focus manager.
func GetManager() *Manager {
	return manager
}

// Attach adds a node to the traversal order. Attaching an already attached
// node is a no-op.
func (m *Manager) Attach(n *Node) {
	if n == nil || n.attached {
		return
	}
	n.attached = true
	m.nodes = append(m.nodes, n)
}

// Detach removes a node from the manager, dropping focus if it held it.
// Detaching an unattached node is a no-op.
func (m *Manager) Detach(n *Node) {
	if n == nil || !n.attached {
		return
	}
	if m.primary == n {
		m.setPrimaryFocus(nil)
	}
	for i, candidate := range m.nodes {
		if candidate == n {
			m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
			break
		}
	}
	n.attached = false
}

// Primary returns the node holding primary focus, or nil.
func (m *Manager) Primary() *Node {
	return m.primary
}

// MoveFocus moves focus by delta positions in attach order, wrapping around
// and skipping nodes that cannot receive focus or opt out of traversal.
func (m *Manager) MoveFocus(delta int) bool {
	count := len(m.nodes)
	if count == 0 {
		return false
	}

	currentIndex := m.primaryIndex()

	for step := 1; step <= count; step++ {
		candidate := m.nodes[wrapIndex(currentIndex+delta*step, count)]
		if candidate.canReceiveFocus() && !candidate.SkipTraversal {
			m.setPrimaryFocus(candidate)
			return true
		}
	}
	return false
}

// primaryIndex returns the index of the focused node, or -1 if none.
func (m *Manager) primaryIndex() int {
	for i, n := range m.nodes {
		if n == m.primary {
			return i
		}
	}
	return -1
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

// setPrimaryFocus updates the primary focus to the given node.
func (m *Manager) setPrimaryFocus(node *Node) {
	if m.primary == node {
		return
	}
	if m.primary != nil {
		m.primary.setFocusState(false)
	}
	m.primary = node
	if node != nil {
		node.setFocusState(true)
	}
}
