package motionplan

// Motion is a single vertex of the RRT* tree (spec §3). Every Motion but the
// root(s) has exactly one parent and an incCost (the edge cost from parent
// to this Motion); cost is always parent.cost combined with incCost via the
// objective (invariant T2 in spec §3).
type Motion struct {
	State State

	parent   *Motion
	children []*Motion

	incCost Cost
	cost    Cost

	// root is true for the handful of Motions seeded directly from the
	// start states at Solve entry; roots have a nil parent and incCost
	// equal to the objective's identity cost.
	root bool
}

// newRootMotion builds a Motion with no parent, seeded at Solve entry. Its
// cost is the objective's identity cost (spec §3), not its state cost: a
// root has no incoming edge to accumulate cost over.
func newRootMotion(s State, obj OptimizationObjective) *Motion {
	return &Motion{
		State:   s,
		incCost: obj.IdentityCost(),
		cost:    obj.IdentityCost(),
		root:    true,
	}
}

// newMotion attaches a fresh Motion under parent with the given edge cost.
// It does not itself update parent.children; the caller appends m there
// (as Solve does) so the two stay consistent.
func newMotion(s State, parent *Motion, incCost Cost, obj OptimizationObjective) *Motion {
	m := &Motion{
		State:   s,
		parent:  parent,
		incCost: incCost,
	}
	m.cost = obj.CombineCosts(parent.cost, incCost)
	return m
}

// attachTo makes parent the parent of m with the given edge cost, updating
// both sides of the link and m's cost. m must not already have a parent.
func (m *Motion) attachTo(parent *Motion, incCost Cost, obj OptimizationObjective) {
	m.parent = parent
	m.incCost = incCost
	m.cost = obj.CombineCosts(parent.cost, incCost)
	parent.children = append(parent.children, m)
}

// removeFromParent detaches m from its current parent's children slice.
// Used by rewire before re-attaching a Motion under a cheaper parent (spec
// §4.1(k)).
func (m *Motion) removeFromParent() {
	if m.parent == nil {
		return
	}
	siblings := m.parent.children
	for i, c := range siblings {
		if c == m {
			m.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	m.parent = nil
}

// rewireTo detaches m from its current parent (if any) and reattaches it
// under newParent with the given edge cost, then propagates the resulting
// cost delta to every descendant of m.
func (m *Motion) rewireTo(newParent *Motion, incCost Cost, obj OptimizationObjective) {
	m.removeFromParent()
	m.attachTo(newParent, incCost, obj)
	updateChildCosts(m, obj)
}

// updateChildCosts recomputes cost for every descendant of m after m's own
// cost has changed, using an explicit work stack rather than recursion:
// RRT* trees produced by long-running solves can be far deeper than a
// recursive walk should risk on the goroutine stack (spec §4.5, §9).
func updateChildCosts(m *Motion, obj OptimizationObjective) {
	stack := append([]*Motion(nil), m.children...)
	for len(stack) > 0 {
		n := len(stack) - 1
		cur := stack[n]
		stack = stack[:n]
		cur.cost = obj.CombineCosts(cur.parent.cost, cur.incCost)
		stack = append(stack, cur.children...)
	}
}

// pathToRoot walks parent links from m to its root, returning states in
// root-to-m order.
func pathToRoot(m *Motion) []State {
	var rev []State
	for cur := m; cur != nil; cur = cur.parent {
		rev = append(rev, cur.State)
	}
	path := make([]State, len(rev))
	for i, s := range rev {
		path[len(rev)-1-i] = s
	}
	return path
}
