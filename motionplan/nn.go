package motionplan

import "sort"

// NearestNeighbors is the nearest-neighbor index collaborator (spec §1,
// §6.1, explicitly out of scope for the hard core itself). The planner
// depends only on this interface; nearestNeighborLinear below is a
// reference/test implementation, not part of the hard core.
type NearestNeighbors interface {
	// Add inserts m into the index.
	Add(m *Motion)

	// Nearest returns the single Motion closest to target, or nil if the
	// index is empty.
	Nearest(target State) *Motion

	// NearestK returns up to k Motions closest to target, ordered nearest
	// first.
	NearestK(target State, k int) []*Motion

	// SetDistanceFunction replaces the function used to rank Nearest/
	// NearestK candidates. Choose-parent and rewire query with opposite
	// argument orientation when the space's distance function is
	// asymmetric (spec §4.1(g)/(j)); this lets the planner swap orientation
	// before each query rather than requiring two separate indexes.
	SetDistanceFunction(fn func(a, b State) float64)

	// List returns every Motion currently in the index, in unspecified
	// order.
	List() []*Motion

	// Clear empties the index.
	Clear()

	// Size returns the number of Motions currently indexed.
	Size() int
}

// distanceNeighbor pairs a Motion with its distance to some query state,
// mirroring the teacher's neighbor struct.
type distanceNeighbor struct {
	dist float64
	m    *Motion
}

// nearestNeighborLinear is a single-threaded linear-scan NearestNeighbors,
// grounded on nearestNeighbor.go's kNearestNeighbors/nearestNeighbor but
// stripped of the goroutine worker pool: spec §5 requires the planner core
// make no concurrent collaborator calls, so every distance evaluation here
// happens on the caller's goroutine.
type nearestNeighborLinear struct {
	distFn func(a, b State) float64
	items  []*Motion
}

// NewLinearNearestNeighbors returns a NearestNeighbors backed by a plain
// slice scan, using distFn (typically SpaceInformation.Distance) to rank
// candidates. Adequate for the trees exercised by this package's tests;
// production harnesses are expected to supply a real spatial index (spec
// §1, "NearestNeighbors ... provided by the harness").
func NewLinearNearestNeighbors(distFn func(a, b State) float64) NearestNeighbors {
	return &nearestNeighborLinear{distFn: distFn}
}

func (nn *nearestNeighborLinear) Add(m *Motion) {
	nn.items = append(nn.items, m)
}

func (nn *nearestNeighborLinear) Nearest(target State) *Motion {
	var best *Motion
	bestDist := 0.0
	for _, m := range nn.items {
		d := nn.distFn(m.State, target)
		if best == nil || d < bestDist {
			best = m
			bestDist = d
		}
	}
	return best
}

func (nn *nearestNeighborLinear) NearestK(target State, k int) []*Motion {
	if k > len(nn.items) {
		k = len(nn.items)
	}
	if k <= 0 {
		return nil
	}
	neighbors := make([]distanceNeighbor, len(nn.items))
	for i, m := range nn.items {
		neighbors[i] = distanceNeighbor{dist: nn.distFn(m.State, target), m: m}
	}
	sort.Slice(neighbors, func(i, j int) bool {
		return neighbors[i].dist < neighbors[j].dist
	})
	out := make([]*Motion, k)
	for i := 0; i < k; i++ {
		out[i] = neighbors[i].m
	}
	return out
}

func (nn *nearestNeighborLinear) SetDistanceFunction(fn func(a, b State) float64) {
	nn.distFn = fn
}

func (nn *nearestNeighborLinear) List() []*Motion {
	out := make([]*Motion, len(nn.items))
	copy(out, nn.items)
	return out
}

func (nn *nearestNeighborLinear) Clear() {
	nn.items = nil
}

func (nn *nearestNeighborLinear) Size() int {
	return len(nn.items)
}
