package motionplan

import "github.com/google/uuid"

// VertexTag classifies a PlannerDataVertex for export consumers (spec
// §6.4).
type VertexTag int

const (
	VertexNormal VertexTag = iota
	VertexStart
	VertexGoal
)

// PlannerDataVertex is a single exported tree node, keyed by an identity
// independent of the in-process Motion pointer (spec §6.4). IDs are unique
// within one export and are generated afresh by every export, so the same
// Motion gets a different ID in two exports.
type PlannerDataVertex struct {
	ID    uuid.UUID
	State State
	Cost  Cost
	Tag   VertexTag
}

// PlannerDataEdge is a single exported tree edge, parent to child.
type PlannerDataEdge struct {
	Parent  uuid.UUID
	Child   uuid.UUID
	IncCost Cost
}

// PlannerData is the read-only export of the tree's current shape (spec
// §6.4), used by harnesses for visualization or offline analysis. It is
// produced on demand and never retained by the planner itself.
type PlannerData struct {
	Vertices []PlannerDataVertex
	Edges    []PlannerDataEdge

	Iterations      int
	CollisionChecks int
}

// exportPlannerData walks motions, assigning each a fresh uuid.UUID and
// recording its edge to its parent (if any). goalMotions is used only to
// tag exported vertices that are members of the goal set.
func exportPlannerData(motions []*Motion, goalMotions map[*Motion]bool, iterations, collisionChecks int) *PlannerData {
	ids := make(map[*Motion]uuid.UUID, len(motions))
	for _, m := range motions {
		ids[m] = uuid.New()
	}

	data := &PlannerData{
		Vertices:        make([]PlannerDataVertex, 0, len(motions)),
		Iterations:      iterations,
		CollisionChecks: collisionChecks,
	}
	for _, m := range motions {
		tag := VertexNormal
		switch {
		case m.root:
			tag = VertexStart
		case goalMotions[m]:
			tag = VertexGoal
		}
		data.Vertices = append(data.Vertices, PlannerDataVertex{
			ID:    ids[m],
			State: m.State,
			Cost:  m.cost,
			Tag:   tag,
		})
		if m.parent != nil {
			data.Edges = append(data.Edges, PlannerDataEdge{
				Parent:  ids[m.parent],
				Child:   ids[m],
				IncCost: m.incCost,
			})
		}
	}
	return data
}
