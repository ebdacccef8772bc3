package system

// Phase defines execution ordering within a single tick.
type Phase int

const (
	PhaseIntegrate Phase = iota // 0: stage new kinematics from the pre-tick snapshot
	PhaseCommit                 // 1: apply staged kinematics
	PhaseCollide                // 2: pairwise body collisions
	PhaseBoundary               // 3: wall collisions via mirror bodies
	PhasePublish                // 4: swap event buffers, bookkeeping
)

func (p Phase) String() string {
	switch p {
	case PhaseIntegrate:
		return "integrate"
	case PhaseCommit:
		return "commit"
	case PhaseCollide:
		return "collide"
	case PhaseBoundary:
		return "boundary"
	case PhasePublish:
		return "publish"
	}
	return "unknown"
}

// System is one step of the tick pipeline.
type System interface {
	Phase() Phase
	Update(dt float64)
}
