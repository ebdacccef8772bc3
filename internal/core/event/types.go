package event

import "github.com/pie2d/sim/internal/body"

// Collision is emitted once per resolved body pair.
type Collision struct {
	Tick uint64
	A, B body.ID
}

// WallBounce is emitted once per wall a body bounced off.
type WallBounce struct {
	Tick uint64
	ID   body.ID
	Wall string
}

type BodyAdded struct {
	ID body.ID
}

type BodyRemoved struct {
	ID body.ID
}
