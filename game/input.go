package game

import "github.com/lixenwraith/arena-fighter/system"

// Input is the per-frame control sample
type Input struct {
	Forward, Back, Left, Right bool
	Jump                       bool
	Fire, Reload               bool

	Yaw   float64 // radians, 0 looks down -Z
	Pitch float64 // radians, positive looks up
}

func (in Input) intent() system.MoveIntent {
	return system.MoveIntent{
		Forward: in.Forward,
		Back:    in.Back,
		Left:    in.Left,
		Right:   in.Right,
		Jump:    in.Jump,
		Yaw:     in.Yaw,
	}
}
