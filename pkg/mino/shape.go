package mino

// Shape is a piece kind together with its current rotation.
type Shape struct {
	Type     PieceType
	Rotation int
}

// NewShape returns a shape of the kind chosen by src, in its first rotation.
func NewShape(src Source) *Shape {
	return &Shape{Type: src.Take()}
}

func (s *Shape) RotateRight() {
	s.rotate(1)
}

func (s *Shape) RotateLeft() {
	s.rotate(-1)
}

func (s *Shape) rotate(step int) {
	n := len(s.Type.Frames())
	s.Rotation = ((s.Rotation+step)%n + n) % n
}

func (s *Shape) CurrentFrame() Frame {
	return s.Type.Frames()[s.Rotation]
}

func (s *Shape) Color() Block {
	return s.Type.Block()
}
