package entity

import (
	"snakefx/game/types"
)

// Snake is an ordered list of segments, head first.
type Snake struct {
	Body      []types.Point
	Direction types.Direction
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		Direction: dir,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) GetTail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// SetDirection changes the heading unless dir is the exact reverse of it.
func (s *Snake) SetDirection(dir types.Direction) bool {
	if dir == types.None || dir == s.Direction.Opposite() {
		return false
	}
	s.Direction = dir
	return true
}

// NextHead returns the unbounded cell in front of the head
func (s *Snake) NextHead() types.Point {
	return s.GetHead().Add(s.Direction.ToPoint())
}

// Move shifts every segment onto its predecessor's previous cell, tail first,
// then places the head. It returns the cell the tail left.
func (s *Snake) Move(newHead types.Point) types.Point {
	vacated := s.GetTail()
	for i := len(s.Body) - 1; i > 0; i-- {
		s.Body[i] = s.Body[i-1]
	}
	s.Body[0] = newHead
	return vacated
}

// Grow appends a segment at the tail end
func (s *Snake) Grow(at types.Point) {
	s.Body = append(s.Body, at)
}

// Occupies reports whether any segment, head included, is on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

// HitsBody reports whether p is on a non-head segment
func (s *Snake) HitsBody(p types.Point) bool {
	for _, part := range s.Body[1:] {
		if part == p {
			return true
		}
	}
	return false
}

// Segments returns a copy of the body
func (s *Snake) Segments() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}
