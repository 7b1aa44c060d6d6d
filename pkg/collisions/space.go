package collisions

import (
	"github.com/cbodonnell/mazerun/pkg/maze"
	"github.com/solarlune/resolv"
)

const (
	TagWall   = "wall"
	TagPlayer = "player"

	// CellSize is the world size of one maze cell. Objects are inset from
	// the cell edges so each one is registered in exactly one resolv cell.
	CellSize   = 8
	wallInset  = 1
	probeInset = 2
)

// Space is the collision world of one loaded maze: a wall object per wall
// cell and a probe object that follows the player.
type Space struct {
	space *resolv.Space
	probe *resolv.Object
}

// NewMazeSpace builds the collision space for m with the probe placed at start.
func NewMazeSpace(m maze.Maze, start maze.Point) *Space {
	space := resolv.NewSpace(m.Width()*CellSize, m.Height()*CellSize, CellSize, CellSize)
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.Cell(maze.Point{X: x, Y: y}) != maze.Wall {
				continue
			}
			space.Add(resolv.NewObject(
				float64(x*CellSize+wallInset),
				float64(y*CellSize+wallInset),
				CellSize-2*wallInset,
				CellSize-2*wallInset,
				TagWall,
			))
		}
	}

	probe := resolv.NewObject(0, 0, CellSize-2*probeInset, CellSize-2*probeInset, TagPlayer)
	space.Add(probe)

	s := &Space{space: space, probe: probe}
	s.MoveTo(start)
	return s
}

// Blocked reports whether a unit step in direction d from the probe's cell
// runs into a wall.
func (s *Space) Blocked(d maze.Direction) bool {
	delta := d.Delta()
	return s.probe.Check(float64(delta.X*CellSize), float64(delta.Y*CellSize), TagWall) != nil
}

// MoveTo places the probe on cell p.
func (s *Space) MoveTo(p maze.Point) {
	s.probe.Position.X = float64(p.X*CellSize + probeInset)
	s.probe.Position.Y = float64(p.Y*CellSize + probeInset)
	s.probe.Update()
}

// Cell returns the maze cell the probe occupies.
func (s *Space) Cell() maze.Point {
	return maze.Point{
		X: int(s.probe.Position.X) / CellSize,
		Y: int(s.probe.Position.Y) / CellSize,
	}
}
