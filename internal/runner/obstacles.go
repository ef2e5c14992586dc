package runner

import (
	"math/rand"
)

// ObstacleClass is a size class with a fixed cell footprint.
type ObstacleClass int

const (
	ObstacleSmall ObstacleClass = iota
	ObstacleMedium
	ObstacleLarge
)

// Footprint returns the fixed cell footprint for the class.
func (c ObstacleClass) Footprint() (w, h float64) {
	switch c {
	case ObstacleMedium:
		return 3, 3
	case ObstacleLarge:
		return 4, 4
	default:
		return 2, 2
	}
}

// Obstacle scrolls left at the speed it spawned with; later difficulty
// steps never touch entities already live.
type Obstacle struct {
	X, Y    float64
	W, H    float64
	Speed   float64
	Class   ObstacleClass
	Variant int // cosmetic only
	removed bool
}

// Bounds returns the obstacle's collision box.
func (o Obstacle) Bounds() Box {
	return Box{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

// ObstacleManager owns obstacle lifetime. The scheduler keeps the pool at
// one live obstacle at most; the manager itself does not enforce it.
type ObstacleManager struct {
	obstacles []Obstacle
	fieldW    float64
	groundY   float64
	rng       *rand.Rand
}

// NewObstacleManager creates an empty pool for the given field.
func NewObstacleManager(fieldW, groundY float64, rng *rand.Rand) *ObstacleManager {
	return &ObstacleManager{
		fieldW:  fieldW,
		groundY: groundY,
		rng:     rng,
	}
}

// Spawn creates one grounded obstacle just past the right edge, with a
// random size class and cosmetic variant.
func (m *ObstacleManager) Spawn(speed float64) {
	class := ObstacleClass(m.rng.Intn(3))
	w, h := class.Footprint()
	m.obstacles = append(m.obstacles, Obstacle{
		X:       m.fieldW,
		Y:       m.groundY - h,
		W:       w,
		H:       h,
		Speed:   speed,
		Class:   class,
		Variant: m.rng.Intn(3),
	})
}

// Update advances kinematics and sweeps obstacles fully past the left edge.
func (m *ObstacleManager) Update(scale float64) {
	for i := range m.obstacles {
		o := &m.obstacles[i]
		o.X -= o.Speed * scale
		if o.X+o.W <= 0 {
			o.removed = true
		}
	}
	m.Compact()
}

// Compact physically drops marked obstacles. Mark, then compact: update and
// collision logic never observe a half-mutated collection.
func (m *ObstacleManager) Compact() {
	valid := m.obstacles[:0]
	for _, o := range m.obstacles {
		if !o.removed {
			valid = append(valid, o)
		}
	}
	m.obstacles = valid
}

// LiveCount returns the number of live obstacles.
func (m *ObstacleManager) LiveCount() int {
	return len(m.obstacles)
}

// Obstacles exposes the live pool for collision and rendering.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}
