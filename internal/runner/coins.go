package runner

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// CoinClass is a rarity class drawn from a weighted distribution; the point
// value derives deterministically from it.
type CoinClass int

const (
	CoinCommon CoinClass = iota
	CoinUncommon
	CoinRare
)

// Value returns the points awarded for collecting a coin of this class.
func (c CoinClass) Value() int {
	switch c {
	case CoinUncommon:
		return 2
	case CoinRare:
		return 3
	default:
		return 1
	}
}

// String returns a human-readable name for the class.
func (c CoinClass) String() string {
	switch c {
	case CoinUncommon:
		return "uncommon"
	case CoinRare:
		return "rare"
	default:
		return "common"
	}
}

// Coins occupy a single cell.
const coinSize = 1.0

// Coin drifts left; while the actor holds any power-up it is additionally
// pulled toward the actor.
type Coin struct {
	X, Y    float64
	Speed   float64
	Class   CoinClass
	removed bool
}

// Bounds returns the coin's own box. Pickup tests expand it by the
// configured margin; see the collision resolver.
func (c Coin) Bounds() Box {
	return Box{X: c.X, Y: c.Y, W: coinSize, H: coinSize}
}

// CoinManager owns coin lifetime.
type CoinManager struct {
	coins   []Coin
	cfg     config.CoinConfig
	fieldW  float64
	groundY float64
	rng     *rand.Rand
}

// NewCoinManager creates an empty pool for the given field.
func NewCoinManager(cfg config.CoinConfig, fieldW, groundY float64, rng *rand.Rand) *CoinManager {
	return &CoinManager{
		cfg:     cfg,
		fieldW:  fieldW,
		groundY: groundY,
		rng:     rng,
	}
}

// Spawn creates one coin just past the right edge at a random altitude
// within the configured band, with a weighted-random class.
func (m *CoinManager) Spawn(speed float64) {
	alt := m.cfg.MinAltitude
	if m.cfg.MaxAltitude > m.cfg.MinAltitude {
		alt += m.rng.Intn(m.cfg.MaxAltitude - m.cfg.MinAltitude + 1)
	}
	m.coins = append(m.coins, Coin{
		X:     m.fieldW,
		Y:     m.groundY - float64(alt) - coinSize,
		Speed: speed,
		Class: m.rollClass(),
	})
}

// rollClass picks a class by cumulative weight.
func (m *CoinManager) rollClass() CoinClass {
	total := m.cfg.WeightCommon + m.cfg.WeightUncommon + m.cfg.WeightRare
	if total <= 0 {
		return CoinCommon
	}
	roll := m.rng.Intn(total)
	if roll < m.cfg.WeightCommon {
		return CoinCommon
	}
	if roll < m.cfg.WeightCommon+m.cfg.WeightUncommon {
		return CoinUncommon
	}
	return CoinRare
}

// Update advances kinematics, applies magnetism while the actor holds any
// power-up, and sweeps coins fully past the left edge.
func (m *CoinManager) Update(actor *Actor, scale float64) {
	magnet := actor.HasPowerUp()
	for i := range m.coins {
		c := &m.coins[i]
		c.X -= c.Speed * scale
		if magnet {
			m.attract(c, actor, scale)
		}
		if c.X+coinSize <= 0 {
			c.removed = true
		}
	}
	m.Compact()
}

// attract nudges the coin toward the actor with force proportional to
// (1 - distance/radius): closer coins are pulled harder, coins outside the
// radius are unaffected.
func (m *CoinManager) attract(c *Coin, actor *Actor, scale float64) {
	if m.cfg.MagnetRadius <= 0 {
		return
	}
	ax, ay := actor.Bounds().Center()
	cx, cy := c.Bounds().Center()
	dx, dy := ax-cx, ay-cy
	dist := math.Hypot(dx, dy)
	if dist >= m.cfg.MagnetRadius || dist == 0 {
		return
	}
	force := m.cfg.MagnetForce * (1 - dist/m.cfg.MagnetRadius) * scale
	c.X += dx / dist * force
	c.Y += dy / dist * force
}

// Compact physically drops marked coins.
func (m *CoinManager) Compact() {
	valid := m.coins[:0]
	for _, c := range m.coins {
		if !c.removed {
			valid = append(valid, c)
		}
	}
	m.coins = valid
}

// Coins exposes the live pool for collision and rendering.
func (m *CoinManager) Coins() []Coin {
	return m.coins
}
