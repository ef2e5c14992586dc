package runner

// Snapshot is a read-only view of the live simulation: the actor and every
// live entity with position, size and visual state, plus the run totals.
// Rendering and tests consume snapshots; mutating one never touches the
// game.
type Snapshot struct {
	Tick     uint64
	Score    int
	Best     int
	GameOver bool
	Paused   bool

	Actor     ActorView
	Obstacles []ObstacleView
	Coins     []CoinView
	Enemies   []EnemyView
}

// ActorView is the actor's renderable state.
type ActorView struct {
	X, Y       float64
	W, H       float64
	Grounded   bool
	Attacking  bool
	Power      PowerUpKind
	PowerTicks int
	Invincible bool
}

// ObstacleView is an obstacle's renderable state.
type ObstacleView struct {
	X, Y    float64
	W, H    float64
	Class   ObstacleClass
	Variant int
}

// CoinView is a coin's renderable state.
type CoinView struct {
	X, Y  float64
	Class CoinClass
	Value int
}

// EnemyView is an enemy's renderable state.
type EnemyView struct {
	X, Y  float64
	W, H  float64
	State EnemyState
}

// Snapshot captures the current state. The returned value shares no memory
// with the live simulation.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     g.tickCount,
		Score:    g.score,
		Best:     g.best,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}

	if g.actor != nil {
		snap.Actor = ActorView{
			X:          g.actor.X,
			Y:          g.actor.Y,
			W:          g.actor.W,
			H:          g.actor.H,
			Grounded:   g.actor.Grounded,
			Attacking:  g.actor.Attacking,
			Power:      g.actor.Power(),
			PowerTicks: g.actor.PowerTicks(),
			Invincible: g.actor.Invincible(),
		}
	}

	if g.obstacles != nil {
		for _, o := range g.obstacles.Obstacles() {
			snap.Obstacles = append(snap.Obstacles, ObstacleView{
				X: o.X, Y: o.Y, W: o.W, H: o.H,
				Class:   o.Class,
				Variant: o.Variant,
			})
		}
	}
	if g.coins != nil {
		for _, c := range g.coins.Coins() {
			snap.Coins = append(snap.Coins, CoinView{
				X: c.X, Y: c.Y,
				Class: c.Class,
				Value: c.Class.Value(),
			})
		}
	}
	if g.enemies != nil {
		for _, e := range g.enemies.Enemies() {
			snap.Enemies = append(snap.Enemies, EnemyView{
				X: e.X, Y: e.Y, W: e.W, H: e.H,
				State: e.State,
			})
		}
	}

	return snap
}
