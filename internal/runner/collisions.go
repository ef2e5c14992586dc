package runner

// Awards for destroying entities while invincible. The attack window pays
// more than power-up invincibility; when both are active the attack award
// applies.
const (
	awardObstacleAttack = 2
	awardObstaclePower  = 1
	awardEnemyAttack    = 5
	awardEnemyPower     = 2
)

// resolveCollisions tests the actor against obstacles, then enemies, then
// coins, in that fixed order. A lethal overlap ends the run immediately and
// nothing further is evaluated this tick. The invincible path marks
// obstacles removed and enemies defeated; the marks are compacted (or, for
// enemies, respawned) by the end-of-tick sweep.
func (g *Game) resolveCollisions() {
	actorBox := g.actor.Bounds()

	obstacles := g.obstacles.Obstacles()
	for i := range obstacles {
		o := &obstacles[i]
		if o.removed || !actorBox.Intersects(o.Bounds()) {
			continue
		}
		if !g.actor.Invincible() {
			g.gameOver = true
			return
		}
		o.removed = true
		g.addScore(g.destroyAward(awardObstacleAttack, awardObstaclePower))
		g.stats.ObstaclesDestroyed++
	}

	enemies := g.enemies.Enemies()
	for i := range enemies {
		e := &enemies[i]
		if e.State == EnemyDefeated || !actorBox.Intersects(e.Bounds()) {
			continue
		}
		if !g.actor.Invincible() {
			g.gameOver = true
			return
		}
		// Defeated, not destroyed: the sweep re-enters it on the right so
		// at least one enemy always remains live.
		e.State = EnemyDefeated
		g.addScore(g.destroyAward(awardEnemyAttack, awardEnemyPower))
		g.stats.EnemiesDefeated++
	}

	coins := g.coins.Coins()
	for i := range coins {
		c := &coins[i]
		if c.removed {
			continue
		}
		// Coins use a forgiving hitbox, enlarged by the pickup margin on
		// all sides. Any overlap collects; coins never end the run.
		if !actorBox.Intersects(c.Bounds().Expand(g.cfg.Coins.PickupMargin)) {
			continue
		}
		c.removed = true
		g.addScore(c.Class.Value())
		g.stats.CoinsCollected++
	}
}

// destroyAward picks the award for an invincible destruction.
func (g *Game) destroyAward(attackAward, powerAward int) int {
	if g.actor.AttackInvincible() {
		return attackAward
	}
	return powerAward
}
