package mazerun

import "github.com/TheSakyo/Ynov-EscapeTheMaze/internal/maze"

// actor is anything that occupies a maze cell and can be sent back to where
// it started.
type actor struct {
	pos     maze.Point
	initial maze.Point
}

func newActor(p maze.Point) actor {
	return actor{pos: p, initial: p}
}

func (a *actor) reset() {
	a.pos = a.initial
}

// enemy chases the player along maze passages.
type enemy struct {
	actor
	cooldown int // ticks since the last step
}

// chase moves the enemy one cell toward the player when its move interval
// has elapsed and the player is within follow steps. dist holds path
// distances from the player.
func (e *enemy) chase(g *maze.Grid, dist []int, interval, follow int) bool {
	e.cooldown++
	if e.cooldown < interval {
		return false
	}
	e.cooldown = 0

	d := dist[e.pos.Y*g.Width()+e.pos.X]
	if d <= 0 || d > follow {
		return false
	}
	dir, ok := maze.Descend(g, dist, e.pos)
	if !ok {
		return false
	}
	e.pos = e.pos.Step(dir)
	return true
}

// resetCharacters sends the player and every enemy back to their starting
// cells.
func (g *Game) resetCharacters() {
	g.player.reset()
	for i := range g.enemies {
		g.enemies[i].reset()
		g.enemies[i].cooldown = 0
	}
}

// spawnEnemies picks count distinct cells at least minDist path steps from
// the start, never on the friend. When the maze is too small for that, any
// cell other than the start and the friend is used.
func (g *Game) spawnEnemies(count, minDist int, fromStart []int) {
	g.enemies = g.enemies[:0]
	if count <= 0 {
		return
	}

	var far, near []maze.Point
	for i, d := range fromStart {
		p := maze.P(i%g.grid.Width(), i/g.grid.Width())
		if d <= 0 || p == g.friend.pos {
			continue
		}
		if d >= minDist {
			far = append(far, p)
		} else {
			near = append(near, p)
		}
	}

	g.rng.Shuffle(len(far), func(i, j int) { far[i], far[j] = far[j], far[i] })
	g.rng.Shuffle(len(near), func(i, j int) { near[i], near[j] = near[j], near[i] })
	candidates := append(far, near...)

	for _, p := range candidates[:min(count, len(candidates))] {
		g.enemies = append(g.enemies, enemy{actor: newActor(p)})
	}
}
