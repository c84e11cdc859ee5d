// Package policy holds scripted baseline agents that drive the
// environment through its public interface only.
package policy

import "snakegym/internal/env"

// Policy picks the next action for a game
type Policy interface {
	Act(g *env.Game) int
}

// Greedy moves toward the food along the shortest Manhattan path,
// refusing any action that is immediately fatal when a safe one exists.
type Greedy struct{}

// Act scores every available action and returns the best one
func (Greedy) Act(g *env.Game) int {
	head := g.Head()
	food := g.FoodPos()

	best := 0
	bestDist := -1
	bestSafe := false
	for a := 0; a < g.NumActions(); a++ {
		dir := g.DecodeAction(a)
		if dir == g.Heading().Opposite() {
			// The engine turns reversals into going straight.
			dir = g.Heading()
		}
		next := head.Add(dir.Vector())
		safe := !g.Dangerous(next)
		dist := manhattan(next, food)

		better := false
		switch {
		case safe && !bestSafe:
			better = true
		case safe == bestSafe && (bestDist < 0 || dist < bestDist):
			better = true
		}
		if better {
			best = a
			bestDist = dist
			bestSafe = safe
		}
	}
	return best
}

func manhattan(a, b env.Point) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}
