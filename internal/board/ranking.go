// Package board holds the pure decision logic for a draft board: positional
// rankings (top player, lower player, dropoff) and the pick advisor built on
// them. Nothing in this package touches storage.
package board

import (
	"sort"

	"github.com/mwhitman/draftboard/internal/domain"
)

// Ranking is the ranked view of the available players at one position.
type Ranking struct {
	Position domain.Position
	Players  []*domain.Player // projected points descending
}

// NewRanking builds a Ranking from an arbitrary slice of players. Players
// that are not available or not at the given position are dropped; the rest
// are sorted by projected points descending, name ascending on ties.
func NewRanking(pos domain.Position, players []*domain.Player) Ranking {
	ranked := make([]*domain.Player, 0, len(players))
	for _, p := range players {
		if p.Position == pos && p.Available() {
			ranked = append(ranked, p)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].ProjectedPts != ranked[j].ProjectedPts {
			return ranked[i].ProjectedPts > ranked[j].ProjectedPts
		}
		return ranked[i].Name < ranked[j].Name
	})
	return Ranking{Position: pos, Players: ranked}
}

// Top returns the highest-projected available player, or nil when the
// position is empty.
func (r Ranking) Top() *domain.Player {
	if len(r.Players) == 0 {
		return nil
	}
	return r.Players[0]
}

// Lower returns the player at 0-based rank slip: the best player still
// expected to be on the board after slip players at this position are
// drafted. With slip 0 this is the top player. Returns nil when slip
// reaches past the end of the ranking.
func (r Ranking) Lower(slip int) *domain.Player {
	if slip < 0 || slip >= len(r.Players) {
		return nil
	}
	return r.Players[slip]
}

// Dropoff returns top points minus lower points, and false when either end
// is undefined.
func (r Ranking) Dropoff(slip int) (float64, bool) {
	top := r.Top()
	lower := r.Lower(slip)
	if top == nil || lower == nil {
		return 0, false
	}
	return top.ProjectedPts - lower.ProjectedPts, true
}
