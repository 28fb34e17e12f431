package board

import (
	"sort"

	"github.com/mwhitman/draftboard/internal/domain"
)

// AdviceInput is everything the advisor needs for one position.
type AdviceInput struct {
	Position    domain.Position
	Ranking     Ranking
	Slip        int
	SquadCount  int // players at this position already on the user's squad
	RosterLimit int
}

// ScoredPosition is one position scored for pick urgency.
type ScoredPosition struct {
	Input   AdviceInput
	Score   float64
	Dropoff float64
	HasDrop bool
	Skipped bool
	Reason  string
}

// ScorePosition computes the urgency of spending the next pick on this
// position. The core signal is the dropoff: how many projected points the
// user loses at the position by waiting one more turn. Positions with a
// full squad are skipped; an undefined dropoff (position drained past the
// slip) scores zero but still surfaces the top player.
func ScorePosition(in AdviceInput) ScoredPosition {
	result := ScoredPosition{Input: in}

	if in.RosterLimit > 0 && in.SquadCount >= in.RosterLimit {
		result.Skipped = true
		result.Reason = "squad full"
		return result
	}
	if in.Ranking.Top() == nil {
		result.Skipped = true
		result.Reason = "no players left"
		return result
	}

	drop, ok := in.Ranking.Dropoff(in.Slip)
	if !ok {
		result.Reason = "fewer players than slip"
		return result
	}
	result.Dropoff = drop
	result.HasDrop = true

	// Scale by remaining need so a position the user still has to fill
	// twice outranks one needing a single bench body at equal dropoff.
	need := 1.0
	if in.RosterLimit > 0 {
		need = float64(in.RosterLimit-in.SquadCount) / float64(in.RosterLimit)
	}
	result.Score = drop * need
	return result
}

// RankPositions scores every input and sorts by the deterministic rules:
// 1. Non-skipped before skipped
// 2. Score: higher first
// 3. Dropoff: higher first
// 4. Position: canonical display order
func RankPositions(inputs []AdviceInput) []ScoredPosition {
	scored := make([]ScoredPosition, 0, len(inputs))
	for _, in := range inputs {
		scored = append(scored, ScorePosition(in))
	}

	order := make(map[domain.Position]int, len(domain.AllPositions))
	for i, pos := range domain.AllPositions {
		order[pos] = i
	}

	sort.SliceStable(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.Skipped != b.Skipped {
			return !a.Skipped
		}
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Dropoff != b.Dropoff {
			return a.Dropoff > b.Dropoff
		}
		return order[a.Input.Position] < order[b.Input.Position]
	})
	return scored
}
