package formatter

import (
	"testing"
	"time"

	"github.com/mwhitman/draftboard/internal/contract"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatMatrix_ShowsTopLowerAndDropoff(t *testing.T) {
	resp := &contract.MatrixResponse{
		GeneratedAt: time.Now(),
		BoardName:   "Main Draft",
		Columns: []contract.MatrixColumn{
			{
				Position:    domain.PosRB,
				SquadCount:  1,
				RosterLimit: 5,
				Slip:        2,
				Available:   14,
				Top:         &contract.PlayerCell{Name: "Bijan Robinson", Team: "ATL", ProjectedPts: 291},
				Lower:       &contract.PlayerCell{Name: "James Cook", Team: "BUF", ProjectedPts: 230.5},
				Dropoff:     60.5,
				HasDropoff:  true,
			},
		},
	}

	out := FormatMatrix(resp)
	assert.Contains(t, out, "Main Draft")
	assert.Contains(t, out, "Bijan Robinson")
	assert.Contains(t, out, "James Cook")
	assert.Contains(t, out, "60.5")
	assert.Contains(t, out, "1/5")
}

func TestFormatMatrix_UndefinedLowerShowsPlaceholders(t *testing.T) {
	resp := &contract.MatrixResponse{
		BoardName: "Main Draft",
		Columns: []contract.MatrixColumn{
			{
				Position:  domain.PosK,
				Slip:      5,
				Available: 1,
				Top:       &contract.PlayerCell{Name: "Lone Kicker", ProjectedPts: 140},
			},
		},
	}

	out := FormatMatrix(resp)
	assert.Contains(t, out, "Lone Kicker")
	assert.Contains(t, out, "n/a")
	assert.Contains(t, out, "--")
}

func TestFormatAdvice_RecommendationAndWarnings(t *testing.T) {
	resp := &contract.AdviseResponse{
		BoardName: "Main Draft",
		Advice: []contract.PositionAdvice{
			{
				Position:    domain.PosRB,
				Score:       48.4,
				Dropoff:     60.5,
				HasDropoff:  true,
				Top:         &contract.PlayerCell{Name: "Bijan Robinson", ProjectedPts: 291},
				SquadCount:  1,
				RosterLimit: 5,
			},
			{
				Position: domain.PosK,
				Skipped:  true,
				Reason:   "squad full",
			},
		},
		Warnings: []string{"TE: slip 4 exceeds the 1 players left"},
	}

	out := FormatAdvice(resp)
	assert.Contains(t, out, "Pick next:")
	assert.Contains(t, out, "RB")
	assert.Contains(t, out, "Bijan Robinson")
	assert.Contains(t, out, "squad full")
	assert.Contains(t, out, "WARNING")
}

func TestFormatSummary_PositionsAndRecentPicks(t *testing.T) {
	resp := &contract.SummaryResponse{
		BoardName:    "Main Draft",
		BoardShortID: "FF26",
		Positions: []contract.PositionSummary{
			{Position: domain.PosQB, SquadCount: 1, RosterLimit: 2, Available: 12},
		},
		TotalAvailable: 12,
		TotalPicks:     3,
		MyPicks:        1,
		RecentPicks: []contract.PickEntry{
			{Overall: 3, PlayerName: "Josh Allen", Position: domain.PosQB, Kind: domain.PickMine, PickedAt: time.Now()},
		},
	}

	out := FormatSummary(resp)
	assert.Contains(t, out, "FF26")
	assert.Contains(t, out, "Josh Allen")
	assert.Contains(t, out, "#3")
	assert.Contains(t, out, "RECENT PICKS")
}
