package formatter

import (
	"testing"

	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFormatBoardList(t *testing.T) {
	boards := []*domain.Board{
		{ID: "aaaaaaaa-1111", ShortID: "FF26", Name: "Main Draft", Season: 2026, Status: domain.BoardActive},
		{ID: "bbbbbbbb-2222", ShortID: "OLD25", Name: "Last Year", Season: 2025, Status: domain.BoardArchived},
	}

	out := FormatBoardList(boards)
	assert.Contains(t, out, "FF26")
	assert.Contains(t, out, "Main Draft")
	assert.Contains(t, out, "2025")
	assert.Contains(t, out, "Archived")
}

func TestFormatPlayerList(t *testing.T) {
	bye := 12
	players := []*domain.Player{
		{ID: "cccccccc-3333", Name: "Josh Allen", Team: "BUF", Position: domain.PosQB, ByeWeek: &bye, ProjectedPts: 388.2, Status: domain.PlayerAvailable},
		{ID: "dddddddd-4444", Name: "Bijan Robinson", Team: "ATL", Position: domain.PosRB, ProjectedPts: 291, Status: domain.PlayerMine},
	}

	out := FormatPlayerList(players)
	assert.Contains(t, out, "Josh Allen")
	assert.Contains(t, out, "388.2")
	assert.Contains(t, out, "12")
	assert.Contains(t, out, "Squad")
}

func TestFormatPickLog(t *testing.T) {
	picks := []*domain.Pick{
		{Overall: 1, PlayerName: "Bijan Robinson", Position: domain.PosRB, Kind: domain.PickOther},
		{Overall: 2, PlayerName: "Josh Allen", Position: domain.PosQB, Kind: domain.PickMine, Note: "reach but worth it"},
	}

	out := FormatPickLog(picks)
	assert.Contains(t, out, "#1")
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "mine")
	assert.Contains(t, out, "reach but worth it")
}
