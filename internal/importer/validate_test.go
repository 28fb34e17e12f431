package importer

import (
	"testing"

	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func validSchema() *BoardSchema {
	return &BoardSchema{
		Board: BoardImport{ShortID: "FF26", Name: "Main Draft", Season: 2026},
		Rules: []RuleImport{
			{Position: "RB", Slip: intPtr(3), RosterLimit: intPtr(6)},
		},
		Players: []PlayerImport{
			{Name: "Josh Allen", Team: "BUF", Position: "QB", ByeWeek: intPtr(12), ProjectedPts: 388.2},
			{Name: "Bijan Robinson", Team: "ATL", Position: "RB", ProjectedPts: 291},
		},
	}
}

func TestValidateBoardSchema_Valid(t *testing.T) {
	errs := ValidateBoardSchema(validSchema())
	assert.Empty(t, errs)
}

func TestValidateBoardSchema_CollectsAllErrors(t *testing.T) {
	schema := &BoardSchema{
		Board: BoardImport{Season: -1},
		Rules: []RuleImport{
			{Position: "FLEX"},
			{Position: "RB", Slip: intPtr(-2)},
			{Position: "rb"},
		},
		Players: []PlayerImport{
			{Name: "", Position: "QB", ProjectedPts: 10},
			{Name: "Bad Pos", Position: "XX", ProjectedPts: 10},
			{Name: "Bad Pts", Position: "WR", ProjectedPts: -5},
			{Name: "Bad Bye", Position: "TE", ByeWeek: intPtr(30), ProjectedPts: 5},
		},
	}

	errs := ValidateBoardSchema(schema)
	require.NotEmpty(t, errs)

	var msgs []string
	for _, e := range errs {
		msgs = append(msgs, e.Error())
	}
	joined := ""
	for _, m := range msgs {
		joined += m + "\n"
	}

	assert.Contains(t, joined, "board.name is required")
	assert.Contains(t, joined, "board.short_id is required")
	assert.Contains(t, joined, "board.season")
	assert.Contains(t, joined, "unknown position \"FLEX\"")
	assert.Contains(t, joined, "slip must be >= 0")
	assert.Contains(t, joined, "duplicate position RB")
	assert.Contains(t, joined, "name is required")
	assert.Contains(t, joined, "projected_pts must not be negative")
	assert.Contains(t, joined, "bye_week 30 out of range")
}

func TestValidateBoardSchema_ShortIDFormat(t *testing.T) {
	for _, bad := range []string{"26FF", "F1", "TOOLONGID26", "FF"} {
		schema := validSchema()
		schema.Board.ShortID = bad

		errs := ValidateBoardSchema(schema)
		require.NotEmpty(t, errs, "short_id %q should be rejected", bad)
		assert.Contains(t, errs[0].Error(), "board.short_id")
	}

	// Lowercase passes because Convert uppercases it, same as `board add`.
	schema := validSchema()
	schema.Board.ShortID = "ff26"
	assert.Empty(t, ValidateBoardSchema(schema))
}

func TestConvert_BuildsBoardRulesAndPlayers(t *testing.T) {
	gen := Convert(validSchema())

	assert.Equal(t, "FF26", gen.Board.ShortID)
	assert.Equal(t, "Main Draft", gen.Board.Name)
	assert.Equal(t, 2026, gen.Board.Season)
	assert.Equal(t, domain.BoardActive, gen.Board.Status)
	assert.NotEmpty(t, gen.Board.ID)

	require.Len(t, gen.Rules, len(domain.AllPositions))
	byPos := make(map[domain.Position]*domain.PositionRule)
	for _, r := range gen.Rules {
		assert.Equal(t, gen.Board.ID, r.BoardID)
		byPos[r.Position] = r
	}
	// File overlay applied to RB, defaults elsewhere.
	assert.Equal(t, 3, byPos[domain.PosRB].Slip)
	assert.Equal(t, 6, byPos[domain.PosRB].RosterLimit)
	assert.Equal(t, 0, byPos[domain.PosQB].Slip)
	assert.Equal(t, domain.DefaultRosterLimits[domain.PosQB], byPos[domain.PosQB].RosterLimit)

	require.Len(t, gen.Players, 2)
	for _, p := range gen.Players {
		assert.Equal(t, gen.Board.ID, p.BoardID)
		assert.Equal(t, domain.PlayerAvailable, p.Status)
		assert.NotEmpty(t, p.ID)
	}
	assert.Equal(t, domain.PosQB, gen.Players[0].Position)
}

func TestConvert_LowercaseShortIDUppercased(t *testing.T) {
	schema := validSchema()
	schema.Board.ShortID = "ff26"
	gen := Convert(schema)
	assert.Equal(t, "FF26", gen.Board.ShortID)
}
