package service

import (
	"context"
	"testing"

	"github.com/mwhitman/draftboard/internal/contract"
	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/mwhitman/draftboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSummary_CountsAndPositions(t *testing.T) {
	boards, players, picks, rules, uow := setupRepos(t)
	ctx := context.Background()
	b := seedBoard(t, boards, rules)

	pool := []*domain.Player{
		testutil.NewTestPlayer(b.ID, "QB One", domain.PosQB, testutil.WithPoints(300)),
		testutil.NewTestPlayer(b.ID, "RB One", domain.PosRB, testutil.WithPoints(290)),
		testutil.NewTestPlayer(b.ID, "RB Two", domain.PosRB, testutil.WithPoints(250)),
		testutil.NewTestPlayer(b.ID, "WR One", domain.PosWR, testutil.WithPoints(260)),
	}
	for _, p := range pool {
		require.NoError(t, players.Create(ctx, p))
	}

	draft := NewDraftService(picks, uow)
	_, err := draft.Take(ctx, pool[1].ID, domain.PickMine, "")
	require.NoError(t, err)
	_, err = draft.Take(ctx, pool[3].ID, domain.PickOther, "")
	require.NoError(t, err)

	svc := NewSummaryService(boards, players, picks, rules)
	resp, err := svc.GetSummary(ctx, contract.SummaryRequest{BoardID: b.ID})
	require.NoError(t, err)

	assert.Equal(t, b.Name, resp.BoardName)
	assert.Equal(t, b.ShortID, resp.BoardShortID)
	assert.Equal(t, 2, resp.TotalPicks)
	assert.Equal(t, 1, resp.MyPicks)
	assert.Equal(t, 2, resp.TotalAvailable)

	require.Len(t, resp.Positions, len(domain.AllPositions))
	byPos := make(map[domain.Position]contract.PositionSummary)
	for _, ps := range resp.Positions {
		byPos[ps.Position] = ps
	}
	assert.Equal(t, 1, byPos[domain.PosRB].SquadCount)
	assert.Equal(t, 1, byPos[domain.PosRB].Available)
	assert.Equal(t, domain.DefaultRosterLimits[domain.PosRB], byPos[domain.PosRB].RosterLimit)
	assert.Equal(t, 0, byPos[domain.PosWR].Available)
}

func TestGetSummary_RecentPicksTail(t *testing.T) {
	boards, players, picks, rules, uow := setupRepos(t)
	ctx := context.Background()
	b := seedBoard(t, boards, rules)

	draft := NewDraftService(picks, uow)
	names := []string{"First", "Second", "Third", "Fourth"}
	for _, name := range names {
		p := testutil.NewTestPlayer(b.ID, name, domain.PosWR)
		require.NoError(t, players.Create(ctx, p))
		_, err := draft.Take(ctx, p.ID, domain.PickOther, "")
		require.NoError(t, err)
	}

	svc := NewSummaryService(boards, players, picks, rules)
	resp, err := svc.GetSummary(ctx, contract.SummaryRequest{BoardID: b.ID, RecentPicks: 2})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.TotalPicks)
	require.Len(t, resp.RecentPicks, 2)
	assert.Equal(t, "Third", resp.RecentPicks[0].PlayerName)
	assert.Equal(t, "Fourth", resp.RecentPicks[1].PlayerName)
	assert.Equal(t, 4, resp.RecentPicks[1].Overall)
}

func TestGetSummary_EmptyBoard(t *testing.T) {
	boards, players, picks, rules, _ := setupRepos(t)
	ctx := context.Background()
	b := seedBoard(t, boards, rules)

	svc := NewSummaryService(boards, players, picks, rules)
	resp, err := svc.GetSummary(ctx, contract.SummaryRequest{BoardID: b.ID})
	require.NoError(t, err)

	assert.Zero(t, resp.TotalAvailable)
	assert.Zero(t, resp.TotalPicks)
	assert.Empty(t, resp.RecentPicks)
}

func TestGetSummary_UnknownBoard(t *testing.T) {
	boards, players, picks, rules, _ := setupRepos(t)
	ctx := context.Background()

	svc := NewSummaryService(boards, players, picks, rules)
	_, err := svc.GetSummary(ctx, contract.SummaryRequest{BoardID: "missing"})
	require.Error(t, err)

	var cerr *contract.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contract.ErrNoBoard, cerr.Code)
}
