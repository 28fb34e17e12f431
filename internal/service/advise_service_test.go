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

func TestAdvise_BiggestDropoffWins(t *testing.T) {
	boards, players, _, rules, _ := setupRepos(t)
	ctx := context.Background()
	b := seedBoard(t, boards, rules)

	// RB cliff: 90 points between top and the survivor at slip 1.
	for _, p := range []*domain.Player{
		testutil.NewTestPlayer(b.ID, "Elite RB", domain.PosRB, testutil.WithPoints(290)),
		testutil.NewTestPlayer(b.ID, "Backup RB", domain.PosRB, testutil.WithPoints(200)),
		testutil.NewTestPlayer(b.ID, "Flat QB One", domain.PosQB, testutil.WithPoints(300)),
		testutil.NewTestPlayer(b.ID, "Flat QB Two", domain.PosQB, testutil.WithPoints(298)),
	} {
		require.NoError(t, players.Create(ctx, p))
	}
	require.NoError(t, rules.SetSlip(ctx, b.ID, domain.PosRB, 1))
	require.NoError(t, rules.SetSlip(ctx, b.ID, domain.PosQB, 1))

	svc := NewAdviseService(boards, players, rules)
	resp, err := svc.Advise(ctx, contract.AdviseRequest{BoardID: b.ID})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Advice)

	assert.Equal(t, domain.PosRB, resp.Advice[0].Position, "steep RB cliff should outrank flat QB")
	assert.Greater(t, resp.Advice[0].Score, resp.Advice[1].Score)
}

func TestAdvise_FullSquadSkipped(t *testing.T) {
	boards, players, _, rules, _ := setupRepos(t)
	ctx := context.Background()
	b := seedBoard(t, boards, rules)

	require.NoError(t, players.Create(ctx,
		testutil.NewTestPlayer(b.ID, "Spare K", domain.PosK, testutil.WithPoints(140))))
	// Default K limit is 1; one kicker on the squad fills it.
	require.NoError(t, players.Create(ctx,
		testutil.NewTestPlayer(b.ID, "My K", domain.PosK, testutil.WithStatus(domain.PlayerMine))))

	svc := NewAdviseService(boards, players, rules)
	resp, err := svc.Advise(ctx, contract.AdviseRequest{BoardID: b.ID})
	require.NoError(t, err)

	var kicker *contract.PositionAdvice
	for i := range resp.Advice {
		if resp.Advice[i].Position == domain.PosK {
			kicker = &resp.Advice[i]
		}
	}
	require.NotNil(t, kicker)
	assert.True(t, kicker.Skipped)
	assert.Equal(t, "squad full", kicker.Reason)
}

func TestAdvise_SlipPastEndWarnsAndScoresZero(t *testing.T) {
	boards, players, _, rules, _ := setupRepos(t)
	ctx := context.Background()
	b := seedBoard(t, boards, rules)

	require.NoError(t, players.Create(ctx,
		testutil.NewTestPlayer(b.ID, "Lone TE", domain.PosTE, testutil.WithPoints(180))))
	require.NoError(t, rules.SetSlip(ctx, b.ID, domain.PosTE, 4))

	svc := NewAdviseService(boards, players, rules)
	resp, err := svc.Advise(ctx, contract.AdviseRequest{BoardID: b.ID})
	require.NoError(t, err)

	require.NotEmpty(t, resp.Warnings)
	assert.Contains(t, resp.Warnings[0], "TE")

	var te *contract.PositionAdvice
	for i := range resp.Advice {
		if resp.Advice[i].Position == domain.PosTE {
			te = &resp.Advice[i]
		}
	}
	require.NotNil(t, te)
	assert.False(t, te.Skipped, "still a pickable position")
	assert.False(t, te.HasDropoff)
	assert.Zero(t, te.Score)
	require.NotNil(t, te.Top, "top player still surfaces")
}

func TestAdvise_LimitCapsResults(t *testing.T) {
	boards, players, _, rules, _ := setupRepos(t)
	ctx := context.Background()
	b := seedBoard(t, boards, rules)

	svc := NewAdviseService(boards, players, rules)
	resp, err := svc.Advise(ctx, contract.AdviseRequest{BoardID: b.ID, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, resp.Advice, 2)
}

func TestAdvise_UnknownBoard(t *testing.T) {
	boards, players, _, rules, _ := setupRepos(t)
	ctx := context.Background()

	svc := NewAdviseService(boards, players, rules)
	_, err := svc.Advise(ctx, contract.AdviseRequest{BoardID: "missing"})
	require.Error(t, err)

	var cerr *contract.Error
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, contract.ErrNoBoard, cerr.Code)
}
