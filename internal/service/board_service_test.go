package service

import (
	"context"
	"testing"

	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardCreate_SeedsDefaultRules(t *testing.T) {
	boards, _, _, rules, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewBoardService(boards, uow)
	b := &domain.Board{ShortID: "FF26", Name: "Main Draft", Season: 2026}
	require.NoError(t, svc.Create(ctx, b))

	assert.NotEmpty(t, b.ID, "ID should be assigned")
	assert.Equal(t, domain.BoardActive, b.Status)

	seeded, err := rules.ListByBoard(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, seeded, len(domain.AllPositions), "every position should get a rule")
	for _, r := range seeded {
		assert.Equal(t, 0, r.Slip, "default slip should be 0")
		assert.Equal(t, domain.DefaultRosterLimits[r.Position], r.RosterLimit)
	}
}

func TestBoardCreate_LowercasesShortIDAccepted(t *testing.T) {
	boards, _, _, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewBoardService(boards, uow)
	b := &domain.Board{ShortID: "ff26", Name: "Main Draft"}
	require.NoError(t, svc.Create(ctx, b))
	assert.Equal(t, "FF26", b.ShortID)
}

func TestBoardCreate_InvalidShortID(t *testing.T) {
	boards, _, _, rules, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewBoardService(boards, uow)
	err := svc.Create(ctx, &domain.Board{ShortID: "26FF", Name: "Backwards"})
	require.Error(t, err)

	// Nothing should have been written.
	all, err := boards.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, all)
	_ = rules
}

func TestBoardResolve_ShortIDAndUUID(t *testing.T) {
	boards, _, _, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewBoardService(boards, uow)
	b := &domain.Board{ShortID: "FF26", Name: "Main Draft"}
	require.NoError(t, svc.Create(ctx, b))

	byShort, err := svc.Resolve(ctx, "ff26")
	require.NoError(t, err)
	assert.Equal(t, b.ID, byShort.ID)

	byID, err := svc.Resolve(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, b.ID, byID.ID)

	_, err = svc.Resolve(ctx, "NOPE99")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOPE99")
}

func TestBoardDelete_RequiresArchiveUnlessForced(t *testing.T) {
	boards, _, _, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewBoardService(boards, uow)
	b := &domain.Board{ShortID: "FF26", Name: "Main Draft"}
	require.NoError(t, svc.Create(ctx, b))

	err := svc.Delete(ctx, b.ID, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "archived")

	require.NoError(t, svc.Archive(ctx, b.ID))
	require.NoError(t, svc.Delete(ctx, b.ID, false))

	_, err = svc.GetByID(ctx, b.ID)
	require.Error(t, err)
}

func TestBoardDelete_ForceSkipsArchiveCheck(t *testing.T) {
	boards, _, _, _, uow := setupRepos(t)
	ctx := context.Background()

	svc := NewBoardService(boards, uow)
	b := &domain.Board{ShortID: "FF26", Name: "Main Draft"}
	require.NoError(t, svc.Create(ctx, b))

	require.NoError(t, svc.Delete(ctx, b.ID, true))
}
