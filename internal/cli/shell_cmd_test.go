package cli

import (
	"context"
	"testing"

	"github.com/mwhitman/draftboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitShellArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "single word",
			input: "matrix",
			want:  []string{"matrix"},
		},
		{
			name:  "double quoted phrase",
			input: `board add --id FF26 --name "Main League 2026"`,
			want:  []string{"board", "add", "--id", "FF26", "--name", "Main League 2026"},
		},
		{
			name:  "single quoted phrase",
			input: "take 'st. brown'",
			want:  []string{"take", "st. brown"},
		},
		{
			name:  "empty quoted arg",
			input: `player search ""`,
			want:  []string{"player", "search", ""},
		},
		{
			name:    "unterminated quote",
			input:   `take "oops`,
			wantErr: true,
		},
		{
			name:    "unterminated escape",
			input:   `take allen\`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := splitShellArgs(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestShellModel_DispatchesToCobra(t *testing.T) {
	app := testApp(t)
	m := newShellModel(app)

	m.executeCommand(`board add --id SHL26 --name "Shell Dispatch" --season 2026`)

	boards, err := app.Boards.List(context.Background(), false)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "SHL26", boards[0].ShortID)
	assert.Equal(t, "Shell Dispatch", boards[0].Name)
}

func TestShellModel_UseSetsAndClearsActiveBoard(t *testing.T) {
	app := testApp(t)
	b := seedBoardWithPlayers(t, app)

	m := newShellModel(app)

	m.executeCommand("use cli26")
	assert.Equal(t, b.ID, m.activeBoardID)
	assert.Equal(t, "CLI26", m.activeShortID)
	assert.Equal(t, "CLI Test Board", m.activeBoardName)

	m.executeCommand("use")
	assert.Equal(t, "", m.activeBoardID)
	assert.Equal(t, "", m.activeShortID)
	assert.Equal(t, "", m.activeBoardName)
}

func TestShellModel_ActiveBoardScopesCommands(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	b1 := seedBoardWithPlayers(t, app)
	b2 := &domain.Board{ShortID: "ALT26", Name: "Other League"}
	require.NoError(t, app.Boards.Create(ctx, b2))
	require.NoError(t, app.Players.Create(ctx, &domain.Player{
		BoardID: b2.ID, Name: "Josh Allen", Team: "BUF",
		Position: domain.PosQB, ProjectedPts: 380,
	}))

	m := newShellModel(app)
	m.executeCommand("use ALT26")

	// take should hit the active board, not the first one.
	m.executeCommand("take allen")

	picks, err := app.Draft.ListPicks(ctx, b2.ID)
	require.NoError(t, err)
	assert.Len(t, picks, 1)

	picks, err = app.Draft.ListPicks(ctx, b1.ID)
	require.NoError(t, err)
	assert.Empty(t, picks)
}

func TestShellModel_ExplicitBoardFlagWins(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()

	b1 := seedBoardWithPlayers(t, app)
	b2 := &domain.Board{ShortID: "ALT26", Name: "Other League"}
	require.NoError(t, app.Boards.Create(ctx, b2))

	m := newShellModel(app)
	m.executeCommand("use ALT26")

	// An explicit --board overrides the active board.
	m.executeCommand("take allen --board CLI26")

	picks, err := app.Draft.ListPicks(ctx, b1.ID)
	require.NoError(t, err)
	assert.Len(t, picks, 1)
}

func TestShellModel_CapturesHandlerOutput(t *testing.T) {
	app := testApp(t)
	seedBoardWithPlayers(t, app)

	m := newShellModel(app)
	m.executeCommand("use CLI26")

	// Handlers print straight to stdout; the shell must capture that text
	// instead of letting it leak past the alternate screen.
	output, _ := m.executeCommand("take allen")
	assert.Contains(t, output, "Pick #1")
	assert.Contains(t, output, "Josh Allen")
	assert.Contains(t, output, "joins your squad")
}

func TestShellModel_CapturesFormatterOutput(t *testing.T) {
	app := testApp(t)
	seedBoardWithPlayers(t, app)

	m := newShellModel(app)
	m.executeCommand("use CLI26")

	output, _ := m.executeCommand("matrix")
	assert.Contains(t, output, "Josh Allen")
	assert.Contains(t, output, "Bijan Robinson")
}

func TestShellModel_ExitSetsQuitting(t *testing.T) {
	app := testApp(t)
	m := newShellModel(app)

	assert.False(t, m.quitting)
	m.executeCommand("exit")
	assert.True(t, m.quitting)
}

func TestShellModel_QuitSetsQuitting(t *testing.T) {
	app := testApp(t)
	m := newShellModel(app)

	assert.False(t, m.quitting)
	m.executeCommand("quit")
	assert.True(t, m.quitting)
}

// --- Confirmation tests ---

func TestShellConfirm_BoardRemove_YesExecutes(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	seedBoardWithPlayers(t, app)

	m := newShellModel(app)

	m.executeCommand("board remove CLI26 --force")
	// --force bypasses the shell confirmation entirely.
	assert.Nil(t, m.pendingConfirm)

	boards, err := app.Boards.List(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, boards)
}

func TestShellConfirm_BoardRemove_EntersConfirmMode(t *testing.T) {
	app := testApp(t)
	seedBoardWithPlayers(t, app)

	m := newShellModel(app)

	m.executeCommand("board remove CLI26")
	require.NotNil(t, m.pendingConfirm)
	assert.Equal(t, modeConfirm, m.mode)
	assert.Contains(t, m.pendingConfirm.description, "board remove")

	// Board untouched until confirmed.
	boards, err := app.Boards.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, boards, 1)
}

func TestShellConfirm_PlayerRemove_Confirmed(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	b := seedBoardWithPlayers(t, app)

	m := newShellModel(app)
	m.executeCommand("use CLI26")

	m.executeCommand("player remove gibbs")
	require.NotNil(t, m.pendingConfirm)

	// Simulate confirming with "y" — execute the pending args directly.
	m.execCobraCapture(m.pendingConfirm.args)
	m.pendingConfirm = nil
	m.mode = modePrompt

	players, err := app.Players.SearchByName(ctx, b.ID, "gibbs")
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestShellConfirm_NonDestructivePassesThrough(t *testing.T) {
	app := testApp(t)
	seedBoardWithPlayers(t, app)

	m := newShellModel(app)

	m.executeCommand("board list")
	assert.Nil(t, m.pendingConfirm)
	assert.Equal(t, modePrompt, m.mode)
}

func TestShellConfirm_PromptPrefixShowsConfirm(t *testing.T) {
	app := testApp(t)
	m := newShellModel(app)
	m.mode = modeConfirm
	m.pendingConfirm = &pendingConfirmation{
		description: "board remove FF26",
		args:        []string{"board", "remove", "FF26"},
	}
	prefix := m.promptPrefix()
	assert.Contains(t, prefix, "confirm")
}

// --- Error recovery tests ---

func TestShellErrorRecovery_StatePreservedAfterFailure(t *testing.T) {
	app := testApp(t)
	b := seedBoardWithPlayers(t, app)

	m := newShellModel(app)

	m.executeCommand("use CLI26")
	assert.Equal(t, b.ID, m.activeBoardID)

	// A command that errors must not drop the active board.
	m.executeCommand("take nosuchplayer")

	assert.Equal(t, b.ID, m.activeBoardID)
	assert.Equal(t, "CLI26", m.activeShortID)
}

func TestShellErrorRecovery_InvalidCommandDoesNotCorruptState(t *testing.T) {
	app := testApp(t)
	m := newShellModel(app)

	m.executeCommand("definitely-not-a-command foo bar")
	assert.Equal(t, modePrompt, m.mode)
	assert.Nil(t, m.pendingConfirm)
}

// TestShellModel_DraftDayJourney exercises a full REPL session:
// create board → add players → use → matrix → take → slip → undo → exit.
func TestShellModel_DraftDayJourney(t *testing.T) {
	app := testApp(t)
	ctx := context.Background()
	m := newShellModel(app)

	// Step 1: create a board via the shell.
	m.executeCommand(`board add --id JRN26 --name "Journey League" --season 2026`)
	boards, err := app.Boards.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, boards, 1)
	b := boards[0]

	// Step 2: add players.
	m.executeCommand(`player add --name "Josh Allen" --team BUF --pos QB --pts 380`)
	m.executeCommand(`player add --name "Bijan Robinson" --team ATL --pos RB --pts 290`)
	players, err := app.Players.ListByBoard(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, players, 2)

	// Step 3: use board context.
	m.executeCommand("use jrn26")
	assert.Equal(t, b.ID, m.activeBoardID)
	assert.Equal(t, "JRN26", m.activeShortID)

	// Step 4: matrix renders and surfaces the top players.
	output, _ := m.executeCommand("matrix")
	assert.NotContains(t, output, "Error")
	assert.Contains(t, output, "Josh Allen")

	// Step 5: take a player.
	m.executeCommand("take allen")
	picks, err := app.Draft.ListPicks(ctx, b.ID)
	require.NoError(t, err)
	require.Len(t, picks, 1)

	// Step 6: tune a slip.
	m.executeCommand("slip set RB 2")
	rule, err := app.Rules.Get(ctx, b.ID, domain.PosRB)
	require.NoError(t, err)
	assert.Equal(t, 2, rule.Slip)

	// Step 7: undo the pick.
	m.executeCommand("undo")
	picks, err = app.Draft.ListPicks(ctx, b.ID)
	require.NoError(t, err)
	assert.Empty(t, picks)

	// Step 8: exit.
	m.executeCommand("exit")
	assert.True(t, m.quitting)
}

// --- Suggestion tests ---

func TestFilterSuggestions(t *testing.T) {
	t.Parallel()

	pool := []string{"matrix", "mark", "advise"}

	assert.Equal(t, []string{"matrix", "mark"}, filterSuggestions(pool, "ma"))
	assert.Equal(t, []string{"advise"}, filterSuggestions(pool, "AD"))
	assert.Equal(t, pool, filterSuggestions(pool, ""))
	assert.Nil(t, filterSuggestions(pool, "zz"))
}

func TestWithActiveBoard_SkipsUnscopedCommands(t *testing.T) {
	app := testApp(t)
	m := newShellModel(app)
	m.activeBoardID = "some-board-id"

	// board add is not board-scoped; no flag injected.
	got := m.withActiveBoard([]string{"board", "add", "--id", "FF26", "--name", "X"})
	assert.NotContains(t, got, "--board")

	// matrix is board-scoped; flag injected.
	got = m.withActiveBoard([]string{"matrix"})
	assert.Contains(t, got, "--board")
	assert.Contains(t, got, "some-board-id")
}
