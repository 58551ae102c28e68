package store_test

import (
	"context"
	"errors"
	"testing"

	"gamehub/internal/store"
	"gamehub/internal/testutil"
)

func ticTacToeGame(t *testing.T, st *store.Store) int64 {
	t.Helper()
	ctx := context.Background()
	if err := st.EnsureDefaultGames(ctx); err != nil {
		t.Fatalf("ensure games: %v", err)
	}
	g, err := st.GetGameByName(ctx, store.TicTacToeGameName)
	if err != nil {
		t.Fatalf("get game: %v", err)
	}
	return g.ID
}

func TestEnsureDefaultGamesIdempotent(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	if err := st.EnsureDefaultGames(ctx); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	if err := st.EnsureDefaultGames(ctx); err != nil {
		t.Fatalf("second ensure: %v", err)
	}
	games, err := st.ListGames(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(games) != 1 || games[0].Name != store.TicTacToeGameName {
		t.Fatalf("games = %+v", games)
	}
}

func TestUpsertAndGetScore(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	gameID := ticTacToeGame(t, st)
	alice := createUser(t, st, "alice")

	if _, err := st.GetScore(ctx, alice, gameID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("missing score err = %v", err)
	}
	if err := st.UpsertScore(ctx, alice, gameID, 5); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := st.UpsertScore(ctx, alice, gameID, 9); err != nil {
		t.Fatalf("upsert again: %v", err)
	}
	score, err := st.GetScore(ctx, alice, gameID)
	if err != nil {
		t.Fatalf("get score: %v", err)
	}
	if score != 9 {
		t.Fatalf("score = %d", score)
	}
}

func TestLeaderboardOrderingAndDeleted(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	gameID := ticTacToeGame(t, st)
	alice := createUser(t, st, "alice")
	bob := createUser(t, st, "bob")
	carol := createUser(t, st, "carol")

	for userID, score := range map[int64]int{alice: 3, bob: 7, carol: 5} {
		if err := st.UpsertScore(ctx, userID, gameID, score); err != nil {
			t.Fatalf("upsert: %v", err)
		}
	}
	if err := st.SoftDeleteUser(ctx, carol, "deleted_carol"); err != nil {
		t.Fatalf("delete carol: %v", err)
	}

	rows, err := st.ListLeaderboard(ctx, gameID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %+v", rows)
	}
	if rows[0].UserID != bob || rows[1].UserID != alice {
		t.Fatalf("order = %+v", rows)
	}
}

func TestRecordMatchResult(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	gameID := ticTacToeGame(t, st)
	winner := createUser(t, st, "winner")
	loser := createUser(t, st, "loser")

	if err := st.RecordMatchResult(ctx, winner, loser); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := st.RecordMatchResult(ctx, winner, loser); err != nil {
		t.Fatalf("record again: %v", err)
	}

	score, err := st.GetScore(ctx, winner, gameID)
	if err != nil {
		t.Fatalf("get score: %v", err)
	}
	if score != 2 {
		t.Fatalf("winner score = %d", score)
	}
	if _, err := st.GetScore(ctx, loser, gameID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("loser score err = %v", err)
	}

	wu, err := st.GetUserByID(ctx, winner)
	if err != nil {
		t.Fatalf("get winner: %v", err)
	}
	lu, err := st.GetUserByID(ctx, loser)
	if err != nil {
		t.Fatalf("get loser: %v", err)
	}
	if wu.GamesPlayed != 2 || lu.GamesPlayed != 2 {
		t.Fatalf("games played = %d, %d", wu.GamesPlayed, lu.GamesPlayed)
	}
}

func TestRecordMatchDraw(t *testing.T) {
	st, cleanup := testutil.OpenTestStore(t)
	defer cleanup()
	ctx := context.Background()

	gameID := ticTacToeGame(t, st)
	p1 := createUser(t, st, "p1")
	p2 := createUser(t, st, "p2")

	if err := st.RecordMatchDraw(ctx, p1, p2); err != nil {
		t.Fatalf("record draw: %v", err)
	}
	for _, id := range []int64{p1, p2} {
		u, err := st.GetUserByID(ctx, id)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if u.GamesPlayed != 1 {
			t.Fatalf("games played = %d", u.GamesPlayed)
		}
		if _, err := st.GetScore(ctx, id, gameID); !errors.Is(err, store.ErrNotFound) {
			t.Fatalf("draw scored: %v", err)
		}
	}
}
