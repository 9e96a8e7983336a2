package osuapi

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New("", NewSyncConnector())
	assert.ErrorIs(t, err, ErrMissingKey)

	_, err = New(testKey, nil)
	assert.ErrorIs(t, err, ErrNilConnector)
}

func TestClientQueryShaping(t *testing.T) {
	api := newFakeAPI(t)
	c := newTestClient(t, NewSyncConnector(WithBaseURL(api.URL)))
	ctx := context.Background()

	t.Run("user by id", func(t *testing.T) {
		_, err := c.GetUser(ctx, UserQuery{User: UserID(124493), Mode: Taiko.Filter(), EventDays: 5})
		require.NoError(t, err)
		q := api.lastQuery()
		assert.Equal(t, testKey, q.Get("k"))
		assert.Equal(t, "124493", q.Get("u"))
		assert.Equal(t, "id", q.Get("type"))
		assert.Equal(t, "1", q.Get("m"))
		assert.Equal(t, "5", q.Get("event_days"))
	})

	t.Run("user by name omits absent filters", func(t *testing.T) {
		_, err := c.GetUserBest(ctx, UserScoresQuery{User: UserName("khazhyk")})
		require.NoError(t, err)
		q := api.lastQuery()
		assert.Equal(t, "khazhyk", q.Get("u"))
		assert.Equal(t, "string", q.Get("type"))
		for _, key := range []string{"m", "limit", "mods", "b"} {
			assert.False(t, q.Has(key), key)
		}
	})

	t.Run("numeric name stays a name", func(t *testing.T) {
		_, err := c.GetUserRecent(ctx, UserScoresQuery{User: UserName("39828"), Limit: 1})
		require.NoError(t, err)
		q := api.lastQuery()
		assert.Equal(t, "string", q.Get("type"))
		assert.Equal(t, "1", q.Get("limit"))
	})

	t.Run("scores", func(t *testing.T) {
		mods := Hidden | HardRock
		_, err := c.GetScores(ctx, ScoresQuery{BeatmapID: 774965, User: UserID(124493), Mode: Standard.Filter(), Mods: &mods, Limit: 1})
		require.NoError(t, err)
		q := api.lastQuery()
		assert.Equal(t, "774965", q.Get("b"))
		assert.Equal(t, "24", q.Get("mods"))
		assert.Equal(t, "0", q.Get("m"))
		assert.Equal(t, "1", q.Get("limit"))
	})

	t.Run("no-mod filter is sent", func(t *testing.T) {
		nomod := NoMod
		_, err := c.GetScores(ctx, ScoresQuery{BeatmapID: 774965, Mods: &nomod})
		require.NoError(t, err)
		assert.Equal(t, "0", api.lastQuery().Get("mods"))
	})

	t.Run("beatmaps", func(t *testing.T) {
		since := time.Date(2021, 1, 2, 3, 4, 5, 0, time.FixedZone("KST", 9*60*60))
		_, err := c.GetBeatmaps(ctx, BeatmapsQuery{
			Since:            since,
			BeatmapSetID:     39804,
			Mode:             Mania.Filter(),
			IncludeConverted: true,
			Hash:             "da8aae79c8f3306b5d65ec951874a7fb",
			Limit:            10,
		})
		require.NoError(t, err)
		q := api.lastQuery()
		assert.Equal(t, "2021-01-01 18:04:05", q.Get("since"))
		assert.Equal(t, "39804", q.Get("s"))
		assert.Equal(t, "3", q.Get("m"))
		assert.Equal(t, "1", q.Get("a"))
		assert.Equal(t, "da8aae79c8f3306b5d65ec951874a7fb", q.Get("h"))
		assert.Equal(t, "10", q.Get("limit"))
		assert.False(t, q.Has("u"))
		assert.False(t, q.Has("b"))
	})

	t.Run("empty beatmaps query", func(t *testing.T) {
		_, err := c.GetBeatmaps(ctx, BeatmapsQuery{})
		require.NoError(t, err)
		q := api.lastQuery()
		assert.Len(t, q, 1)
		assert.Equal(t, testKey, q.Get("k"))
	})

	t.Run("match", func(t *testing.T) {
		_, err := c.GetMatch(ctx, 71641)
		require.NoError(t, err)
		assert.Equal(t, "71641", api.lastQuery().Get("mp"))
	})
}

func TestClientInvalidQuery(t *testing.T) {
	api := newFakeAPI(t)
	c := newTestClient(t, NewSyncConnector(WithBaseURL(api.URL)))
	ctx := context.Background()

	_, err := c.GetUser(ctx, UserQuery{})
	assert.ErrorIs(t, err, ErrInvalidQuery)
	_, err = c.GetUserBest(ctx, UserScoresQuery{Limit: 5})
	assert.ErrorIs(t, err, ErrInvalidQuery)
	_, err = c.GetScores(ctx, ScoresQuery{User: UserID(1)})
	assert.ErrorIs(t, err, ErrInvalidQuery)
	_, err = c.GetMatch(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidQuery)
	_, err = c.GetUserRecentAsync(ctx, UserScoresQuery{}).Wait()
	assert.ErrorIs(t, err, ErrInvalidQuery)

	assert.Empty(t, api.queries, "invalid queries must not reach the network")
}

func TestClientResults(t *testing.T) {
	api := newFakeAPI(t)
	c := newTestClient(t, NewConcurrentConnector(WithBaseURL(api.URL)))
	ctx := context.Background()

	t.Run("unknown user is empty", func(t *testing.T) {
		users, err := c.GetUser(ctx, UserQuery{User: UserName("nobody")})
		require.NoError(t, err)
		assert.NotNil(t, users)
		assert.Empty(t, users)
	})

	t.Run("unknown match", func(t *testing.T) {
		_, err := c.GetMatch(ctx, 1)
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("match", func(t *testing.T) {
		m, err := c.GetMatch(ctx, 71641)
		require.NoError(t, err)
		assert.Equal(t, "OWC: (Korea) vs (Japan)", m.Info.Name)
		require.Len(t, m.Games, 1)
		assert.Len(t, m.Games[0].Scores, 2)
	})

	t.Run("mania beatmap", func(t *testing.T) {
		maps, err := c.GetBeatmaps(ctx, BeatmapsQuery{BeatmapID: 975667})
		require.NoError(t, err)
		require.Len(t, maps, 1)
		assert.Equal(t, Mania, maps[0].Mode)
		assert.Nil(t, maps[0].DiffAim)
		assert.Nil(t, maps[0].DiffSpeed)
	})

	t.Run("bad key", func(t *testing.T) {
		bad, err := New("wrong", NewSyncConnector(WithBaseURL(api.URL)))
		require.NoError(t, err)
		defer bad.Close()
		_, err = bad.GetUser(ctx, UserQuery{User: UserID(1)})
		var se *StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	})
}

func TestClientSyncAsyncParity(t *testing.T) {
	api := newFakeAPI(t)
	ctx := context.Background()

	for name, conn := range connectors(WithBaseURL(api.URL)) {
		t.Run(name, func(t *testing.T) {
			c := newTestClient(t, conn)

			user := UserQuery{User: UserID(124493)}
			u, err := c.GetUser(ctx, user)
			require.NoError(t, err)
			ua, err := c.GetUserAsync(ctx, user).Wait()
			require.NoError(t, err)
			assert.Equal(t, u, ua)

			scores := UserScoresQuery{User: UserName("khazhyk"), Limit: 2}
			best, err := c.GetUserBest(ctx, scores)
			require.NoError(t, err)
			besta, err := c.GetUserBestAsync(ctx, scores).Wait()
			require.NoError(t, err)
			assert.Equal(t, best, besta)

			recent, err := c.GetUserRecent(ctx, scores)
			require.NoError(t, err)
			recenta, err := c.GetUserRecentAsync(ctx, scores).Wait()
			require.NoError(t, err)
			assert.Equal(t, recent, recenta)

			sq := ScoresQuery{BeatmapID: 1343925}
			sc, err := c.GetScores(ctx, sq)
			require.NoError(t, err)
			sca, err := c.GetScoresAsync(ctx, sq).Wait()
			require.NoError(t, err)
			assert.Equal(t, sc, sca)

			bq := BeatmapsQuery{BeatmapID: 190047}
			bm, err := c.GetBeatmaps(ctx, bq)
			require.NoError(t, err)
			bma, err := c.GetBeatmapsAsync(ctx, bq).Wait()
			require.NoError(t, err)
			assert.Equal(t, bm, bma)

			m, err := c.GetMatch(ctx, 71641)
			require.NoError(t, err)
			ma, err := c.GetMatchAsync(ctx, 71641).Wait()
			require.NoError(t, err)
			assert.Equal(t, m, ma)

			_, err = c.GetMatchAsync(ctx, 5).Wait()
			assert.ErrorIs(t, err, ErrNoMatch)
		})
	}
}

func TestFutureMany(t *testing.T) {
	api := newFakeAPI(t)
	c := newTestClient(t, NewConcurrentConnector(WithBaseURL(api.URL), WithMaxInFlight(3)))
	ctx := context.Background()

	ids := []int64{129891, 975667, 190047, 385128}
	futures := make([]*Future[[]Beatmap], len(ids))
	for i, id := range ids {
		futures[i] = c.GetBeatmapsAsync(ctx, BeatmapsQuery{BeatmapID: id})
	}

	modes := []Mode{Standard, Mania, Taiko, CatchTheBeat}
	for i, f := range futures {
		<-f.Done()
		maps, err := f.Wait()
		require.NoError(t, err)
		require.Len(t, maps, 1)
		assert.Equal(t, modes[i], maps[0].Mode)
	}
}

func TestFutureWaitContext(t *testing.T) {
	f := newFuture[int]()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := f.WaitContext(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	f.resolve(7, nil)
	v, err := f.WaitContext(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}
