package entity_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"pss-assistant/core/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

const roomPayload = `[
	{"RoomDesignId": 1, "RoomName": "Laser Lv1", "RoomShortName": "LAS:Laser", "UpgradeFromRoomDesignId": 0},
	{"RoomDesignId": 12, "RoomName": "Laser Lv2", "RoomShortName": "LAS:Laser", "UpgradeFromRoomDesignId": 1},
	{"RoomDesignId": 3, "RoomName": "Laser Lv3", "RoomShortName": "LAS:Laser", "UpgradeFromRoomDesignId": 12},
	{"RoomDesignId": 4, "RoomName": "Lift Lv1", "RoomShortName": "LIF", "UpgradeFromRoomDesignId": 0},
	{"RoomDesignId": 5, "RoomName": "Las", "RoomShortName": "X", "UpgradeFromRoomDesignId": 0}
]`

type countingSource struct {
	calls   atomic.Int32
	payload string
	err     error
	delay   time.Duration
}

func (s *countingSource) Fetch(ctx context.Context, _ entity.Endpoint) ([]byte, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return []byte(s.payload), nil
}

func roomConfig(ttl time.Duration) entity.RetrieverConfig {
	return entity.RetrieverConfig{
		Endpoint:         entity.Endpoint{Name: "RoomDesigns", Path: "RoomService/ListRoomDesigns2?languageKey=en"},
		KeyProperty:      "RoomDesignId",
		NameProperty:     "RoomName",
		SearchProperties: []string{"RoomShortName"},
		SortKey:          entity.ChainSortKeyFunc("RoomDesignId", "UpgradeFromRoomDesignId"),
		TTL:              ttl,
	}
}

func TestRetriever_CachesWithinTTL(t *testing.T) {
	src := &countingSource{payload: roomPayload}
	r := entity.NewRetriever(roomConfig(time.Hour), src, zap.NewNop())

	for i := 0; i < 3; i++ {
		data, err := r.Data(context.Background())
		require.NoError(t, err)
		assert.Len(t, data, 5)
	}
	assert.Equal(t, int32(1), src.calls.Load())

	r.Invalidate()
	_, err := r.Data(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestRetriever_ZeroTTLAlwaysFetches(t *testing.T) {
	src := &countingSource{payload: roomPayload}
	r := entity.NewRetriever(roomConfig(0), src, nil)

	_, err := r.Data(context.Background())
	require.NoError(t, err)
	_, err = r.Data(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestRetriever_ConcurrentCallersShareFetch(t *testing.T) {
	defer goleak.VerifyNone(t)

	src := &countingSource{payload: roomPayload, delay: 50 * time.Millisecond}
	r := entity.NewRetriever(roomConfig(time.Hour), src, zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			data, err := r.Data(context.Background())
			assert.NoError(t, err)
			assert.Len(t, data, 5)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), src.calls.Load())
}

func TestRetriever_FetchError(t *testing.T) {
	boom := errors.New("boom")
	r := entity.NewRetriever(roomConfig(time.Hour), &countingSource{err: boom}, zap.NewNop())

	_, err := r.Data(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "RoomDesigns")

	bad := entity.NewRetriever(roomConfig(time.Hour), &countingSource{payload: "{"}, zap.NewNop())
	_, err = bad.Data(context.Background())
	assert.ErrorIs(t, err, entity.ErrMalformedPayload)
}

func TestRetriever_InfoByID(t *testing.T) {
	r := entity.NewRetriever(roomConfig(time.Hour), &countingSource{payload: roomPayload}, zap.NewNop())

	info, ok, err := r.InfoByID(context.Background(), "12")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Laser Lv2", info["RoomName"])

	_, ok, err = r.InfoByID(context.Background(), "999")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRetriever_InfosByName(t *testing.T) {
	r := entity.NewRetriever(roomConfig(time.Hour), &countingSource{payload: roomPayload}, zap.NewNop())
	ctx := context.Background()

	ids := func(infos []entity.DesignInfo) []string {
		out := make([]string, 0, len(infos))
		for _, info := range infos {
			out = append(out, info["RoomDesignId"])
		}
		return out
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "exact name and short name in chain order", query: "las", want: []string{"1", "12", "3", "5"}},
		{name: "colon is not searchable", query: "LAS:", want: []string{}},
		{name: "partial ordered by chain", query: "laser", want: []string{"1", "12", "3"}},
		{name: "search value before colon", query: "lif", want: []string{"4"}},
		{name: "blank", query: "  ", want: []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.InfosByName(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestRetriever_Accessors(t *testing.T) {
	r := entity.NewRetriever(roomConfig(0), &countingSource{}, nil)
	assert.Equal(t, "RoomDesigns", r.Name())
	assert.Equal(t, "RoomDesignId", r.KeyProperty())
	assert.Equal(t, "RoomName", r.NameProperty())
}
