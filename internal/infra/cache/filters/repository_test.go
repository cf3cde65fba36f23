package filters

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GroomingAgenda/internal/domain"
)

type fakeClient struct {
	data map[string]string
	ttl  time.Duration
	err  error
}

func (f *fakeClient) Get(ctx context.Context, key string) *redis.StringCmd {
	if f.err != nil {
		return redis.NewStringResult("", f.err)
	}
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.data[key] = string(value.([]byte))
	f.ttl = expiration
	return redis.NewStatusResult("OK", f.err)
}

func (f *fakeClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(f.data, k)
	}
	return redis.NewIntResult(int64(len(keys)), f.err)
}

func TestDecodeIsTolerant(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want domain.FilterSelection
	}{
		{
			name: "well formed",
			raw:  `{"statuses":["em_espera","agendado"],"profIds":["p2","p1"],"noPreference":true,"profTipo":"banhista"}`,
			want: domain.FilterSelection{
				Statuses:            []domain.Status{domain.StatusScheduled, domain.StatusWaiting},
				ProfessionalIDs:     []string{"p1", "p2"},
				IncludeNoPreference: true,
				Kind:                domain.KindBather,
			},
		},
		{
			name: "wrong field types are skipped",
			raw:  `{"statuses":"finalizado","profIds":[1,"p1",null],"noPreference":"yes","profTipo":7}`,
			want: domain.FilterSelection{
				Statuses:        []domain.Status{domain.StatusDone},
				ProfessionalIDs: []string{"p1"},
			},
		},
		{
			name: "unknown statuses dropped",
			raw:  `{"statuses":["parcial","bogus"]}`,
			want: domain.FilterSelection{}.Normalize(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode([]byte(tt.raw))
			require.NoError(t, err)
			assert.Equal(t, tt.want.Normalize(), got)
		})
	}

	_, err := Decode([]byte(`[not json`))
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{data: map[string]string{}}
	repo := NewRepository(client, 24*time.Hour)

	sel, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, sel)

	in := domain.FilterSelection{Statuses: []domain.Status{domain.StatusWaiting}, Kind: domain.KindTrimmer}.Normalize()
	require.NoError(t, repo.Save(ctx, "u1", in))
	assert.Contains(t, client.data, "agenda_filters_v1:u1")
	assert.Equal(t, 24*time.Hour, client.ttl)

	sel, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, in, *sel)

	require.NoError(t, repo.Delete(ctx, "u1"))
	assert.Empty(t, client.data)
}

func TestRepositoryErrors(t *testing.T) {
	ctx := context.Background()
	client := &fakeClient{data: map[string]string{"agenda_filters_v1:u1": "{broken"}}
	repo := NewRepository(client, 0)

	_, err := repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrMalformed)

	client.err = errors.New("connection refused")
	_, err = repo.Get(ctx, "u1")
	assert.ErrorIs(t, err, ErrRedis)
}
