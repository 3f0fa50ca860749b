package settings

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/alexanderramin/focusflow/internal/domain"
	"github.com/alexanderramin/focusflow/internal/repository"
	"github.com/alexanderramin/focusflow/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, repository.KeyValueRepo, *bytes.Buffer) {
	t.Helper()
	kv := repository.NewSQLiteKeyValueRepo(testutil.NewTestDB(t))
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	return NewStore(kv, logger), kv, &logs
}

func TestStore_LoadMissingKeyUsesDefaults(t *testing.T) {
	store, _, _ := newTestStore(t)

	require.NoError(t, store.Load(context.Background()))
	assert.Equal(t, domain.DefaultSettings(), store.Get())
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store, kv, _ := newTestStore(t)
	ctx := context.Background()

	store.SetSoundEnabled(false)
	store.SetVolume(0.35)
	require.NoError(t, store.SetDefaultDuration(50))
	require.NoError(t, store.Save(ctx))

	raw, found, err := kv.Get(ctx, Key)
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, `{"soundEnabled":false,"soundVolume":0.35,"defaultDuration":50}`, raw)

	reloaded := NewStore(kv, nil)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, domain.Settings{SoundEnabled: false, SoundVolume: 0.35, DefaultDuration: 50}, reloaded.Get())
}

func TestStore_LoadCorruptJSONFallsBackAndLogs(t *testing.T) {
	store, kv, logs := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, kv.Put(ctx, Key, `{"soundEnabled":`))
	store.SetVolume(0.1)

	require.NoError(t, store.Load(ctx))
	assert.Equal(t, domain.DefaultSettings(), store.Get())
	assert.Contains(t, logs.String(), "failed to parse settings")
}

func TestStore_LoadClampsStoredVolume(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Settings
	}{
		{`{"soundEnabled":true,"soundVolume":3,"defaultDuration":25}`, domain.Settings{SoundEnabled: true, SoundVolume: 1, DefaultDuration: 25}},
		{`{"soundEnabled":true,"soundVolume":-0.5,"defaultDuration":25}`, domain.Settings{SoundEnabled: true, SoundVolume: 0, DefaultDuration: 25}},
		{`{"soundEnabled":false,"soundVolume":0.5,"defaultDuration":0}`, domain.Settings{SoundEnabled: false, SoundVolume: 0.5, DefaultDuration: 25}},
		{`{"soundVolume":0.2}`, domain.Settings{SoundEnabled: true, SoundVolume: 0.2, DefaultDuration: 25}},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			store, kv, _ := newTestStore(t)
			ctx := context.Background()
			require.NoError(t, kv.Put(ctx, Key, tt.raw))

			require.NoError(t, store.Load(ctx))
			assert.Equal(t, tt.want, store.Get())
		})
	}
}

func TestStore_SetVolumeClamps(t *testing.T) {
	store, _, _ := newTestStore(t)

	tests := []struct {
		in, want float64
	}{
		{0.5, 0.5},
		{0, 0},
		{1, 1},
		{1.5, 1},
		{-0.2, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, store.SetVolume(tt.in))
		assert.Equal(t, tt.want, store.Get().SoundVolume)
	}
}

func TestStore_ToggleSound(t *testing.T) {
	store, _, _ := newTestStore(t)

	assert.False(t, store.ToggleSound())
	assert.True(t, store.ToggleSound())
}

func TestStore_SetDefaultDurationRejectsNonPositive(t *testing.T) {
	store, _, _ := newTestStore(t)

	err := store.SetDefaultDuration(0)
	assert.ErrorIs(t, err, domain.ErrInvalidDuration)
	assert.Equal(t, domain.DefaultFocusDuration, store.Get().DefaultDuration)
}

func TestStore_ResetAndReplace(t *testing.T) {
	store, _, _ := newTestStore(t)

	store.Replace(domain.Settings{SoundEnabled: false, SoundVolume: 9, DefaultDuration: 15})
	assert.Equal(t, domain.Settings{SoundEnabled: false, SoundVolume: 1, DefaultDuration: 15}, store.Get())

	store.Reset()
	assert.Equal(t, domain.DefaultSettings(), store.Get())
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk gone")
}
func (failingKV) Put(context.Context, string, string) error { return errors.New("disk gone") }

func TestStore_StorageErrorsPropagate(t *testing.T) {
	store := NewStore(failingKV{}, nil)
	ctx := context.Background()

	assert.Error(t, store.Load(ctx))
	assert.Error(t, store.Save(ctx))
	assert.Equal(t, domain.DefaultSettings(), store.Get())
}

func TestStore_ConcurrentMutation(t *testing.T) {
	store, _, _ := newTestStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			store.SetVolume(float64(i) / 50)
			_ = store.Get()
		}(i)
	}
	wg.Wait()

	v := store.Get().SoundVolume
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}
