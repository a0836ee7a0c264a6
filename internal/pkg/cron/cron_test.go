package cron

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qs3c/fridge_chef_server/config"
	"github.com/qs3c/fridge_chef_server/internal/pkg/storage"
	"github.com/qs3c/fridge_chef_server/internal/repository"
	"github.com/qs3c/fridge_chef_server/internal/service"
	"github.com/qs3c/fridge_chef_server/internal/testutil"
)

// stubSweeper 호출마다 batches 의 다음 값을 돌려준다
type stubSweeper struct {
	mu      sync.Mutex
	batches []int
	err     error
	calls   int
	expires []time.Duration
}

func (s *stubSweeper) SweepOrphans(ctx context.Context, olderThan time.Duration, limit int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expires = append(s.expires, olderThan)
	if s.calls >= len(s.batches) {
		s.calls++
		return 0, s.err
	}
	n := s.batches[s.calls]
	s.calls++
	return n, nil
}

func TestNewService(t *testing.T) {
	svc := NewService(nil, 24)
	assert.NotNil(t, svc)
	assert.NotNil(t, svc.stopChan)
	assert.Equal(t, sweepInterval, svc.interval)

	n, err := svc.RunNow(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, n)
}

func TestService_StartAndStop(t *testing.T) {
	svc := NewService(&stubSweeper{}, 1)

	svc.Start()
	time.Sleep(10 * time.Millisecond)
	svc.Stop()
}

func TestService_TickerRunsSweep(t *testing.T) {
	sweeper := &stubSweeper{}
	svc := NewService(sweeper, 1)
	svc.interval = 10 * time.Millisecond

	svc.Start()
	defer svc.Stop()

	assert.Eventually(t, func() bool {
		sweeper.mu.Lock()
		defer sweeper.mu.Unlock()
		return sweeper.calls > 0
	}, time.Second, 5*time.Millisecond)
}

func TestService_RunNow_Batches(t *testing.T) {
	sweeper := &stubSweeper{batches: []int{sweepBatch, sweepBatch, 3}}
	svc := NewService(sweeper, 48)

	n, err := svc.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2*sweepBatch+3, n)
	assert.Equal(t, 3, sweeper.calls)
	assert.Equal(t, 48*time.Hour, sweeper.expires[0])
}

func TestService_RunNow_Error(t *testing.T) {
	sweeper := &stubSweeper{err: errors.New("db down")}
	svc := NewService(sweeper, 0)

	_, err := svc.RunNow(context.Background())
	assert.Error(t, err)
	assert.Equal(t, time.Hour, sweeper.expires[0])
}

func TestService_RunNow_SweepsOrphanImages(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.CleanupTestDB(t, db)

	store := storage.NewMemory("cdn.test")
	imageRepo := repository.NewImageRepository(db)
	images := service.NewImageService(imageRepo, store, nil, &config.Config{})

	user := testutil.TestUser(t, db)
	old := time.Now().Add(-72 * time.Hour)
	orphan := testutil.TestImage(t, db, user.ID, testutil.WithImageCreatedAt(old))
	fresh := testutil.TestImage(t, db, user.ID)

	svc := NewService(images, 24)
	n, err := svc.RunNow(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = imageRepo.GetByID(orphan.ID)
	assert.Error(t, err)
	_, err = imageRepo.GetByID(fresh.ID)
	assert.NoError(t, err)
}

func TestOrphanExpiry(t *testing.T) {
	tests := []struct {
		hours int
		want  time.Duration
	}{
		{hours: 24, want: 24 * time.Hour},
		{hours: 1, want: time.Hour},
		{hours: 0, want: time.Hour},
		{hours: -5, want: time.Hour},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, OrphanExpiry(tt.hours), "hours=%d", tt.hours)
	}
}
