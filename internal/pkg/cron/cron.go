package cron

import (
	"context"
	"log/slog"
	"time"
)

const (
	sweepInterval = time.Hour
	sweepBatch    = 500
)

// OrphanSweeper 참조가 끊긴 이미지 정리
type OrphanSweeper interface {
	SweepOrphans(ctx context.Context, olderThan time.Duration, limit int) (int, error)
}

type Service struct {
	sweeper     OrphanSweeper
	expireHours int
	interval    time.Duration
	stopChan    chan struct{}
}

func NewService(sweeper OrphanSweeper, expireHours int) *Service {
	return &Service{
		sweeper:     sweeper,
		expireHours: expireHours,
		interval:    sweepInterval,
		stopChan:    make(chan struct{}),
	}
}

// Start 정기 작업 시작
func (s *Service) Start() {
	go s.runOrphanSweep()
	slog.Info("cron service started", "orphan_expire_hours", s.expireHours)
}

// Stop 정기 작업 중지
func (s *Service) Stop() {
	close(s.stopChan)
	slog.Info("cron service stopped")
}

// runOrphanSweep 한 시간마다 고아 이미지 정리
func (s *Service) runOrphanSweep() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stopChan:
			return
		case <-ticker.C:
			if _, err := s.RunNow(context.Background()); err != nil {
				slog.Error("orphan image sweep failed", "error", err)
			}
		}
	}
}

// RunNow 한 번에 sweepBatch 개씩, 남은 것이 없을 때까지 정리
func (s *Service) RunNow(ctx context.Context) (int, error) {
	if s.sweeper == nil {
		return 0, nil
	}

	total := 0
	for {
		n, err := s.sweeper.SweepOrphans(ctx, s.expire(), sweepBatch)
		total += n
		if err != nil {
			return total, err
		}
		if n < sweepBatch {
			break
		}
	}

	if total > 0 {
		slog.Info("orphan images swept", "count", total)
	}
	return total, nil
}

func (s *Service) expire() time.Duration {
	return OrphanExpiry(s.expireHours)
}

// OrphanExpiry 보존 시간, 최소 1시간
func OrphanExpiry(hours int) time.Duration {
	if hours < 1 {
		hours = 1
	}
	return time.Duration(hours) * time.Hour
}
