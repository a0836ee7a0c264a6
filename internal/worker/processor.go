package worker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/qs3c/fridge_chef_server/internal/pkg/metrics"
	"github.com/qs3c/fridge_chef_server/internal/pkg/queue"
	"github.com/qs3c/fridge_chef_server/internal/pkg/storage"
)

const popTimeout = 5 * time.Second

// Source 정리 작업을 꺼내는 큐. 타임아웃이면 nil, nil
type Source interface {
	Pop(ctx context.Context, timeout time.Duration) (*queue.ImageCleanupMessage, error)
}

// Processor 이미지 오브젝트 삭제 처리기
type Processor struct {
	store storage.Storage
}

func NewProcessor(store storage.Storage) *Processor {
	return &Processor{store: store}
}

// Process 오브젝트 하나 삭제. 이미 없는 오브젝트도 성공으로 본다
func (p *Processor) Process(ctx context.Context, msg *queue.ImageCleanupMessage) error {
	if msg.ObjectKey == "" {
		metrics.ImageCleanupJobs.WithLabelValues("skipped").Inc()
		return nil
	}

	if err := p.store.Delete(ctx, msg.ObjectKey); err != nil {
		metrics.ImageCleanupJobs.WithLabelValues("failed").Inc()
		return fmt.Errorf("delete object %s: %w", msg.ObjectKey, err)
	}

	metrics.ImageCleanupJobs.WithLabelValues("deleted").Inc()
	slog.Info("image object deleted",
		"image_id", msg.ImageID,
		"key", msg.ObjectKey,
		"reason", msg.Reason,
	)
	return nil
}

// Run workers 개 고루틴으로 큐를 소비. ctx 가 끝나면 모두 멈춘 뒤 반환
func (p *Processor) Run(ctx context.Context, src Source, workers int) {
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			p.loop(ctx, src, workerID)
		}(i)
	}
	wg.Wait()
}

func (p *Processor) loop(ctx context.Context, src Source, workerID int) {
	for {
		select {
		case <-ctx.Done():
			slog.Info("worker shutting down", "worker", workerID)
			return
		default:
		}

		msg, err := src.Pop(ctx, popTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			slog.Error("pop cleanup job failed", "worker", workerID, "error", err)
			continue
		}
		if msg == nil {
			continue // 타임아웃
		}

		if err := p.Process(ctx, msg); err != nil {
			slog.Error("cleanup job failed", "worker", workerID, "image_id", msg.ImageID, "error", err)
		}
	}
}
