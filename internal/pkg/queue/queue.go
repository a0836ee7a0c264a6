package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type Queue struct {
	client    *redis.Client
	queueName string
}

// ImageCleanupMessage 저장소에서 지울 오브젝트 한 건
type ImageCleanupMessage struct {
	ImageID    int64  `json:"image_id"`
	ObjectKey  string `json:"object_key"`
	Reason     string `json:"reason,omitempty"` // board_deleted, image_removed, orphan
	EnqueuedAt int64  `json:"enqueued_at"`
}

func NewQueue(client *redis.Client, queueName string) *Queue {
	return &Queue{
		client:    client,
		queueName: queueName,
	}
}

// Push 메시지를 큐에 넣는다. 여러 건이면 LPUSH 한 번.
func (q *Queue) Push(ctx context.Context, msgs ...*ImageCleanupMessage) error {
	if len(msgs) == 0 {
		return nil
	}

	values := make([]interface{}, 0, len(msgs))
	for _, msg := range msgs {
		if msg.EnqueuedAt == 0 {
			msg.EnqueuedAt = time.Now().Unix()
		}
		data, err := json.Marshal(msg)
		if err != nil {
			return fmt.Errorf("failed to marshal message: %w", err)
		}
		values = append(values, data)
	}

	return q.client.LPush(ctx, q.queueName, values...).Err()
}

// Pop 블로킹으로 한 건 꺼낸다. 타임아웃이면 nil, nil
func (q *Queue) Pop(ctx context.Context, timeout time.Duration) (*ImageCleanupMessage, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to pop from queue: %w", err)
	}

	if len(result) < 2 {
		return nil, nil
	}

	var msg ImageCleanupMessage
	if err := json.Unmarshal([]byte(result[1]), &msg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message: %w", err)
	}

	return &msg, nil
}

func (q *Queue) Length(ctx context.Context) (int64, error) {
	return q.client.LLen(ctx, q.queueName).Result()
}
