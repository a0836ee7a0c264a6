package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Memory 로컬 개발과 테스트용 저장소
type Memory struct {
	mu        sync.RWMutex
	objects   map[string][]byte
	cdnDomain string
}

func NewMemory(cdnDomain string) *Memory {
	if cdnDomain == "" {
		cdnDomain = "localhost"
	}
	return &Memory{objects: make(map[string][]byte), cdnDomain: cdnDomain}
}

func (m *Memory) Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	m.objects[key] = data
	m.mu.Unlock()
	return m.URL(key), nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.objects, key)
	m.mu.Unlock()
	return nil
}

func (m *Memory) URL(key string) string {
	return fmt.Sprintf("https://%s/%s", m.cdnDomain, key)
}

func (m *Memory) Key(url string) string {
	return keyFromURL(url, m.cdnDomain)
}

// Has 테스트 확인용
func (m *Memory) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.objects[key]
	return ok
}

func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
