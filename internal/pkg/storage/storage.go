// Package storage 이미지 오브젝트 저장소 (oss, s3 호환, memory)
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/qs3c/fridge_chef_server/config"
)

// Storage 오브젝트 업로드/삭제와 key <-> URL 변환
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
	Key(url string) string
}

// New storage.driver 에 맞는 구현 생성
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Driver {
	case "oss", "":
		return NewOSS(cfg)
	case "s3":
		return NewS3(context.Background(), cfg)
	case "memory":
		return NewMemory(cfg.CDNDomain), nil
	default:
		return nil, fmt.Errorf("unsupported storage driver: %s", cfg.Driver)
	}
}

// ObjectKey 업로드 경로 + 파일명
func ObjectKey(uploadPath, name string) string {
	uploadPath = strings.Trim(uploadPath, "/")
	if uploadPath == "" {
		return name
	}
	return path.Join(uploadPath, name)
}

// keyFromURL CDN 접두사를 먼저 보고, 아니면 scheme://host/ 이후를 key 로 본다
func keyFromURL(url, cdnDomain string) string {
	if cdnDomain != "" {
		prefix := fmt.Sprintf("https://%s/", cdnDomain)
		if strings.HasPrefix(url, prefix) {
			return url[len(prefix):]
		}
	}

	parts := strings.Split(url, "/")
	if len(parts) >= 4 {
		return strings.Join(parts[3:], "/")
	}
	return path.Base(url)
}
