package service

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"time"

	"github.com/slyt3/fyyur/internal/infra/blob"
)

// MediaPathPrefix is the public path under which uploaded images are served.
const MediaPathPrefix = "/media/"

var ErrMediaDisabled = errors.New("image storage is not configured")

type ImageStore interface {
	UploadImage(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*blob.UploadedMeta, error)
	PresignGet(ctx context.Context, key string, expire time.Duration) (string, error)
}

type MediaService interface {
	Enabled() bool
	// Upload stores the image and returns the link to save as image_link.
	Upload(ctx context.Context, fh *multipart.FileHeader) (string, error)
	URL(ctx context.Context, key string) (string, error)
}

type mediaService struct {
	store     ImageStore
	keyPrefix string
	expire    time.Duration
}

// NewMediaService accepts a nil store; every call then reports ErrMediaDisabled.
func NewMediaService(store ImageStore, keyPrefix string, expire time.Duration) MediaService {
	return &mediaService{store: store, keyPrefix: strings.Trim(keyPrefix, "/"), expire: expire}
}

func (s *mediaService) Enabled() bool { return s.store != nil }

func (s *mediaService) Upload(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if s.store == nil {
		return "", ErrMediaDisabled
	}
	meta, err := s.store.UploadImage(ctx, s.keyPrefix, fh)
	if err != nil {
		return "", err
	}
	return MediaPathPrefix + meta.Key, nil
}

func (s *mediaService) URL(ctx context.Context, key string) (string, error) {
	if s.store == nil {
		return "", ErrMediaDisabled
	}
	key = strings.TrimPrefix(key, "/")
	if key == "" || !strings.HasPrefix(key, s.keyPrefix+"/") {
		return "", ErrNotFound
	}
	return s.store.PresignGet(ctx, key, s.expire)
}
