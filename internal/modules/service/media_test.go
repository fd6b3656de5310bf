package service

import (
	"context"
	"mime/multipart"
	"testing"
	"time"

	"github.com/slyt3/fyyur/internal/infra/blob"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMediaService_Upload(t *testing.T) {
	fh := &multipart.FileHeader{Filename: "hop.png"}
	store := &MockImageStore{}
	store.On("UploadImage", mock.Anything, "images", fh).
		Return(&blob.UploadedMeta{Key: "images/2026/05/01/abc.png"}, nil)

	link, err := NewMediaService(store, "/images/", time.Minute).Upload(context.Background(), fh)
	require.NoError(t, err)
	assert.Equal(t, "/media/images/2026/05/01/abc.png", link)
	store.AssertExpectations(t)
}

func TestMediaService_URL(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		setup   func(*MockImageStore)
		want    string
		wantErr error
	}{
		{
			name: "presigned",
			key:  "/images/2026/05/01/abc.png",
			setup: func(s *MockImageStore) {
				s.On("PresignGet", mock.Anything, "images/2026/05/01/abc.png", time.Minute).
					Return("https://bucket.example/abc.png?sig", nil)
			},
			want: "https://bucket.example/abc.png?sig",
		},
		{
			name:    "outside prefix",
			key:     "secrets/db.dump",
			setup:   func(*MockImageStore) {},
			wantErr: ErrNotFound,
		},
		{
			name:    "empty key",
			key:     "/",
			setup:   func(*MockImageStore) {},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockImageStore{}
			tt.setup(store)

			got, err := NewMediaService(store, "images", time.Minute).URL(context.Background(), tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			store.AssertExpectations(t)
		})
	}
}

func TestMediaService_Disabled(t *testing.T) {
	s := NewMediaService(nil, "images", time.Minute)
	assert.False(t, s.Enabled())

	_, err := s.Upload(context.Background(), &multipart.FileHeader{})
	assert.ErrorIs(t, err, ErrMediaDisabled)

	_, err = s.URL(context.Background(), "images/x.png")
	assert.ErrorIs(t, err, ErrMediaDisabled)
}
