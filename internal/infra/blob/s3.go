package blob

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsCfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/slyt3/fyyur/internal/config"
)

var ErrNotImage = errors.New("uploaded file is not an image")

type S3Deps struct {
	Client    *s3.Client
	Uploader  *manager.Uploader
	Presigner *s3.PresignClient
	Bucket    string
	SSE       *s3types.ServerSideEncryption
}

// NewS3 returns nil, nil when no bucket is configured; uploads are then disabled.
func NewS3(ctx context.Context, cfg *config.Config) (*S3Deps, error) {
	if cfg.S3.Bucket == "" {
		return nil, nil
	}

	loadOpts := []func(*awsCfg.LoadOptions) error{
		awsCfg.WithRegion(cfg.S3.Region),
	}
	if cfg.S3.AccessKey != "" && cfg.S3.SecretKey != "" {
		loadOpts = append(loadOpts, awsCfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3.AccessKey, cfg.S3.SecretKey, ""),
		))
	}

	acfg, err := awsCfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	s3Opts := func(o *s3.Options) {
		if ep := strings.TrimSpace(cfg.S3.Endpoint); ep != "" {
			if !strings.HasPrefix(ep, "http://") && !strings.HasPrefix(ep, "https://") {
				ep = "https://" + ep
			}
			if u, uerr := url.Parse(ep); uerr == nil {
				o.BaseEndpoint = aws.String(u.String())
			}
		}
		o.UsePathStyle = cfg.S3.UsePathStyle
	}

	client := s3.NewFromConfig(acfg, s3Opts)

	var sse *s3types.ServerSideEncryption
	if cfg.S3.SSE != "" {
		v := s3types.ServerSideEncryption(cfg.S3.SSE)
		sse = &v
	}

	return &S3Deps{
		Client:    client,
		Uploader:  manager.NewUploader(client),
		Presigner: s3.NewPresignClient(client),
		Bucket:    cfg.S3.Bucket,
		SSE:       sse,
	}, nil
}

// PresignGet returns a time-limited download URL for key.
func (s *S3Deps) PresignGet(ctx context.Context, key string, expire time.Duration) (string, error) {
	if key == "" {
		return "", errors.New("key is empty")
	}
	ps, err := s.Presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &s.Bucket,
		Key:    &key,
	}, func(po *s3.PresignOptions) {
		po.Expires = expire
	})
	if err != nil {
		return "", err
	}
	return ps.URL, nil
}

type UploadedMeta struct {
	Bucket string
	Key    string
	ETag   string
	SHA256 string
	MIME   string
	SizeB  int64
}

// UploadImage stores an image form file under keyPrefix/yyyy/mm/dd/<sha256><ext>,
// so the same picture uploaded twice maps to the same key.
func (s *S3Deps) UploadImage(ctx context.Context, keyPrefix string, fh *multipart.FileHeader) (*UploadedMeta, error) {
	mime := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(mime, "image/") {
		return nil, ErrNotImage
	}

	sumHex, err := sha256OfFileHeader(fh)
	if err != nil {
		return nil, fmt.Errorf("calc sha256: %w", err)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	datePrefix := time.Now().UTC().Format("2006/01/02")
	key := fmt.Sprintf("%s/%s/%s%s", keyPrefix, datePrefix, sumHex, ext)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.Bucket),
		Key:         aws.String(key),
		Body:        file,
		ContentType: aws.String(mime),
		Metadata: map[string]string{
			"sha256": sumHex,
			"name":   fh.Filename,
		},
	}
	if s.SSE != nil {
		input.ServerSideEncryption = *s.SSE
	}

	out, err := s.Uploader.Upload(ctx, input)
	if err != nil {
		return nil, err
	}

	meta := &UploadedMeta{
		Bucket: s.Bucket,
		Key:    key,
		SHA256: sumHex,
		MIME:   mime,
		SizeB:  fh.Size,
	}
	if out.ETag != nil {
		meta.ETag = *out.ETag
	}
	return meta, nil
}

func sha256OfFileHeader(fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
