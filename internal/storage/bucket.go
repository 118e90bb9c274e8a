// Package storage wraps the object-storage client used for uploaded media
// (hero/about images, project screenshots, resumes). Objects are addressed by
// bucket + path; uploads overwrite any existing object at the same path, and
// public URLs are derived locally without a network call.
package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/ilyamorozov/portfolio-cms/internal/config"
)

// Buckets is the storage gateway handed to handlers. It holds one client and
// the configuration needed to derive public URLs.
type Buckets struct {
	client        *gcs.Client
	publicBaseURL string
	imageBucket   string
	fileBucket    string
}

// New builds the storage gateway. When cfg.StorageEmulatorHost is set the
// client talks to a local emulator without credentials, which is how tests
// and dev environments run.
func New(ctx context.Context, cfg config.Config) (*Buckets, error) {
	var opts []option.ClientOption
	if cfg.StorageEmulatorHost != "" {
		opts = append(opts,
			option.WithEndpoint(strings.TrimRight(cfg.StorageEmulatorHost, "/")+"/storage/v1/"),
			option.WithoutAuthentication(),
		)
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &Buckets{
		client:        client,
		publicBaseURL: strings.TrimRight(cfg.StoragePublicBaseURL, "/"),
		imageBucket:   cfg.ImageBucket,
		fileBucket:    cfg.FileBucket,
	}, nil
}

// ImageBucket returns the bucket name for site images.
func (b *Buckets) ImageBucket() string { return b.imageBucket }

// FileBucket returns the bucket name for documents such as resumes.
func (b *Buckets) FileBucket() string { return b.fileBucket }

// UploadFile writes the object at bucket/path, overwriting any existing
// object at that path (upsert semantics). The object's content type and a
// one-hour cache header are set on the way in.
func (b *Buckets) UploadFile(ctx context.Context, bucket, path string, r io.Reader, contentType string) error {
	w := b.client.Bucket(bucket).Object(path).NewWriter(ctx)
	if contentType != "" {
		w.ContentType = contentType
	}
	w.CacheControl = "public, max-age=3600"
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return fmt.Errorf("upload %s/%s: %w", bucket, path, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("upload %s/%s: %w", bucket, path, err)
	}
	return nil
}

// DeleteFile removes the object at bucket/path. Deleting an object that does
// not exist is reported as an error; callers on best-effort cleanup paths
// log and move on.
func (b *Buckets) DeleteFile(ctx context.Context, bucket, path string) error {
	if err := b.client.Bucket(bucket).Object(path).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s/%s: %w", bucket, path, err)
	}
	return nil
}

// PublicURL derives the public URL for bucket/path. Pure string work, no
// network call.
func (b *Buckets) PublicURL(bucket, path string) string {
	return PublicURL(b.publicBaseURL, bucket, path)
}

// PublicURL derives a public object URL from its parts. Exposed at package
// level so it can be computed without a constructed client.
func PublicURL(baseURL, bucket, path string) string {
	return strings.TrimRight(baseURL, "/") + "/" + bucket + "/" + strings.TrimLeft(path, "/")
}

// PathFromURL reverses PublicURL for objects under baseURL/bucket. It
// returns the bucket-relative path and true when the URL points into the
// given bucket, which is how mutation handlers decide whether a superseded
// file lives in our storage and should be cleaned up.
func PathFromURL(baseURL, bucket, url string) (string, bool) {
	prefix := strings.TrimRight(baseURL, "/") + "/" + bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return "", false
	}
	path := strings.TrimPrefix(url, prefix)
	if path == "" {
		return "", false
	}
	return path, true
}
