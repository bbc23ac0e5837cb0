package storage

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"github.com/Korea-Traffic-Solution/backend/pkg/logger"
)

// CloudStorageClient exchanges stored image references for short-lived V4 GET URLs.
type CloudStorageClient struct {
	client *storage.Client
}

func NewCloudStorageClient(ctx context.Context, opts ...option.ClientOption) (*CloudStorageClient, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %v", err)
	}

	return &CloudStorageClient{
		client: client,
	}, nil
}

// Sign returns a signed GET URL valid for ttl. References that do not point at
// a GCS or Firebase Storage object are returned unchanged.
func (c *CloudStorageClient) Sign(ctx context.Context, raw string, ttl time.Duration) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return raw, nil
	}

	obj, ok := ParseObjectPath(raw)
	if !ok {
		logger.Debug("Image reference not recognised, leaving unsigned: %s", raw)
		return raw, nil
	}

	if ttl < time.Minute {
		ttl = time.Minute
	}

	opts := &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(ttl),
	}

	signed, err := c.client.Bucket(obj.Bucket).SignedURL(obj.Object, opts)
	if err != nil {
		return "", fmt.Errorf("failed to generate signed URL: %v", err)
	}

	return signed, nil
}

func (c *CloudStorageClient) Close() error {
	return c.client.Close()
}

// ObjectPath identifies one object in a bucket.
type ObjectPath struct {
	Bucket string
	Object string
}

// ParseObjectPath understands gs:// references, storage.googleapis.com URLs and
// the two Firebase Storage hosts.
func ParseObjectPath(raw string) (ObjectPath, bool) {
	if strings.HasPrefix(raw, "gs://") {
		return splitBucketObject(strings.TrimPrefix(raw, "gs://"))
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return ObjectPath{}, false
	}

	path := u.EscapedPath()
	switch {
	case u.Host == "storage.googleapis.com":
		p, ok := splitBucketObject(strings.TrimPrefix(path, "/"))
		if !ok {
			return ObjectPath{}, false
		}
		if object, err := url.PathUnescape(p.Object); err == nil {
			p.Object = object
		}
		return p, true
	case u.Host == "firebasestorage.googleapis.com":
		return parseFirebaseAPIPath(path)
	case strings.HasSuffix(u.Host, "firebasestorage.app"):
		if p, ok := parseFirebaseAPIPath(path); ok {
			return p, true
		}
		p, ok := splitBucketObject(strings.TrimPrefix(path, "/"))
		if !ok || strings.TrimSpace(p.Bucket) == "" || strings.TrimSpace(p.Object) == "" {
			return ObjectPath{}, false
		}
		if object, err := url.PathUnescape(p.Object); err == nil {
			p.Object = object
		}
		return p, true
	}

	return ObjectPath{}, false
}

// parseFirebaseAPIPath handles /v0/b/{bucket}/o/{url-encoded object}.
func parseFirebaseAPIPath(path string) (ObjectPath, bool) {
	p := strings.TrimPrefix(path, "/v0")
	parts := strings.Split(p, "/")
	if len(parts) < 5 || parts[1] != "b" || parts[3] != "o" {
		return ObjectPath{}, false
	}

	encoded := p[strings.Index(p, "/o/")+len("/o/"):]
	object, err := url.QueryUnescape(encoded)
	if err != nil {
		return ObjectPath{}, false
	}

	return ObjectPath{Bucket: parts[2], Object: object}, true
}

func splitBucketObject(s string) (ObjectPath, bool) {
	idx := strings.Index(s, "/")
	if idx < 0 {
		return ObjectPath{}, false
	}
	return ObjectPath{Bucket: s[:idx], Object: s[idx+1:]}, true
}
