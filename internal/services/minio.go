package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/wickedfiles/wickedfiles/internal/models"
)

// S3Gateway hands out S3 clients built from each user's stored
// credentials. Clients are cached per account and rebuilt after the
// account record changes.
type S3Gateway struct {
	mu      sync.RWMutex
	clients map[string]*minio.Client
}

var gatewayInstance *S3Gateway

func InitializeGateway() {
	gatewayInstance = &S3Gateway{
		clients: make(map[string]*minio.Client),
	}
	log.Println("S3 gateway initialized")
}

func GetGateway() *S3Gateway {
	return gatewayInstance
}

// endpointFor resolves the host to talk to. An empty endpoint means AWS
// proper, addressed through the account's region.
func endpointFor(account models.S3Account) (host string, secure bool) {
	if account.Endpoint == "" {
		return fmt.Sprintf("s3.%s.amazonaws.com", account.Region), true
	}
	ep := account.Endpoint
	secure = !strings.HasPrefix(ep, "http://")
	ep = strings.TrimPrefix(ep, "https://")
	ep = strings.TrimPrefix(ep, "http://")
	return strings.TrimSuffix(ep, "/"), secure
}

func (g *S3Gateway) clientFor(account models.S3Account) (*minio.Client, error) {
	g.mu.RLock()
	client, ok := g.clients[account.ID]
	g.mu.RUnlock()
	if ok {
		return client, nil
	}

	host, secure := endpointFor(account)
	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(account.AccessKeyID, account.SecretAccessKey, ""),
		Secure: secure,
		Region: account.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %v", err)
	}

	g.mu.Lock()
	g.clients[account.ID] = client
	g.mu.Unlock()
	return client, nil
}

// Invalidate drops the cached client after credentials change or the
// account is deleted.
func (g *S3Gateway) Invalidate(accountID string) {
	g.mu.Lock()
	delete(g.clients, accountID)
	g.mu.Unlock()
}

// ValidateAccount probes the credentials with a ListBuckets call.
func (g *S3Gateway) ValidateAccount(ctx context.Context, account models.S3Account) error {
	host, secure := endpointFor(account)
	client, err := minio.New(host, &minio.Options{
		Creds:  credentials.NewStaticV4(account.AccessKeyID, account.SecretAccessKey, ""),
		Secure: secure,
		Region: account.Region,
	})
	if err != nil {
		return fmt.Errorf("failed to create S3 client: %v", err)
	}
	_, err = client.ListBuckets(ctx)
	return err
}

type BucketInfo struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (g *S3Gateway) ListBuckets(ctx context.Context, account models.S3Account) ([]BucketInfo, error) {
	client, err := g.clientFor(account)
	if err != nil {
		return nil, err
	}
	buckets, err := client.ListBuckets(ctx)
	if err != nil {
		return nil, err
	}
	infos := make([]BucketInfo, 0, len(buckets))
	for _, b := range buckets {
		infos = append(infos, BucketInfo{Name: b.Name, CreatedAt: b.CreationDate})
	}
	return infos, nil
}

// ObjectEntry is one row of a listing: either an object or, when listing
// non-recursively, a common prefix ("folder").
type ObjectEntry struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size"`
	LastModified time.Time `json:"last_modified,omitempty"`
	ETag         string    `json:"etag,omitempty"`
	IsPrefix     bool      `json:"is_prefix"`
}

func (g *S3Gateway) ListObjects(ctx context.Context, account models.S3Account, bucket, prefix string, recursive bool) ([]ObjectEntry, error) {
	client, err := g.clientFor(account)
	if err != nil {
		return nil, err
	}

	var entries []ObjectEntry
	for obj := range client.ListObjects(ctx, bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: recursive,
	}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		entries = append(entries, ObjectEntry{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
			ETag:         obj.ETag,
			IsPrefix:     strings.HasSuffix(obj.Key, "/") && obj.Size == 0,
		})
	}
	return entries, nil
}

func (g *S3Gateway) Upload(ctx context.Context, account models.S3Account, bucket, key string, reader io.Reader, size int64, contentType string) error {
	client, err := g.clientFor(account)
	if err != nil {
		return err
	}
	_, err = client.PutObject(ctx, bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (g *S3Gateway) DownloadToFile(ctx context.Context, account models.S3Account, bucket, key, localPath string) error {
	client, err := g.clientFor(account)
	if err != nil {
		return err
	}
	return client.FGetObject(ctx, bucket, key, localPath, minio.GetObjectOptions{})
}

func (g *S3Gateway) StatObject(ctx context.Context, account models.S3Account, bucket, key string) (minio.ObjectInfo, error) {
	client, err := g.clientFor(account)
	if err != nil {
		return minio.ObjectInfo{}, err
	}
	return client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
}

func (g *S3Gateway) RemoveObject(ctx context.Context, account models.S3Account, bucket, key string) error {
	client, err := g.clientFor(account)
	if err != nil {
		return err
	}
	return client.RemoveObject(ctx, bucket, key, minio.RemoveObjectOptions{})
}

func (g *S3Gateway) CopyObject(ctx context.Context, account models.S3Account, srcBucket, srcKey, dstBucket, dstKey string) error {
	client, err := g.clientFor(account)
	if err != nil {
		return err
	}
	_, err = client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: dstBucket, Object: dstKey},
		minio.CopySrcOptions{Bucket: srcBucket, Object: srcKey},
	)
	return err
}

// PresignedGet mints a time-limited GET URL. filename, when set, forces a
// download disposition on the response.
func (g *S3Gateway) PresignedGet(ctx context.Context, account models.S3Account, bucket, key string, expiry time.Duration, filename string) (string, error) {
	client, err := g.clientFor(account)
	if err != nil {
		return "", err
	}
	reqParams := make(url.Values)
	if filename != "" {
		reqParams.Set("response-content-disposition",
			fmt.Sprintf(`attachment; filename="%s"`, filename))
	}
	u, err := client.PresignedGetObject(ctx, bucket, key, expiry, reqParams)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

// DirectURL builds the unsigned URL for an object. Only works when the
// bucket or object is public; the client treats it as a fallback.
func DirectURL(account models.S3Account, bucket, key string) string {
	escaped := encodeKey(key)
	if account.Endpoint == "" {
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, account.Region, escaped)
	}
	host, secure := endpointFor(account)
	scheme := "https"
	if !secure {
		scheme = "http"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, host, bucket, escaped)
}

// encodeKey escapes each path segment but keeps the slashes.
func encodeKey(key string) string {
	parts := strings.Split(key, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

// GetContentType Helper function to determine the content type
func GetContentType(extension string) string {
	switch extension {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".pdf":
		return "application/pdf"
	case ".mp4":
		return "video/mp4"
	case ".mp3":
		return "audio/mpeg"
	case ".txt":
		return "text/plain"
	case ".zip":
		return "application/zip"
	default:
		return "application/octet-stream"
	}
}
