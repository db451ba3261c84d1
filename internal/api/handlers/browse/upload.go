package browse

import (
	"log"
	"mime/multipart"
	"net/http"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/models"
	"github.com/wickedfiles/wickedfiles/internal/services"
)

// UploadResult is the per-file result object returned to the client.
type UploadResult struct {
	Success bool   `json:"success"`
	Key     string `json:"key,omitempty"`
	Error   string `json:"error,omitempty"`
}

// UploadObjects supports both single and multiple file uploads into one
// bucket/prefix.
func UploadObjects(c *gin.Context) {
	account, ok := accountFromRequest(c)
	if !ok {
		return
	}

	bucket := c.PostForm("bucket")
	if bucket == "" {
		bucket = account.DefaultBucket
	}
	if bucket == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bucket is required"})
		return
	}
	prefix := c.PostForm("prefix")

	form, err := c.MultipartForm()
	if err != nil {
		// fallback: maybe a single file
		if f, ferr := c.FormFile("file"); ferr == nil && f != nil {
			form = &multipart.Form{
				File: map[string][]*multipart.FileHeader{
					"file": {f},
				},
			}
		} else {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse multipart form: " + err.Error()})
			return
		}
	}

	var files []*multipart.FileHeader
	if fs, found := form.File["files"]; found && len(fs) > 0 {
		files = fs
	}
	if len(files) == 0 {
		if f, found := form.File["file"]; found && len(f) > 0 {
			files = f
		}
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files provided"})
		return
	}

	// Validate per-file size
	for _, fh := range files {
		if fh.Size > (200 << 20) { // 200 MB
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "file too large: " + fh.Filename,
			})
			return
		}
	}

	results := make([]UploadResult, 0, len(files))
	for _, fh := range files {
		key, err := storeSingleObject(c, account, bucket, prefix, fh)
		if err != nil {
			results = append(results, UploadResult{Success: false, Error: err.Error()})
		} else {
			results = append(results, UploadResult{Success: true, Key: key})
		}
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

func storeSingleObject(c *gin.Context, account models.S3Account, bucket, prefix string, fh *multipart.FileHeader) (string, error) {
	file, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	key := path.Join(prefix, fh.Filename)
	key = strings.TrimPrefix(key, "/")

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = services.GetContentType(strings.ToLower(filepath.Ext(fh.Filename)))
	}

	if err := services.GetGateway().Upload(c.Request.Context(), account, bucket, key, file, fh.Size, contentType); err != nil {
		return "", err
	}

	userID, _ := handlers.UserIDFromContext(c)
	event := handlers.ObjectUploadedEvent{
		AccountID:   account.ID,
		Bucket:      bucket,
		Key:         key,
		Size:        fh.Size,
		UserID:      userID,
		ContentType: contentType,
	}
	if err := services.PublishEvent("objects.uploaded", event); err != nil {
		log.Printf("warning: failed to publish objects.uploaded event: %v", err)
	}

	return key, nil
}
