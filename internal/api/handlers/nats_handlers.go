package handlers

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers/util"
)

// ObjectUploadedEvent is published after every object stored through the
// upload endpoint.
type ObjectUploadedEvent struct {
	AccountID   string `json:"account_id"`
	Bucket      string `json:"bucket"`
	Key         string `json:"key"`
	Size        int64  `json:"size"`
	UserID      string `json:"user_id"`
	ContentType string `json:"content_type"`
}

// ShareAccessedEvent mirrors the audit row for downstream consumers.
type ShareAccessedEvent struct {
	ShareID    string `json:"share_id"`
	UserID     string `json:"user_id"`
	Bucket     string `json:"bucket"`
	Path       string `json:"path"`
	IsDownload bool   `json:"is_download"`
	AccessedAt string `json:"accessed_at"`
}

// HandleObjectUploaded scans freshly stored objects with ClamAV.
func HandleObjectUploaded(clamAvURL string) nats.MsgHandler {
	return func(msg *nats.Msg) {
		log.Println("[NATS] Received objects.uploaded")

		var payload ObjectUploadedEvent
		if err := json.Unmarshal(msg.Data, &payload); err != nil {
			log.Printf("[NATS] objects.uploaded: invalid payload: %v", err)
			_ = msg.Nak()
			return
		}

		go util.ScanObject(payload.AccountID, payload.Bucket, payload.Key, clamAvURL)
		_ = msg.Ack()
	}
}
