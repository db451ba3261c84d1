package user

import (
	"encoding/json"
	"log"

	"github.com/nats-io/nats.go"
	"github.com/wickedfiles/wickedfiles/internal/services"
	"github.com/wickedfiles/wickedfiles/internal/services/command"
	"github.com/wickedfiles/wickedfiles/internal/services/query"
)

type UserDeletedPayload struct {
	UserID string `json:"user_id"`
}

// HandleUserDeleted cleans up everything a deleted user owned: shares
// (access logs cascade with them), stored accounts, and settings.
func HandleUserDeleted(msg *nats.Msg) {
	var payload UserDeletedPayload
	if err := json.Unmarshal(msg.Data, &payload); err != nil {
		log.Printf("[NATS] users.deleted: invalid JSON: %v", err)
		nak(msg)
		return
	}

	userID := payload.UserID
	if userID == "" {
		log.Printf("[NATS] users.deleted: missing user_id")
		nak(msg)
		return
	}

	log.Printf("[NATS] Processing users.deleted for user_id: %s", userID)

	sharesDeleted := command.DeleteAllSharesForUser(userID)
	log.Printf("[NATS] Deleted %d share records", sharesDeleted)

	// Drop cached S3 clients before the credential rows go away.
	accounts, err := query.GetUserAccounts(userID)
	if err != nil {
		log.Printf("[NATS] Failed to list accounts for user %s: %v", userID, err)
		nak(msg)
		return
	}
	if gateway := services.GetGateway(); gateway != nil {
		for _, a := range accounts {
			gateway.Invalidate(a.ID)
		}
	}

	accountsDeleted := command.DeleteAllAccountsForUser(userID)
	log.Printf("[NATS] Deleted %d account records", accountsDeleted)

	command.DeleteSettingsForUser(userID)

	log.Printf("[NATS] Successfully cleaned up user %s", userID)
	ack(msg)
}

// ack safely acknowledges the message
func ack(msg *nats.Msg) {
	if err := msg.Ack(); err != nil {
		log.Printf("[NATS] Failed to ack message: %v", err)
	}
}

// nak negatively acknowledges so the message is redelivered
func nak(msg *nats.Msg) {
	if err := msg.Nak(); err != nil {
		log.Printf("[NATS] Failed to nak message: %v", err)
	}
}
