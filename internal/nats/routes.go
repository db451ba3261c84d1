package nats

import (
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers"
	"github.com/wickedfiles/wickedfiles/internal/api/handlers/user"
	"github.com/wickedfiles/wickedfiles/internal/services"
)

func Routes(clamAvURL string) map[string]nats.MsgHandler {
	return map[string]nats.MsgHandler{

		// User events
		"users.deleted": user.HandleUserDeleted,

		// Object events
		"objects.uploaded": handlers.HandleObjectUploaded(clamAvURL),
	}
}

// SubscribeAll registers one durable JetStream consumer per subject.
func SubscribeAll(routes map[string]nats.MsgHandler) error {
	for subject, handler := range routes {
		durable := "wickedfiles-" + strings.ReplaceAll(subject, ".", "-")
		if _, err := services.SubscribeEvent(subject, durable, handler); err != nil {
			return err
		}
	}
	return nil
}
