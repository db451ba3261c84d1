package util

import (
	"context"
	"fmt"
	"log"
	"os"

	clamd "github.com/dutchcoders/go-clamd"
	"github.com/google/uuid"
	"github.com/wickedfiles/wickedfiles/internal/services"
	"github.com/wickedfiles/wickedfiles/internal/services/query"
)

// ScanObject pulls an uploaded object from the user's bucket, runs it
// through ClamAV, and removes it when infected.
func ScanObject(accountID, bucket, key, clamAvURL string) {
	account, ok := query.GetAccount(accountID)
	if !ok {
		log.Printf("Scan skipped: account %s not found", accountID)
		return
	}

	gateway := services.GetGateway()
	tempPath := fmt.Sprintf("/tmp/scan-%s", uuid.New().String())

	ctx := context.Background()
	if err := gateway.DownloadToFile(ctx, account, bucket, key, tempPath); err != nil {
		log.Println("Failed to download for scanning:", err)
		return
	}
	defer os.Remove(tempPath)

	// Connect to ClamAV
	c := clamd.NewClamd(clamAvURL)
	response, err := c.ScanFile(tempPath)
	if err != nil {
		log.Println("Scan failed:", err)
		return
	}

	status := "clean"
	for res := range response {
		if res.Status == clamd.RES_FOUND {
			log.Printf("Virus detected in %s/%s: %s", bucket, key, res.Description)
			status = "infected"

			// delete infected object
			if err := gateway.RemoveObject(ctx, account, bucket, key); err != nil {
				log.Println("Failed to delete infected object:", err)
				return
			}
		}
	}

	log.Printf("Scan finished for %s/%s: %s", bucket, key, status)
}
