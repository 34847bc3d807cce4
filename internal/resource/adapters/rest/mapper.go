package rest

import "github.com/commercekit/commerce-api/internal/resource/domain"

// entryPayload is the HTTP representation of one stored document.
type entryPayload struct {
	ID   string          `json:"id"`
	Data domain.Document `json:"data"`
}

func fromEntry(entry domain.Entry) entryPayload {
	return entryPayload{ID: entry.ID, Data: entry.Data}
}

// fromEntries always returns a non-nil slice so an empty collection encodes
// as [] rather than null.
func fromEntries(entries []domain.Entry) []entryPayload {
	payloads := make([]entryPayload, 0, len(entries))
	for _, entry := range entries {
		payloads = append(payloads, fromEntry(entry))
	}
	return payloads
}
