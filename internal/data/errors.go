package data

import (
	"errors"
	"fmt"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"
)

var (
	// ErrValidation marks input rejected before anything was written.
	ErrValidation = errors.New("validation failed")
	// ErrPersistence marks a storage failure.
	ErrPersistence = errors.New("persistence failed")
	// ErrNotFound is returned when a looked-up document does not exist.
	ErrNotFound = errors.New("not found")
)

// NewMessage validates the fields of a message about to be appended and
// returns it normalized. It has no side effects.
func NewMessage(listingID, senderID, recipientID, content string) (*Message, error) {
	m := &Message{
		ListingID:   normalize.ID(listingID),
		SenderID:    normalize.ID(senderID),
		RecipientID: normalize.ID(recipientID),
		Content:     normalize.Content(content),
	}
	switch {
	case m.ListingID == "":
		return nil, fmt.Errorf("%w: listing id is required", ErrValidation)
	case m.SenderID == "" || m.RecipientID == "":
		return nil, fmt.Errorf("%w: sender and recipient are required", ErrValidation)
	case m.SenderID == m.RecipientID:
		return nil, fmt.Errorf("%w: cannot message yourself", ErrValidation)
	case m.Content == "":
		return nil, fmt.Errorf("%w: content must not be empty", ErrValidation)
	}
	return m, nil
}

func persistErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}
