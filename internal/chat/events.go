package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/data"
	"github.com/PaulBabatuyi/listingChat-gRPC/internal/pubsub"
)

// EventKind tells subscribers what changed.
type EventKind string

const (
	// EventAppended carries a newly stored message.
	EventAppended EventKind = "message.appended"
	// EventRead says ReaderID read Transitioned messages from CounterpartID
	// on ListingID.
	EventRead EventKind = "messages.read"
)

// Event is the payload published on thread and user topics.
type Event struct {
	Kind          EventKind     `json:"kind"`
	Message       *data.Message `json:"message,omitempty"`
	ListingID     string        `json:"listing_id,omitempty"`
	ReaderID      string        `json:"reader_id,omitempty"`
	CounterpartID string        `json:"counterpart_id,omitempty"`
	Transitioned  int64         `json:"transitioned,omitempty"`
}

// DecodeEvent parses a bus payload.
func DecodeEvent(payload []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(payload, &ev); err != nil {
		return Event{}, fmt.Errorf("decode event: %w", err)
	}
	if ev.Kind == EventAppended && ev.Message == nil {
		return Event{}, errors.New("decode event: append without message")
	}
	return ev, nil
}

// publish sends ev to each topic and returns the joined errors.
func publish(ctx context.Context, bus pubsub.Bus, ev Event, topics ...string) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode event: %w", err)
	}
	var errs []error
	for _, topic := range topics {
		if err := bus.Publish(ctx, topic, payload); err != nil {
			errs = append(errs, fmt.Errorf("publish %s: %w", topic, err))
		}
	}
	return errors.Join(errs...)
}
