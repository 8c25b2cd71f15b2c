package data

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/PaulBabatuyi/listingChat-gRPC/internal/normalize"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// MemoryStore is an in-process implementation of every store in this
// package. It backs `api serve --store memory` and the service tests.
type MemoryStore struct {
	mu       sync.RWMutex
	messages []*Message
	listings map[string]*Listing
	profiles map[string]*Profile
	ratings  []Rating
	push     map[string]PushSubscription

	// Now stamps created_at on appended messages. Tests may replace it.
	Now func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		listings: make(map[string]*Listing),
		profiles: make(map[string]*Profile),
		push:     make(map[string]PushSubscription),
		Now:      time.Now,
	}
}

// Append validates and stores a new message.
func (s *MemoryStore) Append(ctx context.Context, listingID, senderID, recipientID, content string) (*Message, error) {
	msg, err := NewMessage(listingID, senderID, recipientID, content)
	if err != nil {
		return nil, err
	}
	msg.ID = bson.NewObjectID()
	msg.CreatedAt = s.Now().UTC().Truncate(time.Millisecond)

	s.mu.Lock()
	s.messages = append(s.messages, msg)
	s.mu.Unlock()

	cp := *msg
	return &cp, nil
}

// Insert stores m as-is. It exists for seeding.
func (s *MemoryStore) Insert(m Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, &m)
}

func (s *MemoryStore) collect(keep func(*Message) bool, newestFirst bool) []*Message {
	s.mu.RLock()
	var out []*Message
	for _, m := range s.messages {
		if keep(m) {
			cp := *m
			out = append(out, &cp)
		}
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if newestFirst {
			return out[i].After(out[j])
		}
		return out[j].After(out[i])
	})
	return out
}

// ListThread returns the conversation between userA and userB, oldest first.
func (s *MemoryStore) ListThread(ctx context.Context, listingID, userA, userB string) ([]*Message, error) {
	listingID, userA, userB = normalize.ID(listingID), normalize.ID(userA), normalize.ID(userB)
	return s.collect(func(m *Message) bool { return m.Involves(listingID, userA, userB) }, false), nil
}

// ListAllForUser returns every message the user sent or received, newest first.
func (s *MemoryStore) ListAllForUser(ctx context.Context, userID string) ([]*Message, error) {
	userID = normalize.ID(userID)
	return s.collect(func(m *Message) bool { return m.SenderID == userID || m.RecipientID == userID }, true), nil
}

// MarkRead flips unread messages fromUser sent toUser on listingID under a
// single lock, so the whole batch transitions at once.
func (s *MemoryStore) MarkRead(ctx context.Context, listingID, fromUser, toUser string) (int64, error) {
	listingID, fromUser, toUser = normalize.ID(listingID), normalize.ID(fromUser), normalize.ID(toUser)

	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, m := range s.messages {
		if m.ListingID == listingID && m.SenderID == fromUser && m.RecipientID == toUser && !m.Read {
			m.Read = true
			n++
		}
	}
	return n, nil
}

// MarkMessageRead flips one message addressed to recipientID.
func (s *MemoryStore) MarkMessageRead(ctx context.Context, id bson.ObjectID, recipientID string) (int64, error) {
	recipientID = normalize.ID(recipientID)

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.messages {
		if m.ID == id && m.RecipientID == recipientID && !m.Read {
			m.Read = true
			return 1, nil
		}
	}
	return 0, nil
}

// CountUnread counts unread messages addressed to userID.
func (s *MemoryStore) CountUnread(ctx context.Context, userID string) (int64, error) {
	userID = normalize.ID(userID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, m := range s.messages {
		if m.RecipientID == userID && !m.Read {
			n++
		}
	}
	return n, nil
}

// PutListing stores or replaces a listing.
func (s *MemoryStore) PutListing(l Listing) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings[l.ID] = &l
}

// PutProfile stores or replaces a profile.
func (s *MemoryStore) PutProfile(p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = &p
}

// PutRating stores a rating.
func (s *MemoryStore) PutRating(r Rating) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ratings = append(s.ratings, r)
}

// GetListing finds a listing by id.
func (s *MemoryStore) GetListing(ctx context.Context, id string) (*Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	l, ok := s.listings[normalize.ID(id)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *l
	return &cp, nil
}

// GetProfile finds a profile by user id.
func (s *MemoryStore) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[normalize.ID(userID)]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryStore) listingsWhere(keep func(*Listing) bool) []*Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []*Listing
	for _, l := range s.listings {
		if l.Status == StatusSold && keep(l) {
			cp := *l
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SoldBy returns the sold listings whose seller is userID.
func (s *MemoryStore) SoldBy(ctx context.Context, userID string) ([]*Listing, error) {
	userID = normalize.ID(userID)
	return s.listingsWhere(func(l *Listing) bool { return l.UserID == userID }), nil
}

// PurchasedBy returns the sold listings whose buyer is userID.
func (s *MemoryStore) PurchasedBy(ctx context.Context, userID string) ([]*Listing, error) {
	userID = normalize.ID(userID)
	return s.listingsWhere(func(l *Listing) bool { return l.SoldTo == userID }), nil
}

// HasRated reports whether raterID already rated ratedID for listingID.
func (s *MemoryStore) HasRated(ctx context.Context, listingID, raterID, ratedID string) (bool, error) {
	listingID, raterID, ratedID = normalize.ID(listingID), normalize.ID(raterID), normalize.ID(ratedID)

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.ratings {
		if r.ListingID == listingID && r.RaterUserID == raterID && r.RatedUserID == ratedID {
			return true, nil
		}
	}
	return false, nil
}

// UpsertSubscription replaces the user's push subscription.
func (s *MemoryStore) UpsertSubscription(ctx context.Context, sub PushSubscription) error {
	sub.UserID = normalize.ID(sub.UserID)
	if sub.UserID == "" || sub.Endpoint == "" {
		return fmt.Errorf("%w: user id and endpoint are required", ErrValidation)
	}
	sub.UpdatedAt = s.Now().UTC()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.push[sub.UserID] = sub
	return nil
}

// GetSubscription returns the subscription of userID or ErrNotFound.
func (s *MemoryStore) GetSubscription(ctx context.Context, userID string) (*PushSubscription, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sub, ok := s.push[normalize.ID(userID)]
	if !ok {
		return nil, ErrNotFound
	}
	return &sub, nil
}
