package blobstore

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"
)

var ErrTicketInvalid = errors.New("upload ticket is invalid or expired")

// DefaultTicketTTL is how long an issued direct-upload ticket stays valid.
const DefaultTicketTTL = 15 * time.Minute

// Ticket authorizes a single direct upload. The admin client requests one
// when a file exceeds the normal multipart limit, then PUTs the bytes
// straight to the redeem endpoint within the TTL.
type Ticket struct {
	Token       string    `json:"token"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Preset      string    `json:"preset,omitempty"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// TicketStore issues and redeems single-use upload tickets.
type TicketStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	tickets map[string]*Ticket
	now     func() time.Time
}

// NewTicketStore returns a store issuing tickets valid for ttl. A zero ttl
// falls back to DefaultTicketTTL.
func NewTicketStore(ttl time.Duration) *TicketStore {
	if ttl <= 0 {
		ttl = DefaultTicketTTL
	}
	return &TicketStore{
		ttl:     ttl,
		tickets: make(map[string]*Ticket),
		now:     time.Now,
	}
}

// Issue creates a ticket for the given file name, content type, and preset.
// The content type is validated up front so the client fails fast.
func (ts *TicketStore) Issue(fileName, contentType, preset string) (*Ticket, error) {
	if fileName == "" {
		return nil, ErrMissingFileName
	}
	if err := ValidateContentType(contentType); err != nil {
		return nil, err
	}

	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}

	t := &Ticket{
		Token:       hex.EncodeToString(buf),
		FileName:    fileName,
		ContentType: contentType,
		Preset:      preset,
		ExpiresAt:   ts.now().Add(ts.ttl),
	}

	ts.mu.Lock()
	ts.sweepLocked()
	ts.tickets[t.Token] = t
	ts.mu.Unlock()

	return t, nil
}

// Redeem consumes a ticket. A ticket redeems at most once; expired or
// unknown tokens return ErrTicketInvalid.
func (ts *TicketStore) Redeem(token string) (*Ticket, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	t, ok := ts.tickets[token]
	if !ok {
		return nil, ErrTicketInvalid
	}
	delete(ts.tickets, token)

	if ts.now().After(t.ExpiresAt) {
		return nil, ErrTicketInvalid
	}
	return t, nil
}

// sweepLocked drops expired tickets. Caller holds ts.mu.
func (ts *TicketStore) sweepLocked() {
	now := ts.now()
	for token, t := range ts.tickets {
		if now.After(t.ExpiresAt) {
			delete(ts.tickets, token)
		}
	}
}
