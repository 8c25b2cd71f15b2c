package realtime

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultPromptDelay is how long a session runs before push permission is
// asked for.
const DefaultPromptDelay = 2 * time.Second

// PromptState tracks the push permission request of a session.
type PromptState int

const (
	NotRequested PromptState = iota
	Requested
	Granted
	Denied
)

func (s PromptState) String() string {
	switch s {
	case NotRequested:
		return "not_requested"
	case Requested:
		return "requested"
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	}
	return "unknown"
}

// Grant is the browser subscription handed out when permission is given.
type Grant struct {
	Endpoint string
	P256dh   string
	Auth     string
}

// Permission asks the user for push permission. ok is false on refusal.
type Permission interface {
	Request(ctx context.Context) (g Grant, ok bool, err error)
}

// Registrar stores the granted subscription for the signed-in user.
type Registrar interface {
	RegisterPush(ctx context.Context, endpoint, p256dh, auth string) error
}

// PushPrompt asks for push permission at most once per session.
type PushPrompt struct {
	perm  Permission
	reg   Registrar
	delay time.Duration
	log   zerolog.Logger

	mu    sync.Mutex
	state PromptState
}

// NewPushPrompt returns a prompt that fires after delay, or after
// DefaultPromptDelay when delay is not positive.
func NewPushPrompt(perm Permission, reg Registrar, delay time.Duration, log zerolog.Logger) *PushPrompt {
	if delay <= 0 {
		delay = DefaultPromptDelay
	}
	return &PushPrompt{perm: perm, reg: reg, delay: delay, log: log}
}

// State returns the current prompt state.
func (p *PushPrompt) State() PromptState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Run waits for the delay, asks once and registers the subscription on a
// grant. Later calls return immediately.
func (p *PushPrompt) Run(ctx context.Context) error {
	if p.State() != NotRequested {
		return nil
	}

	timer := time.NewTimer(p.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
	}

	p.mu.Lock()
	if p.state != NotRequested {
		p.mu.Unlock()
		return nil
	}
	p.state = Requested
	p.mu.Unlock()

	g, ok, err := p.perm.Request(ctx)
	if err != nil {
		return fmt.Errorf("request push permission: %w", err)
	}
	if !ok {
		p.set(Denied)
		p.log.Info().Msg("push permission denied")
		return nil
	}

	if err := p.reg.RegisterPush(ctx, g.Endpoint, g.P256dh, g.Auth); err != nil {
		return fmt.Errorf("register push: %w", err)
	}
	p.set(Granted)
	p.log.Info().Msg("push subscription registered")
	return nil
}

func (p *PushPrompt) set(s PromptState) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}
