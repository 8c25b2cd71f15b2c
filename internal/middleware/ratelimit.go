package middleware

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// idleAfter is how long a bucket may go unused before the sweeper drops it.
const idleAfter = 10 * time.Minute

// LimiterStore keeps one token bucket per key. A background sweeper drops
// buckets that have been idle for idleAfter.
type LimiterStore struct {
	every rate.Limit
	burst int

	mu      sync.Mutex
	buckets map[string]*bucket

	stop     chan struct{}
	stopOnce sync.Once
}

type bucket struct {
	*rate.Limiter
	used time.Time
}

// NewLimiterStore allows perMinute events per key with the given burst and
// sweeps idle buckets every sweepEvery. perMinute <= 0 means 60.
func NewLimiterStore(perMinute, burst int, sweepEvery time.Duration) *LimiterStore {
	if perMinute <= 0 {
		perMinute = 60
	}
	if burst <= 0 {
		burst = 1
	}
	s := &LimiterStore{
		every:   rate.Every(time.Minute / time.Duration(perMinute)),
		burst:   burst,
		buckets: make(map[string]*bucket),
		stop:    make(chan struct{}),
	}
	go s.sweepLoop(sweepEvery)
	return s
}

func (s *LimiterStore) sweepLoop(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case now := <-t.C:
			s.sweep(now.Add(-idleAfter))
		case <-s.stop:
			return
		}
	}
}

// sweep drops buckets last used before cutoff and reports how many went.
func (s *LimiterStore) sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for k, b := range s.buckets {
		if b.used.Before(cutoff) {
			delete(s.buckets, k)
			n++
		}
	}
	return n
}

// Stop ends the sweeper. It is safe to call more than once.
func (s *LimiterStore) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Allow takes one token from key's bucket.
func (s *LimiterStore) Allow(key string) bool {
	now := time.Now()

	s.mu.Lock()
	b, ok := s.buckets[key]
	if !ok {
		b = &bucket{Limiter: rate.NewLimiter(s.every, s.burst)}
		s.buckets[key] = b
	}
	b.used = now
	s.mu.Unlock()

	return b.AllowN(now, 1)
}

// KeyFunc picks the bucket a request is charged to.
type KeyFunc func(ctx context.Context, req interface{}) string

// PeerKey charges requests to the remote address.
func PeerKey(ctx context.Context, _ interface{}) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return "peer:" + p.Addr.String()
	}
	return "unknown"
}

// RateLimitUnaryInterceptor limits the methods in limited and passes every
// other call straight through. Calls are charged to key, falling back to
// PeerKey when key is nil or returns "".
func RateLimitUnaryInterceptor(store *LimiterStore, limited map[string]bool, key KeyFunc) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if !limited[info.FullMethod] {
			return handler(ctx, req)
		}

		k := ""
		if key != nil {
			k = key(ctx, req)
		}
		if k == "" {
			k = PeerKey(ctx, req)
		}
		if !store.Allow(k) {
			return nil, status.Error(codes.ResourceExhausted, "too many requests, slow down")
		}
		return handler(ctx, req)
	}
}
