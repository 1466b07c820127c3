package genai

import (
	"context"
	"sync"
	"time"
)

// TokenBucket is a simple request limiter refilled at a fixed rate
type TokenBucket struct {
	tokens chan struct{}
	stop   chan struct{}
	once   sync.Once
}

// NewTokenBucket returns a limiter allowing rpm requests per minute with the
// given burst. It returns nil when rpm is negative, meaning no limit.
func NewTokenBucket(rpm, burst int) *TokenBucket {
	if rpm < 0 {
		return nil
	}
	if rpm == 0 {
		rpm = 60
	}
	if burst <= 0 {
		burst = 5
	}

	bucket := &TokenBucket{
		tokens: make(chan struct{}, burst),
		stop:   make(chan struct{}),
	}
	for i := 0; i < burst; i++ {
		bucket.tokens <- struct{}{}
	}

	interval := time.Minute / time.Duration(rpm)
	if interval <= 0 {
		interval = time.Millisecond
	}

	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-bucket.stop:
				return
			case <-ticker.C:
				select {
				case bucket.tokens <- struct{}{}:
				default:
				}
			}
		}
	}()

	return bucket
}

// Wait blocks until a token is available or ctx is done
func (b *TokenBucket) Wait(ctx context.Context) error {
	if b == nil {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.tokens:
		return nil
	}
}

// Close stops the refill goroutine. It is safe to call more than once.
func (b *TokenBucket) Close() {
	if b == nil {
		return
	}
	b.once.Do(func() { close(b.stop) })
}
