// Package connection provides verified, cached connections to SeqInstances.
package connection

import (
	"context"
	"time"

	"golang.org/x/sync/singleflight"
	"k8s.io/apimachinery/pkg/types"
	"k8s.io/apimachinery/pkg/util/cache"
	"k8s.io/utils/clock"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/dc-tec/seq-operator/internal/constants"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// ResolveFunc produces a verified connection to the SeqInstance identified by key.
type ResolveFunc func(ctx context.Context, key types.NamespacedName) (*seq.Client, error)

// Cache maps an instance to a verified connection for a fixed TTL.
// A published entry is never mutated; it is replaced on expiry or dropped by Invalidate.
type Cache struct {
	resolve        ResolveFunc
	ttl            time.Duration
	resolveTimeout time.Duration
	entries        *cache.Expiring
	group          singleflight.Group
}

// NewCache creates a cache backed by resolve. A zero ttl selects constants.ConnectionTTL
// and a nil clock the real clock.
func NewCache(resolve ResolveFunc, ttl time.Duration, clk clock.Clock) *Cache {
	if ttl <= 0 {
		ttl = constants.ConnectionTTL
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Cache{
		resolve:        resolve,
		ttl:            ttl,
		resolveTimeout: constants.ConnectionResolveTimeout,
		entries:        cache.NewExpiringWithClock(clk),
	}
}

// Connect returns the cached connection for key, resolving it synchronously on a miss.
// Concurrent misses for the same key share one resolution. Canceling ctx abandons the
// wait of this caller only; the shared resolution runs on until it completes or times out.
func (c *Cache) Connect(ctx context.Context, key types.NamespacedName) (*seq.Client, error) {
	if v, ok := c.entries.Get(key); ok {
		recordLookup(true)
		return v.(*seq.Client), nil
	}
	recordLookup(false)

	ch := c.group.DoChan(key.String(), func() (any, error) {
		resolveCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.resolveTimeout)
		defer cancel()

		conn, err := c.resolve(resolveCtx, key)
		if err != nil {
			return nil, err
		}
		c.entries.Set(key, conn, c.ttl)
		return conn, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			log.FromContext(ctx).V(1).Info("Joined in-flight connection resolution", "instance", key.String())
		}
		return res.Val.(*seq.Client), nil
	}
}

// Invalidate drops the cached connection for key so the next Connect re-resolves it.
func (c *Cache) Invalidate(key types.NamespacedName) {
	c.entries.Delete(key)
	c.group.Forget(key.String())
}

// Len returns the number of live entries.
func (c *Cache) Len() int {
	return c.entries.Len()
}
