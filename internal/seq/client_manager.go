package seq

import (
	"sync"

	"golang.org/x/time/rate"
)

const (
	defaultRateLimitQPS   = 10.0
	defaultRateLimitBurst = 20
)

// ClientManager creates clients for SeqInstances and shares one rate limiter per
// instance across every client built for it.
type ClientManager struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter

	// defaults holds the configuration template applied to new clients.
	defaults ClientConfig
	qps      float64
	burst    int
}

// NewClientManager creates a new ClientManager. Non-positive qps or burst select the defaults.
func NewClientManager(defaults ClientConfig, qps float64, burst int) *ClientManager {
	if qps <= 0 {
		qps = defaultRateLimitQPS
	}
	if burst <= 0 {
		burst = defaultRateLimitBurst
	}
	return &ClientManager{
		limiters: make(map[string]*rate.Limiter),
		defaults: defaults,
		qps:      qps,
		burst:    burst,
	}
}

// NewClient builds a client for the instance identified by instanceKey
// (recommended format: "<namespace>/<name>").
func (m *ClientManager) NewClient(instanceKey, baseURL string, caCert []byte, apiKey string) (*Client, error) {
	cfg := m.defaults
	cfg.BaseURL = baseURL
	cfg.CACert = caCert
	cfg.APIKey = apiKey
	cfg.Limiter = m.limiterFor(instanceKey)
	return NewClient(cfg)
}

func (m *ClientManager) limiterFor(instanceKey string) *rate.Limiter {
	if instanceKey == "" {
		return nil
	}

	m.mu.RLock()
	if l, ok := m.limiters[instanceKey]; ok {
		m.mu.RUnlock()
		return l
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	if l, ok := m.limiters[instanceKey]; ok {
		return l
	}

	l := rate.NewLimiter(rate.Limit(m.qps), m.burst)
	m.limiters[instanceKey] = l
	return l
}

// ClearInstance drops the limiter of a deleted instance.
func (m *ClientManager) ClearInstance(instanceKey string) {
	if m == nil || instanceKey == "" {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.limiters, instanceKey)
}

// InstanceCount returns the number of instances with a limiter.
func (m *ClientManager) InstanceCount() int {
	if m == nil {
		return 0
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.limiters)
}
