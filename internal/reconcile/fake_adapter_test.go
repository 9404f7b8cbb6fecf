package reconcile

import (
	"context"
	"fmt"
	"sync"

	"k8s.io/apimachinery/pkg/types"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// memoryAdapter keeps alerts in memory. The *Err fields make the matching call fail.
type memoryAdapter struct {
	mu     sync.Mutex
	remote map[string]seq.Alert
	nextID int
	calls  map[string]int

	FindErr    error
	CreateErr  error
	GetErr     error
	UpdateErr  error
	DeleteErr  error
	ObserveErr error

	lastCreated *seqv1alpha1.AlertConf
}

func newMemoryAdapter(existing ...seq.Alert) *memoryAdapter {
	a := &memoryAdapter{remote: map[string]seq.Alert{}, calls: map[string]int{}}
	for _, r := range existing {
		a.remote[r.ID] = r
	}
	return a
}

func (a *memoryAdapter) count(op string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[op]
}

func (a *memoryAdapter) record(op string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls[op]++
}

func (a *memoryAdapter) Find(_ context.Context, _ Scope, find *seqv1alpha1.AlertFind) (string, error) {
	a.record("find")
	if a.FindErr != nil {
		return "", a.FindErr
	}
	for id, r := range a.remote {
		if r.Title == find.Title {
			return id, nil
		}
	}
	return "", nil
}

func (a *memoryAdapter) ValidateCreate(conf *seqv1alpha1.AlertConf) error {
	if conf.Title == nil || *conf.Title == "" {
		return fmt.Errorf("title is required")
	}
	return nil
}

func (a *memoryAdapter) Create(_ context.Context, _ Scope, conf *seqv1alpha1.AlertConf) (string, error) {
	a.record("create")
	if a.CreateErr != nil {
		return "", a.CreateErr
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.nextID++
	id := fmt.Sprintf("alert-%d", a.nextID)
	a.remote[id] = seq.Alert{ID: id, Title: *conf.Title}
	a.lastCreated = conf
	return id, nil
}

func (a *memoryAdapter) Get(_ context.Context, _ Scope, id string) (*seq.Alert, error) {
	a.record("get")
	if a.GetErr != nil {
		return nil, a.GetErr
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	r, ok := a.remote[id]
	if !ok {
		return nil, nil
	}
	return &r, nil
}

func (a *memoryAdapter) Observe(remote *seq.Alert) (*seqv1alpha1.AlertInfo, error) {
	if a.ObserveErr != nil {
		return nil, a.ObserveErr
	}
	return &seqv1alpha1.AlertInfo{Title: remote.Title}, nil
}

func (a *memoryAdapter) Update(_ context.Context, _ Scope, current *seq.Alert, conf *seqv1alpha1.AlertConf) (bool, error) {
	if a.UpdateErr != nil {
		return false, a.UpdateErr
	}
	if conf.Title == nil || *conf.Title == current.Title {
		return false, nil
	}
	a.record("update")
	a.mu.Lock()
	defer a.mu.Unlock()
	updated := *current
	updated.Title = *conf.Title
	a.remote[current.ID] = updated
	return true, nil
}

func (a *memoryAdapter) Delete(_ context.Context, _ Scope, id string) error {
	a.record("delete")
	if a.DeleteErr != nil {
		return a.DeleteErr
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.remote, id)
	return nil
}

// fakeConnector hands out a fixed connection.
type fakeConnector struct {
	mu          sync.Mutex
	conn        *seq.Client
	err         error
	invalidated []types.NamespacedName
}

func (c *fakeConnector) Connect(ctx context.Context, _ types.NamespacedName) (*seq.Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return c.conn, c.err
}

func (c *fakeConnector) Invalidate(key types.NamespacedName) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidated = append(c.invalidated, key)
}
