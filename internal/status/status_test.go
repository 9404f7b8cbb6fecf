package status

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func TestEnsureDefaults(t *testing.T) {
	var conds []metav1.Condition

	added := EnsureDefaults(&conds, 1, "Reconciling", ConditionReady, ConditionHealthy)
	require.True(t, added)
	require.Len(t, conds, 2)
	assert.Equal(t, ConditionReady, conds[0].Type)
	assert.Equal(t, ConditionHealthy, conds[1].Type)
	assert.True(t, IsFalse(conds, ConditionReady))
	assert.True(t, IsFalse(conds, ConditionHealthy))

	True(&conds, 1, ConditionReady, "Synced", "")
	added = EnsureDefaults(&conds, 1, "Reconciling", ConditionReady, ConditionHealthy)
	assert.False(t, added)
	assert.True(t, IsTrue(conds, ConditionReady), "existing conditions must not be reset")
}

func TestSetPreservesOrderAndOverwrites(t *testing.T) {
	var conds []metav1.Condition
	False(&conds, 1, ConditionReady, "Reconciling", "")
	False(&conds, 1, ConditionHealthy, "Reconciling", "")

	False(&conds, 2, ConditionReady, "RemoteAPIError", "400 Bad Request")

	require.Len(t, conds, 2)
	assert.Equal(t, ConditionReady, conds[0].Type)
	assert.Equal(t, "RemoteAPIError", conds[0].Reason)
	assert.Equal(t, "400 Bad Request", conds[0].Message)
	assert.Equal(t, int64(2), conds[0].ObservedGeneration)

	True(&conds, 2, ConditionReady, "Synced", "")
	assert.Empty(t, Get(conds, ConditionReady).Message, "success clears the previous message")
}

func TestSetKeepsOneEntryPerType(t *testing.T) {
	types := []string{ConditionReady, ConditionHealthy, "Custom"}
	statuses := []metav1.ConditionStatus{metav1.ConditionTrue, metav1.ConditionFalse, metav1.ConditionUnknown}
	rng := rand.New(rand.NewSource(42))

	var conds []metav1.Condition
	for i := 0; i < 200; i++ {
		Set(&conds, int64(i), types[rng.Intn(len(types))], statuses[rng.Intn(len(statuses))], "Reason", fmt.Sprint(i))

		seen := map[string]int{}
		for _, c := range conds {
			seen[c.Type]++
		}
		for typ, n := range seen {
			if n != 1 {
				t.Fatalf("after %d upserts condition %s appears %d times", i+1, typ, n)
			}
		}
	}
}

func TestRemove(t *testing.T) {
	var conds []metav1.Condition
	True(&conds, 1, ConditionReady, "Synced", "")
	Remove(&conds, ConditionReady)
	assert.Nil(t, Get(conds, ConditionReady))
}
