package adapter

import (
	"testing"

	"github.com/stretchr/testify/require"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/client"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/seq"
	"github.com/dc-tec/seq-operator/internal/seq/seqtest"
)

const (
	testNamespace = "observability"
	adminToken    = "admintoken"
)

func testScheme() *runtime.Scheme {
	scheme := runtime.NewScheme()
	_ = clientgoscheme.AddToScheme(scheme)
	_ = seqv1alpha1.AddToScheme(scheme)
	return scheme
}

// newServer starts a fake Seq server with an administrator token and returns a
// client authenticated with it.
func newServer(t *testing.T) (*seqtest.Server, *seq.Client) {
	t.Helper()
	server := seqtest.New(t)
	adminID := server.AddUser("admin", "primary", false)
	server.AddToken(adminToken, adminID)

	conn, err := seq.NewClient(seq.ClientConfig{BaseURL: server.URL, APIKey: adminToken})
	require.NoError(t, err)
	return server, conn
}

func scopeFor(conn *seq.Client, obj client.Object) reconcile.Scope {
	return reconcile.Scope{Conn: conn, Object: obj}
}

func objectMeta(name string) metav1.ObjectMeta {
	return metav1.ObjectMeta{Name: name, Namespace: testNamespace, UID: "uid-1"}
}
