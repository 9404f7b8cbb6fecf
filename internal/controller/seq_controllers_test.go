/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package controller

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"k8s.io/client-go/tools/record"
	"k8s.io/utils/ptr"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/connection"
	"github.com/dc-tec/seq-operator/internal/constants"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/seq"
	"github.com/dc-tec/seq-operator/internal/seq/seqtest"
	"github.com/dc-tec/seq-operator/internal/status"
)

const specNamespace = "observability"

var specScheme = func() *runtime.Scheme {
	scheme := runtime.NewScheme()
	_ = clientgoscheme.AddToScheme(scheme)
	_ = seqv1alpha1.AddToScheme(scheme)
	return scheme
}()

var specIntervals = reconcile.Intervals{Steady: 30 * time.Second, Retry: 20 * time.Second, RemoteError: 10 * time.Second}

var _ = Describe("Seq controllers", func() {
	var (
		ctx         context.Context
		server      *seqtest.Server
		k8sClient   client.Client
		recorder    *record.FakeRecorder
		clients     *seq.ClientManager
		connections *connection.Cache
	)

	BeforeEach(func() {
		ctx = context.Background()
		server = seqtest.Start()
		DeferCleanup(server.Close)
		server.AddToken("admintoken", server.AddUser("admin", "hunter22", false))

		tokenSecret := &corev1.Secret{
			ObjectMeta: metav1.ObjectMeta{Name: "seq-token", Namespace: specNamespace},
			Data:       map[string][]byte{seqv1alpha1.SecretKeyToken: []byte("admintoken")},
		}
		instance := &seqv1alpha1.SeqInstance{
			ObjectMeta: metav1.ObjectMeta{Name: "seq", Namespace: specNamespace},
			Spec: seqv1alpha1.SeqInstanceSpec{
				Remote: &seqv1alpha1.RemoteSpec{
					URL: server.URL,
					Auth: []seqv1alpha1.AuthStrategy{{
						Token: &seqv1alpha1.SecretAuth{SecretRef: corev1.LocalObjectReference{Name: "seq-token"}},
					}},
				},
			},
		}

		k8sClient = fake.NewClientBuilder().
			WithScheme(specScheme).
			WithObjects(tokenSecret, instance).
			WithStatusSubresource(
				&seqv1alpha1.SeqInstance{},
				&seqv1alpha1.SeqAPIKey{},
				&seqv1alpha1.SeqAlert{},
				&seqv1alpha1.SeqSignal{},
				&seqv1alpha1.SeqRetentionPolicy{},
			).
			Build()
		recorder = record.NewFakeRecorder(50)
		clients = seq.NewClientManager(seq.ClientConfig{RequestTimeout: 5 * time.Second}, 100, 100)
		resolver := &connection.Resolver{Reader: k8sClient, Clients: clients, Recorder: recorder}
		connections = connection.NewCache(resolver.Resolve, time.Minute, nil)
	})

	reconcileOnce := func(r interface {
		Reconcile(context.Context, ctrl.Request) (ctrl.Result, error)
	}, obj client.Object) ctrl.Result {
		GinkgoHelper()
		result, err := r.Reconcile(ctx, ctrl.Request{NamespacedName: client.ObjectKeyFromObject(obj)})
		Expect(err).NotTo(HaveOccurred())
		return result
	}

	drainEvents := func() []string {
		var out []string
		for {
			select {
			case e := <-recorder.Events:
				out = append(out, e)
			default:
				return out
			}
		}
	}

	readyReason := func(conds []metav1.Condition) string {
		GinkgoHelper()
		ready := status.Get(conds, status.ConditionReady)
		Expect(ready).NotTo(BeNil())
		return ready.Reason
	}

	Context("SeqInstance", func() {
		var reconciler *SeqInstanceReconciler

		BeforeEach(func() {
			reconciler = &SeqInstanceReconciler{
				Client:      k8sClient,
				Scheme:      specScheme,
				Recorder:    recorder,
				Connections: connections,
				Clients:     clients,
				Intervals:   specIntervals,
			}
		})

		It("binds the server and applies the declared settings", func() {
			instance := &seqv1alpha1.SeqInstance{}
			Expect(k8sClient.Get(ctx, client.ObjectKey{Namespace: specNamespace, Name: "seq"}, instance)).To(Succeed())
			instance.Spec.Conf = &seqv1alpha1.InstanceConf{InstanceTitle: ptr.To("Production")}
			Expect(k8sClient.Update(ctx, instance)).To(Succeed())

			result := reconcileOnce(reconciler, instance)
			Expect(result.RequeueAfter).To(Equal(specIntervals.Steady))

			Expect(k8sClient.Get(ctx, client.ObjectKeyFromObject(instance), instance)).To(Succeed())
			Expect(instance.Finalizers).To(ContainElement(constants.FinalizerName))
			Expect(instance.Status.ID).To(Equal(constants.InstanceObjectID))
			Expect(status.IsTrue(instance.Status.Conditions, status.ConditionReady)).To(BeTrue())
			Expect(instance.Status.Info).NotTo(BeNil())
			Expect(instance.Status.Info.Version).To(Equal(seqtest.Version))
			Expect(instance.Status.Info.InstanceTitle).To(Equal("Production"))
			Expect(string(server.Setting(constants.SettingInstanceTitle))).To(Equal(`"Production"`))
		})

		It("releases the connection without touching the server when deleted", func() {
			instance := &seqv1alpha1.SeqInstance{}
			Expect(k8sClient.Get(ctx, client.ObjectKey{Namespace: specNamespace, Name: "seq"}, instance)).To(Succeed())
			reconcileOnce(reconciler, instance)
			Expect(connections.Len()).To(Equal(1))
			Expect(clients.InstanceCount()).To(Equal(1))

			Expect(k8sClient.Delete(ctx, instance)).To(Succeed())
			reconcileOnce(reconciler, instance)

			err := k8sClient.Get(ctx, client.ObjectKeyFromObject(instance), &seqv1alpha1.SeqInstance{})
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
			Expect(connections.Len()).To(BeZero())
			Expect(clients.InstanceCount()).To(BeZero())
			Expect(drainEvents()).NotTo(ContainElement(ContainSubstring(constants.EventReasonLeaked)))
		})

		It("reports an unavailable connection when the token is rejected", func() {
			secret := &corev1.Secret{}
			Expect(k8sClient.Get(ctx, client.ObjectKey{Namespace: specNamespace, Name: "seq-token"}, secret)).To(Succeed())
			secret.Data[seqv1alpha1.SecretKeyToken] = []byte("wrong")
			Expect(k8sClient.Update(ctx, secret)).To(Succeed())

			instance := &seqv1alpha1.SeqInstance{}
			Expect(k8sClient.Get(ctx, client.ObjectKey{Namespace: specNamespace, Name: "seq"}, instance)).To(Succeed())
			result := reconcileOnce(reconciler, instance)
			Expect(result.RequeueAfter).To(Equal(specIntervals.Retry))

			Expect(k8sClient.Get(ctx, client.ObjectKeyFromObject(instance), instance)).To(Succeed())
			Expect(readyReason(instance.Status.Conditions)).To(Equal("ConnectionUnavailable"))
			Expect(connections.Len()).To(BeZero())
		})
	})

	Context("SeqAlert", func() {
		var reconciler *SeqAlertReconciler

		BeforeEach(func() {
			reconciler = &SeqAlertReconciler{
				Client:      k8sClient,
				Scheme:      specScheme,
				Recorder:    recorder,
				Connections: connections,
				Intervals:   specIntervals,
			}
		})

		newAlert := func(name, instance string) *seqv1alpha1.SeqAlert {
			GinkgoHelper()
			alert := &seqv1alpha1.SeqAlert{
				ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: specNamespace},
				Spec: seqv1alpha1.SeqAlertSpec{
					ManagedSpec: seqv1alpha1.ManagedSpec{InstanceRef: seqv1alpha1.InstanceReference{Name: instance}},
					Conf: &seqv1alpha1.AlertConf{
						Title:             ptr.To("Errors"),
						NotificationLevel: ptr.To(seqv1alpha1.LogLevelError),
					},
				},
			}
			Expect(k8sClient.Create(ctx, alert)).To(Succeed())
			return alert
		}

		It("creates the alert on its instance", func() {
			alert := newAlert("errors", "seq")

			reconcileOnce(reconciler, alert)

			Expect(k8sClient.Get(ctx, client.ObjectKeyFromObject(alert), alert)).To(Succeed())
			Expect(alert.Status.ID).NotTo(BeEmpty())
			Expect(status.IsTrue(alert.Status.Conditions, status.ConditionReady)).To(BeTrue())
			Expect(alert.Status.Info.NotificationLevel).To(Equal(seqv1alpha1.LogLevelError))
			Expect(server.Count(constants.APIPathAlerts)).To(Equal(1))
			Expect(drainEvents()).To(ContainElement(ContainSubstring(constants.EventReasonCreated)))
		})

		It("leaves the alert on the server when the policy does not permit Delete", func() {
			alert := newAlert("errors", "seq")
			reconcileOnce(reconciler, alert)

			Expect(k8sClient.Delete(ctx, alert)).To(Succeed())
			reconcileOnce(reconciler, alert)

			err := k8sClient.Get(ctx, client.ObjectKeyFromObject(alert), &seqv1alpha1.SeqAlert{})
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
			Expect(server.Count(constants.APIPathAlerts)).To(Equal(1))
			Expect(drainEvents()).To(ContainElement(ContainSubstring(constants.EventReasonLeaked)))
		})

		It("waits for a SeqInstance that does not exist yet", func() {
			alert := newAlert("errors", "missing")

			result := reconcileOnce(reconciler, alert)
			Expect(result.RequeueAfter).To(Equal(specIntervals.Retry))

			Expect(k8sClient.Get(ctx, client.ObjectKeyFromObject(alert), alert)).To(Succeed())
			Expect(readyReason(alert.Status.Conditions)).To(Equal("InstanceUnresolved"))
			Expect(server.Count(constants.APIPathAlerts)).To(BeZero())
		})

		It("maps a SeqInstance to the alerts managed on it", func() {
			newAlert("errors", "seq")
			newAlert("elsewhere", "other")

			instance := &seqv1alpha1.SeqInstance{}
			Expect(k8sClient.Get(ctx, client.ObjectKey{Namespace: specNamespace, Name: "seq"}, instance)).To(Succeed())
			requests := enqueueDependents(k8sClient, func() client.ObjectList { return &seqv1alpha1.SeqAlertList{} })(ctx, instance)

			Expect(requests).To(ConsistOf(ctrl.Request{NamespacedName: client.ObjectKey{Namespace: specNamespace, Name: "errors"}}))
		})
	})

	Context("SeqRetentionPolicy", func() {
		It("waits for its signal to be bound and then creates the policy", func() {
			signals := &SeqSignalReconciler{
				Client: k8sClient, Scheme: specScheme, Recorder: recorder,
				Connections: connections, Intervals: specIntervals,
			}
			policies := &SeqRetentionPolicyReconciler{
				Client: k8sClient, Scheme: specScheme, Recorder: recorder,
				Connections: connections, Intervals: specIntervals,
			}
			ref := seqv1alpha1.ManagedSpec{InstanceRef: seqv1alpha1.InstanceReference{Name: "seq"}}

			signal := &seqv1alpha1.SeqSignal{
				ObjectMeta: metav1.ObjectMeta{Name: "debug", Namespace: specNamespace},
				Spec: seqv1alpha1.SeqSignalSpec{
					ManagedSpec: ref,
					Conf:        &seqv1alpha1.SignalConf{Title: ptr.To("Debug events")},
				},
			}
			policy := &seqv1alpha1.SeqRetentionPolicy{
				ObjectMeta: metav1.ObjectMeta{Name: "debug-7d", Namespace: specNamespace},
				Spec: seqv1alpha1.SeqRetentionPolicySpec{
					ManagedSpec: ref,
					Conf: &seqv1alpha1.RetentionPolicyConf{
						RetentionTime: &metav1.Duration{Duration: 7 * 24 * time.Hour},
						SignalRef:     &corev1.LocalObjectReference{Name: "debug"},
					},
				},
			}
			Expect(k8sClient.Create(ctx, signal)).To(Succeed())
			Expect(k8sClient.Create(ctx, policy)).To(Succeed())

			reconcileOnce(policies, policy)
			Expect(k8sClient.Get(ctx, client.ObjectKeyFromObject(policy), policy)).To(Succeed())
			Expect(readyReason(policy.Status.Conditions)).To(Equal("PrerequisitesMissing"))
			Expect(server.Count(constants.APIPathRetentionPolicies)).To(BeZero())

			reconcileOnce(signals, signal)
			Expect(k8sClient.Get(ctx, client.ObjectKeyFromObject(signal), signal)).To(Succeed())
			Expect(signal.Status.ID).NotTo(BeEmpty())

			Expect(policies.policiesForSignal(ctx, signal)).To(ConsistOf(
				ctrl.Request{NamespacedName: client.ObjectKeyFromObject(policy)}))

			reconcileOnce(policies, policy)
			Expect(k8sClient.Get(ctx, client.ObjectKeyFromObject(policy), policy)).To(Succeed())
			Expect(status.IsTrue(policy.Status.Conditions, status.ConditionReady)).To(BeTrue())
			Expect(policy.Status.Info.SignalID).To(Equal(signal.Status.ID))
			Expect(policy.Status.Info.RetentionTime.Duration).To(Equal(7 * 24 * time.Hour))
			Expect(server.Count(constants.APIPathRetentionPolicies)).To(Equal(1))
		})
	})
})
