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
	"crypto/tls"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	// Import all Kubernetes client auth plugins (e.g. Azure, GCP, OIDC, etc.)
	// to ensure that exec-entrypoint and run can make use of them.
	_ "k8s.io/client-go/plugin/pkg/client/auth"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/cache"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/metrics/filters"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	seqv1alpha1 "github.com/dc-tec/seq-operator/api/v1alpha1"
	"github.com/dc-tec/seq-operator/internal/connection"
	"github.com/dc-tec/seq-operator/internal/constants"
	seqcontroller "github.com/dc-tec/seq-operator/internal/controller"
	"github.com/dc-tec/seq-operator/internal/reconcile"
	"github.com/dc-tec/seq-operator/internal/seq"
)

// watchNamespaceEnv restricts the manager to one namespace when --watch-namespace is unset.
const watchNamespaceEnv = "WATCH_NAMESPACE"

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(seqv1alpha1.AddToScheme(scheme))
}

type options struct {
	metricsAddr          string
	metricsCertPath      string
	metricsCertName      string
	metricsCertKey       string
	probeAddr            string
	enableLeaderElection bool
	secureMetrics        bool
	enableHTTP2          bool
	watchNamespace       string

	intervals     reconcile.Intervals
	remoteQPS     float64
	remoteBurst   int
	remoteTimeout time.Duration

	zap zap.Options
}

// parseOptions parses the controller flags. getenv supplies fallbacks for unset flags.
func parseOptions(args []string, getenv func(string) string) (*options, error) {
	o := &options{zap: zap.Options{Development: true}}
	fs := flag.NewFlagSet("controller", flag.ContinueOnError)

	fs.StringVar(&o.metricsAddr, "metrics-bind-address", ":8443", "The address the metrics endpoint binds to.")
	fs.StringVar(&o.probeAddr, "health-probe-bind-address", ":8081", "The address the probe endpoint binds to.")
	fs.BoolVar(&o.enableLeaderElection, "leader-elect", false,
		"Enable leader election for controller manager. "+
			"Enabling this will ensure there is only one active controller manager.")
	fs.BoolVar(&o.secureMetrics, "metrics-secure", true,
		"If set, the metrics endpoint is served securely via HTTPS. Use --metrics-secure=false to use HTTP instead.")
	fs.StringVar(&o.metricsCertPath, "metrics-cert-path", "",
		"The directory that contains the metrics server certificate.")
	fs.StringVar(&o.metricsCertName, "metrics-cert-name", "tls.crt", "The name of the metrics server certificate file.")
	fs.StringVar(&o.metricsCertKey, "metrics-cert-key", "tls.key", "The name of the metrics server key file.")
	fs.BoolVar(&o.enableHTTP2, "enable-http2", false,
		"If set, HTTP/2 will be enabled for the metrics server")
	fs.StringVar(&o.watchNamespace, "watch-namespace", "",
		"Restrict the manager to one namespace. Defaults to $"+watchNamespaceEnv+", or all namespaces.")

	fs.DurationVar(&o.intervals.Steady, "reconcile-interval", constants.RequeueSteady,
		"How often a converged object is re-checked for drift.")
	fs.DurationVar(&o.intervals.Retry, "retry-interval", constants.RequeueRetry,
		"Requeue delay after a retryable, configuration or unexpected failure.")
	fs.DurationVar(&o.intervals.RemoteError, "remote-error-interval", constants.RequeueRemoteError,
		"Requeue delay after the Seq server rejected an operation.")
	fs.Float64Var(&o.remoteQPS, "remote-qps", 10, "Sustained request rate per SeqInstance.")
	fs.IntVar(&o.remoteBurst, "remote-burst", 20, "Request burst per SeqInstance.")
	fs.DurationVar(&o.remoteTimeout, "remote-timeout", seq.DefaultRequestTimeout,
		"Timeout of a single request to a Seq server.")

	o.zap.BindFlags(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if o.watchNamespace == "" {
		o.watchNamespace = getenv(watchNamespaceEnv)
	}

	var errs []error
	for name, d := range map[string]time.Duration{
		"reconcile-interval":    o.intervals.Steady,
		"retry-interval":        o.intervals.Retry,
		"remote-error-interval": o.intervals.RemoteError,
		"remote-timeout":        o.remoteTimeout,
	} {
		if d <= 0 {
			errs = append(errs, fmt.Errorf("--%s must be positive, got %s", name, d))
		}
	}
	if o.remoteQPS <= 0 {
		errs = append(errs, fmt.Errorf("--remote-qps must be positive, got %v", o.remoteQPS))
	}
	if o.remoteBurst <= 0 {
		errs = append(errs, fmt.Errorf("--remote-burst must be positive, got %d", o.remoteBurst))
	}
	return o, errors.Join(errs...)
}

// managerOptions translates the parsed flags into manager options.
func (o *options) managerOptions() ctrl.Options {
	var tlsOpts []func(*tls.Config)

	// HTTP/2 stays off unless requested (HTTP/2 Stream Cancellation and Rapid Reset CVEs):
	// - https://github.com/advisories/GHSA-qppj-fm5r-hxr3
	// - https://github.com/advisories/GHSA-4374-p667-p6c8
	if !o.enableHTTP2 {
		tlsOpts = append(tlsOpts, func(c *tls.Config) {
			setupLog.Info("disabling http/2")
			c.NextProtos = []string{"http/1.1"}
		})
	}

	metricsServerOptions := metricsserver.Options{
		BindAddress:   o.metricsAddr,
		SecureServing: o.secureMetrics,
		TLSOpts:       tlsOpts,
	}
	if o.secureMetrics {
		metricsServerOptions.FilterProvider = filters.WithAuthenticationAndAuthorization
	}
	if len(o.metricsCertPath) > 0 {
		metricsServerOptions.CertDir = o.metricsCertPath
		metricsServerOptions.CertName = o.metricsCertName
		metricsServerOptions.KeyName = o.metricsCertKey
	}

	mgrOpts := ctrl.Options{
		Scheme:                 scheme,
		Metrics:                metricsServerOptions,
		HealthProbeBindAddress: o.probeAddr,
		LeaderElection:         o.enableLeaderElection,
		LeaderElectionID:       "seq-operator-leader.seq.dc-tec.io",
		// Credential Secrets are read directly: caching them would need cluster-wide list/watch.
		Client: client.Options{
			Cache: &client.CacheOptions{
				DisableFor: []client.Object{&corev1.Secret{}},
			},
		},
	}
	if o.watchNamespace != "" {
		mgrOpts.Cache = cache.Options{
			DefaultNamespaces: map[string]cache.Config{o.watchNamespace: {}},
		}
	}
	return mgrOpts
}

type setupWithManager interface {
	SetupWithManager(mgr ctrl.Manager) error
}

// Run starts the Seq controller manager.
func Run(args []string) {
	opts, err := parseOptions(args, os.Getenv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctrl.SetLogger(zap.New(zap.UseFlagOptions(&opts.zap)))

	if opts.metricsCertPath != "" {
		setupLog.Info("Initializing metrics certificate watcher using provided certificates",
			"metrics-cert-path", opts.metricsCertPath, "metrics-cert-name", opts.metricsCertName,
			"metrics-cert-key", opts.metricsCertKey)
	}
	if opts.watchNamespace != "" {
		setupLog.Info("Restricting manager to namespace", "namespace", opts.watchNamespace)
	}

	mgr, err := ctrl.NewManager(ctrl.GetConfigOrDie(), opts.managerOptions())
	if err != nil {
		setupLog.Error(err, "unable to start manager")
		os.Exit(1)
	}

	clients := seq.NewClientManager(seq.ClientConfig{RequestTimeout: opts.remoteTimeout}, opts.remoteQPS, opts.remoteBurst)
	resolver := &connection.Resolver{
		Reader:   mgr.GetClient(),
		Clients:  clients,
		Recorder: mgr.GetEventRecorderFor("seq-connection"),
	}
	connections := connection.NewCache(resolver.Resolve, constants.ConnectionTTL, nil)

	reconcilers := map[string]setupWithManager{
		"SeqInstance": &seqcontroller.SeqInstanceReconciler{
			Client: mgr.GetClient(), Scheme: mgr.GetScheme(),
			Connections: connections, Clients: clients, Intervals: opts.intervals,
		},
		"SeqAPIKey": &seqcontroller.SeqAPIKeyReconciler{
			Client: mgr.GetClient(), Scheme: mgr.GetScheme(),
			Connections: connections, Intervals: opts.intervals,
		},
		"SeqAlert": &seqcontroller.SeqAlertReconciler{
			Client: mgr.GetClient(), Scheme: mgr.GetScheme(),
			Connections: connections, Intervals: opts.intervals,
		},
		"SeqSignal": &seqcontroller.SeqSignalReconciler{
			Client: mgr.GetClient(), Scheme: mgr.GetScheme(),
			Connections: connections, Intervals: opts.intervals,
		},
		"SeqRetentionPolicy": &seqcontroller.SeqRetentionPolicyReconciler{
			Client: mgr.GetClient(), Scheme: mgr.GetScheme(),
			Connections: connections, Intervals: opts.intervals,
		},
	}
	for kind, r := range reconcilers {
		if err := r.SetupWithManager(mgr); err != nil {
			setupLog.Error(err, "unable to create controller", "controller", kind)
			os.Exit(1)
		}
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		os.Exit(1)
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		os.Exit(1)
	}

	setupLog.Info("starting controller manager")
	if err := mgr.Start(ctrl.SetupSignalHandler()); err != nil {
		setupLog.Error(err, "problem running manager")
		os.Exit(1)
	}
}
