// Package v1alpha1 contains API Schema definitions for the netfabric.io v1alpha1 API group
// +kubebuilder:object:generate=true
// +groupName=netfabric.io
package v1alpha1

import (
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	"sigs.k8s.io/controller-runtime/pkg/scheme"
)

var (
	// GroupVersion is group version used to register these objects
	GroupVersion = schema.GroupVersion{Group: "netfabric.io", Version: "v1alpha1"}

	// SchemeBuilder is used to add go types to the GroupVersionKind scheme
	SchemeBuilder = &scheme.Builder{GroupVersion: GroupVersion}

	// AddToScheme adds the types in this group-version to the given scheme
	AddToScheme = SchemeBuilder.AddToScheme

	// Scheme is the runtime scheme containing the registered types
	Scheme = runtime.NewScheme()
)

func init() {
	SchemeBuilder.Register(
		&Aggregate{}, &AggregateList{},
		&Prefix{}, &PrefixList{},
		&Pool{}, &PoolList{},
		&IPClaim{}, &IPClaimList{},
		&Device{}, &DeviceList{},
		&BootProfile{}, &BootProfileList{},
		&BootIntent{}, &BootIntentList{},
	)

	// Add core Kubernetes types to the Scheme (for Namespace, Secret, etc.)
	_ = clientgoscheme.AddToScheme(Scheme)

	// Add our types to the Scheme
	_ = AddToScheme(Scheme)
}
