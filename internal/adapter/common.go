// Package adapter implements the remote lifecycle of each Seq kind on top of the
// Seq API client: find, create, get, update, delete and the conversion between
// Seq documents and the declared and observed shapes.
package adapter

import (
	"context"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"sigs.k8s.io/controller-runtime/pkg/log"

	"github.com/dc-tec/seq-operator/internal/seq"
)

// orNil maps a 404 to (nil, nil): the object no longer exists.
func orNil[T any](doc *T, err error) (*T, error) {
	if err != nil {
		if seq.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

// findByTitle returns the ID of the first document with the given title.
func findByTitle[T any](docs []T, title string, key func(*T) (id, title string)) string {
	if title == "" {
		return ""
	}
	for i := range docs {
		id, t := key(&docs[i])
		if t == title {
			return id
		}
	}
	return ""
}

// differs reports whether desired differs from current, logging the diff at V(1).
// Nil and empty slices and maps are equal; the decoded Seq document is not compared.
func differs(ctx context.Context, id string, current, desired any, opts ...cmp.Option) bool {
	opts = append([]cmp.Option{cmpopts.EquateEmpty(), cmpopts.IgnoreTypes(seq.Document{})}, opts...)
	diff := cmp.Diff(current, desired, opts...)
	if diff == "" {
		return false
	}
	log.FromContext(ctx).V(1).Info("Remote object differs from declared configuration", "id", id, "diff", diff)
	return true
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
