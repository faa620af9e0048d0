package client

import (
	"context"
	"fmt"
	"net/http"
)

// Doer is the transport Resource sends through; *HTTPClient implements it.
type Doer interface {
	Do(ctx context.Context, method, path string, in, out any) error
}

// Resource is a REST collection rooted at base (trailing slash included),
// with members at base + "<id>/".
type Resource[T any] struct {
	doer Doer
	base string
}

func NewResource[T any](doer Doer, base string) *Resource[T] {
	return &Resource[T]{doer: doer, base: base}
}

func (r *Resource[T]) memberPath(id int64) string {
	return fmt.Sprintf("%s%d/", r.base, id)
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var items []T
	if err := r.doer.Do(ctx, http.MethodGet, r.base, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *Resource[T]) Get(ctx context.Context, id int64) (T, error) {
	var item T
	err := r.doer.Do(ctx, http.MethodGet, r.memberPath(id), nil, &item)
	return item, err
}

// Create posts in and returns the created item as echoed by the backend.
func (r *Resource[T]) Create(ctx context.Context, in any) (T, error) {
	var item T
	err := r.doer.Do(ctx, http.MethodPost, r.base, in, &item)
	return item, err
}

// Update replaces the item with in (PUT) and returns the backend's echo.
func (r *Resource[T]) Update(ctx context.Context, id int64, in any) (T, error) {
	var item T
	err := r.doer.Do(ctx, http.MethodPut, r.memberPath(id), in, &item)
	return item, err
}

func (r *Resource[T]) Delete(ctx context.Context, id int64) error {
	return r.doer.Do(ctx, http.MethodDelete, r.memberPath(id), nil, nil)
}
