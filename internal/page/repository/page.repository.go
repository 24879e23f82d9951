package repository

import (
	"context"
	"encoding/json"
	"errors"

	"gogokodo/internal/page/model"
	"gogokodo/pkg/logger"
	"gogokodo/store"
)

// PageRepository reads and writes Template and Content records through the
// key-value store. Missing keys surface as a nil record with a nil error;
// callers never see store.ErrNotFound.
type PageRepository struct {
	Store store.Store
}

func NewPageRepository(s store.Store) *PageRepository {
	return &PageRepository{Store: s}
}

func (r *PageRepository) GetTemplate(ctx context.Context, id string) (*model.Template, error) {
	raw, err := r.Store.Get(ctx, store.NamespaceTemplates, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var t model.Template
	if err := json.Unmarshal(raw, &t); err != nil {
		logger.Sugar.Errorf("Stored template %q is not valid JSON: %v", id, err)
		return nil, err
	}
	return &t, nil
}

func (r *PageRepository) PutTemplate(ctx context.Context, id string, t model.Template) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return err
	}
	return r.Store.Put(ctx, store.NamespaceTemplates, id, raw)
}

// GetContent treats an undecodable stored record the same as a missing one:
// the page resolves as absent rather than failing the request.
func (r *PageRepository) GetContent(ctx context.Context, key string) (*model.Content, error) {
	raw, err := r.Store.Get(ctx, store.NamespaceContent, key)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var c model.Content
	if err := json.Unmarshal(raw, &c); err != nil {
		logger.Sugar.Warnf("Stored content %q is not valid JSON, treating as absent: %v", key, err)
		return nil, nil
	}
	return &c, nil
}

func (r *PageRepository) PutContent(ctx context.Context, key string, c model.Content) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.Store.Put(ctx, store.NamespaceContent, key, raw)
}
