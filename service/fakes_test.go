package service

import (
	"context"
	"errors"
	"sync"

	"fulfillment-portal/models"
	"fulfillment-portal/repository"
)

type fakePricingRepo struct {
	rules  []models.PricingRule
	box    []models.DatedPrice
	pallet []models.DatedPrice
	exist  []models.DatedPrice
	err    error
}

func (f *fakePricingRepo) GetPrepRules(ctx context.Context, userID string) ([]models.PricingRule, error) {
	return f.rules, nil
}

func (f *fakePricingRepo) GetBoxForwardingPrices(ctx context.Context, userID string) ([]models.DatedPrice, error) {
	return f.box, nil
}

func (f *fakePricingRepo) GetPalletForwardingPrices(ctx context.Context, userID string) ([]models.DatedPrice, error) {
	return f.pallet, f.err
}

func (f *fakePricingRepo) GetPalletExistingInventoryPrices(ctx context.Context, userID string) ([]models.DatedPrice, error) {
	return f.exist, nil
}

type fakeInventoryRepo struct {
	items []models.InventoryItem
	err   error
}

func (f *fakeInventoryRepo) ListByUser(ctx context.Context, userID string) ([]models.InventoryItem, error) {
	return f.items, f.err
}

type fakeUserRepo struct {
	users map[string]models.User
	err   error
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	user, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

type fakeRequestRepo struct {
	created   []*models.ShipmentRequestRecord
	documents []map[string]interface{}
	err       error
}

func (f *fakeRequestRepo) Create(ctx context.Context, record *models.ShipmentRequestRecord, document map[string]interface{}) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, record)
	f.documents = append(f.documents, document)
	return nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, userID, id string) (*models.ShipmentRequestRecord, error) {
	for _, record := range f.created {
		if record.ID == id && record.UserID == userID {
			return record, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakePublisher struct {
	mu   sync.Mutex
	keys []string
	err  error
}

func (f *fakePublisher) Publish(ctx context.Context, key string, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	return f.err
}

func (f *fakePublisher) Close() error { return nil }

var errStoreDown = errors.New("store down")
