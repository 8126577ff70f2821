package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/domain/repository"
	"film-forge-api/internal/infrastructure/fetch"
)

// MockAssetRecordRepository is a mock type for the AssetRecordRepository type
type MockAssetRecordRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, record
func (_m *MockAssetRecordRepository) Create(ctx context.Context, record *entity.AudioAssetRecord) error {
	ret := _m.Called(ctx, record)
	return ret.Error(0)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockAssetRecordRepository) GetByID(ctx context.Context, id string) (*entity.AudioAssetRecord, error) {
	ret := _m.Called(ctx, id)

	var r0 *entity.AudioAssetRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.AudioAssetRecord)
	}
	return r0, ret.Error(1)
}

// ListByRequestID provides a mock function with given fields: ctx, requestID
func (_m *MockAssetRecordRepository) ListByRequestID(ctx context.Context, requestID string) ([]*entity.AudioAssetRecord, error) {
	ret := _m.Called(ctx, requestID)

	var r0 []*entity.AudioAssetRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*entity.AudioAssetRecord)
	}
	return r0, ret.Error(1)
}

func NewMockAssetRecordRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockAssetRecordRepository {
	m := &MockAssetRecordRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ repository.AssetRecordRepository = (*MockAssetRecordRepository)(nil)

// MockPurchaseRepository is a mock type for the PurchaseRepository type
type MockPurchaseRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, record
func (_m *MockPurchaseRepository) Create(ctx context.Context, record *entity.PurchaseRecord) error {
	ret := _m.Called(ctx, record)
	return ret.Error(0)
}

func NewMockPurchaseRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPurchaseRepository {
	m := &MockPurchaseRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ repository.PurchaseRepository = (*MockPurchaseRepository)(nil)

// MockFetcher is a mock type for the asset Fetcher type
type MockFetcher struct {
	mock.Mock
}

// Fetch provides a mock function with given fields: ctx, rawURL
func (_m *MockFetcher) Fetch(ctx context.Context, rawURL string) (*fetch.Asset, error) {
	ret := _m.Called(ctx, rawURL)

	var r0 *fetch.Asset
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*fetch.Asset)
	}
	return r0, ret.Error(1)
}

func NewMockFetcher(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockFetcher {
	m := &MockFetcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
