package mocks

import (
	"context"

	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/mock"

	"film-forge-api/internal/domain/entity"
	"film-forge-api/internal/infrastructure/replicate"
)

// MockChatCompleter is a mock type for the ChatCompleter type
type MockChatCompleter struct {
	mock.Mock
}

// Complete provides a mock function with given fields: ctx, task, msgs, jsonMode
func (_m *MockChatCompleter) Complete(ctx context.Context, task string, msgs []*schema.Message, jsonMode bool) (string, error) {
	ret := _m.Called(ctx, task, msgs, jsonMode)
	return ret.String(0), ret.Error(1)
}

func NewMockChatCompleter(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockChatCompleter {
	m := &MockChatCompleter{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockImageGenerator is a mock type for the ImageGenerator type
type MockImageGenerator struct {
	mock.Mock
	MaxPrompt int
}

// Generate provides a mock function with given fields: ctx, prompt
func (_m *MockImageGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	ret := _m.Called(ctx, prompt)
	return ret.String(0), ret.Error(1)
}

func (_m *MockImageGenerator) MaxPromptLength() int {
	return _m.MaxPrompt
}

func NewMockImageGenerator(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImageGenerator {
	m := &MockImageGenerator{MaxPrompt: 1000}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockPredictionRunner is a mock type for the PredictionRunner type
type MockPredictionRunner struct {
	mock.Mock
	MaxPrompt int
}

// Run provides a mock function with given fields: ctx, model, input
func (_m *MockPredictionRunner) Run(ctx context.Context, model string, input map[string]any) (*replicate.Prediction, error) {
	ret := _m.Called(ctx, model, input)

	var r0 *replicate.Prediction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*replicate.Prediction)
	}
	return r0, ret.Error(1)
}

// Start provides a mock function with given fields: ctx, model, input, webhookURL
func (_m *MockPredictionRunner) Start(ctx context.Context, model string, input map[string]any, webhookURL string) (*replicate.Prediction, error) {
	ret := _m.Called(ctx, model, input, webhookURL)

	var r0 *replicate.Prediction
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*replicate.Prediction)
	}
	return r0, ret.Error(1)
}

func (_m *MockPredictionRunner) MaxPromptLength() int {
	return _m.MaxPrompt
}

func NewMockPredictionRunner(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPredictionRunner {
	m := &MockPredictionRunner{MaxPrompt: 1000}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// MockCheckout is a mock type for the payment provider
type MockCheckout struct {
	mock.Mock
}

// CreateSession provides a mock function with given fields: ctx, priceID
func (_m *MockCheckout) CreateSession(ctx context.Context, priceID string) (*entity.CheckoutSession, error) {
	ret := _m.Called(ctx, priceID)

	var r0 *entity.CheckoutSession
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.CheckoutSession)
	}
	return r0, ret.Error(1)
}

// ParseWebhook provides a mock function with given fields: payload, signature
func (_m *MockCheckout) ParseWebhook(payload []byte, signature string) (*entity.PurchaseRecord, string, error) {
	ret := _m.Called(payload, signature)

	var r0 *entity.PurchaseRecord
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*entity.PurchaseRecord)
	}
	return r0, ret.String(1), ret.Error(2)
}

func NewMockCheckout(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCheckout {
	m := &MockCheckout{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
