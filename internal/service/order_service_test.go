package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"remedial/internal/gateway"
	"remedial/internal/model"
)

func sampleOrderInput() OrderInput {
	return OrderInput{
		FullName:   "Budi Santoso",
		Email:      "budi@example.com",
		Phone:      "+628123456789",
		School:     "SMA 1",
		Motivation: "learn to code",
		Amount:     decimal.NewFromInt(250000),
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	t.Run("persists the order with the issued token", func(t *testing.T) {
		orderRepo := new(MockClassOrderRepository)
		tokens := new(MockTokenIssuer)
		tokens.On("CreateTransactionToken", mock.Anything, mock.MatchedBy(func(req gateway.TokenRequest) bool {
			return req.GrossAmount == 250000 && req.FullName == "Budi Santoso"
		})).Return("snap-token", nil)
		orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ClassOrder")).Return(nil)

		svc := NewOrderService(orderRepo, tokens)
		token, order, err := svc.CreateOrder(context.Background(), sampleOrderInput())

		assert.NoError(t, err)
		assert.Equal(t, "snap-token", token)
		assert.Equal(t, "snap-token", order.TransactionToken)
		assert.Equal(t, "budi@example.com", order.Email)
		orderRepo.AssertExpectations(t)
	})

	t.Run("gateway failure persists nothing", func(t *testing.T) {
		orderRepo := new(MockClassOrderRepository)
		tokens := new(MockTokenIssuer)
		tokens.On("CreateTransactionToken", mock.Anything, mock.Anything).Return("", assert.AnError)

		svc := NewOrderService(orderRepo, tokens)
		token, order, err := svc.CreateOrder(context.Background(), sampleOrderInput())

		assert.Error(t, err)
		assert.Empty(t, token)
		assert.Nil(t, order)
		orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure surfaces after token issuance", func(t *testing.T) {
		orderRepo := new(MockClassOrderRepository)
		tokens := new(MockTokenIssuer)
		tokens.On("CreateTransactionToken", mock.Anything, mock.Anything).Return("snap-token", nil)
		orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.ClassOrder")).Return(assert.AnError)

		svc := NewOrderService(orderRepo, tokens)
		_, order, err := svc.CreateOrder(context.Background(), sampleOrderInput())

		assert.Error(t, err)
		assert.Nil(t, order)
	})
}

func TestOrderService_ListOrders(t *testing.T) {
	orderRepo := new(MockClassOrderRepository)
	tokens := new(MockTokenIssuer)
	orderRepo.On("List", mock.Anything).Return([]model.ClassOrder{
		{FullName: "Budi Santoso", TransactionToken: "tok-1"},
	}, nil)

	svc := NewOrderService(orderRepo, tokens)
	orders, err := svc.ListOrders(context.Background())

	assert.NoError(t, err)
	assert.Len(t, orders, 1)
}
