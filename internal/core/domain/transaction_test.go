package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stocklane/inventory_backend/internal/core/domain"
)

func TestTransactionKindValid(t *testing.T) {
	assert.True(t, domain.Purchase.Valid())
	assert.True(t, domain.Sale.Valid())
	assert.False(t, domain.TransactionKind("refund").Valid())
	assert.False(t, domain.TransactionKind("").Valid())
}

func TestTransactionKindDocPrefix(t *testing.T) {
	assert.Equal(t, "PUR-", domain.Purchase.DocPrefix())
	assert.Equal(t, "SAL-", domain.Sale.DocPrefix())
}

func TestQuantityDelta(t *testing.T) {
	line := domain.TransactionLine{
		ItemID:    "item-1",
		Name:      "Widget",
		UnitPrice: decimal.NewFromFloat(5.0),
		Quantity:  3,
	}

	assert.Equal(t, int64(3), line.QuantityDelta(domain.Purchase))
	assert.Equal(t, int64(-3), line.QuantityDelta(domain.Sale))
}
