package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentMethod_TxnPrefix(t *testing.T) {
	assert.Equal(t, "BK", MethodBkash.TxnPrefix())
	assert.Equal(t, "NG", MethodNagad.TxnPrefix())
	assert.Equal(t, "UP", MethodUpay.TxnPrefix())
}

func TestPaymentMethod_DisplayName(t *testing.T) {
	assert.Equal(t, "bKash", MethodBkash.DisplayName())
	assert.Equal(t, "Nagad", MethodNagad.DisplayName())
	assert.Equal(t, "Upay", MethodUpay.DisplayName())
}

func TestParsePaymentMethod(t *testing.T) {
	m, ok := ParsePaymentMethod("bkash")
	assert.True(t, ok)
	assert.Equal(t, MethodBkash, m)

	_, ok = ParsePaymentMethod("Bkash")
	assert.False(t, ok)

	_, ok = ParsePaymentMethod("paypal")
	assert.False(t, ok)
}
