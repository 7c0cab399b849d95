package messaging

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jafarshop/storeconnect/internal/domain"
)

func orderWithAddress(addr string) domain.Order {
	return domain.Order{
		ID:              "order-1",
		OrderNumber:     "#1001",
		ShippingAddress: addr,
	}
}

func TestResolveSMSTargetExtractsPhone(t *testing.T) {
	got := ResolveSMSTarget(orderWithAddress("123 Main St, +1 555-123-4567"), "")
	assert.Equal(t, "+15551234567", got)
}

func TestResolveSMSTargetParenthesizedAreaCode(t *testing.T) {
	got := ResolveSMSTarget(orderWithAddress("42 Oak Ave, (555) 987-6543, Springfield"), "")
	assert.Equal(t, "5559876543", got)
}

func TestResolveSMSTargetFallback(t *testing.T) {
	got := ResolveSMSTarget(orderWithAddress("12 Short St"), "+49123456789")
	assert.Equal(t, "+49123456789", got)
}

func TestResolveSMSTargetNothingFound(t *testing.T) {
	got := ResolveSMSTarget(orderWithAddress("Main Street, Anytown"), "")
	assert.Equal(t, "", got, "empty result signals the send must be blocked")
}

func TestResolveSMSTargetIgnoresShortDigitRuns(t *testing.T) {
	// House number alone is too short to be a phone number
	got := ResolveSMSTarget(orderWithAddress("123 Elm St"), "fallback")
	assert.Equal(t, "fallback", got)
}
