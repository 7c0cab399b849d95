package messaging

import (
	"regexp"
	"strings"

	"github.com/jafarshop/storeconnect/internal/domain"
)

// phonePattern matches an international-phone-like run: optional leading
// "+", then at least 7 digits/spaces/hyphens/parentheses.
var phonePattern = regexp.MustCompile(`\+?[0-9\s\-()]{7,}`)

var phoneStripper = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")

// ResolveSMSTarget extracts the first phone-like substring from the
// order's shipping address, stripped of spaces, hyphens and parentheses.
// Falls back to fallbackNumber when the address has none. An empty result
// means there is nowhere to send an SMS and the caller must block the send.
func ResolveSMSTarget(order domain.Order, fallbackNumber string) string {
	match := phonePattern.FindString(order.ShippingAddress)
	if match != "" {
		if number := phoneStripper.Replace(match); number != "" {
			return number
		}
	}
	return fallbackNumber
}
