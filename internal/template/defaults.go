package template

import (
	"fmt"

	"github.com/jafarshop/storeconnect/internal/domain"
)

const appName = "Store Connect"

// builtinDefaults holds the hand-written default templates. Statuses
// missing here get a generated disabled scaffold from DefaultTemplates.
var builtinDefaults = map[domain.OrderStatus]domain.MessageTemplate{
	domain.OrderStatusPending: {
		Status:  domain.OrderStatusPending,
		Subject: "Your Order {{orderNumber}} is Pending",
		Body: "Hi {{customerName}},\n\nThank you for your order! Your order #{{orderNumber}} is currently pending. " +
			"We will notify you once it's confirmed and processing.\n\nOrder Total: {{currency}} {{totalAmount}}\n\nThanks,\n" + appName + " Team",
		Enabled: true,
	},
	domain.OrderStatusProcessing: {
		Status:  domain.OrderStatusProcessing,
		Subject: "Your Order {{orderNumber}} is Being Processed",
		Body: "Hi {{customerName}},\n\nGreat news! We've received your order #{{orderNumber}}, and it's now being processed. " +
			"We'll let you know when it ships.\n\nThanks,\n" + appName + " Team",
		Enabled: true,
	},
	domain.OrderStatusShipped: {
		Status:  domain.OrderStatusShipped,
		Subject: "Your Order {{orderNumber}} Has Shipped!",
		Body: "Hi {{customerName}},\n\nYour order #{{orderNumber}} has shipped! If a tracking number is available, it is [Tracking Link/Number].\n" +
			"Expected delivery: [Date]\n\nThanks for shopping with us,\n" + appName + " Team",
		Enabled: true,
	},
	domain.OrderStatusDelivered: {
		Status:  domain.OrderStatusDelivered,
		Subject: "Your Order {{orderNumber}} Has Been Delivered/Completed",
		Body: "Hi {{customerName}},\n\nOur records show that your order #{{orderNumber}} has been delivered or completed. " +
			"We hope you enjoy your purchase!\n\nIf you have any questions, feel free to contact us.\n\nThanks,\n" + appName + " Team",
		Enabled: true,
	},
	domain.OrderStatusCancelled: {
		Status:  domain.OrderStatusCancelled,
		Subject: "Your Order {{orderNumber}} Has Been Cancelled",
		Body: "Hi {{customerName}},\n\nWe're writing to inform you that your order #{{orderNumber}} has been cancelled as requested or due to an issue. " +
			"If you have any questions, please contact our support team.\n\nThanks,\n" + appName + " Team",
		Enabled: true,
	},
	domain.OrderStatusOnHold: {
		Status:  domain.OrderStatusOnHold,
		Subject: "Your Order {{orderNumber}} is On Hold",
		Body: "Hi {{customerName}},\n\nYour order #{{orderNumber}} is currently on hold. This may be for verification or another reason. " +
			"We will update you shortly with more information or next steps.\n\nThanks,\n" + appName + " Team",
		Enabled: true,
	},
	domain.OrderStatusRefunded: {
		Status:  domain.OrderStatusRefunded,
		Subject: "A Refund Has Been Processed for Order {{orderNumber}}",
		Body: "Hi {{customerName}},\n\nWe've processed a refund related to your order #{{orderNumber}}. " +
			"The amount of {{currency}} {{totalAmount}} (or partial amount) should reflect in your account within a few business days.\n\nThanks,\n" + appName + " Team",
		Enabled: true,
	},
	domain.OrderStatusFailed: {
		Status:  domain.OrderStatusFailed,
		Subject: "Action Required: Issue with Your Order {{orderNumber}}",
		Body: "Hi {{customerName}},\n\nThere was an issue with processing your order #{{orderNumber}} (e.g., payment failed), and it has been marked as failed. " +
			"Please contact us or try placing your order again.\n\nThanks,\n" + appName + " Team",
		Enabled: true,
	},
}

// generatedDefault builds the disabled scaffold used for any status
// without a hand-written default template.
func generatedDefault(status domain.OrderStatus) domain.MessageTemplate {
	label := status.Label()
	return domain.MessageTemplate{
		Status:  status,
		Subject: fmt.Sprintf("Update for Order {{orderNumber}} - Status: %s", label),
		Body: fmt.Sprintf("Hi {{customerName}},\n\nYour order #{{orderNumber}} status has been updated to %s.\n\nThanks,\n%s Team",
			label, appName),
		Enabled: false,
	}
}

// DefaultTemplates returns a fresh copy of the built-in template set with
// one entry per declared order status.
func DefaultTemplates() domain.TemplateSet {
	set := make(domain.TemplateSet, len(domain.AllOrderStatuses))
	for _, status := range domain.AllOrderStatuses {
		if tmpl, ok := builtinDefaults[status]; ok {
			set[status] = tmpl
		} else {
			set[status] = generatedDefault(status)
		}
	}
	return set
}
