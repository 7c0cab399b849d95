package ai

import "fmt"

// System instructions for the AI-assist features. Each feature asks the
// model for plain JSON so responses can be parsed without guesswork.
const (
	instructionCopywriter = "You are an expert e-commerce copywriter. " +
		"You write short, clear customer notification messages for order status updates. " +
		"Respond with a JSON object of the shape {\"subject\": string, \"body\": string} and nothing else."

	instructionCritique = "You are an expert reviewer of e-commerce customer messaging. " +
		"Respond with a JSON object of the shape {\"score\": string, \"suggestions\": [string]} and nothing else."

	instructionToneAdjuster = "You rewrite e-commerce customer messages in a requested tone without changing their meaning. " +
		"Respond with a JSON object of the shape {\"subject\": string, \"body\": string} and nothing else."

	instructionHelpChat = "You are a helpful assistant inside a storefront operations dashboard. " +
		"You answer questions about order management, message templates and the {{placeholder}} tokens they support."
)

func draftTemplatePrompt(statusLabel, intent string) string {
	return fmt.Sprintf(`Generate a message subject and body for an order status update: '%s'.
User's intent for this message: %q.
Include relevant placeholders like {{customerName}}, {{orderNumber}}, etc., where appropriate.`, statusLabel, intent)
}

func critiquePrompt(subject, body string) string {
	return fmt.Sprintf(`Analyze this customer message for e-commerce.
Provide a qualitative score (e.g., "Good", "Fair", "Needs Improvement") and 1-2 brief, actionable suggestions for improvement regarding clarity, call to action, or tone.
Message Subject: %s
Message Body:
%s`, subject, body)
}

func toneAdjustPrompt(subject, body, tone string) string {
	return fmt.Sprintf(`Rewrite the following message to be more %q:
Current Subject: %s
Current Body:
%s

Maintain the core message and any placeholders like {{customerName}} or {{orderNumber}}.`, tone, subject, body)
}
