// Package data holds the built-in FAQ corpus the retrieval index is built
// from.
package data

type FaqEntry struct {
	Id       string
	Category string
	Question string
	Answer   string
}

var FaqEntries = []FaqEntry{
	// Account & Registration
	{
		Id:       "acc-001",
		Category: "Account & Registration",
		Question: "How do I create a new account?",
		Answer:   "Open the app or website, select Sign Up, enter your email, create a password, and verify your email via the code sent to your inbox.",
	},
	{
		Id:       "acc-002",
		Category: "Account & Registration",
		Question: "I didn't receive a verification email. What should I do?",
		Answer:   "Check spam/promotions folders, add our domain to your safe list, and request a new code from the login screen.",
	},
	{
		Id:       "acc-003",
		Category: "Account & Registration",
		Question: "Can I change my email after registering?",
		Answer:   "Yes. Go to Settings > Account > Email, enter the new email, and confirm it with the verification link.",
	},
	{
		Id:       "acc-004",
		Category: "Account & Registration",
		Question: "How do I delete my account?",
		Answer:   "Navigate to Settings > Privacy > Delete Account. You'll receive a confirmation email. Deletion is permanent after 7 days.",
	},

	// Payments & Transactions
	{
		Id:       "pay-001",
		Category: "Payments & Transactions",
		Question: "Which payment methods are supported?",
		Answer:   "We accept major credit/debit cards, Apple Pay/Google Pay (where available), and selected local wallets.",
	},
	{
		Id:       "pay-002",
		Category: "Payments & Transactions",
		Question: "My card was charged twice. How do I get a refund?",
		Answer:   "Open a ticket in Help > Billing. Duplicate charges are auto-reversed within 3-5 business days after review.",
	},
	{
		Id:       "pay-003",
		Category: "Payments & Transactions",
		Question: "How can I download my invoices?",
		Answer:   "Go to Settings > Billing > Invoices and select the month. You can download PDFs for your records.",
	},
	{
		Id:       "pay-004",
		Category: "Payments & Transactions",
		Question: "The payment failed. What should I try?",
		Answer:   "Verify card details, ensure sufficient funds, enable international/online transactions, and try a different method if needed.",
	},

	// Security & Fraud Prevention
	{
		Id:       "sec-001",
		Category: "Security & Fraud Prevention",
		Question: "How do I enable two-factor authentication (2FA)?",
		Answer:   "Go to Settings > Security > Two-Factor and pair an authenticator app or enable SMS codes.",
	},
	{
		Id:       "sec-002",
		Category: "Security & Fraud Prevention",
		Question: "I suspect unauthorized access. What should I do?",
		Answer:   "Reset your password immediately, revoke active sessions (Settings > Security > Sessions), and enable 2FA.",
	},
	{
		Id:       "sec-003",
		Category: "Security & Fraud Prevention",
		Question: "What is your policy on phishing attempts?",
		Answer:   "We never ask for passwords or 2FA codes. Report suspicious emails via Help > Report Phishing with full headers.",
	},
	{
		Id:       "sec-004",
		Category: "Security & Fraud Prevention",
		Question: "How are my data and payments protected?",
		Answer:   "We use TLS 1.2+, encryption at rest, tokenized payments, and periodic third-party security audits.",
	},

	// Regulations & Compliance
	{
		Id:       "reg-001",
		Category: "Regulations & Compliance",
		Question: "How do you comply with GDPR/CCPA requests?",
		Answer:   "Users can request data export/deletion via Settings > Privacy. We process verified requests within statutory timelines.",
	},
	{
		Id:       "reg-002",
		Category: "Regulations & Compliance",
		Question: "Where are your data centers located?",
		Answer:   "We use regional cloud providers with data residency options. See Settings > Privacy > Data Residency for regions.",
	},
	{
		Id:       "reg-003",
		Category: "Regulations & Compliance",
		Question: "How long do you retain personal data?",
		Answer:   "We keep data only as long as necessary for service and legal obligations. Retention varies by category and jurisdiction.",
	},
	{
		Id:       "reg-004",
		Category: "Regulations & Compliance",
		Question: "How can I obtain a Data Processing Agreement (DPA)?",
		Answer:   "Business customers can request a signed DPA via Help > Legal > DPA Request.",
	},

	// Technical Support & Troubleshooting
	{
		Id:       "tech-001",
		Category: "Technical Support & Troubleshooting",
		Question: "The app won't load. What are the first steps?",
		Answer:   "Force-quit, clear cache, check connectivity/VPN, and ensure you're on the latest version.",
	},
	{
		Id:       "tech-002",
		Category: "Technical Support & Troubleshooting",
		Question: "I'm getting frequent timeouts.",
		Answer:   "Check network stability, disable aggressive firewalls, and try switching from mobile data to Wi-Fi (or vice-versa).",
	},
	{
		Id:       "tech-003",
		Category: "Technical Support & Troubleshooting",
		Question: "How do I report a bug with logs?",
		Answer:   "Go to Help > Report a Bug and enable diagnostic logs. Attach screenshots and exact steps to reproduce.",
	},
	{
		Id:       "tech-004",
		Category: "Technical Support & Troubleshooting",
		Question: "Push notifications aren't arriving.",
		Answer:   "Enable notifications for the app in OS settings, disable battery optimization, and ensure you're logged in on one device.",
	},
}
