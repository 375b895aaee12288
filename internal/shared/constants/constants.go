package constants

// Database table names
const (
	TableAccounts            = "accounts"
	TableSubscriptions       = "subscriptions"
	TablePlans               = "plans"
	TableContents            = "contents"
	TableProfileRestrictions = "profile_restrictions"
	TableParentalOverrides   = "parental_overrides"
	TableDeviceSessions      = "device_sessions"
	TableAdmissionAudits     = "admission_audits"
)
