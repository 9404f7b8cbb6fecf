package constants

// Seq API paths used by the operator.
const (
	APIPathRoot              = "/api"
	APIPathLogin             = "/api/users/login"
	APIPathCurrentUser       = "/api/users/current"
	APIPathUsers             = "/api/users"
	APIPathAPIKeys           = "/api/apikeys"
	APIPathAlerts            = "/api/alerts"
	APIPathSignals           = "/api/signals"
	APIPathRetentionPolicies = "/api/retentionpolicies"
	APIPathSettings          = "/api/settings"

	// HeaderAPIKey carries an API key token on every request.
	HeaderAPIKey = "X-Seq-ApiKey" // #nosec G101 -- This is a header name, not a credential
)

// Seq setting names managed on a SeqInstance.
const (
	SettingInstanceTitle                 = "instance-title"
	SettingRequireAPIKeyForWritingEvents = "require-api-key-for-writing-events"
	SettingMinimumPasswordLength         = "minimum-password-length"
	SettingThemeStyles                   = "theme-styles"
	SettingIsAuthenticationEnabled       = "is-authentication-enabled"
)

// InstanceObjectID is the fixed binding ID of a SeqInstance: the server itself.
const InstanceObjectID = "server"
