package constvars

// Structured logging field keys.
const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingRecipientKey  = "recipient"
	LoggingChannelKey    = "channel"
	LoggingRoleKey       = "role"
	LoggingAppointmentID = "appointment_id"
	LoggingEmployeeIDKey = "employee_id"
)

const (
	NotificationChannelPush  = "push"
	NotificationChannelEmail = "email"
)
