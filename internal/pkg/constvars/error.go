package constvars

// Validation messages, mapped by validator tag.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"numeric":  "must be a number",
	"datetime": "must be a valid date",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotResourceOwner              = "this appointment is not assigned to you"
	ErrClientEmployeeNotFound              = "employee not found"
	ErrClientLaboratoryNotFound            = "laboratory not found"
	ErrClientAppointmentNotFound           = "appointment not found"
	ErrClientTransactionNotFound           = "transaction not found"
	ErrClientNotificationNotFound          = "notification not found"
	ErrClientInvalidAccountNumber          = "account number must be a 17 to 34 digit string"
	ErrClientInvalidStatusTransition       = "appointment already completed or rejected"
	ErrClientStatusChangeNeedsAssignee     = "assign an employee before changing the status"
	ErrClientAppointmentExpired            = "appointment time has already passed"
	ErrClientTrackingIDAlreadySet          = "tracking id has already been uploaded"
	ErrClientDateOfBirthInFuture           = "date of birth cannot be in the future"
)

// Error messages for developers
const (
	ErrDevValidationFailed           = "validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON"
	ErrDevCannotParseDate            = "cannot parse date value"
	ErrDevInvalidObjectID            = "value is not a valid object id"
	ErrDevDocumentNotFound           = "document not found"
	ErrDevUnauthorized               = "unauthorized access"
	ErrDevInvalidRoleType            = "invalid role type"
	ErrDevInvalidAccountNumber       = "account number failed the 17-34 digit rule"
	ErrDevInvalidStatusTransition    = "status transition out of a terminal state"
	ErrDevStatusChangeNeedsAssignee  = "status change attempted without an assigned employee"
	ErrDevAppointmentExpired         = "appointment date time is in the past"
	ErrDevTrackingIDAlreadySet       = "tracking id is write-once and already set"
	ErrDevNotificationPersistFailed  = "failed to persist notification record"
	ErrDevTransactionCreateFailed    = "failed to create companion transaction"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded"
	ErrDevAuthSigningMethod          = "unexpected signing method"
	ErrDevAuthTokenMissing           = "token missing"
	ErrDevAuthTokenInvalidOrExpired  = "token invalid or expired"
	ErrDevMongoDBFailedToInsertDoc   = "mongodb failed to insert document"
	ErrDevMongoDBFailedToFindDoc     = "mongodb failed to find document"
	ErrDevMongoDBFailedToUpdateDoc   = "mongodb failed to update document"
	ErrDevMongoDBFailedToDeleteDoc   = "mongodb failed to delete document"
	ErrDevMongoDBFailedToCountDocs   = "mongodb failed to count documents"
	ErrDevMongoDBFailedToAggregate   = "mongodb failed to run aggregation"
	ErrDevMinioFailedToCreateObject  = "minio failed to store object in bucket %s"
	ErrDevMailerFailedToPublish      = "failed to publish email payload to queue"
	ErrDevSMTPFailedToSend           = "smtp server %s failed to send email"
	ErrDevSNSFailedToPublish         = "sns publish to device endpoint failed"
	ErrDevRedisFailedToGet           = "redis failed to get key"
	ErrDevRedisFailedToSet           = "redis failed to set key"
)
