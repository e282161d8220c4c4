package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "requestID"
	CONTEXT_ACTOR_KEY      ContextKey = "actor"
)

// Actor roles, one per directory collection.
const (
	RoleAdmin      = "admin"
	RoleEmployee   = "employee"
	RoleLaboratory = "laboratory"
)

const (
	AppointmentPageSize = 15

	AppDefaultRequestTimeout = 10 // seconds

	DashboardCacheTTLSeconds = 60
)

const (
	SortOrderAscending  = "asc"
	SortOrderDescending = "desc"
	SortFieldDefault    = "createdAt"
)

// Collation applied to listing sorts so string ordering is locale aware
// and case insensitive.
const (
	CollationLocale   = "en"
	CollationStrength = 1
)

const (
	MongoCollectionAppointments  = "appointments"
	MongoCollectionTransactions  = "transactions"
	MongoCollectionNotifications = "notifications"
	MongoCollectionEmployees     = "employees"
	MongoCollectionLaboratories  = "laboratories"
	MongoCollectionAdmins        = "admins"
)

const (
	StorageDocumentPrefix   = "document"
	StorageTrackingIDPrefix = "tracking"
)
