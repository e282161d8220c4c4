package constvars

// Client-facing success messages.
const (
	CreateAppointmentSuccessMessage   = "Appointment created successfully"
	GetAppointmentSuccessMessage      = "Appointment retrieved successfully"
	ListAppointmentsSuccessMessage    = "Appointments retrieved successfully"
	TodayAppointmentsSuccessMessage   = "Today's appointments retrieved successfully"
	AssignEmployeeSuccessMessage      = "Employee assigned successfully"
	UpdateAppointmentSuccessMessage   = "Appointment status updated successfully"
	UploadTrackingIDSuccessMessage    = "Tracking ID uploaded successfully"
	ReassignAppointmentSuccessMessage = "Appointments reassigned successfully"

	UpdateTransactionSuccessMessage = "Transaction status updated successfully"
	MonthlyRevenueSuccessMessage    = "Monthly revenue retrieved successfully"

	ListNotificationsSuccessMessage   = "Notifications retrieved successfully"
	ReadNotificationSuccessMessage    = "Notification marked as read"
	DeleteNotificationsSuccessMessage = "Notifications cleared successfully"
	ToggleNotificationsSuccessMessage = "Notification preference updated successfully"

	GetDashboardSuccessMessage = "Dashboard retrieved successfully"
)
