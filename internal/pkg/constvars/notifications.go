package constvars

// Fan-out titles and body formats. Kept in one place so the persisted
// notification, the push payload, and the email always carry the same text.
const (
	NotificationTitleAppointmentCreated   = "New Appointment Created"
	NotificationTitleNewAppointment       = "New Appointment"
	NotificationTitleAssignmentRequired   = "Staff Assignment Required"
	NotificationTitleEmployeeAssigned     = "Employee Assigned"
	NotificationTitleAppointmentAssigned  = "New Appointment Assigned"
	NotificationTitleStatusUpdated        = "Appointment Status Updated"
	NotificationTitleTrackingIDUploaded   = "Tracking ID Uploaded"
	NotificationTitlePaymentStatusUpdated = "Payment Status Updated"
	NotificationTitleReassigned           = "Appointment Reassigned"
	NotificationTitleReassignmentRequired = "Manual Reassignment Required"

	NotificationBodyAppointmentCreated  = "Appointment for %s has been added to the system"
	NotificationBodyPatientCreated      = "Your appointment has been created at %s"
	NotificationBodyEmployeeCreated     = "A new patient has been assigned to you for an appointment"
	NotificationBodyAssignmentRequired  = "Laboratory %s created an appointment for %s; please assign an employee"
	NotificationBodyEmployeeAssigned    = "%s has been assigned to the appointment for %s"
	NotificationBodyAppointmentAssigned = "You have been assigned to the appointment for %s"
	NotificationBodyStatusUpdated       = "Appointment for %s is now %s"
	NotificationBodyTrackingIDUploaded  = "Tracking id for the appointment of %s has been uploaded"
	NotificationBodyPaymentStatus       = "Payment for the appointment of %s is now %s"
	NotificationBodyReassigned          = "Appointment for %s has been reassigned to %s"
	NotificationBodyReassignRequired    = "Appointment for %s has no assignee; manual reassignment is required"
)

const (
	EmailHeaderFormat = "To: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s"
)
