package responses

// DashboardMetrics covers the current calendar month.
type DashboardMetrics struct {
	TotalAppointments     int64   `json:"totalAppointments"`
	PendingAppointments   int64   `json:"pendingAppointments"`
	CompletedAppointments int64   `json:"completedAppointments"`
	RejectedAppointments  int64   `json:"rejectedAppointments"`
	TotalEarnings         float64 `json:"totalEarnings"`
}

type WeeklyAppointmentCount struct {
	Week             string `json:"week"`
	AppointmentCount int64  `json:"appointmentCount"`
}

type Dashboard struct {
	Metrics            DashboardMetrics         `json:"metrics"`
	WeeklyAppointments []WeeklyAppointmentCount `json:"weeklyAppointments"`
}
