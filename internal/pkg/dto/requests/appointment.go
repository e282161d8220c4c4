package requests

// DocumentPayload is one base64-encoded file attached to a create or
// tracking-id request; the usecase stores it and keeps only the object ref.
type DocumentPayload struct {
	FileName string `json:"fileName" validate:"required"`
	Data     string `json:"data" validate:"required,base64"`
}

type CreateAppointment struct {
	PatientName         string            `json:"patientName" validate:"required"`
	Email               string            `json:"email" validate:"required,email"`
	ContactNumber       string            `json:"contactNumber" validate:"required"`
	Address             string            `json:"address"`
	DateOfBirth         string            `json:"dateOfBirth"`
	Gender              string            `json:"gender"`
	Age                 int               `json:"age" validate:"omitempty,gte=0"`
	EmployeeID          string            `json:"employeeId"`
	LaboratoryID        string            `json:"laboratoryId"`
	LaboratoryName      string            `json:"laboratoryName"`
	Fees                float64           `json:"fees" validate:"gte=0"`
	AccountNumber       string            `json:"accountNumber"`
	PriorityLevel       string            `json:"priorityLevel" validate:"omitempty,oneof=Urgent High Medium Low"`
	AppointmentDateTime string            `json:"appointmentDateTime" validate:"required"`
	SpecialInstructions string            `json:"specialInstructions"`
	Documents           []DocumentPayload `json:"documents" validate:"omitempty,dive"`
}

type AssignEmployee struct {
	EmployeeID string `json:"employeeId" validate:"required"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=Pending Completed Rejected"`
}

type UploadTrackingID struct {
	FileName string `json:"fileName" validate:"required"`
	Image    string `json:"image" validate:"required,base64"`
}

// ListAppointments carries the raw query parameters; scope narrowing by
// role happens in the usecase.
type ListAppointments struct {
	Page          int
	SortField     string
	SortOrder     string
	Status        string
	PriorityLevel string
	EmployeeID    string
	DateAndTime   string
	HasTrackingID *bool
	IsAssigned    *bool
	Archived      bool
}
