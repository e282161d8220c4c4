package appointments

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/dto/requests"
	"lablink-service/internal/pkg/dto/responses"
	"lablink-service/internal/pkg/exceptions"
	"lablink-service/internal/pkg/utils"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository contracts.AppointmentRepository
	TransactionRepository contracts.TransactionRepository
	DirectoryRepository   contracts.DirectoryRepository
	FanoutService         contracts.FanoutService
	Storage               contracts.Storage
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentRepository contracts.AppointmentRepository,
	transactionRepository contracts.TransactionRepository,
	directoryRepository contracts.DirectoryRepository,
	fanoutService contracts.FanoutService,
	storage contracts.Storage,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentRepository,
		TransactionRepository: transactionRepository,
		DirectoryRepository:   directoryRepository,
		FanoutService:         fanoutService,
		Storage:               storage,
		Log:                   logger,
	}
}

var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseRequestTime(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err == nil {
			return parsed.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// Create books a new appointment and its one-to-one billing transaction.
// Validation and reference checks run before any write; once the
// appointment document exists it is never rolled back, even when the
// transaction write or the fan-out fails.
func (uc *appointmentUsecase) Create(ctx context.Context, actor *models.Actor, request *requests.CreateAppointment) (*models.Appointment, error) {
	if actor.Role != models.RoleAdmin && actor.Role != models.RoleLaboratory {
		return nil, exceptions.ErrNotAuthorized(errors.New("only the administrator or a laboratory books appointments"))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointmentTime, err := parseRequestTime(request.AppointmentDateTime)
	if err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	var dateOfBirth *time.Time
	if request.DateOfBirth != "" {
		parsed, err := parseRequestTime(request.DateOfBirth)
		if err != nil {
			return nil, exceptions.ErrCannotParseDate(err)
		}
		if parsed.After(time.Now()) {
			return nil, exceptions.ErrDateOfBirthInFuture(errors.New("date of birth is in the future"))
		}
		dateOfBirth = &parsed
	}

	if request.Fees > 0 && !utils.ValidAccountNumber(request.AccountNumber) {
		return nil, exceptions.ErrInvalidAccountNumber(errors.New("account number must be 17-34 digits when fees are charged"))
	}

	priority := models.PriorityLevel(request.PriorityLevel)
	if priority == "" {
		priority = models.PriorityMedium
	}

	laboratoryName := request.LaboratoryName
	var laboratoryID *primitive.ObjectID
	switch actor.Role {
	case models.RoleLaboratory:
		laboratoryName = actor.FullName
		id := actor.ID
		laboratoryID = &id
	case models.RoleAdmin:
		if request.LaboratoryID != "" {
			laboratory, err := uc.DirectoryRepository.FindLaboratoryByID(ctx, request.LaboratoryID)
			if err != nil {
				return nil, err
			}
			if laboratory == nil {
				return nil, exceptions.ErrLaboratoryNotFound(errors.New("laboratory " + request.LaboratoryID + " does not exist"))
			}
			laboratoryName = laboratory.FullName
			laboratoryID = &laboratory.ID
		}
	}
	if laboratoryName == "" {
		return nil, exceptions.ErrInputValidation(errors.New("laboratory name or id is required"))
	}

	// Only the admin may pre-assign staff at creation.
	var employee *models.Employee
	var employeeID *primitive.ObjectID
	if request.EmployeeID != "" && actor.Role == models.RoleAdmin {
		employee, err = uc.DirectoryRepository.FindEmployeeByID(ctx, request.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil {
			return nil, exceptions.ErrEmployeeNotFound(errors.New("employee " + request.EmployeeID + " does not exist"))
		}
		employeeID = &employee.ID
	}

	documents, err := uc.storeDocuments(ctx, request.Documents)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	appointment := &models.Appointment{
		PatientName:         request.PatientName,
		Email:               request.Email,
		ContactNumber:       request.ContactNumber,
		Address:             request.Address,
		DateOfBirth:         dateOfBirth,
		Gender:              request.Gender,
		Age:                 request.Age,
		CreatedBy:           actor.Role,
		LaboratoryName:      laboratoryName,
		LaboratoryID:        laboratoryID,
		EmployeeID:          employeeID,
		PriorityLevel:       priority,
		AppointmentDateTime: appointmentTime,
		Status:              models.AppointmentStatusPending,
		Fees:                request.Fees,
		AccountNumber:       request.AccountNumber,
		Documents:           documents,
		SpecialInstructions: request.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	appointment, err = uc.AppointmentRepository.Insert(ctx, appointment)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		AppointmentID: appointment.ID,
		LaboratoryID:  laboratoryID,
		AccountNumber: request.AccountNumber,
		PatientName:   models.CapitalizeName(request.PatientName),
		DateAndTime:   appointmentTime,
		Amount:        request.Fees,
		Status:        models.TransactionStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := uc.TransactionRepository.Insert(ctx, transaction); err != nil {
		// The appointment stays; the caller learns the ledger write failed.
		return nil, exceptions.ErrTransactionCreate(err)
	}

	uc.notifyCreated(ctx, actor, appointment, employee)
	return appointment, nil
}

func (uc *appointmentUsecase) storeDocuments(ctx context.Context, payloads []requests.DocumentPayload) ([]string, error) {
	var refs []string
	for _, payload := range payloads {
		data, err := utils.DecodeBase64Payload(payload.Data)
		if err != nil {
			return nil, exceptions.ErrInputValidation(err)
		}
		objectName := utils.GenerateObjectName(constvars.StorageDocumentPrefix, payload.FileName)
		ref, err := uc.Storage.UploadObject(ctx, bytes.NewReader(data), int64(len(data)), objectName, constvars.MIMEOctetStream)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (uc *appointmentUsecase) notifyCreated(ctx context.Context, actor *models.Actor, appointment *models.Appointment, employee *models.Employee) {
	entries := []contracts.NotificationEntry{
		{
			Recipient: actor,
			Title:     constvars.NotificationTitleAppointmentCreated,
			Body:      fmt.Sprintf(constvars.NotificationBodyAppointmentCreated, appointment.PatientName),
		},
		{
			// Patients are not directory backed; email only.
			EmailAddress: appointment.Email,
			Title:        constvars.NotificationTitleNewAppointment,
			Body:         fmt.Sprintf(constvars.NotificationBodyPatientCreated, appointment.LaboratoryName),
		},
	}
	if employee != nil {
		entries = append(entries, contracts.NotificationEntry{
			Recipient: employee.Actor(),
			Title:     constvars.NotificationTitleNewAppointment,
			Body:      constvars.NotificationBodyEmployeeCreated,
		})
	}
	if actor.Role == models.RoleLaboratory {
		admin, err := uc.DirectoryRepository.FindAdministrator(ctx)
		if err == nil && admin != nil {
			entries = append(entries, contracts.NotificationEntry{
				Recipient: admin.Actor(),
				Title:     constvars.NotificationTitleAssignmentRequired,
				Body:      fmt.Sprintf(constvars.NotificationBodyAssignmentRequired, appointment.LaboratoryName, appointment.PatientName),
			})
		}
	}

	uc.notify(ctx, entries)
}

func (uc *appointmentUsecase) notify(ctx context.Context, entries []contracts.NotificationEntry) {
	err := uc.FanoutService.Notify(ctx, &contracts.NotificationEvent{
		Type:    models.NotificationTypeAppointment,
		Entries: entries,
	})
	if err != nil {
		// The business mutation already committed; fan-out failure is a
		// warning, not a rollback.
		uc.Log.Warn("appointment fan-out incomplete", zap.Error(err))
	}
}

func (uc *appointmentUsecase) FindByID(ctx context.Context, actor *models.Actor, appointmentID string) (*models.Appointment, error) {
	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(errors.New("appointment " + appointmentID + " does not exist"))
	}
	if err := uc.checkScope(actor, appointment); err != nil {
		return nil, err
	}
	uc.populate(ctx, appointment)
	return appointment, nil
}

func (uc *appointmentUsecase) checkScope(actor *models.Actor, appointment *models.Appointment) error {
	switch actor.Role {
	case models.RoleAdmin:
		return nil
	case models.RoleEmployee:
		if !appointment.AssignedTo(actor.ID) {
			return exceptions.ErrNotResourceOwner(errors.New("appointment is not assigned to this employee"))
		}
	case models.RoleLaboratory:
		owns := appointment.LaboratoryID != nil && *appointment.LaboratoryID == actor.ID
		if !owns && !strings.EqualFold(appointment.LaboratoryName, actor.FullName) {
			return exceptions.ErrNotResourceOwner(errors.New("appointment belongs to another laboratory"))
		}
	}
	return nil
}

// populate attaches employee and laboratory records for notification and
// response text. Lookup failures degrade to an unpopulated field.
func (uc *appointmentUsecase) populate(ctx context.Context, appointment *models.Appointment) {
	if appointment.EmployeeID != nil {
		employee, err := uc.DirectoryRepository.FindEmployeeByID(ctx, appointment.EmployeeID.Hex())
		if err == nil {
			appointment.Employee = employee
		}
	}
	if appointment.LaboratoryID != nil {
		laboratory, err := uc.DirectoryRepository.FindLaboratoryByID(ctx, appointment.LaboratoryID.Hex())
		if err == nil {
			appointment.Laboratory = laboratory
		}
	}
}

func (uc *appointmentUsecase) List(ctx context.Context, actor *models.Actor, request *requests.ListAppointments) ([]models.Appointment, *responses.Pagination, error) {
	page := request.Page
	if page < 1 {
		page = 1
	}

	query := &contracts.AppointmentQuery{
		SortField:     request.SortField,
		SortAscending: request.SortOrder == constvars.SortOrderAscending,
		Skip:          int64(page-1) * constvars.AppointmentPageSize,
		Limit:         constvars.AppointmentPageSize,
		HasTrackingID: request.HasTrackingID,
		IsAssigned:    request.IsAssigned,
	}

	if request.Archived {
		// Terminal-status view; an explicit terminal filter narrows it.
		query.Statuses = []models.AppointmentStatus{models.AppointmentStatusCompleted, models.AppointmentStatusRejected}
		if request.Status != "" {
			status := models.AppointmentStatus(request.Status)
			if !status.Terminal() {
				return nil, nil, exceptions.ErrInputValidation(errors.New("archived listing accepts only terminal statuses"))
			}
			query.Statuses = []models.AppointmentStatus{status}
		}
	} else if request.Status != "" {
		status := models.AppointmentStatus(request.Status)
		if !status.Valid() {
			return nil, nil, exceptions.ErrInputValidation(errors.New("unknown status " + request.Status))
		}
		query.Statuses = []models.AppointmentStatus{status}
	}

	if request.PriorityLevel != "" {
		priority := models.PriorityLevel(request.PriorityLevel)
		if !priority.Valid() {
			return nil, nil, exceptions.ErrInputValidation(errors.New("unknown priority level " + request.PriorityLevel))
		}
		query.PriorityLevel = priority
	}

	if request.DateAndTime != "" {
		parsed, err := parseRequestTime(request.DateAndTime)
		if err != nil {
			return nil, nil, exceptions.ErrCannotParseDate(err)
		}
		from, to := utils.AppointmentDateBounds(parsed)
		query.DateFrom = &from
		query.DateTo = to
	}

	// Role scoping overrides any caller-supplied employee filter.
	switch actor.Role {
	case models.RoleEmployee:
		id := actor.ID
		query.EmployeeID = &id
	case models.RoleLaboratory:
		query.LaboratoryName = actor.FullName
	case models.RoleAdmin:
		if request.EmployeeID != "" {
			employeeID, err := primitive.ObjectIDFromHex(request.EmployeeID)
			if err != nil {
				return nil, nil, exceptions.ErrInvalidObjectID(err)
			}
			query.EmployeeID = &employeeID
		}
	}

	appointments, err := uc.AppointmentRepository.Find(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	total, err := uc.AppointmentRepository.Count(ctx, query)
	if err != nil {
		return nil, nil, err
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}

	pagination := utils.BuildPaginationResponse(total, page, constvars.AppointmentPageSize)
	return appointments, pagination, nil
}

// TodayForEmployee lists the caller's appointments for the current UTC
// day, most urgent first, then by time.
func (uc *appointmentUsecase) TodayForEmployee(ctx context.Context, actor *models.Actor) ([]models.Appointment, error) {
	if actor.Role != models.RoleEmployee {
		return nil, exceptions.ErrNotAuthorized(errors.New("today view is employee only"))
	}

	dayStart, dayEnd := utils.DayBounds(time.Now().UTC())
	id := actor.ID
	appointments, err := uc.AppointmentRepository.Find(ctx, &contracts.AppointmentQuery{
		EmployeeID:    &id,
		DateFrom:      &dayStart,
		DateTo:        &dayEnd,
		SortField:     "appointmentDateTime",
		SortAscending: true,
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		if appointments[i].PriorityLevel.Rank() != appointments[j].PriorityLevel.Rank() {
			return appointments[i].PriorityLevel.Rank() < appointments[j].PriorityLevel.Rank()
		}
		return appointments[i].AppointmentDateTime.Before(appointments[j].AppointmentDateTime)
	})
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	return appointments, nil
}

func (uc *appointmentUsecase) AssignEmployee(ctx context.Context, actor *models.Actor, appointmentID string, request *requests.AssignEmployee) (*models.Appointment, error) {
	if actor.Role != models.RoleAdmin {
		return nil, exceptions.ErrNotAuthorized(errors.New("only the administrator assigns staff"))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(errors.New("appointment " + appointmentID + " does not exist"))
	}
	if appointment.AppointmentDateTime.Before(time.Now()) {
		return nil, exceptions.ErrAppointmentExpired(errors.New("appointment time has already passed"))
	}

	employee, err := uc.DirectoryRepository.FindEmployeeByID(ctx, request.EmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, exceptions.ErrEmployeeNotFound(errors.New("employee " + request.EmployeeID + " does not exist"))
	}

	updated, err := uc.AppointmentRepository.UpdateEmployee(ctx, appointment.ID, &employee.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrAppointmentNotFound(errors.New("appointment disappeared during assignment"))
	}
	updated.Employee = employee

	entries := []contracts.NotificationEntry{
		{
			Recipient: actor,
			Title:     constvars.NotificationTitleEmployeeAssigned,
			Body:      fmt.Sprintf(constvars.NotificationBodyEmployeeAssigned, employee.FullName, updated.PatientName),
		},
		{
			Recipient: employee.Actor(),
			Title:     constvars.NotificationTitleAppointmentAssigned,
			Body:      fmt.Sprintf(constvars.NotificationBodyAppointmentAssigned, updated.PatientName),
		},
	}
	if updated.LaboratoryID != nil {
		laboratory, err := uc.DirectoryRepository.FindLaboratoryByID(ctx, updated.LaboratoryID.Hex())
		if err == nil && laboratory != nil {
			updated.Laboratory = laboratory
			entries = append(entries, contracts.NotificationEntry{
				Recipient: laboratory.Actor(),
				Title:     constvars.NotificationTitleEmployeeAssigned,
				Body:      fmt.Sprintf(constvars.NotificationBodyEmployeeAssigned, employee.FullName, updated.PatientName),
			})
		}
	}
	uc.notify(ctx, entries)

	return updated, nil
}

// UpdateStatus drives the state machine: Pending is the sole initial
// state, Completed and Rejected are terminal. Re-setting the same terminal
// value is an idempotent no-op; any other move off a terminal state is an
// invalid transition. Leaving Pending requires an assignee and happens
// through a conditional update so two racing transitions cannot both win.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, actor *models.Actor, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	if actor.Role != models.RoleAdmin {
		return nil, exceptions.ErrNotAuthorized(errors.New("only the administrator updates appointment status"))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	next := models.AppointmentStatus(request.Status)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(errors.New("appointment " + appointmentID + " does not exist"))
	}

	if appointment.Status.Terminal() {
		if next == appointment.Status {
			uc.populate(ctx, appointment)
			return appointment, nil
		}
		return nil, exceptions.ErrInvalidStatusTransition(fmt.Errorf("cannot move %s appointment to %s", appointment.Status, next))
	}

	if next == models.AppointmentStatusPending {
		uc.populate(ctx, appointment)
		return appointment, nil
	}

	if !appointment.Assigned() {
		return nil, exceptions.ErrStatusChangeRequiresAssignee(errors.New("appointment has no assigned employee"))
	}

	updated, err := uc.AppointmentRepository.UpdateStatusFromPending(ctx, appointment.ID, next, true)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Lost the race: someone else moved it off Pending first.
		current, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
		if err != nil {
			return nil, err
		}
		if current != nil && current.Status == next {
			uc.populate(ctx, current)
			return current, nil
		}
		return nil, exceptions.ErrInvalidStatusTransition(errors.New("appointment already left the Pending state"))
	}

	uc.populate(ctx, updated)
	uc.notifyStatusUpdated(ctx, actor, updated)
	return updated, nil
}

func (uc *appointmentUsecase) notifyStatusUpdated(ctx context.Context, actor *models.Actor, appointment *models.Appointment) {
	body := fmt.Sprintf(constvars.NotificationBodyStatusUpdated, appointment.PatientName, appointment.Status)
	entries := []contracts.NotificationEntry{
		{
			Recipient: actor,
			Title:     constvars.NotificationTitleStatusUpdated,
			Body:      body,
		},
	}
	if appointment.Employee != nil {
		entries = append(entries, contracts.NotificationEntry{
			Recipient: appointment.Employee.Actor(),
			Title:     constvars.NotificationTitleStatusUpdated,
			Body:      body,
		})
	}
	if appointment.Laboratory != nil {
		entries = append(entries, contracts.NotificationEntry{
			Recipient: appointment.Laboratory.Actor(),
			Title:     constvars.NotificationTitleStatusUpdated,
			Body:      body,
		})
	}
	uc.notify(ctx, entries)
}

// UploadTrackingID stores the shipment image and writes its object
// reference into the write-once trackingId slot.
func (uc *appointmentUsecase) UploadTrackingID(ctx context.Context, actor *models.Actor, appointmentID string, request *requests.UploadTrackingID) (*models.Appointment, error) {
	if actor.Role != models.RoleEmployee {
		return nil, exceptions.ErrNotAuthorized(errors.New("only the assigned employee uploads the tracking id"))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(errors.New("appointment " + appointmentID + " does not exist"))
	}
	if !appointment.AssignedTo(actor.ID) {
		return nil, exceptions.ErrNotResourceOwner(errors.New("appointment is not assigned to this employee"))
	}
	if appointment.TrackingID != nil {
		return nil, exceptions.ErrTrackingIDAlreadySet(errors.New("tracking id was already uploaded"))
	}

	data, err := utils.DecodeBase64Payload(request.Image)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	objectName := utils.GenerateObjectName(constvars.StorageTrackingIDPrefix, request.FileName)
	ref, err := uc.Storage.UploadObject(ctx, bytes.NewReader(data), int64(len(data)), objectName, constvars.MIMEOctetStream)
	if err != nil {
		return nil, err
	}

	updated, err := uc.AppointmentRepository.SetTrackingID(ctx, appointment.ID, actor.ID, ref)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		// Guard did not match: a concurrent upload won, or the assignment
		// changed underneath us.
		return nil, exceptions.ErrTrackingIDAlreadySet(errors.New("tracking id write-once guard rejected the update"))
	}

	entries := []contracts.NotificationEntry{
		{
			Recipient: actor,
			Title:     constvars.NotificationTitleTrackingIDUploaded,
			Body:      fmt.Sprintf(constvars.NotificationBodyTrackingIDUploaded, updated.PatientName),
		},
	}
	admin, err := uc.DirectoryRepository.FindAdministrator(ctx)
	if err == nil && admin != nil {
		entries = append(entries, contracts.NotificationEntry{
			Recipient: admin.Actor(),
			Title:     constvars.NotificationTitleTrackingIDUploaded,
			Body:      fmt.Sprintf(constvars.NotificationBodyTrackingIDUploaded, updated.PatientName),
		})
	}
	uc.notify(ctx, entries)

	return updated, nil
}

// ReassignOnEmployeeRemoval redistributes the removed employee's Pending
// appointments. Each one goes to another employee picked uniformly at
// random; when no other employee exists the assignment is cleared and the
// admin is asked to reassign manually. Deliberately not a scheduler.
func (uc *appointmentUsecase) ReassignOnEmployeeRemoval(ctx context.Context, employeeID string) error {
	removedID, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return exceptions.ErrInvalidObjectID(err)
	}

	pending, err := uc.AppointmentRepository.FindPendingByEmployee(ctx, removedID)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	employees, err := uc.DirectoryRepository.FindEmployees(ctx)
	if err != nil {
		return err
	}
	others := make([]models.Employee, 0, len(employees))
	for _, employee := range employees {
		if employee.ID != removedID {
			others = append(others, employee)
		}
	}

	admin, err := uc.DirectoryRepository.FindAdministrator(ctx)
	if err != nil {
		return err
	}

	for i := range pending {
		appointment := &pending[i]
		if len(others) == 0 {
			if _, err := uc.AppointmentRepository.UpdateEmployee(ctx, appointment.ID, nil); err != nil {
				return err
			}
			if admin != nil {
				uc.notify(ctx, []contracts.NotificationEntry{{
					Recipient: admin.Actor(),
					Title:     constvars.NotificationTitleReassignmentRequired,
					Body:      fmt.Sprintf(constvars.NotificationBodyReassignRequired, appointment.PatientName),
				}})
			}
			continue
		}

		replacement := others[rand.Intn(len(others))]
		if _, err := uc.AppointmentRepository.UpdateEmployee(ctx, appointment.ID, &replacement.ID); err != nil {
			return err
		}

		entries := []contracts.NotificationEntry{{
			Recipient: replacement.Actor(),
			Title:     constvars.NotificationTitleReassigned,
			Body:      fmt.Sprintf(constvars.NotificationBodyAppointmentAssigned, appointment.PatientName),
		}}
		if admin != nil {
			entries = append(entries, contracts.NotificationEntry{
				Recipient: admin.Actor(),
				Title:     constvars.NotificationTitleReassigned,
				Body:      fmt.Sprintf(constvars.NotificationBodyReassigned, appointment.PatientName, replacement.FullName),
			})
		}
		uc.notify(ctx, entries)
	}
	return nil
}
