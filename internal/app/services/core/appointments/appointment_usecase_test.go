package appointments

import (
	"context"
	"errors"
	"io"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/dto/requests"
	"lablink-service/internal/pkg/exceptions"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const validAccountNumber = "12345678901234567"

type fakeAppointmentRepo struct {
	mu   sync.Mutex
	docs map[primitive.ObjectID]models.Appointment
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{docs: make(map[primitive.ObjectID]models.Appointment)}
}

func (f *fakeAppointmentRepo) Insert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appointment.ID = primitive.NewObjectID()
	f.docs[appointment.ID] = *appointment
	return appointment, nil
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	objectID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[objectID]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (f *fakeAppointmentRepo) matches(doc *models.Appointment, query *contracts.AppointmentQuery) bool {
	if query.EmployeeID != nil && (doc.EmployeeID == nil || *doc.EmployeeID != *query.EmployeeID) {
		return false
	}
	if query.LaboratoryName != "" && !strings.EqualFold(doc.LaboratoryName, query.LaboratoryName) {
		return false
	}
	if len(query.Statuses) > 0 {
		found := false
		for _, status := range query.Statuses {
			if doc.Status == status {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	if query.PriorityLevel != "" && doc.PriorityLevel != query.PriorityLevel {
		return false
	}
	if query.DateFrom != nil && doc.AppointmentDateTime.Before(*query.DateFrom) {
		return false
	}
	if query.DateTo != nil && !doc.AppointmentDateTime.Before(*query.DateTo) {
		return false
	}
	if query.IsAssigned != nil && *query.IsAssigned != doc.Assigned() {
		return false
	}
	if query.HasTrackingID != nil && *query.HasTrackingID != (doc.TrackingID != nil) {
		return false
	}
	return true
}

func (f *fakeAppointmentRepo) Find(ctx context.Context, query *contracts.AppointmentQuery) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []models.Appointment
	for _, doc := range f.docs {
		if f.matches(&doc, query) {
			result = append(result, doc)
		}
	}
	return result, nil
}

func (f *fakeAppointmentRepo) Count(ctx context.Context, query *contracts.AppointmentQuery) (int64, error) {
	docs, _ := f.Find(ctx, query)
	return int64(len(docs)), nil
}

func (f *fakeAppointmentRepo) FindPendingByEmployee(ctx context.Context, employeeID primitive.ObjectID) ([]models.Appointment, error) {
	return f.Find(ctx, &contracts.AppointmentQuery{
		EmployeeID: &employeeID,
		Statuses:   []models.AppointmentStatus{models.AppointmentStatusPending},
	})
}

func (f *fakeAppointmentRepo) UpdateEmployee(ctx context.Context, appointmentID primitive.ObjectID, employeeID *primitive.ObjectID) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[appointmentID]
	if !ok {
		return nil, nil
	}
	doc.EmployeeID = employeeID
	doc.UpdatedAt = time.Now()
	f.docs[appointmentID] = doc
	return &doc, nil
}

func (f *fakeAppointmentRepo) UpdateStatusFromPending(ctx context.Context, appointmentID primitive.ObjectID, next models.AppointmentStatus, requireAssignee bool) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[appointmentID]
	if !ok || doc.Status != models.AppointmentStatusPending {
		return nil, nil
	}
	if requireAssignee && doc.EmployeeID == nil {
		return nil, nil
	}
	doc.Status = next
	doc.UpdatedAt = time.Now()
	f.docs[appointmentID] = doc
	return &doc, nil
}

func (f *fakeAppointmentRepo) SetTrackingID(ctx context.Context, appointmentID, employeeID primitive.ObjectID, trackingRef string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[appointmentID]
	if !ok || doc.TrackingID != nil || doc.EmployeeID == nil || *doc.EmployeeID != employeeID {
		return nil, nil
	}
	doc.TrackingID = &trackingRef
	doc.UpdatedAt = time.Now()
	f.docs[appointmentID] = doc
	return &doc, nil
}

type fakeTransactionRepo struct {
	mu         sync.Mutex
	docs       []models.Transaction
	failInsert bool
}

func (f *fakeTransactionRepo) Insert(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failInsert {
		return nil, errors.New("ledger write failed")
	}
	transaction.ID = primitive.NewObjectID()
	f.docs = append(f.docs, *transaction)
	return transaction, nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, transactionID string) (*models.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) FindByAppointment(ctx context.Context, appointmentID primitive.ObjectID) (*models.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, doc := range f.docs {
		if doc.AppointmentID == appointmentID {
			copied := doc
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionRepo) UpdateStatus(ctx context.Context, transactionID primitive.ObjectID, status models.TransactionStatus) (*models.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) CompletedTotal(ctx context.Context, laboratoryID *primitive.ObjectID, from, to time.Time) (float64, error) {
	return 0, nil
}

type fakeDirectory struct {
	employees    map[primitive.ObjectID]models.Employee
	laboratories map[primitive.ObjectID]models.Laboratory
	admin        *models.Administrator
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		employees:    make(map[primitive.ObjectID]models.Employee),
		laboratories: make(map[primitive.ObjectID]models.Laboratory),
		admin: &models.Administrator{
			ID:             primitive.NewObjectID(),
			FullName:       "Operations Admin",
			Email:          "admin@lablink.example",
			IsNotification: true,
		},
	}
}

func (f *fakeDirectory) addEmployee(name string) models.Employee {
	employee := models.Employee{
		ID:             primitive.NewObjectID(),
		FullName:       name,
		Email:          strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@lablink.example",
		IsActive:       true,
		IsNotification: true,
	}
	f.employees[employee.ID] = employee
	return employee
}

func (f *fakeDirectory) addLaboratory(name string) models.Laboratory {
	laboratory := models.Laboratory{
		ID:             primitive.NewObjectID(),
		FullName:       name,
		Email:          strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@lablink.example",
		IsActive:       true,
		IsNotification: true,
	}
	f.laboratories[laboratory.ID] = laboratory
	return laboratory
}

func (f *fakeDirectory) FindActor(ctx context.Context, role models.Role, id string) (*models.Actor, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}
	switch role {
	case models.RoleEmployee:
		if employee, ok := f.employees[objectID]; ok {
			return employee.Actor(), nil
		}
	case models.RoleLaboratory:
		if laboratory, ok := f.laboratories[objectID]; ok {
			return laboratory.Actor(), nil
		}
	case models.RoleAdmin:
		if f.admin != nil && f.admin.ID == objectID {
			return f.admin.Actor(), nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) FindEmployeeByID(ctx context.Context, employeeID string) (*models.Employee, error) {
	objectID, err := primitive.ObjectIDFromHex(employeeID)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}
	if employee, ok := f.employees[objectID]; ok {
		return &employee, nil
	}
	return nil, nil
}

func (f *fakeDirectory) FindEmployees(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	for _, employee := range f.employees {
		employees = append(employees, employee)
	}
	return employees, nil
}

func (f *fakeDirectory) FindLaboratoryByID(ctx context.Context, laboratoryID string) (*models.Laboratory, error) {
	objectID, err := primitive.ObjectIDFromHex(laboratoryID)
	if err != nil {
		return nil, exceptions.ErrInvalidObjectID(err)
	}
	if laboratory, ok := f.laboratories[objectID]; ok {
		return &laboratory, nil
	}
	return nil, nil
}

func (f *fakeDirectory) FindLaboratoryByName(ctx context.Context, fullName string) (*models.Laboratory, error) {
	for _, laboratory := range f.laboratories {
		if strings.EqualFold(laboratory.FullName, fullName) {
			copied := laboratory
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *fakeDirectory) FindAdministrator(ctx context.Context) (*models.Administrator, error) {
	return f.admin, nil
}

func (f *fakeDirectory) SetNotificationEnabled(ctx context.Context, role models.Role, id string, enabled bool) (*models.Actor, error) {
	return nil, nil
}

type recordingFanout struct {
	mu     sync.Mutex
	events []contracts.NotificationEvent
}

func (f *recordingFanout) Notify(ctx context.Context, event *contracts.NotificationEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, *event)
	return nil
}

func (f *recordingFanout) Wait() {}

func (f *recordingFanout) allEntries() []contracts.NotificationEntry {
	f.mu.Lock()
	defer f.mu.Unlock()
	var entries []contracts.NotificationEntry
	for _, event := range f.events {
		entries = append(entries, event.Entries...)
	}
	return entries
}

func (f *recordingFanout) entriesFor(recipientID primitive.ObjectID) int {
	count := 0
	for _, entry := range f.allEntries() {
		if entry.Recipient != nil && entry.Recipient.ID == recipientID {
			count++
		}
	}
	return count
}

func (f *recordingFanout) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = nil
}

type fakeStorage struct {
	mu      sync.Mutex
	objects []string
}

func (f *fakeStorage) UploadObject(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects = append(f.objects, objectName)
	return objectName, nil
}

type fixture struct {
	usecase      contracts.AppointmentUsecase
	appointments *fakeAppointmentRepo
	transactions *fakeTransactionRepo
	directory    *fakeDirectory
	fanout       *recordingFanout
	storage      *fakeStorage
}

func newFixture() *fixture {
	appointments := newFakeAppointmentRepo()
	transactions := &fakeTransactionRepo{}
	directory := newFakeDirectory()
	fanout := &recordingFanout{}
	storage := &fakeStorage{}
	usecase := NewAppointmentUsecase(appointments, transactions, directory, fanout, storage, zap.NewNop())
	return &fixture{
		usecase:      usecase,
		appointments: appointments,
		transactions: transactions,
		directory:    directory,
		fanout:       fanout,
		storage:      storage,
	}
}

func (fx *fixture) adminActor() *models.Actor {
	return fx.directory.admin.Actor()
}

func createRequest() *requests.CreateAppointment {
	return &requests.CreateAppointment{
		PatientName:         "jane doe",
		Email:               "jane@example.com",
		ContactNumber:       "+155501234",
		LaboratoryName:      "Central Diagnostics",
		Fees:                0,
		PriorityLevel:       "High",
		AppointmentDateTime: time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339),
	}
}

func TestCreateAppointmentCreatesTransaction(t *testing.T) {
	fx := newFixture()
	request := createRequest()
	request.Fees = 150
	request.AccountNumber = validAccountNumber

	appointment, err := fx.usecase.Create(context.Background(), fx.adminActor(), request)
	require.NoError(t, err)
	require.NotNil(t, appointment)
	assert.Equal(t, models.AppointmentStatusPending, appointment.Status)

	transaction, err := fx.transactions.FindByAppointment(context.Background(), appointment.ID)
	require.NoError(t, err)
	require.NotNil(t, transaction, "exactly one transaction per appointment")
	assert.Equal(t, 150.0, transaction.Amount)
	assert.Equal(t, models.TransactionStatusPending, transaction.Status)
	assert.Equal(t, "Jane Doe", transaction.PatientName)
}

func TestCreateAppointmentRejectsBadAccountNumber(t *testing.T) {
	fx := newFixture()
	request := createRequest()
	request.Fees = 99.5
	request.AccountNumber = "12345"

	_, err := fx.usecase.Create(context.Background(), fx.adminActor(), request)
	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 400, customErr.StatusCode)
	assert.Empty(t, fx.appointments.docs, "no partial state before validation passes")
}

func TestCreateAppointmentRejectsFutureDateOfBirth(t *testing.T) {
	fx := newFixture()
	request := createRequest()
	request.DateOfBirth = time.Now().Add(24 * time.Hour).Format("2006-01-02T15:04:05")

	_, err := fx.usecase.Create(context.Background(), fx.adminActor(), request)
	require.Error(t, err)
	assert.Empty(t, fx.appointments.docs)
}

func TestCreateAppointmentUnknownEmployee(t *testing.T) {
	fx := newFixture()
	request := createRequest()
	request.EmployeeID = primitive.NewObjectID().Hex()

	_, err := fx.usecase.Create(context.Background(), fx.adminActor(), request)
	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 404, customErr.StatusCode)
}

func TestCreateTransactionFailureLeavesAppointment(t *testing.T) {
	fx := newFixture()
	fx.transactions.failInsert = true

	_, err := fx.usecase.Create(context.Background(), fx.adminActor(), createRequest())
	require.Error(t, err)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Len(t, fx.appointments.docs, 1, "appointment is left intact, not rolled back")
}

func TestCreateByLaboratoryAsksAdminForAssignment(t *testing.T) {
	fx := newFixture()
	laboratory := fx.directory.addLaboratory("Central Diagnostics")

	request := createRequest()
	request.LaboratoryName = ""
	appointment, err := fx.usecase.Create(context.Background(), laboratory.Actor(), request)
	require.NoError(t, err)

	assert.Equal(t, laboratory.FullName, appointment.LaboratoryName)
	require.NotNil(t, appointment.LaboratoryID)
	assert.Equal(t, laboratory.ID, *appointment.LaboratoryID)
	assert.Equal(t, 1, fx.fanout.entriesFor(fx.directory.admin.ID), "admin is asked to assign staff")
}

// Full scenario: admin books with a pre-assigned employee and no fee,
// then rejects. Covers the fan-out counts and the terminal-state rules.
func TestCreateThenRejectEndToEnd(t *testing.T) {
	fx := newFixture()
	employee := fx.directory.addEmployee("Field Tech")
	admin := fx.adminActor()

	request := createRequest()
	request.EmployeeID = employee.ID.Hex()
	appointment, err := fx.usecase.Create(context.Background(), admin, request)
	require.NoError(t, err)

	transaction, err := fx.transactions.FindByAppointment(context.Background(), appointment.ID)
	require.NoError(t, err)
	require.NotNil(t, transaction)
	assert.Equal(t, 0.0, transaction.Amount)

	entries := fx.fanout.allEntries()
	require.Len(t, entries, 3, "admin, patient, assigned employee")
	assert.Equal(t, 1, fx.fanout.entriesFor(admin.ID))
	assert.Equal(t, 1, fx.fanout.entriesFor(employee.ID))
	patientEntries := 0
	for _, entry := range entries {
		if entry.Recipient == nil {
			patientEntries++
			assert.Equal(t, request.Email, entry.EmailAddress)
		}
	}
	assert.Equal(t, 1, patientEntries, "patient is email only")

	fx.fanout.reset()
	updated, err := fx.usecase.UpdateStatus(context.Background(), admin, appointment.ID.Hex(), &requests.UpdateAppointmentStatus{Status: "Rejected"})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusRejected, updated.Status)
	assert.Len(t, fx.fanout.allEntries(), 2, "admin and employee; no laboratory on record")

	// Different terminal value is an invalid transition.
	_, err = fx.usecase.UpdateStatus(context.Background(), admin, appointment.ID.Hex(), &requests.UpdateAppointmentStatus{Status: "Completed"})
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 409, customErr.StatusCode)

	// Same terminal value is an idempotent no-op.
	fx.fanout.reset()
	again, err := fx.usecase.UpdateStatus(context.Background(), admin, appointment.ID.Hex(), &requests.UpdateAppointmentStatus{Status: "Rejected"})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusRejected, again.Status)
	assert.Empty(t, fx.fanout.allEntries(), "no fresh fan-out on a no-op")
}

func TestUpdateStatusWithoutAssigneeFails(t *testing.T) {
	fx := newFixture()
	admin := fx.adminActor()

	appointment, err := fx.usecase.Create(context.Background(), admin, createRequest())
	require.NoError(t, err)
	require.False(t, appointment.Assigned())

	_, err = fx.usecase.UpdateStatus(context.Background(), admin, appointment.ID.Hex(), &requests.UpdateAppointmentStatus{Status: "Completed"})
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 412, customErr.StatusCode)

	current, err := fx.appointments.FindByID(context.Background(), appointment.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusPending, current.Status, "status unchanged")
}

func TestUpdateStatusConcurrentTransitionsOneWins(t *testing.T) {
	fx := newFixture()
	admin := fx.adminActor()
	employee := fx.directory.addEmployee("Field Tech")

	request := createRequest()
	request.EmployeeID = employee.ID.Hex()
	appointment, err := fx.usecase.Create(context.Background(), admin, request)
	require.NoError(t, err)

	statuses := []string{"Completed", "Rejected"}
	errs := make([]error, len(statuses))
	var wg sync.WaitGroup
	for i, status := range statuses {
		wg.Add(1)
		go func(i int, status string) {
			defer wg.Done()
			_, errs[i] = fx.usecase.UpdateStatus(context.Background(), admin, appointment.ID.Hex(), &requests.UpdateAppointmentStatus{Status: status})
		}(i, status)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one of two racing transitions wins")

	current, err := fx.appointments.FindByID(context.Background(), appointment.ID.Hex())
	require.NoError(t, err)
	assert.True(t, current.Status.Terminal())
}

func TestAssignEmployeeExpiredAppointment(t *testing.T) {
	fx := newFixture()
	admin := fx.adminActor()
	employee := fx.directory.addEmployee("Field Tech")

	request := createRequest()
	request.AppointmentDateTime = time.Now().Add(-time.Hour).UTC().Format(time.RFC3339)
	appointment, err := fx.usecase.Create(context.Background(), admin, request)
	require.NoError(t, err)

	_, err = fx.usecase.AssignEmployee(context.Background(), admin, appointment.ID.Hex(), &requests.AssignEmployee{EmployeeID: employee.ID.Hex()})
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 410, customErr.StatusCode)
}

func TestAssignEmployeeNotifiesAllParties(t *testing.T) {
	fx := newFixture()
	admin := fx.adminActor()
	employee := fx.directory.addEmployee("Field Tech")
	laboratory := fx.directory.addLaboratory("Central Diagnostics")

	request := createRequest()
	appointment, err := fx.usecase.Create(context.Background(), laboratory.Actor(), request)
	require.NoError(t, err)

	fx.fanout.reset()
	updated, err := fx.usecase.AssignEmployee(context.Background(), admin, appointment.ID.Hex(), &requests.AssignEmployee{EmployeeID: employee.ID.Hex()})
	require.NoError(t, err)
	require.NotNil(t, updated.EmployeeID)
	assert.Equal(t, employee.ID, *updated.EmployeeID)
	assert.Equal(t, models.AppointmentStatusPending, updated.Status, "assignment leaves status untouched")

	assert.Equal(t, 1, fx.fanout.entriesFor(admin.ID))
	assert.Equal(t, 1, fx.fanout.entriesFor(employee.ID))
	assert.Equal(t, 1, fx.fanout.entriesFor(laboratory.ID))
}

func TestUploadTrackingIDWriteOnce(t *testing.T) {
	fx := newFixture()
	admin := fx.adminActor()
	employee := fx.directory.addEmployee("Field Tech")

	request := createRequest()
	request.EmployeeID = employee.ID.Hex()
	appointment, err := fx.usecase.Create(context.Background(), admin, request)
	require.NoError(t, err)

	upload := &requests.UploadTrackingID{FileName: "receipt.png", Image: "aGVsbG8="}
	first, err := fx.usecase.UploadTrackingID(context.Background(), employee.Actor(), appointment.ID.Hex(), upload)
	require.NoError(t, err)
	require.NotNil(t, first.TrackingID)
	firstRef := *first.TrackingID

	_, err = fx.usecase.UploadTrackingID(context.Background(), employee.Actor(), appointment.ID.Hex(), upload)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 409, customErr.StatusCode)

	current, err := fx.appointments.FindByID(context.Background(), appointment.ID.Hex())
	require.NoError(t, err)
	require.NotNil(t, current.TrackingID)
	assert.Equal(t, firstRef, *current.TrackingID, "stored value unchanged by the rejected write")
}

func TestUploadTrackingIDRequiresAssignee(t *testing.T) {
	fx := newFixture()
	admin := fx.adminActor()
	assigned := fx.directory.addEmployee("Assigned Tech")
	other := fx.directory.addEmployee("Other Tech")

	request := createRequest()
	request.EmployeeID = assigned.ID.Hex()
	appointment, err := fx.usecase.Create(context.Background(), admin, request)
	require.NoError(t, err)

	upload := &requests.UploadTrackingID{FileName: "receipt.png", Image: "aGVsbG8="}
	_, err = fx.usecase.UploadTrackingID(context.Background(), other.Actor(), appointment.ID.Hex(), upload)
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, 403, customErr.StatusCode)
}

func TestReassignOnEmployeeRemovalWithOtherEmployees(t *testing.T) {
	fx := newFixture()
	admin := fx.adminActor()
	removed := fx.directory.addEmployee("Leaving Tech")
	fx.directory.addEmployee("Tech A")
	fx.directory.addEmployee("Tech B")

	for i := 0; i < 3; i++ {
		request := createRequest()
		request.EmployeeID = removed.ID.Hex()
		_, err := fx.usecase.Create(context.Background(), admin, request)
		require.NoError(t, err)
	}

	fx.fanout.reset()
	require.NoError(t, fx.usecase.ReassignOnEmployeeRemoval(context.Background(), removed.ID.Hex()))

	for _, doc := range fx.appointments.docs {
		require.NotNil(t, doc.EmployeeID, "every appointment keeps an assignee")
		assert.NotEqual(t, removed.ID, *doc.EmployeeID)
	}
	assert.Equal(t, 3, fx.fanout.entriesFor(admin.ID), "one admin notification per reassignment")
	newAssigneeEntries := 0
	for _, entry := range fx.fanout.allEntries() {
		if entry.Recipient != nil && entry.Recipient.ID != admin.ID {
			newAssigneeEntries++
		}
	}
	assert.Equal(t, 3, newAssigneeEntries, "one notification per new assignee")
}

func TestReassignOnEmployeeRemovalWithNoReplacement(t *testing.T) {
	fx := newFixture()
	admin := fx.adminActor()
	removed := fx.directory.addEmployee("Only Tech")

	for i := 0; i < 3; i++ {
		request := createRequest()
		request.EmployeeID = removed.ID.Hex()
		_, err := fx.usecase.Create(context.Background(), admin, request)
		require.NoError(t, err)
	}

	fx.fanout.reset()
	require.NoError(t, fx.usecase.ReassignOnEmployeeRemoval(context.Background(), removed.ID.Hex()))

	for _, doc := range fx.appointments.docs {
		assert.Nil(t, doc.EmployeeID, "assignment cleared when nobody can take over")
	}
	assert.Equal(t, 3, fx.fanout.entriesFor(admin.ID), "one manual-reassignment notice per appointment")
	assert.Len(t, fx.fanout.allEntries(), 3)
}

func TestListScopesEmployeeToOwnAppointments(t *testing.T) {
	fx := newFixture()
	admin := fx.adminActor()
	mine := fx.directory.addEmployee("Mine")
	theirs := fx.directory.addEmployee("Theirs")

	for _, employee := range []models.Employee{mine, theirs} {
		request := createRequest()
		request.EmployeeID = employee.ID.Hex()
		_, err := fx.usecase.Create(context.Background(), admin, request)
		require.NoError(t, err)
	}

	listed, pagination, err := fx.usecase.List(context.Background(), mine.Actor(), &requests.ListAppointments{Page: 1})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, mine.ID, *listed[0].EmployeeID)
	assert.Equal(t, int64(1), pagination.Total)
}

func TestListArchivedShowsTerminalOnly(t *testing.T) {
	fx := newFixture()
	admin := fx.adminActor()
	employee := fx.directory.addEmployee("Field Tech")

	request := createRequest()
	request.EmployeeID = employee.ID.Hex()
	appointment, err := fx.usecase.Create(context.Background(), admin, request)
	require.NoError(t, err)
	_, err = fx.usecase.Create(context.Background(), admin, createRequest())
	require.NoError(t, err)

	_, err = fx.usecase.UpdateStatus(context.Background(), admin, appointment.ID.Hex(), &requests.UpdateAppointmentStatus{Status: "Completed"})
	require.NoError(t, err)

	archived, _, err := fx.usecase.List(context.Background(), admin, &requests.ListAppointments{Page: 1, Archived: true})
	require.NoError(t, err)
	require.Len(t, archived, 1)
	assert.Equal(t, models.AppointmentStatusCompleted, archived[0].Status)
}

func TestTodayForEmployeeOrdersByPriority(t *testing.T) {
	fx := newFixture()
	admin := fx.adminActor()
	employee := fx.directory.addEmployee("Field Tech")

	dayStart := time.Now().UTC().Truncate(24 * time.Hour)
	for _, spec := range []struct {
		priority string
		hour     int
	}{
		{"Low", 9},
		{"Urgent", 15},
		{"Medium", 10},
	} {
		request := createRequest()
		request.EmployeeID = employee.ID.Hex()
		request.PriorityLevel = spec.priority
		request.AppointmentDateTime = dayStart.Add(time.Duration(spec.hour) * time.Hour).Format(time.RFC3339)
		_, err := fx.usecase.Create(context.Background(), admin, request)
		require.NoError(t, err)
	}

	today, err := fx.usecase.TodayForEmployee(context.Background(), employee.Actor())
	require.NoError(t, err)
	require.Len(t, today, 3)
	assert.Equal(t, models.PriorityUrgent, today[0].PriorityLevel)
	assert.Equal(t, models.PriorityMedium, today[1].PriorityLevel)
	assert.Equal(t, models.PriorityLow, today[2].PriorityLevel)
}
