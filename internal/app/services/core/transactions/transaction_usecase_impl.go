package transactions

import (
	"context"
	"errors"
	"fmt"
	"lablink-service/internal/app/contracts"
	"lablink-service/internal/app/models"
	"lablink-service/internal/pkg/constvars"
	"lablink-service/internal/pkg/dto/requests"
	"lablink-service/internal/pkg/exceptions"
	"lablink-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type transactionUsecase struct {
	TransactionRepository contracts.TransactionRepository
	DirectoryRepository   contracts.DirectoryRepository
	FanoutService         contracts.FanoutService
	Log                   *zap.Logger
}

func NewTransactionUsecase(
	transactionRepository contracts.TransactionRepository,
	directoryRepository contracts.DirectoryRepository,
	fanoutService contracts.FanoutService,
	logger *zap.Logger,
) contracts.TransactionUsecase {
	return &transactionUsecase{
		TransactionRepository: transactionRepository,
		DirectoryRepository:   directoryRepository,
		FanoutService:         fanoutService,
		Log:                   logger,
	}
}

// UpdateStatus is the admin-facing payment-status operation. The three
// values carry no ordering, so any of them may be set at any time.
func (uc *transactionUsecase) UpdateStatus(ctx context.Context, actor *models.Actor, transactionID string, request *requests.UpdateTransactionStatus) (*models.Transaction, error) {
	if actor.Role != models.RoleAdmin {
		return nil, exceptions.ErrNotAuthorized(errors.New("only the administrator updates payment status"))
	}
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	transaction, err := uc.TransactionRepository.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction == nil {
		return nil, exceptions.ErrTransactionNotFound(errors.New("transaction " + transactionID + " does not exist"))
	}

	updated, err := uc.TransactionRepository.UpdateStatus(ctx, transaction.ID, models.TransactionStatus(request.Status))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, exceptions.ErrTransactionNotFound(errors.New("transaction " + transactionID + " does not exist"))
	}

	if err := uc.notifyPaymentStatus(ctx, updated); err != nil {
		uc.Log.Warn("payment status fan-out incomplete", zap.Error(err))
	}
	return updated, nil
}

// MonthlyCompletedTotal sums completed billing amounts for the current
// calendar month across all laboratories.
func (uc *transactionUsecase) MonthlyCompletedTotal(ctx context.Context) (float64, error) {
	from, to := utils.MonthBounds(time.Now().UTC())
	return uc.TransactionRepository.CompletedTotal(ctx, nil, from, to)
}

func (uc *transactionUsecase) notifyPaymentStatus(ctx context.Context, transaction *models.Transaction) error {
	body := fmt.Sprintf(constvars.NotificationBodyPaymentStatus, transaction.PatientName, transaction.Status)

	var entries []contracts.NotificationEntry
	admin, err := uc.DirectoryRepository.FindAdministrator(ctx)
	if err != nil {
		return err
	}
	if admin != nil {
		entries = append(entries, contracts.NotificationEntry{
			Recipient: admin.Actor(),
			Title:     constvars.NotificationTitlePaymentStatusUpdated,
			Body:      body,
		})
	}
	if transaction.LaboratoryID != nil {
		laboratory, err := uc.DirectoryRepository.FindLaboratoryByID(ctx, transaction.LaboratoryID.Hex())
		if err != nil {
			return err
		}
		if laboratory != nil {
			entries = append(entries, contracts.NotificationEntry{
				Recipient: laboratory.Actor(),
				Title:     constvars.NotificationTitlePaymentStatusUpdated,
				Body:      body,
			})
		}
	}
	if len(entries) == 0 {
		return nil
	}

	return uc.FanoutService.Notify(ctx, &contracts.NotificationEvent{
		Type:    models.NotificationTypeAppointment,
		Entries: entries,
	})
}
