package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lifetrackhq/lifetrack_backend/internal/apperrors"
	"github.com/lifetrackhq/lifetrack_backend/internal/core/domain"
	portsrepo "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/repositories"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/dto"
)

type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	categoryRepo    portsrepo.CategoryRepository
	recorder        portssvc.ActivityRecorderSvc
}

// NewTransactionService creates a TransactionSvcFacade.
func NewTransactionService(
	transactionRepo portsrepo.TransactionRepository,
	categoryRepo portsrepo.CategoryRepository,
	recorder portssvc.ActivityRecorderSvc,
) portssvc.TransactionSvcFacade {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		recorder:        recorder,
	}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// resolveCategory checks that the referenced category exists, belongs to the
// caller and matches the transaction type.
func (s *transactionService) resolveCategory(ctx context.Context, ownerID, categoryID string, txnType domain.TransactionType) (*domain.Category, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, categoryID, ownerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("category %s not found: %w", categoryID, apperrors.ErrValidation)
		}
		return nil, err
	}
	if string(category.Type) != string(txnType) {
		return nil, fmt.Errorf("category %s is %s, transaction is %s: %w", categoryID, category.Type, txnType, apperrors.ErrValidation)
	}
	return category, nil
}

func (s *transactionService) ListTransactions(ctx context.Context, ownerID string, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	filter := portsrepo.TransactionFilter{}
	if params.Type != "" {
		t := domain.TransactionType(params.Type)
		filter.Type = &t
	}
	if params.StartDate != "" {
		start, err := dto.ParseDate(params.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate: %w", apperrors.ErrValidation)
		}
		filter.StartDate = &start
	}
	if params.EndDate != "" {
		end, err := dto.ParseDate(params.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate: %w", apperrors.ErrValidation)
		}
		filter.EndDate = &end
	}
	return s.transactionRepo.ListTransactions(ctx, ownerID, filter)
}

func (s *transactionService) CreateTransaction(ctx context.Context, ownerID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	category, err := s.resolveCategory(ctx, ownerID, req.CategoryID, req.Type)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		OwnerID:       ownerID,
		Amount:        req.Amount,
		Type:          req.Type,
		CategoryID:    req.CategoryID,
		Date:          req.Date.Time,
		Description:   req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
		Category: category,
	}
	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to create transaction", "ownerID", ownerID)
		return nil, err
	}

	s.recorder.Record(ownerID, domain.ActivityTransaction, domain.ActionCreated,
		fmt.Sprintf("Added %s transaction: %s %s", txn.Type, txn.Amount.String(), category.Name),
		map[string]any{"transactionId": txn.TransactionID, "amount": txn.Amount.String()})
	return &txn, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, ownerID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, req.ID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.Type != nil {
		txn.Type = *req.Type
	}
	if req.CategoryID != nil {
		txn.CategoryID = *req.CategoryID
	}
	if req.Date != nil {
		txn.Date = req.Date.Time
	}
	if req.Description != nil {
		txn.Description = *req.Description
	}

	// Re-validate the reference against the merged type even when only one
	// side of the pair changed.
	category, err := s.resolveCategory(ctx, ownerID, txn.CategoryID, txn.Type)
	if err != nil {
		return nil, err
	}
	txn.Category = category
	txn.LastUpdatedAt = time.Now().UTC()

	if err := s.transactionRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction", "transactionID", req.ID)
		return nil, err
	}

	s.recorder.Record(ownerID, domain.ActivityTransaction, domain.ActionUpdated,
		fmt.Sprintf("Updated %s transaction: %s %s", txn.Type, txn.Amount.String(), category.Name),
		map[string]any{"transactionId": txn.TransactionID})
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, ownerID string, transactionID string) error {
	// Fetch first so the activity entry can describe what was removed.
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID, ownerID)
	if err != nil {
		return err
	}
	if err := s.transactionRepo.DeleteTransaction(ctx, transactionID, ownerID); err != nil {
		return err
	}
	categoryName := ""
	if txn.Category != nil {
		categoryName = txn.Category.Name
	}
	s.recorder.Record(ownerID, domain.ActivityTransaction, domain.ActionDeleted,
		fmt.Sprintf("Deleted %s transaction: %s %s", txn.Type, txn.Amount.String(), categoryName),
		map[string]any{"transactionId": transactionID, "amount": txn.Amount.String()})
	return nil
}
