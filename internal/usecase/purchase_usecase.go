package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/dukaanhq/dukaan/internal/domain"
)

// PurchaseUseCase records stock received from suppliers. Each purchase
// increments stock for its lines in one database transaction.
type PurchaseUseCase struct {
	txManager    TransactionManager
	purchaseRepo PurchaseRepository
	productRepo  ProductRepository
	supplierRepo SupplierRepository
	idGen        IDGenerator
	events       EventPublisher
	retrier      Retrier
}

// NewPurchaseUseCase creates a new PurchaseUseCase.
func NewPurchaseUseCase(
	txManager TransactionManager,
	purchaseRepo PurchaseRepository,
	productRepo ProductRepository,
	supplierRepo SupplierRepository,
	idGen IDGenerator,
	events EventPublisher,
	retrier Retrier,
) *PurchaseUseCase {
	return &PurchaseUseCase{
		txManager:    txManager,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		idGen:        idGen,
		events:       events,
		retrier:      retrier,
	}
}

// PurchaseItemInput is one product line in a new purchase.
type PurchaseItemInput struct {
	ProductID string
	Quantity  int64
	UnitCost  decimal.Decimal
}

// RecordPurchaseInput represents input for recording a purchase.
type RecordPurchaseInput struct {
	SupplierID string
	Reference  string
	Items      []PurchaseItemInput
	CreatedBy  string
}

// RecordPurchase records stock received and increments stock for every line.
func (uc *PurchaseUseCase) RecordPurchase(ctx context.Context, input RecordPurchaseInput) (*domain.Purchase, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidQuantity
		}
		if err := domain.ValidateAmount(item.UnitCost); err != nil {
			return nil, err
		}
	}

	if _, err := uc.supplierRepo.GetByID(ctx, input.SupplierID); err != nil {
		return nil, err
	}

	var purchase *domain.Purchase

	err := uc.retrier.Retry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		now := time.Now().UTC()
		purchaseID := uc.idGen.Generate()
		total := decimal.Zero
		items := make([]*domain.PurchaseItem, 0, len(input.Items))

		for _, line := range input.Items {
			if _, err := uc.productRepo.GetByIDForUpdate(ctx, tx, line.ProductID); err != nil {
				return err
			}

			lineTotal := line.UnitCost.Mul(decimal.NewFromInt(line.Quantity))
			total = total.Add(lineTotal)

			items = append(items, &domain.PurchaseItem{
				ID:         uc.idGen.Generate(),
				PurchaseID: purchaseID,
				ProductID:  line.ProductID,
				Quantity:   line.Quantity,
				UnitCost:   line.UnitCost,
				LineTotal:  lineTotal,
			})

			if err := uc.productRepo.AdjustStock(ctx, tx, line.ProductID, line.Quantity, now); err != nil {
				return err
			}
		}

		p := &domain.Purchase{
			ID:          purchaseID,
			SupplierID:  input.SupplierID,
			TotalAmount: total,
			Reference:   input.Reference,
			CreatedBy:   input.CreatedBy,
			Items:       items,
			CreatedAt:   now,
		}

		if err := uc.purchaseRepo.Create(ctx, tx, p); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		purchase = p

		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = uc.events.Publish(ctx, domain.EventTypePurchaseReceived, domain.PurchaseEvent{
		EventType:   domain.EventTypePurchaseReceived,
		PurchaseID:  purchase.ID,
		SupplierID:  purchase.SupplierID,
		TotalAmount: purchase.TotalAmount.String(),
		OccurredAt:  time.Now().UTC().Format(time.RFC3339),
	})

	return purchase, nil
}

// GetPurchase retrieves a purchase with its items.
func (uc *PurchaseUseCase) GetPurchase(ctx context.Context, id string) (*domain.Purchase, error) {
	return uc.purchaseRepo.GetByID(ctx, id)
}

// ListPurchasesInput represents input for listing purchases.
type ListPurchasesInput struct {
	Page  int
	Limit int
}

// ListPurchases lists purchases, newest first.
func (uc *PurchaseUseCase) ListPurchases(ctx context.Context, input ListPurchasesInput) ([]*domain.Purchase, int64, error) {
	_, limit, offset := domain.NormalizePagination(input.Page, input.Limit)

	purchases, err := uc.purchaseRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := uc.purchaseRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return purchases, total, nil
}
