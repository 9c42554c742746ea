package billingrepo

import (
	"context"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/billing"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolationCode = "23505"

// GormBillingRepository implements BillingRepository using GORM.
type GormBillingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormBillingRepository creates a new GORM billing repository.
func NewGormBillingRepository(db *gorm.DB, tracker aggregateTracker) *GormBillingRepository {
	return &GormBillingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new billing record with its line items to the database. The
// unique index on order_id backs the one-bill-per-order invariant under
// concurrent generation.
func (r *GormBillingRepository) Add(ctx context.Context, aggregate *billing.Billing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return billing.ErrAlreadyBilled
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing billing record to the database. Line items are
// immutable after generation; only the header row is written.
func (r *GormBillingRepository) Update(ctx context.Context, aggregate *billing.Billing) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Lines = nil

	result := r.db.WithContext(ctx).Model(&BillingDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a billing record by ID.
func (r *GormBillingRepository) Get(ctx context.Context, id kernel.UUID) (*billing.Billing, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BillingDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("billing", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrder retrieves the billing record for a service order, if one exists.
func (r *GormBillingRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*billing.Billing, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto BillingDTO
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "order_id = ?", orderID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("billing", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// NextSequence reserves the next billing number sequence for the month
// containing at. The upsert keeps the counter race-free: concurrent callers
// each get a distinct value, and the counter restarts at 1 every month.
func (r *GormBillingRepository) NextSequence(ctx context.Context, at time.Time) (int, error) {
	month := at.Format("200601")

	var value int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO billing_sequences (month, value)
		VALUES (?, 1)
		ON CONFLICT (month)
		DO UPDATE SET value = billing_sequences.value + 1
		RETURNING value
	`, month).Scan(&value).Error
	if err != nil {
		return 0, err
	}

	return value, nil
}
