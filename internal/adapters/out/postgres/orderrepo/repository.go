package orderrepo

import (
	"context"
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/order"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database, including its line snapshot.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database. Lines are an immutable
// snapshot, so only the root row is written.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("Number", "CustomerName", "Status", "SessionID").
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

// Get retrieves an order by ID with its line snapshot.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByIDsForUpdate retrieves the given orders and locks their rows for the
// duration of the current transaction. Rows are locked in ascending ID order
// so two sessions claiming overlapping selections cannot deadlock. Returns a
// not-found error if any requested order does not exist.
func (r *GormOrderRepository) GetByIDsForUpdate(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	if len(ids) == 0 {
		return nil, errs.NewValueIsRequiredError("ids")
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Lines").
		Where("id IN ?", rawIDs).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(dtos))
	for _, dto := range dtos {
		found[dto.ID] = true
	}
	for _, id := range ids {
		if !found[id.Bytes()] {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
