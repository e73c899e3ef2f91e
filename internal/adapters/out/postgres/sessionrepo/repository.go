package sessionrepo

import (
	"context"
	"errors"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSessionRepository implements SessionRepository using GORM.
type GormSessionRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormSessionRepository creates a new GORM session repository.
func NewGormSessionRepository(db *gorm.DB, tracker aggregateTracker) *GormSessionRepository {
	return &GormSessionRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new session to the database, including its members, pick
// requirements and packing lines.
func (r *GormSessionRepository) Add(ctx context.Context, aggregate *session.Session) error {
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

// Update saves an existing session to the database.
func (r *GormSessionRepository) Update(ctx context.Context, aggregate *session.Session) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a session by ID with all child collections.
func (r *GormSessionRepository) Get(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a session by ID and locks its row for the duration
// of the current transaction. Every mutating transition goes through this
// method so a session has a single writer at a time.
func (r *GormSessionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*session.Session, error) {
	return r.get(ctx, id, true)
}

func (r *GormSessionRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*session.Session, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)
	if forUpdate {
		db = db.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto SessionDTO
	if err := db.
		Preload("Members").
		Preload("PickRequirements").
		Preload("PackingLines").
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("session", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
