package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetSessionQueryHandler retrieves a single session header from the database.
type GetSessionQueryHandler struct {
	db *gorm.DB
}

// NewGetSessionQueryHandler creates a handler for session header queries.
// Requires a GORM database connection for query execution.
func NewGetSessionQueryHandler(db *gorm.DB) GetSessionQueryHandler {
	return GetSessionQueryHandler{db: db}
}

// Handle executes the query to retrieve one session header.
// Returns a not-found error if no session exists with the given identifier.
func (h GetSessionQueryHandler) Handle(
	ctx context.Context,
	query GetSessionQuery,
) (GetSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSessionQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			status,
			created_at,
			completed_at
		FROM sessions
		WHERE id = ?
	`, query.SessionID().Bytes()).Row()

	var id uuid.UUID
	var code string
	var status int
	var createdAt time.Time
	var completedAt *time.Time

	err := row.Scan(
		&id,
		&code,
		&status,
		&createdAt,
		&completedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetSessionQueryResponse{}, errs.NewObjectNotFoundError("session", query.SessionID())
	}
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	sessionID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetSessionQueryResponse{}, err
	}

	return GetSessionQueryResponse{
		ID:          sessionID,
		Code:        code,
		Status:      session.Status(status).String(),
		CreatedAt:   createdAt,
		CompletedAt: completedAt,
	}, nil
}
