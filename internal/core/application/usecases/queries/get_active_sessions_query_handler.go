package queries

import (
	"context"
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveSessionsQueryHandler retrieves running sessions from the database.
// Filters out terminal sessions to provide active workload visibility.
type GetActiveSessionsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveSessionsQueryHandler creates a handler for active session queries.
// Requires a GORM database connection for query execution.
func NewGetActiveSessionsQueryHandler(db *gorm.DB) GetActiveSessionsQueryHandler {
	return GetActiveSessionsQueryHandler{db: db}
}

// Handle executes the query to retrieve all running sessions.
// Returns sessions in Picking or Packing status, newest first, with the
// member order count resolved in the same statement.
func (h GetActiveSessionsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveSessionsQuery,
) ([]GetActiveSessionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sessions := make([]GetActiveSessionsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.code,
			s.status,
			s.created_at,
			COUNT(m.order_id) AS order_count
		FROM sessions s
		JOIN session_members m ON m.session_id = s.id
		WHERE s.status IN (?, ?)
		GROUP BY s.id, s.code, s.status, s.created_at
		ORDER BY s.created_at DESC, s.id
	`, session.Picking, session.Packing).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var code string
		var status int
		var createdAt time.Time
		var orderCount int

		err = rows.Scan(
			&id,
			&code,
			&status,
			&createdAt,
			&orderCount,
		)
		if err != nil {
			return nil, err
		}

		sessionID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		sessions = append(sessions, GetActiveSessionsQueryResponse{
			ID:         sessionID,
			Code:       code,
			Status:     session.Status(status).String(),
			CreatedAt:  createdAt,
			OrderCount: orderCount,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sessions, nil
}
