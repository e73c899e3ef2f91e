// Package sessionrepo provides data transfer objects and mapping functions for session persistence.
// This package implements the repository pattern for the fulfillment session aggregate, handling
// the conversion between domain entities and database representations.
package sessionrepo

import (
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// SessionDTO represents the database structure for persisting session aggregates.
// Maps the aggregate root and its three child collections to relational tables
// with cascading deletes.
type SessionDTO struct {
	ID               uuid.UUID            `gorm:"type:uuid;primaryKey"`
	Code             string               `gorm:"type:varchar(16);not null;uniqueIndex"`
	Status           int                  `gorm:"type:int;not null;index"`
	CreatedAt        time.Time            `gorm:"not null"`
	CompletedAt      *time.Time           `gorm:""`
	Members          []MemberDTO          `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	PickRequirements []PickRequirementDTO `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
	PackingLines     []PackingLineDTO     `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for session entities.
// Overrides GORM's default naming convention to use "sessions".
func (SessionDTO) TableName() string {
	return "sessions"
}

// MemberDTO represents one member order of a session with its label state.
type MemberDTO struct {
	SessionID uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID  `gorm:"type:uuid;primaryKey;index"`
	Printed   bool       `gorm:"not null"`
	PrintedAt *time.Time `gorm:""`
}

// TableName specifies the database table name for session member entities.
func (MemberDTO) TableName() string {
	return "session_members"
}

// PickRequirementDTO represents one consolidated pick list position of a session.
type PickRequirementDTO struct {
	SessionID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductName         string    `gorm:"type:varchar(255);not null"`
	TotalQuantityNeeded int       `gorm:"type:int;not null"`
	QuantityPicked      int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for pick requirement entities.
func (PickRequirementDTO) TableName() string {
	return "session_pick_requirements"
}

// PackingLineDTO represents one per-order packing position of a session.
type PackingLineDTO struct {
	SessionID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductName    string    `gorm:"type:varchar(255);not null"`
	QuantityNeeded int       `gorm:"type:int;not null"`
	QuantityPacked int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for packing line entities.
func (PackingLineDTO) TableName() string {
	return "session_packing_lines"
}

// fromDomain converts a session domain aggregate to its database representation.
// Maps the root attributes and all three child collections.
func fromDomain(aggregate *session.Session) SessionDTO {
	sessionID := aggregate.ID().Bytes()

	domainMembers := aggregate.Members()
	members := make([]MemberDTO, 0, len(domainMembers))
	for _, member := range domainMembers {
		members = append(members, MemberDTO{
			SessionID: sessionID,
			OrderID:   member.OrderID().Bytes(),
			Printed:   member.Printed(),
			PrintedAt: member.PrintedAt(),
		})
	}

	domainRequirements := aggregate.PickRequirements()
	requirements := make([]PickRequirementDTO, 0, len(domainRequirements))
	for _, requirement := range domainRequirements {
		requirements = append(requirements, PickRequirementDTO{
			SessionID:           sessionID,
			ProductID:           requirement.ProductID().Bytes(),
			ProductName:         requirement.ProductName(),
			TotalQuantityNeeded: requirement.TotalQuantityNeeded(),
			QuantityPicked:      requirement.QuantityPicked(),
		})
	}

	domainLines := aggregate.PackingLines()
	lines := make([]PackingLineDTO, 0, len(domainLines))
	for _, line := range domainLines {
		lines = append(lines, PackingLineDTO{
			SessionID:      sessionID,
			OrderID:        line.OrderID().Bytes(),
			ProductID:      line.ProductID().Bytes(),
			ProductName:    line.ProductName(),
			QuantityNeeded: line.QuantityNeeded(),
			QuantityPacked: line.QuantityPacked(),
		})
	}

	return SessionDTO{
		ID:               sessionID,
		Code:             aggregate.Code().String(),
		Status:           int(aggregate.Status()),
		CreatedAt:        aggregate.CreatedAt(),
		CompletedAt:      aggregate.CompletedAt(),
		Members:          members,
		PickRequirements: requirements,
		PackingLines:     lines,
	}
}

// toDomain converts a database DTO to a session domain aggregate.
// Reconstructs the complete aggregate including all child collections using
// RestoreSession, which re-verifies the cross-entity invariants.
func toDomain(dto SessionDTO) (*session.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	code, err := kernel.NewCode(dto.Code)
	if err != nil {
		return nil, err
	}

	members := make([]*session.Member, 0, len(dto.Members))
	for _, memberDto := range dto.Members {
		member, memberErr := memberToDomain(memberDto)
		if memberErr != nil {
			return nil, memberErr
		}
		members = append(members, member)
	}

	requirements := make([]*session.PickRequirement, 0, len(dto.PickRequirements))
	for _, requirementDto := range dto.PickRequirements {
		requirement, requirementErr := pickRequirementToDomain(requirementDto)
		if requirementErr != nil {
			return nil, requirementErr
		}
		requirements = append(requirements, requirement)
	}

	lines := make([]*session.PackingLine, 0, len(dto.PackingLines))
	for _, lineDto := range dto.PackingLines {
		line, lineErr := packingLineToDomain(lineDto)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return session.RestoreSession(
		id,
		code,
		session.Status(dto.Status),
		members,
		requirements,
		lines,
		dto.CreatedAt,
		dto.CompletedAt,
	)
}

// memberToDomain converts a member DTO to a domain entity.
func memberToDomain(dto MemberDTO) (*session.Member, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return session.RestoreMember(orderID, dto.Printed, dto.PrintedAt)
}

// pickRequirementToDomain converts a pick requirement DTO to a domain entity.
func pickRequirementToDomain(dto PickRequirementDTO) (*session.PickRequirement, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return session.RestorePickRequirement(productID, dto.ProductName, dto.TotalQuantityNeeded, dto.QuantityPicked)
}

// packingLineToDomain converts a packing line DTO to a domain entity.
func packingLineToDomain(dto PackingLineDTO) (*session.PackingLine, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return session.RestorePackingLine(orderID, productID, dto.ProductName, dto.QuantityNeeded, dto.QuantityPacked)
}
