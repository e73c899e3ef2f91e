package http

import (
	"time"

	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/commands"
	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/queries"
)

// ErrorResponse is the uniform error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateSessionRequest is the body of POST /sessions.
type CreateSessionRequest struct {
	OrderIDs []string `json:"orderIds"`
}

// UpdatePickingRequest is the body of PUT /sessions/:sessionId/picking/items/:productId.
type UpdatePickingRequest struct {
	Quantity int `json:"quantity"`
}

// PackUnitRequest is the body of POST /sessions/:sessionId/packing/units.
type PackUnitRequest struct {
	OrderID   string `json:"orderId"`
	ProductID string `json:"productId"`
}

// SessionResponse is the session header shared by every snapshot.
type SessionResponse struct {
	ID          string     `json:"id"`
	Code        string     `json:"code"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// ActiveSessionResponse is one entry of the session list view.
type ActiveSessionResponse struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
	OrderCount int       `json:"orderCount"`
}

// EligibleOrderResponse is one entry of the eligible order pool view.
type EligibleOrderResponse struct {
	ID           string              `json:"id"`
	Number       string              `json:"number"`
	CustomerName string              `json:"customerName"`
	Lines        []OrderLineResponse `json:"lines"`
}

// OrderLineResponse is one product position of an eligible order.
type OrderLineResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// PickingSnapshotResponse is the picking stage view of a session.
type PickingSnapshotResponse struct {
	Session SessionResponse       `json:"session"`
	Items   []PickingItemResponse `json:"items"`
	Orders  []MemberOrderResponse `json:"orders"`
}

// PickingItemResponse is one consolidated pick list position.
type PickingItemResponse struct {
	ProductID           string `json:"productId"`
	ProductName         string `json:"productName"`
	TotalQuantityNeeded int    `json:"totalQuantityNeeded"`
	QuantityPicked      int    `json:"quantityPicked"`
}

// MemberOrderResponse is one member order of a session.
type MemberOrderResponse struct {
	ID           string `json:"id"`
	Number       string `json:"number"`
	CustomerName string `json:"customerName"`
}

// PackingSnapshotResponse is the packing stage view of a session.
type PackingSnapshotResponse struct {
	Session        SessionResponse        `json:"session"`
	Orders         []PackingOrderResponse `json:"orders"`
	AvailableItems []PoolItemResponse     `json:"availableItems"`
}

// PackingOrderResponse is one member order during packing.
type PackingOrderResponse struct {
	ID           string                `json:"id"`
	Number       string                `json:"number"`
	CustomerName string                `json:"customerName"`
	Printed      bool                  `json:"printed"`
	PrintedAt    *time.Time            `json:"printedAt,omitempty"`
	Complete     bool                  `json:"complete"`
	Lines        []PackingLineResponse `json:"lines"`
}

// PackingLineResponse is one packing line of a member order.
type PackingLineResponse struct {
	ProductID      string `json:"productId"`
	ProductName    string `json:"productName"`
	QuantityNeeded int    `json:"quantityNeeded"`
	QuantityPacked int    `json:"quantityPacked"`
}

// PoolItemResponse is the pool state of one product.
type PoolItemResponse struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	TotalPicked int    `json:"totalPicked"`
	TotalPacked int    `json:"totalPacked"`
	Remaining   int    `json:"remaining"`
}

// LabelResponse is the result of a label print: the document plus the fresh
// packing snapshot.
type LabelResponse struct {
	Label    LabelDocumentResponse   `json:"label"`
	Snapshot PackingSnapshotResponse `json:"snapshot"`
}

// LabelDocumentResponse is the printable label document.
type LabelDocumentResponse struct {
	SessionCode  string              `json:"sessionCode"`
	OrderNumber  string              `json:"orderNumber"`
	CustomerName string              `json:"customerName"`
	PrintedAt    time.Time           `json:"printedAt"`
	Lines        []LabelLineResponse `json:"lines"`
}

// LabelLineResponse is one product position on a label.
type LabelLineResponse struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

// PackRemainingResponse reports the outcome of a pack-remaining loop: how
// many units were allocated, why the loop stopped (empty when the order was
// completed) and the fresh packing snapshot.
type PackRemainingResponse struct {
	PackedUnits int                     `json:"packedUnits"`
	StopReason  string                  `json:"stopReason,omitempty"`
	Snapshot    PackingSnapshotResponse `json:"snapshot"`
}

func toSessionResponse(header queries.GetSessionQueryResponse) SessionResponse {
	return SessionResponse{
		ID:          header.ID.String(),
		Code:        header.Code,
		Status:      header.Status,
		CreatedAt:   header.CreatedAt,
		CompletedAt: header.CompletedAt,
	}
}

func toPickingSnapshotResponse(list queries.GetPickingListQueryResponse) PickingSnapshotResponse {
	items := make([]PickingItemResponse, 0, len(list.Items))
	for _, item := range list.Items {
		items = append(items, PickingItemResponse{
			ProductID:           item.ProductID.String(),
			ProductName:         item.ProductName,
			TotalQuantityNeeded: item.TotalQuantityNeeded,
			QuantityPicked:      item.QuantityPicked,
		})
	}

	return PickingSnapshotResponse{
		Session: toSessionResponse(list.Session),
		Items:   items,
		Orders:  toMemberOrderResponses(list.Orders),
	}
}

func toMemberOrderResponses(orders []queries.MemberOrderResponse) []MemberOrderResponse {
	out := make([]MemberOrderResponse, 0, len(orders))
	for _, memberOrder := range orders {
		out = append(out, MemberOrderResponse{
			ID:           memberOrder.ID.String(),
			Number:       memberOrder.Number,
			CustomerName: memberOrder.CustomerName,
		})
	}
	return out
}

func toPackingSnapshotResponse(list queries.GetPackingListQueryResponse) PackingSnapshotResponse {
	orders := make([]PackingOrderResponse, 0, len(list.Orders))
	for _, packingOrder := range list.Orders {
		lines := make([]PackingLineResponse, 0, len(packingOrder.Lines))
		for _, line := range packingOrder.Lines {
			lines = append(lines, PackingLineResponse{
				ProductID:      line.ProductID.String(),
				ProductName:    line.ProductName,
				QuantityNeeded: line.QuantityNeeded,
				QuantityPacked: line.QuantityPacked,
			})
		}

		orders = append(orders, PackingOrderResponse{
			ID:           packingOrder.ID.String(),
			Number:       packingOrder.Number,
			CustomerName: packingOrder.CustomerName,
			Printed:      packingOrder.Printed,
			PrintedAt:    packingOrder.PrintedAt,
			Complete:     packingOrder.Complete,
			Lines:        lines,
		})
	}

	availableItems := make([]PoolItemResponse, 0, len(list.AvailableItems))
	for _, item := range list.AvailableItems {
		availableItems = append(availableItems, PoolItemResponse{
			ProductID:   item.ProductID.String(),
			ProductName: item.ProductName,
			TotalPicked: item.TotalPicked,
			TotalPacked: item.TotalPacked,
			Remaining:   item.Remaining,
		})
	}

	return PackingSnapshotResponse{
		Session:        toSessionResponse(list.Session),
		Orders:         orders,
		AvailableItems: availableItems,
	}
}

func toLabelDocumentResponse(document commands.LabelDocument) LabelDocumentResponse {
	lines := make([]LabelLineResponse, 0, len(document.Lines))
	for _, line := range document.Lines {
		lines = append(lines, LabelLineResponse{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
		})
	}

	return LabelDocumentResponse{
		SessionCode:  document.SessionCode,
		OrderNumber:  document.OrderNumber,
		CustomerName: document.CustomerName,
		PrintedAt:    document.PrintedAt,
		Lines:        lines,
	}
}
