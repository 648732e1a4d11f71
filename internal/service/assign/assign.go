// Package assign routes an order to a workshop: it derives the new
// status from the workshop's display name and persists workshop,
// operator and status as one update.
package assign

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tekstil-golang/internal/constants"
	"tekstil-golang/internal/storage"
	"tekstil-golang/internal/turkish"
)

var (
	ErrWorkshopRequired = errors.New("workshop is required")
	ErrOrderCompleted   = errors.New("order is already completed")
)

type AssignStorage interface {
	GetOrder(ctx context.Context, id int) (*storage.Order, error)
	GetWorkshop(ctx context.Context, id int) (*storage.Workshop, error)
	AssignOrder(ctx context.Context, orderID int, workshopID int, operatorID *int, status storage.OrderStatus) error
	SaveModelCost(ctx context.Context, req storage.SaveModelCost) (int64, error)
	SaveOrderLog(ctx context.Context, orderID int, action, detail string) error
}

type Service struct {
	storage AssignStorage
}

func NewService(storage AssignStorage) *Service {
	return &Service{storage: storage}
}

// DeriveStatus is a pure function of the target workshop's display
// name. Matching is substring-based over Turkish-folded text, in this
// precedence: completed keywords, then unassigned, then any selected
// workshop means in progress. Without a selection the status is kept.
func DeriveStatus(workshopName string, selected bool, current storage.OrderStatus) storage.OrderStatus {
	if !selected {
		return current
	}

	folded := turkish.Normalize(workshopName)

	for _, kw := range constants.CompletedKeywords {
		if strings.Contains(folded, kw) {
			return storage.StatusCompleted
		}
	}
	for _, kw := range constants.UnassignedKeywords {
		if strings.Contains(folded, kw) {
			return storage.StatusUnassigned
		}
	}

	return storage.StatusInProgress
}

type Request struct {
	WorkshopID   int                     `json:"workshop_id"`
	OperatorID   *int                    `json:"operator_id"`
	PendingCosts []storage.SaveModelCost `json:"pending_costs"`
}

// Result reports the assignment outcome. CostLinesSaved may be less
// than CostLinesTotal: pending cost lines are committed one by one
// with no rollback, a failure leaves the earlier lines in place.
type Result struct {
	Order          *storage.Order `json:"order"`
	CostLinesTotal int            `json:"cost_lines_total"`
	CostLinesSaved int            `json:"cost_lines_saved"`

	CostLineErr error `json:"-"`
}

func (s *Service) Assign(ctx context.Context, orderID int, req Request) (*Result, error) {
	const op = "service.assign.Assign"

	if req.WorkshopID == 0 {
		return nil, ErrWorkshopRequired
	}

	order, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if order.Status == storage.StatusCompleted {
		return nil, ErrOrderCompleted
	}

	workshop, err := s.storage.GetWorkshop(ctx, req.WorkshopID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	status := DeriveStatus(workshop.Name, true, order.Status)

	if err := s.storage.AssignOrder(ctx, orderID, req.WorkshopID, req.OperatorID, status); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	detail := fmt.Sprintf("atölye=%s durum=%s", workshop.Name, status)
	if err := s.storage.SaveOrderLog(ctx, orderID, "assign", detail); err != nil {
		return nil, fmt.Errorf("%s: order log: %w", op, err)
	}

	result := &Result{CostLinesTotal: len(req.PendingCosts)}
	for _, line := range req.PendingCosts {
		if _, err := s.storage.SaveModelCost(ctx, line); err != nil {
			result.CostLineErr = fmt.Errorf("%s: cost line %d of %d: %w",
				op, result.CostLinesSaved+1, result.CostLinesTotal, err)
			break
		}
		result.CostLinesSaved++
	}

	updated, err := s.storage.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%s: reload: %w", op, err)
	}
	result.Order = updated

	return result, nil
}
