package service

import (
	"context"
	"time"

	"github.com/gobro228/ambulance-site/internal/apierror"
	"github.com/gobro228/ambulance-site/internal/dto"
	"github.com/gobro228/ambulance-site/internal/model"
	"github.com/gobro228/ambulance-site/internal/repository"

	"github.com/google/uuid"
)

// CallService is the dispatch surface: thin CRUD over call records. The
// inventory core only consumes it through the repository interface.
type CallService interface {
	Create(ctx context.Context, req dto.CreateCallRequest) (*dto.CallResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.CallResponse, error)
	List(ctx context.Context) ([]dto.CallResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.CallResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type callService struct {
	calls repository.CallRepository
}

func NewCallService(calls repository.CallRepository) CallService {
	return &callService{calls: calls}
}

func mapCall(c model.Call) dto.CallResponse {
	resp := dto.CallResponse{
		ID:       c.ID.String(),
		FIO:      c.FIO,
		Age:      c.Age,
		Address:  c.Address,
		Type:     c.Type,
		Priority: c.Priority,
		Date:     c.Date,
		Comment:  c.Comment,
		Status:   c.Status,
	}
	if c.CompletedAt != nil {
		s := c.CompletedAt.UTC().Format(time.RFC3339)
		resp.CompletedAt = &s
	}
	for _, ref := range c.UsageRefs {
		resp.UsageRefs = append(resp.UsageRefs, dto.CallUsageRefResponse{
			ItemID:   ref.ItemID.String(),
			Quantity: ref.Quantity,
			Notes:    ref.Notes,
		})
	}
	return resp
}

func (s *callService) Create(ctx context.Context, req dto.CreateCallRequest) (*dto.CallResponse, error) {
	call := &model.Call{
		FIO:      req.FIO,
		Age:      req.Age,
		Address:  req.Address,
		Type:     req.Type,
		Priority: req.Priority,
		Date:     req.Date,
		Comment:  req.Comment,
		Status:   model.CallStatusAccepted,
	}
	if err := s.calls.Create(ctx, call); err != nil {
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "failed to create call")
	}
	resp := mapCall(*call)
	return &resp, nil
}

func (s *callService) Get(ctx context.Context, id uuid.UUID) (*dto.CallResponse, error) {
	call, err := s.calls.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapCall(*call)
	return &resp, nil
}

func (s *callService) List(ctx context.Context) ([]dto.CallResponse, error) {
	calls, err := s.calls.List(ctx)
	if err != nil {
		return nil, apierror.Wrap(apierror.DependencyFailure, err, "failed to list calls")
	}
	resp := make([]dto.CallResponse, 0, len(calls))
	for _, c := range calls {
		resp = append(resp, mapCall(c))
	}
	return resp, nil
}

// UpdateStatus sets the new status; when the call transitions to its
// completed state, the completion time is recorded once.
func (s *callService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*dto.CallResponse, error) {
	var completedAt *time.Time
	if status == model.CallStatusCompleted {
		now := time.Now().UTC()
		completedAt = &now
	}
	if err := s.calls.UpdateStatus(ctx, id, status, completedAt); err != nil {
		return nil, err
	}
	call, err := s.calls.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := mapCall(*call)
	return &resp, nil
}

func (s *callService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.calls.Delete(ctx, id)
}
