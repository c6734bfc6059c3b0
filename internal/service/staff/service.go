package staff

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/teppen-ops/venue-backend/internal/domain/staff"
)

type StaffServiceImpl struct {
	staffRepo staff.StaffRepository
}

func NewStaffService(staffRepo staff.StaffRepository) staff.StaffService {
	return &StaffServiceImpl{staffRepo: staffRepo}
}

func (s *StaffServiceImpl) ListStaff(ctx context.Context, includeInactive bool, storeID string) (staff.ListStaffResponse, error) {
	list, err := s.staffRepo.List(ctx, !includeInactive)
	if err != nil {
		return staff.ListStaffResponse{}, fmt.Errorf("failed to list staff: %w", err)
	}

	resp := staff.ListStaffResponse{Staff: make([]staff.StaffResponse, 0, len(list))}
	for _, m := range list {
		if storeID != "" && !m.EligibleFor(storeID) {
			continue
		}
		resp.Staff = append(resp.Staff, staff.ToResponse(m))
	}
	return resp, nil
}

func (s *StaffServiceImpl) CreateStaff(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	created, err := s.staffRepo.Create(ctx, staff.Staff{ID: req.ID, Name: req.Name, Stores: req.Stores})
	if err != nil {
		return staff.StaffResponse{}, err
	}

	slog.Info("Staff created", "staff_id", created.ID, "name", created.Name)
	return staff.ToResponse(created), nil
}

func (s *StaffServiceImpl) RenameStaff(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	if err := s.staffRepo.UpdateName(ctx, req.ID, req.Name); err != nil {
		return staff.StaffResponse{}, err
	}

	if req.Stores != nil {
		if err := s.staffRepo.UpdateStores(ctx, req.ID, *req.Stores); err != nil {
			return staff.StaffResponse{}, err
		}
	}

	updated, err := s.staffRepo.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return staff.ToResponse(updated), nil
}

func (s *StaffServiceImpl) DeactivateStaff(ctx context.Context, id int) error {
	if err := s.staffRepo.Deactivate(ctx, id); err != nil {
		return err
	}
	slog.Info("Staff deactivated", "staff_id", id)
	return nil
}

func (s *StaffServiceImpl) ReassignStaffID(ctx context.Context, req staff.ReassignIDRequest) (staff.StaffResponse, error) {
	if err := req.Validate(); err != nil {
		return staff.StaffResponse{}, err
	}

	if err := s.staffRepo.ReassignID(ctx, req.FromID, req.ToID); err != nil {
		return staff.StaffResponse{}, err
	}

	slog.Info("Staff ID reassigned", "from_id", req.FromID, "to_id", req.ToID)

	updated, err := s.staffRepo.GetByID(ctx, req.ToID)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return staff.ToResponse(updated), nil
}
