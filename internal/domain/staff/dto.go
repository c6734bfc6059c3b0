package staff

import (
	"github.com/teppen-ops/venue-backend/internal/domain/store"
	"github.com/teppen-ops/venue-backend/internal/pkg/validator"
)

type CreateStaffRequest struct {
	ID   int    `json:"id"`
	Name string `json:"name"`

	// Stores restricts the member to the listed venues. Omit or leave
	// empty for eligibility everywhere.
	Stores []string `json:"stores"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.ID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a positive integer",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	for _, id := range r.Stores {
		if !store.IsValid(id) {
			errs = append(errs, validator.ValidationError{
				Field:   "stores",
				Message: "stores contains an unknown store id",
			})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStaffRequest struct {
	ID   int    `json:"-"`
	Name string `json:"name"`

	// Stores, when present, replaces the eligibility list. Nil leaves it
	// untouched; an empty list clears the restriction.
	Stores *[]string `json:"stores"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if r.Stores != nil {
		for _, id := range *r.Stores {
			if !store.IsValid(id) {
				errs = append(errs, validator.ValidationError{
					Field:   "stores",
					Message: "stores contains an unknown store id",
				})
				break
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ReassignIDRequest moves a staff member to a new numeric ID. History rows
// keep the old ID; only the roster entry changes.
type ReassignIDRequest struct {
	FromID int `json:"from_id"`
	ToID   int `json:"to_id"`
}

func (r *ReassignIDRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FromID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "from_id",
			Message: "from_id must be a positive integer",
		})
	}
	if r.ToID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "to_id",
			Message: "to_id must be a positive integer",
		})
	}
	if r.FromID == r.ToID && r.FromID > 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "to_id",
			Message: "to_id must differ from from_id",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StaffResponse struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Stores   []string `json:"stores"`
	IsActive bool     `json:"is_active"`
}

func ToResponse(s Staff) StaffResponse {
	stores := s.Stores
	if stores == nil {
		stores = []string{}
	}
	return StaffResponse{ID: s.ID, Name: s.Name, Stores: stores, IsActive: s.IsActive}
}

type ListStaffResponse struct {
	Staff []StaffResponse `json:"staff"`
}
