package lead

import "github.com/salesops-id/salesops-backend-go/internal/pkg/validator"

type CreateLeadRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Source     *string `json:"source"`
	Notes      *string `json:"notes"`
	AssignedTo *string `json:"assigned_to"`
}

func (r *CreateLeadRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone is required"})
	} else if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a valid Indonesian phone number"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeadRequest struct {
	Name       *string `json:"name"`
	Phone      *string `json:"phone"`
	Source     *string `json:"source"`
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
	AssignedTo *string `json:"assigned_to"`
}

func (r *UpdateLeadRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name cannot be empty"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a valid Indonesian phone number"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of new, contacted, follow_up, closed, lost"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeadFilter struct {
	Status     *string
	AssignedTo *string
	Search     *string
	Page       int
	Limit      int
}

func (f *LeadFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, Statuses) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of new, contacted, follow_up, closed, lost"})
	}
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 100 {
		f.Limit = 20
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeadResponse struct {
	ID         string  `json:"lead_id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	Source     *string `json:"source"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes"`
	AssignedTo *string `json:"assigned_to"`
	CreatedBy  string  `json:"created_by"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type ListLeadsResponse struct {
	TotalCount int64          `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"total_pages"`
	Leads      []LeadResponse `json:"leads"`
}
