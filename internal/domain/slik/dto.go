package slik

import (
	"github.com/salesops-id/salesops-backend-go/internal/pkg/validator"
)

// ========================================
// SLIK DTOs
// ========================================

type NormalizeJSONRequest struct {
	Prior   KTPData `json:"prior"`
	RawJSON string  `json:"raw_json"`
}

func (r *NormalizeJSONRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RawJSON) {
		errs = append(errs, validator.ValidationError{
			Field:   "raw_json",
			Message: "raw_json is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type FinalizeRequest struct {
	Data        KTPData `json:"data"`
	KTPImageURL *string `json:"ktp_image_url,omitempty"`
}

// Validate enforces the save gate: a verification cannot be stored
// without an ID number and a name.
func (r *FinalizeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Data.NIK) {
		errs = append(errs, validator.ValidationError{
			Field:   "nik",
			Message: "nik is required",
		})
	}

	if validator.IsEmpty(r.Data.Nama) {
		errs = append(errs, validator.ValidationError{
			Field:   "nama",
			Message: "nama is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SlikResponse struct {
	ID            string  `json:"slik_id"`
	CreatedBy     string  `json:"created_by"`
	NIK           string  `json:"nik"`
	FullName      string  `json:"full_name"`
	BirthPlace    *string `json:"birth_place,omitempty"`
	BirthDate     *string `json:"birth_date,omitempty"`
	Gender        *string `json:"gender,omitempty"`
	BloodType     *string `json:"blood_type,omitempty"`
	Address       *string `json:"address,omitempty"`
	RT            *string `json:"rt,omitempty"`
	RW            *string `json:"rw,omitempty"`
	Village       *string `json:"village,omitempty"`
	District      *string `json:"district,omitempty"`
	Religion      *string `json:"religion,omitempty"`
	MaritalStatus *string `json:"marital_status,omitempty"`
	Occupation    *string `json:"occupation,omitempty"`
	Nationality   *string `json:"nationality,omitempty"`
	ExpiryDate    *string `json:"expiry_date,omitempty"`
	KTPImageURL   *string `json:"ktp_image_url,omitempty"`
	Status        string  `json:"status"`
	CreatedAt     string  `json:"created_at"`
}

// ExtractionResponse carries the merged form state back to the client
// together with the defaults to reset to after a save.
type ExtractionResponse struct {
	Data KTPData `json:"data"`
}
