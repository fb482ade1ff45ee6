package slik

import "time"

// Verification status values for a stored slik row.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// KTPData is the canonical 15-field identity form captured from an
// Indonesian KTP. All fields are free text; kewarganegaraan and
// berlaku_hingga carry defaults when nothing resolves.
type KTPData struct {
	NIK              string `json:"nik"`
	Nama             string `json:"nama"`
	TempatLahir      string `json:"tempat_lahir"`
	TanggalLahir     string `json:"tanggal_lahir"`
	JenisKelamin     string `json:"jenis_kelamin"`
	GolonganDarah    string `json:"golongan_darah"`
	Alamat           string `json:"alamat"`
	RTRW             string `json:"rt_rw"`
	KelDesa          string `json:"kel_desa"`
	Kecamatan        string `json:"kecamatan"`
	Agama            string `json:"agama"`
	StatusPerkawinan string `json:"status_perkawinan"`
	Pekerjaan        string `json:"pekerjaan"`
	Kewarganegaraan  string `json:"kewarganegaraan"`
	BerlakuHingga    string `json:"berlaku_hingga"`
}

const (
	DefaultKewarganegaraan = "WNI"
	DefaultBerlakuHingga   = "SEUMUR HIDUP"
)

// DefaultKTPData returns the empty form state: all fields blank except
// the two defaulted ones.
func DefaultKTPData() KTPData {
	return KTPData{
		Kewarganegaraan: DefaultKewarganegaraan,
		BerlakuHingga:   DefaultBerlakuHingga,
	}
}

// Slik is a finalized KTP verification persisted for SLIK checking.
type Slik struct {
	ID            string
	CreatedBy     string
	NIK           string
	FullName      string
	BirthPlace    *string
	BirthDate     *time.Time
	Gender        *string
	BloodType     *string
	Address       *string
	RT            *string
	RW            *string
	Village       *string
	District      *string
	Religion      *string
	MaritalStatus *string
	Occupation    *string
	Nationality   *string
	ExpiryDate    *time.Time
	KTPImageURL   *string
	Status        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
