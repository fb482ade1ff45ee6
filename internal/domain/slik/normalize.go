package slik

import (
	"encoding/json"
	"fmt"
	"strings"
)

// fieldSpec binds a canonical KTP field to its accepted key aliases and
// its default value. Aliases are checked in order; the first one carrying
// a non-empty value wins.
type fieldSpec struct {
	aliases      []string
	defaultValue string
	get          func(*KTPData) *string
}

var ktpFields = []fieldSpec{
	{[]string{"nik", "NIK"}, "", func(d *KTPData) *string { return &d.NIK }},
	{[]string{"nama", "nama_lengkap", "NAMA"}, "", func(d *KTPData) *string { return &d.Nama }},
	{[]string{"tempat_lahir", "TEMPAT_LAHIR"}, "", func(d *KTPData) *string { return &d.TempatLahir }},
	{[]string{"tanggal_lahir", "TANGGAL_LAHIR"}, "", func(d *KTPData) *string { return &d.TanggalLahir }},
	{[]string{"jenis_kelamin", "JENIS_KELAMIN"}, "", func(d *KTPData) *string { return &d.JenisKelamin }},
	{[]string{"golongan_darah", "GOL_DARAH"}, "", func(d *KTPData) *string { return &d.GolonganDarah }},
	{[]string{"alamat", "ALAMAT"}, "", func(d *KTPData) *string { return &d.Alamat }},
	{[]string{"rt_rw", "RT_RW"}, "", func(d *KTPData) *string { return &d.RTRW }},
	{[]string{"kel_desa", "KEL_DESA"}, "", func(d *KTPData) *string { return &d.KelDesa }},
	{[]string{"kecamatan", "KECAMATAN"}, "", func(d *KTPData) *string { return &d.Kecamatan }},
	{[]string{"agama", "AGAMA"}, "", func(d *KTPData) *string { return &d.Agama }},
	{[]string{"status_perkawinan", "STATUS_PERKAWINAN"}, "", func(d *KTPData) *string { return &d.StatusPerkawinan }},
	{[]string{"pekerjaan", "PEKERJAAN"}, "", func(d *KTPData) *string { return &d.Pekerjaan }},
	{[]string{"kewarganegaraan", "KEWARGANEGARAAN"}, DefaultKewarganegaraan, func(d *KTPData) *string { return &d.Kewarganegaraan }},
	{[]string{"berlaku_hingga", "BERLAKU_HINGGA"}, DefaultBerlakuHingga, func(d *KTPData) *string { return &d.BerlakuHingga }},
}

// MergeStrategy applies incoming field values onto a prior form state.
// The two implementations make the image-path and paste-path semantics
// explicit instead of accidental.
type MergeStrategy interface {
	Name() string
	Merge(prior, incoming KTPData) KTPData
}

// PartialMerge only overwrites fields the incoming data actually carries.
// Used for vision-model extraction: an omitted field never blanks out a
// value the user already typed.
var PartialMerge MergeStrategy = partialMerge{}

// FullReplaceWithDefaults replaces every field with the incoming value,
// falling back to the field default when empty. Used for the JSON-paste
// path.
var FullReplaceWithDefaults MergeStrategy = fullReplaceWithDefaults{}

type partialMerge struct{}

func (partialMerge) Name() string { return "partial_merge" }

func (partialMerge) Merge(prior, incoming KTPData) KTPData {
	merged := prior
	for _, f := range ktpFields {
		if v := *f.get(&incoming); strings.TrimSpace(v) != "" {
			*f.get(&merged) = v
		}
	}
	return merged
}

type fullReplaceWithDefaults struct{}

func (fullReplaceWithDefaults) Name() string { return "full_replace_with_defaults" }

func (fullReplaceWithDefaults) Merge(prior, incoming KTPData) KTPData {
	replaced := incoming
	for _, f := range ktpFields {
		if strings.TrimSpace(*f.get(&replaced)) == "" {
			*f.get(&replaced) = f.defaultValue
		}
	}
	return replaced
}

// NormalizeFromJSON parses a pasted JSON blob and resolves each canonical
// field through its alias list. Parsing failure returns ErrInvalidJSON and
// an empty KTPData; callers must leave prior form state untouched.
func NormalizeFromJSON(raw string) (KTPData, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var parsed map[string]interface{}
	if err := dec.Decode(&parsed); err != nil {
		return KTPData{}, ErrInvalidJSON
	}

	var data KTPData
	for _, f := range ktpFields {
		for _, alias := range f.aliases {
			if v, ok := parsed[alias]; ok {
				if s := stringify(v); s != "" {
					*f.get(&data) = s
					break
				}
			}
		}
	}
	return data, nil
}

// stringify coerces pasted scalar values to strings; payloads seen in the
// wild sometimes carry the NIK as a bare number.
func stringify(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return fmt.Sprintf("%t", val)
	default:
		return ""
	}
}
