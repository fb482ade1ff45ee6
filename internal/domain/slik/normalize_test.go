package slik

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFromJSON_AliasResolution(t *testing.T) {
	data, err := NormalizeFromJSON(`{"NIK": "1234", "nama_lengkap": "Jane"}`)
	require.NoError(t, err)

	merged := FullReplaceWithDefaults.Merge(KTPData{}, data)

	assert.Equal(t, "1234", merged.NIK)
	assert.Equal(t, "Jane", merged.Nama)
	assert.Equal(t, "WNI", merged.Kewarganegaraan)
	assert.Equal(t, "SEUMUR HIDUP", merged.BerlakuHingga)
	assert.Empty(t, merged.TempatLahir)
	assert.Empty(t, merged.Alamat)
	assert.Empty(t, merged.Agama)
}

func TestNormalizeFromJSON_FirstAliasWins(t *testing.T) {
	data, err := NormalizeFromJSON(`{"nama": "Lowercase", "NAMA": "UPPERCASE"}`)
	require.NoError(t, err)
	assert.Equal(t, "Lowercase", data.Nama)
}

func TestNormalizeFromJSON_EmptyAliasFallsThrough(t *testing.T) {
	// An empty value does not shadow a later alias carrying data.
	data, err := NormalizeFromJSON(`{"nama": "", "nama_lengkap": "Jane"}`)
	require.NoError(t, err)
	assert.Equal(t, "Jane", data.Nama)
}

func TestNormalizeFromJSON_NumericNIK(t *testing.T) {
	data, err := NormalizeFromJSON(`{"nik": 3173051234567890}`)
	require.NoError(t, err)
	assert.Equal(t, "3173051234567890", data.NIK)
}

func TestNormalizeFromJSON_InvalidJSON(t *testing.T) {
	_, err := NormalizeFromJSON("{not json")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidJSON)
	assert.Equal(t, "invalid JSON, check formatting", err.Error())
}

func TestPartialMerge_KeepsPriorForOmittedFields(t *testing.T) {
	prior := DefaultKTPData()
	prior.NIK = "1111"
	prior.Alamat = "Jl. Sudirman No. 1"

	incoming := KTPData{Nama: "BUDI SANTOSO", TempatLahir: "JAKARTA"}

	merged := PartialMerge.Merge(prior, incoming)

	assert.Equal(t, "1111", merged.NIK)
	assert.Equal(t, "Jl. Sudirman No. 1", merged.Alamat)
	assert.Equal(t, "BUDI SANTOSO", merged.Nama)
	assert.Equal(t, "JAKARTA", merged.TempatLahir)
	assert.Equal(t, "WNI", merged.Kewarganegaraan)
}

func TestPartialMerge_NeverBlanksFilledField(t *testing.T) {
	prior := KTPData{Nama: "JANE DOE"}
	incoming := KTPData{Nama: "   "}

	merged := PartialMerge.Merge(prior, incoming)
	assert.Equal(t, "JANE DOE", merged.Nama)
}

func TestFullReplaceWithDefaults_DiscardsPrior(t *testing.T) {
	prior := KTPData{Nama: "OLD NAME", Alamat: "OLD ADDRESS"}
	incoming := KTPData{NIK: "2222"}

	merged := FullReplaceWithDefaults.Merge(prior, incoming)

	assert.Equal(t, "2222", merged.NIK)
	assert.Empty(t, merged.Nama)
	assert.Empty(t, merged.Alamat)
	assert.Equal(t, "WNI", merged.Kewarganegaraan)
	assert.Equal(t, "SEUMUR HIDUP", merged.BerlakuHingga)
}

func TestDefaultKTPData(t *testing.T) {
	d := DefaultKTPData()
	assert.Equal(t, "WNI", d.Kewarganegaraan)
	assert.Equal(t, "SEUMUR HIDUP", d.BerlakuHingga)
	assert.Empty(t, d.NIK)
	assert.Empty(t, d.Nama)
}
