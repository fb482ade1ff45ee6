// Package vision extracts structured identity fields from KTP card
// photos through the Gemini generateContent REST endpoint.
package vision

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/salesops-id/salesops-backend-go/internal/domain/slik"
)

const extractionPrompt = `Ekstrak semua field dari foto KTP ini dan kembalikan sebagai JSON.
Field yang harus diisi: nik, nama, tempat_lahir, tanggal_lahir, jenis_kelamin,
golongan_darah, alamat, rt_rw, kel_desa, kecamatan, agama, status_perkawinan,
pekerjaan, kewarganegaraan, berlaku_hingga.
Jika sebuah field tidak terbaca, isi dengan string kosong. Jangan menambahkan
penjelasan apa pun di luar JSON.`

type GeminiClient struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
}

func NewGeminiClient(apiKey, model, baseURL string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		model:   model,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

type generationConfig struct {
	ResponseMimeType string `json:"response_mime_type,omitempty"`
	Temperature      float64 `json:"temperature"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ExtractIdentityFields sends the image to the model and normalizes the
// JSON it returns through the same alias resolution used for pasted JSON.
func (c *GeminiClient) ExtractIdentityFields(ctx context.Context, image []byte, mimeType string) (slik.KTPData, error) {
	reqBody := generateContentRequest{
		Contents: []content{{
			Parts: []part{
				{Text: extractionPrompt},
				{InlineData: &inlineData{
					MimeType: mimeType,
					Data:     base64.StdEncoding.EncodeToString(image),
				}},
			},
		}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			Temperature:      0,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return slik.KTPData{}, fmt.Errorf("failed to marshal vision request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return slik.KTPData{}, fmt.Errorf("failed to build vision request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return slik.KTPData{}, fmt.Errorf("vision request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return slik.KTPData{}, fmt.Errorf("failed to read vision response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return slik.KTPData{}, fmt.Errorf("%w: vision API returned status %d", slik.ErrExtractionFailed, resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return slik.KTPData{}, fmt.Errorf("failed to decode vision response: %w", err)
	}
	if parsed.Error != nil {
		return slik.KTPData{}, fmt.Errorf("%w: %s", slik.ErrExtractionFailed, parsed.Error.Message)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return slik.KTPData{}, fmt.Errorf("%w: empty model response", slik.ErrExtractionFailed)
	}

	data, err := slik.NormalizeFromJSON(parsed.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return slik.KTPData{}, fmt.Errorf("%w: model returned malformed JSON", slik.ErrExtractionFailed)
	}
	return data, nil
}
