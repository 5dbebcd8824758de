package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTranslateURL is the MyMemory translation endpoint.
const DefaultTranslateURL = "https://api.mymemory.translated.net/get"

// Translator fetches translations from the MyMemory API.
type Translator struct {
	baseURL  string
	langPair string
	client   *http.Client
}

// NewTranslator creates a translator for the given language pair,
// for example "en|id". Empty arguments select the defaults.
func NewTranslator(baseURL, langPair string) *Translator {
	if baseURL == "" {
		baseURL = DefaultTranslateURL
	}
	if langPair == "" {
		langPair = "en|id"
	}
	return &Translator{
		baseURL:  baseURL,
		langPair: langPair,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// translateResponse is the part of the MyMemory payload we read.
type translateResponse struct {
	ResponseData struct {
		TranslatedText string `json:"translatedText"`
	} `json:"responseData"`
	ResponseStatus  int    `json:"responseStatus"`
	ResponseDetails string `json:"responseDetails"`
}

// Translate returns the translation of text, or an error when the service
// is unreachable or rejects the request.
func (t *Translator) Translate(ctx context.Context, text string) (string, error) {
	query := url.Values{}
	query.Set("q", text)
	query.Set("langpair", t.langPair)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translation service returned status %d", resp.StatusCode)
	}

	var payload translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	if payload.ResponseStatus != 0 && payload.ResponseStatus != http.StatusOK {
		return "", fmt.Errorf("translation service error: %s", payload.ResponseDetails)
	}

	translated := strings.TrimSpace(payload.ResponseData.TranslatedText)
	if translated == "" {
		return "", fmt.Errorf("empty translation returned")
	}
	return translated, nil
}
