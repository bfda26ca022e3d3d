package stt

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// GoogleProvider implements STT using the Google Cloud Speech-to-Text REST
// API with API-key authentication.
type GoogleProvider struct {
	apiKey     string
	language   string
	httpClient *http.Client
}

// NewGoogleProvider creates a Google STT provider.
func NewGoogleProvider(apiKey, language string) *GoogleProvider {
	if language == "" {
		language = "en-US"
	}
	return &GoogleProvider{
		apiKey:     apiKey,
		language:   language,
		httpClient: &http.Client{Timeout: 90 * time.Second},
	}
}

// Name returns the provider name
func (p *GoogleProvider) Name() string {
	return "google"
}

// googleSTTRequest represents a Google Speech-to-Text API request
type googleSTTRequest struct {
	Config googleSTTConfig `json:"config"`
	Audio  googleSTTAudio  `json:"audio"`
}

type googleSTTConfig struct {
	Encoding                   string `json:"encoding,omitempty"`
	SampleRateHertz            int    `json:"sampleRateHertz,omitempty"`
	LanguageCode               string `json:"languageCode"`
	EnableAutomaticPunctuation bool   `json:"enableAutomaticPunctuation"`
}

type googleSTTAudio struct {
	Content string `json:"content"` // Base64 encoded
}

// googleSTTResponse represents a Google Speech-to-Text API response
type googleSTTResponse struct {
	Results []struct {
		Alternatives []struct {
			Transcript string  `json:"transcript"`
			Confidence float64 `json:"confidence"`
		} `json:"alternatives"`
	} `json:"results"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

// Transcribe sends an audio file to the Google Speech-to-Text API. Audio
// with no confident transcription comes back as an Unrecognized result.
func (p *GoogleProvider) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	startTime := time.Now()

	audioBytes, err := os.ReadFile(audioPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file: %w", err)
	}

	log.Printf("[Google STT] Processing audio file: %s, size: %d bytes", audioPath, len(audioBytes))

	// Tiny payloads are silence or a truncated recording, not a hard failure.
	if len(audioBytes) < 1000 {
		log.Printf("[Google STT] Audio file too small (%d bytes), treating as unrecognized", len(audioBytes))
		return &Result{Unrecognized: true, Provider: p.Name()}, nil
	}

	encoding, sampleRate := googleAudioConfig(filepath.Ext(audioPath))

	reqBody := googleSTTRequest{
		Config: googleSTTConfig{
			Encoding:                   encoding,
			SampleRateHertz:            sampleRate,
			LanguageCode:               p.language,
			EnableAutomaticPunctuation: true,
		},
		Audio: googleSTTAudio{
			Content: base64.StdEncoding.EncodeToString(audioBytes),
		},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	apiURL := fmt.Sprintf("https://speech.googleapis.com/v1/speech:recognize?key=%s", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewReader(reqJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request to Google STT: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[Google STT] API error: Status %d, Body: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("google STT API returned status %d: %s", resp.StatusCode, string(body))
	}

	var sttResp googleSTTResponse
	if err := json.Unmarshal(body, &sttResp); err != nil {
		log.Printf("[Google STT] Failed to parse response. Raw body: %s", string(body))
		return nil, fmt.Errorf("failed to parse Google STT response: %w", err)
	}

	if sttResp.Error != nil {
		return nil, fmt.Errorf("google STT API error %d (%s): %s",
			sttResp.Error.Code, sttResp.Error.Status, sttResp.Error.Message)
	}

	// No results means nothing was recognized. That is a normal outcome for
	// silent or unintelligible audio.
	if len(sttResp.Results) == 0 || len(sttResp.Results[0].Alternatives) == 0 {
		log.Printf("[Google STT] No transcription results, treating as unrecognized")
		return &Result{Unrecognized: true, Provider: p.Name(), RawResponse: string(body)}, nil
	}

	alt := sttResp.Results[0].Alternatives[0]
	transcript := strings.TrimSpace(alt.Transcript)
	if transcript == "" {
		return &Result{Unrecognized: true, Provider: p.Name(), RawResponse: string(body)}, nil
	}

	log.Printf("[Google STT] Transcription successful: confidence=%.2f, length=%d, duration=%v",
		alt.Confidence, len(transcript), time.Since(startTime))

	return &Result{
		Transcript:  transcript,
		Confidence:  alt.Confidence,
		Provider:    p.Name(),
		RawResponse: string(body),
	}, nil
}

// googleAudioConfig picks encoding hints by extension. The transcription
// pipeline normalizes to 16kHz WAV first, so the WAV branch is the common
// case; anything else lets the API detect the format itself.
func googleAudioConfig(ext string) (string, int) {
	if strings.ToLower(ext) == ".wav" {
		return "LINEAR16", 16000
	}
	return "", 0
}
