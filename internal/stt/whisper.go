package stt

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// WhisperProvider implements STT using the OpenAI Whisper API.
type WhisperProvider struct {
	client *openai.Client
}

// NewWhisperProvider creates a Whisper STT provider.
func NewWhisperProvider(apiKey string) *WhisperProvider {
	return &WhisperProvider{client: openai.NewClient(apiKey)}
}

// Name returns the provider name
func (p *WhisperProvider) Name() string {
	return "whisper"
}

// Transcribe uploads the audio file to the Whisper API. Whisper has no
// explicit no-result signal, so an empty transcript maps to Unrecognized.
func (p *WhisperProvider) Transcribe(ctx context.Context, audioPath string) (*Result, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	}

	resp, err := p.client.CreateTranscription(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("createTranscription failed: %w", err)
	}

	transcript := strings.TrimSpace(resp.Text)
	if transcript == "" {
		log.Printf("[Whisper STT] Empty transcript, treating as unrecognized")
		return &Result{Unrecognized: true, Provider: p.Name()}, nil
	}

	log.Printf("[Whisper STT] Transcription successful: length=%d", len(transcript))
	return &Result{
		Transcript:  transcript,
		Provider:    p.Name(),
		RawResponse: resp.Text,
	}, nil
}
