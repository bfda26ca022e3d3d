package stt

import (
	"context"
	"strings"
)

// MockProvider returns a canned transcript. It backs local development and
// tests where no speech backend is reachable.
type MockProvider struct {
	// Transcript is returned for every call. Empty means every call comes
	// back unrecognized.
	Transcript string
}

func NewMockProvider(transcript string) *MockProvider {
	return &MockProvider{Transcript: transcript}
}

// Name returns the provider name
func (p *MockProvider) Name() string {
	return "mock"
}

// Transcribe returns the configured transcript without touching the audio.
func (p *MockProvider) Transcribe(_ context.Context, _ string) (*Result, error) {
	transcript := strings.TrimSpace(p.Transcript)
	if transcript == "" {
		return &Result{Unrecognized: true, Provider: p.Name()}, nil
	}
	return &Result{
		Transcript: transcript,
		Confidence: 1.0,
		Provider:   p.Name(),
	}, nil
}
