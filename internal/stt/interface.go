package stt

import "context"

// Provider defines the interface for speech-to-text backends
type Provider interface {
	// Transcribe transcribes an audio file and returns the result. A result
	// with Unrecognized set is a normal outcome, not an error.
	Transcribe(ctx context.Context, audioPath string) (*Result, error)

	// Name returns the name of the provider (e.g., "google", "whisper")
	Name() string
}
