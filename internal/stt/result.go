package stt

// Result represents the outcome of a speech-to-text transcription
type Result struct {
	Transcript   string  // The transcribed text, empty when Unrecognized
	Confidence   float64 // Confidence score (0.0-1.0), may be 0 if not provided
	Unrecognized bool    // True when the backend produced no confident transcription
	Provider     string  // The provider used (e.g., "google", "whisper")
	RawResponse  string  // Raw response from the provider (for debugging/logging)
}
