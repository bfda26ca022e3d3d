package transcribe

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"intervu/internal/audio"
	"intervu/internal/stt"
)

// Outcome is the result of running the voice pipeline on an answer
// recording. Unrecognized means the audio was processed but nothing
// confident came back; the candidate should simply retry.
type Outcome struct {
	Text         string
	Confidence   float64
	Unrecognized bool
	Source       audio.Source
}

// Transcriber runs raw answer audio through format normalization and a
// speech-recognition backend. All temporary files are removed on every
// exit path.
type Transcriber struct {
	provider   stt.Provider
	normalizer audio.Normalizer
}

func New(provider stt.Provider, normalizer audio.Normalizer) *Transcriber {
	return &Transcriber{provider: provider, normalizer: normalizer}
}

// Transcribe converts audioBytes into text. format is the upload's file
// extension (e.g. ".webm"); on the raw-fallback path the backend sees the
// temp file under this extension, so it must not lie about the container.
func (t *Transcriber) Transcribe(ctx context.Context, audioBytes []byte, format string) (*Outcome, error) {
	if len(audioBytes) == 0 {
		return &Outcome{Unrecognized: true}, nil
	}

	tmp, err := os.CreateTemp("", "answer_*"+tempSuffix(format))
	if err != nil {
		return nil, fmt.Errorf("failed to create temp audio file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(audioBytes); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("failed to write temp audio file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, fmt.Errorf("failed to close temp audio file: %w", err)
	}

	norm := t.normalizer.Normalize(ctx, tmpPath)
	if norm.Source == audio.SourceNormalized {
		defer os.Remove(norm.Path)
	}

	result, err := t.provider.Transcribe(ctx, norm.Path)
	if err != nil {
		return nil, fmt.Errorf("speech recognition failed: %w", err)
	}

	text := strings.TrimSpace(result.Transcript)
	if result.Unrecognized || text == "" {
		log.Printf("[Transcribe] Audio not recognized (provider: %s, source: %s)",
			t.provider.Name(), norm.Source)
		return &Outcome{Unrecognized: true, Source: norm.Source}, nil
	}

	log.Printf("[Transcribe] Recognized %d chars (provider: %s, confidence: %.2f, source: %s)",
		len(text), t.provider.Name(), result.Confidence, norm.Source)

	return &Outcome{
		Text:       text,
		Confidence: result.Confidence,
		Source:     norm.Source,
	}, nil
}

// tempSuffix sanitizes an upload extension into a temp-file suffix.
// os.CreateTemp treats its pattern literally, so anything that is not a
// plain extension falls back to ".wav".
func tempSuffix(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		return ".wav"
	}
	if !strings.HasPrefix(format, ".") {
		format = "." + format
	}
	if len(format) > 6 {
		return ".wav"
	}
	for _, r := range format[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ".wav"
		}
	}
	return format
}
