package audio

import (
	"bytes"
	"context"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Source says where the audio handed to the recognizer came from.
type Source string

const (
	// SourceNormalized means the converter produced a mono 16kHz WAV.
	SourceNormalized Source = "normalized"
	// SourceRawFallback means conversion failed and the raw bytes are used
	// unmodified.
	SourceRawFallback Source = "raw_fallback"
)

// Normalization is the outcome of a best-effort conversion. When Source is
// SourceNormalized, Path points at a new file the caller must remove.
type Normalization struct {
	Path   string
	Source Source
}

// Normalizer converts an audio file into the form the speech backend
// handles best. Conversion failure is never fatal.
type Normalizer interface {
	Normalize(ctx context.Context, inputPath string) Normalization
}

// FFmpegNormalizer shells out to ffmpeg to produce a mono 16kHz WAV, the
// format speech recognition works best with.
type FFmpegNormalizer struct {
	// Binary is the converter executable, "ffmpeg" unless overridden.
	Binary string
}

func NewFFmpegNormalizer(binary string) *FFmpegNormalizer {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &FFmpegNormalizer{Binary: binary}
}

// Normalize converts inputPath to mono 16kHz WAV. On any converter failure
// it falls back to the original file rather than failing the pipeline.
func (n *FFmpegNormalizer) Normalize(ctx context.Context, inputPath string) Normalization {
	outputPath := strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + "_16khz.wav"

	cmd := exec.CommandContext(ctx, n.Binary, "-y", "-i", inputPath, "-ac", "1", "-ar", "16000", outputPath)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		log.Printf("[Audio] Conversion failed for %s: %v, stderr: %s. Using raw audio.",
			inputPath, err, strings.TrimSpace(stderr.String()))
		removePartialOutput(outputPath)
		return Normalization{Path: inputPath, Source: SourceRawFallback}
	}

	if _, err := os.Stat(outputPath); err != nil {
		log.Printf("[Audio] Converter exited cleanly but produced no output for %s. Using raw audio.", inputPath)
		removePartialOutput(outputPath)
		return Normalization{Path: inputPath, Source: SourceRawFallback}
	}

	log.Printf("[Audio] Converted %s to mono 16kHz WAV: %s", inputPath, outputPath)
	return Normalization{Path: outputPath, Source: SourceNormalized}
}

// removePartialOutput reaps whatever a failed converter run left behind so
// fallback exits never leak temp storage.
func removePartialOutput(outputPath string) {
	if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
		log.Printf("[Audio] Failed to remove partial output %s: %v", outputPath, err)
	}
}
