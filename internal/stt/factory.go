package stt

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// CreateProvider creates an STT provider based on environment configuration
func CreateProvider() (Provider, error) {
	providerName := strings.ToLower(os.Getenv("STT_PROVIDER"))

	// Default to Google if not specified
	if providerName == "" {
		providerName = "google"
		log.Printf("[STT Factory] STT_PROVIDER not set, defaulting to 'google'")
	}

	switch providerName {
	case "google":
		return createGoogleProvider()
	case "whisper":
		return createWhisperProvider()
	case "mock":
		log.Printf("[STT Factory] Creating mock STT provider")
		return NewMockProvider(os.Getenv("MOCK_TRANSCRIPT")), nil
	default:
		return nil, fmt.Errorf("unsupported STT provider: %s. Supported: google, whisper, mock", providerName)
	}
}

func createGoogleProvider() (Provider, error) {
	apiKey := os.Getenv("GOOGLE_SPEECH_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GOOGLE_SPEECH_API_KEY environment variable is not set")
	}

	language := os.Getenv("STT_LANGUAGE")

	log.Printf("[STT Factory] Creating Google STT provider")
	return NewGoogleProvider(apiKey, language), nil
}

func createWhisperProvider() (Provider, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable is not set")
	}

	log.Printf("[STT Factory] Creating Whisper STT provider")
	return NewWhisperProvider(apiKey), nil
}
