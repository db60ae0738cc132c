package requests

import (
	"github.com/minne100/ViduUI/internal/domain/generation"
)

// ImageToVideoRequest represents an image-to-video submission.
type ImageToVideoRequest struct {
	Model             string   `json:"model"`
	Images            []string `json:"images"`
	Prompt            string   `json:"prompt"`
	Duration          int      `json:"duration"`
	Seed              int      `json:"seed"`
	Resolution        string   `json:"resolution"`
	MovementAmplitude string   `json:"movement_amplitude"`
	BGM               bool     `json:"bgm"`
	Payload           string   `json:"payload"`
	CallbackURL       string   `json:"callback_url"`
}

// ToDomain converts the request to domain parameters.
func (r *ImageToVideoRequest) ToDomain() generation.ImageToVideoParams {
	return generation.ImageToVideoParams{
		Model:             generation.Model(r.Model),
		Images:            r.Images,
		Prompt:            r.Prompt,
		Duration:          r.Duration,
		Seed:              r.Seed,
		Resolution:        generation.Resolution(r.Resolution),
		MovementAmplitude: generation.MovementAmplitude(r.MovementAmplitude),
		BGM:               r.BGM,
		Payload:           r.Payload,
		CallbackURL:       r.CallbackURL,
	}
}

// ReferenceToVideoRequest represents a reference-to-video submission.
type ReferenceToVideoRequest struct {
	Model             string   `json:"model"`
	Images            []string `json:"images"`
	Prompt            string   `json:"prompt"`
	Duration          int      `json:"duration"`
	Seed              int      `json:"seed"`
	AspectRatio       string   `json:"aspect_ratio"`
	Resolution        string   `json:"resolution"`
	MovementAmplitude string   `json:"movement_amplitude"`
	BGM               bool     `json:"bgm"`
	Payload           string   `json:"payload"`
	CallbackURL       string   `json:"callback_url"`
}

// ToDomain converts the request to domain parameters.
func (r *ReferenceToVideoRequest) ToDomain() generation.ReferenceToVideoParams {
	return generation.ReferenceToVideoParams{
		Model:             generation.Model(r.Model),
		Images:            r.Images,
		Prompt:            r.Prompt,
		Duration:          r.Duration,
		Seed:              r.Seed,
		AspectRatio:       generation.AspectRatio(r.AspectRatio),
		Resolution:        generation.Resolution(r.Resolution),
		MovementAmplitude: generation.MovementAmplitude(r.MovementAmplitude),
		BGM:               r.BGM,
		Payload:           r.Payload,
		CallbackURL:       r.CallbackURL,
	}
}

// StartEndToVideoRequest represents a start-end-to-video submission.
type StartEndToVideoRequest struct {
	Model             string   `json:"model"`
	Images            []string `json:"images"`
	Prompt            string   `json:"prompt"`
	Duration          int      `json:"duration"`
	Seed              int      `json:"seed"`
	Resolution        string   `json:"resolution"`
	MovementAmplitude string   `json:"movement_amplitude"`
	BGM               bool     `json:"bgm"`
	Payload           string   `json:"payload"`
	CallbackURL       string   `json:"callback_url"`
}

// ToDomain converts the request to domain parameters.
func (r *StartEndToVideoRequest) ToDomain() generation.StartEndToVideoParams {
	return generation.StartEndToVideoParams{
		Model:             generation.Model(r.Model),
		Images:            r.Images,
		Prompt:            r.Prompt,
		Duration:          r.Duration,
		Seed:              r.Seed,
		Resolution:        generation.Resolution(r.Resolution),
		MovementAmplitude: generation.MovementAmplitude(r.MovementAmplitude),
		BGM:               r.BGM,
		Payload:           r.Payload,
		CallbackURL:       r.CallbackURL,
	}
}

// TextToVideoRequest represents a text-to-video submission.
type TextToVideoRequest struct {
	Model             string `json:"model"`
	Style             string `json:"style"`
	Prompt            string `json:"prompt"`
	Duration          int    `json:"duration"`
	Seed              int    `json:"seed"`
	AspectRatio       string `json:"aspect_ratio"`
	Resolution        string `json:"resolution"`
	MovementAmplitude string `json:"movement_amplitude"`
	BGM               bool   `json:"bgm"`
	Payload           string `json:"payload"`
	CallbackURL       string `json:"callback_url"`
}

// ToDomain converts the request to domain parameters.
func (r *TextToVideoRequest) ToDomain() generation.TextToVideoParams {
	return generation.TextToVideoParams{
		Model:             generation.Model(r.Model),
		Style:             generation.Style(r.Style),
		Prompt:            r.Prompt,
		Duration:          r.Duration,
		Seed:              r.Seed,
		AspectRatio:       generation.AspectRatio(r.AspectRatio),
		Resolution:        generation.Resolution(r.Resolution),
		MovementAmplitude: generation.MovementAmplitude(r.MovementAmplitude),
		BGM:               r.BGM,
		Payload:           r.Payload,
		CallbackURL:       r.CallbackURL,
	}
}

// UpscaleRequest represents an upscale submission.
type UpscaleRequest struct {
	VideoURL          string `json:"video_url"`
	VideoCreationID   string `json:"video_creation_id"`
	UpscaleResolution string `json:"upscale_resolution"`
	Payload           string `json:"payload"`
	CallbackURL       string `json:"callback_url"`
}

// ToDomain converts the request to domain parameters.
func (r *UpscaleRequest) ToDomain() generation.UpscaleParams {
	return generation.UpscaleParams{
		VideoURL:          r.VideoURL,
		VideoCreationID:   r.VideoCreationID,
		UpscaleResolution: generation.UpscaleResolution(r.UpscaleResolution),
		Payload:           r.Payload,
		CallbackURL:       r.CallbackURL,
	}
}

// LipSyncRequest represents a lip-sync submission.
type LipSyncRequest struct {
	VideoURL    string  `json:"video_url"`
	AudioURL    string  `json:"audio_url"`
	Text        string  `json:"text"`
	Speed       float64 `json:"speed"`
	CharacterID string  `json:"character_id"`
	Volume      int     `json:"volume"`
	Language    string  `json:"language"`
	Payload     string  `json:"payload"`
	CallbackURL string  `json:"callback_url"`
}

// ToDomain converts the request to domain parameters.
func (r *LipSyncRequest) ToDomain() generation.LipSyncParams {
	return generation.LipSyncParams{
		VideoURL:    r.VideoURL,
		AudioURL:    r.AudioURL,
		Text:        r.Text,
		Speed:       r.Speed,
		CharacterID: r.CharacterID,
		Volume:      r.Volume,
		Language:    r.Language,
		Payload:     r.Payload,
		CallbackURL: r.CallbackURL,
	}
}

// TextToAudioRequest represents a text-to-audio submission.
type TextToAudioRequest struct {
	Model       string  `json:"model"`
	Prompt      string  `json:"prompt"`
	Duration    float64 `json:"duration"`
	Seed        int     `json:"seed"`
	Payload     string  `json:"payload"`
	CallbackURL string  `json:"callback_url"`
}

// ToDomain converts the request to domain parameters.
func (r *TextToAudioRequest) ToDomain() generation.TextToAudioParams {
	return generation.TextToAudioParams{
		Model:       generation.AudioModel(r.Model),
		Prompt:      r.Prompt,
		Duration:    r.Duration,
		Seed:        r.Seed,
		Payload:     r.Payload,
		CallbackURL: r.CallbackURL,
	}
}

// TimingPromptRequest is one timed sound event.
type TimingPromptRequest struct {
	From   float64 `json:"from"`
	To     float64 `json:"to"`
	Prompt string  `json:"prompt"`
}

// TimingToAudioRequest represents a timing-to-audio submission.
type TimingToAudioRequest struct {
	Model         string                `json:"model"`
	TimingPrompts []TimingPromptRequest `json:"timing_prompts"`
	Duration      float64               `json:"duration"`
	Seed          int                   `json:"seed"`
	Payload       string                `json:"payload"`
	CallbackURL   string                `json:"callback_url"`
}

// ToDomain converts the request to domain parameters.
func (r *TimingToAudioRequest) ToDomain() generation.TimingToAudioParams {
	events := make([]generation.TimingPrompt, len(r.TimingPrompts))
	for i, event := range r.TimingPrompts {
		events[i] = generation.TimingPrompt{
			From:   event.From,
			To:     event.To,
			Prompt: event.Prompt,
		}
	}
	return generation.TimingToAudioParams{
		Model:         generation.AudioModel(r.Model),
		TimingPrompts: events,
		Duration:      r.Duration,
		Seed:          r.Seed,
		Payload:       r.Payload,
		CallbackURL:   r.CallbackURL,
	}
}
