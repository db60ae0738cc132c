package generation

import (
	"strings"
	"unicode/utf8"
)

// Field limits enforced by the remote service and checked locally
// before submitting.
const (
	MaxPromptLength  = 1500
	MaxPayloadLength = 1048576

	MinLipSyncTextLength = 4
	MaxLipSyncTextLength = 2000
	MinLipSyncSpeed      = 0.5
	MaxLipSyncSpeed      = 1.5
	MaxLipSyncVolume     = 10

	MinAudioDuration     = 2.0
	MaxAudioDuration     = 10.0
	DefaultAudioDuration = 10.0
)

// ImageToVideoParams describes an image-to-video job. Images holds
// exactly one entry: an HTTPS URL or a base64 data URL.
type ImageToVideoParams struct {
	Model             Model             `json:"model"`
	Images            []string          `json:"images"`
	Prompt            string            `json:"prompt,omitempty"`
	Duration          int               `json:"duration"`
	Seed              int               `json:"seed,omitempty"`
	Resolution        Resolution        `json:"resolution,omitempty"`
	MovementAmplitude MovementAmplitude `json:"movement_amplitude,omitempty"`
	BGM               bool              `json:"bgm,omitempty"`
	Payload           string            `json:"payload,omitempty"`
	CallbackURL       string            `json:"callback_url,omitempty"`
}

// Normalize fills the model's default duration when unset. Call it
// before Validate so the submitted payload always carries a concrete
// duration.
func (p *ImageToVideoParams) Normalize() {
	if p.Duration == 0 {
		p.Duration = DefaultDurations[p.Model]
	}
}

// Validate checks the parameters against the image-to-video limits.
func (p *ImageToVideoParams) Validate() error {
	if len(p.Images) != 1 {
		return invalidf("images", "images must contain exactly one image")
	}
	if err := validatePrompt(p.Prompt, false); err != nil {
		return err
	}
	if err := validatePayload(p.Payload); err != nil {
		return err
	}
	return validateDuration(ImageToVideoDurations, p.Model, p.Duration)
}

// ReferenceToVideoParams describes a reference-to-video job driven by
// one to seven reference images plus a required prompt.
type ReferenceToVideoParams struct {
	Model             Model             `json:"model"`
	Images            []string          `json:"images"`
	Prompt            string            `json:"prompt"`
	Duration          int               `json:"duration"`
	Seed              int               `json:"seed,omitempty"`
	AspectRatio       AspectRatio       `json:"aspect_ratio,omitempty"`
	Resolution        Resolution        `json:"resolution,omitempty"`
	MovementAmplitude MovementAmplitude `json:"movement_amplitude,omitempty"`
	BGM               bool              `json:"bgm,omitempty"`
	Payload           string            `json:"payload,omitempty"`
	CallbackURL       string            `json:"callback_url,omitempty"`
}

// Normalize fills the model's default duration when unset.
func (p *ReferenceToVideoParams) Normalize() {
	if p.Duration == 0 {
		p.Duration = DefaultDurations[p.Model]
	}
}

// Validate checks the parameters against the reference-to-video limits.
func (p *ReferenceToVideoParams) Validate() error {
	if len(p.Images) < 1 || len(p.Images) > 7 {
		return invalidf("images", "images must contain between one and seven images")
	}
	if err := validatePrompt(p.Prompt, true); err != nil {
		return err
	}
	if err := validatePayload(p.Payload); err != nil {
		return err
	}
	return validateDuration(ReferenceToVideoDurations, p.Model, p.Duration)
}

// StartEndToVideoParams describes a start-end-to-video job. Images
// holds exactly two entries: the first frame and the last frame.
type StartEndToVideoParams struct {
	Model             Model             `json:"model"`
	Images            []string          `json:"images"`
	Prompt            string            `json:"prompt,omitempty"`
	Duration          int               `json:"duration"`
	Seed              int               `json:"seed,omitempty"`
	Resolution        Resolution        `json:"resolution,omitempty"`
	MovementAmplitude MovementAmplitude `json:"movement_amplitude,omitempty"`
	BGM               bool              `json:"bgm,omitempty"`
	Payload           string            `json:"payload,omitempty"`
	CallbackURL       string            `json:"callback_url,omitempty"`
}

// Normalize fills the model's default duration when unset.
func (p *StartEndToVideoParams) Normalize() {
	if p.Duration == 0 {
		p.Duration = DefaultDurations[p.Model]
	}
}

// Validate checks the parameters against the start-end-to-video limits.
func (p *StartEndToVideoParams) Validate() error {
	if len(p.Images) != 2 {
		return invalidf("images", "images must contain exactly two images: the first frame and the last frame")
	}
	if err := validatePrompt(p.Prompt, false); err != nil {
		return err
	}
	if err := validatePayload(p.Payload); err != nil {
		return err
	}
	return validateDuration(StartEndToVideoDurations, p.Model, p.Duration)
}

// TextToVideoParams describes a text-to-video job.
type TextToVideoParams struct {
	Model             Model             `json:"model"`
	Style             Style             `json:"style"`
	Prompt            string            `json:"prompt"`
	Duration          int               `json:"duration"`
	Seed              int               `json:"seed,omitempty"`
	AspectRatio       AspectRatio       `json:"aspect_ratio,omitempty"`
	Resolution        Resolution        `json:"resolution,omitempty"`
	MovementAmplitude MovementAmplitude `json:"movement_amplitude,omitempty"`
	BGM               bool              `json:"bgm,omitempty"`
	Payload           string            `json:"payload,omitempty"`
	CallbackURL       string            `json:"callback_url,omitempty"`
}

// Normalize fills the general style and the model's default duration
// when unset.
func (p *TextToVideoParams) Normalize() {
	if p.Style == "" {
		p.Style = StyleGeneral
	}
	if p.Duration == 0 {
		p.Duration = DefaultDurations[p.Model]
	}
}

// Validate checks the parameters against the text-to-video limits.
func (p *TextToVideoParams) Validate() error {
	if err := validatePrompt(p.Prompt, true); err != nil {
		return err
	}
	if p.Style != StyleGeneral && p.Style != StyleAnime {
		return invalidf("style", "style must be %s or %s", StyleGeneral, StyleAnime)
	}
	if err := validatePayload(p.Payload); err != nil {
		return err
	}
	return validateDuration(TextToVideoDurations, p.Model, p.Duration)
}

// UpscaleParams describes an upscale job. The source is either a video
// URL or the creation ID of an earlier generation task.
type UpscaleParams struct {
	VideoURL          string            `json:"video_url,omitempty"`
	VideoCreationID   string            `json:"video_creation_id,omitempty"`
	UpscaleResolution UpscaleResolution `json:"upscale_resolution,omitempty"`
	Payload           string            `json:"payload,omitempty"`
	CallbackURL       string            `json:"callback_url,omitempty"`
}

// Validate checks that an upscale source and a known target resolution
// are present.
func (p *UpscaleParams) Validate() error {
	if p.VideoURL == "" && p.VideoCreationID == "" {
		return invalidf("video_url", "either video_url or video_creation_id is required")
	}
	switch p.UpscaleResolution {
	case "", Upscale1080p, Upscale2K, Upscale4K, Upscale8K:
	default:
		return invalidf("upscale_resolution", "upscale_resolution must be one of 1080p, 2K, 4K, 8K")
	}
	return validatePayload(p.Payload)
}

// LipSyncParams describes a lip-sync job. The mouth movement is driven
// either by an audio file (AudioURL) or by synthesized speech (Text
// plus the optional voice controls).
type LipSyncParams struct {
	VideoURL    string  `json:"video_url"`
	AudioURL    string  `json:"audio_url,omitempty"`
	Text        string  `json:"text,omitempty"`
	Speed       float64 `json:"speed,omitempty"`
	CharacterID string  `json:"character_id,omitempty"`
	Volume      int     `json:"volume,omitempty"`
	Language    string  `json:"language,omitempty"`
	Payload     string  `json:"payload,omitempty"`
	CallbackURL string  `json:"callback_url,omitempty"`
}

// Validate checks the lip-sync driving mode and the text voice limits.
func (p *LipSyncParams) Validate() error {
	if p.VideoURL == "" {
		return invalidf("video_url", "video_url is required")
	}
	if p.AudioURL == "" && p.Text == "" {
		return invalidf("audio_url", "either audio_url or text is required")
	}
	if p.Text != "" {
		if n := utf8.RuneCountInString(p.Text); n < MinLipSyncTextLength || n > MaxLipSyncTextLength {
			return invalidf("text", "text must be between %d and %d characters", MinLipSyncTextLength, MaxLipSyncTextLength)
		}
	}
	if p.Speed != 0 && (p.Speed < MinLipSyncSpeed || p.Speed > MaxLipSyncSpeed) {
		return invalidf("speed", "speed must be between %v and %v", MinLipSyncSpeed, MaxLipSyncSpeed)
	}
	if p.Volume < 0 || p.Volume > MaxLipSyncVolume {
		return invalidf("volume", "volume must be between 0 and %d", MaxLipSyncVolume)
	}
	return validatePayload(p.Payload)
}

// TextToAudioParams describes a text-to-audio job.
type TextToAudioParams struct {
	Model       AudioModel `json:"model"`
	Prompt      string     `json:"prompt"`
	Duration    float64    `json:"duration,omitempty"`
	Seed        int        `json:"seed,omitempty"`
	Payload     string     `json:"payload,omitempty"`
	CallbackURL string     `json:"callback_url,omitempty"`
}

// Normalize fills the default audio model when unset.
func (p *TextToAudioParams) Normalize() {
	if p.Model == "" {
		p.Model = AudioModel10
	}
}

// Validate checks the parameters against the text-to-audio limits.
func (p *TextToAudioParams) Validate() error {
	if err := validatePrompt(p.Prompt, true); err != nil {
		return err
	}
	if p.Duration != 0 && (p.Duration < MinAudioDuration || p.Duration > MaxAudioDuration) {
		return invalidf("duration", "duration must be between %v and %v seconds", MinAudioDuration, MaxAudioDuration)
	}
	return validatePayload(p.Payload)
}

// TimingPrompt is one timed sound event for timing-to-audio jobs.
type TimingPrompt struct {
	From   float64 `json:"from"`
	To     float64 `json:"to"`
	Prompt string  `json:"prompt"`
}

// TimingToAudioParams describes a timing-to-audio job: a list of sound
// events placed on a timeline of up to ten seconds.
type TimingToAudioParams struct {
	Model         AudioModel     `json:"model"`
	TimingPrompts []TimingPrompt `json:"timing_prompts"`
	Duration      float64        `json:"duration,omitempty"`
	Seed          int            `json:"seed,omitempty"`
	Payload       string         `json:"payload,omitempty"`
	CallbackURL   string         `json:"callback_url,omitempty"`
}

// Normalize fills the default audio model when unset.
func (p *TimingToAudioParams) Normalize() {
	if p.Model == "" {
		p.Model = AudioModel10
	}
}

// Validate checks the event list against the timeline limits.
func (p *TimingToAudioParams) Validate() error {
	if len(p.TimingPrompts) == 0 {
		return invalidf("timing_prompts", "timing_prompts must contain at least one event")
	}
	if p.Duration != 0 && (p.Duration < MinAudioDuration || p.Duration > MaxAudioDuration) {
		return invalidf("duration", "duration must be between %v and %v seconds", MinAudioDuration, MaxAudioDuration)
	}
	timeline := p.Duration
	if timeline == 0 {
		timeline = DefaultAudioDuration
	}
	for i, event := range p.TimingPrompts {
		if event.From < 0 || event.To > timeline {
			return invalidf("timing_prompts", "event %d must lie within [0, %v] seconds", i+1, timeline)
		}
		if event.From >= event.To {
			return invalidf("timing_prompts", "event %d must start before it ends", i+1)
		}
		if utf8.RuneCountInString(event.Prompt) > MaxPromptLength {
			return invalidf("timing_prompts", "event %d prompt must not exceed %d characters", i+1, MaxPromptLength)
		}
	}
	return validatePayload(p.Payload)
}

func validatePrompt(prompt string, required bool) error {
	if required && strings.TrimSpace(prompt) == "" {
		return invalidf("prompt", "prompt is required")
	}
	if utf8.RuneCountInString(prompt) > MaxPromptLength {
		return invalidf("prompt", "prompt must not exceed %d characters", MaxPromptLength)
	}
	return nil
}

func validatePayload(payload string) error {
	if utf8.RuneCountInString(payload) > MaxPayloadLength {
		return invalidf("payload", "payload must not exceed %d characters", MaxPayloadLength)
	}
	return nil
}

func validateDuration(limits map[Model][]int, m Model, duration int) error {
	allowed, ok := limits[m]
	if !ok {
		return invalidf("model", "unsupported model %q", string(m))
	}
	if duration == 0 || durationAllowed(limits, m, duration) {
		return nil
	}
	return invalidf("duration", "model %s does not support %d second clips (allowed: %v)", m, duration, allowed)
}
