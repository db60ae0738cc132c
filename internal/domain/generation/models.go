// Package generation defines the job parameter model for the remote
// generation API: supported models, option enums, and the per-operation
// validation rules applied before any network call.
package generation

// Model identifies a remote video generation model.
type Model string

const (
	ModelViduQ1        Model = "viduq1"
	ModelViduQ1Classic Model = "viduq1-classic"
	ModelVidu20        Model = "vidu2.0"
	ModelVidu15        Model = "vidu1.5"
)

// AudioModel identifies a remote audio generation model.
type AudioModel string

// AudioModel10 is the only audio model the remote service offers.
const AudioModel10 AudioModel = "audio1.0"

// Resolution is an output resolution for video generation.
type Resolution string

const (
	Resolution360p  Resolution = "360p"
	Resolution720p  Resolution = "720p"
	Resolution1080p Resolution = "1080p"
)

// UpscaleResolution is a target resolution for upscale jobs.
type UpscaleResolution string

const (
	Upscale1080p UpscaleResolution = "1080p"
	Upscale2K    UpscaleResolution = "2K"
	Upscale4K    UpscaleResolution = "4K"
	Upscale8K    UpscaleResolution = "8K"
)

// AspectRatio is an output aspect ratio for video generation.
type AspectRatio string

const (
	AspectRatio16x9 AspectRatio = "16:9"
	AspectRatio9x16 AspectRatio = "9:16"
	AspectRatio1x1  AspectRatio = "1:1"
)

// MovementAmplitude controls how much camera and subject motion the
// model introduces.
type MovementAmplitude string

const (
	MovementAuto   MovementAmplitude = "auto"
	MovementSmall  MovementAmplitude = "small"
	MovementMedium MovementAmplitude = "medium"
	MovementLarge  MovementAmplitude = "large"
)

// Style selects the rendering style for text-to-video jobs.
type Style string

const (
	StyleGeneral Style = "general"
	StyleAnime   Style = "anime"
)

// Duration limits per model differ by operation. Tables mirror the
// remote service's published constraints.
var (
	// ImageToVideoDurations lists allowed clip lengths (seconds) per
	// model for image-to-video jobs.
	ImageToVideoDurations = map[Model][]int{
		ModelViduQ1:        {5},
		ModelViduQ1Classic: {5},
		ModelVidu20:        {4, 8},
		ModelVidu15:        {4, 8},
	}

	// ReferenceToVideoDurations lists allowed clip lengths per model
	// for reference-to-video jobs. vidu2.0 only supports 4s here.
	ReferenceToVideoDurations = map[Model][]int{
		ModelViduQ1:        {5},
		ModelViduQ1Classic: {5},
		ModelVidu20:        {4},
		ModelVidu15:        {4, 8},
	}

	// StartEndToVideoDurations lists allowed clip lengths per model
	// for start-end-to-video jobs.
	StartEndToVideoDurations = map[Model][]int{
		ModelViduQ1:        {5},
		ModelViduQ1Classic: {5},
		ModelVidu20:        {4, 8},
		ModelVidu15:        {4, 8},
	}

	// TextToVideoDurations lists allowed clip lengths per model for
	// text-to-video jobs. Only viduq1 and vidu1.5 support the operation.
	TextToVideoDurations = map[Model][]int{
		ModelViduQ1: {5},
		ModelVidu15: {4, 8},
	}

	// DefaultDurations is applied when a request leaves duration unset.
	DefaultDurations = map[Model]int{
		ModelViduQ1:        5,
		ModelViduQ1Classic: 5,
		ModelVidu20:        4,
		ModelVidu15:        4,
	}
)

// ModelResolutions maps model and clip length to the resolutions the
// remote service accepts for that combination. Drives form choices.
var ModelResolutions = map[Model]map[int][]Resolution{
	ModelViduQ1: {
		5: {Resolution1080p},
	},
	ModelViduQ1Classic: {
		5: {Resolution1080p},
	},
	ModelVidu20: {
		4: {Resolution360p, Resolution720p, Resolution1080p},
		8: {Resolution720p},
	},
	ModelVidu15: {
		4: {Resolution360p, Resolution720p, Resolution1080p},
		8: {Resolution720p},
	},
}

// DefaultResolutions is the preselected resolution per model.
var DefaultResolutions = map[Model]Resolution{
	ModelViduQ1:        Resolution1080p,
	ModelViduQ1Classic: Resolution1080p,
	ModelVidu20:        Resolution360p,
	ModelVidu15:        Resolution360p,
}

// ResolutionsFor returns the resolutions available for a model at a
// given duration, or nil when the combination is not supported.
func ResolutionsFor(m Model, duration int) []Resolution {
	byDuration, ok := ModelResolutions[m]
	if !ok {
		return nil
	}
	return byDuration[duration]
}

func durationAllowed(limits map[Model][]int, m Model, duration int) bool {
	allowed, ok := limits[m]
	if !ok {
		return false
	}
	for _, d := range allowed {
		if d == duration {
			return true
		}
	}
	return false
}
