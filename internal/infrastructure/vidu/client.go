// Package vidu implements the client for the remote video and audio
// generation API: job submission, task query and cancel, and
// completion polling.
package vidu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/minne100/ViduUI/internal/domain/generation"
	"github.com/minne100/ViduUI/internal/domain/task"
	"github.com/minne100/ViduUI/internal/infrastructure/vidu/apierror"
)

// DefaultBaseURL is the production endpoint of the remote service.
const DefaultBaseURL = "https://api.vidu.cn"

// Client talks to the remote generation API. Every submit method
// validates its parameters before issuing any network request, and
// performs exactly one request on valid input. Transport failures and
// HTTP error statuses surface directly; the client never retries.
type Client struct {
	httpClient *resty.Client
	log        zerolog.Logger
}

// NewClient creates a client for the given API key. An empty baseURL
// selects the production endpoint.
func NewClient(apiKey, baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: resty.New().
			SetBaseURL(strings.TrimRight(baseURL, "/")).
			SetHeader("Authorization", "Token "+apiKey).
			SetHeader("Content-Type", "application/json").
			SetTimeout(timeout),
		log: log.With().Str("component", "vidu-client").Logger(),
	}
}

type submitResponse struct {
	TaskID    string         `json:"task_id"`
	State     task.Status    `json:"state"`
	Credits   int            `json:"credits"`
	ErrorCode string         `json:"error_code"`
	Details   map[string]any `json:"details"`
}

type queryResponse struct {
	task.Task
	ErrorCode string         `json:"error_code"`
	Details   map[string]any `json:"details"`
}

// SubmitImageToVideo creates an image-to-video task.
func (c *Client) SubmitImageToVideo(ctx context.Context, p generation.ImageToVideoParams) (*task.Task, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return c.submit(ctx, "/ent/v2/img2video", "img2video", p)
}

// SubmitReferenceToVideo creates a reference-to-video task.
func (c *Client) SubmitReferenceToVideo(ctx context.Context, p generation.ReferenceToVideoParams) (*task.Task, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return c.submit(ctx, "/ent/v2/reference2video", "reference2video", p)
}

// SubmitStartEndToVideo creates a start-end-to-video task.
func (c *Client) SubmitStartEndToVideo(ctx context.Context, p generation.StartEndToVideoParams) (*task.Task, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return c.submit(ctx, "/ent/v2/start-end2video", "start-end2video", p)
}

// SubmitTextToVideo creates a text-to-video task.
func (c *Client) SubmitTextToVideo(ctx context.Context, p generation.TextToVideoParams) (*task.Task, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return c.submit(ctx, "/ent/v2/text2video", "text2video", p)
}

// SubmitUpscale creates an upscale task for an earlier creation or an
// external video URL.
func (c *Client) SubmitUpscale(ctx context.Context, p generation.UpscaleParams) (*task.Task, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return c.submit(ctx, "/ent/v2/upscale-new", "upscale", p)
}

// SubmitLipSync creates a lip-sync task.
func (c *Client) SubmitLipSync(ctx context.Context, p generation.LipSyncParams) (*task.Task, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return c.submit(ctx, "/ent/v2/lip-sync", "lip-sync", p)
}

// SubmitTextToAudio creates a text-to-audio task.
func (c *Client) SubmitTextToAudio(ctx context.Context, p generation.TextToAudioParams) (*task.Task, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return c.submit(ctx, "/ent/v2/text2audio", "text2audio", p)
}

// SubmitTimingToAudio creates a timing-to-audio task.
func (c *Client) SubmitTimingToAudio(ctx context.Context, p generation.TimingToAudioParams) (*task.Task, error) {
	p.Normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return c.submit(ctx, "/ent/v2/timing2audio", "timing2audio", p)
}

func (c *Client) submit(ctx context.Context, endpoint, operation string, body any) (*task.Task, error) {
	var result submitResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&result).
		Post(endpoint)
	if err != nil {
		return nil, fmt.Errorf("submit %s: %w", operation, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("submit %s: remote returned status %d: %s", operation, resp.StatusCode(), resp.String())
	}
	if err := apierror.Check(result.ErrorCode, result.Details); err != nil {
		return nil, fmt.Errorf("submit %s: %w", operation, err)
	}

	state := result.State
	if state == "" {
		state = task.StatusCreated
	}
	c.log.Info().
		Str("operation", operation).
		Str("task_id", result.TaskID).
		Int("credits", result.Credits).
		Msg("task submitted")

	return &task.Task{ID: result.TaskID, State: state, Credits: result.Credits}, nil
}

// QueryTask fetches the current snapshot of a task, including its
// creations once the task has succeeded.
func (c *Client) QueryTask(ctx context.Context, taskID string) (*task.Task, error) {
	var result queryResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/ent/v2/tasks/%s/creations", taskID))
	if err != nil {
		return nil, fmt.Errorf("query task %s: %w", taskID, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("query task %s: remote returned status %d: %s", taskID, resp.StatusCode(), resp.String())
	}
	if err := apierror.Check(result.ErrorCode, result.Details); err != nil {
		return nil, fmt.Errorf("query task %s: %w", taskID, err)
	}

	snapshot := result.Task
	if snapshot.ID == "" {
		snapshot.ID = taskID
	}
	return &snapshot, nil
}

// CancelTask asks the remote service to abandon a task that has not
// finished yet. The endpoint uses the singular task path segment.
func (c *Client) CancelTask(ctx context.Context, taskID string) error {
	var result submitResponse
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&result).
		Post(fmt.Sprintf("/ent/v2/task/%s/cancel", taskID))
	if err != nil {
		return fmt.Errorf("cancel task %s: %w", taskID, err)
	}
	if resp.IsError() {
		return fmt.Errorf("cancel task %s: remote returned status %d: %s", taskID, resp.StatusCode(), resp.String())
	}
	if err := apierror.Check(result.ErrorCode, result.Details); err != nil {
		return fmt.Errorf("cancel task %s: %w", taskID, err)
	}
	c.log.Info().Str("task_id", taskID).Msg("task cancelled")
	return nil
}
