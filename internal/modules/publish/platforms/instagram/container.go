package instagram

import (
	"context"
	"net/url"
	"time"

	"github.com/promodesk/social-publisher/internal/modules/publish/domain"
	"github.com/promodesk/social-publisher/internal/modules/publish/platforms/graph"
	"github.com/promodesk/social-publisher/internal/shared/classify"
	"github.com/promodesk/social-publisher/internal/shared/errs"
	"github.com/promodesk/social-publisher/internal/shared/retry"
)

// Container processing status codes reported by the platform.
const (
	statusFinished   = "FINISHED"
	statusError      = "ERROR"
	statusInProgress = "IN_PROGRESS"
)

// containerWorkflow drives the create → poll → finalize sequence a media
// container goes through before it becomes a visible post. Create and
// finalize are independently retried; polling runs on a fixed interval with
// a fixed attempt ceiling and no backoff.
type containerWorkflow struct {
	client       *graph.Client
	creds        *domain.InstagramCredentials
	stepPolicy   retry.Policy
	pollInterval time.Duration
	maxPolls     int
}

// run executes the workflow and returns the external post id plus the number
// of extra attempts the retried steps consumed.
func (w *containerWorkflow) run(ctx context.Context, imageURL, caption string) (string, int, error) {
	containerID, createAttempts, err := retry.Do(ctx, w.stepPolicy, classify.Retryable, func(ctx context.Context) (string, error) {
		return w.create(ctx, imageURL, caption)
	})
	retries := createAttempts - 1
	if err != nil {
		return "", retries, err
	}

	if err := w.poll(ctx, containerID); err != nil {
		return "", retries, err
	}

	postID, publishAttempts, err := retry.Do(ctx, w.stepPolicy, classify.Retryable, func(ctx context.Context) (string, error) {
		return w.finalize(ctx, containerID)
	})
	retries += publishAttempts - 1
	if err != nil {
		return "", retries, err
	}
	return postID, retries, nil
}

func (w *containerWorkflow) create(ctx context.Context, imageURL, caption string) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	body := map[string]string{
		"image_url":    imageURL,
		"caption":      caption,
		"access_token": w.creds.AccessToken,
	}
	if err := w.client.PostJSON(ctx, "/"+w.creds.BusinessAccountID+"/media", body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}

func (w *containerWorkflow) poll(ctx context.Context, containerID string) error {
	for i := 1; i <= w.maxPolls; i++ {
		status, err := w.status(ctx, containerID)
		if err != nil {
			return err
		}
		switch status {
		case statusFinished:
			return nil
		case statusError:
			return errs.ErrContainerFailed
		}

		if i == w.maxPolls {
			break
		}
		timer := time.NewTimer(w.pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
	return errs.ErrContainerTimeout
}

func (w *containerWorkflow) status(ctx context.Context, containerID string) (string, error) {
	var out struct {
		StatusCode string `json:"status_code"`
	}
	query := url.Values{}
	query.Set("fields", "status_code")
	query.Set("access_token", w.creds.AccessToken)
	if err := w.client.Get(ctx, "/"+containerID, query, &out); err != nil {
		return "", err
	}
	return out.StatusCode, nil
}

func (w *containerWorkflow) finalize(ctx context.Context, containerID string) (string, error) {
	var out struct {
		ID string `json:"id"`
	}
	body := map[string]string{
		"creation_id":  containerID,
		"access_token": w.creds.AccessToken,
	}
	if err := w.client.PostJSON(ctx, "/"+w.creds.BusinessAccountID+"/media_publish", body, &out); err != nil {
		return "", err
	}
	return out.ID, nil
}
