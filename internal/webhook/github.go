package webhook

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github-event-tracker/internal/model"
)

const branchRefPrefix = "refs/heads/"

// Decline reasons. Exact strings are part of the response contract.
const (
	reasonMissingPushFields   = "Missing required fields for push event"
	reasonFailedPush          = "Failed to parse push event"
	reasonFailedPullRequest   = "Failed to parse pull_request event"
	reasonMissingCreatedAt    = "Missing created_at for opened PR"
	reasonMissingMergedAt     = "Missing merged_at for merged PR"
	reasonActionNotTracked    = "Pull request action not tracked"
	reasonUnsupportedTemplate = "Unsupported event type: %s"
)

// pushPayload is the subset of a GitHub push delivery this system reads.
type pushPayload struct {
	Ref    string `mapstructure:"ref"`
	Pusher struct {
		Name string `mapstructure:"name"`
	} `mapstructure:"pusher"`
	Commits []struct {
		ID string `mapstructure:"id"`
	} `mapstructure:"commits"`
	HeadCommit struct {
		Timestamp string `mapstructure:"timestamp"`
	} `mapstructure:"head_commit"`
}

// pullRequestPayload is the subset of a GitHub pull_request delivery this
// system reads. ID arrives as a JSON number or a string; weak decoding
// normalizes both to the same decimal string.
type pullRequestPayload struct {
	Action      string `mapstructure:"action"`
	PullRequest struct {
		ID   string `mapstructure:"id"`
		User struct {
			Login string `mapstructure:"login"`
		} `mapstructure:"user"`
		Head struct {
			Ref string `mapstructure:"ref"`
		} `mapstructure:"head"`
		Base struct {
			Ref string `mapstructure:"ref"`
		} `mapstructure:"base"`
		Merged    bool   `mapstructure:"merged"`
		CreatedAt string `mapstructure:"created_at"`
		MergedAt  string `mapstructure:"merged_at"`
	} `mapstructure:"pull_request"`
}

// ParseGitHubEvent normalizes a GitHub webhook delivery into a canonical
// Event, or a documented ignore reason. It is pure and stateless: safe to
// call concurrently, and it never returns an error — structural surprises
// in the payload come back as declines, not faults.
func ParseGitHubEvent(eventType string, payload map[string]any) ParseResult {
	switch strings.TrimSpace(eventType) {
	case "push":
		return parsePush(payload)
	case "pull_request":
		return parsePullRequest(payload)
	default:
		return ignored(fmt.Sprintf(reasonUnsupportedTemplate, eventType))
	}
}

func parsePush(payload map[string]any) ParseResult {
	var p pushPayload
	if err := decodePayload(payload, &p); err != nil {
		return ignored(reasonFailedPush)
	}

	author := p.Pusher.Name
	toBranch := strings.TrimPrefix(p.Ref, branchRefPrefix) // tag refs pass through verbatim

	// GitHub orders the commits array oldest-first; the last entry is the
	// most recent commit of the push.
	var requestID string
	if len(p.Commits) > 0 {
		requestID = p.Commits[len(p.Commits)-1].ID
	}

	rawTimestamp := p.HeadCommit.Timestamp

	if author == "" || toBranch == "" || requestID == "" || rawTimestamp == "" {
		return ignored(reasonMissingPushFields)
	}

	timestamp, err := canonicalUTC(rawTimestamp)
	if err != nil {
		return ignored(reasonFailedPush)
	}

	event := model.NewEvent(requestID, author, model.ActionPush, "", toBranch, timestamp)
	return ParseResult{Event: &event}
}

func parsePullRequest(payload map[string]any) ParseResult {
	var p pullRequestPayload
	if err := decodePayload(payload, &p); err != nil {
		return ignored(reasonFailedPullRequest)
	}

	pr := p.PullRequest
	if pr.User.Login == "" || pr.Head.Ref == "" || pr.Base.Ref == "" || pr.ID == "" {
		return ignored(reasonFailedPullRequest)
	}

	switch {
	case p.Action == "opened":
		if pr.CreatedAt == "" {
			return ignored(reasonMissingCreatedAt)
		}
		timestamp, err := canonicalUTC(pr.CreatedAt)
		if err != nil {
			return ignored(reasonFailedPullRequest)
		}
		event := model.NewEvent(pr.ID, pr.User.Login, model.ActionPullRequest, pr.Head.Ref, pr.Base.Ref, timestamp)
		return ParseResult{Event: &event}

	case p.Action == "closed" && pr.Merged:
		if pr.MergedAt == "" {
			return ignored(reasonMissingMergedAt)
		}
		timestamp, err := canonicalUTC(pr.MergedAt)
		if err != nil {
			return ignored(reasonFailedPullRequest)
		}
		event := model.NewEvent(pr.ID, pr.User.Login, model.ActionMerge, pr.Head.Ref, pr.Base.Ref, timestamp)
		return ParseResult{Event: &event}

	default:
		// Closed without merge, review_requested, labeled, etc.
		return ignored(reasonActionNotTracked)
	}
}

// decodePayload maps the loose payload onto a typed struct. Weak typing
// covers numeric ids arriving as JSON numbers; a shape the struct cannot
// absorb (e.g. a scalar where an object belongs) is a decode error.
func decodePayload(payload map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(payload)
}
