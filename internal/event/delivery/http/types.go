package http

import (
	"github-event-tracker/internal/event"
)

// --- Request DTOs ---

type webhookReq struct {
	EventType string
	Payload   map[string]any
}

func (r webhookReq) toInput() event.IngestInput {
	return event.IngestInput{
		EventType: r.EventType,
		Payload:   r.Payload,
	}
}

type listReq struct {
	Limit int
}

func (r listReq) toInput() event.ListInput {
	return event.ListInput{Limit: r.Limit}
}

// --- Response DTOs ---

type storedResp struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

func (h *handler) newStoredResp(out event.IngestOutput) storedResp {
	return storedResp{Status: "stored", ID: out.ID}
}

type ignoredResp struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (h *handler) newIgnoredResp(out event.IngestOutput) ignoredResp {
	return ignoredResp{Status: "ignored", Reason: out.Reason}
}

// newListResp projects each event to its canonical six-field document.
func (h *handler) newListResp(out event.ListOutput) []map[string]any {
	docs := make([]map[string]any, len(out.Events))
	for i, e := range out.Events {
		docs[i] = e.Document()
	}
	return docs
}
