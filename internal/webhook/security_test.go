package webhook_test

import (
	"testing"

	"github-event-tracker/internal/webhook"
)

func TestRateLimiter(t *testing.T) {
	t.Run("Allows Within Burst", func(t *testing.T) {
		rl := webhook.NewRateLimiter(600) // burst of 60

		for i := 0; i < 10; i++ {
			if err := rl.Allow("github"); err != nil {
				t.Fatalf("request %d unexpectedly limited: %v", i, err)
			}
		}
	})

	t.Run("Blocks Past Burst", func(t *testing.T) {
		rl := webhook.NewRateLimiter(10) // burst of 1

		if err := rl.Allow("github"); err != nil {
			t.Fatalf("first request unexpectedly limited: %v", err)
		}
		if err := rl.Allow("github"); err == nil {
			t.Errorf("expected rate limit after burst exhausted")
		}
	})

	t.Run("Sources Are Independent", func(t *testing.T) {
		rl := webhook.NewRateLimiter(10)

		if err := rl.Allow("a"); err != nil {
			t.Fatalf("unexpected limit on source a: %v", err)
		}
		if err := rl.Allow("b"); err != nil {
			t.Errorf("source b should not share source a's bucket: %v", err)
		}
	})
}
