package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"
)

// Notifier performs the best-effort cross-service calls. A failed call is
// logged and dropped: the local write it follows has already committed, and
// local state is the source of truth for its owning service. Nothing is
// retried and nothing is reported back to the caller.
type Notifier struct {
	Client *http.Client
}

func NewNotifier() *Notifier {
	return &Notifier{Client: &http.Client{Timeout: 5 * time.Second}}
}

func (n *Notifier) Post(ctx context.Context, url string, body any) {
	n.send(ctx, http.MethodPost, url, body)
}

func (n *Notifier) Patch(ctx context.Context, url string, body any) {
	n.send(ctx, http.MethodPatch, url, body)
}

func (n *Notifier) send(ctx context.Context, method, url string, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		log.Printf("notify %s %s: marshal: %v", method, url, err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(b))
	if err != nil {
		log.Printf("notify %s %s: %v", method, url, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.Client.Do(req)
	if err != nil {
		log.Printf("notify %s %s: %v", method, url, err)
		return
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode >= 400 {
		log.Printf("notify %s %s: status %d", method, url, resp.StatusCode)
	}
}
