package workers

import (
	"context"

	"github.com/MKhiriev/mapster-agent/internal/service"
)

type loginCheckWorker struct {
	bridge service.SessionBridge
}

// NewLoginCheckWorker asks the origin once whether the relayed session is
// logged in, which starts the sync timer for a returning user.
func NewLoginCheckWorker(bridge service.SessionBridge) Worker {
	return &loginCheckWorker{bridge: bridge}
}

func (w *loginCheckWorker) Name() string {
	return "login-check"
}

func (w *loginCheckWorker) Run(ctx context.Context) error {
	return w.bridge.RefreshLoginStatus(ctx)
}
