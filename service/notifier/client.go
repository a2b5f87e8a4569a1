package notifier

import (
	"errors"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain/notification"
)

var ErrStatusCodeNotOk = errors.New("status code not ok")

type ClientCfg struct {
	HttpClient http.Client
	Timeout    time.Duration
	Endpoint   string
	Apikey     string
}

// Client delivers notification records to the external collaborator.
// Best-effort only; there is no response contract beyond the status code.
type Client interface {
	Send(ctx bCtx.Ctx, event *notification.Event) error
}
