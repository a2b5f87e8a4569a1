package notifier

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain/notification"
)

const bearerKey = "client-id"

type client struct {
	client   http.Client
	timeout  time.Duration
	endpoint string
	apikey   string
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:   cfg.HttpClient,
		timeout:  cfg.Timeout,
		endpoint: cfg.Endpoint,
		apikey:   cfg.Apikey,
	}
}

func (c *client) Send(ctx bCtx.Ctx, event *notification.Event) error {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(event)
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"endpoint": c.endpoint,
			"err":      err,
		}).Error("NewRequestWithContext failed")
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(bearerKey, c.apikey)

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"endpoint": c.endpoint,
			"err":      err,
		}).Error("client.Do failed")
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		ctx.WithFields(log.Fields{
			"endpoint":   c.endpoint,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode not ok")
		return ErrStatusCodeNotOk
	}
	return nil
}
