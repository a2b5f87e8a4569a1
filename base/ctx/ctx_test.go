package ctx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWithValue(t *testing.T) {
	req := require.New(t)
	c := WithValue(Background(), "intentId", "abc-123")
	req.Equal("abc-123", c.Value("intentId"))
}

func TestWithValues(t *testing.T) {
	req := require.New(t)
	c := WithValues(Background(), map[string]interface{}{
		"listingId": "7",
		"kind":      "bid",
	})
	req.Equal("7", c.Value("listingId"))
	req.Equal("bid", c.Value("kind"))
}

func TestWithTimeout(t *testing.T) {
	req := require.New(t)
	c, cancel := WithTimeout(Background(), time.Millisecond)
	defer cancel()
	<-c.Done()
	req.Error(c.Err())
}
