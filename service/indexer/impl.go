package indexer

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"math/big"
	"net/http"
	"time"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
)

const listingQuery = `query Listing($id: ID!) {
  listing(id: $id) {
    id
    status
    listingType
    tokenType
    seller
    payToken
    initialAmount
    startTime
    endTime
    totalAvailable
    totalPerSale
    totalSold
    bidCount
    highestBid { bidder amount timestamp }
  }
}`

const bidsQuery = `query Bids($id: ID!) {
  bids(where: { listing: $id }, orderBy: timestamp, orderDirection: asc) {
    bidder
    amount
    timestamp
  }
}`

const offersQuery = `query Offers($id: ID!) {
  offers(where: { listing: $id, active: true }) {
    offerer
    amount
    active
  }
}`

type client struct {
	client    http.Client
	timeout   time.Duration
	endpoints map[domain.ChainId]string
}

func NewClient(cfg *ClientCfg) Client {
	return &client{
		client:    cfg.HttpClient,
		timeout:   cfg.Timeout,
		endpoints: cfg.Endpoints,
	}
}

type graphqlRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type bidRecord struct {
	Bidder    domain.Address `json:"bidder"`
	Amount    string         `json:"amount"`
	Timestamp int64          `json:"timestamp,string"`
}

type listingRecord struct {
	Id             string         `json:"id"`
	Status         string         `json:"status"`
	ListingType    string         `json:"listingType"`
	TokenType      int            `json:"tokenType"`
	Seller         domain.Address `json:"seller"`
	PayToken       domain.Address `json:"payToken"`
	InitialAmount  string         `json:"initialAmount"`
	StartTime      int64          `json:"startTime,string"`
	EndTime        int64          `json:"endTime,string"`
	TotalAvailable int64          `json:"totalAvailable,string"`
	TotalPerSale   int64          `json:"totalPerSale,string"`
	TotalSold      int64          `json:"totalSold,string"`
	BidCount       int            `json:"bidCount"`
	HighestBid     *bidRecord     `json:"highestBid"`
}

type offerRecord struct {
	Offerer domain.Address `json:"offerer"`
	Amount  string         `json:"amount"`
	Active  bool           `json:"active"`
}

func (c *client) GetListing(ctx bCtx.Ctx, id listing.Id) (*listing.Listing, error) {
	var data struct {
		Listing *listingRecord `json:"listing"`
	}
	if err := c.query(ctx, id.ChainId, listingQuery, map[string]interface{}{"id": id.ListingId.String()}, &data); err != nil {
		return nil, err
	}
	if data.Listing == nil {
		return nil, domain.ErrNotFound
	}
	return toListing(ctx, id.ChainId, data.Listing)
}

func (c *client) GetBids(ctx bCtx.Ctx, id listing.Id) ([]*listing.Bid, error) {
	var data struct {
		Bids []*bidRecord `json:"bids"`
	}
	if err := c.query(ctx, id.ChainId, bidsQuery, map[string]interface{}{"id": id.ListingId.String()}, &data); err != nil {
		return nil, err
	}
	bids := make([]*listing.Bid, 0, len(data.Bids))
	for _, r := range data.Bids {
		b, err := toBid(ctx, r)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, nil
}

func (c *client) GetOffers(ctx bCtx.Ctx, id listing.Id) ([]*listing.Offer, error) {
	var data struct {
		Offers []*offerRecord `json:"offers"`
	}
	if err := c.query(ctx, id.ChainId, offersQuery, map[string]interface{}{"id": id.ListingId.String()}, &data); err != nil {
		return nil, err
	}
	offers := make([]*listing.Offer, 0, len(data.Offers))
	for _, r := range data.Offers {
		amount, ok := new(big.Int).SetString(r.Amount, 10)
		if !ok {
			ctx.WithField("amount", r.Amount).Error("invalid offer amount")
			return nil, domain.ErrMalformedAmount
		}
		offers = append(offers, &listing.Offer{
			Offerer: r.Offerer.ToLower(),
			Amount:  amount,
			Active:  r.Active,
		})
	}
	return offers, nil
}

func (c *client) query(ctx bCtx.Ctx, chainId domain.ChainId, query string, variables map[string]interface{}, container interface{}) error {
	endpoint, ok := c.endpoints[chainId]
	if !ok {
		return domain.ErrUnsupportedChain
	}

	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()

	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		ctx.WithField("err", err).Error("json.Marshal failed")
		return err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewReader(body))
	if err != nil {
		ctx.WithFields(log.Fields{
			"endpoint": endpoint,
			"err":      err,
		}).Error("NewRequestWithContext failed")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"endpoint": endpoint,
			"err":      err,
		}).Error("client.Do failed")
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"endpoint":   endpoint,
			"statusCode": resp.StatusCode,
		}).Error("resp.StatusCode != 200")
		return ErrStatusCodeNotOk
	}

	raw, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithField("err", err).Error("failed to read body")
		return err
	}
	var gqlResp graphqlResponse
	if err := json.Unmarshal(raw, &gqlResp); err != nil {
		ctx.WithField("err", err).Error("json.Unmarshal failed")
		return err
	}
	if len(gqlResp.Errors) > 0 {
		ctx.WithField("errors", gqlResp.Errors).Error("graphql errors")
		return ErrGraphqlError
	}
	return json.Unmarshal(gqlResp.Data, container)
}

func toBid(ctx bCtx.Ctx, r *bidRecord) (*listing.Bid, error) {
	amount, ok := new(big.Int).SetString(r.Amount, 10)
	if !ok {
		ctx.WithField("amount", r.Amount).Error("invalid bid amount")
		return nil, domain.ErrMalformedAmount
	}
	return &listing.Bid{
		Bidder:    r.Bidder.ToLower(),
		Amount:    amount,
		Timestamp: r.Timestamp,
	}, nil
}

func toListing(ctx bCtx.Ctx, chainId domain.ChainId, r *listingRecord) (*listing.Listing, error) {
	initialAmount, ok := new(big.Int).SetString(r.InitialAmount, 10)
	if !ok {
		ctx.WithField("initialAmount", r.InitialAmount).Error("invalid initial amount")
		return nil, domain.ErrMalformedAmount
	}
	l := &listing.Listing{
		ChainId:        chainId,
		ListingId:      domain.ListingId(r.Id),
		Status:         listing.Status(r.Status),
		Type:           listing.Type(r.ListingType),
		TokenType:      domain.TokenType(r.TokenType),
		Seller:         r.Seller.ToLower(),
		PayToken:       r.PayToken.ToLower(),
		InitialAmount:  initialAmount,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		TotalAvailable: r.TotalAvailable,
		TotalPerSale:   r.TotalPerSale,
		TotalSold:      r.TotalSold,
		BidCount:       r.BidCount,
	}
	if r.HighestBid != nil {
		b, err := toBid(ctx, r.HighestBid)
		if err != nil {
			return nil, err
		}
		l.HighestBid = b
	}
	return l, nil
}
