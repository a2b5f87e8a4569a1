package http

import (
	"math/big"
	"net/http"

	"github.com/labstack/echo/v4"

	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/delivery"
	"github.com/x-xyz/marketclient/base/validator"
	"github.com/x-xyz/marketclient/domain"
	dListing "github.com/x-xyz/marketclient/domain/listing"
	dMarket "github.com/x-xyz/marketclient/domain/market"
)

type handler struct {
	market  dMarket.UseCase
	listing dListing.UseCase
}

func New(e *echo.Echo, _market dMarket.UseCase, _listing dListing.UseCase) {
	h := &handler{_market, _listing}

	g := e.Group("/market")
	g.POST("/bid", h.bid)
	g.POST("/purchase", h.purchase)
	g.POST("/offer", h.offer)
	g.POST("/accept", h.accept)
	g.POST("/cancel", h.cancel)
	g.POST("/finalize", h.finalize)
	g.POST("/modify", h.modify)

	e.GET("/listing", h.getListing)
	e.GET("/listing/bids", h.getBids)
	e.GET("/listing/offers", h.getOffers)
}

// parseAmount accepts base-unit decimal strings. Fractional or negative
// values never reach the usecases.
func parseAmount(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok || v.Sign() < 0 {
		return nil, domain.ErrMalformedAmount
	}
	return v, nil
}

func (h *handler) bid(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId      domain.ChainId   `json:"chainId" validate:"required"`
		ListingId    domain.ListingId `json:"listingId" validate:"required"`
		Amount       string           `json:"amount" validate:"required"`
		IncreaseOnly bool             `json:"increaseOnly"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}
	amount, err := parseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.market.PlaceBid(ctx, &dMarket.BidParams{
		ChainId:      p.ChainId,
		ListingId:    p.ListingId,
		Amount:       amount,
		IncreaseOnly: p.IncreaseOnly,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) purchase(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId   domain.ChainId   `json:"chainId" validate:"required"`
		ListingId domain.ListingId `json:"listingId" validate:"required"`
		Quantity  int64            `json:"quantity" validate:"required,gt=0"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.market.Purchase(ctx, &dMarket.PurchaseParams{
		ChainId:   p.ChainId,
		ListingId: p.ListingId,
		Quantity:  p.Quantity,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) offer(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId      domain.ChainId   `json:"chainId" validate:"required"`
		ListingId    domain.ListingId `json:"listingId" validate:"required"`
		Amount       string           `json:"amount" validate:"required"`
		IncreaseOnly bool             `json:"increaseOnly"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}
	amount, err := parseAmount(p.Amount)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.market.MakeOffer(ctx, &dMarket.OfferParams{
		ChainId:      p.ChainId,
		ListingId:    p.ListingId,
		Amount:       amount,
		IncreaseOnly: p.IncreaseOnly,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) accept(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId   domain.ChainId   `json:"chainId" validate:"required"`
		ListingId domain.ListingId `json:"listingId" validate:"required"`
		Offerers  []domain.Address `json:"offerers" validate:"required,min=1"`
		Amounts   []string         `json:"amounts" validate:"required,min=1"`
		MaxAmount string           `json:"maxAmount" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	for _, offerer := range p.Offerers {
		if !validator.IsValidAddress(string(offerer)) {
			return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, domain.ErrInvalidAddress)
		}
	}

	amounts := make([]*big.Int, len(p.Amounts))
	for i, s := range p.Amounts {
		v, err := parseAmount(s)
		if err != nil {
			return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
		}
		amounts[i] = v
	}
	maxAmount, err := parseAmount(p.MaxAmount)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.market.AcceptOffer(ctx, &dMarket.AcceptParams{
		ChainId:   p.ChainId,
		ListingId: p.ListingId,
		Offerers:  p.Offerers,
		Amounts:   amounts,
		MaxAmount: maxAmount,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) cancel(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId     domain.ChainId   `json:"chainId" validate:"required"`
		ListingId   domain.ListingId `json:"listingId" validate:"required"`
		HoldbackBPS uint16           `json:"holdbackBPS" validate:"lte=1000"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.market.Cancel(ctx, &dMarket.CancelParams{
		ChainId:     p.ChainId,
		ListingId:   p.ListingId,
		HoldbackBPS: p.HoldbackBPS,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) finalize(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId   domain.ChainId   `json:"chainId" validate:"required"`
		ListingId domain.ListingId `json:"listingId" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.market.Finalize(ctx, &dMarket.FinalizeParams{
		ChainId:   p.ChainId,
		ListingId: p.ListingId,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) modify(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId       domain.ChainId   `json:"chainId" validate:"required"`
		ListingId     domain.ListingId `json:"listingId" validate:"required"`
		InitialAmount string           `json:"initialAmount" validate:"required"`
		StartTime     int64            `json:"startTime"`
		EndTime       int64            `json:"endTime"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}
	initialAmount, err := parseAmount(p.InitialAmount)
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.market.Modify(ctx, &dMarket.ModifyParams{
		ChainId:       p.ChainId,
		ListingId:     p.ListingId,
		InitialAmount: initialAmount,
		StartTime:     p.StartTime,
		EndTime:       p.EndTime,
	})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getListing(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId   domain.ChainId   `query:"chainId" validate:"required"`
		ListingId domain.ListingId `query:"listingId" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.listing.Get(ctx, dListing.Id{ChainId: p.ChainId, ListingId: p.ListingId})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getBids(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId   domain.ChainId   `query:"chainId" validate:"required"`
		ListingId domain.ListingId `query:"listingId" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.listing.GetBids(ctx, dListing.Id{ChainId: p.ChainId, ListingId: p.ListingId})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}

func (h *handler) getOffers(_ctx echo.Context) error {
	ctx := _ctx.Get("ctx").(bCtx.Ctx)
	type params struct {
		ChainId   domain.ChainId   `query:"chainId" validate:"required"`
		ListingId domain.ListingId `query:"listingId" validate:"required"`
	}

	p := &params{}
	if err := _ctx.Bind(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, "invalid params")
	}
	if err := _ctx.Validate(p); err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusBadRequest, err)
	}

	res, err := h.listing.GetOffers(ctx, dListing.Id{ChainId: p.ChainId, ListingId: p.ListingId})
	if err != nil {
		return delivery.MakeJsonResp(_ctx, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(_ctx, http.StatusOK, res)
}
