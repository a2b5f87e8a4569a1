package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/marketclient/domain"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		switch {
		case errors.Is(err, domain.ErrNotFound),
			errors.Is(err, domain.ErrOfferNotFound):
			status = http.StatusNotFound
		case errors.Is(err, domain.ErrNotSeller):
			status = http.StatusForbidden
		case errors.Is(err, domain.ErrIntentInFlight):
			status = http.StatusConflict
		case errors.Is(err, domain.ErrMalformedAmount),
			errors.Is(err, domain.ErrBidTooLow),
			errors.Is(err, domain.ErrInvalidQuantity),
			errors.Is(err, domain.ErrInvalidAddress),
			errors.Is(err, domain.ErrListingNotActive),
			errors.Is(err, domain.ErrListingEnded),
			errors.Is(err, domain.ErrBadParamInput):
			status = http.StatusBadRequest
		case errors.Is(err, domain.ErrReverted),
			errors.Is(err, domain.ErrAllowanceResolution):
			status = http.StatusBadGateway
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
