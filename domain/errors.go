package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// validation errors, rejected before any ledger call
	ErrMalformedAmount  = errors.New("malformed amount")
	ErrBidTooLow        = errors.New("bid below minimum")
	ErrInvalidQuantity  = errors.New("quantity out of range")
	ErrInvalidAddress   = errors.New("Invalid address")
	ErrListingNotActive = errors.New("listing is not active")
	ErrListingEnded     = errors.New("listing has ended")
	ErrNotSeller        = errors.New("caller is not the seller")
	ErrOfferNotFound    = errors.New("offer not found or inactive")

	// ErrAllowanceResolution indicates the payment currency descriptor could
	// not be read on the payment path. Fatal to the flow, no fallback decimals.
	ErrAllowanceResolution = errors.New("payment currency unresolvable")

	// ErrIntentInFlight indicates the same listing+kind already has a pending
	// intent. The caller must wait for it to settle, not queue another.
	ErrIntentInFlight = errors.New("intent already in flight")

	// ErrSubmission indicates the wallet or transport rejected the
	// transaction before broadcast.
	ErrSubmission = errors.New("transaction submission failed")

	// ErrReverted indicates the transaction broadcast but the ledger
	// rejected it.
	ErrReverted = errors.New("transaction reverted")

	ErrUnsupportedChain = errors.New("unsupported chain")
	ErrInvalidChainId   = errors.New("invalid chain id")
)
