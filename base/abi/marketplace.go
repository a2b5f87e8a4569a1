package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var MarketplaceABI abi.ABI

// Listing mutations on the marketplace contract. All amounts are base-unit
// integers; token-denominated payments ride on the erc20 allowance, native
// payments on the transaction value.
var marketplaceABI = `[{"type":"function","name":"bid","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"uint256","name":"listingId"},{"type":"bool","name":"increase"}],"outputs":[]},{"type":"function","name":"purchase","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"uint256","name":"listingId"},{"type":"uint256","name":"count"}],"outputs":[]},{"type":"function","name":"offer","constant":false,"stateMutability":"payable","payable":true,"inputs":[{"type":"uint256","name":"listingId"},{"type":"bool","name":"increase"}],"outputs":[]},{"type":"function","name":"accept","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"listingId"},{"type":"address[]","name":"addresses"},{"type":"uint256[]","name":"amounts"},{"type":"uint256","name":"maxAmount"}],"outputs":[]},{"type":"function","name":"cancel","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"listingId"},{"type":"uint16","name":"holdbackBPS"}],"outputs":[]},{"type":"function","name":"finalize","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"listingId"}],"outputs":[]},{"type":"function","name":"modifyListing","constant":false,"stateMutability":"nonpayable","payable":false,"inputs":[{"type":"uint256","name":"listingId"},{"type":"uint256","name":"initialAmount"},{"type":"uint48","name":"startTime"},{"type":"uint48","name":"endTime"}],"outputs":[]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}
