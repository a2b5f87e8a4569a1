package domain

// Receipt is the client-side view of a mined transaction.
type Receipt struct {
	TxHash      TxHash      `json:"txHash"`
	BlockNumber BlockNumber `json:"blockNumber"`
	GasUsed     uint64      `json:"gasUsed"`
}
