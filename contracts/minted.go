package contracts

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// MintedTokenID finds the token minted by contract in a mined receipt.
// A mint is a Transfer from the zero address.
func MintedTokenID(contract common.Address, receipt *types.Receipt) (*big.Int, bool) {
	if receipt == nil {
		return nil, false
	}
	parsed, err := NFTReceiptMetaData.GetAbi()
	if err != nil {
		return nil, false
	}
	transfer := parsed.Events["Transfer"].ID

	for _, l := range receipt.Logs {
		if l == nil || l.Address != contract || len(l.Topics) != 4 {
			continue
		}
		if l.Topics[0] != transfer || l.Topics[1] != (common.Hash{}) {
			continue
		}
		return new(big.Int).SetBytes(l.Topics[3].Bytes()), true
	}
	return nil, false
}
