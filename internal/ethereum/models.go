package ethereum

import (
	"encoding/json"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Block is a block as returned by eth_getBlockByNumber. Full blocks carry
// Transactions, header-only blocks carry TxHashes.
type Block struct {
	Number       *big.Int
	Hash         *common.Hash
	Miner        *common.Address
	Timestamp    *big.Int
	Full         bool
	TxHashes     []common.Hash
	Transactions []*Transaction
}

func (b *Block) TransactionCount() int {
	if b.Full {
		return len(b.Transactions)
	}
	return len(b.TxHashes)
}

type Transaction struct {
	Hash     common.Hash
	From     common.Address
	To       *common.Address
	Value    *big.Int
	GasPrice *big.Int
	Gas      *big.Int
}

type rpcBlock struct {
	Number       *hexutil.Big    `json:"number"`
	Hash         *common.Hash    `json:"hash"`
	Miner        *common.Address `json:"miner"`
	Timestamp    *hexutil.Big    `json:"timestamp"`
	Transactions json.RawMessage `json:"transactions"`
}

type rpcTransaction struct {
	Hash     common.Hash     `json:"hash"`
	From     common.Address  `json:"from"`
	To       *common.Address `json:"to"`
	Value    *hexutil.Big    `json:"value"`
	GasPrice *hexutil.Big    `json:"gasPrice"`
	Gas      *hexutil.Big    `json:"gas"`
}

func (tx rpcTransaction) toTransaction() *Transaction {
	return &Transaction{
		Hash:     tx.Hash,
		From:     tx.From,
		To:       tx.To,
		Value:    (*big.Int)(tx.Value),
		GasPrice: (*big.Int)(tx.GasPrice),
		Gas:      (*big.Int)(tx.Gas),
	}
}
