package core

import (
	"blockvault/internal/ethereum"
	"math/big"

	"github.com/holiman/uint256"
)

// Normalize maps a raw node block into a BlockRecord. The transaction count
// always reflects the raw block, transactions are only carried when
// withTransactions is set.
func Normalize(raw *ethereum.Block, withTransactions bool) BlockRecord {
	record := BlockRecord{
		Timestamp:        toUint256(raw.Timestamp),
		TransactionCount: uint64(raw.TransactionCount()),
		Transactions:     []TransactionRecord{},
	}
	if record.Timestamp == nil {
		record.Timestamp = new(uint256.Int)
	}

	if raw.Number != nil {
		number := raw.Number.Uint64()
		record.Number = &number
	}
	if raw.Hash != nil {
		hash := raw.Hash.Hex()
		record.Hash = &hash
	}
	if raw.Miner != nil {
		miner := raw.Miner.Hex()
		record.Miner = &miner
	}

	if !withTransactions {
		return record
	}

	record.Transactions = make([]TransactionRecord, 0, len(raw.Transactions))
	for _, tx := range raw.Transactions {
		if tx == nil {
			continue
		}
		record.Transactions = append(record.Transactions, normalizeTransaction(tx))
	}

	return record
}

func normalizeTransaction(tx *ethereum.Transaction) TransactionRecord {
	record := TransactionRecord{
		Hash:     tx.Hash.Hex(),
		From:     tx.From.Hex(),
		Value:    toUint256(tx.Value),
		GasPrice: toUint256(tx.GasPrice),
		Gas:      toUint256(tx.Gas),
	}
	if tx.To != nil {
		to := tx.To.Hex()
		record.To = &to
	}
	if record.Value == nil {
		record.Value = new(uint256.Int)
	}
	if record.Gas == nil {
		record.Gas = new(uint256.Int)
	}
	return record
}

// toUint256 keeps nil for absent values. Wire quantities never exceed 256 bits.
func toUint256(v *big.Int) *uint256.Int {
	if v == nil {
		return nil
	}
	out, _ := uint256.FromBig(v)
	return out
}
