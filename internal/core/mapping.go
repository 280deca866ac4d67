package core

import (
	"blockvault/internal/repository"
	"fmt"

	"github.com/holiman/uint256"
)

func toRepositoryBlock(record BlockRecord) (repository.Block, error) {
	if record.Number == nil {
		return repository.Block{}, fmt.Errorf("%w: block without number", ErrConversion)
	}

	block := repository.Block{
		Number:           *record.Number,
		Hash:             record.Hash,
		Miner:            record.Miner,
		Timestamp:        decString(record.Timestamp),
		TransactionCount: record.TransactionCount,
		Transactions:     make([]repository.Transaction, 0, len(record.Transactions)),
	}

	for i, tx := range record.Transactions {
		stored := repository.Transaction{
			BlockNumber: block.Number,
			Position:    i,
			Hash:        tx.Hash,
			From:        tx.From,
			To:          tx.To,
			Value:       decString(tx.Value),
			Gas:         decString(tx.Gas),
		}
		if tx.GasPrice != nil {
			gasPrice := tx.GasPrice.Dec()
			stored.GasPrice = &gasPrice
		}
		block.Transactions = append(block.Transactions, stored)
	}

	return block, nil
}

func fromRepositoryBlock(block repository.Block) (BlockRecord, error) {
	number := block.Number
	timestamp, err := parseDec(block.Timestamp)
	if err != nil {
		return BlockRecord{}, fmt.Errorf("block %d timestamp: %w", number, err)
	}

	record := BlockRecord{
		Number:           &number,
		Hash:             block.Hash,
		Miner:            block.Miner,
		Timestamp:        timestamp,
		TransactionCount: block.TransactionCount,
		Transactions:     make([]TransactionRecord, 0, len(block.Transactions)),
	}

	for _, tx := range block.Transactions {
		value, err := parseDec(tx.Value)
		if err != nil {
			return BlockRecord{}, fmt.Errorf("transaction %s value: %w", tx.Hash, err)
		}
		gas, err := parseDec(tx.Gas)
		if err != nil {
			return BlockRecord{}, fmt.Errorf("transaction %s gas: %w", tx.Hash, err)
		}

		out := TransactionRecord{
			Hash:  tx.Hash,
			From:  tx.From,
			To:    tx.To,
			Value: value,
			Gas:   gas,
		}
		if tx.GasPrice != nil {
			out.GasPrice, err = parseDec(*tx.GasPrice)
			if err != nil {
				return BlockRecord{}, fmt.Errorf("transaction %s gas price: %w", tx.Hash, err)
			}
		}
		record.Transactions = append(record.Transactions, out)
	}

	return record, nil
}

func fromRepositoryBlocks(blocks []repository.Block) ([]BlockRecord, error) {
	records := make([]BlockRecord, 0, len(blocks))
	for _, block := range blocks {
		record, err := fromRepositoryBlock(block)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func decString(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}

func parseDec(s string) (*uint256.Int, error) {
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrConversion, s, err)
	}
	return v, nil
}
