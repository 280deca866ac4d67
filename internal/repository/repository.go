package repository

import (
	"blockvault/internal/db"
	"context"
	"errors"
	"fmt"
	"sort"
)

var ErrBlockNotFound error = errors.New("block not found")
var ErrDuplicateBlock error = errors.New("block already stored")

type BlockRepository struct {
	db Storage
}

func NewBlockRepository(db Storage) *BlockRepository {
	return &BlockRepository{
		db: db,
	}
}

func (r *BlockRepository) Migrate() error {
	err := r.db.MigrateTable(&Block{}, &Transaction{})
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	return nil
}

func (r *BlockRepository) BlockExists(ctx context.Context, number uint64) (bool, error) {
	exists, err := r.db.Exists(ctx, &Block{}, "number", number)
	if err != nil {
		return false, fmt.Errorf("check block %d: %w", number, err)
	}

	return exists, nil
}

// SaveBlock stores the block and its transactions atomically.
func (r *BlockRepository) SaveBlock(ctx context.Context, block Block) error {
	for i := range block.Transactions {
		block.Transactions[i].BlockNumber = block.Number
	}

	err := r.db.SaveToTable(ctx, &block)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return fmt.Errorf("save block %d: %w", block.Number, ErrDuplicateBlock)
		}
		return fmt.Errorf("save block %d: %w", block.Number, err)
	}

	return nil
}

func (r *BlockRepository) GetBlock(ctx context.Context, number uint64) (Block, error) {
	var block Block

	err := r.db.GetOneBy(ctx, "number", number, &block)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return Block{}, ErrBlockNotFound
		}
		return Block{}, fmt.Errorf("get block %d: %w", number, err)
	}

	sortTransactions(block.Transactions)
	return block, nil
}

// GetAllBlocks returns every stored block ordered by number.
func (r *BlockRepository) GetAllBlocks(ctx context.Context) ([]Block, error) {
	blocks := []Block{}
	err := r.db.GetAll(ctx, &blocks)
	if err != nil {
		return blocks, fmt.Errorf("get all blocks: %w", err)
	}

	sort.Slice(blocks, func(i, j int) bool {
		return blocks[i].Number < blocks[j].Number
	})
	for i := range blocks {
		sortTransactions(blocks[i].Transactions)
	}

	return blocks, nil
}

func (r *BlockRepository) DeleteAllBlocks(ctx context.Context) (int64, error) {
	deleted, err := r.db.DeleteAll(ctx, &Block{})
	if err != nil {
		return 0, fmt.Errorf("delete all blocks: %w", err)
	}

	return deleted, nil
}

// ReplaceBlock overwrites the stored block with the given number.
func (r *BlockRepository) ReplaceBlock(ctx context.Context, number uint64, block Block) error {
	block.Number = number
	for i := range block.Transactions {
		block.Transactions[i].BlockNumber = number
	}

	err := r.db.Replace(ctx, &Block{}, "number", number, &block)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrBlockNotFound
		}
		return fmt.Errorf("replace block %d: %w", number, err)
	}

	return nil
}

func sortTransactions(txs []Transaction) {
	sort.Slice(txs, func(i, j int) bool {
		return txs[i].Position < txs[j].Position
	})
}
