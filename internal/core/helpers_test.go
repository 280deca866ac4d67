package core_test

import (
	"blockvault/internal/core/fake"
	"blockvault/internal/ethereum"
	"blockvault/internal/repository"
	"context"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// fullBlock builds a raw block carrying txCount transactions.
func fullBlock(number uint64, txCount int) *ethereum.Block {
	hash := common.BigToHash(new(big.Int).SetUint64(number + 1000))
	miner := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	block := &ethereum.Block{
		Number:       new(big.Int).SetUint64(number),
		Hash:         &hash,
		Miner:        &miner,
		Timestamp:    big.NewInt(1_700_000_000 + int64(number)),
		Full:         true,
		Transactions: []*ethereum.Transaction{},
	}

	for i := 0; i < txCount; i++ {
		to := common.HexToAddress("0x00000000000000000000000000000000000000bb")
		block.Transactions = append(block.Transactions, &ethereum.Transaction{
			Hash:     common.BigToHash(big.NewInt(int64(number*100) + int64(i))),
			From:     common.HexToAddress("0x00000000000000000000000000000000000000cc"),
			To:       &to,
			Value:    big.NewInt(int64(i) * 1_000_000),
			GasPrice: big.NewInt(30_000_000_000),
			Gas:      big.NewInt(21000),
		})
	}

	return block
}

// memoryStore backs a fake repository with a map keyed by block number.
type memoryStore struct {
	mu     sync.Mutex
	blocks map[uint64]repository.Block
}

func newMemoryStore(repo *fake.Repository) *memoryStore {
	store := &memoryStore{blocks: map[uint64]repository.Block{}}

	repo.BlockExistsStub = func(_ context.Context, number uint64) (bool, error) {
		store.mu.Lock()
		defer store.mu.Unlock()
		_, ok := store.blocks[number]
		return ok, nil
	}
	repo.SaveBlockStub = func(_ context.Context, block repository.Block) error {
		store.mu.Lock()
		defer store.mu.Unlock()
		if _, ok := store.blocks[block.Number]; ok {
			return repository.ErrDuplicateBlock
		}
		store.blocks[block.Number] = block
		return nil
	}

	return store
}

func (s *memoryStore) seed(block repository.Block) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[block.Number] = block
}

func (s *memoryStore) get(number uint64) (repository.Block, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	block, ok := s.blocks[number]
	return block, ok
}
