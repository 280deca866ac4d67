package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// AggregatorABI is the slice of the Chainlink aggregator interface the service calls.
const AggregatorABI = `[{"inputs":[],"name":"latestAnswer","outputs":[{"internalType":"int256","name":"","type":"int256"}],"stateMutability":"view","type":"function"}]`

const latestAnswerMethod = "latestAnswer"

var ErrUnexpectedAnswer error = errors.New("unexpected oracle answer")

type EthService struct {
	client     EthClient
	rpc        RPCCaller
	oracle     common.Address
	aggregator abi.ABI
}

func NewEthService(ethClient EthClient, rpc RPCCaller, oracle common.Address) (*EthService, error) {
	aggregator, err := abi.JSON(strings.NewReader(AggregatorABI))
	if err != nil {
		return nil, fmt.Errorf("parse aggregator abi: %w", err)
	}

	return &EthService{
		client:     ethClient,
		rpc:        rpc,
		oracle:     oracle,
		aggregator: aggregator,
	}, nil
}

func (s *EthService) BlockNumber(ctx context.Context) (uint64, error) {
	number, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return number, nil
}

// BlockByNumber returns the header-only block, or nil when the node does not know it yet.
func (s *EthService) BlockByNumber(ctx context.Context, number uint64) (*Block, error) {
	return s.getBlock(ctx, number, false)
}

// BlockWithTransactions returns the block with full transaction objects, or nil when unknown.
func (s *EthService) BlockWithTransactions(ctx context.Context, number uint64) (*Block, error) {
	return s.getBlock(ctx, number, true)
}

func (s *EthService) GasPrice(ctx context.Context) (*big.Int, error) {
	price, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}
	return price, nil
}

// LatestAnswer reads the USD/ETH price from the aggregator, scaled by 1e8.
func (s *EthService) LatestAnswer(ctx context.Context) (*big.Int, error) {
	data, err := s.aggregator.Pack(latestAnswerMethod)
	if err != nil {
		return nil, fmt.Errorf("pack %s call: %w", latestAnswerMethod, err)
	}

	oracle := s.oracle
	out, err := s.client.CallContract(ctx, geth.CallMsg{To: &oracle, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("call %s on %s: %w", latestAnswerMethod, oracle.Hex(), err)
	}

	values, err := s.aggregator.Unpack(latestAnswerMethod, out)
	if err != nil {
		return nil, fmt.Errorf("unpack %s result: %w", latestAnswerMethod, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%w: %d values", ErrUnexpectedAnswer, len(values))
	}

	answer, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnexpectedAnswer, values[0])
	}

	return answer, nil
}

func (s *EthService) getBlock(ctx context.Context, number uint64, fullTx bool) (*Block, error) {
	var raw json.RawMessage
	err := s.rpc.CallContext(ctx, &raw, "eth_getBlockByNumber", hexutil.EncodeUint64(number), fullTx)
	if err != nil {
		return nil, fmt.Errorf("get block %d: %w", number, err)
	}

	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	block, err := decodeBlock(raw, fullTx)
	if err != nil {
		return nil, fmt.Errorf("decode block %d: %w", number, err)
	}

	return block, nil
}

func decodeBlock(raw json.RawMessage, fullTx bool) (*Block, error) {
	var head rpcBlock
	if err := json.Unmarshal(raw, &head); err != nil {
		return nil, err
	}

	block := &Block{
		Number:    (*big.Int)(head.Number),
		Hash:      head.Hash,
		Miner:     head.Miner,
		Timestamp: (*big.Int)(head.Timestamp),
		Full:      fullTx,
	}

	if len(head.Transactions) == 0 {
		return block, nil
	}

	if !fullTx {
		if err := json.Unmarshal(head.Transactions, &block.TxHashes); err != nil {
			return nil, fmt.Errorf("transaction hashes: %w", err)
		}
		return block, nil
	}

	var txs []rpcTransaction
	if err := json.Unmarshal(head.Transactions, &txs); err != nil {
		return nil, fmt.Errorf("transactions: %w", err)
	}

	block.Transactions = make([]*Transaction, 0, len(txs))
	for _, tx := range txs {
		block.Transactions = append(block.Transactions, tx.toTransaction())
	}

	return block, nil
}
