package ethereum_test

import (
	"blockvault/internal/ethereum"
	"blockvault/internal/ethereum/fake"
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"strings"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const fullBlockJSON = `{
	"number": "0x1036640",
	"hash": "0x2bd7b1e0a4c4a3dd9a2c2d3fd2b4d3bb8cfb4d0d6f2bd0f4a3b2a1c0d9e8f7a6",
	"miner": "0x95222290dd7278aa3ddd389cc1e1d165cc4bafe5",
	"timestamp": "0x64f2a8b7",
	"transactions": [
		{
			"hash": "0x1111111111111111111111111111111111111111111111111111111111111111",
			"from": "0x00000000000000000000000000000000000000aa",
			"to": "0x00000000000000000000000000000000000000bb",
			"value": "0xde0b6b3a7640000",
			"gasPrice": "0x6fc23ac00",
			"gas": "0x5208"
		},
		{
			"hash": "0x2222222222222222222222222222222222222222222222222222222222222222",
			"from": "0x00000000000000000000000000000000000000cc",
			"to": null,
			"value": "0x0",
			"gas": "0x7a120"
		}
	]
}`

const headerBlockJSON = `{
	"number": "0x10",
	"hash": "0x3333333333333333333333333333333333333333333333333333333333333333",
	"miner": "0x00000000000000000000000000000000000000dd",
	"timestamp": "0x1",
	"transactions": [
		"0x1111111111111111111111111111111111111111111111111111111111111111",
		"0x2222222222222222222222222222222222222222222222222222222222222222",
		"0x4444444444444444444444444444444444444444444444444444444444444444"
	]
}`

// answerWith makes the fake node answer eth_getBlockByNumber with body.
func answerWith(rpc *fake.RPCCaller, body string) {
	rpc.CallContextStub = func(_ context.Context, result interface{}, _ string, _ ...interface{}) error {
		*result.(*json.RawMessage) = json.RawMessage(body)
		return nil
	}
}

var _ = Describe("EthService", func() {
	var (
		service    *ethereum.EthService
		fakeClient *fake.EthClient
		fakeRPC    *fake.RPCCaller
		oracle     common.Address
		aggregator abi.ABI
		ctx        context.Context
		testErr    error
	)

	BeforeEach(func() {
		var err error
		fakeClient = new(fake.EthClient)
		fakeRPC = new(fake.RPCCaller)
		oracle = common.HexToAddress("0x5f4eC3Df9cbd43714FE2740f5E3616155c5b8419")
		testErr = errors.New("test error")
		ctx = context.Background()

		aggregator, err = abi.JSON(strings.NewReader(ethereum.AggregatorABI))
		Expect(err).NotTo(HaveOccurred())

		service, err = ethereum.NewEthService(fakeClient, fakeRPC, oracle)
		Expect(err).NotTo(HaveOccurred())
	})

	Describe("BlockWithTransactions", func() {
		It("requests the block with full transactions", func() {
			answerWith(fakeRPC, fullBlockJSON)

			_, err := service.BlockWithTransactions(ctx, 17000000)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeRPC.CallContextCallCount()).To(Equal(1))
			_, _, method, args := fakeRPC.CallContextArgsForCall(0)
			Expect(method).To(Equal("eth_getBlockByNumber"))
			Expect(args).To(Equal([]interface{}{"0x1036640", true}))
		})

		It("decodes every field", func() {
			answerWith(fakeRPC, fullBlockJSON)

			block, err := service.BlockWithTransactions(ctx, 17000000)
			Expect(err).NotTo(HaveOccurred())
			Expect(block.Number.Uint64()).To(Equal(uint64(17000000)))
			Expect(block.Hash.Hex()).To(Equal("0x2bd7b1e0a4c4a3dd9a2c2d3fd2b4d3bb8cfb4d0d6f2bd0f4a3b2a1c0d9e8f7a6"))
			Expect(*block.Miner).To(Equal(common.HexToAddress("0x95222290dd7278aa3ddd389cc1e1d165cc4bafe5")))
			Expect(block.Timestamp.Int64()).To(Equal(int64(0x64f2a8b7)))
			Expect(block.Full).To(BeTrue())
			Expect(block.TransactionCount()).To(Equal(2))

			first := block.Transactions[0]
			Expect(first.Value.String()).To(Equal("1000000000000000000"))
			Expect(first.GasPrice.Int64()).To(Equal(int64(30_000_000_000)))
			Expect(first.Gas.Int64()).To(Equal(int64(21000)))
			Expect(*first.To).To(Equal(common.HexToAddress("0x00000000000000000000000000000000000000bb")))

			creation := block.Transactions[1]
			Expect(creation.To).To(BeNil())
			Expect(creation.GasPrice).To(BeNil())
			Expect(creation.Value.Sign()).To(Equal(0))
		})

		It("returns nil for a block the node does not have", func() {
			answerWith(fakeRPC, "null")

			block, err := service.BlockWithTransactions(ctx, 99999999)
			Expect(err).NotTo(HaveOccurred())
			Expect(block).To(BeNil())
		})

		It("wraps transport errors", func() {
			fakeRPC.CallContextReturns(testErr)

			_, err := service.BlockWithTransactions(ctx, 1)
			Expect(err).To(MatchError(testErr))
		})

		It("fails on a malformed body", func() {
			answerWith(fakeRPC, `{"number": 12}`)

			_, err := service.BlockWithTransactions(ctx, 1)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("BlockByNumber", func() {
		It("decodes transaction hashes only", func() {
			answerWith(fakeRPC, headerBlockJSON)

			block, err := service.BlockByNumber(ctx, 16)
			Expect(err).NotTo(HaveOccurred())
			Expect(block.Full).To(BeFalse())
			Expect(block.Transactions).To(BeEmpty())
			Expect(block.TxHashes).To(HaveLen(3))
			Expect(block.TransactionCount()).To(Equal(3))

			_, _, _, args := fakeRPC.CallContextArgsForCall(0)
			Expect(args).To(Equal([]interface{}{"0x10", false}))
		})

		It("handles a block without transactions", func() {
			answerWith(fakeRPC, `{"number": "0x0", "timestamp": "0x0", "transactions": []}`)

			block, err := service.BlockByNumber(ctx, 0)
			Expect(err).NotTo(HaveOccurred())
			Expect(block.TransactionCount()).To(Equal(0))
			Expect(block.Hash).To(BeNil())
		})
	})

	Describe("BlockNumber", func() {
		It("returns the head", func() {
			fakeClient.BlockNumberReturns(42, nil)
			number, err := service.BlockNumber(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(number).To(Equal(uint64(42)))
		})

		It("wraps errors", func() {
			fakeClient.BlockNumberReturns(0, testErr)
			_, err := service.BlockNumber(ctx)
			Expect(err).To(MatchError(testErr))
		})
	})

	Describe("GasPrice", func() {
		It("returns the suggested price", func() {
			fakeClient.SuggestGasPriceReturns(big.NewInt(30_000_000_000), nil)
			price, err := service.GasPrice(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(price.Int64()).To(Equal(int64(30_000_000_000)))
		})

		It("wraps errors", func() {
			fakeClient.SuggestGasPriceReturns(nil, testErr)
			_, err := service.GasPrice(ctx)
			Expect(err).To(MatchError(testErr))
		})
	})

	Describe("LatestAnswer", func() {
		It("calls the aggregator and unpacks the answer", func() {
			out, err := aggregator.Methods["latestAnswer"].Outputs.Pack(big.NewInt(2000_00000000))
			Expect(err).NotTo(HaveOccurred())
			fakeClient.CallContractReturns(out, nil)

			answer, err := service.LatestAnswer(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(answer.Int64()).To(Equal(int64(2000_00000000)))

			expected, err := aggregator.Pack("latestAnswer")
			Expect(err).NotTo(HaveOccurred())

			_, msg, blockNumber := fakeClient.CallContractArgsForCall(0)
			Expect(msg).To(Equal(geth.CallMsg{To: &oracle, Data: expected}))
			Expect(blockNumber).To(BeNil())
		})

		It("keeps a negative answer signed", func() {
			out, err := aggregator.Methods["latestAnswer"].Outputs.Pack(big.NewInt(-5))
			Expect(err).NotTo(HaveOccurred())
			fakeClient.CallContractReturns(out, nil)

			answer, err := service.LatestAnswer(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(answer.Int64()).To(Equal(int64(-5)))
		})

		It("wraps call errors", func() {
			fakeClient.CallContractReturns(nil, testErr)
			_, err := service.LatestAnswer(ctx)
			Expect(err).To(MatchError(testErr))
		})

		It("fails on an empty result", func() {
			fakeClient.CallContractReturns([]byte{}, nil)
			_, err := service.LatestAnswer(ctx)
			Expect(err).To(HaveOccurred())
		})
	})
})
