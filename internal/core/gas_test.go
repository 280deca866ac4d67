package core_test

import (
	"blockvault/internal/core"
	"blockvault/internal/core/fake"
	"context"
	"errors"
	"math/big"

	"github.com/holiman/uint256"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Gas price", func() {
	Describe("EstimateGasPrice", func() {
		It("prices a gas unit and a transfer", func() {
			price, err := core.EstimateGasPrice(uint256.NewInt(30_000_000_000), uint256.NewInt(2000_00000000))
			Expect(err).NotTo(HaveOccurred())
			Expect(price.Gwei).To(Equal(30.0))
			Expect(price.UsdPerGas).To(BeNumerically("~", 0.00006, 1e-12))
			Expect(price.TransferUSD).To(BeNumerically("~", 1.26, 1e-9))
			Expect(price.GasUnits).To(Equal(uint64(21000)))
		})

		It("handles fractional gwei", func() {
			price, err := core.EstimateGasPrice(uint256.NewInt(1_500_000_000), uint256.NewInt(1000_00000000))
			Expect(err).NotTo(HaveOccurred())
			Expect(price.Gwei).To(Equal(1.5))
		})

		It("fails on overflow", func() {
			_, err := core.EstimateGasPrice(new(uint256.Int).SetAllOne(), uint256.NewInt(2000_00000000))
			Expect(err).To(MatchError(core.ErrConversion))
		})
	})

	Describe("Explorer.GasPrice", func() {
		var (
			fakeEth  *fake.EthereumService
			explorer *core.Explorer
			fakeErr  error
		)

		BeforeEach(func() {
			fakeEth = new(fake.EthereumService)
			fakeErr = errors.New("fake error")
			explorer = core.NewExplorer(zap.NewNop().Sugar(), new(fake.Repository), new(fake.JWTIssuer), fakeEth, nil, core.ExplorerConfig{})

			fakeEth.LatestAnswerReturns(big.NewInt(2000_00000000), nil)
			fakeEth.GasPriceReturns(big.NewInt(30_000_000_000), nil)
		})

		It("combines the node price and the oracle answer", func() {
			price, err := explorer.GasPrice(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(price.Gwei).To(Equal(30.0))
			Expect(price.TransferUSD).To(BeNumerically("~", 1.26, 1e-9))
		})

		It("wraps oracle failures", func() {
			fakeEth.LatestAnswerReturns(nil, fakeErr)
			_, err := explorer.GasPrice(context.Background())
			Expect(err).To(MatchError(core.ErrOracleCall))
			Expect(fakeEth.GasPriceCallCount()).To(Equal(0))
		})

		It("rejects a negative answer", func() {
			fakeEth.LatestAnswerReturns(big.NewInt(-1), nil)
			_, err := explorer.GasPrice(context.Background())
			Expect(err).To(MatchError(core.ErrConversion))
		})

		It("wraps node failures", func() {
			fakeEth.GasPriceReturns(nil, fakeErr)
			_, err := explorer.GasPrice(context.Background())
			Expect(err).To(MatchError(core.ErrTransientFetch))
		})
	})
})
