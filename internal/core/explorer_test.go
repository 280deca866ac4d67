package core_test

import (
	"blockvault/internal/core"
	"blockvault/internal/core/fake"
	"blockvault/internal/ethereum"
	"blockvault/internal/repository"
	tokenIssuer "blockvault/pkg/jwt"
	"context"
	"errors"

	"github.com/golang-jwt/jwt"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Explorer", func() {
	var (
		fakeRepo *fake.Repository
		fakeJWT  *fake.JWTIssuer
		fakeEth  *fake.EthereumService
		store    *memoryStore
		ctx      context.Context
		explorer *core.Explorer
		cfg      core.ExplorerConfig
		fakeErr  error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeEth = new(fake.EthereumService)
		store = newMemoryStore(fakeRepo)
		ctx = context.Background()
		fakeErr = errors.New("fake error")

		hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		cfg = core.ExplorerConfig{
			AdminUsername:     "admin",
			AdminPasswordHash: string(hash),
			HistoryFromBlock:  95,
			HistoryWindow:     3,
		}

		fakeEth.BlockNumberReturns(100, nil)
		fakeEth.BlockByNumberStub = func(_ context.Context, number uint64) (*ethereum.Block, error) {
			return fullBlock(number, 2), nil
		}
		fakeEth.BlockWithTransactionsStub = func(_ context.Context, number uint64) (*ethereum.Block, error) {
			return fullBlock(number, 2), nil
		}
	})

	JustBeforeEach(func() {
		logger := zap.NewNop().Sugar()
		crawler := core.NewCrawler(logger, fakeRepo, fakeEth, nil, core.CrawlerConfig{RetryAttempts: 3})
		explorer = core.NewExplorer(logger, fakeRepo, fakeJWT, fakeEth, crawler, cfg)
	})

	Describe("Authenticate", func() {
		BeforeEach(func() {
			fakeJWT.GenerateReturns(&jwt.Token{})
			fakeJWT.SignReturns("signed-token", nil)
		})

		It("issues an admin token for the right credentials", func() {
			token, err := explorer.Authenticate(ctx, core.AuthMessage{Username: "admin", Password: "s3cret"})
			Expect(err).NotTo(HaveOccurred())
			Expect(token).To(Equal("signed-token"))

			Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
			info := fakeJWT.GenerateArgsForCall(0)
			Expect(info).To(Equal(tokenIssuer.TokenInfo{
				UserName:   "admin",
				Subject:    "admin",
				Role:       "admin",
				Expiration: 24,
			}))
		})

		It("rejects an unknown user", func() {
			_, err := explorer.Authenticate(ctx, core.AuthMessage{Username: "root", Password: "s3cret"})
			Expect(err).To(MatchError(core.ErrUserNotFound))
			Expect(fakeJWT.SignCallCount()).To(Equal(0))
		})

		It("rejects a wrong password", func() {
			_, err := explorer.Authenticate(ctx, core.AuthMessage{Username: "admin", Password: "guess"})
			Expect(err).To(MatchError(core.ErrIncorrectPassword))
		})

		When("no password hash is configured", func() {
			BeforeEach(func() {
				cfg.AdminPasswordHash = ""
			})

			It("rejects everyone", func() {
				_, err := explorer.Authenticate(ctx, core.AuthMessage{Username: "admin", Password: ""})
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("signing fails", func() {
			BeforeEach(func() {
				fakeJWT.SignReturns("", fakeErr)
			})

			It("returns the error", func() {
				_, err := explorer.Authenticate(ctx, core.AuthMessage{Username: "admin", Password: "s3cret"})
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("Authorize", func() {
		It("accepts an admin token", func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{"role": "admin"}, nil)
			Expect(explorer.Authorize("token")).To(Succeed())
			Expect(fakeJWT.ValidateArgsForCall(0)).To(Equal("token"))
		})

		It("rejects another role", func() {
			fakeJWT.ValidateReturns(jwt.MapClaims{"role": "viewer"}, nil)
			Expect(explorer.Authorize("token")).To(MatchError(core.ErrUnauthorized))
		})

		It("rejects an invalid token", func() {
			fakeJWT.ValidateReturns(nil, fakeErr)
			err := explorer.Authorize("token")
			Expect(err).To(MatchError(core.ErrUnauthorized))
			Expect(err).To(MatchError(fakeErr))
		})
	})

	Describe("LatestBlocks", func() {
		It("returns the ten blocks up to the head without transactions", func() {
			blocks, err := explorer.LatestBlocks(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(blocks).To(HaveLen(core.LatestLimit))
			Expect(*blocks[0].Number).To(Equal(uint64(91)))
			Expect(*blocks[9].Number).To(Equal(uint64(100)))
			for _, block := range blocks {
				Expect(block.Transactions).To(BeEmpty())
				Expect(block.TransactionCount).To(Equal(uint64(2)))
			}
		})

		When("the chain is shorter than ten blocks", func() {
			BeforeEach(func() {
				fakeEth.BlockNumberReturns(3, nil)
			})

			It("starts at genesis", func() {
				blocks, err := explorer.LatestBlocks(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(blocks).To(HaveLen(4))
				Expect(*blocks[0].Number).To(Equal(uint64(0)))
			})
		})

		When("the node misses a block", func() {
			BeforeEach(func() {
				fakeEth.BlockByNumberStub = func(_ context.Context, number uint64) (*ethereum.Block, error) {
					if number == 95 {
						return nil, nil
					}
					return fullBlock(number, 0), nil
				}
			})

			It("leaves it out", func() {
				blocks, err := explorer.LatestBlocks(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(blocks).To(HaveLen(core.LatestLimit - 1))
			})
		})

		When("the head cannot be read", func() {
			BeforeEach(func() {
				fakeEth.BlockNumberReturns(0, fakeErr)
			})

			It("returns a fetch error", func() {
				_, err := explorer.LatestBlocks(ctx)
				Expect(err).To(MatchError(core.ErrTransientFetch))
				Expect(fakeEth.BlockByNumberCallCount()).To(Equal(0))
			})
		})
	})

	Describe("LatestTransactions", func() {
		BeforeEach(func() {
			fakeEth.BlockWithTransactionsStub = func(_ context.Context, number uint64) (*ethereum.Block, error) {
				return fullBlock(number, 25), nil
			}
		})

		It("returns at most ten transactions of the head block", func() {
			txs, err := explorer.LatestTransactions(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(txs).To(HaveLen(core.LatestLimit))

			_, number := fakeEth.BlockWithTransactionsArgsForCall(0)
			Expect(number).To(Equal(uint64(100)))
		})

		When("the head block is small", func() {
			BeforeEach(func() {
				fakeEth.BlockWithTransactionsStub = func(_ context.Context, number uint64) (*ethereum.Block, error) {
					return fullBlock(number, 4), nil
				}
			})

			It("returns all of them", func() {
				txs, err := explorer.LatestTransactions(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(txs).To(HaveLen(4))
			})
		})
	})

	Describe("HistoricData", func() {
		When("the store is empty", func() {
			BeforeEach(func() {
				fakeRepo.GetAllBlocksStub = func(context.Context) ([]repository.Block, error) {
					blocks := []repository.Block{}
					for number := uint64(95); number <= 100; number++ {
						if block, ok := store.get(number); ok {
							blocks = append(blocks, block)
						}
					}
					return blocks, nil
				}
			})

			It("downloads history from the configured block to the head", func() {
				blocks, err := explorer.HistoricData(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(blocks).To(HaveLen(6))
				Expect(*blocks[0].Number).To(Equal(uint64(95)))
				Expect(*blocks[5].Number).To(Equal(uint64(100)))
				Expect(blocks[0].Transactions).To(HaveLen(2))
				Expect(fakeRepo.GetAllBlocksCallCount()).To(Equal(2))
			})
		})

		When("the store has blocks", func() {
			BeforeEach(func() {
				fakeRepo.GetAllBlocksReturns([]repository.Block{{Number: 7, Timestamp: "42"}}, nil)
			})

			It("serves them without touching the node", func() {
				blocks, err := explorer.HistoricData(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(blocks).To(HaveLen(1))
				Expect(blocks[0].Timestamp.Uint64()).To(Equal(uint64(42)))
				Expect(fakeEth.BlockNumberCallCount()).To(Equal(0))
			})
		})

		When("the store fails", func() {
			BeforeEach(func() {
				fakeRepo.GetAllBlocksReturns(nil, fakeErr)
			})

			It("returns a store error", func() {
				_, err := explorer.HistoricData(ctx)
				Expect(err).To(MatchError(core.ErrStoreQuery))
			})
		})
	})

	Describe("StoredBlock", func() {
		It("maps a missing block to not found", func() {
			fakeRepo.GetBlockReturns(repository.Block{}, repository.ErrBlockNotFound)
			_, err := explorer.StoredBlock(ctx, 12)
			Expect(err).To(MatchError(core.ErrBlockNotFound))
		})

		It("returns a stored block", func() {
			value := "1000"
			fakeRepo.GetBlockReturns(repository.Block{
				Number:           12,
				Timestamp:        "99",
				TransactionCount: 1,
				Transactions: []repository.Transaction{
					{BlockNumber: 12, Hash: "0x01", From: "0x02", Value: value, Gas: "21000", GasPrice: &value},
				},
			}, nil)

			block, err := explorer.StoredBlock(ctx, 12)
			Expect(err).NotTo(HaveOccurred())
			Expect(*block.Number).To(Equal(uint64(12)))
			Expect(block.Transactions[0].Value.Uint64()).To(Equal(uint64(1000)))
			Expect(block.Transactions[0].GasPrice.Uint64()).To(Equal(uint64(1000)))
			Expect(block.Transactions[0].To).To(BeNil())
		})

		It("reports corrupt values", func() {
			fakeRepo.GetBlockReturns(repository.Block{Number: 12, Timestamp: "not-a-number"}, nil)
			_, err := explorer.StoredBlock(ctx, 12)
			Expect(err).To(MatchError(core.ErrConversion))
		})
	})

	Describe("IngestRange", func() {
		It("returns the crawl summary", func() {
			summary, err := explorer.IngestRange(ctx, 10, 12)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.Stored).To(Equal([]uint64{10, 11, 12}))
		})

		It("refuses to start while another ingestion runs", func() {
			release := make(chan struct{})
			fakeEth.BlockWithTransactionsStub = func(_ context.Context, number uint64) (*ethereum.Block, error) {
				<-release
				return fullBlock(number, 0), nil
			}

			done := make(chan error, 1)
			go func() {
				defer GinkgoRecover()
				_, err := explorer.IngestRange(ctx, 1, 1)
				done <- err
			}()

			Eventually(fakeEth.BlockWithTransactionsCallCount).Should(Equal(1))

			_, err := explorer.IngestRange(ctx, 2, 2)
			Expect(err).To(MatchError(core.ErrIngestionRunning))

			close(release)
			Eventually(done).Should(Receive(BeNil()))

			_, err = explorer.IngestRange(ctx, 2, 2)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("DownloadRecentHistory", func() {
		It("ingests the window behind the head", func() {
			summary, err := explorer.DownloadRecentHistory(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(summary.From).To(Equal(uint64(97)))
			Expect(summary.To).To(Equal(uint64(100)))
			Expect(summary.Stored).To(HaveLen(4))
		})

		When("the window reaches past genesis", func() {
			BeforeEach(func() {
				fakeEth.BlockNumberReturns(2, nil)
			})

			It("starts at block zero", func() {
				summary, err := explorer.DownloadRecentHistory(ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(summary.From).To(Equal(uint64(0)))
				Expect(summary.Stored).To(Equal([]uint64{0, 1, 2}))
			})
		})
	})

	Describe("WipeStore", func() {
		It("returns the number of deleted blocks", func() {
			fakeRepo.DeleteAllBlocksReturns(5, nil)
			deleted, err := explorer.WipeStore(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal(int64(5)))
		})

		It("wraps store errors", func() {
			fakeRepo.DeleteAllBlocksReturns(0, fakeErr)
			_, err := explorer.WipeStore(ctx)
			Expect(err).To(MatchError(core.ErrStoreQuery))
		})
	})

	Describe("ReplaceBlock", func() {
		It("refetches and overwrites the block", func() {
			record, err := explorer.ReplaceBlock(ctx, 42)
			Expect(err).NotTo(HaveOccurred())
			Expect(*record.Number).To(Equal(uint64(42)))

			Expect(fakeRepo.ReplaceBlockCallCount()).To(Equal(1))
			_, number, block := fakeRepo.ReplaceBlockArgsForCall(0)
			Expect(number).To(Equal(uint64(42)))
			Expect(block.Transactions).To(HaveLen(2))
		})

		It("reports a block the store does not have", func() {
			fakeRepo.ReplaceBlockReturns(repository.ErrBlockNotFound)
			_, err := explorer.ReplaceBlock(ctx, 42)
			Expect(err).To(MatchError(core.ErrBlockNotFound))
		})

		It("reports a block the node does not have", func() {
			fakeEth.BlockWithTransactionsStub = nil
			fakeEth.BlockWithTransactionsReturns(nil, nil)
			_, err := explorer.ReplaceBlock(ctx, 42)
			Expect(err).To(MatchError(core.ErrBlockNotFound))
			Expect(fakeRepo.ReplaceBlockCallCount()).To(Equal(0))
		})
	})
})
