package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"blockvault/internal/core"
	"blockvault/internal/http/handler"
	"blockvault/internal/http/handler/fake"
	"blockvault/internal/http/handler/middleware"
	mwfake "blockvault/internal/http/handler/middleware/fake"
	"blockvault/internal/http/payload"

	"github.com/holiman/uint256"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("ExplorerHandler", func() {
	var (
		eh             *handler.ExplorerHandler
		fakeService    *fake.ExplorerService
		fakeValidator  *fake.RequestValidator
		fakeAuthorizer *mwfake.Authorizer
		fakeLogger     *zap.SugaredLogger
		mux            *http.ServeMux
		w              *httptest.ResponseRecorder
		req            *http.Request
		fakeErr        error
		blockNumber    uint64
		block          core.BlockRecord
	)

	BeforeEach(func() {
		fakeErr = errors.New("fake-error")
		fakeLogger = zap.NewNop().Sugar()
		fakeService = new(fake.ExplorerService)
		fakeValidator = new(fake.RequestValidator)
		fakeValidator.DecodeJSONPayloadStub = payload.DecodeValidator{}.DecodeJSONPayload
		fakeAuthorizer = new(mwfake.Authorizer)

		blockNumber = 42
		block = core.BlockRecord{
			Number:           &blockNumber,
			Timestamp:        uint256.NewInt(1_700_000_000),
			TransactionCount: 0,
			Transactions:     []core.TransactionRecord{},
		}

		w = httptest.NewRecorder()
		eh = handler.NewExplorerHandler(fakeLogger, fakeValidator, fakeService)
		mux = http.NewServeMux()
		eh.Register(mux, middleware.NewAuthMiddleware(fakeLogger, fakeAuthorizer))
	})

	serve := func() {
		mux.ServeHTTP(w, req)
	}

	decode := func() map[string]json.RawMessage {
		var body map[string]json.RawMessage
		Expect(json.NewDecoder(w.Body).Decode(&body)).To(Succeed())
		return body
	}

	Describe("HandleAuthenticate", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/authenticate", strings.NewReader(`{"username":"admin","password":"pass"}`))
		})

		JustBeforeEach(serve)

		When("authentication succeeds", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("test-token", nil)
			})

			It("should return a token", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(string(decode()["token"])).To(Equal(`"test-token"`))
				_, msg := fakeService.AuthenticateArgsForCall(0)
				Expect(msg).To(Equal(core.AuthMessage{Username: "admin", Password: "pass"}))
			})
		})

		When("payload validation fails", func() {
			BeforeEach(func() {
				fakeValidator.DecodeJSONPayloadReturns(fakeErr)
			})

			It("should return status 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(w.Body.String()).To(ContainSubstring(fakeErr.Error()))
				Expect(fakeService.AuthenticateCallCount()).To(Equal(0))
			})
		})

		When("the password is wrong", func() {
			BeforeEach(func() {
				fakeService.AuthenticateReturns("", core.ErrIncorrectPassword)
			})

			It("should return 401", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
			})
		})
	})

	Describe("HandleGetLatestBlocks", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/blocks", nil)
		})

		JustBeforeEach(serve)

		When("the service answers", func() {
			BeforeEach(func() {
				fakeService.LatestBlocksReturns([]core.BlockRecord{block}, nil)
			})

			It("returns the blocks", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				var blocks []map[string]any
				Expect(json.Unmarshal(decode()["blocks"], &blocks)).To(Succeed())
				Expect(blocks).To(HaveLen(1))
				Expect(blocks[0]["number"]).To(BeNumerically("==", 42))
				Expect(blocks[0]).To(HaveKey("transaction_count"))
			})
		})

		When("the node fails", func() {
			BeforeEach(func() {
				fakeService.LatestBlocksReturns(nil, fmt.Errorf("%w: %w", core.ErrTransientFetch, fakeErr))
			})

			It("returns 500 without leaking the cause", func() {
				Expect(w.Code).To(Equal(http.StatusInternalServerError))
				Expect(w.Body.String()).NotTo(ContainSubstring(fakeErr.Error()))
			})
		})
	})

	Describe("HandleGetLatestTransactions", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/transactions", nil)
			fakeService.LatestTransactionsReturns([]core.TransactionRecord{
				{Hash: "0xaa", From: "0xbb", Value: uint256.NewInt(5), Gas: uint256.NewInt(21000)},
			}, nil)
		})

		JustBeforeEach(serve)

		It("returns the transactions", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(string(decode()["transactions"])).To(ContainSubstring(`"hash":"0xaa"`))
		})
	})

	Describe("HandleGetHistoricData", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/historic-data", nil)
		})

		JustBeforeEach(serve)

		When("an ingestion is already running", func() {
			BeforeEach(func() {
				fakeService.HistoricDataReturns(nil, fmt.Errorf("download history: %w", core.ErrIngestionRunning))
			})

			It("returns 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})

		When("blocks are stored", func() {
			BeforeEach(func() {
				fakeService.HistoricDataReturns([]core.BlockRecord{block}, nil)
			})

			It("returns them", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(decode()).To(HaveKey("blocks"))
			})

			It("names the count transaction_count", func() {
				var blocks []map[string]json.RawMessage
				Expect(json.Unmarshal(decode()["blocks"], &blocks)).To(Succeed())
				Expect(blocks).To(HaveLen(1))
				Expect(blocks[0]).To(HaveKeyWithValue("number", json.RawMessage("42")))
				Expect(blocks[0]).To(HaveKeyWithValue("transaction_count", json.RawMessage("0")))
				Expect(blocks[0]).NotTo(HaveKey("transaction_number"))
			})
		})
	})

	Describe("HandleGetStoredBlock", func() {
		JustBeforeEach(serve)

		When("the number is not numeric", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/blocks/latest", nil)
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.StoredBlockCallCount()).To(Equal(0))
			})
		})

		When("the block is not stored", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/blocks/42", nil)
				fakeService.StoredBlockReturns(core.BlockRecord{}, fmt.Errorf("block 42: %w", core.ErrBlockNotFound))
			})

			It("returns 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
				_, number := fakeService.StoredBlockArgsForCall(0)
				Expect(number).To(Equal(uint64(42)))
			})
		})

		When("the block is stored", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("GET", "/blocks/42", nil)
				fakeService.StoredBlockReturns(block, nil)
			})

			It("returns it", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				Expect(string(decode()["block"])).To(ContainSubstring(`"number":42`))
			})
		})
	})

	Describe("HandleGetGasPrice", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/gas-price", nil)
			fakeService.GasPriceReturns(core.GasPrice{Gwei: 30, UsdPerGas: 0.00006, TransferUSD: 1.26, GasUnits: 21000}, nil)
		})

		JustBeforeEach(serve)

		It("returns the estimate", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			var price core.GasPrice
			Expect(json.Unmarshal(decode()["gas_price"], &price)).To(Succeed())
			Expect(price.GasUnits).To(Equal(uint64(21000)))
			Expect(price.TransferUSD).To(BeNumerically("~", 1.26, 1e-9))
		})
	})

	Describe("HandleIngestRange", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("POST", "/ingest", strings.NewReader(`{"from":10,"to":12}`))
			req.Header.Set(middleware.AuthTokenHeader, "token")
		})

		JustBeforeEach(serve)

		When("no token is sent", func() {
			BeforeEach(func() {
				req.Header.Del(middleware.AuthTokenHeader)
			})

			It("returns 401 without calling the service", func() {
				Expect(w.Code).To(Equal(http.StatusUnauthorized))
				Expect(fakeService.IngestRangeCallCount()).To(Equal(0))
			})
		})

		When("the range is inverted", func() {
			BeforeEach(func() {
				req = httptest.NewRequest("POST", "/ingest", strings.NewReader(`{"from":12,"to":10}`))
				req.Header.Set(middleware.AuthTokenHeader, "token")
			})

			It("returns 400", func() {
				Expect(w.Code).To(Equal(http.StatusBadRequest))
				Expect(fakeService.IngestRangeCallCount()).To(Equal(0))
			})
		})

		When("the run completes", func() {
			BeforeEach(func() {
				fakeService.IngestRangeReturns(core.RunSummary{
					From:     10,
					To:       12,
					Stored:   []uint64{10, 12},
					Existing: []uint64{11},
					Skipped:  []core.BlockOutcome{},
				}, nil)
			})

			It("returns the summary", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, from, to := fakeService.IngestRangeArgsForCall(0)
				Expect(from).To(Equal(uint64(10)))
				Expect(to).To(Equal(uint64(12)))

				body := decode()
				Expect(string(body["complete"])).To(Equal("true"))
				Expect(string(body["processed"])).To(Equal("3"))
			})
		})

		When("another run is in progress", func() {
			BeforeEach(func() {
				fakeService.IngestRangeReturns(core.RunSummary{}, core.ErrIngestionRunning)
			})

			It("returns 409", func() {
				Expect(w.Code).To(Equal(http.StatusConflict))
			})
		})
	})

	Describe("HandleWipeStore", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("DELETE", "/blocks", nil)
			req.Header.Set(middleware.AuthTokenHeader, "token")
			fakeService.WipeStoreReturns(7, nil)
		})

		JustBeforeEach(serve)

		It("reports the deleted count", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(string(decode()["deleted"])).To(Equal("7"))
		})
	})

	Describe("HandleReplaceBlock", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("PUT", "/blocks/42", nil)
			req.Header.Set(middleware.AuthTokenHeader, "token")
		})

		JustBeforeEach(serve)

		When("the block is not stored", func() {
			BeforeEach(func() {
				fakeService.ReplaceBlockReturns(core.BlockRecord{}, core.ErrBlockNotFound)
			})

			It("returns 404", func() {
				Expect(w.Code).To(Equal(http.StatusNotFound))
			})
		})

		When("the block is replaced", func() {
			BeforeEach(func() {
				fakeService.ReplaceBlockReturns(block, nil)
			})

			It("returns the new block", func() {
				Expect(w.Code).To(Equal(http.StatusOK))
				_, number := fakeService.ReplaceBlockArgsForCall(0)
				Expect(number).To(Equal(uint64(42)))
			})
		})
	})

	Describe("HandleHealthz", func() {
		BeforeEach(func() {
			req = httptest.NewRequest("GET", "/healthz", nil)
		})

		JustBeforeEach(serve)

		It("reports ok", func() {
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(string(decode()["status"])).To(Equal(`"ok"`))
		})
	})
})
