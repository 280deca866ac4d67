package handler

import (
	"blockvault/internal/core"
	"blockvault/internal/http/handler/middleware"
	"blockvault/internal/http/payload"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

var (
	Authenticate          = "POST /authenticate"
	GetLatestBlocks       = "GET /blocks"
	GetLatestTransactions = "GET /transactions"
	GetHistoricData       = "GET /historic-data"
	GetStoredBlock        = "GET /blocks/{number}"
	GetGasPrice           = "GET /gas-price"
	IngestRange           = "POST /ingest"
	WipeStore             = "DELETE /blocks"
	ReplaceBlock          = "PUT /blocks/{number}"
	Healthz               = "GET /healthz"
)

type ExplorerHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	explorer         ExplorerService
}

func NewExplorerHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, explorerService ExplorerService) *ExplorerHandler {
	return &ExplorerHandler{
		logs:             logger,
		requestValidator: requestValidator,
		explorer:         explorerService,
	}
}

func (h *ExplorerHandler) HandleAuthenticate(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var payload payload.AuthRequest
	err := h.requestValidator.DecodeJSONPayload(r, &payload)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not authenticate",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", Authenticate,
			"request_id", requestId)
		return
	}

	token, err := h.explorer.Authenticate(r.Context(), payload.ToMessage())
	if err != nil {
		h.fail(w, "Login failed", err, Authenticate, requestId)
		return
	}

	h.respond(w, map[string]string{
		"token": token,
	}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetLatestBlocks(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	blocks, err := h.explorer.LatestBlocks(r.Context())
	if err != nil {
		h.fail(w, "Could not retrieve latest blocks", err, GetLatestBlocks, requestId)
		return
	}

	h.respond(w, map[string][]core.BlockRecord{
		"blocks": blocks,
	}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetLatestTransactions(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	transactions, err := h.explorer.LatestTransactions(r.Context())
	if err != nil {
		h.fail(w, "Could not retrieve latest transactions", err, GetLatestTransactions, requestId)
		return
	}

	h.respond(w, map[string][]core.TransactionRecord{
		"transactions": transactions,
	}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetHistoricData(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	blocks, err := h.explorer.HistoricData(r.Context())
	if err != nil {
		h.fail(w, "Could not retrieve historic data", err, GetHistoricData, requestId)
		return
	}

	h.logs.Infow("historic data retrieved",
		"blocks", len(blocks),
		"handler", GetHistoricData,
		"request_id", requestId)

	h.respond(w, map[string][]core.BlockRecord{
		"blocks": blocks,
	}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetStoredBlock(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	number, ok := h.blockNumber(w, r, GetStoredBlock, requestId)
	if !ok {
		return
	}

	block, err := h.explorer.StoredBlock(r.Context(), number)
	if err != nil {
		h.fail(w, "Could not retrieve block", err, GetStoredBlock, requestId)
		return
	}

	h.respond(w, map[string]core.BlockRecord{
		"block": block,
	}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleGetGasPrice(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	price, err := h.explorer.GasPrice(r.Context())
	if err != nil {
		h.fail(w, "Could not estimate gas price", err, GetGasPrice, requestId)
		return
	}

	h.respond(w, map[string]core.GasPrice{
		"gas_price": price,
	}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleIngestRange(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	var req payload.IngestRequest
	if err := h.requestValidator.DecodeJSONPayload(r, &req); err != nil {
		h.respond(w, Response{
			Message: "Could not start ingestion",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", IngestRange,
			"request_id", requestId)
		return
	}

	from, to := req.Range()
	h.logs.Infow("ingestion requested",
		"from", from,
		"to", to,
		"handler", IngestRange,
		"request_id", requestId)

	summary, err := h.explorer.IngestRange(r.Context(), from, to)
	if err != nil {
		h.fail(w, "Ingestion failed", err, IngestRange, requestId)
		return
	}

	h.respond(w, SummaryResponse{
		Complete:  summary.Complete(),
		Processed: summary.Processed(),
		Summary:   summary,
	}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleWipeStore(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	deleted, err := h.explorer.WipeStore(r.Context())
	if err != nil {
		h.fail(w, "Could not wipe the store", err, WipeStore, requestId)
		return
	}

	h.logs.Infow("store wiped",
		"deleted", deleted,
		"handler", WipeStore,
		"request_id", requestId)

	h.respond(w, map[string]int64{
		"deleted": deleted,
	}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleReplaceBlock(w http.ResponseWriter, r *http.Request) {
	requestId := middleware.RequestIDFrom(r.Context())

	number, ok := h.blockNumber(w, r, ReplaceBlock, requestId)
	if !ok {
		return
	}

	block, err := h.explorer.ReplaceBlock(r.Context(), number)
	if err != nil {
		h.fail(w, "Could not replace block", err, ReplaceBlock, requestId)
		return
	}

	h.respond(w, map[string]core.BlockRecord{
		"block": block,
	}, http.StatusOK, requestId)
}

func (h *ExplorerHandler) HandleHealthz(w http.ResponseWriter, r *http.Request) {
	h.respond(w, map[string]string{
		"status": "ok",
	}, http.StatusOK, middleware.RequestIDFrom(r.Context()))
}

func (h *ExplorerHandler) blockNumber(w http.ResponseWriter, r *http.Request, route string, requestId string) (uint64, bool) {
	raw := r.PathValue("number")
	number, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		h.respond(w, Response{
			Message: "Request failed",
			Error:   fmt.Sprintf("invalid block number %q", raw),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to parse block number",
			"error", err,
			"handler", route,
			"request_id", requestId)
		return 0, false
	}
	return number, true
}

// fail maps service errors to status codes. Unclassified errors are not
// echoed back to the caller.
func (h *ExplorerHandler) fail(w http.ResponseWriter, message string, err error, route string, requestId string) {
	resp := Response{
		Message: message,
		Error:   err.Error(),
	}

	var httpCode int
	switch {
	case errors.Is(err, core.ErrBlockNotFound):
		httpCode = http.StatusNotFound
	case errors.Is(err, core.ErrUserNotFound), errors.Is(err, core.ErrIncorrectPassword):
		httpCode = http.StatusUnauthorized
	case errors.Is(err, core.ErrIngestionRunning):
		httpCode = http.StatusConflict
	default:
		httpCode = http.StatusInternalServerError
		resp.Error = oopsErr
	}

	h.respond(w, resp, httpCode, requestId)
	h.logs.Errorw("request failed",
		"error", err,
		"status", httpCode,
		"handler", route,
		"request_id", requestId)
}

func (h *ExplorerHandler) respond(w http.ResponseWriter, resp any, code int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response",
			"error", err,
			"request_id", requestId)
	}
}
