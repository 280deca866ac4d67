package handler

import (
	"blockvault/internal/http/handler/middleware"
	"net/http"
)

// Register mounts the explorer routes. Mutating routes require an admin token.
func (h *ExplorerHandler) Register(mux *http.ServeMux, auth *middleware.AuthMiddleware) {
	mux.HandleFunc(Authenticate, h.HandleAuthenticate)
	mux.HandleFunc(GetLatestBlocks, h.HandleGetLatestBlocks)
	mux.HandleFunc(GetLatestTransactions, h.HandleGetLatestTransactions)
	mux.HandleFunc(GetHistoricData, h.HandleGetHistoricData)
	mux.HandleFunc(GetStoredBlock, h.HandleGetStoredBlock)
	mux.HandleFunc(GetGasPrice, h.HandleGetGasPrice)
	mux.HandleFunc(Healthz, h.HandleHealthz)

	mux.HandleFunc(IngestRange, auth.RequireToken(h.HandleIngestRange))
	mux.HandleFunc(WipeStore, auth.RequireToken(h.HandleWipeStore))
	mux.HandleFunc(ReplaceBlock, auth.RequireToken(h.HandleReplaceBlock))
}
