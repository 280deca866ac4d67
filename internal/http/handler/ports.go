package handler

import (
	"blockvault/internal/core"
	"context"
	"net/http"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ExplorerService . ExplorerService
type ExplorerService interface {
	Authenticate(ctx context.Context, msg core.AuthMessage) (string, error)
	LatestBlocks(ctx context.Context) ([]core.BlockRecord, error)
	LatestTransactions(ctx context.Context) ([]core.TransactionRecord, error)
	HistoricData(ctx context.Context) ([]core.BlockRecord, error)
	StoredBlock(ctx context.Context, number uint64) (core.BlockRecord, error)
	GasPrice(ctx context.Context) (core.GasPrice, error)
	IngestRange(ctx context.Context, from, to uint64) (core.RunSummary, error)
	WipeStore(ctx context.Context) (int64, error)
	ReplaceBlock(ctx context.Context, number uint64) (core.BlockRecord, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
