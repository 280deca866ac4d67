package cli

import (
	"blockvault/internal/core"
	"context"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name MenuService . MenuService
type MenuService interface {
	GasPrice(ctx context.Context) (core.GasPrice, error)
	LatestBlocks(ctx context.Context) ([]core.BlockRecord, error)
	LatestTransactions(ctx context.Context) ([]core.TransactionRecord, error)
	DownloadRecentHistory(ctx context.Context) (core.RunSummary, error)
	StoredBlocks(ctx context.Context) ([]core.BlockRecord, error)
	WipeStore(ctx context.Context) (int64, error)
}
