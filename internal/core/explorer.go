package core

import (
	"blockvault/internal/repository"
	tokenIssuer "blockvault/pkg/jwt"
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	LatestLimit = 10
	adminRole   = "admin"
	tokenTTL    = 24
)

type ExplorerConfig struct {
	AdminUsername     string
	AdminPasswordHash string
	HistoryFromBlock  uint64
	HistoryWindow     uint64
}

// Explorer serves block and price queries and runs ingestions. At most one
// ingestion runs at a time.
type Explorer struct {
	logs       *zap.SugaredLogger
	repo       Repository
	jwtIssuer  JWTIssuer
	ethService EthereumService
	crawler    *Crawler
	cfg        ExplorerConfig

	mu        sync.Mutex
	ingesting bool
}

func NewExplorer(logger *zap.SugaredLogger, repo Repository, jwt JWTIssuer, ethereumService EthereumService, crawler *Crawler, cfg ExplorerConfig) *Explorer {
	return &Explorer{
		logs:       logger,
		repo:       repo,
		jwtIssuer:  jwt,
		ethService: ethereumService,
		crawler:    crawler,
		cfg:        cfg,
	}
}

func (e *Explorer) Authenticate(ctx context.Context, msg AuthMessage) (string, error) {
	if msg.Username != e.cfg.AdminUsername || e.cfg.AdminPasswordHash == "" {
		return "", ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(e.cfg.AdminPasswordHash), []byte(msg.Password)); err != nil {
		return "", ErrIncorrectPassword
	}

	tokenInfo := tokenIssuer.TokenInfo{
		UserName:   msg.Username,
		Subject:    msg.Username,
		Role:       adminRole,
		Expiration: tokenTTL,
	}
	token := e.jwtIssuer.Generate(tokenInfo)
	signed, err := e.jwtIssuer.Sign(token)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}

// Authorize accepts tokens issued by Authenticate.
func (e *Explorer) Authorize(token string) error {
	claims, err := e.jwtIssuer.Validate(token)
	if err != nil {
		return fmt.Errorf("%w: validate jwt token: %w", ErrUnauthorized, err)
	}

	if role, _ := claims["role"].(string); role != adminRole {
		return fmt.Errorf("%w: role %q", ErrUnauthorized, role)
	}

	return nil
}

// LatestBlocks returns the last LatestLimit blocks up to the head, header only.
func (e *Explorer) LatestBlocks(ctx context.Context) ([]BlockRecord, error) {
	head, err := e.head(ctx)
	if err != nil {
		return nil, err
	}

	from := uint64(0)
	if head >= LatestLimit-1 {
		from = head - (LatestLimit - 1)
	}

	records := make([]BlockRecord, 0, LatestLimit)
	for number := from; number <= head; number++ {
		raw, err := e.ethService.BlockByNumber(ctx, number)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTransientFetch, err)
		}
		if raw == nil {
			continue
		}
		records = append(records, Normalize(raw, false))
	}

	return records, nil
}

// LatestTransactions returns up to LatestLimit transactions of the head block.
func (e *Explorer) LatestTransactions(ctx context.Context) ([]TransactionRecord, error) {
	head, err := e.head(ctx)
	if err != nil {
		return nil, err
	}

	raw, err := e.ethService.BlockWithTransactions(ctx, head)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransientFetch, err)
	}
	if raw == nil {
		return []TransactionRecord{}, nil
	}

	txs := Normalize(raw, true).Transactions
	if len(txs) > LatestLimit {
		txs = txs[:LatestLimit]
	}

	return txs, nil
}

// HistoricData returns the stored blocks ordered by number. An empty store
// is first filled from the configured history start up to the head.
func (e *Explorer) HistoricData(ctx context.Context) ([]BlockRecord, error) {
	blocks, err := e.repo.GetAllBlocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}

	if len(blocks) == 0 {
		e.logs.Infow("store is empty, downloading history",
			"from", e.cfg.HistoryFromBlock)

		if _, err := e.DownloadHistory(ctx, e.cfg.HistoryFromBlock); err != nil {
			return nil, fmt.Errorf("download history: %w", err)
		}

		blocks, err = e.repo.GetAllBlocks(ctx)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrStoreQuery, err)
		}
	}

	return fromRepositoryBlocks(blocks)
}

func (e *Explorer) StoredBlocks(ctx context.Context) ([]BlockRecord, error) {
	blocks, err := e.repo.GetAllBlocks(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}

	return fromRepositoryBlocks(blocks)
}

func (e *Explorer) StoredBlock(ctx context.Context, number uint64) (BlockRecord, error) {
	block, err := e.repo.GetBlock(ctx, number)
	if err != nil {
		if errors.Is(err, repository.ErrBlockNotFound) {
			return BlockRecord{}, fmt.Errorf("block %d: %w", number, ErrBlockNotFound)
		}
		return BlockRecord{}, fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}

	return fromRepositoryBlock(block)
}

// IngestRange crawls [from, to] unless another ingestion is in progress.
func (e *Explorer) IngestRange(ctx context.Context, from, to uint64) (RunSummary, error) {
	if !e.beginIngestion() {
		return RunSummary{}, ErrIngestionRunning
	}
	defer e.endIngestion()

	return e.crawler.Crawl(ctx, from, to)
}

// DownloadHistory ingests from the given block up to the current head.
func (e *Explorer) DownloadHistory(ctx context.Context, from uint64) (RunSummary, error) {
	head, err := e.head(ctx)
	if err != nil {
		return RunSummary{}, err
	}

	return e.IngestRange(ctx, from, head)
}

// DownloadRecentHistory ingests the configured window of blocks behind the head.
func (e *Explorer) DownloadRecentHistory(ctx context.Context) (RunSummary, error) {
	head, err := e.head(ctx)
	if err != nil {
		return RunSummary{}, err
	}

	from := uint64(0)
	if head > e.cfg.HistoryWindow {
		from = head - e.cfg.HistoryWindow
	}

	return e.IngestRange(ctx, from, head)
}

func (e *Explorer) WipeStore(ctx context.Context) (int64, error) {
	deleted, err := e.repo.DeleteAllBlocks(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}

	e.logs.Infow("store wiped", "deleted_blocks", deleted)
	return deleted, nil
}

// ReplaceBlock refetches a stored block from the node and overwrites it.
func (e *Explorer) ReplaceBlock(ctx context.Context, number uint64) (BlockRecord, error) {
	raw, err := e.ethService.BlockWithTransactions(ctx, number)
	if err != nil {
		return BlockRecord{}, fmt.Errorf("%w: %w", ErrTransientFetch, err)
	}
	if raw == nil {
		return BlockRecord{}, fmt.Errorf("block %d: %w", number, ErrBlockNotFound)
	}

	record := Normalize(raw, true)
	block, err := toRepositoryBlock(record)
	if err != nil {
		return BlockRecord{}, err
	}

	if err := e.repo.ReplaceBlock(ctx, number, block); err != nil {
		if errors.Is(err, repository.ErrBlockNotFound) {
			return BlockRecord{}, fmt.Errorf("block %d: %w", number, ErrBlockNotFound)
		}
		return BlockRecord{}, fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}

	return record, nil
}

func (e *Explorer) head(ctx context.Context) (uint64, error) {
	head, err := e.ethService.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrTransientFetch, err)
	}
	return head, nil
}

func (e *Explorer) beginIngestion() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ingesting {
		return false
	}
	e.ingesting = true
	return true
}

func (e *Explorer) endIngestion() {
	e.mu.Lock()
	e.ingesting = false
	e.mu.Unlock()
}
