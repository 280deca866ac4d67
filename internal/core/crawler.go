package core

import (
	"blockvault/internal/ethereum"
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultRetryAttempts = 3
	DefaultRetryDelay    = 10 * time.Millisecond
	DefaultProgressEvery = 100
)

var errPendingBlock error = errors.New("block has no number yet")

type CrawlerConfig struct {
	RetryAttempts int
	RetryDelay    time.Duration
	ProgressEvery uint64
}

// Crawler walks an inclusive block range in ascending order and stores every
// block that is not stored yet. Fetch failures are retried a bounded number
// of times, after which the block is reported as skipped.
type Crawler struct {
	logs       *zap.SugaredLogger
	repo       Repository
	ethService EthereumService
	observer   CrawlObserver
	cfg        CrawlerConfig
}

func NewCrawler(logger *zap.SugaredLogger, repo Repository, ethereumService EthereumService, observer CrawlObserver, cfg CrawlerConfig) *Crawler {
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = DefaultRetryAttempts
	}
	if cfg.RetryDelay < 0 {
		cfg.RetryDelay = 0
	}
	if cfg.ProgressEvery == 0 {
		cfg.ProgressEvery = DefaultProgressEvery
	}

	return &Crawler{
		logs:       logger,
		repo:       repo,
		ethService: ethereumService,
		observer:   observer,
		cfg:        cfg,
	}
}

// Crawl processes [from, to]. Store failures abort the run and are returned
// alongside the summary of the blocks processed so far.
func (c *Crawler) Crawl(ctx context.Context, from, to uint64) (RunSummary, error) {
	summary := newRunSummary(from, to)
	if from > to {
		return summary, nil
	}

	start := time.Now()
	c.logs.Infow("crawl started",
		"from", from,
		"to", to)

	for number := from; ; number++ {
		if err := ctx.Err(); err != nil {
			summary.Elapsed = time.Since(start)
			return summary, err
		}

		outcome, err := c.crawlBlock(ctx, number)
		if err != nil {
			summary.Elapsed = time.Since(start)
			c.logs.Errorw("crawl aborted",
				"block", number,
				"processed", summary.Processed(),
				"error", err)
			return summary, err
		}

		summary.record(outcome)
		if c.observer != nil {
			c.observer.OnBlock(outcome)
		}

		processed := uint64(summary.Processed())
		if processed%c.cfg.ProgressEvery == 0 {
			c.logProgress(number, processed, start)
		}

		// compared before incrementing so a range ending at the max number terminates
		if number == to {
			break
		}
	}

	summary.Elapsed = time.Since(start)
	if c.observer != nil {
		c.observer.OnRunFinished(summary)
	}

	c.logs.Infow("crawl finished",
		"from", from,
		"to", to,
		"stored", len(summary.Stored),
		"existing", len(summary.Existing),
		"skipped", len(summary.Skipped),
		"elapsed", summary.Elapsed)

	return summary, nil
}

func (c *Crawler) crawlBlock(ctx context.Context, number uint64) (BlockOutcome, error) {
	exists, err := c.repo.BlockExists(ctx, number)
	if err != nil {
		return BlockOutcome{}, fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}
	if exists {
		return BlockOutcome{Number: number, Status: OutcomeExisting}, nil
	}

	var lastErr error
	for attempt := 1; attempt <= c.cfg.RetryAttempts; attempt++ {
		raw, err := c.ethService.BlockWithTransactions(ctx, number)
		if err == nil {
			return c.storeBlock(ctx, number, attempt, raw)
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			return BlockOutcome{}, ctxErr
		}

		lastErr = fmt.Errorf("%w: %w", ErrTransientFetch, err)
		c.logs.Warnw("fetching block failed",
			"block", number,
			"attempt", attempt,
			"error", err)

		if attempt < c.cfg.RetryAttempts {
			if err := wait(ctx, c.cfg.RetryDelay); err != nil {
				return BlockOutcome{}, err
			}
		}
	}

	c.logs.Warnw("block skipped after exhausting retries",
		"block", number,
		"attempts", c.cfg.RetryAttempts,
		"error", lastErr)

	return BlockOutcome{
		Number:   number,
		Status:   OutcomeSkipped,
		Attempts: c.cfg.RetryAttempts,
		Reason:   lastErr.Error(),
	}, nil
}

func (c *Crawler) storeBlock(ctx context.Context, number uint64, attempt int, raw *ethereum.Block) (BlockOutcome, error) {
	skipped := BlockOutcome{Number: number, Status: OutcomeSkipped, Attempts: attempt}

	// the node answers null for blocks it has not produced yet
	if raw == nil {
		skipped.Reason = ErrBlockNotFound.Error()
		c.logs.Warnw("block not available on node", "block", number)
		return skipped, nil
	}

	block, err := toRepositoryBlock(Normalize(raw, true))
	if err != nil {
		skipped.Reason = errPendingBlock.Error()
		c.logs.Warnw("block skipped", "block", number, "error", err)
		return skipped, nil
	}

	if err := c.repo.SaveBlock(ctx, block); err != nil {
		return BlockOutcome{}, fmt.Errorf("%w: %w", ErrStoreQuery, err)
	}

	return BlockOutcome{Number: number, Status: OutcomeStored, Attempts: attempt}, nil
}

func (c *Crawler) logProgress(number, processed uint64, start time.Time) {
	elapsed := time.Since(start)
	rate := 0.0
	if elapsed > 0 {
		rate = float64(processed) / elapsed.Seconds()
	}

	c.logs.Infow("crawl progress",
		"block", number,
		"processed", processed,
		"blocks_per_second", rate)
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
