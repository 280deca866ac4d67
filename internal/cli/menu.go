package cli

import (
	"blockvault/internal/core"
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

const menuText = `
Menu
1) Gas price
2) Get the latest blocks
3) Get the latest transactions
4) Download recent history to the store
5) Print stored history
6) Clear the store
7) Run the web server
0) Quit
Please enter your choice
`

const separator = "=================================================="

// Menu is the interactive terminal front end. Errors of a single action are
// printed and the menu continues.
type Menu struct {
	logs    *zap.SugaredLogger
	service MenuService
	in      *bufio.Scanner
	out     io.Writer
	serve   func(ctx context.Context) error
}

func NewMenu(logger *zap.SugaredLogger, service MenuService, in io.Reader, out io.Writer, serve func(ctx context.Context) error) *Menu {
	return &Menu{
		logs:    logger,
		service: service,
		in:      bufio.NewScanner(in),
		out:     out,
		serve:   serve,
	}
}

// Run loops until the user quits, input ends or ctx is cancelled.
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(m.out, menuText)
		if !m.in.Scan() {
			return m.in.Err()
		}

		choice := strings.TrimSpace(m.in.Text())
		fmt.Fprintln(m.out)

		if choice == "0" {
			fmt.Fprintln(m.out, "Bye")
			return nil
		}

		if err := m.dispatch(ctx, choice); err != nil {
			m.logs.Errorw("menu action failed",
				"choice", choice,
				"error", err)
			fmt.Fprintf(m.out, "Error: %s\n", err)
		}
	}
}

func (m *Menu) dispatch(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		return m.gasPrice(ctx)
	case "2":
		return m.latestBlocks(ctx)
	case "3":
		return m.latestTransactions(ctx)
	case "4":
		return m.downloadHistory(ctx)
	case "5":
		return m.storedHistory(ctx)
	case "6":
		return m.wipe(ctx)
	case "7":
		return m.serve(ctx)
	default:
		fmt.Fprintln(m.out, "Invalid choice, please enter a number between 0 and 7")
		return nil
	}
}

func (m *Menu) gasPrice(ctx context.Context) error {
	price, err := m.service.GasPrice(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, `
Gas price
---------------
%10.2f gwei
%10.8f usd

Total gas estimated
---------------
%5.2f usd (for %d unit)
`, price.Gwei, price.UsdPerGas, price.TransferUSD, price.GasUnits)
	return nil
}

func (m *Menu) latestBlocks(ctx context.Context) error {
	blocks, err := m.service.LatestBlocks(ctx)
	if err != nil {
		return err
	}

	for _, block := range blocks {
		fmt.Fprintln(m.out, separator)
		fmt.Fprintf(m.out, "Block %s\n", optional(uint64String(block.Number)))
		fmt.Fprintf(m.out, "Block time: %s\n", decOrZero(block.Timestamp))
		fmt.Fprintf(m.out, "Block hash: %s\n", optional(block.Hash))
		fmt.Fprintf(m.out, "Block miner: %s\n", optional(block.Miner))
		fmt.Fprintf(m.out, "Transactions: %d\n", block.TransactionCount)
	}
	fmt.Fprintln(m.out, separator)
	return nil
}

func (m *Menu) latestTransactions(ctx context.Context) error {
	txs, err := m.service.LatestTransactions(ctx)
	if err != nil {
		return err
	}
	if len(txs) == 0 {
		fmt.Fprintln(m.out, "No transactions")
		return nil
	}

	for i, tx := range txs {
		fmt.Fprintln(m.out, separator)
		fmt.Fprintf(m.out, "Transaction hash: %s\n", tx.Hash)
		fmt.Fprintf(m.out, "index: %d\n", i)
		fmt.Fprintf(m.out, "from: %s\n", tx.From)
		fmt.Fprintf(m.out, "to: %s\n", optional(tx.To))
		fmt.Fprintf(m.out, "value: %s ETH\n", units(tx.Value, core.EtherDecimals))
		if tx.GasPrice != nil {
			fmt.Fprintf(m.out, "gas price: %s Gwei\n", core.FormatUnits(tx.GasPrice, core.GweiDecimals))
		}
		fmt.Fprintf(m.out, "gas: %s unit\n", decOrZero(tx.Gas))
	}
	fmt.Fprintln(m.out, separator)
	return nil
}

func (m *Menu) downloadHistory(ctx context.Context) error {
	summary, err := m.service.DownloadRecentHistory(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "Blocks %d to %d: %d stored, %d already stored, %d skipped in %s\n",
		summary.From, summary.To,
		len(summary.Stored), len(summary.Existing), len(summary.Skipped),
		summary.Elapsed)
	for _, skipped := range summary.Skipped {
		fmt.Fprintf(m.out, "  block %d skipped after %d attempt(s): %s\n", skipped.Number, skipped.Attempts, skipped.Reason)
	}
	return nil
}

func (m *Menu) storedHistory(ctx context.Context) error {
	blocks, err := m.service.StoredBlocks(ctx)
	if err != nil {
		return err
	}
	if len(blocks) == 0 {
		fmt.Fprintln(m.out, "The store is empty")
		return nil
	}

	encoded, err := json.MarshalIndent(blocks, "", "  ")
	if err != nil {
		return fmt.Errorf("encode stored blocks: %w", err)
	}
	fmt.Fprintln(m.out, string(encoded))
	return nil
}

func (m *Menu) wipe(ctx context.Context) error {
	deleted, err := m.service.WipeStore(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(m.out, "%d blocks deleted\n", deleted)
	return nil
}

func optional(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func uint64String(v *uint64) *string {
	if v == nil {
		return nil
	}
	s := fmt.Sprintf("%d", *v)
	return &s
}

func units(v *uint256.Int, decimals int32) string {
	if v == nil {
		v = new(uint256.Int)
	}
	return core.FormatUnits(v, decimals)
}

func decOrZero(v *uint256.Int) string {
	if v == nil {
		return "0"
	}
	return v.Dec()
}
