package core

import (
	"time"

	"github.com/holiman/uint256"
)

// TransactionRecord is the stored and served shape of a transaction.
type TransactionRecord struct {
	Hash     string       `json:"hash"`
	From     string       `json:"from"`
	To       *string      `json:"to"`
	Value    *uint256.Int `json:"value"`
	GasPrice *uint256.Int `json:"gas_price"`
	Gas      *uint256.Int `json:"gas"`
}

// BlockRecord is the normalized block. Number, Hash and Miner are absent for pending blocks.
type BlockRecord struct {
	Number           *uint64             `json:"number"`
	Hash             *string             `json:"hash"`
	Miner            *string             `json:"miner"`
	Timestamp        *uint256.Int        `json:"timestamp"`
	TransactionCount uint64              `json:"transaction_count"`
	Transactions     []TransactionRecord `json:"transactions"`
}

type AuthMessage struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type OutcomeStatus string

const (
	OutcomeStored   OutcomeStatus = "stored"
	OutcomeExisting OutcomeStatus = "existing"
	OutcomeSkipped  OutcomeStatus = "skipped"
)

// BlockOutcome is what happened to a single block number during a crawl.
type BlockOutcome struct {
	Number   uint64        `json:"number"`
	Status   OutcomeStatus `json:"status"`
	Attempts int           `json:"attempts"`
	Reason   string        `json:"reason,omitempty"`
}

// RunSummary reports every block number of a crawl range exactly once.
type RunSummary struct {
	From     uint64         `json:"from"`
	To       uint64         `json:"to"`
	Stored   []uint64       `json:"stored"`
	Existing []uint64       `json:"existing"`
	Skipped  []BlockOutcome `json:"skipped"`
	Elapsed  time.Duration  `json:"elapsed"`
}

func newRunSummary(from, to uint64) RunSummary {
	return RunSummary{
		From:     from,
		To:       to,
		Stored:   []uint64{},
		Existing: []uint64{},
		Skipped:  []BlockOutcome{},
	}
}

func (s *RunSummary) record(outcome BlockOutcome) {
	switch outcome.Status {
	case OutcomeStored:
		s.Stored = append(s.Stored, outcome.Number)
	case OutcomeExisting:
		s.Existing = append(s.Existing, outcome.Number)
	default:
		s.Skipped = append(s.Skipped, outcome)
	}
}

func (s RunSummary) Processed() int {
	return len(s.Stored) + len(s.Existing) + len(s.Skipped)
}

// Complete reports whether no block of the range was skipped.
func (s RunSummary) Complete() bool {
	return len(s.Skipped) == 0
}

const TransferGasUnits uint64 = 21000

type GasPrice struct {
	Gwei        float64 `json:"gwei"`
	UsdPerGas   float64 `json:"usd_per_gas"`
	TransferUSD float64 `json:"transfer_usd"`
	GasUnits    uint64  `json:"gas_units"`
}
