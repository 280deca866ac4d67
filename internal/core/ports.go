package core

import (
	"blockvault/internal/ethereum"
	"blockvault/internal/repository"
	tokenIssuer "blockvault/pkg/jwt"
	"context"
	"math/big"

	"github.com/golang-jwt/jwt"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Repository . Repository
type Repository interface {
	BlockExists(ctx context.Context, number uint64) (bool, error)
	SaveBlock(ctx context.Context, block repository.Block) error
	GetBlock(ctx context.Context, number uint64) (repository.Block, error)
	GetAllBlocks(ctx context.Context) ([]repository.Block, error)
	DeleteAllBlocks(ctx context.Context) (int64, error)
	ReplaceBlock(ctx context.Context, number uint64, block repository.Block) error
}

//counterfeiter:generate -o fake -fake-name JWTIssuer . JWTIssuer
type JWTIssuer interface {
	Generate(data tokenIssuer.TokenInfo) *jwt.Token
	Sign(token *jwt.Token) (string, error)
	Validate(token string) (jwt.MapClaims, error)
}

//counterfeiter:generate -o fake -fake-name EthereumService . EthereumService
type EthereumService interface {
	BlockNumber(ctx context.Context) (uint64, error)
	BlockByNumber(ctx context.Context, number uint64) (*ethereum.Block, error)
	BlockWithTransactions(ctx context.Context, number uint64) (*ethereum.Block, error)
	GasPrice(ctx context.Context) (*big.Int, error)
	LatestAnswer(ctx context.Context) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name CrawlObserver . CrawlObserver
type CrawlObserver interface {
	OnBlock(outcome BlockOutcome)
	OnRunFinished(summary RunSummary)
}
