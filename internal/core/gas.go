package core

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"
)

// GasPrice prices a gas unit and a plain ETH transfer in dollars using the
// node's suggested gas price and the on-chain USD/ETH feed.
func (e *Explorer) GasPrice(ctx context.Context) (GasPrice, error) {
	answer, err := e.ethService.LatestAnswer(ctx)
	if err != nil {
		return GasPrice{}, fmt.Errorf("%w: %w", ErrOracleCall, err)
	}
	if answer == nil || answer.Sign() < 0 {
		return GasPrice{}, fmt.Errorf("%w: oracle answer %v is not a price", ErrConversion, answer)
	}
	usdPerEth, overflow := uint256.FromBig(answer)
	if overflow {
		return GasPrice{}, fmt.Errorf("%w: oracle answer exceeds 256 bits", ErrConversion)
	}

	price, err := e.ethService.GasPrice(ctx)
	if err != nil {
		return GasPrice{}, fmt.Errorf("%w: %w", ErrTransientFetch, err)
	}
	if price == nil || price.Sign() < 0 {
		return GasPrice{}, fmt.Errorf("%w: gas price %v", ErrConversion, price)
	}
	weiPerGas, overflow := uint256.FromBig(price)
	if overflow {
		return GasPrice{}, fmt.Errorf("%w: gas price exceeds 256 bits", ErrConversion)
	}

	return EstimateGasPrice(weiPerGas, usdPerEth)
}

// EstimateGasPrice derives the gas price report from a wei-per-gas price and
// an 8-decimal USD/ETH price.
func EstimateGasPrice(weiPerGas, usdPerEth *uint256.Int) (GasPrice, error) {
	gwei, err := ParseUnits(FormatUnits(weiPerGas, GweiDecimals))
	if err != nil {
		return GasPrice{}, err
	}

	usdPerGas, err := UsdValue(weiPerGas, usdPerEth)
	if err != nil {
		return GasPrice{}, err
	}

	return GasPrice{
		Gwei:        gwei,
		UsdPerGas:   usdPerGas,
		TransferUSD: usdPerGas * float64(TransferGasUnits),
		GasUnits:    TransferGasUnits,
	}, nil
}
