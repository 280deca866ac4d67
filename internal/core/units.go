package core

import (
	"fmt"
	"strconv"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

const (
	EtherDecimals    = 18
	GweiDecimals     = 9
	UsdPriceDecimals = 8
)

var weiPerEther = new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(EtherDecimals))

// FormatUnits renders amount as a decimal string with exactly decimals fractional digits.
func FormatUnits(amount *uint256.Int, decimals int32) string {
	return decimal.NewFromBigInt(amount.ToBig(), -decimals).StringFixed(decimals)
}

func ParseUnits(formatted string) (float64, error) {
	value, err := strconv.ParseFloat(formatted, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: parse %q: %w", ErrConversion, formatted, err)
	}
	return value, nil
}

// UsdValue converts a wei amount to dollars given an 8-decimal USD/ETH price.
// It multiplies before dividing so small amounts keep their precision.
func UsdValue(amount, usdPerEth *uint256.Int) (float64, error) {
	product, overflow := new(uint256.Int).MulOverflow(amount, usdPerEth)
	if overflow {
		return 0, fmt.Errorf("%w: %s * %s overflows 256 bits", ErrConversion, amount.Dec(), usdPerEth.Dec())
	}

	usd := new(uint256.Int).Div(product, weiPerEther)
	return ParseUnits(FormatUnits(usd, UsdPriceDecimals))
}
