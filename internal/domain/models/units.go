package models

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of decimals of the native currency and of ARCL
const EtherDecimals = 18

// FormatUnits renders an integer amount with the given number of decimals,
// trimming trailing zeros ("1.5", "1000000000").
func FormatUnits(amount *big.Int, decimals int32) string {
	if amount == nil {
		return "0"
	}
	return decimal.NewFromBigInt(amount, -decimals).String()
}

// FormatEther renders a wei amount in ether
func FormatEther(wei *big.Int) string {
	return FormatUnits(wei, EtherDecimals)
}

// FormatBps renders basis points as a percentage string ("2.5%")
func FormatBps(bps *big.Int) string {
	return FormatUnits(bps, 2) + "%"
}
