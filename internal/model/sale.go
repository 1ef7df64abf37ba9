package model

import (
	"fmt"
	"strings"
	"time"
)

// Labels used when no customer identity exists.
const (
	WalkInCustomer  = "Cliente Mostrador"
	SelfServiceUser = "Cliente (Autoservicio)"
)

const (
	saleTimeLayout = "2006-01-02 15:04:05"
	saleDateLayout = "2006-01-02"
)

// SaleTime serializes with second precision in the ledger's historical
// format ("YYYY-MM-DD HH:MM:SS", local time).
type SaleTime struct {
	time.Time
}

func NewSaleTime(t time.Time) SaleTime {
	return SaleTime{t.Truncate(time.Second)}
}

func (t SaleTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Format(saleTimeLayout) + `"`), nil
}

func (t *SaleTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := time.ParseInLocation(saleTimeLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("parse sale time %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Day returns the date component, the grouping key for daily reports.
func (t SaleTime) Day() string {
	return t.Format(saleDateLayout)
}

// Sale is an immutable receipt of a committed transaction. Products holds a
// copy of the cart's key -> quantity mapping captured at commit time; Total
// is the denormalized sum of quantity x unit price at commit time.
type Sale struct {
	Date     SaleTime           `json:"fecha"`
	Customer string             `json:"cliente"`
	Products map[string]float64 `json:"productos"`
	Total    float64            `json:"total"`
	Seller   string             `json:"vendedor"`
}
