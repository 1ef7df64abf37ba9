package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/fekuna/tortilleria-pos/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaleTimeJSON(t *testing.T) {
	st := model.NewSaleTime(time.Date(2024, 3, 15, 14, 30, 5, 999_999_999, time.Local))

	data, err := json.Marshal(st)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15 14:30:05"`, string(data))

	var back model.SaleTime
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, st, back)
	assert.Equal(t, "2024-03-15", back.Day())
}

func TestSaleTimeUnmarshal_Invalid(t *testing.T) {
	var st model.SaleTime
	assert.Error(t, json.Unmarshal([]byte(`"15/03/2024"`), &st))
}

func TestStockStatus(t *testing.T) {
	cases := []struct {
		stock float64
		want  model.StockStatus
	}{
		{0, model.StockDepleted},
		{0.5, model.StockLow},
		{5, model.StockLow},
		{5.1, model.StockAvailable},
		{50, model.StockAvailable},
	}
	for _, tc := range cases {
		p := model.Product{Stock: tc.stock}
		assert.Equal(t, tc.want, p.StockStatus(), "stock %.1f", tc.stock)
	}
}

func TestRoleValid(t *testing.T) {
	assert.True(t, model.RoleAdmin.Valid())
	assert.True(t, model.RoleEmployee.Valid())
	assert.False(t, model.Role("gerente").Valid())
	assert.False(t, model.Role("").Valid())
}
