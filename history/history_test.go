package history

import (
	"github.com/xyths/sfex"
	"testing"
	"time"
)

func TestConvertOrder(t *testing.T) {
	raw := sfex.Order{
		OrderID:    31415,
		Symbol:     "BTCUSDT",
		Side:       sfex.SideBuy,
		Type:       sfex.OrderTypeLimit,
		Price:      "100.0",
		Amount:     "1.5",
		DealAmount: "0.5",
		Status:     2,
		CreatedAt:  1620000000,
	}
	o := convertOrder("main", raw)
	if o.OrderID != 31415 {
		t.Errorf("orderId = %d, want 31415", o.OrderID)
	}
	if o.Label != "main" {
		t.Errorf("label = %s, want main", o.Label)
	}
	if o.Side != sfex.SideBuy {
		t.Errorf("side = %d, want %d", o.Side, sfex.SideBuy)
	}
	if o.Price != 100.0 {
		t.Errorf("price = %f, want 100.0", o.Price)
	}
	if o.Amount != 1.5 {
		t.Errorf("amount = %f, want 1.5", o.Amount)
	}
	if o.DealAmount != 0.5 {
		t.Errorf("dealAmount = %f, want 0.5", o.DealAmount)
	}
	if !o.Time.Equal(time.Unix(1620000000, 0)) {
		t.Errorf("time = %s, want %s", o.Time, time.Unix(1620000000, 0))
	}
	if o.TimeUnix != 1620000000 {
		t.Errorf("timeUnix = %d, want 1620000000", o.TimeUnix)
	}
}
