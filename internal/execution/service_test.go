package execution

import (
	"testing"

	"main/internal/bond"
	"main/internal/fabric"
	"main/internal/model"
	"main/internal/model/enum"
)

type captureOrders struct {
	fabric.BaseListener[model.ExecutionOrder]
	orders *[]model.ExecutionOrder
}

func (c *captureOrders) ProcessAdd(o model.ExecutionOrder) {
	*c.orders = append(*c.orders, o)
}

func TestExecuteOrderStoresAndFansOut(t *testing.T) {
	svc := NewService()
	var orders []model.ExecutionOrder
	svc.AddListener(&captureOrders{orders: &orders})

	order := model.ExecutionOrder{
		Product: bond.NewRegistry().All()[0],
		OrderID: "O1",
		Side:    enum.SideBid,
		Type:    enum.OrderTypeMarket,
	}
	svc.ExecuteOrder(order)

	if len(orders) != 1 || orders[0].OrderID != "O1" {
		t.Fatalf("fan-out: got %+v", orders)
	}
	if _, ok := svc.Lookup("O1"); !ok {
		t.Fatalf("order not stored")
	}
}

func TestOnMessageUpsertsSilently(t *testing.T) {
	svc := NewService()
	var orders []model.ExecutionOrder
	svc.AddListener(&captureOrders{orders: &orders})

	svc.OnMessage(model.ExecutionOrder{OrderID: "O1"})

	if len(orders) != 0 {
		t.Fatalf("upsert notified listeners: %+v", orders)
	}
	if _, ok := svc.Lookup("O1"); !ok {
		t.Fatalf("order not stored")
	}
}
