package services

import (
	"testing"
	"time"

	"github.com/jsersan/tatooback/models"
)

func TestOrderCreate(t *testing.T) {
	db := freshDB()
	svc := &OrderService{DB: db}

	user := seedUser(t, db, "ana")
	root := seedRoot(t, db, "Piercings")
	barbell := seedProduct(t, db, "Steel barbell", root.ID)
	ring := seedProduct(t, db, "Gold ring", root.ID)

	order, err := svc.Create(OrderInput{
		UserID: user.ID,
		Date:   "2024-06-01",
		Total:  74.97,
		Lines: []OrderLineInput{
			{ProductID: barbell.ID, Color: "silver", Quantity: 1},
			{ProductID: ring.ID, Color: "gold", Quantity: 2},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(order.Lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(order.Lines))
	}
	for _, line := range order.Lines {
		if line.OrderID != order.ID {
			t.Errorf("expected line to reference order %d, got %d", order.ID, line.OrderID)
		}
	}
}

func TestOrderCreateDefaultsDate(t *testing.T) {
	db := freshDB()
	svc := &OrderService{DB: db}

	user := seedUser(t, db, "ana")
	root := seedRoot(t, db, "Piercings")
	barbell := seedProduct(t, db, "Steel barbell", root.ID)

	order, err := svc.Create(OrderInput{
		UserID: user.ID,
		Total:  24.99,
		Lines:  []OrderLineInput{{ProductID: barbell.ID, Color: "silver", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.Date != time.Now().Format(models.DateLayout) {
		t.Errorf("expected date to default to today, got %q", order.Date)
	}
}

func TestOrderCreateValidation(t *testing.T) {
	db := freshDB()
	svc := &OrderService{DB: db}

	user := seedUser(t, db, "ana")
	root := seedRoot(t, db, "Piercings")
	barbell := seedProduct(t, db, "Steel barbell", root.ID)

	line := OrderLineInput{ProductID: barbell.ID, Color: "silver", Quantity: 1}

	cases := []struct {
		name  string
		input OrderInput
	}{
		{"no lines", OrderInput{UserID: user.ID, Total: 10}},
		{"negative total", OrderInput{UserID: user.ID, Total: -1, Lines: []OrderLineInput{line}}},
		{"bad date", OrderInput{UserID: user.ID, Date: "01/06/2024", Total: 10, Lines: []OrderLineInput{line}}},
		{"zero quantity", OrderInput{UserID: user.ID, Total: 10, Lines: []OrderLineInput{{ProductID: barbell.ID, Color: "silver"}}}},
		{"missing color", OrderInput{UserID: user.ID, Total: 10, Lines: []OrderLineInput{{ProductID: barbell.ID, Quantity: 1}}}},
		{"missing product", OrderInput{UserID: user.ID, Total: 10, Lines: []OrderLineInput{{Color: "silver", Quantity: 1}}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Create(tc.input); KindOf(err) != KindValidation {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no orders persisted after rejected inputs, got %d", count)
	}
}

// Dropping the order_lines table between validation and the line insert
// forces a mid-transaction failure: the already inserted order row must be
// rolled back.
func TestOrderCreateRollsBackOnLineFailure(t *testing.T) {
	db := freshDB()
	svc := &OrderService{DB: db}

	user := seedUser(t, db, "ana")
	root := seedRoot(t, db, "Piercings")
	barbell := seedProduct(t, db, "Steel barbell", root.ID)

	if err := db.Migrator().DropTable("order_lines"); err != nil {
		t.Fatalf("failed to drop order_lines: %v", err)
	}
	defer func() {
		if err := db.Migrator().CreateTable(&models.OrderLine{}); err != nil {
			t.Fatalf("failed to restore order_lines: %v", err)
		}
	}()

	_, err := svc.Create(OrderInput{
		UserID: user.ID,
		Date:   "2024-06-01",
		Total:  24.99,
		Lines:  []OrderLineInput{{ProductID: barbell.ID, Color: "silver", Quantity: 1}},
	})
	if KindOf(err) != KindStorage {
		t.Fatalf("expected storage error, got %v", err)
	}

	var count int64
	db.Model(&models.Order{}).Count(&count)
	if count != 0 {
		t.Errorf("expected order row rolled back, got %d rows", count)
	}
}

func TestOrderGet(t *testing.T) {
	db := freshDB()
	svc := &OrderService{DB: db}

	user := seedUser(t, db, "ana")
	root := seedRoot(t, db, "Piercings")
	barbell := seedProduct(t, db, "Steel barbell", root.ID)

	created, err := svc.Create(OrderInput{
		UserID: user.ID,
		Date:   "2024-06-01",
		Total:  24.99,
		Lines:  []OrderLineInput{{ProductID: barbell.ID, Color: "silver", Quantity: 1}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	order, err := svc.Get(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if order.User == nil || order.User.Username != "ana" {
		t.Error("expected owning user to be loaded")
	}
	if len(order.Lines) != 1 || order.Lines[0].Product == nil {
		t.Fatal("expected line with product loaded")
	}
	if order.Lines[0].Product.Name != "Steel barbell" {
		t.Errorf("expected product name on line, got %q", order.Lines[0].Product.Name)
	}
}

func TestOrderGetNotFound(t *testing.T) {
	db := freshDB()
	svc := &OrderService{DB: db}

	if _, err := svc.Get(9999); KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestOrderListByUserSorted(t *testing.T) {
	db := freshDB()
	svc := &OrderService{DB: db}

	user := seedUser(t, db, "ana")
	other := seedUser(t, db, "juan")
	root := seedRoot(t, db, "Piercings")
	barbell := seedProduct(t, db, "Steel barbell", root.ID)

	line := []OrderLineInput{{ProductID: barbell.ID, Color: "silver", Quantity: 1}}
	for _, date := range []string{"2024-01-15", "2024-06-01", "2024-03-10"} {
		if _, err := svc.Create(OrderInput{UserID: user.ID, Date: date, Total: 24.99, Lines: line}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if _, err := svc.Create(OrderInput{UserID: other.ID, Date: "2024-12-24", Total: 24.99, Lines: line}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, err := svc.ListByUser(user.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 3 {
		t.Fatalf("expected 3 orders for user, got %d", len(orders))
	}
	want := []string{"2024-06-01", "2024-03-10", "2024-01-15"}
	for i, order := range orders {
		if order.Date != want[i] {
			t.Errorf("position %d: expected date %s, got %s", i, want[i], order.Date)
		}
	}
}

func TestOrderListByUnknownUser(t *testing.T) {
	db := freshDB()
	svc := &OrderService{DB: db}

	if _, err := svc.ListByUser(9999); KindOf(err) != KindNotFound {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
