package commands

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"flatkit/internal/application"
	"flatkit/internal/domain"
)

func sampleInventory() *domain.Inventory {
	inv := domain.NewInventory()
	inv.Customer("globex")["Z-9"] = 1
	inv.Customer("acme")["B-2"] = 0
	inv.Customer("acme")["A-1"] = 7
	return inv
}

func TestAddSKUCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		customer string
		sku      string
		stock    int
		wantErr  bool
		errMsg   string
	}{
		{
			name:     "valid add",
			customer: "acme",
			sku:      "A-1",
			stock:    3,
			wantErr:  false,
		},
		{
			name:     "zero stock",
			customer: "acme",
			sku:      "A-1",
			stock:    0,
			wantErr:  false,
		},
		{
			name:     "negative stock",
			customer: "acme",
			sku:      "A-1",
			stock:    -1,
			wantErr:  true,
			errMsg:   "stock must not be negative",
		},
		{
			name:     "empty customer is a valid name",
			customer: "",
			sku:      "A-1",
			stock:    1,
			wantErr:  false,
		},
		{
			name:     "blank SKU is a valid name",
			customer: "acme",
			sku:      "  ",
			stock:    1,
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &AddSKUCommand{
				Customer: tt.customer,
				SKU:      tt.sku,
				Stock:    tt.stock,
			}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestListCustomersCommand_Sorted(t *testing.T) {
	store := seededStore(sampleInventory())

	names, err := NewListCustomersCommand(store).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"acme", "globex"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestListInventoryCommand(t *testing.T) {
	store := seededStore(sampleInventory())
	before := string(store.data)

	t.Run("all customers sorted by customer then SKU", func(t *testing.T) {
		got, err := NewListInventoryCommand(store, "").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []domain.CustomerStock{
			{Customer: "acme", SKUs: []domain.StockLine{
				{Customer: "acme", SKU: "A-1", Stock: 7},
				{Customer: "acme", SKU: "B-2", Stock: 0},
			}},
			{Customer: "globex", SKUs: []domain.StockLine{
				{Customer: "globex", SKU: "Z-9", Stock: 1},
			}},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("expected %+v, got %+v", want, got)
		}
	})

	t.Run("unknown customer yields empty listing", func(t *testing.T) {
		got, err := NewListInventoryCommand(store, "initech").Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Customer != "initech" || len(got[0].SKUs) != 0 {
			t.Errorf("expected empty initech listing, got %+v", got)
		}
	})

	if store.saves != 0 {
		t.Errorf("listing must not save, got %d saves", store.saves)
	}
	if string(store.data) != before {
		t.Error("listing modified the stored inventory")
	}
}

func TestAddSKUCommand_Execute(t *testing.T) {
	store := &memStore{}

	result, err := NewAddSKUCommand(store, "acme", "A-1", 4).Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Line.Stock != 4 {
		t.Errorf("expected stock 4, got %d", result.Line.Stock)
	}

	inv, _ := store.Load(context.Background())
	if stock, ok := inv.Stock("acme", "A-1"); !ok || stock != 4 {
		t.Errorf("expected stored stock 4, got %d (exists=%v)", stock, ok)
	}
}

func TestSKUCommands_EmptyNames(t *testing.T) {
	store := &memStore{}
	ctx := context.Background()

	if _, err := NewAddSKUCommand(store, "", "", 2).Execute(ctx); err != nil {
		t.Fatalf("add with empty names failed: %v", err)
	}
	if _, err := NewSetStockCommand(store, "", "", 5).Execute(ctx); err != nil {
		t.Fatalf("set-stock with empty names failed: %v", err)
	}

	inv, _ := store.Load(ctx)
	if stock, ok := inv.Stock("", ""); !ok || stock != 5 {
		t.Errorf("expected stock 5 under empty names, got %d (exists=%v)", stock, ok)
	}

	if _, err := NewRemoveSKUCommand(store, "", "").Execute(ctx); err != nil {
		t.Fatalf("remove with empty names failed: %v", err)
	}
}

func TestAddSKUCommand_DuplicateKeepsStock(t *testing.T) {
	store := seededStore(sampleInventory())
	before := string(store.data)

	_, err := NewAddSKUCommand(store, "acme", "A-1", 99).Execute(context.Background())
	if !errors.Is(err, application.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if store.saves != 0 || string(store.data) != before {
		t.Error("failed add must not modify the stored inventory")
	}

	inv, _ := store.Load(context.Background())
	if stock, _ := inv.Stock("acme", "A-1"); stock != 7 {
		t.Errorf("expected stock to stay 7, got %d", stock)
	}
}

func TestAddThenRemove_RestoresSKUSet(t *testing.T) {
	store := seededStore(sampleInventory())
	ctx := context.Background()

	inv, _ := store.Load(ctx)
	before := inv.SKUSet("acme")

	if _, err := NewAddSKUCommand(store, "acme", "C-3", 2).Execute(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := NewRemoveSKUCommand(store, "acme", "C-3").Execute(ctx); err != nil {
		t.Fatalf("remove failed: %v", err)
	}

	inv, _ = store.Load(ctx)
	if after := inv.SKUSet("acme"); !reflect.DeepEqual(before, after) {
		t.Errorf("expected SKU set %v, got %v", before, after)
	}
}

func TestRemoveSKUCommand_Missing(t *testing.T) {
	store := seededStore(sampleInventory())

	_, err := NewRemoveSKUCommand(store, "acme", "nope").Execute(context.Background())
	if !errors.Is(err, application.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if store.saves != 0 {
		t.Error("failed remove must not save")
	}
}

func TestSetStockCommand(t *testing.T) {
	tests := []struct {
		name      string
		customer  string
		sku       string
		stock     int
		wantErr   error
		wantStock int
	}{
		{
			name:      "updates existing SKU",
			customer:  "acme",
			sku:       "B-2",
			stock:     12,
			wantStock: 12,
		},
		{
			name:      "zero is allowed",
			customer:  "acme",
			sku:       "A-1",
			stock:     0,
			wantStock: 0,
		},
		{
			name:     "negative stock rejected",
			customer: "acme",
			sku:      "A-1",
			stock:    -5,
			wantErr:  application.ErrInvalidStock,
		},
		{
			name:     "missing SKU rejected",
			customer: "acme",
			sku:      "nope",
			stock:    1,
			wantErr:  application.ErrNotFound,
		},
		{
			name:     "unknown customer rejected",
			customer: "initech",
			sku:      "A-1",
			stock:    1,
			wantErr:  application.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore(sampleInventory())
			ctx := context.Background()

			_, err := NewSetStockCommand(store, tt.customer, tt.sku, tt.stock).Execute(ctx)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if store.saves != 0 {
					t.Error("failed set-stock must not save")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			inv, _ := store.Load(ctx)
			if stock, _ := inv.Stock(tt.customer, tt.sku); stock != tt.wantStock {
				t.Errorf("expected stock %d, got %d", tt.wantStock, stock)
			}
		})
	}
}

func TestMutations_NeverNegative(t *testing.T) {
	ctx := context.Background()
	store := &memStore{}

	for _, stock := range []int{-3, -1, 0, 2} {
		_, _ = NewAddSKUCommand(store, "acme", "S", stock).Execute(ctx)
		_, _ = NewSetStockCommand(store, "acme", "S", stock).Execute(ctx)
	}

	inv, _ := store.Load(ctx)
	for _, cs := range inv.Snapshot() {
		for _, line := range cs.SKUs {
			if line.Stock < 0 {
				t.Errorf("negative stock stored for %s/%s: %d", line.Customer, line.SKU, line.Stock)
			}
		}
	}
}

func TestAddSKUCommand_SaveError(t *testing.T) {
	store := &memStore{saveErr: errBoom}

	_, err := NewAddSKUCommand(store, "acme", "A-1", 1).Execute(context.Background())
	if !errors.Is(err, errBoom) {
		t.Fatalf("expected save error, got %v", err)
	}
}
