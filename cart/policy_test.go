package cart

import (
	"testing"

	"github.com/AnasFahiem/RA-Store-sub000/models"
)

func intPtr(v int) *int { return &v }

func item(productID int, variant string, bundleID *int, qty int, price float64) models.CartItem {
	return models.CartItem{
		ProductID: productID,
		Variant:   variant,
		BundleID:  bundleID,
		Quantity:  qty,
		Price:     price,
	}
}

func keySet(items []models.CartItem) map[Key]int {
	set := make(map[Key]int, len(items))
	for _, it := range items {
		set[ItemKey(it)] = it.Quantity
	}
	return set
}

func TestItemKey(t *testing.T) {
	standalone := item(1, "M", nil, 1, 10)
	bundled := item(1, "M", intPtr(7), 1, 10)
	if ItemKey(standalone) == ItemKey(bundled) {
		t.Fatal("standalone and bundled rows of the same product must not share a key")
	}
	if ItemKey(standalone) != (Key{ProductID: 1, Variant: "M"}) {
		t.Fatalf("unexpected key: %+v", ItemKey(standalone))
	}
}

func TestMerge(t *testing.T) {
	t.Run("overlapping keys sum quantities", func(t *testing.T) {
		local := []models.CartItem{item(1, "", nil, 2, 10)}
		server := []models.CartItem{item(1, "", nil, 3, 10)}
		merged := Merge(local, server)
		if len(merged) != 1 || merged[0].Quantity != 5 {
			t.Fatalf("expected one row with quantity 5, got %+v", merged)
		}
	})

	t.Run("unique rows pass through unchanged", func(t *testing.T) {
		local := []models.CartItem{item(1, "", nil, 2, 10)}
		server := []models.CartItem{item(2, "", nil, 1, 15)}
		merged := Merge(local, server)
		if len(merged) != 2 {
			t.Fatalf("expected two rows, got %+v", merged)
		}
	})

	t.Run("variant and bundle distinguish rows", func(t *testing.T) {
		local := []models.CartItem{
			item(1, "M", nil, 1, 10),
			item(1, "L", nil, 1, 10),
			item(1, "M", intPtr(7), 1, 10),
		}
		server := []models.CartItem{item(1, "M", nil, 4, 10)}
		merged := Merge(local, server)
		if len(merged) != 3 {
			t.Fatalf("expected three distinct rows, got %d: %+v", len(merged), merged)
		}
		quantities := keySet(merged)
		if quantities[Key{ProductID: 1, Variant: "M"}] != 5 {
			t.Fatalf("expected M standalone quantity 5, got %+v", quantities)
		}
	})

	t.Run("merge direction never drops keys", func(t *testing.T) {
		a := []models.CartItem{item(1, "", nil, 2, 10), item(2, "", nil, 1, 5)}
		b := []models.CartItem{item(2, "", nil, 3, 5), item(3, "", nil, 1, 7)}
		ab := keySet(Merge(a, b))
		ba := keySet(Merge(b, a))
		if len(ab) != len(ba) {
			t.Fatalf("key sets differ: %+v vs %+v", ab, ba)
		}
		for k, qty := range ab {
			if ba[k] != qty {
				t.Fatalf("quantity mismatch for %+v: %d vs %d", k, qty, ba[k])
			}
		}
	})

	t.Run("server price snapshot wins on overlap", func(t *testing.T) {
		local := []models.CartItem{item(1, "", nil, 1, 12)}
		server := []models.CartItem{item(1, "", nil, 1, 10)}
		merged := Merge(local, server)
		if merged[0].Price != 10 {
			t.Fatalf("expected server snapshot to be kept, got %v", merged[0].Price)
		}
	})
}

func bundleFixture() (models.Bundle, map[int]models.Product) {
	bundle := models.Bundle{
		Name: "Duo Pack",
		Type: models.BundleAdminFixed,
		Items: []models.BundleItem{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 1},
		},
	}
	bundle.ID = 7
	products := map[int]models.Product{
		1: {Name: "Hoodie", Price: 10},
		2: {Name: "Tee", Price: 15},
	}
	return bundle, products
}

func TestExplodeBundle(t *testing.T) {
	bundle, products := bundleFixture()
	rows := ExplodeBundle(bundle, products)
	if len(rows) != 2 {
		t.Fatalf("expected one row per bundle item, got %d", len(rows))
	}
	for _, row := range rows {
		if row.BundleID == nil || *row.BundleID != 7 {
			t.Fatalf("every row must carry the bundle tag: %+v", row)
		}
		if row.BundleName != "Duo Pack" {
			t.Fatalf("missing bundle details: %+v", row)
		}
	}
	if rows[0].Price != 10 || rows[1].Price != 15 {
		t.Fatalf("rows must snapshot catalog prices: %+v", rows)
	}
}

func TestApplyBundle(t *testing.T) {
	bundle, products := bundleFixture()

	t.Run("re-adding doubles quantities, not rows", func(t *testing.T) {
		once := ApplyBundle(nil, ExplodeBundle(bundle, products))
		twice := ApplyBundle(once, ExplodeBundle(bundle, products))
		if len(twice) != len(once) {
			t.Fatalf("expected no duplicate rows, got %d vs %d", len(twice), len(once))
		}
		for i := range twice {
			if twice[i].Quantity != 2*once[i].Quantity {
				t.Fatalf("expected doubled quantity, got %+v vs %+v", twice[i], once[i])
			}
		}
	})

	t.Run("standalone row of the same product stays separate", func(t *testing.T) {
		existing := []models.CartItem{item(1, "", nil, 1, 10)}
		result := ApplyBundle(existing, ExplodeBundle(bundle, products))
		if len(result) != 3 {
			t.Fatalf("expected standalone + 2 bundle rows, got %+v", result)
		}
	})
}

func TestRemoveBundle(t *testing.T) {
	bundle, products := bundleFixture()
	cartItems := ApplyBundle(
		[]models.CartItem{item(1, "", nil, 4, 10)},
		ExplodeBundle(bundle, products),
	)

	remaining := RemoveBundle(cartItems, 7)
	if len(remaining) != 1 {
		t.Fatalf("expected only the standalone row to survive, got %+v", remaining)
	}
	if remaining[0].BundleID != nil || remaining[0].ProductID != 1 || remaining[0].Quantity != 4 {
		t.Fatalf("standalone row must be untouched: %+v", remaining[0])
	}

	t.Run("unknown bundle id removes nothing", func(t *testing.T) {
		if got := RemoveBundle(cartItems, 99); len(got) != len(cartItems) {
			t.Fatalf("expected no change, got %+v", got)
		}
	})
}
