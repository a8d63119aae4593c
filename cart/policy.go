// Package cart holds the reconciliation rules that keep a shopper's cart
// consistent: merging a guest cart into the server cart at login, exploding
// bundles into tagged line items, and removing a bundle without touching
// standalone rows. All functions are pure; persistence stays in the
// controllers.
package cart

import (
	"github.com/AnasFahiem/RA-Store-sub000/models"
)

// Key identifies a cart row. The same product can appear once standalone
// and once per distinct bundle; rows with different keys never merge.
// BundleID 0 means standalone.
type Key struct {
	ProductID int
	Variant   string
	BundleID  int
}

// ItemKey derives the identity key of a cart item.
func ItemKey(item models.CartItem) Key {
	k := Key{ProductID: item.ProductID, Variant: item.Variant}
	if item.BundleID != nil {
		k.BundleID = *item.BundleID
	}
	return k
}

// Merge combines a guest (local) cart with the server-persisted cart at
// login. Quantities of rows sharing a key are summed so neither side's
// state is discarded; rows unique to one side pass through unchanged.
// Server rows keep their position and field values (price snapshots
// included); local-only rows are appended in their own order.
func Merge(local, server []models.CartItem) []models.CartItem {
	merged := make([]models.CartItem, len(server))
	index := make(map[Key]int, len(server))
	for i, item := range server {
		merged[i] = item
		index[ItemKey(item)] = i
	}

	for _, item := range local {
		if i, ok := index[ItemKey(item)]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[ItemKey(item)] = len(merged)
		merged = append(merged, item)
	}
	return merged
}

// ExplodeBundle turns a bundle into one cart row per bundle line item, all
// tagged with the bundle's id and carrying the bundle's display details.
// Unit prices snapshot the current catalog price of each product.
func ExplodeBundle(bundle models.Bundle, products map[int]models.Product) []models.CartItem {
	bundleID := int(bundle.ID)
	items := make([]models.CartItem, 0, len(bundle.Items))
	for _, bi := range bundle.Items {
		product := products[bi.ProductID]
		items = append(items, models.CartItem{
			ProductID:           bi.ProductID,
			ProductName:         product.Name,
			Quantity:            bi.Quantity,
			Price:               product.Price,
			BundleID:            &bundleID,
			BundleName:          bundle.Name,
			BundlePriceOverride: bundle.PriceOverride,
		})
	}
	return items
}

// ApplyBundle adds exploded bundle rows to an existing cart. Rows already
// present under the same key have their quantity incremented instead of
// being duplicated, so adding a bundle twice doubles quantities, not rows.
func ApplyBundle(existing, exploded []models.CartItem) []models.CartItem {
	return Merge(exploded, existing)
}

// RemoveBundle deletes exactly the rows tagged with bundleID. Standalone
// rows for the same products are untouched.
func RemoveBundle(items []models.CartItem, bundleID int) []models.CartItem {
	kept := make([]models.CartItem, 0, len(items))
	for _, item := range items {
		if item.BundleID != nil && *item.BundleID == bundleID {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}
