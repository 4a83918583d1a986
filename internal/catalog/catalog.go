// Package catalog serves the menu: categories, items with per-size
// prices, and the topping list for the pizza builder. The catalog is
// read-only after load.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lapuropizza/storefront/internal/models"
)

type Catalog struct {
	categories []models.CategoryInfo
	items      []models.MenuItem
	itemsByID  map[string]models.MenuItem
	toppings   []models.Topping
	topsByID   map[string]models.Topping
}

func New(categories []models.CategoryInfo, items []models.MenuItem, toppings []models.Topping) *Catalog {
	c := &Catalog{
		categories: categories,
		items:      items,
		itemsByID:  make(map[string]models.MenuItem, len(items)),
		toppings:   toppings,
		topsByID:   make(map[string]models.Topping, len(toppings)),
	}
	for _, item := range items {
		c.itemsByID[item.ID] = item
	}
	for _, t := range toppings {
		c.topsByID[t.ID] = t
	}
	return c
}

// Default returns the built-in Lapuro Pizza menu.
func Default() *Catalog {
	return New(defaultCategories, defaultMenuItems, defaultToppings)
}

// menuFile is the on-disk catalog document format.
type menuFile struct {
	Categories []models.CategoryInfo `json:"categories"`
	Items      []models.MenuItem     `json:"items"`
	Toppings   []models.Topping      `json:"toppings"`
}

// LoadFile reads a catalog from a JSON document.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menu file: %w", err)
	}
	var doc menuFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing menu file %s: %w", path, err)
	}
	if len(doc.Items) == 0 {
		return nil, fmt.Errorf("menu file %s contains no items", path)
	}
	return New(doc.Categories, doc.Items, doc.Toppings), nil
}

func (c *Catalog) Categories() []models.CategoryInfo {
	return append([]models.CategoryInfo(nil), c.categories...)
}

func (c *Catalog) Items() []models.MenuItem {
	return append([]models.MenuItem(nil), c.items...)
}

func (c *Catalog) ItemsByCategory(category string) []models.MenuItem {
	var out []models.MenuItem
	for _, item := range c.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (c *Catalog) Item(id string) (models.MenuItem, bool) {
	item, ok := c.itemsByID[id]
	return item, ok
}

func (c *Catalog) Toppings() []models.Topping {
	return append([]models.Topping(nil), c.toppings...)
}

func (c *Catalog) Topping(id string) (models.Topping, bool) {
	t, ok := c.topsByID[id]
	return t, ok
}

// BasePriceForSize looks up the catalog price for an item and size. ok is
// false for unknown items and for sizes the item does not carry.
func (c *Catalog) BasePriceForSize(itemID string, size models.Size) (float64, bool) {
	item, ok := c.itemsByID[itemID]
	if !ok {
		return 0, false
	}
	return item.Prices.ForSize(size)
}
