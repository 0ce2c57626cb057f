// Package catalog loads the food menu from colon-delimited category files
// and answers lookups against the resulting read-only catalog.
package catalog

import "maps"

const (
	CategoryVeg     = "Veg"
	CategoryNonVeg  = "Non-Veg"
	CategoryDessert = "Dessert"
)

// FoodItem is one menu entry. Paths are kept exactly as written in the source.
type FoodItem struct {
	Name            string
	ImagePath       string
	DescriptionPath string
}

// Source binds a category to the file its items are read from.
type Source struct {
	Category string `yaml:"name"`
	Path     string `yaml:"source"`
}

// DefaultSources returns the built-in categories, resolved against the working directory.
func DefaultSources() []Source {
	return []Source{
		{Category: CategoryVeg, Path: "veg_items.txt"},
		{Category: CategoryNonVeg, Path: "non_veg_items.txt"},
		{Category: CategoryDessert, Path: "dessert_items.txt"},
	}
}

// category keeps items keyed by name plus the order names first appeared in.
type category struct {
	items map[string]FoodItem
	order []string
}

func newCategory() *category {
	return &category{items: make(map[string]FoodItem)}
}

func (c *category) put(item FoodItem) {
	if _, exists := c.items[item.Name]; !exists {
		c.order = append(c.order, item.Name)
	}
	c.items[item.Name] = item
}

// Catalog maps category names to their items. It is never modified after Build.
type Catalog struct {
	categories map[string]*category
	order      []string
}

func newCatalog() *Catalog {
	return &Catalog{categories: make(map[string]*category)}
}

// Categories lists the categories that loaded, in source order.
func (c *Catalog) Categories() []string {
	if c == nil {
		return nil
	}
	return append([]string(nil), c.order...)
}

// Items returns a category's items in source order. Absent and empty categories both yield nil.
func (c *Catalog) Items(name string) []FoodItem {
	cat := c.category(name)
	if cat == nil || len(cat.order) == 0 {
		return nil
	}
	items := make([]FoodItem, 0, len(cat.order))
	for _, n := range cat.order {
		items = append(items, cat.items[n])
	}
	return items
}

// Lookup returns a copy of the category's name->item mapping, empty when absent.
func (c *Catalog) Lookup(name string) map[string]FoodItem {
	cat := c.category(name)
	if cat == nil {
		return map[string]FoodItem{}
	}
	return maps.Clone(cat.items)
}

func (c *Catalog) Item(categoryName, itemName string) (FoodItem, bool) {
	cat := c.category(categoryName)
	if cat == nil {
		return FoodItem{}, false
	}
	item, ok := cat.items[itemName]
	return item, ok
}

func (c *Catalog) Len(name string) int {
	cat := c.category(name)
	if cat == nil {
		return 0
	}
	return len(cat.items)
}

// TotalItems counts items across every category.
func (c *Catalog) TotalItems() int {
	if c == nil {
		return 0
	}
	total := 0
	for _, cat := range c.categories {
		total += len(cat.items)
	}
	return total
}

func (c *Catalog) category(name string) *category {
	if c == nil {
		return nil
	}
	return c.categories[name]
}
