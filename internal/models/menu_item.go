package models

// Size selects one of the price points of a menu item. Pizzas carry
// small/large prices, everything else a single regular price.
type Size string

type PriceSet struct {
	Small   float64 `json:"small,omitempty" mapstructure:"small"`
	Large   float64 `json:"large,omitempty" mapstructure:"large"`
	Regular float64 `json:"regular,omitempty" mapstructure:"regular"`
}

// ForSize returns the price for the given size. ok is false when the item
// has no price defined for that size; a zero price counts as undefined.
func (p PriceSet) ForSize(size Size) (float64, bool) {
	var price float64
	switch size {
	case SizeSmall:
		price = p.Small
	case SizeLarge:
		price = p.Large
	case SizeRegular:
		price = p.Regular
	default:
		return 0, false
	}
	if price <= 0 {
		return 0, false
	}
	return price, true
}

type MenuItem struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	NameEN        string   `json:"name_en,omitempty"`
	Description   string   `json:"description,omitempty"`
	DescriptionEN string   `json:"description_en,omitempty"`
	Category      string   `json:"category"`
	Prices        PriceSet `json:"prices"`
	Image         string   `json:"image,omitempty"`
	Customizable  bool     `json:"customizable,omitempty"`
	Ingredients   []string `json:"ingredients,omitempty"`
}

type Topping struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	NameEN   string  `json:"name_en,omitempty"`
	Price    float64 `json:"price"`
	Category string  `json:"category"` // "meat", "cheese", "vegetable", "sauce", "other"
}

type CategoryInfo struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	NameEN string `json:"name_en"`
	Image  string `json:"image,omitempty"`
}
