package models

import "math"

// CartLine is one customized product instance in the cart. UnitPrice is
// locked in when the line is created and never recomputed from catalog
// data, so lines stay stable if catalog prices change mid-session.
type CartLine struct {
	ID                 string    `json:"id"`
	Item               MenuItem  `json:"menu_item"`
	Size               Size      `json:"size"`
	Quantity           int       `json:"quantity"`
	AddedToppings      []Topping `json:"added_toppings"`
	RemovedIngredients []string  `json:"removed_ingredients"`
	UnitPrice          float64   `json:"unit_price"`
}

type Cart struct {
	Lines    []CartLine `json:"lines"`
	Subtotal float64    `json:"subtotal"`
}

// RecalculateSubtotal restores the subtotal invariant after a structural
// mutation. Must run before the cart is persisted or published.
func (c *Cart) RecalculateSubtotal() {
	var sum float64
	for _, line := range c.Lines {
		sum += line.UnitPrice * float64(line.Quantity)
	}
	c.Subtotal = RoundMoney(sum)
}

// ItemCount sums all line quantities, used for the header badge.
func (c Cart) ItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// Clone returns a deep copy so callers cannot mutate store internals.
func (c Cart) Clone() Cart {
	out := Cart{Subtotal: c.Subtotal}
	if c.Lines != nil {
		out.Lines = make([]CartLine, len(c.Lines))
		for i, line := range c.Lines {
			out.Lines[i] = line.Clone()
		}
	}
	return out
}

// Clone returns a deep copy of the line.
func (l CartLine) Clone() CartLine {
	out := l
	if l.AddedToppings != nil {
		out.AddedToppings = append([]Topping(nil), l.AddedToppings...)
	}
	if l.RemovedIngredients != nil {
		out.RemovedIngredients = append([]string(nil), l.RemovedIngredients...)
	}
	if l.Item.Ingredients != nil {
		out.Item.Ingredients = append([]string(nil), l.Item.Ingredients...)
	}
	return out
}

// RoundMoney rounds to cents.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
