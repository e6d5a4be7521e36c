package domain

// CartLine is one product entry in a cart plus its quantity. The product
// fields are a snapshot taken when the line was first added: a later catalog
// price change does not rewrite an existing line, only Quantity moves.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Cart is a session-scoped collection of cart lines. Lines keep insertion
// order (order first added). A cart holds at most one line per product id
// and a line's quantity is never zero or below: a request to set it that low removes
// the line instead.
//
// Carts are deliberately unpersisted. They are created empty, mutated by the
// methods below, and discarded when the process (or the owning session)
// ends.
type Cart struct {
	ID    string     `json:"id"`
	Lines []CartLine `json:"lines"`
}

// AddItem merges the product into the cart: an existing line for the same
// product id has its quantity incremented by one, otherwise a new line with
// quantity 1 is appended. Always succeeds.
func (c *Cart) AddItem(p Product) {
	for i := range c.Lines {
		if c.Lines[i].ID == p.ID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: p, Quantity: 1})
}

// UpdateQuantity sets the quantity of the line for productID to the given
// absolute value. A quantity of zero or below removes the line. Unknown
// product ids are
// a no-op, not an error.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ID == productID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the line for productID entirely. No-op when absent.
func (c *Cart) RemoveItem(productID int) {
	for i := range c.Lines {
		if c.Lines[i].ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// ItemCount is the sum of all line quantities, recomputed on every read.
func (c *Cart) ItemCount() int {
	total := 0
	for i := range c.Lines {
		total += c.Lines[i].Quantity
	}
	return total
}

// Subtotal is the sum of price times quantity over all lines, recomputed on
// every read.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for i := range c.Lines {
		total += c.Lines[i].Price * float64(c.Lines[i].Quantity)
	}
	return total
}
