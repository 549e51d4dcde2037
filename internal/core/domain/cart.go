package domain

// CartLine is one menu item accumulated in a session cart.
type CartLine struct {
	ItemID   string
	Name     string
	Stall    string
	Price    float64
	Quantity int
}

// Cart is session-local state: lines plus a pickup time slot. It never
// reaches the order store directly; checkout turns each line into an Order.
type Cart struct {
	Lines      []CartLine
	PickupTime string
}

// AddLine merges the line into the cart, incrementing the quantity when the
// item is already present.
func (c *Cart) AddLine(line CartLine) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == line.ItemID {
			c.Lines[i].Quantity += line.Quantity
			return
		}
	}
	c.Lines = append(c.Lines, line)
}

// SetQuantity sets the quantity for an item; zero or negative removes it.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity <= 0 {
		c.RemoveLine(itemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) RemoveLine(itemID string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Lines = nil
	c.PickupTime = ""
}

func (c Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

func (c Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}
