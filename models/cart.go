package models

type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart maps product id to a line. Lines keep the product snapshot taken at
// first add; quantity never drops below 1 — a line decremented to zero is
// removed instead. Insertion order is kept for display.
type Cart struct {
	lines map[int]*CartLine
	order []int
}

func NewCart() *Cart {
	return &Cart{lines: map[int]*CartLine{}}
}

func (c *Cart) Add(product Product) {
	if line, ok := c.lines[product.ID]; ok {
		line.Quantity++
		return
	}
	c.lines[product.ID] = &CartLine{Product: product, Quantity: 1}
	c.order = append(c.order, product.ID)
}

func (c *Cart) Remove(id int) {
	if _, ok := c.lines[id]; !ok {
		return
	}
	delete(c.lines, id)
	for i, pid := range c.order {
		if pid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

func (c *Cart) IncrementQty(id int) {
	if line, ok := c.lines[id]; ok {
		line.Quantity++
	}
}

func (c *Cart) DecrementQty(id int) {
	line, ok := c.lines[id]
	if !ok {
		return
	}
	if line.Quantity <= 1 {
		c.Remove(id)
		return
	}
	line.Quantity--
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := []CartLine{}
	for _, id := range c.order {
		if line, ok := c.lines[id]; ok {
			lines = append(lines, *line)
		}
	}
	return lines
}

func (c *Cart) TotalCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

func (c *Cart) TotalValue() float64 {
	total := 0.0
	for _, line := range c.lines {
		total += float64(line.Quantity) * line.Product.Price
	}
	return total
}
