package entity

import "github.com/shopspring/decimal"

// DeliveryMethod selects how a checked-out order reaches the patient.
type DeliveryMethod string

const (
	DeliveryMethodPickup   DeliveryMethod = "pickup"
	DeliveryMethodDelivery DeliveryMethod = "delivery"
)

var vatRate = decimal.NewFromFloat(0.07)

// CartItem pairs a product with the quantity in the cart.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is portal-held state: it exists only until checkout or expiry, and the
// orders service takes over from there.
type Cart struct {
	Items             []CartItem     `json:"items"`
	DeliveryMethod    DeliveryMethod `json:"delivery_method"`
	SelectedAddressID *int           `json:"selected_address_id,omitempty"`
}

func NewCart() *Cart {
	return &Cart{
		Items:          []CartItem{},
		DeliveryMethod: DeliveryMethodDelivery,
	}
}

// AddItem adds one unit of the product, merging with an existing line.
func (c *Cart) AddItem(product Product) {
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: product, Quantity: 1})
}

func (c *Cart) RemoveItem(productID int) {
	items := c.Items[:0]
	for _, item := range c.Items {
		if item.Product.ID != productID {
			items = append(items, item)
		}
	}
	c.Items = items
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range c.Items {
		price := decimal.NewFromFloat(item.Product.UnitPrice)
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return subtotal
}

// VAT is 7% of the subtotal, rounded to whole currency units.
func (c *Cart) VAT() decimal.Decimal {
	return c.Subtotal().Mul(vatRate).Round(0)
}

func (c *Cart) Total() decimal.Decimal {
	return c.Subtotal().Add(c.VAT())
}

// Clear empties the cart and drops the selected address, keeping the chosen
// delivery method.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.SelectedAddressID = nil
}
