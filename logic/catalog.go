package logic

import (
	"fmt"
	"strings"
)

// Product is an immutable catalog entry. UnitPrice is in whole dollars.
type Product struct {
	Name        string `yaml:"name"`
	UnitPrice   int    `yaml:"unit_price"`
	Description string `yaml:"description"`
	ImageRef    string `yaml:"image"`
}

// Catalog is the static, read-only product list. Safe for concurrent reads
// across any number of sessions.
type Catalog struct {
	products []Product
	byName   map[string]int // canonical name -> index into products
}

// NewCatalog builds a catalog, rejecting duplicate names and negative prices.
func NewCatalog(products []Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]Product, 0, len(products)),
		byName:   make(map[string]int, len(products)),
	}
	for _, p := range products {
		if p.Name == "" {
			return nil, fmt.Errorf("catalog: product with empty name")
		}
		if p.UnitPrice < 0 {
			return nil, fmt.Errorf("catalog: product %q has negative price %d", p.Name, p.UnitPrice)
		}
		if _, dup := c.byName[p.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate product name %q", p.Name)
		}
		c.byName[p.Name] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// Lookup finds a product by its exact canonical name.
func (c *Catalog) Lookup(name string) (Product, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Product{}, false
	}
	return c.products[i], true
}

// All returns the products in declaration order.
func (c *Catalog) All() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Match finds the first product whose name appears in the normalized
// message. Declaration order decides ties.
func (c *Catalog) Match(normalized string) (Product, bool) {
	for _, p := range c.products {
		if strings.Contains(normalized, strings.ToLower(p.Name)) {
			return p, true
		}
	}
	return Product{}, false
}

// DefaultCatalog returns the built-in six-product store.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog([]Product{
		{Name: "Apple iPhone 14", UnitPrice: 999, Description: "6.1-inch display, 128GB, 12MP dual camera",
			ImageRef: "https://rukminim2.flixcart.com/image/832/832/xif0q/mobile/m/o/b/-original-imaghx9qkugtbfrn.jpeg?q=70&crop=false"},
		{Name: "Samsung Galaxy S21", UnitPrice: 799, Description: "6.2-inch display, 128GB, 12MP camera",
			ImageRef: "https://rukminim2.flixcart.com/image/312/312/xif0q/mobile/z/j/v/galaxy-s21-fe-5g-sm-g990blv4ins-samsung-original-imah3nhk5c4dncfm.jpeg?q=70"},
		{Name: "Sony WH-1000XM4", UnitPrice: 349, Description: "Noise-cancelling wireless headphones",
			ImageRef: "https://m.media-amazon.com/images/I/71o8Q5XJS5L._SL1500_.jpg"},
		{Name: "Apple MacBook Pro", UnitPrice: 1299, Description: "13-inch, M1 chip, 256GB SSD",
			ImageRef: "https://rukminim2.flixcart.com/image/312/312/kuyf8nk0/computer/g/z/q/mk1e3hn-a-laptop-apple-original-imag7yzmv57cvg3f.jpeg?q=70"},
		{Name: "Amazon Echo Dot", UnitPrice: 49, Description: "Smart speaker with Alexa",
			ImageRef: "https://m.media-amazon.com/images/I/61KIy6gX-CL._AC_SL1000_.jpg"},
		{Name: "Canon EOS M50", UnitPrice: 699, Description: "Mirrorless camera with 4K video",
			ImageRef: "https://m.media-amazon.com/images/I/914hFeTU2-L._AC_SL1500_.jpg"},
	})
	if err != nil {
		panic(err) // built-in data, cannot fail
	}
	return c
}
