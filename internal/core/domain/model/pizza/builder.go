package pizza

// Builder assembles a Pizza step by step as the user walks through the
// ordering flow. Setters may be called in any order; the terminal Build
// methods run the same validation as the constructors.
//
// Example:
//
//	p, err := pizza.NewBuilder().
//	    Name("Margherita Mia").
//	    Size(pizza.Small).
//	    Cheese(true).
//	    Crust("Thin Crust").
//	    Sauce("Tomato Sauce").
//	    Topping("Veggie Supreme").
//	    BuildCustomized()
type Builder struct {
	name    string
	size    Size
	cheese  bool
	crust   string
	sauce   string
	topping string
}

// NewBuilder creates an empty pizza builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Name sets the pizza's name.
func (b *Builder) Name(name string) *Builder {
	b.name = name
	return b
}

// Size sets the pizza's size.
func (b *Builder) Size(size Size) *Builder {
	b.size = size
	return b
}

// Cheese sets whether extra cheese is added.
func (b *Builder) Cheese(cheese bool) *Builder {
	b.cheese = cheese
	return b
}

// Crust sets the crust for a customized pizza.
func (b *Builder) Crust(crust string) *Builder {
	b.crust = crust
	return b
}

// Sauce sets the sauce for a customized pizza.
func (b *Builder) Sauce(sauce string) *Builder {
	b.sauce = sauce
	return b
}

// Topping sets the topping for a customized pizza.
func (b *Builder) Topping(topping string) *Builder {
	b.topping = topping
	return b
}

// BuildStandard finalizes the builder into a standard menu pizza with the
// given catalog base cost.
func (b *Builder) BuildStandard(baseCost int) (Pizza, error) {
	return NewStandard(b.name, b.size, b.cheese, baseCost)
}

// BuildCustomized finalizes the builder into a customized pizza. The base
// cost is fixed by the domain, not by the builder.
func (b *Builder) BuildCustomized() (Pizza, error) {
	return NewCustomized(b.name, b.size, b.cheese, b.crust, b.sauce, b.topping)
}
