package nav

// Item is a navigation entry. It is either a Leaf or a Parent.
type Item interface {
	Label() string
	Href() string
	isItem()
}

// Leaf is a plain link without flyout.
type Leaf struct {
	label string
	href  string
}

func NewLeaf(label, href string) Leaf {
	return Leaf{label: label, href: href}
}

// Label implements Item.
func (l Leaf) Label() string {
	return l.label
}

// Href implements Item.
func (l Leaf) Href() string {
	return l.href
}

func (Leaf) isItem() {}

// Parent is a link owning an ordered list of child entries.
type Parent struct {
	label    string
	href     string
	children []Item
}

func NewParent(label, href string, children ...Item) Parent {
	return Parent{label: label, href: href, children: children}
}

// Label implements Item.
func (p Parent) Label() string {
	return p.label
}

// Href implements Item.
func (p Parent) Href() string {
	return p.href
}

// Children returns a copy of the child entries.
func (p Parent) Children() []Item {
	children := make([]Item, len(p.children))
	copy(children, p.children)
	return children
}

func (Parent) isItem() {}

var (
	_ Item = Leaf{}
	_ Item = Parent{}
)
