package cart

import "encoding/json"

// SchemaVersion tags the stored document. Version 0 documents predate the
// foodItemId field and are upgraded on load, see migrate.
const SchemaVersion = 1

// Line is one selected product. Identity is the product slug: adding the
// same slug twice merges quantities instead of appending a second line.
type Line struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // unit price snapshot for display
	Quantity    int    `json:"quantity"`
	Picture     string `json:"picture"`
	ProductSlug string `json:"productSlug"`
	BranchSlug  string `json:"branchSlug"`
	FoodItemID  string `json:"foodItemId"`
}

// Cart holds lines across all branches at once; consumers filter by
// branch slug before rendering or computing subtotals.
type Cart struct {
	Version int    `json:"version"`
	Items   []Line `json:"items"`
}

func New() *Cart {
	return &Cart{Version: SchemaVersion}
}

// AddItem merges the quantity into an existing line with the same
// identity, or appends. A non-positive quantity counts as 1.
func (c *Cart) AddItem(line Line) {
	if line.ID == "" {
		line.ID = line.ProductSlug
	}
	if line.Quantity <= 0 {
		line.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ID == line.ID {
			c.Items[i].Quantity += line.Quantity
			return
		}
	}
	c.Items = append(c.Items, line)
}

// RemoveItem deletes the line with that identity; no-op if absent.
func (c *Cart) RemoveItem(id string) {
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateItemQuantity sets an absolute quantity. Zero or below routes
// through removal so a stored line never carries quantity <= 0.
func (c *Cart) UpdateItemQuantity(id string, qty int) {
	if qty <= 0 {
		c.RemoveItem(id)
		return
	}
	for i := range c.Items {
		if c.Items[i].ID == id {
			c.Items[i].Quantity = qty
			return
		}
	}
}

// Clear empties all lines, across all branches.
func (c *Cart) Clear() {
	c.Items = nil
}

// ItemsForBranch returns only the lines belonging to one branch.
func (c *Cart) ItemsForBranch(branchSlug string) []Line {
	out := make([]Line, 0, len(c.Items))
	for _, it := range c.Items {
		if it.BranchSlug == branchSlug {
			out = append(out, it)
		}
	}
	return out
}

// SubtotalForBranch sums price*quantity over exactly that branch's lines.
func (c *Cart) SubtotalForBranch(branchSlug string) int64 {
	var subtotal int64
	for _, it := range c.Items {
		if it.BranchSlug == branchSlug {
			subtotal += it.Price * int64(it.Quantity)
		}
	}
	return subtotal
}

func (c *Cart) Encode() ([]byte, error) {
	return json.Marshal(c)
}

// Decode parses a stored document and upgrades outdated shapes.
func Decode(raw []byte) (*Cart, error) {
	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.Version < SchemaVersion {
		migrate(&c)
	}
	return &c, nil
}

// v0 lines lack foodItemId; derive it from the product slug.
func migrate(c *Cart) {
	for i := range c.Items {
		if c.Items[i].FoodItemID == "" {
			c.Items[i].FoodItemID = c.Items[i].ProductSlug
		}
	}
	c.Version = SchemaVersion
}
