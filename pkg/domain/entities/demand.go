package entities

// Demand is an insertion-ordered mapping of item name to quantity.
//
// Go maps iterate in random order, so the mapping keeps an explicit order
// slice alongside an index map. Merge output and missing-item reports walk
// items in the order they were first seen.
type Demand struct {
	order      []ItemName
	quantities map[ItemName]Quantity
}

// NewDemand creates an empty demand mapping.
func NewDemand() *Demand {
	return &Demand{
		quantities: make(map[ItemName]Quantity),
	}
}

// Add increments the stored quantity for item, inserting it at the end of
// the order on first sight. Zero and negative quantities are accepted;
// callers that care about sign validate before calling.
func (d *Demand) Add(item ItemName, qty Quantity) {
	if _, exists := d.quantities[item]; !exists {
		d.order = append(d.order, item)
	}
	d.quantities[item] += qty
}

// Get returns the quantity for item, or zero if the item is absent.
func (d *Demand) Get(item ItemName) Quantity {
	return d.quantities[item]
}

// Items returns the item names in insertion order. The slice is a copy.
func (d *Demand) Items() []ItemName {
	items := make([]ItemName, len(d.order))
	copy(items, d.order)
	return items
}

// Len returns the number of distinct items.
func (d *Demand) Len() int {
	return len(d.order)
}

// Empty reports whether the demand holds no items.
func (d *Demand) Empty() bool {
	return len(d.order) == 0
}

// Snapshot returns an independent copy of the demand.
func (d *Demand) Snapshot() *Demand {
	snapshot := &Demand{
		order:      make([]ItemName, len(d.order)),
		quantities: make(map[ItemName]Quantity, len(d.quantities)),
	}
	copy(snapshot.order, d.order)
	for item, qty := range d.quantities {
		snapshot.quantities[item] = qty
	}
	return snapshot
}
