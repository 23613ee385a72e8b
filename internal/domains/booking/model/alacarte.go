package model

import (
	"fmt"
	"slices"
)

// ALaCartePicker keeps per-item quantities over a flat catalog and reports the chosen
// lines in catalog order.
type ALaCartePicker struct {
	catalog    []Item
	quantities map[string]int
}

// NewALaCartePicker seeds the quantities from lines already on the draft. Lines whose
// item left the catalog are dropped.
func NewALaCartePicker(catalog []Item, current []ItemLine) *ALaCartePicker {
	picker := &ALaCartePicker{
		catalog:    slices.Clone(catalog),
		quantities: map[string]int{},
	}

	for _, line := range current {
		if _, ok := picker.item(line.Item.ID); ok && line.Quantity > 0 {
			picker.quantities[line.Item.ID] = line.Quantity
		}
	}

	return picker
}

// Visible lists the in-stock items of a category, or of every category when categoryID
// is empty.
func (p *ALaCartePicker) Visible(categoryID string) []Item {
	visible := []Item{}

	for _, item := range p.catalog {
		if !item.InStock {
			continue
		}

		if categoryID != "" && item.CategoryID != categoryID {
			continue
		}

		visible = append(visible, item)
	}

	return visible
}

// SetQuantity sets the quantity of one item; zero or less removes it.
func (p *ALaCartePicker) SetQuantity(itemID string, quantity int) error {
	item, ok := p.item(itemID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
	}

	if quantity <= 0 {
		delete(p.quantities, itemID)

		return nil
	}

	if !item.InStock {
		return fmt.Errorf("%w: %s", ErrItemOutOfStock, item.Name)
	}

	p.quantities[itemID] = quantity

	return nil
}

func (p *ALaCartePicker) Quantity(itemID string) int {
	return p.quantities[itemID]
}

// Lines flattens the quantity map into item lines.
func (p *ALaCartePicker) Lines() []ItemLine {
	lines := []ItemLine{}

	for _, item := range p.catalog {
		if quantity := p.quantities[item.ID]; quantity > 0 {
			lines = append(lines, ItemLine{Item: item, Quantity: quantity})
		}
	}

	return lines
}

func (p *ALaCartePicker) item(itemID string) (Item, bool) {
	idx := slices.IndexFunc(p.catalog, func(item Item) bool { return item.ID == itemID })
	if idx == -1 {
		return Item{}, false
	}

	return p.catalog[idx], true
}
