package model

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

type Mode string

const (
	ModeAtRestaurant Mode = "at_restaurant"
	ModeFixedOnly    Mode = "fixed_only"
	ModeALaCarteOnly Mode = "a_la_carte_only"
	ModeMixed        Mode = "mixed"
)

// Package is a fixed menu sold as one unit.
type Package struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageRef    string          `json:"image_ref,omitempty"`
}

// Item is an à-la-carte dish.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  string          `json:"category_id"`
	InStock     bool            `json:"in_stock"`
}

type FixedLine struct {
	Package  Package `json:"package"`
	Quantity int     `json:"quantity"`
}

type ItemLine struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// MenuSelection holds the fixed and à-la-carte lines of a draft. Its mode is always
// computed from the lines; the fixed and à-la-carte flags only record which selectors
// the guest has switched on.
type MenuSelection struct {
	fixed          []FixedLine
	items          []ItemLine
	fixedActive    bool
	aLaCarteActive bool
}

func (m MenuSelection) Mode() Mode {
	switch {
	case len(m.fixed) > 0 && len(m.items) > 0:
		return ModeMixed
	case len(m.fixed) > 0:
		return ModeFixedOnly
	case len(m.items) > 0:
		return ModeALaCarteOnly
	default:
		return ModeAtRestaurant
	}
}

func (m MenuSelection) FixedLines() []FixedLine {
	return slices.Clone(m.fixed)
}

func (m MenuSelection) ItemLines() []ItemLine {
	return slices.Clone(m.items)
}

// ActiveModes lists the switched-on selectors. AtRestaurant is active when no other is.
func (m MenuSelection) ActiveModes() []Mode {
	modes := []Mode{}

	if m.fixedActive {
		modes = append(modes, ModeFixedOnly)
	}

	if m.aLaCarteActive {
		modes = append(modes, ModeALaCarteOnly)
	}

	if len(modes) == 0 {
		modes = append(modes, ModeAtRestaurant)
	}

	return modes
}

func (m MenuSelection) IsEmpty() bool {
	return len(m.fixed) == 0 && len(m.items) == 0
}

// ToggleMode switches a selector on or off. Switching AtRestaurant on empties both
// lists; switching a selector off empties its list.
func (m MenuSelection) ToggleMode(mode Mode, checked bool) (MenuSelection, error) {
	next := m.clone()

	switch mode {
	case ModeAtRestaurant:
		if checked {
			return MenuSelection{}, nil
		}
	case ModeFixedOnly:
		next.fixedActive = checked
		if !checked {
			next.fixed = nil
		}
	case ModeALaCarteOnly:
		next.aLaCarteActive = checked
		if !checked {
			next.items = nil
		}
	default:
		return m, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}

	return next, nil
}

// SelectFixedPackage adds one unit of pkg, switching the fixed selector on if needed.
func (m MenuSelection) SelectFixedPackage(pkg Package) MenuSelection {
	next := m.clone()
	next.fixedActive = true

	for i := range next.fixed {
		if next.fixed[i].Package.ID == pkg.ID {
			next.fixed[i].Quantity++

			return next
		}
	}

	next.fixed = append(next.fixed, FixedLine{Package: pkg, Quantity: 1})

	return next
}

// ChangeFixedQuantity adds delta to a selected package. A result of zero or less
// removes the line.
func (m MenuSelection) ChangeFixedQuantity(packageID string, delta int) (MenuSelection, error) {
	idx := slices.IndexFunc(m.fixed, func(line FixedLine) bool { return line.Package.ID == packageID })
	if idx == -1 {
		return m, fmt.Errorf("%w: %s", ErrPackageNotSelected, packageID)
	}

	next := m.clone()

	quantity := next.fixed[idx].Quantity + delta
	if quantity <= 0 {
		next.fixed = slices.Delete(next.fixed, idx, idx+1)

		return next, nil
	}

	next.fixed[idx].Quantity = quantity

	return next, nil
}

func (m MenuSelection) RemoveFixedPackage(packageID string) MenuSelection {
	next := m.clone()
	next.fixed = slices.DeleteFunc(next.fixed, func(line FixedLine) bool { return line.Package.ID == packageID })

	return next
}

// SetALaCarteItems replaces the à-la-carte lines. Lines with a quantity of zero or less
// are dropped and repeated items are merged.
func (m MenuSelection) SetALaCarteItems(lines []ItemLine) MenuSelection {
	next := m.clone()
	next.items = nil

	for _, line := range lines {
		if line.Quantity <= 0 {
			continue
		}

		idx := slices.IndexFunc(next.items, func(existing ItemLine) bool { return existing.Item.ID == line.Item.ID })
		if idx >= 0 {
			next.items[idx].Quantity += line.Quantity

			continue
		}

		next.items = append(next.items, line)
	}

	if len(next.items) > 0 {
		next.aLaCarteActive = true
	}

	return next
}

// Subtotal sums unit price times quantity over both lists.
func (m MenuSelection) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero

	for _, line := range m.fixed {
		subtotal = subtotal.Add(line.Package.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	for _, line := range m.items {
		subtotal = subtotal.Add(line.Item.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	return subtotal
}

func (m MenuSelection) clone() MenuSelection {
	return MenuSelection{
		fixed:          slices.Clone(m.fixed),
		items:          slices.Clone(m.items),
		fixedActive:    m.fixedActive,
		aLaCarteActive: m.aLaCarteActive,
	}
}

type menuSnapshot struct {
	Mode        Mode        `json:"mode"`
	ActiveModes []Mode      `json:"active_modes"`
	Fixed       []FixedLine `json:"fixed"`
	ALaCarte    []ItemLine  `json:"a_la_carte"`
}

func (m MenuSelection) MarshalJSON() ([]byte, error) {
	snapshot := menuSnapshot{
		Mode:        m.Mode(),
		ActiveModes: m.ActiveModes(),
		Fixed:       m.fixed,
		ALaCarte:    m.items,
	}

	if snapshot.Fixed == nil {
		snapshot.Fixed = []FixedLine{}
	}

	if snapshot.ALaCarte == nil {
		snapshot.ALaCarte = []ItemLine{}
	}

	return json.Marshal(snapshot) //nolint:wrapcheck
}

// UnmarshalJSON restores the lines and selectors. The encoded mode is ignored and
// recomputed from the lines.
func (m *MenuSelection) UnmarshalJSON(data []byte) error {
	var snapshot menuSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("failed to decode menu selection: %w", err)
	}

	restored := MenuSelection{}.SetALaCarteItems(snapshot.ALaCarte)
	restored.aLaCarteActive = len(restored.items) > 0 || slices.Contains(snapshot.ActiveModes, ModeALaCarteOnly)

	for _, line := range snapshot.Fixed {
		if line.Quantity <= 0 {
			continue
		}

		restored.fixed = append(restored.fixed, line)
	}

	restored.fixedActive = len(restored.fixed) > 0 || slices.Contains(snapshot.ActiveModes, ModeFixedOnly)

	*m = restored

	return nil
}
