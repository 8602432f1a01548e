package model

import (
	"fmt"
	"sort"
)

// Identified is anything stored in an Inventory.
type Identified interface {
	ItemID() string
}

// InventoryItem: запись инвентаря: предмет и количество.
type InventoryItem[T Identified] struct {
	Item     T
	Quantity int
}

// Inventory: стек предметов по ID. Порядок List стабилен (по порядку добавления).
type Inventory[T Identified] struct {
	items map[string]*InventoryItem[T]
	order []string
}

// NewInventory создаёт пустой инвентарь.
func NewInventory[T Identified]() *Inventory[T] {
	return &Inventory[T]{items: make(map[string]*InventoryItem[T])}
}

// Add stacks amount of item.
func (inv *Inventory[T]) Add(item T, amount int) {
	id := item.ItemID()
	if existing, ok := inv.items[id]; ok {
		existing.Quantity += amount
		return
	}
	inv.items[id] = &InventoryItem[T]{Item: item, Quantity: amount}
	inv.order = append(inv.order, id)
}

// Remove takes amount away. Returns false (and changes nothing) when the
// stack is missing or too small.
func (inv *Inventory[T]) Remove(id string, amount int) bool {
	existing, ok := inv.items[id]
	if !ok || existing.Quantity < amount {
		return false
	}
	existing.Quantity -= amount
	if existing.Quantity == 0 {
		delete(inv.items, id)
		for i, oid := range inv.order {
			if oid == id {
				inv.order = append(inv.order[:i], inv.order[i+1:]...)
				break
			}
		}
	}
	return true
}

// Has reports whether at least one item with id is held.
func (inv *Inventory[T]) Has(id string) bool {
	_, ok := inv.items[id]
	return ok
}

// Quantity returns the stack size for id.
func (inv *Inventory[T]) Quantity(id string) int {
	if e, ok := inv.items[id]; ok {
		return e.Quantity
	}
	return 0
}

// Get returns the stack for id.
func (inv *Inventory[T]) Get(id string) (InventoryItem[T], bool) {
	e, ok := inv.items[id]
	if !ok {
		return InventoryItem[T]{}, false
	}
	return *e, true
}

// List returns copies of all stacks in insertion order.
func (inv *Inventory[T]) List() []InventoryItem[T] {
	result := make([]InventoryItem[T], 0, len(inv.order))
	for _, id := range inv.order {
		result = append(result, *inv.items[id])
	}
	return result
}

// Serialize returns id → quantity.
func (inv *Inventory[T]) Serialize() map[string]int {
	result := make(map[string]int, len(inv.items))
	for id, e := range inv.items {
		result[id] = e.Quantity
	}
	return result
}

// DeserializeInventory rebuilds an inventory from Serialize output.
// Unknown IDs in data are reported as an error; known items with zero
// quantity are skipped.
func DeserializeInventory[T Identified](catalogue []T, data map[string]int) (*Inventory[T], error) {
	inv := NewInventory[T]()
	known := make(map[string]bool, len(catalogue))
	for _, item := range catalogue {
		known[item.ItemID()] = true
		if q := data[item.ItemID()]; q > 0 {
			inv.Add(item, q)
		}
	}

	var unknown []string
	for id := range data {
		if !known[id] {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return inv, fmt.Errorf("unknown inventory items: %v", unknown)
	}
	return inv, nil
}
