package entities

// InventoryItem is a named stack of items carried by a character.
type InventoryItem struct {
	ID          string
	CharacterID string
	Name        string
	Quantity    int32
	CreatedAt   int64
	UpdatedAt   int64
}

// InventoryItemPatch is a partial InventoryItem update.
type InventoryItemPatch struct {
	Name     *string
	Quantity *int32
}

// IsEmpty reports whether the patch names no field.
func (p *InventoryItemPatch) IsEmpty() bool {
	return p == nil || (p.Name == nil && p.Quantity == nil)
}

// ApplyTo merges the present fields into item and returns the result.
func (p *InventoryItemPatch) ApplyTo(item InventoryItem) InventoryItem {
	if p == nil {
		return item
	}
	if p.Name != nil {
		item.Name = *p.Name
	}
	if p.Quantity != nil {
		item.Quantity = *p.Quantity
	}
	return item
}
