package heraldry

// Layer operations work on copies: the input slice is never mutated, and the
// untouched entries keep every field unchanged. Out-of-range indexes return
// the input order unchanged (as a copy) so callers can chain operations
// without guarding.

// MoveLayerUp shifts the layer at index one position toward the top of the
// stack (higher index). Moving the top layer is a no-op.
func MoveLayerUp[T any](layers []T, index int) []T {
	out := append([]T(nil), layers...)
	if index < 0 || index >= len(out)-1 {
		return out
	}
	out[index], out[index+1] = out[index+1], out[index]
	return out
}

// MoveLayerDown shifts the layer at index one position toward the bottom of
// the stack (lower index). Moving the bottom layer is a no-op.
func MoveLayerDown[T any](layers []T, index int) []T {
	out := append([]T(nil), layers...)
	if index <= 0 || index >= len(out) {
		return out
	}
	out[index], out[index-1] = out[index-1], out[index]
	return out
}

// DuplicateLayer inserts a copy of the layer at index directly above it.
// When the stack already holds MaxLayers entries the input is returned
// unchanged; the cap is a data-model invariant, not an error condition here.
func DuplicateLayer[T any](layers []T, index int) []T {
	out := append([]T(nil), layers...)
	if index < 0 || index >= len(out) || len(out) >= MaxLayers {
		return out
	}
	dup := out[index]
	out = append(out, dup)
	copy(out[index+2:], out[index+1:len(out)-1])
	out[index+1] = dup
	return out
}

// RemoveLayer deletes the layer at index, shifting later layers down.
func RemoveLayer[T any](layers []T, index int) []T {
	out := append([]T(nil), layers...)
	if index < 0 || index >= len(out) {
		return out
	}
	return append(out[:index], out[index+1:]...)
}

// SetOrdinaryVisibility returns a copy with the indexed ordinary's Visible
// flag set. No other field of any layer changes.
func SetOrdinaryVisibility(layers []Ordinary, index int, visible bool) []Ordinary {
	out := append([]Ordinary(nil), layers...)
	if index >= 0 && index < len(out) {
		out[index].Visible = visible
	}
	return out
}

// SetChargeVisibility returns a copy with the indexed charge's Visible flag
// set.
func SetChargeVisibility(layers []Charge, index int, visible bool) []Charge {
	out := append([]Charge(nil), layers...)
	if index >= 0 && index < len(out) {
		out[index].Visible = visible
	}
	return out
}
