package dnd

import "reflect"

// Input is a snapshot of the pointer and modifier state for one sample.
// It is comparable; two samples with equal Input carry no new information.
type Input struct {
	X, Y             float64 // world coordinates
	ScreenX, ScreenY float64
	Button           MouseButton
	Pressed          bool
	PointerID        int
	Modifiers        KeyModifiers
}

// DropTargetRecord describes one drop target in a chain. Records are shared
// between events by pointer and must not be modified; a target whose data,
// effect or stickiness changes gets a new record.
type DropTargetRecord struct {
	Node                    *Node
	Data                    Data
	DropEffect              DropEffect
	IsActiveDueToStickiness bool
}

// Location is the pointer input together with the drop target chain under it,
// innermost first.
type Location struct {
	Input       Input
	DropTargets []*DropTargetRecord
}

// PreviousLocation holds the chain of the previously published event.
type PreviousLocation struct {
	DropTargets []*DropTargetRecord
}

// LocationHistory is the location model carried by every event.
//
// Previous.DropTargets of an event is the same slice as Current.DropTargets
// of the event published before it, so consumers can detect changes with
// SameDropTargets instead of comparing contents. Initial never changes during
// a drag.
type LocationHistory struct {
	Initial  Location
	Previous PreviousLocation
	Current  Location
}

// SameDropTargets reports whether a and b are the same chain: the same
// backing array and length. Two empty chains are always the same.
func SameDropTargets(a, b []*DropTargetRecord) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

// Contains reports whether node has a record in the chain.
func (l Location) Contains(node *Node) bool {
	return indexOfNode(l.DropTargets, node) >= 0
}

// Innermost returns the innermost record of the chain, or nil.
func (l Location) Innermost() *DropTargetRecord {
	if len(l.DropTargets) == 0 {
		return nil
	}
	return l.DropTargets[0]
}

func indexOfNode(chain []*DropTargetRecord, node *Node) int {
	for i, r := range chain {
		if r.Node == node {
			return i
		}
	}
	return -1
}

// sameTargets reports whether two chains name the same nodes in the same order
// with equal data and drop effects. Stickiness flags are not compared.
func sameTargets(a, b []*DropTargetRecord) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		if a[i].Node != b[i].Node || a[i].DropEffect != b[i].DropEffect {
			return false
		}
		if !sameData(a[i].Data, b[i].Data) {
			return false
		}
	}
	return true
}

// sameData treats one map instance as equal to itself before falling back
// to a deep comparison, so data holding funcs or NaN stays stable as long
// as GetData hands back the same map.
func sameData(a, b Data) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 || reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer() {
		return true
	}
	return reflect.DeepEqual(a, b)
}

// sameStickiness reports whether two chains of equal targets also agree on
// which records are retained by stickiness.
func sameStickiness(a, b []*DropTargetRecord) bool {
	for i := range a {
		if a[i].IsActiveDueToStickiness != b[i].IsActiveDueToStickiness {
			return false
		}
	}
	return true
}
