package core

import "testing"

func TestInputFrameClearKeepsEarlierCopies(t *testing.T) {
	in := NewInputFrame()
	in.Set(ActionRemoveOldest)

	kept := in
	in.Clear()

	if in.Has(ActionRemoveOldest) {
		t.Error("Clear() left RemoveOldest set")
	}
	if !kept.Has(ActionRemoveOldest) {
		t.Error("copy taken before Clear() lost RemoveOldest")
	}

	in.Set(ActionSpawn)
	if kept.Has(ActionSpawn) {
		t.Error("Set() after Clear() leaked into the earlier copy")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var in InputFrame
	if in.Has(ActionSpawn) {
		t.Error("zero frame reports Spawn")
	}
	in.Clear()
	in.Set(ActionSpawn)
	if !in.Has(ActionSpawn) {
		t.Error("Set() on a cleared zero frame did not stick")
	}
}
