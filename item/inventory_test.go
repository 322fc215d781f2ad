package item

import "testing"

func TestLookupResolutionOrderNearestWins(t *testing.T) {
	parent := NewInventory(nil)
	parent.Append(NewPiecesOEight(1))

	child := parent.CreateChild()
	child.Append(NewPiecesOEight(9))

	got, err := child.Lookup("pieces o' eight")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if count, _ := got.Count(); count != 9 {
		t.Errorf("resolved count = %d, want 9 (child should shadow parent)", count)
	}
}

func TestLookupFallsBackToParent(t *testing.T) {
	parent := NewInventory(nil)
	parent.Append(&ChromaticTriplicator{})

	child := parent.CreateChild()

	got, err := child.Lookup("chromatic triplicator")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got.Name() != "chromatic triplicator" {
		t.Errorf("resolved %q, want chromatic triplicator", got.Name())
	}
}

func TestLookupMissReturnsError(t *testing.T) {
	inv := NewInventory(nil)
	if _, err := inv.Lookup("nonexistent thing"); err == nil {
		t.Fatalf("expected error for missing item")
	}
}

func TestLookupInventoryNamesItself(t *testing.T) {
	inv := NewInventory(nil)
	inv.Append(NewPiecesOEight(3))

	got, err := inv.Lookup("inventory")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != Item(inv) {
		t.Errorf("Lookup(\"inventory\") did not return the inventory itself")
	}
}

func TestRemoveIsByIdentity(t *testing.T) {
	inv := NewInventory(nil)
	a := NewPiecesOEight(1)
	b := NewPiecesOEight(1)
	inv.Append(a)
	inv.Append(b)

	inv.Remove(a)

	if len(inv.Items()) != 1 || inv.Items()[0] != Item(b) {
		t.Fatalf("Remove did not remove exactly the identity passed in")
	}
}
