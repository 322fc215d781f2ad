package item

import "testing"

func TestPiecesOEightUseSaturatesAtZero(t *testing.T) {
	tests := []struct {
		name            string
		pieces, bottles int
		wantPieces      int
		wantBottles     int
	}{
		{"pieces absorb smaller debt", 5, 2, 3, 0},
		{"debt absorbs smaller pieces", 2, 5, 0, 3},
		{"exact cancellation", 4, 4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPiecesOEight(tt.pieces)
			b := NewBottlesOGrog(tt.bottles)
			inv := NewInventory(nil)
			inv.Append(p)
			inv.Append(b)

			if _, err := p.Use(b, inv, nil); err != nil {
				t.Fatalf("Use: %v", err)
			}
			if got, _ := p.Count(); got != tt.wantPieces {
				t.Errorf("pieces count = %d, want %d", got, tt.wantPieces)
			}
			if got, _ := b.Count(); got != tt.wantBottles {
				t.Errorf("bottles count = %d, want %d", got, tt.wantBottles)
			}
			if got, _ := p.Count(); got < 0 {
				t.Errorf("pieces count went negative: %d", got)
			}
			if got, _ := b.Count(); got < 0 {
				t.Errorf("bottles count went negative: %d", got)
			}
		})
	}
}

func TestBottlesOGrogHasNoUseBehaviour(t *testing.T) {
	b := NewBottlesOGrog(3)
	if _, ok := interface{}(b).(User); ok {
		t.Fatalf("bottles o' grog should not implement User")
	}
}

func TestCoinCopyIsIndependent(t *testing.T) {
	p := NewPiecesOEight(7)
	cp := p.Copy().(*PiecesOEight)
	cp.SetCount(1)
	if got, _ := p.Count(); got != 7 {
		t.Errorf("original mutated via copy: count = %d, want 7", got)
	}
}
