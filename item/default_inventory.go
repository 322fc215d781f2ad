package item

// DefaultInventory builds the starting two-level scope every program
// begins with: a scene-level inventory holding the fixed scene props, and
// a child inventory holding the player's own starting coins (§9 "two-level
// default inventory"). Lookups from the child fall back to the scene, so
// scripts can `use chromatic triplicator with pieces o' eight` without
// either item having been placed by the script itself.
func DefaultInventory() *Inventory {
	scene := NewInventory(nil)
	scene.Append(&ChromaticTriplicator{})
	scene.Append(&DuplicatingContraption{})
	scene.Append(NewScales())
	scene.Append(&DishonestShopkeeper{})
	scene.Append(&NLicatorCreator{})
	scene.Append(&RootBeer{})
	scene.Append(&VendingMachine{})

	player := scene.CreateChild()
	player.Append(NewPiecesOEight(1))
	player.Append(NewBottlesOGrog(1))
	return player
}
