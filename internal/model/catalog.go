package model

// Program is a themed event package from the `programs` table. The
// price is a flat amount for the whole event in whole currency units.
//
// Fields:
//  ID    – primary key identifier.
//  Name  – display name of the program.
//  Price – non-negative flat price.
type Program struct {
	ID    uint64 `json:"id"`    // programs.id
	Name  string `json:"name"`  // programs.name
	Price int64  `json:"price"` // programs.price
}

// Addon is an optional extra from the `addons` table, billed once
// per booking regardless of guest count.
type Addon struct {
	ID    uint64 `json:"id"`    // addons.id
	Name  string `json:"name"`  // addons.name
	Price int64  `json:"price"` // addons.price
}

// Masterclass is an activity from the `masterclasses` table whose
// price scales with the booking's guest count.
type Masterclass struct {
	ID            uint64 `json:"id"`              // masterclasses.id
	Name          string `json:"name"`            // masterclasses.name
	PricePerChild int64  `json:"price_per_child"` // masterclasses.price_per_child
}
