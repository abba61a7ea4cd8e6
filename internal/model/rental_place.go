package model

// RentalPlace is a venue (studio, stage, hall) that productions can
// rent for a period of time.
//
// Fields:
//  ID          – primary key identifier.
//  Name        – venue name.
//  Address     – street address.
//  Type        – free-text venue category.
//  Capacity    – audience or crew capacity.
//  ContactInfo – free-text contact details.
type RentalPlace struct {
	ID          uint64 // rental_place.place_id
	Name        string // rental_place.name
	Address     string // rental_place.address
	Type        string // rental_place.type
	Capacity    int    // rental_place.capacity
	ContactInfo string // rental_place.contact_info
}
