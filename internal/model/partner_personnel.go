package model

import "time"

// PartnerPersonnel is an external contracted party (a partner
// company or freelancer) tied to one internal personnel contact.
// Partners in turn act as the contracting side of productions.
//
// Fields:
//  PartnerID              – primary key identifier.
//  Name                   – partner name.
//  ServiceType            – kind of service the partner provides.
//  PersonnelID            – internal contact person.
//  ContactHireDate        – start of the partner contract.
//  ContactExpirationDate  – end of the partner contract.
//  ContractAmount         – agreed contract amount.
//  ContactInfo            – free-text contact details.
type PartnerPersonnel struct {
	PartnerID             uint64    // partner_personnel.partner_id
	Name                  string    // partner_personnel.name
	ServiceType           string    // partner_personnel.service_type
	PersonnelID           uint64    // partner_personnel.personnel_id
	ContactHireDate       time.Time // partner_personnel.contact_hire_date
	ContactExpirationDate time.Time // partner_personnel.contact_expiration_date
	ContractAmount        float64   // partner_personnel.contract_amount
	ContactInfo           string    // partner_personnel.contact_info
}
