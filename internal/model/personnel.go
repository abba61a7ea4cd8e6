package model

import "time"

// Personnel represents a person on the agency's books: staff,
// crew, actors and other roles.  The personnel_type column is a
// free-text role tag ("Director", "Actor", "Crew", ...), not a
// closed enum.  A personnel row may own one optional Performer
// sub-record and any number of assignments and schedule entries.
//
// Fields:
//  ID                     – primary key identifier.
//  Name                   – full name of the person.
//  Email                  – contact email address.
//  Phone                  – contact phone number.
//  PersonnelType          – free-text role tag.
//  ContractHireDate       – first day of the current contract.
//  ContractExpirationDate – last day of the current contract.
type Personnel struct {
	ID                     uint64    // personnel.personnel_id
	Name                   string    // personnel.name
	Email                  string    // personnel.email
	Phone                  string    // personnel.phone
	PersonnelType          string    // personnel.personnel_type
	ContractHireDate       time.Time // personnel.contract_hire_date
	ContractExpirationDate time.Time // personnel.contract_expiration_date
}
