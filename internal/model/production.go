package model

import "time"

// Production represents a production project contracted through a
// partner.  A production may carry at most one of two optional
// sub-records describing what kind of production it is: a
// GeneralProduction (album, film, ... with a planned release) or an
// EventProduction (a live event at a venue).  The schema does not
// enforce exclusivity between the two; a well-formed dataset
// populates at most one.
//
// Fields:
//  ID                     – primary key identifier.
//  Title                  – production title.
//  ProductionType         – free-text production category.
//  ContractHireDate       – start of the production contract.
//  ContractExpirationDate – end of the production contract.
//  PartnerID              – contracting partner.
type Production struct {
	ID                     uint64    // production.production_id
	Title                  string    // production.title
	ProductionType         string    // production.production_type
	ContractHireDate       time.Time // production.contract_hire_date
	ContractExpirationDate time.Time // production.contract_expiration_date
	PartnerID              uint64    // production.partner_id
}

// GeneralProduction is the release-oriented extension of a
// production (genre plus a planned release quarter/year).
type GeneralProduction struct {
	ProductionID       uint64 // general_production.production_id
	Genre              string // general_production.genre
	PlanReleaseQuarter int    // general_production.plan_release_quarter
	PlanReleaseYear    int    // general_production.plan_release_year
}

// EventProduction is the live-event extension of a production.
type EventProduction struct {
	ProductionID     uint64 // event_production.production_id
	EventType        string // event_production.event_type
	Location         string // event_production.location
	AudienceCapacity int    // event_production.audience_capacity
}
