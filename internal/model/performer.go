package model

// Performer is the optional 1:1 sub-record of a Personnel row
// holding performer-specific attributes.  It shares the personnel
// primary key; a person without a row in this table is not a
// performer.
//
// Fields:
//  PersonnelID     – key of the owning personnel row.
//  PerformanceType – kind of performance (singer, dancer, ...).
//  Agency          – name of the representing agency.
type Performer struct {
	PersonnelID     uint64 // performer.personnel_id
	PerformanceType string // performer.performance_type
	Agency          string // performer.agency
}
