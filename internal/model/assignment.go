package model

// PersonnelAssignment links a personnel row to a production with
// the role the person holds on that production.  The pair
// (personnel_id, production_id) is the composite primary key, so a
// person can be assigned to a production at most once.
type PersonnelAssignment struct {
	PersonnelID  uint64 // personnel_assignment.personnel_id
	ProductionID uint64 // personnel_assignment.production_id
	RoleTitle    string // personnel_assignment.role_title
}
