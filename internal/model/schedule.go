package model

import "time"

// ProductionSchedule is a time-bounded activity: one person doing
// one task for one production between StartDT and EndDT.  A row is
// well formed only when StartDT < EndDT, though the schema does not
// enforce it; the availability queries apply the standard overlap
// test regardless.
//
// Fields:
//  ID           – primary key identifier.
//  ProductionID – production the activity belongs to.
//  PersonnelID  – person carrying out the activity.
//  StartDT      – when the activity starts.
//  EndDT        – when the activity ends.
//  TaskName     – short name of the task (Rehearsal, Filming, ...).
//  Location     – where the activity takes place.
type ProductionSchedule struct {
	ID           uint64    // production_schedule.prod_schedule_id
	ProductionID uint64    // production_schedule.production_id
	PersonnelID  uint64    // production_schedule.personnel_id
	StartDT      time.Time // production_schedule.start_dt
	EndDT        time.Time // production_schedule.end_dt
	TaskName     string    // production_schedule.taskname
	Location     string    // production_schedule.location
}
