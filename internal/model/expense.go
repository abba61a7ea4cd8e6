package model

import "time"

// ProductionExpense is a single expense booked against a
// production.
//
// Fields:
//  ID           – primary key identifier.
//  ProductionID – production the expense belongs to.
//  ExpenseType  – free-text expense category.
//  Amount       – amount spent.
//  ExpenseDate  – day the expense was incurred.
//  Description  – free-text note.
type ProductionExpense struct {
	ID           uint64    // production_expense.expense_id
	ProductionID uint64    // production_expense.production_id
	ExpenseType  string    // production_expense.expense_type
	Amount       float64   // production_expense.amount
	ExpenseDate  time.Time // production_expense.expense_date
	Description  string    // production_expense.description
}
