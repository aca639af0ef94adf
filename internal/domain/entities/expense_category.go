package entities

import "time"

type ExpenseCategory struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Active      bool      `json:"active"`
	CreatedBy   string    `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// DefaultExpenseCategories are seeded on boot when the catalog is empty.
var DefaultExpenseCategories = []ExpenseCategory{
	{Name: "Gastos de combustible/petróleo", Description: "Gastos relacionados con combustible para vehículos", Active: true},
	{Name: "Alimentación", Description: "Gastos de alimentación durante el servicio", Active: true},
	{Name: "Materiales", Description: "Compra de materiales para el proyecto", Active: true},
	{Name: "Hospedaje", Description: "Gastos de alojamiento durante el servicio", Active: true},
	{Name: "Transporte", Description: "Gastos de transporte público o peajes", Active: true},
	{Name: "Herramientas", Description: "Compra o alquiler de herramientas", Active: true},
	{Name: "Otros", Description: "Otros gastos no categorizados", Active: true},
}
