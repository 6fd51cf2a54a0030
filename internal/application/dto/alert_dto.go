package dto

import (
	"time"

	"github.com/jhoicas/sioms-api/internal/domain/entity"
)

// AlertResponse alerta de stock bajo.
type AlertResponse struct {
	ID                string     `json:"id"`
	ProductID         string     `json:"product_id"`
	ProductName       string     `json:"product_name"`
	CurrentStock      int        `json:"current_stock"`
	MinimumStockLevel int        `json:"minimum_stock_level"`
	AlertDate         time.Time  `json:"alert_date"`
	IsResolved        bool       `json:"is_resolved"`
	ResolvedDate      *time.Time `json:"resolved_date,omitempty"`
	Notes             string     `json:"notes,omitempty"`
}

// ResolveAlertRequest body para resolver una alerta.
type ResolveAlertRequest struct {
	Notes string `json:"notes,omitempty"`
}

// ToAlertResponse convierte la entidad al DTO de respuesta.
func ToAlertResponse(a *entity.LowStockAlert) AlertResponse {
	return AlertResponse{
		ID:                a.ID,
		ProductID:         a.ProductID,
		ProductName:       a.ProductName,
		CurrentStock:      a.CurrentStock,
		MinimumStockLevel: a.MinimumStockLevel,
		AlertDate:         a.AlertDate,
		IsResolved:        a.IsResolved,
		ResolvedDate:      a.ResolvedDate,
		Notes:             a.Notes,
	}
}

// ToAlertResponses convierte una lista de entidades.
func ToAlertResponses(alerts []*entity.LowStockAlert) []AlertResponse {
	out := make([]AlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, ToAlertResponse(a))
	}
	return out
}
