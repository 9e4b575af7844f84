package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/agroflow/agroflow-api/internal/services"
)

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		sendError(c, 400, "invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func optionalQuery(c *gin.Context, name string) *string {
	if v := c.Query(name); v != "" {
		return &v
	}
	return nil
}

// LineItemRequest is the wire form of a document line.
type LineItemRequest struct {
	Description string     `json:"description" binding:"required"`
	Quantity    float64    `json:"quantity"`
	UnitPrice   float64    `json:"unit_price"`
	TaxID       *uuid.UUID `json:"tax_id"`
}

func toLineInputs(items []LineItemRequest) []services.LineInput {
	lines := make([]services.LineInput, 0, len(items))
	for _, item := range items {
		lines = append(lines, services.LineInput{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			TaxID:       item.TaxID,
		})
	}
	return lines
}
