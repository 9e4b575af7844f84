package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agroflow/agroflow-api/internal/services"
)

// Exercises the quote handler's HTTP validation without touching the
// service layer.

func TestQuoteHandler_HTTPValidation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("GetQuote - invalid UUID format", func(t *testing.T) {
		handler := &QuoteHandler{
			common: &CommonServices{},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/quotes/invalid-uuid", nil)
		c.Params = gin.Params{
			{Key: "quote_id", Value: "invalid-uuid"},
		}

		handler.GetQuote(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "invalid quote_id")
	})

	t.Run("CreateQuote - invalid JSON body", func(t *testing.T) {
		handler := &QuoteHandler{
			common: &CommonServices{},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/quotes",
			bytes.NewBufferString("invalid json"))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.CreateQuote(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var response map[string]interface{}
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Contains(t, response["error"], "invalid request body")
	})

	t.Run("CreateQuote - missing customer_id", func(t *testing.T) {
		handler := &QuoteHandler{
			common: &CommonServices{},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		requestBody := CreateQuoteRequest{
			Items: []LineItemRequest{{Description: "Seed", Quantity: 1, UnitPrice: 10}},
			// Missing required CustomerID
		}
		jsonBody, _ := json.Marshal(requestBody)

		c.Request = httptest.NewRequest(http.MethodPost, "/quotes",
			bytes.NewBuffer(jsonBody))
		c.Request.Header.Set("Content-Type", "application/json")

		handler.CreateQuote(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateQuoteStatus - missing status", func(t *testing.T) {
		handler := &QuoteHandler{
			common: &CommonServices{},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		jsonBody, _ := json.Marshal(map[string]string{})

		c.Request = httptest.NewRequest(http.MethodPut, "/quotes/"+validQuoteID+"/status",
			bytes.NewBuffer(jsonBody))
		c.Request.Header.Set("Content-Type", "application/json")
		c.Params = gin.Params{
			{Key: "quote_id", Value: validQuoteID},
		}

		handler.UpdateQuoteStatus(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ConvertQuote - invalid UUID format", func(t *testing.T) {
		handler := &QuoteHandler{
			common: &CommonServices{},
		}

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/quotes/not-a-uuid/convert", nil)
		c.Params = gin.Params{
			{Key: "quote_id", Value: "not-a-uuid"},
		}

		handler.ConvertQuote(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

const validQuoteID = "7b0f4f34-9a5c-45d7-8f11-3a1c9be2d610"

func TestSendServiceError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation error maps to 400",
			err:        &services.ValidationError{Field: "amount", Message: "must be positive"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "not found maps to 404",
			err:        &services.NotFoundError{Resource: "quote", ID: validQuoteID},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "invalid transition maps to 409",
			err:        &services.InvalidTransitionError{DocumentType: "quote", From: "draft", To: "accepted"},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "already fully converted maps to 409",
			err:        &services.AlreadyFullyConvertedError{DocumentType: "sales_order", ID: validQuoteID},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "over-allocation maps to 409",
			err:        &services.OverAllocationError{Reason: "payment", Requested: 100, Available: 50},
			wantStatus: http.StatusConflict,
		},
		{
			name:       "stale version maps to 409",
			err:        services.ErrStaleVersion,
			wantStatus: http.StatusConflict,
		},
		{
			name:       "unexpected error maps to 500",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			sendServiceError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
