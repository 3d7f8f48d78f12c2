package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	salesdomain "github.com/smallbiznis/gasdepot/internal/sales/domain"
)

type sellCustomerRequest struct {
	Name   string `json:"name"`
	Aadhar string `json:"aadhar"`
	Phone  string `json:"phone"`
}

type sellRequest struct {
	Type                 string              `json:"type"`
	CylinderNumbersInput string              `json:"cylinder_numbers_input"`
	Customer             sellCustomerRequest `json:"customer"`
}

func (s *Server) Sell(c *gin.Context) {
	var req sellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.salesSvc.Sell(c.Request.Context(), salesdomain.SellRequest{
		Type:                 strings.TrimSpace(req.Type),
		CylinderNumbersInput: req.CylinderNumbersInput,
		Customer: salesdomain.SellCustomer{
			Name:   strings.TrimSpace(req.Customer.Name),
			Aadhar: strings.TrimSpace(req.Customer.Aadhar),
			Phone:  strings.TrimSpace(req.Customer.Phone),
		},
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

type returnRequest struct {
	CylinderNumber string `json:"cylinder_number"`
}

func (s *Server) Return(c *gin.Context) {
	var req returnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	if err := s.salesSvc.Return(c.Request.Context(), salesdomain.ReturnRequest{
		CylinderNumber: strings.TrimSpace(req.CylinderNumber),
	}); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
