package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	reportingdomain "github.com/smallbiznis/gasdepot/internal/reporting/domain"
)

func (s *Server) Counts(c *gin.Context) {
	counts, err := s.reportingSvc.Counts(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (s *Server) ActiveCustomers(c *gin.Context) {
	typeName := strings.TrimSpace(c.Query("type"))
	customers, err := s.reportingSvc.ActiveCustomersByType(c.Request.Context(), typeName)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, customers)
}

func (s *Server) History(c *gin.Context) {
	var query struct {
		Limit  int `form:"limit,default=100"`
		Offset int `form:"offset,default=0"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	entries, err := s.reportingSvc.History(c.Request.Context(), reportingdomain.HistoryRequest{
		Limit:  query.Limit,
		Offset: query.Offset,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, entries)
}

func (s *Server) Search(c *gin.Context) {
	result, err := s.reportingSvc.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	switch result.Kind {
	case reportingdomain.SearchKindCustomer:
		c.JSON(http.StatusOK, gin.H{
			"type":     result.Kind,
			"customer": result.Customer.Customer,
			"counts":   result.Customer.Counts,
			"history":  result.Customer.History,
		})
	case reportingdomain.SearchKindCustomers:
		c.JSON(http.StatusOK, gin.H{
			"type":      result.Kind,
			"customers": result.Customers,
		})
	case reportingdomain.SearchKindCylinder:
		c.JSON(http.StatusOK, gin.H{
			"type":     result.Kind,
			"cylinder": result.Cylinder.Cylinder,
			"history":  result.Cylinder.History,
		})
	default:
		AbortWithError(c, reportingdomain.ErrNotFound)
	}
}

func (s *Server) GetCustomerDetail(c *gin.Context) {
	detail, err := s.reportingSvc.CustomerDetail(c.Request.Context(), strings.TrimSpace(c.Param("id")))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customer": detail.Customer,
		"counts":   detail.Counts,
		"history":  detail.History,
	})
}
