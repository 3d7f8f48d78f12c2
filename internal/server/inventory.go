package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cylinderdomain "github.com/smallbiznis/gasdepot/internal/cylinder/domain"
	"github.com/smallbiznis/gasdepot/internal/gastype"
)

func (s *Server) ListTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gastype.Names())
}

func (s *Server) ListCylinders(c *gin.Context) {
	var query struct {
		Status string `form:"status"`
		Type   string `form:"type"`
	}
	if err := c.ShouldBindQuery(&query); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	cylinders, err := s.cylinderSvc.List(c.Request.Context(), cylinderdomain.ListRequest{
		Status: query.Status,
		Type:   query.Type,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, cylinders)
}
