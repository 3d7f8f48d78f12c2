package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	authdomain "github.com/smallbiznis/gasdepot/internal/auth/domain"
	obscontext "github.com/smallbiznis/gasdepot/internal/observability/context"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.authSvc.Login(c.Request.Context(), authdomain.LoginRequest{
		Username: strings.TrimSpace(req.Username),
		Password: req.Password,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	// Tag the request so the access log line names who signed in.
	c.Request = c.Request.WithContext(obscontext.WithOperator(c.Request.Context(), resp.Username))

	c.JSON(http.StatusOK, resp)
}
