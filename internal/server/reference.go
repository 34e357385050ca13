package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) ListGarmentTypes(c *gin.Context) {
	options, err := s.refrepo.ListGarmentTypes(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": options})
}

func (s *Server) ListOrderStatuses(c *gin.Context) {
	options, err := s.refrepo.ListOrderStatuses(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": options})
}

func (s *Server) ListExpenseCategories(c *gin.Context) {
	options, err := s.refrepo.ListExpenseCategories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": options})
}

func (s *Server) ListPaymentMethods(c *gin.Context) {
	options, err := s.refrepo.ListPaymentMethods(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": options})
}
