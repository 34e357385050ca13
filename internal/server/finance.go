package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s *Server) GetFinanceSummary(c *gin.Context) {
	summary, err := s.financeSvc.Summary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	formatter := s.formatterFor(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"data": summary,
		"formatted": gin.H{
			"total_revenue":   formatter.Format(summary.TotalRevenue),
			"total_collected": formatter.Format(summary.TotalCollected),
			"outstanding":     formatter.Format(summary.Outstanding),
			"total_expenses":  formatter.Format(summary.TotalExpenses),
			"net_profit":      formatter.Format(summary.NetProfit),
		},
	})
}

func (s *Server) GetFinanceMonthly(c *gin.Context) {
	months := 0
	if raw := strings.TrimSpace(c.Query("months")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 60 {
			AbortWithError(c, newValidationError("months", "invalid_months", "months must be between 1 and 60"))
			return
		}
		months = parsed
	}

	series, err := s.financeSvc.Monthly(c.Request.Context(), months)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": series})
}

func (s *Server) GetFinanceCategories(c *gin.Context) {
	breakdown, err := s.financeSvc.Categories(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": breakdown})
}

func (s *Server) GetFinanceBalances(c *gin.Context) {
	balances, err := s.financeSvc.Balances(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": balances})
}

func (s *Server) GetDashboardStats(c *gin.Context) {
	stats, err := s.financeSvc.Stats(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": stats})
}
