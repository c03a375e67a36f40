package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/solucion-eventos/quotation-api/internal/core/domain"
)

// CompanyHandler serves the static business metadata the frontend needs for
// headers, footers, the contact page, and the map embed.
type CompanyHandler struct {
	company domain.Company
}

func NewCompanyHandler(company domain.Company) *CompanyHandler {
	return &CompanyHandler{company: company}
}

// Get handles GET /v1/company.
//
// @Summary      Get company metadata
// @Tags         company
// @Produce      json
// @Success      200  {object}  domain.Company
// @Router       /v1/company [get]
func (h *CompanyHandler) Get(c echo.Context) error {
	return c.JSON(http.StatusOK, h.company)
}
