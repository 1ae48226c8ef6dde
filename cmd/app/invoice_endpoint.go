package main

import (
	"net/http"
	"time"

	"InvoiceNestAPI/internal/middleware"
	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type invoiceItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	Price       float64 `json:"price"`
	TaxRate     float64 `json:"tax_rate"`
	Discount    float64 `json:"discount"`
}

type invoiceRequest struct {
	CustomerID string               `json:"customer_id"`
	Status     string               `json:"status,omitempty"`
	IssueDate  *time.Time           `json:"issue_date,omitempty"`
	DueDate    *time.Time           `json:"due_date,omitempty"`
	Notes      *string              `json:"notes,omitempty"`
	Items      []invoiceItemRequest `json:"items"`
}

type invoiceStatusRequest struct {
	Status string `json:"status"`
}

func (r *invoiceRequest) toModel() *model.Invoice {
	inv := &model.Invoice{
		CustomerID: r.CustomerID,
		Status:     r.Status,
		Notes:      r.Notes,
	}
	if r.IssueDate != nil {
		inv.IssueDate = *r.IssueDate
	}
	if r.DueDate != nil {
		inv.DueDate = *r.DueDate
	}
	for _, it := range r.Items {
		inv.Items = append(inv.Items, model.InvoiceItem{
			Description: it.Description,
			Quantity:    it.Quantity,
			Price:       it.Price,
			TaxRate:     it.TaxRate,
			Discount:    it.Discount,
		})
	}
	return inv
}

func registerInvoiceRoutes(api *echo.Group, is *services.InvoiceService) {
	grp := api.Group("/invoices")

	grp.GET("", func(c echo.Context) error {
		p := listParamsFrom(c)
		list, total, err := is.List(c.Request().Context(), p, c.QueryParam("customer_id"), c.QueryParam("status"))
		if err != nil {
			return writeError(c, err)
		}
		return respondList(c, list, pageInfo{
			Page: p.Page, Limit: p.Limit, Total: total, TotalPages: p.TotalPages(total),
		})
	})

	grp.GET("/:id", func(c echo.Context) error {
		inv, err := is.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return notFoundOr(c, err, "invoice not found")
		}
		return respond(c, http.StatusOK, inv, "")
	})

	grp.POST("", func(c echo.Context) error {
		req := new(invoiceRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		inv := req.toModel()
		if claims := middleware.GetClaims(c); claims != nil {
			inv.CreatedBy = claims.UserID
		}
		if err := is.Create(c.Request().Context(), inv); err != nil {
			return writeError(c, err)
		}
		return respond(c, http.StatusCreated, inv, "Invoice created")
	})

	grp.PUT("/:id", func(c echo.Context) error {
		req := new(invoiceRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		inv := req.toModel()
		inv.ID = c.Param("id")
		if err := is.Update(c.Request().Context(), inv); err != nil {
			return notFoundOr(c, err, "invoice not found")
		}
		return respond(c, http.StatusOK, inv, "Invoice updated")
	})

	grp.PATCH("/:id/status", func(c echo.Context) error {
		req := new(invoiceStatusRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		if err := is.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
			return notFoundOr(c, err, "invoice not found")
		}
		return respond(c, http.StatusOK, nil, "Invoice status updated")
	})

	grp.DELETE("/:id", func(c echo.Context) error {
		if err := is.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return notFoundOr(c, err, "invoice not found")
		}
		return respond(c, http.StatusOK, nil, "Invoice deleted")
	})
}
