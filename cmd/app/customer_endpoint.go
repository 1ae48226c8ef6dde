package main

import (
	"net/http"
	"strconv"

	"InvoiceNestAPI/internal/middleware"
	"InvoiceNestAPI/internal/model"
	"InvoiceNestAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type customerRequest struct {
	DisplayName string  `json:"display_name"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Website     *string `json:"website,omitempty"`
	Address     *string `json:"address,omitempty"`
	City        *string `json:"city,omitempty"`
	State       *string `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
	ZipCode     *string `json:"zip_code,omitempty"`
	Status      string  `json:"status,omitempty"`
}

func (r *customerRequest) apply(c *model.Customer) {
	c.DisplayName = r.DisplayName
	c.ContactName = r.ContactName
	c.Email = r.Email
	c.Phone = r.Phone
	c.Website = r.Website
	c.Address = r.Address
	c.City = r.City
	c.State = r.State
	c.Country = r.Country
	c.ZipCode = r.ZipCode
	c.Status = r.Status
}

func listParamsFrom(c echo.Context) services.ListParams {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return services.ListParams{Page: page, Limit: limit, Search: c.QueryParam("search")}.Normalize()
}

func registerCustomerRoutes(api *echo.Group, cs *services.CustomerService) {
	grp := api.Group("/customers")

	grp.GET("", func(c echo.Context) error {
		p := listParamsFrom(c)
		list, total, err := cs.List(c.Request().Context(), p)
		if err != nil {
			return writeError(c, err)
		}
		return respondList(c, list, pageInfo{
			Page: p.Page, Limit: p.Limit, Total: total, TotalPages: p.TotalPages(total),
		})
	})

	grp.GET("/:id", func(c echo.Context) error {
		cust, err := cs.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return notFoundOr(c, err, "customer not found")
		}
		return respond(c, http.StatusOK, cust, "")
	})

	grp.POST("", func(c echo.Context) error {
		req := new(customerRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		cust := &model.Customer{}
		req.apply(cust)
		if claims := middleware.GetClaims(c); claims != nil {
			cust.CreatedBy = claims.UserID
		}
		if err := cs.Create(c.Request().Context(), cust); err != nil {
			return writeError(c, err)
		}
		return respond(c, http.StatusCreated, cust, "Customer created")
	})

	grp.PUT("/:id", func(c echo.Context) error {
		existing, err := cs.Get(c.Request().Context(), c.Param("id"))
		if err != nil {
			return notFoundOr(c, err, "customer not found")
		}
		req := new(customerRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		req.apply(existing)
		if existing.Status == "" {
			existing.Status = model.CustomerActive
		}
		if existing.Country == "" {
			existing.Country = "US"
		}
		if err := cs.Update(c.Request().Context(), existing); err != nil {
			return notFoundOr(c, err, "customer not found")
		}
		return respond(c, http.StatusOK, existing, "Customer updated")
	})

	grp.DELETE("/:id", func(c echo.Context) error {
		if err := cs.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return notFoundOr(c, err, "customer not found")
		}
		return respond(c, http.StatusOK, nil, "Customer deleted")
	})
}
