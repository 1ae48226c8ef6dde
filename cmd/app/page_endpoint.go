package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const setupPage = `<!DOCTYPE html>
<html>
<head><title>InvoiceNest - Setup</title></head>
<body>
<h1>Welcome to InvoiceNest</h1>
<p>Create the first administrator account to get started.</p>
</body>
</html>`

const dashboardPage = `<!DOCTYPE html>
<html>
<head><title>InvoiceNest - Dashboard</title></head>
<body>
<h1>Dashboard</h1>
</body>
</html>`

// registerPageRoutes serves the two browser entry points the request gate's
// cookie rules revolve around.
func registerPageRoutes(e *echo.Echo) {
	e.GET("/setup", func(c echo.Context) error {
		return c.HTML(http.StatusOK, setupPage)
	})
	e.GET("/dashboard", func(c echo.Context) error {
		return c.HTML(http.StatusOK, dashboardPage)
	})
}
