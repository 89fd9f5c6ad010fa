package handler

import (
	"net/http"
	"sort"

	"github.com/labstack/echo/v4"
)

// Doc handles GET /api/doc with a plain listing of the registered routes
func Doc(c echo.Context) error {
	routes := c.Echo().Routes()
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})

	type routeDoc struct {
		Method string `json:"method"`
		Path   string `json:"path"`
	}
	docs := make([]routeDoc, 0, len(routes))
	for _, r := range routes {
		docs = append(docs, routeDoc{Method: r.Method, Path: r.Path})
	}

	return c.JSON(http.StatusOK, echo.Map{"routes": docs})
}

// Default redirects the root path to the API documentation
func Default(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/api/doc")
}
