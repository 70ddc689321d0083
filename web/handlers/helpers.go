package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// render merges the per-request locals every page needs (SQL debug panel,
// logged-in user) into the handler's view data and renders through the
// base layout.
func render(c *fiber.Ctx, view string, data fiber.Map) error {
	data["SQLQueries"] = c.Locals("SQLQueries")
	data["TotalSQLQueries"] = c.Locals("TotalSQLQueries")
	data["UserEmail"] = c.Locals("UserEmail")
	data["UserRole"] = c.Locals("UserRole")
	return c.Render(view, data, "layouts/base")
}

// filterValue reads a dropdown filter from the query string, mapping an
// absent or empty value to the "all" sentinel
func filterValue(c *fiber.Ctx, name string) string {
	v := strings.TrimSpace(c.Query(name))
	if v == "" {
		return "all"
	}
	return v
}

func parseFloatField(c *fiber.Ctx, name string) (float64, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" must be a number")
	}
	return v, nil
}

// parseOptionalFloatField returns nil for an empty field
func parseOptionalFloatField(c *fiber.Ctx, name string) (*float64, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, name+" must be a number")
	}
	return &v, nil
}

func parseIntField(c *fiber.Ctx, name string) (int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fiber.NewError(fiber.StatusBadRequest, name+" must be a whole number")
	}
	return v, nil
}

// parseDateField parses a required yyyy-mm-dd form input
func parseDateField(c *fiber.Ctx, name string) (time.Time, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fiber.NewError(fiber.StatusBadRequest, name+" must be a date (yyyy-mm-dd)")
	}
	return t, nil
}

// parseOptionalDateField returns nil for an empty field
func parseOptionalDateField(c *fiber.Ctx, name string) (*time.Time, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, name+" must be a date (yyyy-mm-dd)")
	}
	return &t, nil
}
