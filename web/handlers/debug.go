package handlers

import (
	"github.com/Alas-3/syrincal-system/database"
	"github.com/gofiber/fiber/v2"
)

// GetSQLLogs returns recent SQL logs as JSON
func GetSQLLogs(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	return c.JSON(fiber.Map{
		"queries": database.SQLLogger.GetRecentQueries(limit),
	})
}

// ClearSQLLogs clears all SQL logs
func ClearSQLLogs(c *fiber.Ctx) error {
	database.SQLLogger.Clear()
	return c.JSON(fiber.Map{"status": "cleared"})
}
