package handlers

import (
	"strings"
	"time"

	"github.com/Alas-3/syrincal-system/auth"
	"github.com/Alas-3/syrincal-system/database"
	"github.com/Alas-3/syrincal-system/models"
	"github.com/Alas-3/syrincal-system/web/middleware"
	"github.com/gofiber/fiber/v2"
)

// LoginPage shows the login form
func LoginPage(c *fiber.Ctx) error {
	// Already logged in? Send them where they belong.
	if token := c.Cookies(middleware.SessionCookieName()); token != "" {
		if claims, err := middleware.Sessions().Validate(token); err == nil {
			return c.Redirect(landingFor(claims.Role))
		}
	}

	return c.Render("pages/login", fiber.Map{
		"Title": "Sign in",
	}, "layouts/auth")
}

// LoginSubmit authenticates the user and issues a session cookie. Admins
// and managers land on the dashboard, agents on the storefront.
func LoginSubmit(c *fiber.Ctx) error {
	email := strings.ToLower(strings.TrimSpace(c.FormValue("email")))
	password := c.FormValue("password")

	if email == "" || password == "" {
		return loginFailed(c, "Email and password are required")
	}

	db := database.GetDB()

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		// Burn a comparison so a missing account costs the same as a
		// wrong password
		auth.VerifyPassword(password, "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")
		return loginFailed(c, "Invalid email or password")
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return loginFailed(c, "Invalid email or password")
	}

	token, err := middleware.Sessions().Issue(user.ID.String(), user.Email, user.Role, user.PriceTier)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create session")
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookieName(),
		Value:    token,
		Expires:  time.Now().Add(middleware.Sessions().Lifetime()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.Redirect(landingFor(user.Role))
}

// Logout clears the session cookie
func Logout(c *fiber.Ctx) error {
	c.ClearCookie(middleware.SessionCookieName())
	return c.Redirect("/login")
}

func landingFor(role string) string {
	if role == models.RoleAgent {
		return "/shop"
	}
	return "/"
}

func loginFailed(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusUnauthorized).Render("pages/login", fiber.Map{
		"Title": "Sign in",
		"Error": msg,
	}, "layouts/auth")
}
