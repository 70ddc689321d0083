package handlers

import (
	"errors"

	"github.com/Alas-3/syrincal-system/database"
	"github.com/Alas-3/syrincal-system/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientList displays the client directory
func ClientList(c *fiber.Ctx) error {
	db := database.GetDB()

	var clients []models.Client
	if err := db.Order("name ASC").Find(&clients).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not load clients")
	}

	return render(c, "pages/clients/list", fiber.Map{
		"Title":   "Clients",
		"Active":  "clients",
		"Clients": clients,
	})
}

// ClientNew shows the form to add a client
func ClientNew(c *fiber.Ctx) error {
	return render(c, "pages/clients/form", fiber.Map{
		"Title":  "New Client",
		"Active": "clients",
		"IsNew":  true,
		"Client": models.Client{},
	})
}

// ClientCreate adds a client to the directory
func ClientCreate(c *fiber.Ctx) error {
	db := database.GetDB()

	client, err := clientFromForm(c)
	if err != nil {
		return err
	}

	if err := db.Create(&client).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not create client: "+err.Error())
	}

	return c.Redirect("/clients")
}

// ClientEdit shows the form to edit a client
func ClientEdit(c *fiber.Ctx) error {
	client, err := loadClient(c)
	if err != nil {
		return err
	}

	return render(c, "pages/clients/form", fiber.Map{
		"Title":  "Edit Client",
		"Active": "clients",
		"IsNew":  false,
		"Client": client,
	})
}

// ClientUpdate edits a client in place. Sales keep the client name they
// were recorded with; renaming a client does not rewrite them.
func ClientUpdate(c *fiber.Ctx) error {
	db := database.GetDB()

	client, err := loadClient(c)
	if err != nil {
		return err
	}

	updated, err := clientFromForm(c)
	if err != nil {
		return err
	}

	client.Name = updated.Name
	client.Address = updated.Address
	client.ContactNumber = updated.ContactNumber
	client.Account = updated.Account
	client.TINNumber = updated.TINNumber
	client.ContactPerson = updated.ContactPerson

	if err := db.Save(&client).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not update client: "+err.Error())
	}

	return c.Redirect("/clients")
}

// ClientDelete removes a client from the directory
func ClientDelete(c *fiber.Ctx) error {
	db := database.GetDB()

	client, err := loadClient(c)
	if err != nil {
		return err
	}

	if err := db.Delete(&client).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "could not delete client: "+err.Error())
	}

	return c.Redirect("/clients")
}

func loadClient(c *fiber.Ctx) (models.Client, error) {
	var client models.Client

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return client, fiber.NewError(fiber.StatusBadRequest, "invalid client id")
	}

	if err := database.GetDB().First(&client, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return client, fiber.NewError(fiber.StatusNotFound, "client not found")
		}
		return client, fiber.NewError(fiber.StatusInternalServerError, "could not load client")
	}

	return client, nil
}

func clientFromForm(c *fiber.Ctx) (models.Client, error) {
	var client models.Client

	name := c.FormValue("name")
	if name == "" {
		return client, fiber.NewError(fiber.StatusBadRequest, "name is required")
	}

	client.Name = name
	client.Address = c.FormValue("address")
	client.ContactNumber = c.FormValue("contact_number")
	client.Account = c.FormValue("account")
	client.TINNumber = c.FormValue("tin_number")
	client.ContactPerson = c.FormValue("contact_person")

	return client, nil
}
