package handlers

import (
	"github.com/gofiber/fiber/v2"

	"note-keeper/app"
	"note-keeper/models"
)

// ListNotes returns the main collection ordered by the sort query
// parameter (color by default).
func ListNotes(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := models.ListNotesQuery{
			Sort: models.NoteSort(c.Query("sort", string(models.SortNotesByColor))),
		}
		if err := a.Validator.Validate(query); err != nil {
			return badRequest(c, err.Error())
		}

		notes, err := a.Notes.List(query.Sort)
		if err != nil {
			return serviceError(c, "Failed to fetch notes", err)
		}

		return success(c, fiber.Map{"notes": notes, "sort": query.Sort})
	}
}

// SaveNote creates or updates a note
func SaveNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SaveNoteRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		note, err := a.Notes.Save(req)
		if err != nil {
			return serviceError(c, "Failed to save note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// GetNote retrieves a single note by id
func GetNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		note, err := a.Notes.Get(id)
		if err != nil {
			return serviceError(c, "Failed to fetch note", err)
		}

		return success(c, fiber.Map{"note": note})
	}
}

// DeleteNote permanently removes a note (empty one trash item)
func DeleteNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Notes.Delete(id); err != nil {
			return serviceError(c, "Failed to delete note", err)
		}

		return success(c, fiber.Map{"message": "Note deleted"})
	}
}

// TrashNote moves a note to the trash basket
func TrashNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Notes.MoveToTrash(id); err != nil {
			return serviceError(c, "Failed to trash note", err)
		}

		return success(c, fiber.Map{"message": "Note moved to trash"})
	}
}

// RestoreNote brings a note back from the trash basket
func RestoreNote(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Notes.RestoreFromTrash(id); err != nil {
			return serviceError(c, "Failed to restore note", err)
		}

		return success(c, fiber.Map{"message": "Note restored"})
	}
}

// GetTrash returns the trashed notes and the badge count
func GetTrash(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		notes, err := a.Notes.ListTrash()
		if err != nil {
			return serviceError(c, "Failed to fetch trash", err)
		}

		count, err := a.Notes.TrashCount()
		if err != nil {
			return serviceError(c, "Failed to count trash", err)
		}

		return success(c, fiber.Map{"notes": notes, "count": count})
	}
}

// EmptyTrash permanently removes every trashed note
func EmptyTrash(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Notes.EmptyTrash(); err != nil {
			return serviceError(c, "Failed to empty trash", err)
		}

		return success(c, fiber.Map{"message": "Trash emptied"})
	}
}

// ShowDate toggles the date display preference on every note
func ShowDate(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.ShowDateRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}

		if err := a.Notes.ShowDate(req.Shown); err != nil {
			return serviceError(c, "Failed to update date display", err)
		}

		return success(c, fiber.Map{"message": "Date display updated"})
	}
}
