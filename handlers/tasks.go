package handlers

import (
	"github.com/gofiber/fiber/v2"

	"note-keeper/app"
	"note-keeper/models"
)

// ListTasks returns the main task collection ordered by the sort
// query parameter.
func ListTasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := models.ListTasksQuery{
			Sort: models.TaskSort(c.Query("sort", string(models.SortTasksByColor))),
		}
		if err := a.Validator.Validate(query); err != nil {
			return badRequest(c, err.Error())
		}

		tasks, err := a.Tasks.List(query.Sort)
		if err != nil {
			return serviceError(c, "Failed to fetch tasks", err)
		}

		return success(c, fiber.Map{"tasks": tasks, "sort": query.Sort})
	}
}

// SaveTask creates or updates a task
func SaveTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req models.SaveTaskRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body")
		}
		if err := a.Validator.Validate(req); err != nil {
			return badRequest(c, err.Error())
		}

		task, err := a.Tasks.Save(req)
		if err != nil {
			return serviceError(c, "Failed to save task", err)
		}

		return success(c, fiber.Map{"task": task})
	}
}

// GetTask retrieves a single task by id
func GetTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		task, err := a.Tasks.Get(id)
		if err != nil {
			return serviceError(c, "Failed to fetch task", err)
		}

		return success(c, fiber.Map{"task": task})
	}
}

// DeleteTask permanently removes a task
func DeleteTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Tasks.Delete(id); err != nil {
			return serviceError(c, "Failed to delete task", err)
		}

		return success(c, fiber.Map{"message": "Task deleted"})
	}
}

// TrashTask moves a task to the trash basket
func TrashTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Tasks.MoveToTrash(id); err != nil {
			return serviceError(c, "Failed to trash task", err)
		}

		return success(c, fiber.Map{"message": "Task moved to trash"})
	}
}

// RestoreTask brings a task back from the trash basket
func RestoreTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Tasks.RestoreFromTrash(id); err != nil {
			return serviceError(c, "Failed to restore task", err)
		}

		return success(c, fiber.Map{"message": "Task restored"})
	}
}

// GetTaskTrash returns the trashed tasks
func GetTaskTrash(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tasks, err := a.Tasks.ListTrash()
		if err != nil {
			return serviceError(c, "Failed to fetch task trash", err)
		}

		return success(c, fiber.Map{"tasks": tasks})
	}
}

// SwitchTask toggles a task between pending and done
func SwitchTask(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := idParam(c)
		if err != nil {
			return badRequest(c, err.Error())
		}

		if err := a.Tasks.SwitchActive(id); err != nil {
			return serviceError(c, "Failed to switch task", err)
		}

		return success(c, fiber.Map{"message": "Task switched"})
	}
}

// DeleteInactiveTasks purges every completed task
func DeleteInactiveTasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := a.Tasks.DeleteAllInactive(); err != nil {
			return serviceError(c, "Failed to delete inactive tasks", err)
		}

		return success(c, fiber.Map{"message": "Inactive tasks deleted"})
	}
}

// ExportTasks writes the full task table to the export file
func ExportTasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.Tasks.Export()
		if err != nil {
			return serviceError(c, "Failed to export tasks", err)
		}

		return success(c, fiber.Map{"message": "Tasks exported", "count": count})
	}
}

// ImportTasks merges the export file back into the task table
func ImportTasks(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		count, err := a.Tasks.Import()
		if err != nil {
			return serviceError(c, "Failed to import tasks", err)
		}

		return success(c, fiber.Map{"message": "Tasks imported", "count": count})
	}
}
