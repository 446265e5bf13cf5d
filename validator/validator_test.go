package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"note-keeper/models"
)

func intPtr(n int) *int { return &n }

func TestValidator_SaveNote(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.SaveNoteRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid note request",
			req: models.SaveNoteRequest{
				Text:  "Buy milk",
				Color: intPtr(int(models.NoteColorBlue)),
			},
			wantError: false,
		},
		{
			name: "Missing color is valid, default applies later",
			req: models.SaveNoteRequest{
				Text: "No color chosen",
			},
			wantError: false,
		},
		{
			name:      "Missing text",
			req:       models.SaveNoteRequest{},
			wantError: true,
			errorMsg:  "text is required",
		},
		{
			name: "Color above palette",
			req: models.SaveNoteRequest{
				Text:  "hi",
				Color: intPtr(models.NoteColorCount),
			},
			wantError: true,
			errorMsg:  "palette index",
		},
		{
			name: "Negative color",
			req: models.SaveNoteRequest{
				Text:  "hi",
				Color: intPtr(-1),
			},
			wantError: true,
			errorMsg:  "palette index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_SaveTask(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.SaveTaskRequest
		wantError bool
		errorMsg  string
	}{
		{
			name: "Valid task request",
			req: models.SaveTaskRequest{
				Description: "Walk the dog",
				Color:       intPtr(int(models.TaskColorRed)),
				IsImportant: true,
			},
			wantError: false,
		},
		{
			name:      "Missing description",
			req:       models.SaveTaskRequest{},
			wantError: true,
			errorMsg:  "description is required",
		},
		{
			name: "Color out of palette",
			req: models.SaveTaskRequest{
				Description: "hi",
				Color:       intPtr(models.TaskColorCount + 3),
			},
			wantError: true,
			errorMsg:  "palette index",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)

			if tt.wantError {
				assert.Error(t, err)
				if tt.errorMsg != "" {
					assert.Contains(t, err.Error(), tt.errorMsg)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ListQueries(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(models.ListNotesQuery{Sort: models.SortNotesByColor}))
	assert.NoError(t, v.Validate(models.ListTasksQuery{Sort: models.SortTasksByImportance}))

	// Importance is a task ordering only
	err := v.Validate(models.ListNotesQuery{Sort: "importance"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sort must be one of: color, date_new, date_old")

	err = v.Validate(models.ListTasksQuery{Sort: "newest"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "importance")
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "text", Message: "text is required", Tag: "required"},
		{Field: "color", Message: "color must be a palette index", Tag: "notecolor"},
	}

	errMsg := errs.Error()
	assert.Contains(t, errMsg, "text is required")
	assert.Contains(t, errMsg, "color must be a palette index")
}
