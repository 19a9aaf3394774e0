package services

import (
	"testing"

	"nellis/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordToForm_FlattensValues(t *testing.T) {
	form, err := recordToForm(models.Vehicle{ID: 3, Brand: "Kia", Year: 2016, Images: []string{"a.jpg"}})
	require.NoError(t, err)

	assert.Equal(t, "3", form["id"])
	assert.Equal(t, "2016", form["year"])
	assert.Equal(t, "0", form["mileage"])
	assert.Equal(t, []string{"a.jpg"}, form["images"])

	post, err := recordToForm(models.BlogPost{Status: models.PostDraft})
	require.NoError(t, err)
	assert.Equal(t, "Draft", post["status"])
}

func TestFormToRecord_RejectsUnusedKeys(t *testing.T) {
	_, err := formToRecord[models.WeeklySpecial](Form{"id": "1", "colour": "red"})
	assert.Error(t, err)

	rec, err := formToRecord[models.WeeklySpecial](Form{"id": "4", "title": "Deal"})
	require.NoError(t, err)
	assert.Equal(t, models.WeeklySpecial{ID: 4, Title: "Deal"}, rec)
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "a, b", fieldString([]string{"a", "b"}))
	assert.Equal(t, "12", fieldString(12))
	assert.Equal(t, "", fieldString(nil))
	assert.Equal(t, "Pending", fieldString(models.BookingPending))
}

func TestFieldOrder(t *testing.T) {
	assert.Equal(t, []string{"id", "title", "dealership", "videoUrl", "description", "date"}, fieldOrder(models.WeeklySpecial{}))
	assert.Nil(t, fieldOrder(nil))
}
