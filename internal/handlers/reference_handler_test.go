package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/sports-academy/backend/internal/handlers"
	"github.com/sports-academy/backend/internal/models"
	"github.com/sports-academy/backend/internal/store/storetest"
)

func TestInstructors_SortedByCoursesDesc(t *testing.T) {
	fake := storetest.New()
	fake.Instructors = []models.Instructor{
		{ID: primitive.NewObjectID(), Name: "Avery", NumberOfCourses: 2},
		{ID: primitive.NewObjectID(), Name: "Blake", NumberOfCourses: 9},
	}
	h := handlers.NewReferenceHandler(fake)

	rec := httptest.NewRecorder()
	h.Instructors(rec, httptest.NewRequest("GET", "/instructors", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var instructors []models.Instructor
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&instructors))
	require.Len(t, instructors, 2)
	assert.Equal(t, "Blake", instructors[0].Name)
}

func TestCategories_NameFilter(t *testing.T) {
	fake := storetest.New()
	fake.Categories = []models.Category{
		{ID: primitive.NewObjectID(), Name: "Water Sports"},
		{ID: primitive.NewObjectID(), Name: "Martial Arts"},
	}
	h := handlers.NewReferenceHandler(fake)

	rec := httptest.NewRecorder()
	h.Categories(rec, httptest.NewRequest("GET", "/category?name=Martial+Arts", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var categories []models.Category
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&categories))
	require.Len(t, categories, 1)
	assert.Equal(t, "Martial Arts", categories[0].Name)
}

func TestCategories_NoFilterReturnsAll(t *testing.T) {
	fake := storetest.New()
	fake.Categories = []models.Category{
		{ID: primitive.NewObjectID(), Name: "Water Sports"},
		{ID: primitive.NewObjectID(), Name: "Martial Arts"},
	}
	h := handlers.NewReferenceHandler(fake)

	rec := httptest.NewRecorder()
	h.Categories(rec, httptest.NewRequest("GET", "/category", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var categories []models.Category
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&categories))
	assert.Len(t, categories, 2)
}
