package view

import (
	"testing"
	"time"

	"github.com/josephgoksu/todowing/models"
	"github.com/stretchr/testify/assert"
)

var created = time.Date(2025, 6, 1, 21, 15, 0, 0, time.UTC)

func fixture() []models.Task {
	return []models.Task{
		{ID: 5, Title: "Walk dog", Completed: true, CreatedAt: created},
		{ID: 4, Title: "Buy milk", CreatedAt: created},
		{ID: 3, Title: "Call ABC bank", CreatedAt: created},
		{ID: 2, Title: "abc notes", Completed: true, CreatedAt: created},
		{ID: 1, Title: "Straße fegen", CreatedAt: created},
	}
}

func ids(tasks []models.Task) []int64 {
	out := make([]int64, len(tasks))
	for i, t := range tasks {
		out[i] = t.ID
	}
	return out
}

func TestFilter_Status(t *testing.T) {
	tasks := fixture()

	assert.Equal(t, []int64{5, 4, 3, 2, 1}, ids(Filter(tasks, models.FilterAll, "")))
	assert.Equal(t, []int64{4, 3, 1}, ids(Filter(tasks, models.FilterActive, "")))
	assert.Equal(t, []int64{5, 2}, ids(Filter(tasks, models.FilterCompleted, "")))
}

func TestFilter_SearchIsCaseInsensitive(t *testing.T) {
	tasks := fixture()

	upper := Filter(tasks, models.FilterAll, "ABC")
	lower := Filter(tasks, models.FilterAll, "abc")
	assert.Equal(t, []int64{3, 2}, ids(upper))
	assert.Equal(t, upper, lower)

	assert.Equal(t, []int64{1}, ids(Filter(tasks, models.FilterAll, "STRASSE")))
}

func TestFilter_ComposesStatusAndSearch(t *testing.T) {
	tasks := fixture()

	assert.Equal(t, []int64{3}, ids(Filter(tasks, models.FilterActive, "abc")))
	assert.Equal(t, []int64{2}, ids(Filter(tasks, models.FilterCompleted, "abc")))
	assert.Empty(t, Filter(tasks, models.FilterCompleted, "milk"))
}

func TestFilter_Idempotent(t *testing.T) {
	tasks := fixture()

	for _, status := range models.StatusFilters() {
		for _, q := range []string{"", "a", "ABC", "zzz"} {
			once := Filter(tasks, status, q)
			twice := Filter(once, status, q)
			assert.Equal(t, once, twice, "status=%s q=%q", status, q)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	tasks := fixture()
	before := append([]models.Task(nil), tasks...)

	_ = Filter(tasks, models.FilterActive, "abc")
	assert.Equal(t, before, tasks)
}

func TestFilter_Empty(t *testing.T) {
	assert.Empty(t, Filter(nil, models.FilterAll, ""))
	assert.Empty(t, Filter(nil, models.FilterActive, "x"))
}

func TestFilter_SearchMatchesTypedText(t *testing.T) {
	tasks := []models.Task{
		{ID: 3, Title: models.EscapeTitle("Tom & Jerry"), CreatedAt: created},
		{ID: 2, Title: models.EscapeTitle("a<b"), CreatedAt: created},
		{ID: 1, Title: models.EscapeTitle("Lamp shade"), CreatedAt: created},
	}

	assert.Equal(t, []int64{3}, ids(Filter(tasks, models.FilterAll, "Tom & Jerry")))
	assert.Equal(t, []int64{3}, ids(Filter(tasks, models.FilterAll, "&")))
	assert.Equal(t, []int64{2}, ids(Filter(tasks, models.FilterAll, "<")))
	assert.Equal(t, []int64{2}, ids(Filter(tasks, models.FilterAll, "A<B")))

	// entity text is not part of what the user typed
	assert.Equal(t, []int64{1}, ids(Filter(tasks, models.FilterAll, "amp")))
	assert.Empty(t, Filter(tasks, models.FilterAll, "lt"))
	assert.Empty(t, Filter(tasks, models.FilterAll, "&amp;"))
}
