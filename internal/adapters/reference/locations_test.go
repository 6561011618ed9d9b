package reference

import (
	"testing"

	"bloodlink-web/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedData(t *testing.T) {
	l, err := Load()
	require.NoError(t, err)

	districts := l.Districts()
	assert.Len(t, districts, 64)
	assert.True(t, l.HasDistrict("dhaka"))
	assert.False(t, l.HasDistrict("Atlantis"))

	names := Names(districts)
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, lower(names[i-1]), lower(names[i]), "districts out of order at %d", i)
	}

	again, err := Load()
	require.NoError(t, err)
	assert.Same(t, l, again)
}

func TestSortByNameIgnoresCase(t *testing.T) {
	locs := []domain.Location{{Name: "savar"}, {Name: "Anwara"}, {Name: "bandar"}, {Name: "Dhamrai"}}
	SortByName(locs)
	assert.Equal(t, []string{"Anwara", "bandar", "Dhamrai", "savar"}, Names(locs))
}

func TestUpazilasByDistrict(t *testing.T) {
	l, err := Parse(
		[]byte(`[{"id":"1","name":"Dhaka"},{"id":"2","name":"Sylhet"},{"id":"3","name":"  "}]`),
		[]byte(`[{"id":"1","district_id":"1","name":"Savar"},{"id":"2","district_id":"2","name":"Beanibazar"},{"id":"3","district_id":"1","name":"dohar"}]`),
	)
	require.NoError(t, err)

	assert.Len(t, l.Districts(), 2)
	assert.Equal(t, []string{"dohar", "Savar"}, Names(l.Upazilas("DHAKA")))
	assert.Len(t, l.Upazilas(""), 3)
	assert.Len(t, l.Upazilas("all"), 3)
	assert.NotNil(t, l.Upazilas("Nowhere"))
	assert.Empty(t, l.Upazilas("Nowhere"))
}

func TestDistrictsReturnsCopy(t *testing.T) {
	l, err := Parse([]byte(`[{"id":"1","name":"Dhaka"}]`), []byte(`[]`))
	require.NoError(t, err)

	got := l.Districts()
	got[0].Name = "changed"
	assert.Equal(t, "Dhaka", l.Districts()[0].Name)
}

func TestParseRejectsMalformedJSON(t *testing.T) {
	_, err := Parse([]byte(`{`), []byte(`[]`))
	assert.Error(t, err)
}

func lower(s string) string {
	return fold(s)
}
