package search_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ptakun123/HotelProj/internal/search"
)

func floatPtr(v float64) *float64 { return &v }

// TestBuildRequest_Validation проверяет, что неверные критерии отклоняются
// до формирования запроса.
func TestBuildRequest_Validation(t *testing.T) {
	tests := []struct {
		name        string
		criteria    search.Criteria
		expectedErr error
	}{
		{
			name:        "НетДат",
			criteria:    search.Criteria{Guests: 2},
			expectedErr: search.ErrDatesRequired,
		},
		{
			name:        "НетДатыВыезда",
			criteria:    search.Criteria{StartDate: "2026-09-01", Guests: 2},
			expectedErr: search.ErrDatesRequired,
		},
		{
			name:        "НеверныйФорматДаты",
			criteria:    search.Criteria{StartDate: "01.09.2026", EndDate: "2026-09-05", Guests: 2},
			expectedErr: search.ErrBadDateFormat,
		},
		{
			name:        "ЗаездПослеВыезда",
			criteria:    search.Criteria{StartDate: "2026-09-05", EndDate: "2026-09-01", Guests: 2},
			expectedErr: search.ErrDateOrder,
		},
		{
			name:        "ЗаездРавенВыезду",
			criteria:    search.Criteria{StartDate: "2026-09-01", EndDate: "2026-09-01", Guests: 2},
			expectedErr: search.ErrDateOrder,
		},
		{
			name:        "НольГостей",
			criteria:    search.Criteria{StartDate: "2026-09-01", EndDate: "2026-09-05"},
			expectedErr: search.ErrGuestsNotPositive,
		},
		{
			name: "МинЦенаБольшеМакс",
			criteria: search.Criteria{
				StartDate: "2026-09-01", EndDate: "2026-09-05", Guests: 2,
				LowestPrice: floatPtr(500), HighestPrice: floatPtr(100),
			},
			expectedErr: search.ErrPriceBounds,
		},
		{
			name: "СлишкомМногоЗвезд",
			criteria: search.Criteria{
				StartDate: "2026-09-01", EndDate: "2026-09-05", Guests: 2,
				MinHotelStars: 6,
			},
			expectedErr: search.ErrStarsRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := search.BuildRequest(tt.criteria)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

// TestBuildRequest_MinimalPayload проверяет, что при незаполненных фильтрах
// в тело запроса попадают ровно три обязательных поля.
func TestBuildRequest_MinimalPayload(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	req, err := search.BuildRequest(search.Criteria{
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
		Guests:    1,
	})
	require.NoError(err)

	data, err := json.Marshal(req)
	require.NoError(err)

	var payload map[string]any
	require.NoError(json.Unmarshal(data, &payload))

	assert.Len(payload, 3, "незаполненные фильтры не должны сериализоваться")
	assert.Equal("2026-09-01", payload["start_date"])
	assert.Equal("2026-09-05", payload["end_date"])
	assert.InDelta(1, payload["guests"], 0)
}

// TestBuildRequest_FullPayload проверяет перенос всех заполненных фильтров.
func TestBuildRequest_FullPayload(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	req, err := search.BuildRequest(search.Criteria{
		StartDate:       "2026-09-01",
		EndDate:         "2026-09-05",
		Guests:          2,
		LowestPrice:     floatPtr(100),
		HighestPrice:    floatPtr(500),
		RoomFacilities:  []string{"wifi", "tv"},
		HotelFacilities: []string{"pool"},
		Countries:       []string{"Poland"},
		Cities:          []string{"Warsaw", "Krakow"},
		MinHotelStars:   4,
		SortBy:          "price",
		SortOrder:       "asc",
	})
	require.NoError(err)

	assert.Equal([]string{"wifi", "tv"}, req.RoomFacilities)
	assert.Equal([]string{"pool"}, req.HotelFacilities)
	assert.Equal([]string{"Poland"}, req.Countries)
	assert.Equal([]string{"Warsaw", "Krakow"}, req.Cities)
	require.NotNil(req.MinHotelStars)
	assert.Equal(4, *req.MinHotelStars)
	require.NotNil(req.LowestPrice)
	assert.InDelta(100, *req.LowestPrice, 0.001)
	require.NotNil(req.HighestPrice)
	assert.InDelta(500, *req.HighestPrice, 0.001)
	assert.Equal("price", req.SortBy)
	assert.Equal("asc", req.SortOrder)
}
