package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/install-growth-api/internal/domain"
	growingmocks "github.com/vfg2006/install-growth-api/internal/usecases/growing/mocks"
	"github.com/vfg2006/install-growth-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestListFamilies(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := growingmocks.NewMockGrower(ctrl)
	service.EXPECT().Families().Return([]string{"revenue", "sem", "seo"})

	rec := serve(t, http.MethodGet, "/v1/growth", Growth(service)...)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"revenue", "sem", "seo"}, body["families"])
}

func TestGetFamilyGrowth(t *testing.T) {
	window := domain.MustWindow("2024-02-01", "2024-02-07")

	tests := []struct {
		name           string
		target         string
		setup          func(m *growingmocks.MockGrower)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "Crescimento da família",
			target: "/v1/growth/revenue?start_date=2024-02-01&end_date=2024-02-07&metrics=average_ticket",
			setup: func(m *growingmocks.MockGrower) {
				m.EXPECT().
					GetFamilyGrowth(gomock.Any(), "revenue", window, []string{"average_ticket"}).
					Return(&domain.GrowthReport{
						Family:   "revenue",
						Current:  domain.MetricSet{"average_ticket": 25},
						Previous: domain.MetricSet{"average_ticket": 20},
						Growth:   domain.GrowthResult{"average_ticket": 0.25},
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Família não cadastrada",
			target: "/v1/growth/churn?start_date=2024-02-01&end_date=2024-02-07",
			setup: func(m *growingmocks.MockGrower) {
				m.EXPECT().
					GetFamilyGrowth(gomock.Any(), "churn", window, gomock.Nil()).
					Return(nil, fmt.Errorf("%w: churn", domain.ErrUnknownFamily))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrUnknownFamily,
		},
		{
			name:   "Sem dados nas duas janelas",
			target: "/v1/growth/seo?start_date=2024-02-01&end_date=2024-02-07",
			setup: func(m *growingmocks.MockGrower) {
				m.EXPECT().
					GetFamilyGrowth(gomock.Any(), "seo", window, gomock.Nil()).
					Return(&domain.GrowthReport{
						Family:   "seo",
						Current:  domain.MetricSet{"clicks": 0},
						Previous: domain.MetricSet{"clicks": 0},
						Growth:   domain.GrowthResult{"clicks": 0},
					}, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apiErrors.ErrNotFound,
		},
		{
			name:           "Janela ausente",
			target:         "/v1/growth/seo",
			setup:          func(m *growingmocks.MockGrower) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := growingmocks.NewMockGrower(ctrl)
			tt.setup(service)

			rec := serve(t, http.MethodGet, tt.target, Growth(service)...)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
			}
		})
	}
}

func TestGetFamilyTotals(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := growingmocks.NewMockGrower(ctrl)
	service.EXPECT().
		GetFamilyTotals(gomock.Any(), "engagement", domain.MustWindow("2024-02-01", "2024-02-07"), gomock.Nil()).
		Return(domain.MetricSet{"dau": 1200, "mau": 6000, "stickiness": 0.2}, nil)

	rec := serve(t, http.MethodGet, "/v1/growth/engagement/totals?start_date=2024-02-01&end_date=2024-02-07", Growth(service)...)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 0.2, body["stickiness"])
}
