package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"codecheck/internal/checklist"
	"codecheck/internal/checklist/handler/mocks"
	"codecheck/internal/checklist/service"
	"codecheck/pkg/testutil"
)

type ChecklistHandlerSuite struct {
	suite.Suite
}

func TestChecklistHandlerSuite(t *testing.T) {
	suite.Run(t, new(ChecklistHandlerSuite))
}

func newTestHandler(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockService := mocks.NewMockService(ctrl)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	r := chi.NewRouter()
	New(mockService, logger).Register(r)
	return r, mockService
}

func (s *ChecklistHandlerSuite) TestHandleItems() {
	router, mockService := newTestHandler(s.T())

	floors := 6.0
	expected := checklist.Context{
		Zoning:       "제1종일반주거지역",
		Use:          "단독주택",
		Jurisdiction: "서울특별시",
		Floors:       &floors,
	}
	mockService.EXPECT().Enrich(gomock.Any(), expected).Return([]service.EnrichedItem{{
		Item: checklist.ItemDefinition{
			ID:     "parking",
			Title:  "부설주차장 설치",
			Inputs: []checklist.InputField{{Key: "unit_count", Label: "세대수"}},
			Refs:   []string{"주차장법-19"},
		},
		ServerJudge: service.ServerJudge{
			Result:  checklist.StatusNeedInput,
			Message: "세대수를 입력하세요.",
		},
		MissingInputs: []checklist.MissingInput{{Key: "unit_count", Label: "세대수"}},
		MissingRefs:   []string{"주차장법-19"},
	}}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodGet,
		"/checklist/items?zoning=제1종일반주거지역&use=단독주택&jurisdiction=서울특별시&floors=6", nil)
	rr := testutil.DoRequest(router, req)

	require.Equal(s.T(), http.StatusOK, rr.Code)
	resp := testutil.UnmarshalResponse[ItemsResponse](s.T(), rr)
	require.Len(s.T(), resp.Items, 1)
	assert.Equal(s.T(), "parking", resp.Items[0].ID)
	assert.Equal(s.T(), "need_input", resp.Items[0].ServerJudge.Result)
	assert.Equal(s.T(), []string{"주차장법-19"}, resp.Items[0].MissingRefs)
	assert.Equal(s.T(), 1, resp.Total)
}

func (s *ChecklistHandlerSuite) TestHandleItems_BadNumericParam() {
	router, _ := newTestHandler(s.T())

	req := testutil.NewJSONRequest(s.T(), http.MethodGet, "/checklist/items?floors=six", nil)
	rr := testutil.DoRequest(router, req)

	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
	body := testutil.UnmarshalResponse[map[string]string](s.T(), rr)
	assert.Equal(s.T(), "validation_error", (*body)["error"])
}

func (s *ChecklistHandlerSuite) TestHandleJudge() {
	router, mockService := newTestHandler(s.T())

	mockService.EXPECT().Judge(
		gomock.Any(),
		checklist.Context{Zoning: "일반상업지역", Use: "근린생활시설"},
		checklist.Values{"road_width_m": 4.5},
	).Return(&service.JudgeOutput{
		Summary: checklist.Summary{
			Status: checklist.StatusAllow,
			Total:  1,
			Counts: checklist.Counts{Allow: 1},
		},
		Results: []checklist.JudgedItem{{
			ID:            "road-access",
			Status:        checklist.StatusAllow,
			Message:       "접도 요건을 충족합니다.",
			MissingInputs: []checklist.MissingInput{},
		}},
	}, nil)

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/checklist/judge", map[string]any{
		"context": map[string]any{"zoning": "일반상업지역", "use": "근린생활시설"},
		"values":  map[string]any{"road_width_m": 4.5},
	})
	rr := testutil.DoRequest(router, req)

	require.Equal(s.T(), http.StatusOK, rr.Code)
	resp := testutil.UnmarshalResponse[JudgeResponse](s.T(), rr)
	assert.Equal(s.T(), checklist.StatusAllow, resp.Summary.Status)
	require.Len(s.T(), resp.Results, 1)
	assert.Equal(s.T(), "road-access", resp.Results[0].ID)
}

func (s *ChecklistHandlerSuite) TestHandleJudge_InvalidBody() {
	router, _ := newTestHandler(s.T())

	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/checklist/judge", nil)
	req.Body = http.NoBody
	rr := testutil.DoRequest(router, req)

	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}

func (s *ChecklistHandlerSuite) TestHandleJudge_TooManyValues() {
	router, _ := newTestHandler(s.T())

	values := map[string]any{}
	for i := 0; i < maxValues+1; i++ {
		values["k"+string(rune('a'+i%26))+string(rune('0'+i/26))] = i
	}
	req := testutil.NewJSONRequest(s.T(), http.MethodPost, "/checklist/judge", map[string]any{
		"context": map[string]any{"zoning": "z"},
		"values":  values,
	})
	rr := testutil.DoRequest(router, req)

	assert.Equal(s.T(), http.StatusBadRequest, rr.Code)
}
