package handler

import (
	"codecheck/internal/checklist"
	"codecheck/internal/checklist/service"
)

// ItemsResponse is the HTTP response for GET /checklist/items.
type ItemsResponse struct {
	Items []EnrichedItemResponse `json:"items"`
	Total int                    `json:"total"`
}

// EnrichedItemResponse is one applicable item annotated for display.
type EnrichedItemResponse struct {
	ID            string                   `json:"id"`
	Title         string                   `json:"title"`
	Why           string                   `json:"why,omitempty"`
	Category      string                   `json:"category,omitempty"`
	Inputs        []InputResponse          `json:"inputs"`
	Refs          []string                 `json:"refs,omitempty"`
	ServerJudge   ServerJudgeResponse      `json:"server_judge"`
	MissingInputs []checklist.MissingInput `json:"missing_inputs"`
	MissingRefs   []string                 `json:"missing_refs,omitempty"`
}

// InputResponse is one input descriptor, or an informational note.
type InputResponse struct {
	Key         string `json:"key,omitempty"`
	Label       string `json:"label,omitempty"`
	Type        string `json:"type,omitempty"`
	Placeholder string `json:"placeholder,omitempty"`
	Note        string `json:"note,omitempty"`
}

// ServerJudgeResponse is the judgment annotation of an enriched item.
type ServerJudgeResponse struct {
	Result  string `json:"result"`
	Message string `json:"message"`
	RuleID  string `json:"rule_id,omitempty"`
}

// JudgeResponse is the HTTP response for POST /checklist/judge.
type JudgeResponse struct {
	Summary checklist.Summary      `json:"summary"`
	Results []checklist.JudgedItem `json:"results"`
}

// FromEnrichedItems converts service output to the items response.
func FromEnrichedItems(items []service.EnrichedItem) *ItemsResponse {
	out := &ItemsResponse{
		Items: make([]EnrichedItemResponse, 0, len(items)),
		Total: len(items),
	}
	for _, e := range items {
		inputs := make([]InputResponse, 0, len(e.Item.Inputs))
		for _, in := range e.Item.Inputs {
			inputs = append(inputs, InputResponse{
				Key:         in.Key,
				Label:       in.Label,
				Type:        in.Type,
				Placeholder: in.Placeholder,
				Note:        in.Note,
			})
		}
		missing := e.MissingInputs
		if missing == nil {
			missing = []checklist.MissingInput{}
		}
		out.Items = append(out.Items, EnrichedItemResponse{
			ID:       e.Item.ID,
			Title:    e.Item.Title,
			Why:      e.Item.Why,
			Category: e.Item.Category,
			Inputs:   inputs,
			Refs:     e.Item.Refs,
			ServerJudge: ServerJudgeResponse{
				Result:  string(e.ServerJudge.Result),
				Message: e.ServerJudge.Message,
				RuleID:  e.ServerJudge.RuleID,
			},
			MissingInputs: missing,
			MissingRefs:   e.MissingRefs,
		})
	}
	return out
}

// FromJudgeOutput converts service output to the judge response.
func FromJudgeOutput(output *service.JudgeOutput) *JudgeResponse {
	results := output.Results
	if results == nil {
		results = []checklist.JudgedItem{}
	}
	return &JudgeResponse{
		Summary: output.Summary,
		Results: results,
	}
}
