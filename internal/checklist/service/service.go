// Package service orchestrates checklist evaluations: it loads definitions,
// runs the pure engine, annotates results with law-reference status, and
// emits audit events. All judgment semantics live in the checklist package;
// this layer only wires collaborators around it.
package service

import (
	"context"
	"log/slog"
	"time"

	"codecheck/internal/audit"
	"codecheck/internal/checklist"
	"codecheck/internal/checklist/metrics"
	"codecheck/internal/definitions"
	"codecheck/internal/lawref"
	dErrors "codecheck/pkg/domain-errors"
	"codecheck/pkg/requestcontext"
)

// Service evaluates checklists against loaded definitions.
type Service struct {
	defs    definitions.Store
	laws    lawref.Store
	audit   *audit.Publisher
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs the checklist service. laws, audit, and metrics may be nil.
func New(defs definitions.Store, laws lawref.Store, auditPub *audit.Publisher, logger *slog.Logger, m *metrics.Metrics) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		defs:    defs,
		laws:    laws,
		audit:   auditPub,
		logger:  logger,
		metrics: m,
	}
}

// ServerJudge is the judgment annotation attached to an enriched item.
type ServerJudge struct {
	Result  checklist.Status `json:"result"`
	Message string           `json:"message"`
	RuleID  string           `json:"rule_id,omitempty"`
}

// EnrichedItem is one applicable checklist item prepared for display:
// authored content plus the server-side judgment and reference status.
type EnrichedItem struct {
	Item          checklist.ItemDefinition
	ServerJudge   ServerJudge
	MissingInputs []checklist.MissingInput
	MissingRefs   []string
}

// JudgeOutput is the result of one judge command.
type JudgeOutput struct {
	Summary checklist.Summary
	Results []checklist.JudgedItem
}

// Enrich derives the applicable checklist items for a context, judged against
// the context-derived values alone. Law codes that are not registered are
// reported per item as missing refs; lookup failures degrade to no
// annotation because references never gate judgment.
func (s *Service) Enrich(ctx context.Context, evalCtx checklist.Context) ([]EnrichedItem, error) {
	set, err := s.defs.Load(ctx)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnavailable, "checklist definitions unavailable")
	}

	values := checklist.MergeContext(nil, evalCtx)

	enriched := []EnrichedItem{}
	var codes []string
	for _, item := range set.Items {
		if !checklist.Applies(item, evalCtx) {
			continue
		}
		judged := checklist.JudgeItem(item, set.Rules[item.ID], values)
		enriched = append(enriched, EnrichedItem{
			Item: item,
			ServerJudge: ServerJudge{
				Result:  judged.Status,
				Message: judged.Message,
				RuleID:  judged.MatchedRuleID,
			},
			MissingInputs: judged.MissingInputs,
		})
		codes = append(codes, item.Refs...)
	}

	missingRefs := s.lookupMissingRefs(ctx, codes)
	if len(missingRefs) > 0 {
		for i := range enriched {
			for _, code := range enriched[i].Item.Refs {
				if _, missing := missingRefs[code]; missing {
					enriched[i].MissingRefs = append(enriched[i].MissingRefs, code)
				}
			}
		}
	}

	return enriched, nil
}

// Judge runs one explicit evaluation against user-entered values.
func (s *Service) Judge(ctx context.Context, evalCtx checklist.Context, values checklist.Values) (*JudgeOutput, error) {
	start := time.Now()

	set, err := s.defs.Load(ctx)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeUnavailable, "checklist definitions unavailable")
	}

	results, summary := checklist.Evaluate(set.Items, set.Rules, evalCtx, values)

	for _, item := range results {
		s.metrics.IncrementItemOutcome(string(item.Status))
	}
	s.metrics.ObserveEvaluation(string(summary.Status), summary.Total, time.Since(start))

	s.audit.Emit(ctx, audit.Event{
		RequestID:    requestcontext.RequestID(ctx),
		Zoning:       evalCtx.Zoning,
		Use:          evalCtx.Use,
		Jurisdiction: evalCtx.Jurisdiction,
		Status:       string(summary.Status),
		Total:        summary.Total,
		DurationMs:   time.Since(start).Milliseconds(),
	})

	return &JudgeOutput{Summary: summary, Results: results}, nil
}

// lookupMissingRefs resolves which cited codes are unregistered. Returns a
// set; empty on lookup failure.
func (s *Service) lookupMissingRefs(ctx context.Context, codes []string) map[string]struct{} {
	if s.laws == nil || len(codes) == 0 {
		return nil
	}
	_, missing, err := s.laws.FindByCodes(ctx, codes)
	if err != nil {
		s.logger.WarnContext(ctx, "law reference lookup failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		return nil
	}
	set := make(map[string]struct{}, len(missing))
	for _, code := range missing {
		set[code] = struct{}{}
	}
	return set
}
