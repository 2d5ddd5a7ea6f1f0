package service

import (
	"context"
	"encoding/json"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
	"golang.org/x/sync/errgroup"

	"github.com/toolrent/admin-gateway/internal/domain/model"
	apperrors "github.com/toolrent/admin-gateway/internal/errors"
	"github.com/toolrent/admin-gateway/internal/ports"
)

// JMESPathEvaluator abstracts JMESPath operations for testability.
type JMESPathEvaluator interface {
	Validate(expr string) error
	Evaluate(expr string, data any) (any, error)
}

// jmespathLibEvaluator implements JMESPathEvaluator using go-jmespath.
type jmespathLibEvaluator struct{}

func (j jmespathLibEvaluator) Validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return nil
	}
	_, err := jmespath.Compile(expr)
	return err
}

func (j jmespathLibEvaluator) Evaluate(expr string, data any) (any, error) {
	return jmespath.Search(expr, data)
}

// ReportServiceOptions groups dependencies for ReportService.
type ReportServiceOptions struct {
	Source    ports.ReportSource
	Evaluator JMESPathEvaluator
}

// ReportService serves the precomputed backend reports, with an
// optional JMESPath expression applied to the rows before rendering.
// All aggregation happens server-side; expressions only narrow what is
// displayed.
type ReportService struct {
	source ports.ReportSource
	jems   JMESPathEvaluator
}

// NewReportService constructs a new ReportService.
func NewReportService(opts ReportServiceOptions) *ReportService {
	jems := opts.Evaluator
	if jems == nil {
		jems = jmespathLibEvaluator{}
	}
	return &ReportService{source: opts.Source, jems: jems}
}

// topToolsDefaultLimit bounds the ranking when the caller does not ask
// for a specific size.
const topToolsDefaultLimit = 10

// Dashboard fetches the four landing-page reports concurrently and
// returns the first error encountered, if any.
func (s *ReportService) Dashboard(ctx context.Context) (model.Dashboard, error) {
	var dash model.Dashboard

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.source.Loans(ctx, false)
		dash.Loans = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.source.OverdueClients(ctx)
		dash.OverdueClients = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.source.TopTools(ctx, topToolsDefaultLimit)
		dash.TopTools = rows
		return err
	})
	g.Go(func() error {
		rows, err := s.source.ClientStatuses(ctx)
		dash.ClientStatuses = rows
		return err
	})

	if err := g.Wait(); err != nil {
		return model.Dashboard{}, err
	}
	return dash, nil
}

// Loans returns the loans report, optionally narrowed to overdue rows
// server-side and by a JMESPath expression client-side.
func (s *ReportService) Loans(ctx context.Context, overdueOnly bool, filter string) ([]model.LoanRow, error) {
	rows, err := s.source.Loans(ctx, overdueOnly)
	if err != nil {
		return nil, err
	}
	return filterRows(s.jems, filter, rows)
}

// OverdueClients returns the clients-with-fines report.
func (s *ReportService) OverdueClients(ctx context.Context, filter string) ([]model.OverdueClientRow, error) {
	rows, err := s.source.OverdueClients(ctx)
	if err != nil {
		return nil, err
	}
	return filterRows(s.jems, filter, rows)
}

// TopTools returns the most-rented-tools ranking.
func (s *ReportService) TopTools(ctx context.Context, limit int, filter string) ([]model.TopToolRow, error) {
	if limit <= 0 {
		limit = topToolsDefaultLimit
	}
	rows, err := s.source.TopTools(ctx, limit)
	if err != nil {
		return nil, err
	}
	return filterRows(s.jems, filter, rows)
}

// ClientStatuses returns the per-client standing report.
func (s *ReportService) ClientStatuses(ctx context.Context, filter string) ([]model.ClientStatusRow, error) {
	rows, err := s.source.ClientStatuses(ctx)
	if err != nil {
		return nil, err
	}
	return filterRows(s.jems, filter, rows)
}

// filterRows applies a JMESPath expression to typed report rows by
// round-tripping through their JSON form. The expression must produce a
// list of rows of the same shape; anything else is a validation error.
func filterRows[T any](eval JMESPathEvaluator, expr string, rows []T) ([]T, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return rows, nil
	}
	if err := eval.Validate(expr); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "invalid filter expression")
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "serialize report rows")
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "decode report rows")
	}

	result, err := eval.Evaluate(expr, generic)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "evaluate filter expression")
	}
	if result == nil {
		return []T{}, nil
	}
	if _, ok := result.([]any); !ok {
		return nil, apperrors.Validation("filter expression must produce a list of rows")
	}

	out, err := json.Marshal(result)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "serialize filtered rows")
	}
	var filtered []T
	if err := json.Unmarshal(out, &filtered); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeValidation, "filter expression changed the row shape")
	}
	return filtered, nil
}
