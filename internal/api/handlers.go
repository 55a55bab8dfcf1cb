package api

import (
	"encoding/json"
	"net/http"

	"github.com/signalsfoundry/sensitivity-calculator/core"
	"github.com/signalsfoundry/sensitivity-calculator/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/signalsfoundry/sensitivity-calculator/internal/api"

// calculationResponse carries the solved quantity plus the full parameter
// and derived-value snapshot the calculation used.
type calculationResponse struct {
	Operation string                   `json:"operation"`
	Result    core.RawValue            `json:"result"`
	Params    map[string]core.RawValue `json:"params"`
}

// handleSensitivity solves for sensitivity given the user's integration
// time.
func (s *Server) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	s.handleCalculation(w, r, "sensitivity", func(calc *core.Calculator) (core.RawValue, error) {
		q, err := calc.CalculateSensitivity(nil, true)
		if err != nil {
			return core.RawValue{}, err
		}
		return core.RawValue{Value: q.Value, Unit: q.Unit.Name()}, nil
	})
}

// handleIntegrationTime solves for the integration time required to reach
// the user's target sensitivity.
func (s *Server) handleIntegrationTime(w http.ResponseWriter, r *http.Request) {
	s.handleCalculation(w, r, "integration_time", func(calc *core.Calculator) (core.RawValue, error) {
		q, err := calc.CalculateTIntegration(nil, true)
		if err != nil {
			return core.RawValue{}, err
		}
		return core.RawValue{Value: q.Value, Unit: q.Unit.Name()}, nil
	})
}

func (s *Server) handleCalculation(w http.ResponseWriter, r *http.Request, operation string, solve func(*core.Calculator) (core.RawValue, error)) {
	ctx := r.Context()
	tracer := otel.Tracer(tracerName)
	ctx, span := tracer.Start(ctx, "API/"+operation, trace.WithSpanKind(trace.SpanKindServer))
	defer span.End()
	span.SetAttributes(attribute.String("calculation.operation", operation))
	if reqID := logging.RequestIDFromContext(ctx); reqID != "" {
		span.SetAttributes(attribute.String("request_id", reqID))
	}

	var userInput map[string]core.RawValue
	if err := json.NewDecoder(r.Body).Decode(&userInput); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid request payload"})
		return
	}

	calc, err := core.NewCalculator(userInput, s.instrument)
	var result core.RawValue
	if err == nil {
		result, err = solve(calc)
	}
	s.collector.ObserveCalculation(operation, err)
	if err != nil {
		span.RecordError(err)
		s.log.Warn(ctx, "calculation rejected",
			logging.String("operation", operation),
			logging.Err(err),
		)
		writeError(w, err)
		return
	}

	// The solve wrote its result back into the inputs, so the snapshot
	// shows the solved value alongside everything it was derived from.
	writeJSON(w, http.StatusOK, calculationResponse{
		Operation: operation,
		Result:    result,
		Params:    core.RawSnapshot(calc.Snapshot()),
	})
}

// paramInfo describes one registry entry for front-end placeholders.
type paramInfo struct {
	Value float64  `json:"value"`
	Unit  string   `json:"unit"`
	Min   *float64 `json:"min,omitempty"`
	Max   *float64 `json:"max,omitempty"`
	Group string   `json:"group"`
}

// handleParamValuesUnits reports every registered parameter with its
// default value, unit, and validity range.
func (s *Server) handleParamValuesUnits(w http.ResponseWriter, _ *http.Request) {
	out := make(map[string]paramInfo)
	for _, spec := range core.AllSpecs() {
		info := paramInfo{
			Value: spec.Default.Value,
			Unit:  spec.Default.Unit.Name(),
			Group: groupName(spec.Group),
		}
		if spec.Range != nil {
			min, max := spec.Range.Min, spec.Range.Max
			info.Min, info.Max = &min, &max
		}
		out[spec.Name] = info
	}
	writeJSON(w, http.StatusOK, out)
}

func groupName(g core.ParameterGroup) string {
	switch g {
	case core.GroupUser:
		return "user"
	case core.GroupInstrument:
		return "instrument"
	default:
		return "fixed"
	}
}
