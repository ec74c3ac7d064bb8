package screening

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// ScoreRequest is the phase-one wrapper sent to the risk scoring service.
type ScoreRequest struct {
	Payload     map[string]interface{} `json:"payload"`
	OperatorID  string                 `json:"operatorId"`
	TenantScope string                 `json:"tenantScope"`
}

// ScoreResponse carries the scoring verdict. Classification is empty when
// the model declined to classify.
type ScoreResponse struct {
	Classification string  `json:"classification"`
	Score          float64 `json:"score"`
}

// RiskScoringClient posts assembled payloads to the external risk scoring
// service.
type RiskScoringClient struct {
	http   *resty.Client
	logger zerolog.Logger
}

func NewRiskScoringClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *RiskScoringClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &RiskScoringClient{http: client, logger: logger}
}

func (c *RiskScoringClient) Score(ctx context.Context, req *ScoreRequest) (*ScoreResponse, error) {
	var out ScoreResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/score")
	if err != nil {
		return nil, fmt.Errorf("risk scoring request: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("risk scoring returned %d: %s", resp.StatusCode(), resp.String())
	}
	c.logger.Debug().
		Str("classification", out.Classification).
		Float64("score", out.Score).
		Msg("risk scoring succeeded")
	return &out, nil
}

// FactorExtractionClient posts the bare feature payload to the contributing
// factor service. Best effort; callers treat failures as non-fatal.
type FactorExtractionClient struct {
	http   *resty.Client
	logger zerolog.Logger
}

func NewFactorExtractionClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *FactorExtractionClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &FactorExtractionClient{http: client, logger: logger}
}

func (c *FactorExtractionClient) Extract(ctx context.Context, features map[string]interface{}) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(features).
		Post("/explain")
	if err != nil {
		return fmt.Errorf("factor extraction request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("factor extraction returned %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
