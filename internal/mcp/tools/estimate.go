package tools

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/vacancy-stats/internal/domain/salary"
)

const estimateToolName = "estimate_salary"

// EstimateParams defines the arguments for the estimate_salary tool
type EstimateParams struct {
	From float64 `json:"from,omitempty" jsonschema:"Lower bound of the salary fork, 0 when absent"`
	To   float64 `json:"to,omitempty" jsonschema:"Upper bound of the salary fork, 0 when absent"`
}

type EstimateResult struct {
	Estimate  float64 `json:"estimate"`
	Estimated bool    `json:"estimated"`
}

// WithEstimate registers the estimate_salary tool
func WithEstimate() Option {
	return func(reg *registry) {
		sdkmcp.AddTool(reg.server, &sdkmcp.Tool{
			Name:        estimateToolName,
			Description: "Estimate a single salary from a vacancy's lower and upper bounds",
		}, estimate)
		reg.add(estimateToolName)
	}
}

func estimate(_ context.Context, _ *sdkmcp.CallToolRequest, params EstimateParams) (*sdkmcp.CallToolResult, EstimateResult, error) {
	value, ok := salary.Estimate(params.From, params.To)
	result := EstimateResult{Estimate: value, Estimated: ok}

	if !ok {
		return textResult("no estimate: both bounds are missing"), result, nil
	}
	return textResult(fmt.Sprintf("estimated salary: %s", humanize.Commaf(value))), result, nil
}
