package narrative

import (
	"context"
	"fmt"

	pb "github.com/kibbyd/htpa/go-engine/gen/narrative"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/kibbyd/htpa/go-engine/internal/burnout"
	"github.com/kibbyd/htpa/go-engine/internal/tradeoff"
)

// #region client-struct

// Client wraps the gRPC connection to the narrative language service.
type Client struct {
	conn   *grpc.ClientConn
	client pb.NarrativeServiceClient
}

// #endregion client-struct

// #region constructor

// NewClient connects to the narrative gRPC server.
func NewClient(addr string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:   conn,
		client: pb.NewNarrativeServiceClient(conn),
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.NarrativeServiceClient) *Client {
	return &Client{client: svc}
}

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion constructor

// #region narrate-decision

// NarrateDecision sends the structured decision to the language service.
func (c *Client) NarrateDecision(ctx context.Context, d tradeoff.TradeOffDecision) (string, error) {
	constraints := make([]string, len(d.ConstraintsActive))
	for i, name := range d.ConstraintsActive {
		constraints[i] = string(name)
	}
	actions := make([]*pb.DomainAction, len(d.Decisions))
	for i, dd := range d.Decisions {
		actions[i] = &pb.DomainAction{
			Category:  string(dd.Category),
			Action:    string(dd.Action),
			Reasoning: dd.Reasoning,
		}
	}

	resp, err := c.client.NarrateDecision(ctx, &pb.NarrateDecisionRequest{
		DecisionId:  d.DecisionID,
		Constraints: constraints,
		Actions:     actions,
		Confidence:  d.ConfidenceScore,
		Summary:     d.ReasoningSummary,
	})
	if err != nil {
		return "", fmt.Errorf("narrate decision rpc: %w", err)
	}
	return resp.Text, nil
}

// #endregion narrate-decision

// #region narrate-forecast

// NarrateForecast sends a burnout forecast to the language service.
func (c *Client) NarrateForecast(ctx context.Context, f burnout.Forecast) (string, error) {
	var daysToCrisis int32
	if f.DaysToCrisis != nil {
		daysToCrisis = int32(*f.DaysToCrisis)
	}
	resp, err := c.client.NarrateForecast(ctx, &pb.NarrateForecastRequest{
		RiskScore:          int32(f.RiskScore),
		Severity:           f.Severity,
		PrimaryFactors:     f.PrimaryFactors,
		InterventionNeeded: f.InterventionNeeded,
		DaysToCrisis:       daysToCrisis,
	})
	if err != nil {
		return "", fmt.Errorf("narrate forecast rpc: %w", err)
	}
	return resp.Text, nil
}

// #endregion narrate-forecast
