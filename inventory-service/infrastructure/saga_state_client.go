package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/evermart/order-system/shared/models"
	"github.com/evermart/order-system/shared/saga"
)

// SagaStateClient implements saga.StateReader against the order service's
// saga read endpoint. A 404 means the instance is not visible yet and is
// reported as a nil snapshot, which keeps the consistency-wait polling.
type SagaStateClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewSagaStateClient creates a new SagaStateClient
func NewSagaStateClient(baseURL string, logger *zap.Logger) *SagaStateClient {
	return &SagaStateClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// GetState fetches the saga's current state pair
func (c *SagaStateClient) GetState(ctx context.Context, correlationID models.ID) (*saga.Snapshot, error) {
	url := fmt.Sprintf("%s/sagas/%s", c.baseURL, correlationID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build saga state request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch saga state")
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var snapshot saga.Snapshot
		if err := json.NewDecoder(resp.Body).Decode(&snapshot); err != nil {
			return nil, errors.Wrap(err, "failed to decode saga state")
		}
		return &snapshot, nil
	case http.StatusNotFound:
		c.logger.Debug("saga not visible yet",
			zap.String("correlation_id", correlationID.String()))
		return nil, nil
	default:
		return nil, errors.Errorf("unexpected status %d fetching saga state", resp.StatusCode)
	}
}
