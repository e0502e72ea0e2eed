package testing

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/elasticsearch"
	"github.com/testcontainers/testcontainers-go/wait"
)

type ESContainer struct {
	Container testcontainers.Container
	Address   string
}

// NewESContainer starts a single-node Elasticsearch and waits for a yellow
// cluster. The image can be overridden with TEST_ES_IMAGE.
func NewESContainer(ctx context.Context, tb testing.TB) *ESContainer {
	tb.Helper()

	esContainer, err := elasticsearch.Run(ctx,
		image("TEST_ES_IMAGE", DefaultESImage),
		elasticsearch.WithPassword(""),
		testcontainers.WithWaitStrategy(
			wait.ForHTTP("/_cluster/health?wait_for_status=yellow").
				WithPort("9200").
				WithStartupTimeout(90*time.Second),
		),
	)
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(esContainer); err != nil {
			tb.Logf("failed to terminate elasticsearch container: %v", err)
		}
	})
	if err != nil {
		tb.Fatalf("failed to start elasticsearch container: %v", err)
	}

	endpoint, err := esContainer.PortEndpoint(ctx, "9200/tcp", "http")
	if err != nil {
		tb.Fatalf("failed to resolve elasticsearch endpoint: %v", err)
	}

	return &ESContainer{
		Container: esContainer,
		Address:   endpoint,
	}
}
