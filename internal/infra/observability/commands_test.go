//go:build unit

package observability_test

import (
	"context"
	"errors"
	"testing"

	"bakery-orders/internal/infra/observability"
	"bakery-orders/internal/usecase/commands"
	"bakery-orders/tests/common/builder"
	commandsmock "bakery-orders/tests/mock/commands"
	queriesmock "bakery-orders/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

func newRecordingProvider() (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	return sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder)), recorder
}

func TestTraceOrderCommands(t *testing.T) {
	ctx := context.Background()

	t.Run("成功時はIDとリビジョンを記録", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := commandsmock.NewMockOrderCommands(ctrl)
		provider, recorder := newRecordingProvider()
		created := builder.NewCakeBuilder().MustBuildDomain()
		next.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(&commands.MutationResult{Order: created, Revision: 4}, nil)

		_, err := observability.TraceOrderCommands(next, provider).CreateOrder(ctx, builder.NewCakeBuilder().BuildDraft())
		require.NoError(t, err)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, "orders.create", spans[0].Name())
		assert.Contains(t, spans[0].Attributes(), attribute.String("order.id", created.ID()))
	})

	t.Run("失敗時はエラーを記録", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		next := commandsmock.NewMockOrderCommands(ctrl)
		provider, recorder := newRecordingProvider()
		next.EXPECT().DeleteOrder(gomock.Any(), "abc").Return(uint64(0), errors.New("unreachable"))

		_, err := observability.TraceOrderCommands(next, provider).DeleteOrder(ctx, "abc")
		require.Error(t, err)

		spans := recorder.Ended()
		require.Len(t, spans, 1)
		assert.Equal(t, codes.Error, spans[0].Status().Code)
	})
}

func TestTraceSummaryQueries(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := queriesmock.NewMockSummaryQueries(ctrl)
	provider, recorder := newRecordingProvider()
	next.EXPECT().Recent(gomock.Any(), 7).Return(nil, nil)

	_, err := observability.TraceSummaryQueries(next, provider).Recent(context.Background(), 7)
	require.NoError(t, err)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "summaries.recent", spans[0].Name())
}
