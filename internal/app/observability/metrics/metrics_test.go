package metrics

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	m := Get()
	require.NotNil(t, m)
	assert.Same(t, m, Get())

	assert.NotPanics(t, func() {
		m.DashboardRendersTotal.Add(context.Background(), 1)
		m.TemplateRenderDuration.Record(context.Background(), 0.001)
	})
}
