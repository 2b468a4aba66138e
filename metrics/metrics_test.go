package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRegister_Idempotent(t *testing.T) {
	assert.NotPanics(t, func() {
		Register()
		Register()
	})
}

func TestSuggestionsTotal_LabeledByOutcome(t *testing.T) {
	before := testutil.ToFloat64(SuggestionsTotal.WithLabelValues("fallback"))

	SuggestionsTotal.WithLabelValues("fallback").Inc()

	assert.Equal(t, before+1, testutil.ToFloat64(SuggestionsTotal.WithLabelValues("fallback")))
}
