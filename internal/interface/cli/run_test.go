package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"payflow/internal/domain/flow"
	"payflow/internal/usecase/steps"
)

func TestCompletionBannerShownOnce(t *testing.T) {
	runner := steps.NewRunner(nil, nil, nil)
	session := &runSession{runner: runner}

	assert.Empty(t, session.completionBanner(), "no banner before the flow finishes")

	for s := flow.Step(0); s.IsValid(); s++ {
		runner.State().Complete(s)
	}

	assert.NotEmpty(t, session.completionBanner(), "banner on the completion transition")
	assert.Empty(t, session.completionBanner(), "banner must not repeat")
	assert.Empty(t, session.completionBanner())
}
