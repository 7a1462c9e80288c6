package model

import (
	"testing"

	fuzzyerrors "github.com/fuzzyml/fuzzygo/pkg/errors"
)

func TestStateManager_Lifecycle(t *testing.T) {
	s := NewStateManager()

	if s.IsFitted() {
		t.Error("new state manager must not be fitted")
	}

	if err := s.RequireFitted("Model", "Predict"); err == nil {
		t.Fatal("RequireFitted should fail before fitting")
	} else {
		var notFitted *fuzzyerrors.NotFittedError
		if !fuzzyerrors.As(err, &notFitted) {
			t.Errorf("expected NotFittedError, got %v", err)
		}
	}

	s.SetDimensions(4, 100)
	s.SetFitted()

	if !s.IsFitted() {
		t.Error("state manager should be fitted after SetFitted")
	}
	if err := s.RequireFitted("Model", "Predict"); err != nil {
		t.Errorf("RequireFitted after fit = %v, want nil", err)
	}

	nFeatures, nSamples := s.Dimensions()
	if nFeatures != 4 || nSamples != 100 {
		t.Errorf("Dimensions = (%d, %d), want (4, 100)", nFeatures, nSamples)
	}

	s.Reset()
	if s.IsFitted() {
		t.Error("state manager should not be fitted after Reset")
	}
}
