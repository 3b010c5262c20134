package utils_test

import (
	"strings"
	"testing"

	"github.com/Bilal-BS/AI-english-Teacher-sub000/utils"
)

func TestBuildCorrectionCacheKey(t *testing.T) {
	t.Parallel()

	a := utils.BuildCorrectionCacheKey("Hello, World!")
	b := utils.BuildCorrectionCacheKey("hello world")
	if a != b {
		t.Errorf("keys differ for equivalent texts: %q vs %q", a, b)
	}

	if !strings.HasPrefix(a, "correction:") {
		t.Errorf("key %q missing correction: prefix", a)
	}

	c := utils.BuildCorrectionCacheKey("a different text")
	if a == c {
		t.Error("different texts produced the same key")
	}
}
