package cpu

import (
	"runtime"
	"testing"
)

func TestDetectFeatures(t *testing.T) {
	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Fatalf("architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}
	if f.SIMDLabel() == "" {
		t.Fatal("empty SIMD label")
	}
}
