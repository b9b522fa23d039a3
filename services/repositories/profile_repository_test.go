package repositories

import (
	"testing"

	"github.com/ascend-app/ascend_api/shared"
)

func TestDecodeAttributes(t *testing.T) {
	t.Run("empty document zeroes every attribute", func(t *testing.T) {
		attrs := DecodeAttributes(nil)
		for _, name := range shared.AttributeNames {
			if attrs[name] != 0 {
				t.Errorf("%s = %d, want 0", name, attrs[name])
			}
		}
	})

	t.Run("corrupt document zeroes every attribute", func(t *testing.T) {
		attrs := DecodeAttributes([]byte("{not json"))
		for _, name := range shared.AttributeNames {
			if attrs[name] != 0 {
				t.Errorf("%s = %d, want 0", name, attrs[name])
			}
		}
	})

	t.Run("missing keys are filled in", func(t *testing.T) {
		attrs := DecodeAttributes([]byte(`{"strength": 3}`))
		if attrs["strength"] != 3 {
			t.Errorf("strength = %d, want 3", attrs["strength"])
		}
		if attrs["social"] != 0 {
			t.Errorf("social = %d, want 0", attrs["social"])
		}
		if len(attrs) != len(shared.AttributeNames) {
			t.Errorf("len = %d, want %d", len(attrs), len(shared.AttributeNames))
		}
	})

	t.Run("round trip", func(t *testing.T) {
		attrs := DecodeAttributes(DefaultAttributes())
		attrs["vitality"] = 7
		again := DecodeAttributes(EncodeAttributes(attrs))
		if again["vitality"] != 7 {
			t.Errorf("vitality = %d, want 7", again["vitality"])
		}
	})
}
