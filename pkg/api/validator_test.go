package api

import (
	"encoding/json"
	"math"
	"testing"
)

func TestParseCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := ParseCommand([]byte(`{"action":"INTENT","payload":{"move":[1,0,0]}}`))
		if err != nil {
			t.Fatalf("ParseCommand failed: %v", err)
		}
		if cmd.Action != ActionIntent {
			t.Errorf("Expected INTENT, got %s", cmd.Action)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		if _, err := ParseCommand([]byte(`{"action":"TELEPORT"}`)); err == nil {
			t.Error("Expected error for unknown action")
		}
	})

	t.Run("malformed json", func(t *testing.T) {
		if _, err := ParseCommand([]byte(`{"action":`)); err == nil {
			t.Error("Expected error for malformed json")
		}
	})
}

func TestDecodeIntent(t *testing.T) {
	t.Run("oversized move vector is clamped", func(t *testing.T) {
		in, err := DecodeIntent(json.RawMessage(`{"move":[3,0,4]}`))
		if err != nil {
			t.Fatalf("DecodeIntent failed: %v", err)
		}
		l := math.Sqrt(in.Move[0]*in.Move[0] + in.Move[2]*in.Move[2])
		if math.Abs(l-1) > 1e-9 {
			t.Errorf("Expected unit length, got %f", l)
		}
	})

	t.Run("unit vector passes through", func(t *testing.T) {
		in, err := DecodeIntent(json.RawMessage(`{"move":[0.6,0,0.8],"sprint":true}`))
		if err != nil {
			t.Fatalf("DecodeIntent failed: %v", err)
		}
		if in.Move[0] != 0.6 || in.Move[2] != 0.8 {
			t.Errorf("Expected vector preserved, got %v", in.Move)
		}
		if !in.Sprint {
			t.Error("Expected sprint flag")
		}
	})

	t.Run("non-finite input rejected", func(t *testing.T) {
		// JSON не умеет NaN, но клиент может прислать огромную экспоненту
		if _, err := DecodeIntent(json.RawMessage(`{"move":[1e999,0,0]}`)); err == nil {
			t.Error("Expected error for non-finite move")
		}
	})
}

func TestDecodeSpawn(t *testing.T) {
	t.Run("valid spawn", func(t *testing.T) {
		sp, err := DecodeSpawn(json.RawMessage(`{"species":"otter","level":2,"pos":[1,0,2]}`))
		if err != nil {
			t.Fatalf("DecodeSpawn failed: %v", err)
		}
		if sp.Species != "otter" || sp.Level != 2 {
			t.Errorf("Unexpected payload: %+v", sp)
		}
	})

	t.Run("missing species", func(t *testing.T) {
		if _, err := DecodeSpawn(json.RawMessage(`{"pos":[0,0,0]}`)); err == nil {
			t.Error("Expected error for missing species")
		}
	})

	t.Run("negative level", func(t *testing.T) {
		if _, err := DecodeSpawn(json.RawMessage(`{"species":"otter","level":-1}`)); err == nil {
			t.Error("Expected error for negative level")
		}
	})
}

func TestDecodeEquipAndGather(t *testing.T) {
	t.Run("equip requires slot", func(t *testing.T) {
		if _, err := DecodeEquip(json.RawMessage(`{}`)); err == nil {
			t.Error("Expected error for missing slot")
		}
	})

	t.Run("gather requires resource id", func(t *testing.T) {
		if _, err := DecodeGather(json.RawMessage(`{}`)); err == nil {
			t.Error("Expected error for missing resource id")
		}
	})

	t.Run("valid gather", func(t *testing.T) {
		g, err := DecodeGather(json.RawMessage(`{"resourceId":"cattails-x"}`))
		if err != nil {
			t.Fatalf("DecodeGather failed: %v", err)
		}
		if g.ResourceID != "cattails-x" {
			t.Errorf("Unexpected resource id %s", g.ResourceID)
		}
	})
}
