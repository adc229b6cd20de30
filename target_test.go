package layout

import (
	"testing"
	"unsafe"
)

func TestBuiltinTargets(t *testing.T) {
	tests := []struct {
		name     string
		target   Target
		maxAlign uint32
	}{
		{"lp64", LP64(), 8},
		{"ilp32", ILP32(), 4},
		{"packed", Packed(), 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.target.Name != tc.name {
				t.Errorf("Name = %q, want %q", tc.target.Name, tc.name)
			}
			if tc.target.MaxAlign != tc.maxAlign {
				t.Errorf("MaxAlign = %d, want %d", tc.target.MaxAlign, tc.maxAlign)
			}
		})
	}
}

func TestNativeProbe(t *testing.T) {
	native := Native()

	want := uint32(unsafe.Alignof(uint64(0)))
	if native.MaxAlign != want {
		t.Errorf("MaxAlign = %d, want %d", native.MaxAlign, want)
	}
	if native.MaxAlign != 4 && native.MaxAlign != 8 {
		t.Errorf("MaxAlign = %d, expected 4 or 8", native.MaxAlign)
	}
}

func TestTargetByName(t *testing.T) {
	for _, name := range []string{"native", "lp64", "ilp32", "packed"} {
		t.Run(name, func(t *testing.T) {
			target, err := TargetByName(name)
			if err != nil {
				t.Fatalf("TargetByName(%q): %v", name, err)
			}
			if target.Name != name {
				t.Errorf("Name = %q, want %q", target.Name, name)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		if _, err := TargetByName("pdp11"); err == nil {
			t.Error("expected error for unknown target")
		}
	})
}

func TestTargetsOrder(t *testing.T) {
	targets := Targets()
	if len(targets) != 4 {
		t.Fatalf("Targets() returned %d entries, want 4", len(targets))
	}
	if targets[0].Name != "native" {
		t.Errorf("first target = %q, want native", targets[0].Name)
	}
}
