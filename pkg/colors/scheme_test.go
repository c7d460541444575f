package colors

import (
	"path/filepath"
	"testing"
)

func TestPresets(t *testing.T) {
	epanet := EPANET()
	if epanet.PipeColor != "#0403ee" || epanet.PumpColor != "#fe00ff" {
		t.Errorf("EPANET preset changed: %+v", epanet)
	}

	house := Default()
	if house.NodeColor != "#29222f" || house.ValveColor != "#a3320b" {
		t.Errorf("Default preset changed: %+v", house)
	}

	black := AllBlack()
	for _, c := range []string{
		black.PipeColor, black.NodeColor, black.PumpColor,
		black.TankColor, black.ReservoirColor, black.ValveColor,
	} {
		if c != "#000000" {
			t.Errorf("AllBlack has non-black color %q", c)
		}
	}

	for _, s := range []Scheme{epanet, house, black} {
		if err := s.Validate(); err != nil {
			t.Errorf("Preset failed validation: %v", err)
		}
	}
}

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		want    Scheme
		wantErr bool
	}{
		{"epanet", EPANET(), false},
		{"default", Default(), false},
		{"", Default(), false},
		{"black", AllBlack(), false},
		{"neon", Scheme{}, true},
	}

	for _, tt := range tests {
		got, err := ByName(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ByName(%q) expected error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("ByName(%q) failed: %v", tt.name, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ByName(%q) = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestValidateRejectsMissingColor(t *testing.T) {
	s := EPANET()
	s.TankColor = ""
	if err := s.Validate(); err == nil {
		t.Error("Expected validation error for missing tank color")
	}
}

func TestSchemeFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.json")

	want := Default()
	if err := want.SaveFile(path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	got, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if got != want {
		t.Errorf("Round trip changed scheme: got %+v, want %+v", got, want)
	}
}

func TestLoadFileRejectsIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scheme.json")
	s := Scheme{PipeColor: "#111111"}
	if err := s.SaveFile(path); err != nil {
		t.Fatalf("SaveFile failed: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("Expected validation error for incomplete scheme")
	}
}
