package render

import (
	"path/filepath"
	"testing"
)

func TestTargetFor_DeviceByExtension(t *testing.T) {
	tests := []struct {
		path string
		want DeviceKind
	}{
		{"report.ps", Postscript},
		{"report.eps", Postscript},
		{"report.PS", Postscript},
		{"report.jpg", JPEG},
		{"report.jpeg", JPEG},
		{"report.png", PNG},
		{"report", PNG},
		{"report.svg", PNG},
		{"dir.ps/report", PNG},
	}

	for _, tt := range tests {
		target := TargetFor(tt.path)
		if target.Device != tt.want {
			t.Errorf("TargetFor(%q).Device = %v, want %v", tt.path, target.Device, tt.want)
		}
		if target.AutoTemp {
			t.Errorf("TargetFor(%q).AutoTemp = true, want false", tt.path)
		}
		if target.Path != tt.path {
			t.Errorf("TargetFor(%q).Path = %q", tt.path, target.Path)
		}
	}
}

func TestDefaultTarget(t *testing.T) {
	target := DefaultTarget()

	if !target.AutoTemp {
		t.Error("DefaultTarget().AutoTemp = false, want true")
	}
	if target.Device != PNG {
		t.Errorf("DefaultTarget().Device = %v, want PNG", target.Device)
	}
	if filepath.Base(target.Path) != DefaultTargetName {
		t.Errorf("DefaultTarget().Path = %q, want base %q", target.Path, DefaultTargetName)
	}
}
