package platform

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		goos string
		env  map[string]string
		want Kind
	}{
		{"darwin", "darwin", nil, Darwin},
		{"linux wayland", "linux", map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, LinuxWayland},
		{"linux x11", "linux", map[string]string{"DISPLAY": ":0"}, LinuxX11},
		{"wayland wins over x11", "linux", map[string]string{"WAYLAND_DISPLAY": "wayland-0", "DISPLAY": ":0"}, LinuxWayland},
		{"linux headless", "linux", nil, LinuxHeadless},
		{"windows", "windows", nil, Unsupported},
		{"plan9", "plan9", nil, Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			if got := Detect(tt.goos, getenv); got != tt.want {
				t.Fatalf("Detect(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if Unsupported.String() != "unsupported" {
		t.Fatalf("unexpected string: %s", Unsupported)
	}
	if Darwin.String() == "" || LinuxWayland.String() == "" {
		t.Fatal("expected non-empty names")
	}
}
