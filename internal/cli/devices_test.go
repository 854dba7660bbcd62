package cli

import "testing"

func TestFormatProperties(t *testing.T) {
	props := map[string]string{
		"transport_id": "1",
		"model":        "sdk_gphone64_x86_64",
		"product":      "sdk_gphone64_x86_64",
	}

	got := formatProperties(props)
	want := "model:sdk_gphone64_x86_64 product:sdk_gphone64_x86_64 transport_id:1"
	if got != want {
		t.Errorf("formatProperties = %q, want %q", got, want)
	}
}

func TestFormatPropertiesEmpty(t *testing.T) {
	if got := formatProperties(nil); got != "" {
		t.Errorf("formatProperties(nil) = %q, want empty", got)
	}
}
