package url

import "testing"

func TestRegistrableDomain(t *testing.T) {
	tests := []struct {
		input    string
		want     string
		wantOK   bool
		diverges bool
	}{
		{input: "ads.tracker.com", want: "tracker.com", wantOK: true},
		{input: "foo.co.uk", want: "foo.co.uk", wantOK: true, diverges: true},
		{input: "shop.example.co.uk", want: "example.co.uk", wantOK: true, diverges: true},
		{input: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := RegistrableDomain(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Fatalf("RegistrableDomain(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
			if d := HeuristicDiverges(tt.input); d != tt.diverges {
				t.Errorf("HeuristicDiverges(%q) = %v, want %v", tt.input, d, tt.diverges)
			}
		})
	}
}
