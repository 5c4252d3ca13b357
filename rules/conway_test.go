package rules

import "testing"

// go test -run ^TestStayAlive$ ./rules -count 1
func TestStayAlive(t *testing.T) {
	for n := 0; n <= 8; n++ {
		want := n == 2 || n == 3
		if got := StayAlive(n); got != want {
			t.Errorf("StayAlive(%d): expected %v, got %v", n, want, got)
		}
	}
}

// go test -run ^TestComeAlive$ ./rules -count 1
func TestComeAlive(t *testing.T) {
	for n := 0; n <= 8; n++ {
		want := n == 3
		if got := ComeAlive(n); got != want {
			t.Errorf("ComeAlive(%d): expected %v, got %v", n, want, got)
		}
	}
}

func TestApplyConwayRules(t *testing.T) {
	tests := []struct {
		name      string
		neighbors int
		alive     bool
		want      bool
	}{
		{"lonely live cell dies", 1, true, false},
		{"live cell with two survives", 2, true, true},
		{"live cell with three survives", 3, true, true},
		{"crowded live cell dies", 4, true, false},
		{"dead cell with two stays dead", 2, false, false},
		{"dead cell with three is born", 3, false, true},
		{"dead cell with six stays dead", 6, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyConwayRules(tt.neighbors, tt.alive); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
