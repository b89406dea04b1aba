package pricing

import "testing"

func TestComputeTotal(t *testing.T) {
	cases := []struct {
		name      string
		unitPrice float64
		quantity  int
		want      float64
	}{
		{"typical order", 10, 4, 40},
		{"single copy", 12.5, 1, 12.5},
		{"zero quantity", 10, 0, 0},
		{"free book", 0, 3, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ComputeTotal(tc.unitPrice, tc.quantity); got != tc.want {
				t.Errorf("ComputeTotal(%v, %d) = %v, want %v", tc.unitPrice, tc.quantity, got, tc.want)
			}
		})
	}
}
