package domain

import "testing"

func TestBuildCorridor(t *testing.T) {
	start := SpotLocation{Name: "제주공항", Latitude: 33.5066, Longitude: 126.4931}
	end := SpotLocation{Name: "서귀포", Latitude: 33.2541, Longitude: 126.5601}

	c, err := BuildCorridor(start, end, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.RadiusKm != 12 {
		t.Fatalf("radius = %g, want 12", c.RadiusKm)
	}
	if c.CenterLine[0] != [2]float64{33.5066, 126.4931} {
		t.Fatalf("centerline start = %v", c.CenterLine[0])
	}
	if c.CenterLine[1] != [2]float64{33.2541, 126.5601} {
		t.Fatalf("centerline end = %v", c.CenterLine[1])
	}
}

func TestBuildCorridorDeterministic(t *testing.T) {
	start := SpotLocation{Latitude: 33.5066, Longitude: 126.4931}
	end := SpotLocation{Latitude: 33.2541, Longitude: 126.5601}

	a, err := BuildCorridor(start, end, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := BuildCorridor(start, end, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a != b {
		t.Fatalf("corridor not deterministic: %+v vs %+v", a, b)
	}
}

func TestBuildCorridorRejectsNonPositiveRadius(t *testing.T) {
	start := SpotLocation{Latitude: 33.5, Longitude: 126.5}
	end := SpotLocation{Latitude: 33.3, Longitude: 126.6}

	if _, err := BuildCorridor(start, end, 0); err == nil {
		t.Fatal("expected error for zero radius")
	}
	if _, err := BuildCorridor(start, end, -3); err == nil {
		t.Fatal("expected error for negative radius")
	}
}

func TestBuildCorridorZeroLengthIsValid(t *testing.T) {
	p := SpotLocation{Name: "성산일출봉", Latitude: 33.4581, Longitude: 126.9425}

	c, err := BuildCorridor(p, p, 12)
	if err != nil {
		t.Fatalf("zero-length corridor must be valid, got: %v", err)
	}
	if c.CenterLine[0] != c.CenterLine[1] {
		t.Fatalf("degenerate centerline endpoints differ: %v", c.CenterLine)
	}
}

func TestCatalogSpotOpenNow(t *testing.T) {
	cases := []struct {
		hours string
		want  bool
	}{
		{"", true},
		{"09:00-18:00", true},
		{"closed", false},
		{"월요일 휴무", false},
	}
	for _, tc := range cases {
		s := &CatalogSpot{OperatingHours: tc.hours}
		if got := s.OpenNow(); got != tc.want {
			t.Fatalf("OpenNow(%q) = %v, want %v", tc.hours, got, tc.want)
		}
	}
}
