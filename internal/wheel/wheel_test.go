package wheel

import "testing"

func TestConstants(t *testing.T) {
	if StripSize != 25 {
		t.Errorf("StripSize = %d, want 25", StripSize)
	}
	if ChosenIndex != 22 {
		t.Errorf("ChosenIndex = %d, want 22", ChosenIndex)
	}
	if SpinDurationMS != 2800 || RevealDelayMS != 400 {
		t.Errorf("timings = %d/%d, want 2800/400", SpinDurationMS, RevealDelayMS)
	}
}

func TestBuildStrip(t *testing.T) {
	chosen := Card{ID: 7, Subject: "Matematik", Topic: "Türev"}
	decoys := []Card{
		{ID: 1, Subject: "Fizik"},
		{ID: 2, Subject: "Kimya"},
		{ID: 3, Subject: "Biyoloji"},
	}

	strip := BuildStrip(chosen, decoys)

	if len(strip) != StripSize {
		t.Fatalf("len(strip) = %d, want %d", len(strip), StripSize)
	}
	if strip[ChosenIndex] != chosen {
		t.Errorf("strip[%d] = %+v, want the chosen card", ChosenIndex, strip[ChosenIndex])
	}
	// Everything else cycles through the decoy pool.
	for i, c := range strip {
		if i == ChosenIndex {
			continue
		}
		if c != decoys[i%len(decoys)] {
			t.Errorf("strip[%d] = %+v, want %+v", i, c, decoys[i%len(decoys)])
		}
	}
}

func TestBuildStripNoDecoys(t *testing.T) {
	chosen := Card{ID: 9, Subject: "Tarih"}
	strip := BuildStrip(chosen, nil)

	if len(strip) != StripSize {
		t.Fatalf("len(strip) = %d, want %d", len(strip), StripSize)
	}
	for i, c := range strip {
		if c != chosen {
			t.Errorf("strip[%d] = %+v, want the chosen card repeated", i, c)
		}
	}
}
