package bench

import (
	"path/filepath"
	"testing"
)

func TestStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.db")

	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store.Close()

	sweep := Sweep{Start: 0, End: 0.5, Step: 0.1, Iterations: 50}
	samples, err := sweep.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	runID, err := store.SaveRun(sweep, samples)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if runID == "" {
		t.Fatal("Expected non-empty run id")
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 run, got %d", n)
	}

	loaded, err := store.LoadSamples(runID)
	if err != nil {
		t.Fatalf("LoadSamples: %v", err)
	}
	if len(loaded) != len(samples) {
		t.Fatalf("Expected %d samples, got %d", len(samples), len(loaded))
	}
	for i, s := range loaded {
		if s.Theta != samples[i].Theta {
			t.Errorf("Sample %d theta = %g, want %g", i, s.Theta, samples[i].Theta)
		}
		if s.CordicSin != samples[i].CordicSin {
			t.Errorf("Sample %d cordic sin = %g, want %g", i, s.CordicSin, samples[i].CordicSin)
		}
	}
}

func TestStoreMultipleRuns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.db")

	store, err := OpenStore(path)
	if err != nil {
		t.Fatalf("OpenStore: %v", err)
	}
	defer store.Close()

	sweep := Sweep{Start: 0, End: 0.2, Step: 0.1, Iterations: 20}
	samples, err := sweep.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	id1, err := store.SaveRun(sweep, samples)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	id2, err := store.SaveRun(sweep, samples)
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if id1 == id2 {
		t.Error("Expected distinct run ids")
	}

	n, err := store.RunCount()
	if err != nil {
		t.Fatalf("RunCount: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 runs, got %d", n)
	}
}
