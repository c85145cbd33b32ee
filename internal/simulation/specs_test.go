package simulation

import "testing"

func TestDefaultSimulationSpecsDerived(t *testing.T) {
	s := DefaultSimulationSpecs()

	if s.NSteps != 100 {
		t.Errorf("expected NSteps 100, got %d", s.NSteps)
	}
	wantSubDt := float32(0.1) / 5
	if s.SubStepDt != wantSubDt {
		t.Errorf("expected SubStepDt %f, got %f", wantSubDt, s.SubStepDt)
	}
}

func TestSetFramerateRecomputesDependents(t *testing.T) {
	s := DefaultSimulationSpecs()
	s.SetFramerate(60)

	wantDt := float32(1.0 / 60.0)
	if s.Dt != wantDt {
		t.Errorf("expected Dt %f, got %f", wantDt, s.Dt)
	}
	wantSteps := uint32(s.SimTime / s.Dt)
	if s.NSteps != wantSteps {
		t.Errorf("expected NSteps %d, got %d", wantSteps, s.NSteps)
	}
}

func TestSetNSubStepsRecomputesSubStepDt(t *testing.T) {
	s := DefaultSimulationSpecs()
	s.SetNSubSteps(10)

	wantSubDt := s.Dt / 10
	if s.SubStepDt != wantSubDt {
		t.Errorf("expected SubStepDt %f, got %f", wantSubDt, s.SubStepDt)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	s := DefaultSimulationSpecs()
	clone := s.Clone()
	clone.NParticles = 42

	if s.NParticles == 42 {
		t.Error("expected original NParticles to be unaffected by clone mutation")
	}
}

func TestSpawnRadiusSquared(t *testing.T) {
	s := DefaultSimulationSpecs()
	s.SpawnRadius = 0.5

	if got, want := s.SpawnRadiusSquared(), float32(0.25); got != want {
		t.Errorf("expected %f, got %f", want, got)
	}
}
