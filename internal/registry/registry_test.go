package registry_test

import (
	"testing"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/registry"
	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/internal/testutil"
)

func TestRegisterAndGet(t *testing.T) {
	r := registry.NewPredictorRegistry()

	if err := r.Register(&testutil.StubPredictor{Name: "xgboost"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&testutil.StubPredictor{Name: "nn", Normalized: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Count() != 2 {
		t.Errorf("count = %d, want 2", r.Count())
	}

	p, ok := r.Get("xgboost")
	if !ok || p.Key() != "xgboost" {
		t.Errorf("Get(xgboost) = %v, %v", p, ok)
	}
	if _, ok := r.Get("missing"); ok {
		t.Error("unexpected hit for unregistered key")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := registry.NewPredictorRegistry()

	if err := r.Register(&testutil.StubPredictor{Name: "xgboost"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&testutil.StubPredictor{Name: "xgboost"}); err == nil {
		t.Fatal("expected error for duplicate registration")
	}
}

func TestGetAllPreservesRegistrationOrder(t *testing.T) {
	r := registry.NewPredictorRegistry()
	r.Register(&testutil.StubPredictor{Name: "xgboost"})
	r.Register(&testutil.StubPredictor{Name: "nn"})

	all := r.GetAll()
	if len(all) != 2 || all[0].Key() != "xgboost" || all[1].Key() != "nn" {
		t.Errorf("GetAll order = %v", all)
	}
}
