package registry

import (
	"fmt"
	"sync"

	"github.com/XavierBriggs/fortuna/services/prediction-pipeline/pkg/contracts"
)

// PredictorRegistry manages registered prediction models
type PredictorRegistry struct {
	predictors map[string]contracts.Predictor
	keys       []string
	mu         sync.RWMutex
}

// NewPredictorRegistry creates a new predictor registry
func NewPredictorRegistry() *PredictorRegistry {
	return &PredictorRegistry{
		predictors: make(map[string]contracts.Predictor),
	}
}

// Register adds a predictor to the registry
func (r *PredictorRegistry) Register(predictor contracts.Predictor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := predictor.Key()
	if _, exists := r.predictors[key]; exists {
		return fmt.Errorf("predictor %s is already registered", key)
	}

	r.predictors[key] = predictor
	r.keys = append(r.keys, key)
	return nil
}

// Get retrieves a predictor by key
func (r *PredictorRegistry) Get(key string) (contracts.Predictor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	predictor, exists := r.predictors[key]
	return predictor, exists
}

// GetAll returns all registered predictors in registration order
func (r *PredictorRegistry) GetAll() []contracts.Predictor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	predictors := make([]contracts.Predictor, 0, len(r.keys))
	for _, key := range r.keys {
		predictors = append(predictors, r.predictors[key])
	}
	return predictors
}

// Count returns the number of registered predictors
func (r *PredictorRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.predictors)
}
