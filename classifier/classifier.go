package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

// Model is a pre-trained Bernoulli naive-Bayes classifier over a fixed,
// ordered list of symptom labels. It is loaded once at startup and is
// read-only afterwards, so it is safe to share across requests.
type Model struct {
	SymptomLabels []string                      `json:"symptoms"`
	Conditions    []string                      `json:"conditions"`
	Priors        map[string]float64            `json:"priors"`
	Likelihoods   map[string]map[string]float64 `json:"likelihoods"`
}

var ErrVectorLength = errors.New("feature vector length does not match model symptom count")

// Load reads a trained model artifact from disk and validates it.
func Load(path string) (*Model, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact: %w", err)
	}
	var m Model
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse model artifact: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, fmt.Errorf("invalid model artifact: %w", err)
	}
	return &m, nil
}

func (m *Model) validate() error {
	if len(m.SymptomLabels) == 0 {
		return errors.New("no symptoms")
	}
	if len(m.Conditions) == 0 {
		return errors.New("no conditions")
	}
	for _, c := range m.Conditions {
		p, ok := m.Priors[c]
		if !ok || p <= 0 {
			return fmt.Errorf("condition %q has no positive prior", c)
		}
		probs, ok := m.Likelihoods[c]
		if !ok {
			return fmt.Errorf("condition %q has no likelihoods", c)
		}
		for _, s := range m.SymptomLabels {
			lp, ok := probs[s]
			if !ok || lp <= 0 || lp >= 1 {
				return fmt.Errorf("condition %q symptom %q likelihood must be in (0, 1)", c, s)
			}
		}
	}
	return nil
}

// Symptoms returns the fixed ordered symptom labels the model was trained on.
func (m *Model) Symptoms() []string {
	return m.SymptomLabels
}

// FeatureVector builds a binary vector aligned to the model's symptom
// ordering: 1 if the symptom was selected, 0 otherwise. Unknown labels in
// the input are ignored.
func (m *Model) FeatureVector(selected []string) []int {
	set := make(map[string]bool, len(selected))
	for _, s := range selected {
		set[s] = true
	}
	vector := make([]int, len(m.SymptomLabels))
	for i, label := range m.SymptomLabels {
		if set[label] {
			vector[i] = 1
		}
	}
	return vector
}

// Predict returns the most likely condition for a binary feature vector
// together with its confidence: the maximum class probability as a
// percentage, rounded to 2 decimal places. Confidence is always in [0, 100].
func (m *Model) Predict(vector []int) (string, float64, error) {
	if len(vector) != len(m.SymptomLabels) {
		return "", 0, ErrVectorLength
	}

	posteriors := make([]float64, len(m.Conditions))
	var total float64
	for i, c := range m.Conditions {
		p := m.Priors[c]
		probs := m.Likelihoods[c]
		for j, label := range m.SymptomLabels {
			if vector[j] == 1 {
				p *= probs[label]
			} else {
				p *= 1 - probs[label]
			}
		}
		posteriors[i] = p
		total += p
	}

	best := 0
	for i := range posteriors {
		if posteriors[i] > posteriors[best] {
			best = i
		}
	}

	confidence := math.Round(posteriors[best]/total*100*100) / 100
	return m.Conditions[best], confidence, nil
}
