// Package scada defines the simulation-output collaborator: raw
// per-timestep arrays addressable by quantity name, as produced by an
// external hydraulic/water-quality simulation.
package scada

// SimulationOutput supplies per-timestep per-link matrices by quantity.
// Each matrix is (timesteps x links) in topology link order.
type SimulationOutput interface {
	FlowRates() [][]float64
	LinkQuality() [][]float64
}

// Results is an in-memory SimulationOutput holding raw arrays exactly
// as delivered by a simulation run.
type Results struct {
	Flow    [][]float64
	Quality [][]float64
}

// FlowRates returns the raw flow-rate matrix.
func (r *Results) FlowRates() [][]float64 { return r.Flow }

// LinkQuality returns the raw link-quality matrix.
func (r *Results) LinkQuality() [][]float64 { return r.Quality }
