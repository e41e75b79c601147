package schema

// Default physical parameters for observation models.
const (
	// DefaultSubstrateConc is the assumed substrate concentration [S] in
	// molar units when an assay does not report one.
	DefaultSubstrateConc = 1e-6

	// DefaultMichaelisConstant is the assumed Michaelis constant Km when an
	// assay does not report one.
	DefaultMichaelisConstant = 1.0

	// DefaultInhibitorConc is the assumed inhibitor concentration [I] in
	// molar units. KinomeScan-style assays run at a single ~1 uM
	// concentration, normalized to 1 here.
	DefaultInhibitorConc = 1.0
)

// ObservationParams carries the named physical parameters observation model
// formulas may consume. Formulas read only the fields relevant to their
// relation and ignore the rest.
type ObservationParams struct {
	// SubstrateConc is the substrate concentration [S] in molar units,
	// used by the Cheng-Prusoff pIC50 relation.
	SubstrateConc float64

	// MichaelisConstant is the Michaelis constant Km of the enzymatic
	// reaction, used by the Cheng-Prusoff pIC50 relation.
	MichaelisConstant float64

	// InhibitorConc is the inhibitor concentration [I] in molar units.
	InhibitorConc float64
}

// DefaultObservationParams returns the documented parameter defaults.
func DefaultObservationParams() ObservationParams {
	return ObservationParams{
		SubstrateConc:     DefaultSubstrateConc,
		MichaelisConstant: DefaultMichaelisConstant,
		InhibitorConc:     DefaultInhibitorConc,
	}
}
