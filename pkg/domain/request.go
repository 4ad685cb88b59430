package domain

// PredictRequest carries the user supplied values for a predict-scan run.
// Sequence and Allele are expected to be validated before a command is built.
type PredictRequest struct {
	Sequence string
	Allele   string
	Output   string
}
