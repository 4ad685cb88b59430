package domain

import (
	"fmt"
	"strconv"
)

// Operation identifies one of the wrapper's menu entries.
type Operation int

// Menu order matters: the index shown to the user is the Operation value.
const (
	OpPredictScan Operation = iota
	OpDownloadsInfo
	OpDownloadsFetch
	OpSetupEnv
	OpTeardownEnv

	operationCount
)

var operationLabels = [operationCount]string{
	OpPredictScan:    "mhcflurry-predict-scan",
	OpDownloadsInfo:  "mhcflurry-downloads info",
	OpDownloadsFetch: "mhcflurry-downloads fetch",
	OpSetupEnv:       "set up environment",
	OpTeardownEnv:    "teardown environment",
}

// Operations returns every operation in menu order.
func Operations() []Operation {
	ops := make([]Operation, 0, operationCount)
	for op := Operation(0); op < operationCount; op++ {
		ops = append(ops, op)
	}
	return ops
}

// Valid reports whether op is one of the known operations.
func (op Operation) Valid() bool {
	return op >= 0 && op < operationCount
}

// NeedsInputs reports whether the operation requires a PredictRequest.
func (op Operation) NeedsInputs() bool {
	return op == OpPredictScan
}

func (op Operation) String() string {
	if !op.Valid() {
		return "Operation(" + strconv.Itoa(int(op)) + ")"
	}
	return operationLabels[op]
}

// ParseOperation resolves a menu index into an Operation.
func ParseOperation(index int) (Operation, error) {
	op := Operation(index)
	if !op.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownOperation, index)
	}
	return op, nil
}
