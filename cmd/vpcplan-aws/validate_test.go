package main

import (
	"testing"

	vpcplan "github.com/lex00/vpcplan-aws-go"
)

func TestOutputValidateResult_FailureExitsNonZero(t *testing.T) {
	failed := vpcplan.ValidateResult{
		Success: false,
		Errors:  []string{"top-level block must be /16"},
	}

	for _, format := range []string{"text", "json"} {
		if err := outputValidateResult(failed, format); err == nil {
			t.Errorf("outputValidateResult(failed, %q) = nil, want error", format)
		}
	}
}

func TestOutputValidateResult_Success(t *testing.T) {
	ok := vpcplan.ValidateResult{Success: true, Resources: 26}

	for _, format := range []string{"text", "json"} {
		if err := outputValidateResult(ok, format); err != nil {
			t.Errorf("outputValidateResult(ok, %q) = %v, want nil", format, err)
		}
	}

	if err := outputValidateResult(ok, "xml"); err == nil {
		t.Error("outputValidateResult(ok, \"xml\") = nil, want unknown-format error")
	}
}
