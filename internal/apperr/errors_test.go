package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aidaily/ai-daily/internal/apperr"
)

func TestNewValidation(t *testing.T) {
	err := apperr.NewValidation("model name is required")

	if err.Error() != "model name is required" {
		t.Errorf("expected 'model name is required', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestNewValidationWrap(t *testing.T) {
	inner := fmt.Errorf("parse failed")
	err := apperr.NewValidationWrap("invalid push time", inner)

	if err.Error() != "invalid push time: parse failed" {
		t.Errorf("expected 'invalid push time: parse failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestValidationError_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.NewValidation("empty model name")

	wrapped := fmt.Errorf("failed to create: %w", original)
	doubleWrapped := fmt.Errorf("admin error: %w", wrapped)

	var ve *apperr.ValidationError
	if !errors.As(doubleWrapped, &ve) {
		t.Fatal("errors.As should find ValidationError through double wrapping")
	}
	if ve.Message != "empty model name" {
		t.Errorf("expected 'empty model name', got %q", ve.Message)
	}
}

func TestNotFoundError(t *testing.T) {
	err := apperr.NewNotFound("model not found")

	wrapped := fmt.Errorf("delete failed: %w", err)

	var nf *apperr.NotFoundError
	if !errors.As(wrapped, &nf) {
		t.Fatal("errors.As should find NotFoundError through wrapping")
	}
	if nf.Message != "model not found" {
		t.Errorf("expected 'model not found', got %q", nf.Message)
	}
}

func TestUpstreamError(t *testing.T) {
	inner := fmt.Errorf("invalid json")
	err := apperr.NewUpstream("headline generator returned garbage", inner)

	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}

	var ue *apperr.UpstreamError
	if !errors.As(fmt.Errorf("pipeline: %w", err), &ue) {
		t.Fatal("errors.As should find UpstreamError through wrapping")
	}
}

func TestTypesDoNotMatchPlainErrors(t *testing.T) {
	plain := fmt.Errorf("database connection failed")
	wrapped := fmt.Errorf("storage error: %w", plain)

	var ve *apperr.ValidationError
	if errors.As(wrapped, &ve) {
		t.Fatal("errors.As should NOT find ValidationError in plain error chain")
	}
	var nf *apperr.NotFoundError
	if errors.As(wrapped, &nf) {
		t.Fatal("errors.As should NOT find NotFoundError in plain error chain")
	}
}
