// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestRunIDCtxKey(t *testing.T) {
	if RunIDCtxKey.String() != "runID" {
		t.Errorf("expected 'runID', got '%s'", RunIDCtxKey.String())
	}
}

func TestGetRunIDFromContext_Success(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-1")

	runID, ok := GetRunIDFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if runID != "run-1" {
		t.Errorf("expected 'run-1', got '%s'", runID)
	}
}

func TestGetRunIDFromContext_Missing(t *testing.T) {
	if _, ok := GetRunIDFromContext(context.Background()); ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetRunIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), RunIDCtxKey, 42)
	if _, ok := GetRunIDFromContext(ctx); ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetRunIDFromContext_Empty(t *testing.T) {
	ctx := WithRunID(context.Background(), "")
	if _, ok := GetRunIDFromContext(ctx); ok {
		t.Error("expected ok=false for empty run id")
	}
}
