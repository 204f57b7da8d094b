package jsengine

import (
	"errors"
	"io"
	"testing"
)

func TestCallbackNotFoundError_Error(t *testing.T) {
	err := &CallbackNotFoundError{ID: 42}
	if err.Error() != "callback id 42 not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestOrphanResponseError_Error(t *testing.T) {
	err := &OrphanResponseError{TaskID: 7}
	want := "no pending context for task 7, discarding response"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrapError_PreservesCauseChain(t *testing.T) {
	wrapped := WrapError("context failed", io.EOF)
	if !errors.Is(wrapped, io.EOF) {
		t.Error("WrapError's result should satisfy errors.Is against the cause")
	}
}

func TestUnroutableTaskError_Error(t *testing.T) {
	err := &UnroutableTaskError{Source: TaskSource(99), TaskID: 5}
	if err.Error() == "" {
		t.Error("Error() should not be empty")
	}
}
