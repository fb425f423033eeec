package mongodb

import (
	"context"
	"errors"
	"testing"
)

func TestConnect_MissingURI(t *testing.T) {
	_, _, err := Connect(context.Background(), "", "products")
	if !errors.Is(err, ErrMissingURI) {
		t.Fatalf("expected ErrMissingURI, got %v", err)
	}
}

func TestConnect_BadURI(t *testing.T) {
	_, _, err := Connect(context.Background(), "not-a-mongo-uri", "products")
	if err == nil {
		t.Fatalf("expected error for malformed uri")
	}
}
