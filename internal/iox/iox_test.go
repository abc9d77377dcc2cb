package iox

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestReadAllContext(t *testing.T) {
	t.Run("with working reader", func(t *testing.T) {
		data, err := ReadAllContext(context.Background(), strings.NewReader("deadbeef"))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "deadbeef" {
			t.Fatal("unexpected data", string(data))
		}
	})

	t.Run("with failing reader", func(t *testing.T) {
		expected := errors.New("mocked error")
		reader := &MockableReader{
			MockRead: func(b []byte) (int, error) {
				return 0, expected
			},
		}
		data, err := ReadAllContext(context.Background(), reader)
		if !errors.Is(err, expected) {
			t.Fatal("not the error we expected", err)
		}
		if data != nil {
			t.Fatal("expected nil data")
		}
	})

	t.Run("with cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel() // fail immediately
		reader := &MockableReader{
			MockRead: func(b []byte) (int, error) {
				select {} // block forever
			},
		}
		data, err := ReadAllContext(ctx, reader)
		if !errors.Is(err, context.Canceled) {
			t.Fatal("not the error we expected", err)
		}
		if data != nil {
			t.Fatal("expected nil data")
		}
	})
}
