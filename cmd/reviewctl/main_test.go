package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func TestInputText(t *testing.T) {
	text, err := inputText(strings.NewReader("ignored"), []string{"barang", "bagus"})
	assert.Equal(t, err, nil)
	assert.Equal(t, text, "barang bagus")

	text, err = inputText(strings.NewReader("dari stdin\n"), nil)
	assert.Equal(t, err, nil)
	assert.Equal(t, text, "dari stdin\n")
}

func TestRunProbes_IndependentFailures(t *testing.T) {
	probes := []probe{
		{name: "ok", run: func(ctx context.Context) error { return nil }},
		{name: "bad", run: func(ctx context.Context) error { return errors.New("refused") }},
		{name: "slow", run: func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}},
	}

	results := runProbes(context.Background(), probes, 20*time.Millisecond)
	assert.Equal(t, len(results), 3)
	assert.Equal(t, results[0].name, "ok")
	assert.Equal(t, results[0].err, nil)
	assert.Equal(t, results[1].err.Error(), "refused")
	assert.Equal(t, errors.Is(results[2].err, context.DeadlineExceeded), true)
}

func TestExtractCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"extract", "a"})
	defer rootCmd.SetArgs(nil)

	assert.Equal(t, rootCmd.Execute(), nil)
	assert.Equal(t, out.String(), "• a\n")
}
