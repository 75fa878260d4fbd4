package get_names_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getNames "prenota/internal/usecase/get_names"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeLedger struct {
	names []string
	err   error
	calls int
}

func (f *fakeLedger) FetchNames(ctx context.Context) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.names, nil
}

func Test_GetNames_DelegatesWithoutCaching(t *testing.T) {
	ledger := &fakeLedger{names: []string{"Alice", "Bob"}}
	uc := getNames.NewUseCase(ledger, nopLogger{})

	names, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, names)

	// Every call goes to the ledger: the projection is always fresh
	_, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, ledger.calls)
}

func Test_GetNames_LedgerUnavailable(t *testing.T) {
	ledger := &fakeLedger{err: errors.New("sheets down")}
	uc := getNames.NewUseCase(ledger, nopLogger{})

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, getNames.ErrLedgerUnavailable)
}
