package dbt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

func fakeExecutor(output string, err error, calls *[][]string) Executor {
	return func(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
		if calls != nil {
			*calls = append(*calls, append([]string{dir, name}, args...))
		}
		return []byte(output), err
	}
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Dbt = config.Dbt{ProjectDir: "transform", Binary: "dbt"}
	return cfg
}

func TestDbtRunner_Run(t *testing.T) {
	output := `
1 of 3 START sql table model marts.fct_category_performance_economics ... [RUN]
1 of 3 OK created sql table model marts.fct_category_performance_economics ... [SELECT 1200 in 0.52s]
2 of 3 OK created sql table model marts.fct_geographic_sales_economics ... [SELECT 800 in 0.31s]
3 of 3 OK created sql table model marts.fct_customer_segments ... [SELECT 96000 in 1.10s]
Done. PASS=3 WARN=0 ERROR=0 SKIP=0 TOTAL=3`

	var calls [][]string
	runner := NewRunnerWithExecutor(testConfig(), fakeExecutor(output, nil, &calls))

	models, err := runner.Run(context.Background(), domain.DbtMartsSelector)
	require.NoError(t, err)
	assert.Equal(t, 3, models)

	require.Len(t, calls, 1)
	assert.Equal(t, []string{"transform", "dbt", "run", "--select", "fct_*", "--project-dir", "transform"}, calls[0])
}

func TestDbtRunner_Run_Falha(t *testing.T) {
	runner := NewRunnerWithExecutor(testConfig(), fakeExecutor("Compilation Error in model stg_orders", errors.New("exit status 1"), nil))

	_, err := runner.Run(context.Background(), domain.DbtStagingSelector)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Compilation Error")
}

func TestDbtRunner_Test(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		execErr  error
		hasError bool
		expected *domain.TestSummary
	}{
		{
			name:     "Todos os testes passando",
			output:   "Done. PASS=42 WARN=0 ERROR=0 SKIP=0 TOTAL=42",
			expected: &domain.TestSummary{Passed: 42, Total: 42, Status: domain.TestStatusSuccess},
		},
		{
			name:     "Avisos resultam em WARNING",
			output:   "Done. PASS=40 WARN=2 ERROR=0 SKIP=0 TOTAL=42",
			expected: &domain.TestSummary{Passed: 40, Warned: 2, Total: 42, Status: domain.TestStatusWarning},
		},
		{
			name:     "Saída com erro e resumo não é erro de execução",
			output:   "Failure in test unique_orders\nDone. PASS=39 WARN=1 ERROR=2 SKIP=0 TOTAL=42",
			execErr:  errors.New("exit status 1"),
			expected: &domain.TestSummary{Passed: 39, Warned: 1, Errors: 2, Total: 42, Status: domain.TestStatusFailed},
		},
		{
			name:     "Resumo sem SKIP também é aceito",
			output:   "Done. PASS=5 WARN=0 ERROR=0 TOTAL=5",
			expected: &domain.TestSummary{Passed: 5, Total: 5, Status: domain.TestStatusSuccess},
		},
		{
			name:     "Falha sem resumo é erro",
			output:   "command not found",
			execErr:  errors.New("exit status 127"),
			hasError: true,
		},
		{
			name:     "Saída sem resumo é erro",
			output:   "nothing to do",
			hasError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := NewRunnerWithExecutor(testConfig(), fakeExecutor(tt.output, tt.execErr, nil))

			summary, err := runner.Test(context.Background())
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, summary)
		})
	}
}
