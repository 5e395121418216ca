// Package dbt executa o binário do dbt e interpreta sua saída
package dbt

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-economics-api/internal/config"
	"github.com/vfg2006/sales-economics-api/internal/domain"
)

//go:generate mockgen -source=runner.go -destination=mocks/runner.go -package=mocks

type Runner interface {
	Run(ctx context.Context, selector string) (int, error)
	Test(ctx context.Context) (*domain.TestSummary, error)
}

// Executor executa um comando e devolve stdout e stderr combinados
type Executor func(ctx context.Context, dir, name string, args ...string) ([]byte, error)

var summaryPattern = regexp.MustCompile(`Done\. PASS=(\d+) WARN=(\d+) ERROR=(\d+)(?: SKIP=(\d+))?(?: NO-OP=\d+)? TOTAL=(\d+)`)

const createdMarker = "OK created"

type DbtRunner struct {
	cfg  config.Dbt
	exec Executor
}

func NewRunner(cfg *config.Config) Runner {
	return NewRunnerWithExecutor(cfg, execCommand)
}

func NewRunnerWithExecutor(cfg *config.Config, executor Executor) Runner {
	return &DbtRunner{
		cfg:  cfg.Dbt,
		exec: executor,
	}
}

// Run executa "dbt run --select <selector>" e retorna a quantidade de modelos criados
func (r *DbtRunner) Run(ctx context.Context, selector string) (int, error) {
	args := append([]string{"run", "--select", selector}, r.commonArgs()...)

	output, err := r.exec(ctx, r.cfg.ProjectDir, r.binary(), args...)
	if err != nil {
		return 0, fmt.Errorf("dbt run --select %s falhou: %w: %s", selector, err, tail(output))
	}

	models := strings.Count(string(output), createdMarker)
	logrus.Infof("dbt run --select %s concluído: %d modelos", selector, models)

	return models, nil
}

// Test executa "dbt test". Uma saída de erro com resumo legível não é tratada como
// falha de execução: o status fica no resumo.
func (r *DbtRunner) Test(ctx context.Context) (*domain.TestSummary, error) {
	args := append([]string{"test"}, r.commonArgs()...)

	output, execErr := r.exec(ctx, r.cfg.ProjectDir, r.binary(), args...)

	summary, ok := ParseTestSummary(string(output))
	if !ok {
		if execErr != nil {
			return nil, fmt.Errorf("dbt test falhou: %w: %s", execErr, tail(output))
		}
		return nil, fmt.Errorf("resumo do dbt test não encontrado na saída")
	}

	return summary, nil
}

// ParseTestSummary extrai a linha "Done. PASS=x WARN=y ERROR=z SKIP=s TOTAL=t"
func ParseTestSummary(output string) (*domain.TestSummary, bool) {
	matches := summaryPattern.FindAllStringSubmatch(output, -1)
	if len(matches) == 0 {
		return nil, false
	}
	m := matches[len(matches)-1]

	summary := &domain.TestSummary{
		Passed:  atoi(m[1]),
		Warned:  atoi(m[2]),
		Errors:  atoi(m[3]),
		Skipped: atoi(m[4]),
		Total:   atoi(m[5]),
	}
	summary.ResolveStatus()

	return summary, true
}

func (r *DbtRunner) commonArgs() []string {
	args := make([]string, 0, 6)
	if r.cfg.ProjectDir != "" {
		args = append(args, "--project-dir", r.cfg.ProjectDir)
	}
	if r.cfg.ProfilesDir != "" {
		args = append(args, "--profiles-dir", r.cfg.ProfilesDir)
	}
	if r.cfg.Target != "" {
		args = append(args, "--target", r.cfg.Target)
	}
	return args
}

func (r *DbtRunner) binary() string {
	if r.cfg.Binary == "" {
		return "dbt"
	}
	return r.cfg.Binary
}

func execCommand(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return out.Bytes(), err
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func tail(output []byte) string {
	const limit = 2000
	s := strings.TrimSpace(string(output))
	if len(s) > limit {
		return s[len(s)-limit:]
	}
	return s
}
