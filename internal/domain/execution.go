package domain

import "time"

// Status de execução reportados pela plataforma de automação
const (
	ExecutionStatusSuccess = "success"
	ExecutionStatusError   = "error"
	ExecutionStatusRunning = "running"
)

// Execution é uma execução de workflow da plataforma de automação
type Execution struct {
	ID         string     `json:"id"`
	WorkflowID string     `json:"workflow_id"`
	Status     string     `json:"status"`
	Finished   bool       `json:"finished"`
	StartedAt  *time.Time `json:"started_at"`
	StoppedAt  *time.Time `json:"stopped_at,omitempty"`
}

// DurationSeconds retorna a duração de uma execução concluída, ou 0 quando os
// timestamps não permitem o cálculo
func (e Execution) DurationSeconds() float64 {
	if e.StartedAt == nil || e.StoppedAt == nil {
		return 0
	}
	return e.StoppedAt.Sub(*e.StartedAt).Seconds()
}

// ExecutionSummary resume as execuções de workflows para o dashboard
type ExecutionSummary struct {
	TotalExecutions        int       `json:"total_executions"`
	Succeeded              int       `json:"succeeded"`
	Failed                 int       `json:"failed"`
	Running                int       `json:"running"`
	SuccessRate            float64   `json:"success_rate"`
	AverageDurationSeconds float64   `json:"average_duration_seconds"`
	GeneratedAt            time.Time `json:"generated_at"`
}
