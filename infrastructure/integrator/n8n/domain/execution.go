package n8ndomain

// ExecutionListResponse é a resposta paginada de GET /api/v1/executions
type ExecutionListResponse struct {
	Data       []Execution `json:"data"`
	NextCursor *string     `json:"nextCursor,omitempty"`
}

// Execution é o formato de execução devolvido pela API do n8n
type Execution struct {
	ID         any    `json:"id"` // numérico ou string conforme a versão da API
	WorkflowID any    `json:"workflowId"`
	Status     string `json:"status"`
	Finished   bool   `json:"finished"`
	Mode       string `json:"mode,omitempty"`
	StartedAt  string `json:"startedAt"`
	StoppedAt  string `json:"stoppedAt,omitempty"`
}
