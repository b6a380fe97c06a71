package domain

// Domínios de analytics atendidos pelo dashboard
const (
	VoiceDomain = "voice"
	ChatDomain  = "chat"
)

// DialogueTurn é uma fala estruturada extraída do transcript bruto
type DialogueTurn struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// CallRecord representa uma chamada do agente de voz. Os campos são decodificados
// de payloads soltos, então quase tudo é opcional exceto started_at.
type CallRecord struct {
	ID         string  `json:"id,omitempty" mapstructure:"id"`
	StartedAt  string  `json:"started_at" mapstructure:"started_at"`
	Duration   float64 `json:"duration" mapstructure:"duration"`
	Transcript string  `json:"transcript,omitempty" mapstructure:"transcript"`
	Status     string  `json:"status,omitempty" mapstructure:"status"`
	FromNumber string  `json:"from_number,omitempty" mapstructure:"from_number"`
	Price      float64 `json:"price" mapstructure:"price"`
}

// SessionRecord representa uma sessão do widget de chat
type SessionRecord struct {
	ID              string   `json:"id,omitempty" mapstructure:"id"`
	StartedAt       string   `json:"started_at" mapstructure:"started_at"`
	Duration        float64  `json:"-" mapstructure:"duration"`
	DurationSeconds *float64 `json:"-" mapstructure:"duration_seconds"`
	RawDialogue     string   `json:"-" mapstructure:"dialogue"`

	// Preenchidos na montagem da resposta
	EffectiveDurationSeconds float64        `json:"duration_seconds"`
	Dialogue                 []DialogueTurn `json:"dialogue"`
}

// DurationOrDefault aplica a precedência de duration_seconds sobre duration
func (s SessionRecord) DurationOrDefault() float64 {
	if s.DurationSeconds != nil {
		return *s.DurationSeconds
	}
	return s.Duration
}

// VoiceSummary são as métricas agregadas do domínio de voz
type VoiceSummary struct {
	TotalCalls             int     `json:"total_calls"`
	TotalDurationSeconds   float64 `json:"total_duration_seconds"`
	AverageDurationSeconds float64 `json:"average_duration_seconds"`
	TotalCost              float64 `json:"total_cost"`
	AverageCost            float64 `json:"average_cost"`
}

// ChatSummary são as métricas agregadas do domínio de chat
type ChatSummary struct {
	TotalSessions          int     `json:"total_sessions"`
	TotalDurationSeconds   float64 `json:"total_duration_seconds"`
	AverageDurationSeconds float64 `json:"average_duration_seconds"`
}

type VoiceAnalytics struct {
	Summary     VoiceSummary `json:"summary"`
	RecentCalls []CallRecord `json:"recent_calls"`
}

type ChatAnalytics struct {
	Summary        ChatSummary     `json:"summary"`
	RecentSessions []SessionRecord `json:"recent_sessions"`
}

// ChartBucket é um dia de calendário agrupado, antes da rotulagem final
type ChartBucket struct {
	ISODate string
	Count   int
}

type VoiceChartPoint struct {
	Date  string `json:"date"`
	Calls int    `json:"calls"`
}

type ChatChartPoint struct {
	Date     string `json:"date"`
	Sessions int    `json:"sessions"`
}

// DashboardAnalytics é o documento único devolvido ao dashboard
type DashboardAnalytics struct {
	VoiceAnalytics VoiceAnalytics    `json:"voice_analytics"`
	ChatAnalytics  ChatAnalytics     `json:"chat_analytics"`
	VoiceChartData []VoiceChartPoint `json:"voiceChartData"`
	ChatChartData  []ChatChartPoint  `json:"chatChartData"`
}

// EmptyDashboardAnalytics devolve o documento zerado e bem formado usado quando
// a agregação falha por completo. As listas vazias garantem [] no JSON, nunca null.
func EmptyDashboardAnalytics() *DashboardAnalytics {
	return &DashboardAnalytics{
		VoiceAnalytics: VoiceAnalytics{RecentCalls: []CallRecord{}},
		ChatAnalytics:  ChatAnalytics{RecentSessions: []SessionRecord{}},
		VoiceChartData: []VoiceChartPoint{},
		ChatChartData:  []ChatChartPoint{},
	}
}
