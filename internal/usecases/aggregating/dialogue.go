package aggregating

import (
	"strings"

	"github.com/vfg2006/engage-dashboard-api/internal/domain"
)

const (
	senderUser      = "user"
	senderAssistant = "assistant"
	senderUnknown   = "unknown"
)

// parseDialogue converte o transcript bruto linha-a-linha em falas ordenadas.
// O rótulo antes do primeiro dois-pontos decide o remetente: contém "user"
// (sem diferenciar maiúsculas) vira user, senão assistant. Linha sem
// dois-pontos vira uma fala de remetente desconhecido.
func parseDialogue(raw string) []domain.DialogueTurn {
	turns := []domain.DialogueTurn{}
	if raw == "" {
		return turns
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		colon := strings.Index(line, ":")
		if colon < 0 {
			turns = append(turns, domain.DialogueTurn{Sender: senderUnknown, Text: line})
			continue
		}

		label := strings.ToLower(strings.TrimSpace(line[:colon]))
		text := strings.TrimSpace(line[colon+1:])

		sender := senderAssistant
		if strings.Contains(label, senderUser) {
			sender = senderUser
		}

		turns = append(turns, domain.DialogueTurn{Sender: sender, Text: text})
	}

	return turns
}
