package aggregating

import (
	"fmt"
	"sort"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/engage-dashboard-api/internal/domain"
	"github.com/vfg2006/engage-dashboard-api/pkg/utils"
)

// displayLimit corta a lista exibida no dashboard; o conjunto completo continua
// alimentando métricas e gráficos
const displayLimit = 10

// collapseRecords filtra registros não identificáveis (não-objeto ou sem
// started_at), iça o campo aninhado json.<hoistField> para o topo quando o
// topo não o tem, e deduplica por identidade com semântica last-seen-wins
// (o duplicado posterior substitui o anterior por inteiro).
func collapseRecords(raw []any, hoistField string) []map[string]any {
	seen := map[string]int{}
	ordered := []map[string]any{}

	for _, element := range raw {
		record, ok := element.(map[string]any)
		if !ok {
			continue
		}

		if _, has := record["started_at"]; !has {
			continue
		}

		if _, has := record[hoistField]; !has {
			if nested, ok := record["json"].(map[string]any); ok {
				if value, ok := nested[hoistField]; ok {
					record[hoistField] = value
				}
			}
		}

		key := identityKeyOf(record)
		if position, duplicate := seen[key]; duplicate {
			ordered[position] = record
			continue
		}

		seen[key] = len(ordered)
		ordered = append(ordered, record)
	}

	return ordered
}

// identityKeyOf usa id quando presente, senão started_at
func identityKeyOf(record map[string]any) string {
	if id, has := record["id"]; has && id != nil && id != "" {
		return fmt.Sprintf("%v", id)
	}
	return fmt.Sprintf("%v", record["started_at"])
}

// dedupeCallRecords colapsa e tipa os registros de voz, ordenados do mais
// recente para o mais antigo
func dedupeCallRecords(raw []any) []domain.CallRecord {
	collapsed := collapseRecords(raw, "transcript")

	records := make([]domain.CallRecord, 0, len(collapsed))
	for _, loose := range collapsed {
		var record domain.CallRecord
		if err := weakDecode(loose, &record); err != nil {
			logrus.WithError(err).Warn("Registro de chamada malformado descartado")
			continue
		}
		records = append(records, record)
	}

	sortByStartedAtDesc(records, func(r domain.CallRecord) string { return r.StartedAt })

	return records
}

// dedupeSessionRecords colapsa e tipa os registros de chat
func dedupeSessionRecords(raw []any) []domain.SessionRecord {
	collapsed := collapseRecords(raw, "dialogue")

	records := make([]domain.SessionRecord, 0, len(collapsed))
	for _, loose := range collapsed {
		var record domain.SessionRecord
		if err := weakDecode(loose, &record); err != nil {
			logrus.WithError(err).Warn("Registro de sessão malformado descartado")
			continue
		}
		records = append(records, record)
	}

	sortByStartedAtDesc(records, func(r domain.SessionRecord) string { return r.StartedAt })

	return records
}

// weakDecode decodifica um map solto em um registro tipado aceitando números
// em string ("12.50") e vice-versa
func weakDecode(input map[string]any, result any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(input)
}

// sortByStartedAtDesc ordena do mais recente para o mais antigo; timestamps
// que não parseiam valem como os mais antigos e nunca quebram a ordenação
func sortByStartedAtDesc[T any](records []T, startedAt func(T) string) {
	sort.SliceStable(records, func(i, j int) bool {
		return parseOrZero(startedAt(records[i])).After(parseOrZero(startedAt(records[j])))
	})
}

func parseOrZero(value string) time.Time {
	ts, err := utils.ParseTimestamp(value)
	if err != nil {
		return time.Time{}
	}
	return *ts
}

// truncateForDisplay aplica o corte de exibição sem tocar no conjunto completo
func truncateForDisplay[T any](records []T) []T {
	if len(records) > displayLimit {
		return records[:displayLimit]
	}
	return records
}
