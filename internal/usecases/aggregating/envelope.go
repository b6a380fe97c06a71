package aggregating

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxUnwrapDepth limita a resolução de envelopes aninhados (campo "json" e
// strings duplamente codificadas) para não recursar em entrada adversária
const maxUnwrapDepth = 3

// normalizeDomain desembrulha um envelope de webhook de forma arbitrária
// (objeto único, array, string JSON, campo "json") e acumula o sumário e os
// registros brutos do domínio pedido. Nunca falha: o pior caso é sumário vazio
// e lista vazia.
func normalizeDomain(raw []byte, domainName string) (map[string]any, []any) {
	summary := map[string]any{}
	records := []any{}

	if len(raw) == 0 {
		return summary, records
	}

	var envelope any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		logrus.WithError(err).WithField("domain", domainName).Warn("Envelope de webhook não é JSON válido")
		return summary, records
	}

	elements, ok := envelope.([]any)
	if !ok {
		elements = []any{envelope}
	}

	for index, element := range elements {
		unwrapped, ok := unwrapElement(element)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"domain": domainName,
				"index":  index,
			}).Warn("Elemento de envelope descartado: string interna não parseia como JSON")
			continue
		}

		payload, ok := unwrapped.(map[string]any)
		if !ok {
			continue
		}

		domainObject := extractDomainObject(payload, domainName)
		if domainObject == nil {
			continue
		}

		// Sumários de entregas posteriores sobrescrevem campos homônimos
		// (last-write-wins, nunca soma)
		if incoming, ok := domainObject["summary"].(map[string]any); ok {
			for key, value := range incoming {
				summary[key] = value
			}
		}

		if list, ok := domainObject["recent_calls"].([]any); ok {
			records = append(records, list...)
		} else if list, ok := domainObject["recent_sessions"].([]any); ok {
			records = append(records, list...)
		}
	}

	return summary, records
}

// unwrapElement resolve as variantes de aninhamento de um elemento: campo
// "json" embrulhando o payload e strings que precisam de um passe de parse.
// Retorna false apenas quando uma string interna não é JSON válido.
func unwrapElement(element any) (any, bool) {
	for depth := 0; depth < maxUnwrapDepth; depth++ {
		switch value := element.(type) {
		case map[string]any:
			inner, wrapped := value["json"]
			if !wrapped {
				return value, true
			}
			element = inner
		case string:
			var parsed any
			if err := json.Unmarshal([]byte(value), &parsed); err != nil {
				return nil, false
			}
			element = parsed
		default:
			return element, true
		}
	}

	return element, true
}

// extractDomainObject aceita tanto a chave longa ("voice_analytics") quanto a
// curta ("voice") vista em entregas mais antigas dos webhooks
func extractDomainObject(payload map[string]any, domainName string) map[string]any {
	if object, ok := payload[domainName+"_analytics"].(map[string]any); ok {
		return object
	}
	if object, ok := payload[domainName].(map[string]any); ok {
		return object
	}
	return nil
}
