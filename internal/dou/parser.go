package dou

import (
	"sort"
	"strconv"
	"strings"
)

// candidateKeys are the payload keys the upstream has been seen using
// for its list of records, in the order they are tried.
var candidateKeys = []string{
	"jsonArray", "itens", "items", "data",
	"conteudo", "materias", "publicacoes", "publicacao",
}

// Alias chains per canonical field; the first present, non-empty key
// wins.
var (
	titleAliases   = []string{"title", "titulo", "tituloMateria", "nome"}
	summaryAliases = []string{"ementa", "summary", "resumo", "descricao", "texto"}
	agencyAliases  = []string{"orgao", "orgaoPessoa", "orgaoPublicador", "hierarquia"}
	linkAliases    = []string{"url", "link", "href"}
	idAliases      = []string{"id", "identificador", "idMateria", "idPublicacao"}
)

// itemURLPrefix rebuilds a document link from a bare identifier when
// the payload carries no direct URL.
const itemURLPrefix = "https://www.in.gov.br/web/dou/-/"

// parsePayload extracts raw item records from one section's decoded
// payload. The upstream schema varies, so extraction is a chain of
// heuristics tried in order: known list keys first, then a
// one-level-deep scan of nested objects. Malformed input never errors;
// it just yields fewer records.
func parsePayload(payload map[string]any, date, section string) []Item {
	lists := knownKeyLists(payload)
	if len(lists) == 0 {
		lists = nestedLists(payload)
	}

	var items []Item
	for _, list := range lists {
		for _, raw := range list {
			record, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			items = append(items, extractItem(record, date, section))
		}
	}
	return items
}

func knownKeyLists(payload map[string]any) [][]any {
	var lists [][]any
	for _, key := range candidateKeys {
		if v, ok := payload[key].([]any); ok {
			lists = append(lists, v)
		}
	}
	return lists
}

// nestedLists scans one level deeper: every object value of the payload
// is searched for list values. Keys are visited in sorted order so the
// output is reproducible despite map iteration being randomized.
func nestedLists(payload map[string]any) [][]any {
	outerKeys := sortedKeys(payload)

	var lists [][]any
	for _, k := range outerKeys {
		inner, ok := payload[k].(map[string]any)
		if !ok {
			continue
		}
		for _, kk := range sortedKeys(inner) {
			if v, ok := inner[kk].([]any); ok {
				lists = append(lists, v)
			}
		}
	}
	return lists
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func extractItem(record map[string]any, date, section string) Item {
	link := firstAlias(record, linkAliases)
	if link == "" {
		if id := firstAlias(record, idAliases); id != "" {
			link = itemURLPrefix + id
		}
	}

	return Item{
		Source:  SourceName,
		Date:    date,
		Section: strings.ToUpper(section),
		Agency:  firstAlias(record, agencyAliases),
		Title:   firstAlias(record, titleAliases),
		Summary: firstAlias(record, summaryAliases),
		Link:    link,
	}
}

// firstAlias resolves one canonical field: the first alias whose value
// stringifies to something non-empty wins.
func firstAlias(record map[string]any, aliases []string) string {
	for _, key := range aliases {
		if v, ok := record[key]; ok {
			if s := stringify(v); s != "" {
				return s
			}
		}
	}
	return ""
}

// stringify renders the field values the endpoint actually sends:
// strings and numbers (identifiers come as JSON numbers). Everything
// else is treated as absent.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
