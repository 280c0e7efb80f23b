package metadomain

// RawNode é um nó cru da API do Meta (campanha, conjunto de anúncios ou
// anúncio). Os campos opacos (targeting, creative) passam adiante sem
// transformação, então o formato dinâmico é preservado até a borda.
type RawNode = map[string]any

// Cursors da paginação da API do Meta
type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Paging descreve a posição da página corrente e o link absoluto da próxima
type Paging struct {
	Cursors Cursors `json:"cursors"`
	Next    string  `json:"next,omitempty"`
}

// Page é o envelope padrão de listagem da API do Meta
type Page struct {
	Data   []RawNode `json:"data"`
	Paging *Paging   `json:"paging,omitempty"`
}

// containerKind identifica o formato com que a API devolve uma coleção
// aninhada dentro de um nó: envelopada em {"data": [...]}, lista direta,
// ausente, ou algo inesperado.
type containerKind int

const (
	containerAbsent containerKind = iota
	containerWrapped
	containerList
	containerInvalid
)

// classifyContainer faz o match do formato do container e extrai os nós
func classifyContainer(value any, present bool) (containerKind, []RawNode) {
	if !present {
		return containerAbsent, nil
	}

	switch v := value.(type) {
	case map[string]any:
		data, ok := v["data"]
		if !ok {
			return containerInvalid, nil
		}
		list, ok := data.([]any)
		if !ok {
			return containerInvalid, nil
		}
		return containerWrapped, toNodeList(list)

	case []any:
		return containerList, toNodeList(v)

	case []RawNode:
		return containerList, v

	default:
		return containerInvalid, nil
	}
}

// ChildNodes extrai a coleção aninhada sob key como uma lista de nós.
// Sempre retorna uma lista não-nil, mesmo quando o campo está ausente ou em
// formato inesperado.
func ChildNodes(node RawNode, key string) []RawNode {
	value, present := node[key]

	_, list := classifyContainer(value, present)
	if list == nil {
		return []RawNode{}
	}
	return list
}

func toNodeList(items []any) []RawNode {
	nodes := make([]RawNode, 0, len(items))
	for _, item := range items {
		if node, ok := item.(map[string]any); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}
