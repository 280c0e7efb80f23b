package metadomain

// Chaves dos campos de métricas nos nós da API
const (
	insightsKey           = "insights"
	performanceMetricsKey = "performance_metrics"
)

// NormalizeInsights colapsa o sub-objeto "insights" de um nó (lista com no
// máximo um elemento, possivelmente envelopada em paging) para um único
// registro de métricas em "performance_metrics", removendo a chave original.
//
// A função é pura e idempotente: um nó já normalizado não tem mais a chave
// "insights" e mantém seu "performance_metrics" intacto.
func NormalizeInsights(node RawNode) {
	value, present := node[insightsKey]
	if !present {
		if _, has := node[performanceMetricsKey]; !has {
			node[performanceMetricsKey] = RawNode{}
		}
		return
	}

	_, candidates := classifyContainer(value, true)

	if len(candidates) > 0 {
		node[performanceMetricsKey] = candidates[0]
	} else {
		node[performanceMetricsKey] = RawNode{}
	}

	delete(node, insightsKey)
}
