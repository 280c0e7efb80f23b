package metadomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeInsights(t *testing.T) {
	tests := []struct {
		name     string
		node     RawNode
		expected RawNode
	}{
		{
			name: "Nó sem insights - deve criar performance_metrics vazio",
			node: RawNode{"id": "c1", "name": "Campanha"},
			expected: RawNode{
				"id":                  "c1",
				"name":                "Campanha",
				"performance_metrics": RawNode{},
			},
		},
		{
			name: "Insights envelopados em data - deve promover o primeiro elemento",
			node: RawNode{
				"id": "c1",
				"insights": map[string]any{
					"data": []any{
						map[string]any{"spend": "10.50", "clicks": "3"},
						map[string]any{"spend": "99.99"},
					},
					"paging": map[string]any{"cursors": map[string]any{}},
				},
			},
			expected: RawNode{
				"id":                  "c1",
				"performance_metrics": map[string]any{"spend": "10.50", "clicks": "3"},
			},
		},
		{
			name: "Insights como lista direta - deve promover o primeiro elemento",
			node: RawNode{
				"id":       "c2",
				"insights": []any{map[string]any{"impressions": "1200"}},
			},
			expected: RawNode{
				"id":                  "c2",
				"performance_metrics": map[string]any{"impressions": "1200"},
			},
		},
		{
			name: "Insights com data vazio - deve criar performance_metrics vazio",
			node: RawNode{
				"id":       "c3",
				"insights": map[string]any{"data": []any{}},
			},
			expected: RawNode{
				"id":                  "c3",
				"performance_metrics": RawNode{},
			},
		},
		{
			name: "Insights como lista vazia - deve criar performance_metrics vazio",
			node: RawNode{
				"id":       "c4",
				"insights": []any{},
			},
			expected: RawNode{
				"id":                  "c4",
				"performance_metrics": RawNode{},
			},
		},
		{
			name: "Insights em formato inesperado - deve criar performance_metrics vazio",
			node: RawNode{
				"id":       "c5",
				"insights": "corrompido",
			},
			expected: RawNode{
				"id":                  "c5",
				"performance_metrics": RawNode{},
			},
		},
		{
			name: "Envelope sem a chave data - deve criar performance_metrics vazio",
			node: RawNode{
				"id":       "c6",
				"insights": map[string]any{"paging": map[string]any{}},
			},
			expected: RawNode{
				"id":                  "c6",
				"performance_metrics": RawNode{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			NormalizeInsights(tt.node)

			assert.Equal(t, tt.expected, tt.node)
			assert.NotContains(t, tt.node, "insights")
		})
	}
}

func TestNormalizeInsightsIdempotence(t *testing.T) {
	node := RawNode{
		"id": "c1",
		"insights": map[string]any{
			"data": []any{map[string]any{"spend": "42.00"}},
		},
	}

	NormalizeInsights(node)
	first := RawNode{}
	for k, v := range node {
		first[k] = v
	}

	NormalizeInsights(node)

	assert.Equal(t, first, node)
}

func TestChildNodes(t *testing.T) {
	tests := []struct {
		name     string
		node     RawNode
		key      string
		expected []RawNode
	}{
		{
			name: "Coleção envelopada em data",
			node: RawNode{
				"adsets": map[string]any{
					"data": []any{
						map[string]any{"id": "as1"},
						map[string]any{"id": "as2"},
					},
				},
			},
			key:      "adsets",
			expected: []RawNode{{"id": "as1"}, {"id": "as2"}},
		},
		{
			name: "Coleção como lista direta",
			node: RawNode{
				"ads": []any{map[string]any{"id": "ad1"}},
			},
			key:      "ads",
			expected: []RawNode{{"id": "ad1"}},
		},
		{
			name:     "Chave ausente - deve retornar lista vazia",
			node:     RawNode{"id": "c1"},
			key:      "adsets",
			expected: []RawNode{},
		},
		{
			name: "Formato inesperado - deve retornar lista vazia",
			node: RawNode{
				"adsets": 42,
			},
			key:      "adsets",
			expected: []RawNode{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ChildNodes(tt.node, tt.key)

			assert.Equal(t, tt.expected, result)
			assert.NotNil(t, result)
		})
	}
}
